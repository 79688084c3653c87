//go:build cli
// +build cli

package main

import (
	_ "github.com/Draketheb4dass/reaction-admin/custom"

	"github.com/Draketheb4dass/reaction-admin/cmd"
	"github.com/Draketheb4dass/reaction-admin/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
