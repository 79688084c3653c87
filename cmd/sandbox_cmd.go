package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/Draketheb4dass/reaction-admin/sandbox"
)

var sandboxPort string

var sandboxStartCmd = &cobra.Command{
	Use:   "sandbox:start",
	Short: "Run the in-memory commerce API sandbox",
	Run: func(cmd *cobra.Command, args []string) {
		store := sandbox.NewStore()
		sandbox.SeedDemoData(store)
		schema, err := sandbox.NewSchema(store)
		if err != nil {
			fmt.Printf("Sandbox schema failed: %v\n", err)
			os.Exit(1)
		}
		e := echo.New()
		e.POST("/graphql", echo.WrapHandler(sandbox.Handler(schema)))
		log.Printf("Sandbox GraphQL at http://localhost:%s/graphql (demo-product / demo-shop seeded)", sandboxPort)
		e.Logger.Fatal(e.Start(":" + sandboxPort))
	},
}

func init() {
	sandboxStartCmd.Flags().StringVar(&sandboxPort, "port", "8081", "Port to listen on")
	rootCmd.AddCommand(sandboxStartCmd)
}
