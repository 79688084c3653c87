// Standalone sandbox commerce API — run with: go run ./cmd/sandbox
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/Draketheb4dass/reaction-admin/sandbox"
)

func main() {
	_ = godotenv.Load()

	store := sandbox.NewStore()
	sandbox.SeedDemoData(store)

	schema, err := sandbox.NewSchema(store)
	if err != nil {
		log.Fatal("schema:", err)
	}

	e := echo.New()
	e.POST("/graphql", echo.WrapHandler(sandbox.Handler(schema)))

	// ASCII banner on start (random font each run)
	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}
	fig := figure.NewFigure("Sandbox API ->", fonts[rand.Intn(len(fonts))], true)
	fig.Print()
	fmt.Println("In-memory commerce GraphQL sandbox (demo-product / demo-shop seeded)")

	port := os.Getenv("SANDBOX_PORT")
	if port == "" {
		port = "8081"
	}
	log.Printf("GraphQL at http://localhost:%s/graphql", port)
	e.Logger.Fatal(e.Start(":" + port))
}
