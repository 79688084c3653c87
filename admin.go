//go:build !cli
// +build !cli

package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Draketheb4dass/reaction-admin/api"
	_ "github.com/Draketheb4dass/reaction-admin/api/audit"
	_ "github.com/Draketheb4dass/reaction-admin/api/inventory"
	_ "github.com/Draketheb4dass/reaction-admin/api/product"
	"github.com/Draketheb4dass/reaction-admin/client"
	"github.com/Draketheb4dass/reaction-admin/config"
	"github.com/Draketheb4dass/reaction-admin/core/auth"
	auditRepo "github.com/Draketheb4dass/reaction-admin/model/repository/audit"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured, shared catalog cache disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, shared catalog cache disabled."
		}
	}
	log.Println(redisStatus)

	deps := &api.Deps{
		Client: client.NewClient(config.LoadCommerceAPIConfig(), nil),
	}

	db, err := config.NewDB()
	if err != nil {
		log.Printf("audit database unavailable, audit trail disabled: %v", err)
	} else if repo, err := auditRepo.NewAuditRepository(db); err != nil {
		log.Printf("audit migration failed, audit trail disabled: %v", err)
	} else {
		deps.Audit = repo
		log.Println("Audit database connection successful.")
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware())
	api.ApplyModules(apiGroup, deps)
	api.ApplyRoutes(e, deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Admin server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
