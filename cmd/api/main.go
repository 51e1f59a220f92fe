package main

import (
	"fmt"
	"teens-language/config"
	"teens-language/internal/api/comic"
	"teens-language/internal/api/healthcheck"
	"teens-language/internal/api/search"
	"teens-language/internal/app"
	"teens-language/internal/middleware"
	"teens-language/pkg/logger"

	"github.com/gofiber/fiber/v3"
)

func main() {
	server := fiber.New(fiber.Config{
		AppName:     config.Cfg.Server.AppName,
		BodyLimit:   config.Cfg.Server.BodyLimit,
		Concurrency: config.Cfg.Server.Concurrency,
	})
	middleware.Register(server)

	c := app.New()

	// routes
	healthcheck.RegisterRoutes(server, c.Generator)
	api := server.Group("/api")
	search.RegisterRoutes(api, c.Orchestrator)
	comic.RegisterRoutes(api, c.Orchestrator)

	addr := fmt.Sprintf(":%d", config.Cfg.Server.Port)
	logger.Info("%v: listening on %s (model %s)", config.ModuleServer, addr, config.Cfg.OpenAI.Model)
	if err := server.Listen(addr); err != nil {
		logger.Fatal(err, "server error")
	}
}
