package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"backend-queue/internal/config"
	"backend-queue/internal/helper"
	"backend-queue/internal/http/handler"
	"backend-queue/internal/http/middleware"
	"backend-queue/internal/realtime"
	"backend-queue/internal/store/mysql"
)

func main() {
	app := fiber.New(fiber.Config{
		CaseSensitive: true,
		StrictRouting: true,
	})

	config.LoadEnv()
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET not configured")
	}
	config.InitRedis()
	config.InitDB()
	defer config.CloseDB()

	helper.SeedAdminIfNeeded()

	hub := realtime.NewHub()
	h := handler.New(mysql.New(config.DB, config.Redis), hub)

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))

	app.Get("/health", h.Health)

	// Public queue endpoints
	app.Post("/api/queue/token", h.TakeToken)
	app.Get("/api/queue/status", h.QueueStatus)
	app.Get("/api/queue/ws", websocket.New(h.StatusWebSocket))

	// Admin endpoints
	admin := app.Group("/api/admin")
	admin.Post("/login", h.Login)

	protected := admin.Group("", middleware.JWTAuth(), middleware.RoleAuth("admin"))
	protected.Post("/next", h.NextToken)
	protected.Post("/reset", h.ResetQueue)
	protected.Get("/analytics", h.GetAnalytics)
	protected.Get("/waiting", h.GetWaitingTokens)
	protected.Get("/timings", h.GetTimingStats)
	protected.Post("/assign-time", h.AssignServiceTime)
	protected.Get("/all-tokens", h.GetAllTokens)
	protected.Get("/service-times", h.GetServiceTimes)
	protected.Post("/service-times", h.SetServiceTime)

	addr := config.GetEnv("APP_HOST", "") + ":" + config.GetEnv("APP_PORT", "5000")
	log.Println("Server running on", addr)
	log.Fatal(app.Listen(addr))
}
