package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"ambassade_backend/internals/configs"
)

// CorsMiddleware — origines du portail public et du back-office.
func CorsMiddleware() fiber.Handler {
	origins := configs.GetEnv("CORS_ORIGINS",
		strings.Join([]string{
			"http://localhost:5173",
			"http://localhost:3000",
		}, ","),
	)
	return cors.New(cors.Config{
		AllowOrigins:     strings.ReplaceAll(origins, ",", ", "),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
