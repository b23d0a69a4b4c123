package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/almoxarifado-api/internal/application/dto"
)

// NewUploadLimiter token bucket compartido para las subidas. perMinute 0 desactiva el límite (nil).
func NewUploadLimiter(perMinute, burst int) *rate.Limiter {
	if perMinute <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)
}

// RateLimit responde 429 cuando el limitador no tiene tokens. Con limiter nil no limita.
func RateLimit(limiter *rate.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limiter != nil && !limiter.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Error: "demasiadas subidas, intente de nuevo en unos segundos",
				Code:  CodeTooManyRequests,
			})
		}
		return c.Next()
	}
}
