package handlers_fiber

import (
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/transport/http/middleware"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// NewApp builds the fiber application with middleware, health check and the
// API mounted under /api.
func NewApp(log *zap.SugaredLogger, uc usecase.InterfaceUsecase, requestTimeout time.Duration) *fiber.App {
	serv := fiber.New(fiber.Config{
		ReadTimeout:  requestTimeout,
		WriteTimeout: requestTimeout,
		ErrorHandler: ErrorHandler,
		// handlers store path params and query values; fiber reuses their buffers otherwise
		Immutable: true,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log.Named("http")))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	NewHandler(log, uc).Register(serv.Group("/api"))
	return serv
}
