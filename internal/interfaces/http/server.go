package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/clientes-api/pkg/logger"
)

// ServerOptions parámetros para construir la app Fiber.
type ServerOptions struct {
	AppName          string
	Logger           *logger.Logger
	Metrics          *Metrics
	CORSAllowOrigins string
	ExposeStack      bool // incluir stackTrace en las respuestas de error (solo development)
}

// NewApp construye la app Fiber con el manejador global de errores y los middlewares comunes.
func NewApp(opts ServerOptions) *fiber.App {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      opts.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    16 * 1024 * 1024,
		ErrorHandler: ErrorHandler(opts.ExposeStack),
	})
	app.Use(requestid.New())
	app.Use(RequestLogger(log, opts.Metrics))
	app.Use(recover.New())
	if opts.CORSAllowOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: opts.CORSAllowOrigins,
			AllowMethods: "GET,POST,PATCH,PUT,DELETE,OPTIONS",
			AllowHeaders: "Content-Type,Authorization",
		}))
	}
	return app
}
