package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC    *usecase.ClientUseCase
	Metrics     *Metrics
	AuthEnabled bool
	JWTSecret   string
	WriteRoles  []string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello World")
	})
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	api := app.Group("/api")

	// Clients: públicas salvo AUTH_ENABLED=true; en ese caso escribir exige uno de WriteRoles.
	var read, write []fiber.Handler
	if deps.AuthEnabled {
		read = []fiber.Handler{AuthMiddleware(deps.JWTSecret)}
		write = []fiber.Handler{RequireRole(deps.WriteRoles...)}
	}
	clients := api.Group("/clients", read...)
	clientHandler := NewClientHandler(deps.ClientUC, deps.Metrics)

	clients.Get("/", clientHandler.List)
	clients.Post("/", with(write, clientHandler.Create)...)
	clients.Get("/template", clientHandler.Template)
	clients.Get("/temp/:search", clientHandler.Search)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Patch("/:id", with(write, clientHandler.Update)...)
	clients.Delete("/:id", with(write, clientHandler.Delete)...)
}

func with(middlewares []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(middlewares)+1)
	out = append(out, middlewares...)
	return append(out, h)
}
