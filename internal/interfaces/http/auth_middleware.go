package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/pkg/jwt"
)

// Locals keys para UserID y Role en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

const (
	msgNotAuthorized = "User is not Authorized."
	msgMissingToken  = "User is not Authorized. or Token is missing."
	msgForbidden     = "User does not have permission to modify clients."
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y Role a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return domain.NewError(domain.ErrUnauthorized, msgMissingToken)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return domain.NewError(domain.ErrUnauthorized, msgNotAuthorized)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return domain.NewError(domain.ErrUnauthorized, msgMissingToken)
		}
		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return domain.Wrap(domain.ErrUnauthorized, msgNotAuthorized, err)
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole permite continuar solo si el rol del token está en roles.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return domain.NewError(domain.ErrUnauthorized, msgNotAuthorized)
		}
		if _, ok := allowed[role]; !ok {
			return domain.NewError(domain.ErrForbidden, msgForbidden)
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
