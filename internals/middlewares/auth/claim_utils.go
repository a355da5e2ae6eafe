// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"horarios_backend/internals/constants"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	// Authorization header o fallback a cookie
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", fmt.Errorf("unauthorized - No token provided")
	}

	// split robusto: tolera espacios dobles y es case-insensitive
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("unauthorized - Invalid token format")
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", fmt.Errorf("unauthorized - Empty token")
	}
	return tok, nil
}

func validateTokenExpiry(claims jwt.MapClaims, skew time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token has no exp")
	}

	var expUnix int64
	switch t := expVal.(type) {
	case float64:
		expUnix = int64(t)
	case int64:
		expUnix = t
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exp format")
		}
		expUnix = n
	default:
		return fmt.Errorf("invalid exp type")
	}

	now := time.Now().UTC()
	expTime := time.Unix(expUnix, 0).UTC()
	if now.After(expTime.Add(skew)) {
		return fmt.Errorf("token expired at %v", expTime)
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	idRaw, ok := claims["id"]
	if !ok {
		return uuid.Nil, fmt.Errorf("no user id")
	}
	switch v := idRaw.(type) {
	case string:
		return uuid.Parse(strings.TrimSpace(v))
	default:
		return uuid.Nil, fmt.Errorf("invalid user id type")
	}
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var usuario struct {
		UsuarioActivo bool
	}
	if err := db.Table("usuarios").
		Select("usuario_activo").
		Where("usuario_id = ?", userID).
		First(&usuario).Error; err != nil {
		return err
	}
	if !usuario.UsuarioActivo {
		return errors.New("usuario inactivo")
	}
	return nil
}

/* ======== Locals ======== */

func storeRolToLocals(c *fiber.Ctx, claims jwt.MapClaims) error {
	raw, _ := claims["rol"].(string)
	rol, err := constants.ParseRol(raw)
	if err != nil {
		return err
	}
	c.Locals("userRole", string(rol))
	if nombre, ok := claims["nombre"].(string); ok {
		c.Locals("user_name", nombre)
	}
	return nil
}

/* ======== Actor (identidad inmutable por request) ======== */

// Actor es la identidad ya resuelta por el middleware: valor inmutable
// que los controllers pasan a los services, nunca estado global.
type Actor struct {
	UsuarioID uuid.UUID
	Rol       constants.Rol
}

// ActorDeContexto reconstruye el Actor desde Locals. Falla si el request
// no pasó por AuthMiddleware.
func ActorDeContexto(c *fiber.Ctx) (Actor, error) {
	idStr, _ := c.Locals("user_id").(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return Actor{}, errors.New("request sin identidad resuelta")
	}
	rolStr, _ := c.Locals("userRole").(string)
	rol, err := constants.ParseRol(rolStr)
	if err != nil {
		return Actor{}, err
	}
	return Actor{UsuarioID: id, Rol: rol}, nil
}
