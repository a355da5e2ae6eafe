// file: internals/features/usuarios/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"horarios_backend/internals/configs"
	"horarios_backend/internals/constants"
	m "horarios_backend/internals/features/usuarios/auth/model"
)

const (
	accessTokenTTL  = 2 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

var (
	ErrSecretNoConfigurado = errors.New("JWT secret no configurado")
	ErrRefreshInvalido     = errors.New("refresh token inválido")
)

// BuildAccessClaims arma los claims de acceso: {id, rol, nombre, exp, iat}.
// El middleware sólo confía en id + rol; lo demás es informativo.
func BuildAccessClaims(u *m.UsuarioModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":     u.UsuarioID.String(),
		"rol":    string(u.UsuarioRol),
		"nombre": u.UsuarioNombre,
		"iat":    now.Unix(),
		"exp":    now.Add(accessTokenTTL).Unix(),
	}
}

func GenerarAccessToken(u *m.UsuarioModel, now time.Time) (string, error) {
	if configs.JWTSecret == "" {
		return "", ErrSecretNoConfigurado
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, BuildAccessClaims(u, now))
	return tok.SignedString([]byte(configs.JWTSecret))
}

func GenerarRefreshToken(u *m.UsuarioModel, now time.Time) (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", ErrSecretNoConfigurado
	}
	claims := jwt.MapClaims{
		"sub": u.UsuarioID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTRefreshSecret))
}

// ValidarRefreshToken regresa el usuario_id del refresh token si es válido.
func ValidarRefreshToken(tokenString string) (uuid.UUID, error) {
	if configs.JWTRefreshSecret == "" {
		return uuid.Nil, ErrSecretNoConfigurado
	}
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrRefreshInvalido
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, ErrRefreshInvalido
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrRefreshInvalido
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrRefreshInvalido
	}
	return id, nil
}

// RolPorDefecto para cuentas creadas por registro público.
func RolPorDefecto() constants.Rol {
	return constants.RolAlumno
}
