package middlewarectx

import (
	"context"

	jwtlib "github.com/hackerhosting/backend/internal/lib/jwt"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// ClaimsKey — ключ, под которым JWTMiddleware кладёт claims пользователя в контекст.
const ClaimsKey Key = "claims"

// Claims возвращает claims аутентифицированного пользователя из контекста.
// Второе значение false означает, что запрос не проходил через JWTMiddleware.
func Claims(ctx context.Context) (*jwtlib.CustomClaims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*jwtlib.CustomClaims)
	return claims, ok
}
