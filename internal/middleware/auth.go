package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/auth"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
)

const claimsKey = "auth_claims"

// Auth проверяет bearer-токен и пускает дальше только перечисленные роли.
// Пустой список ролей означает: достаточно любого валидного токена.
func Auth(tokens *auth.TokenManager, roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authorization required"})
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid or expired token"})
			return
		}

		if len(roles) > 0 && !roleAllowed(claims.Role, roles) {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "insufficient permissions"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

func roleAllowed(role domain.Role, allowed []domain.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// ClaimsFrom возвращает claims, положенные Auth в контекст запроса.
func ClaimsFrom(c *ginext.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
