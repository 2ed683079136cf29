package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
	"github.com/postoverde/cashback-backend/internal/infrastructure/auth"
	"github.com/postoverde/cashback-backend/internal/infrastructure/i18n"
)

const (
	// ClaimsContextKey é a chave usada para armazenar os claims do token
	// no contexto do Gin
	ClaimsContextKey = "auth_claims"
)

// AuthMiddleware valida o token Bearer das rotas protegidas
type AuthMiddleware struct {
	tokens *auth.TokenManager
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(tokens *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth exige um token Bearer válido no header Authorization
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.parseBearer(c)
		if !ok {
			m.abort(c, http.StatusUnauthorized, "error.unauthorized")
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// RequireRole exige um token válido cujo papel esteja entre os aceitos
func (m *AuthMiddleware) RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.parseBearer(c)
		if !ok {
			m.abort(c, http.StatusUnauthorized, "error.unauthorized")
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Set(ClaimsContextKey, claims)
				c.Next()
				return
			}
		}

		m.abort(c, http.StatusForbidden, "error.forbidden")
	}
}

func (m *AuthMiddleware) parseBearer(c *gin.Context) (*auth.Claims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, false
	}

	claims, err := m.tokens.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, false
	}
	return claims, true
}

// abort responde com o corpo de erro traduzido sem depender do pacote
// dto (que importa este pacote para as chaves de contexto)
func (m *AuthMiddleware) abort(c *gin.Context, status int, key string) {
	message := key
	if raw, exists := c.Get(I18nServiceContextKey); exists {
		if service, ok := raw.(*i18n.Service); ok {
			lang := service.GetDefaultLanguage()
			if l, exists := c.Get(LanguageContextKey); exists {
				if ls, ok := l.(string); ok {
					lang = ls
				}
			}
			message = service.T(lang, key)
		}
	}

	c.AbortWithStatusJSON(status, gin.H{"erro": message})
}

// ClaimsFromContext retorna os claims do token autenticado, se houver
func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	raw, exists := c.Get(ClaimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := raw.(*auth.Claims)
	return claims, ok
}
