package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/moogar0880/problems"

	"github.com/flexilease/flexilease-backend/internal/infrastructure/i18n"
)

// AuthUserContextKey é a chave usada para armazenar o id do usuário
// autenticado no contexto do Gin
const AuthUserContextKey = "auth_user_id"

// AuthMiddleware valida o token JWT das requisições protegidas
type AuthMiddleware struct {
	secret      []byte
	i18nService *i18n.Service
	baseURL     string
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(secret string, i18nService *i18n.Service, baseURL string) *AuthMiddleware {
	return &AuthMiddleware{
		secret:      []byte(secret),
		i18nService: i18nService,
		baseURL:     baseURL,
	}
}

// RequireAuth exige um token Bearer válido. Requisição sem token
// recebe 401; token presente mas inválido ou expirado recebe 403.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			m.abortWithProblem(c, http.StatusUnauthorized,
				"/problems/unauthorized",
				"error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.secret, nil
		})
		if err != nil || !token.Valid {
			m.abortWithProblem(c, http.StatusForbidden,
				"/problems/forbidden",
				"error.forbidden.title", "error.forbidden.detail")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			m.abortWithProblem(c, http.StatusForbidden,
				"/problems/forbidden",
				"error.forbidden.title", "error.forbidden.detail")
			return
		}

		if id, ok := claims["id"].(string); ok {
			c.Set(AuthUserContextKey, id)
		}

		c.Next()
	}
}

// abortWithProblem responde com um erro RFC 7807 traduzido e aborta a
// cadeia de handlers
func (m *AuthMiddleware) abortWithProblem(c *gin.Context, status int, problemType, titleKey, detailKey string) {
	lang := c.GetString(LanguageContextKey)
	if lang == "" {
		lang = m.i18nService.GetDefaultLanguage()
	}

	problem := problems.NewStatusProblem(status)
	problem.Type = m.baseURL + problemType
	problem.Title = m.i18nService.T(lang, titleKey)
	problem.Detail = m.i18nService.T(lang, detailKey)
	problem.Instance = c.Request.URL.Path

	c.AbortWithStatusJSON(status, problem)
}
