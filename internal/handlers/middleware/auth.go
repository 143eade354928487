package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	domainerrors "github.com/simplyinvite/showcase-backend/internal/domain/errors"
	"github.com/simplyinvite/showcase-backend/internal/domain/repositories"
	"github.com/simplyinvite/showcase-backend/internal/infrastructure/auth"
	"github.com/simplyinvite/showcase-backend/internal/infrastructure/i18n"
)

// CurrentUserContextKey é a chave usada para armazenar o usuário autenticado
// no contexto do Gin
const CurrentUserContextKey = "current_user"

// AuthMiddleware valida o token Bearer e carrega o usuário autenticado
type AuthMiddleware struct {
	tokens   *auth.Manager
	userRepo repositories.UserRepository
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(tokens *auth.Manager, userRepo repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// RequireAuth exige um token Bearer válido. O subject do token é o email
// do usuário; o usuário correspondente precisa existir e é colocado no
// contexto da requisição.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abortWithProblem(c, http.StatusUnauthorized, domainerrors.ProblemTypeUnauthorized, "error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		claims, err := m.tokens.Parse(token)
		if err != nil {
			abortWithProblem(c, http.StatusUnauthorized, domainerrors.ProblemTypeUnauthorized, "error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		user, err := m.userRepo.FindByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			abortWithProblem(c, http.StatusInternalServerError, domainerrors.ProblemTypeInternal, "error.internal.title", "error.internal.detail")
			return
		}
		if user == nil {
			// Token válido de um usuário que não existe mais
			abortWithProblem(c, http.StatusUnauthorized, domainerrors.ProblemTypeUnauthorized, "error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		c.Set(CurrentUserContextKey, user)
		c.Next()
	}
}

// RequireRole exige que o usuário autenticado tenha um dos roles informados
func (m *AuthMiddleware) RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortWithProblem(c, http.StatusUnauthorized, domainerrors.ProblemTypeUnauthorized, "error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		for _, role := range roles {
			if user.Role.Is(role) {
				c.Next()
				return
			}
		}

		abortWithProblem(c, http.StatusForbidden, domainerrors.ProblemTypeForbidden, "error.forbidden.title", "error.forbidden.detail")
	}
}

// CurrentUser retorna o usuário autenticado colocado no contexto
// pelo RequireAuth
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	value, exists := c.Get(CurrentUserContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*entities.User)
	return user, ok
}

// abortWithProblem escreve uma resposta RFC 7807 mínima.
// Não usa o pacote dto para evitar ciclo de importação.
func abortWithProblem(c *gin.Context, status int, problemType, titleKey, detailKey string) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	title, detail := titleKey, detailKey
	if value, exists := c.Get(I18nServiceContextKey); exists {
		if service, ok := value.(*i18n.Service); ok {
			lang := c.GetString(LanguageContextKey)
			if lang == "" {
				lang = service.GetDefaultLanguage()
			}
			title = service.T(lang, titleKey)
			detail = service.T(lang, detailKey)
		}
	}

	c.AbortWithStatusJSON(status, gin.H{
		"type":     baseURL + problemType,
		"title":    title,
		"status":   status,
		"detail":   detail,
		"instance": c.Request.URL.Path,
	})
}
