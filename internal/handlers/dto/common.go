package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/simplyinvite/showcase-backend/internal/domain/errors"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// problemBaseURL retorna a base dos URIs de problema. O valor vem do
// middleware que injeta API_BASE_URL; fora dele (testes sem o middleware)
// cai no endereço local.
func problemBaseURL(c *gin.Context) string {
	if baseURL := c.GetString("base_url"); baseURL != "" {
		return baseURL
	}
	return "http://localhost:8080"
}

// NewErrorResponseI18n cria uma resposta de erro com título e detalhe
// traduzidos pelo serviço de i18n do contexto
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	return ErrorResponse{
		Type:     problemBaseURL(c) + problemType,
		Title:    T(c, titleKey, params...),
		Status:   status,
		Detail:   T(c, detailKey, params...),
		Instance: c.Request.URL.Path,
	}
}

// ValidationErrorResponseI18n cria uma resposta 400 com os erros de campo
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		errors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		400,
	)
	response.Errors = validationErrors
	return response
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
func UnauthorizedErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		"error.unauthorized.detail",
		401,
	)
}
