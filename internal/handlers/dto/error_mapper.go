package dto

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/simplyinvite/showcase-backend/internal/domain/errors"
)

// RespondError traduz um erro de domínio para a resposta RFC 7807
// correspondente e a escreve no contexto. As mensagens dos erros de
// domínio são chaves de tradução, então o detail sai localizado.
func RespondError(c *gin.Context, err error) {
	status, problemType, titleKey := classify(err)

	var domainErr *errors.DomainError
	if stderrors.As(err, &domainErr) {
		response := NewErrorResponseI18n(c, domainErr.Type, domainErr.Title, domainErr.Message, status)
		c.JSON(status, response)
		return
	}

	response := NewErrorResponseI18n(c, problemType, titleKey, err.Error(), status)
	c.JSON(status, response)
}

// classify mapeia cada erro de domínio para o status HTTP e o tipo
// de problema. Erros desconhecidos viram 500.
func classify(err error) (int, string, string) {
	switch {
	case stderrors.Is(err, errors.ErrInvalidCredentials),
		stderrors.Is(err, errors.ErrUnauthorized):
		return http.StatusUnauthorized, errors.ProblemTypeUnauthorized, "error.unauthorized.title"

	case stderrors.Is(err, errors.ErrSenderNotAllowed),
		stderrors.Is(err, errors.ErrInvitationNotRecipient):
		return http.StatusForbidden, errors.ProblemTypeForbidden, "error.forbidden.title"

	case stderrors.Is(err, errors.ErrUserNotFound),
		stderrors.Is(err, errors.ErrCompanyNotFound),
		stderrors.Is(err, errors.ErrProjectNotFound),
		stderrors.Is(err, errors.ErrProfileNotFound),
		stderrors.Is(err, errors.ErrInvitationNotFound),
		stderrors.Is(err, errors.ErrRecipientNotFound):
		return http.StatusNotFound, errors.ProblemTypeNotFound, "error.not_found.title"

	case stderrors.Is(err, errors.ErrEmailAlreadyExists),
		stderrors.Is(err, errors.ErrInvitationResolved):
		return http.StatusConflict, errors.ProblemTypeConflict, "error.conflict.title"

	case stderrors.Is(err, errors.ErrInvalidRecipient),
		stderrors.Is(err, errors.ErrInvalidResponseStatus),
		stderrors.Is(err, errors.ErrInvalidEmail):
		return http.StatusBadRequest, errors.ProblemTypeBadRequest, "error.bad_request.title"

	default:
		var domainErr *errors.DomainError
		if stderrors.As(err, &domainErr) && domainErr.Type == errors.ProblemTypeValidation {
			return http.StatusBadRequest, errors.ProblemTypeValidation, "error.validation.title"
		}
		return http.StatusInternalServerError, errors.ProblemTypeInternal, "error.internal.title"
	}
}

// RespondBindingError trata erros de binding do Gin. Erros do
// validator viram uma lista de erros de campo; o resto vira um
// 400 genérico.
func RespondBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		fieldErrors := make([]ValidationError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fieldErrors = append(fieldErrors, ValidationError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
				Tag:     fe.Tag(),
			})
		}
		c.JSON(http.StatusBadRequest, ValidationErrorResponseI18n(c, fieldErrors))
		return
	}

	response := NewErrorResponseI18n(c,
		errors.ProblemTypeBadRequest,
		"error.bad_request.title",
		"error.validation.detail",
		http.StatusBadRequest,
	)
	c.JSON(http.StatusBadRequest, response)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "min":
		return "must have at least " + fe.Param() + " characters"
	case "max":
		return "must have at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "datetime":
		return "must be a date in the format " + fe.Param()
	default:
		return "failed validation on " + fe.Tag()
	}
}
