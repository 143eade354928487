package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrEmailAlreadyExists = errors.New("error.email_already_exists")
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrUnauthorized       = errors.New("error.unauthorized")

	ErrCompanyNotFound = errors.New("error.company_not_found")
	ErrProjectNotFound = errors.New("error.project_not_found")
	ErrProfileNotFound = errors.New("error.profile_not_found")
)

// Invitation workflow errors
var (
	ErrInvitationNotFound     = errors.New("error.invitation_not_found")
	ErrRecipientNotFound      = errors.New("error.recipient_not_found")
	ErrInvalidRecipient       = errors.New("error.invalid_recipient")
	ErrSenderNotAllowed       = errors.New("error.sender_not_allowed")
	ErrInvitationNotRecipient = errors.New("error.invitation_not_recipient")
	ErrInvitationResolved     = errors.New("error.invitation_already_answered")
	ErrInvalidResponseStatus  = errors.New("error.invalid_response_status")
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
