package authenticating

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de autenticação
var (
	ErrMissingRequiredData = errors.New("missing required data")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserDisabled        = errors.New("user disabled")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrInvalidToken        = errors.New("invalid token")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	UserID  int    // ID do usuário envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError cria um novo AuthError
func NewAuthError(err error, code string, details string) *AuthError {
	return &AuthError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewUserAuthError cria um novo AuthError com ID do usuário
func NewUserAuthError(err error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     err,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
