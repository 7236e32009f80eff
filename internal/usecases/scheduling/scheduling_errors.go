package scheduling

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de agendamentos
var (
	// Erros de validação
	ErrNameRequired        = errors.New("schedule name is required")
	ErrInvalidReportKind   = errors.New("invalid report type")
	ErrInvalidScheduleTime = errors.New("invalid schedule time")
	ErrInvalidScheduleDay  = errors.New("invalid schedule day")
	ErrPhoneNumberRequired = errors.New("at least one phone number is required")
	ErrScheduleNotFound    = errors.New("schedule not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// ScheduleError é um erro com contexto adicional para agendamentos
type ScheduleError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	ScheduleID string // ID do agendamento envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *ScheduleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ScheduleError) Unwrap() error {
	return e.Err
}

// NewScheduleError cria um novo ScheduleError
func NewScheduleError(err error, code string, details string) *ScheduleError {
	return &ScheduleError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewScheduleErrorWithID cria um novo ScheduleError com ID do agendamento
func NewScheduleErrorWithID(err error, code string, scheduleID string, details string) *ScheduleError {
	return &ScheduleError{
		Err:        err,
		Code:       code,
		ScheduleID: scheduleID,
		Details:    details,
	}
}
