package domain

import "time"

// Status das entradas do histórico de notificações
const (
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

// NotificationSchedule é um agendamento de envio de relatório por WhatsApp.
// ScheduleDays usa a convenção 0=domingo..6=sábado.
type NotificationSchedule struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	ReportKind   ReportKind `json:"report_type"`
	ScheduleTime string     `json:"schedule_time"` // HH:MM
	ScheduleDays []int64    `json:"schedule_days"`
	PhoneNumbers []string   `json:"phone_numbers"`
	StoreCodes   []int64    `json:"empresas_origem,omitempty"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsDueAt verifica se o agendamento deve disparar no minuto informado.
func (s *NotificationSchedule) IsDueAt(now time.Time) bool {
	if !s.Active {
		return false
	}

	if s.ScheduleTime != now.Format("15:04") {
		return false
	}

	weekday := int64(now.Weekday())
	for _, day := range s.ScheduleDays {
		if day == weekday {
			return true
		}
	}

	return false
}

// NotificationHistory registra o resultado de um envio para um número.
type NotificationHistory struct {
	ID           int64      `json:"id"`
	ScheduleID   string     `json:"schedule_id"`
	PhoneNumber  string     `json:"phone_number"`
	ReportKind   ReportKind `json:"report_type"`
	Status       string     `json:"status"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
