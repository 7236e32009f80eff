package scheduling

import (
	"fmt"
	"regexp"

	"github.com/sirupsen/logrus"

	"github.com/sectorres/vendas-insights-wa/infrastructure/repository"
	"github.com/sectorres/vendas-insights-wa/internal/domain"
	"github.com/sectorres/vendas-insights-wa/pkg/apiErrors"
)

// Horário de disparo no formato HH:MM de 24 horas
var scheduleTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type Scheduler interface {
	ListSchedules() ([]*domain.NotificationSchedule, error)
	GetSchedule(id string) (*domain.NotificationSchedule, error)
	CreateSchedule(schedule *domain.NotificationSchedule) (*domain.NotificationSchedule, error)
	UpdateSchedule(schedule *domain.NotificationSchedule) (*domain.NotificationSchedule, error)
	DeleteSchedule(id string) error
	SetScheduleActive(id string, active bool) error
}

type Service struct {
	scheduleRepository repository.ScheduleRepository
}

func NewService(scheduleRepository repository.ScheduleRepository) Scheduler {
	return &Service{
		scheduleRepository: scheduleRepository,
	}
}

func (s *Service) ListSchedules() ([]*domain.NotificationSchedule, error) {
	schedules, err := s.scheduleRepository.ListSchedules()
	if err != nil {
		logrus.Error("Error listing schedules on the repository:", err)
		return nil, NewScheduleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar agendamentos no banco de dados")
	}

	return schedules, nil
}

func (s *Service) GetSchedule(id string) (*domain.NotificationSchedule, error) {
	schedule, err := s.scheduleRepository.GetScheduleByID(id)
	if err != nil {
		logrus.Error("Error getting schedule by id on the repository:", err)
		return nil, NewScheduleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar agendamento no banco de dados")
	}

	if schedule == nil {
		return nil, NewScheduleErrorWithID(ErrScheduleNotFound, apiErrors.ErrScheduleNotFound, id, "Agendamento não encontrado")
	}

	return schedule, nil
}

func (s *Service) CreateSchedule(schedule *domain.NotificationSchedule) (*domain.NotificationSchedule, error) {
	if err := validateSchedule(schedule); err != nil {
		return nil, err
	}

	created, err := s.scheduleRepository.CreateSchedule(schedule)
	if err != nil {
		logrus.Error("Error creating schedule on the repository:", err)
		return nil, NewScheduleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar agendamento no banco de dados")
	}

	logrus.WithFields(logrus.Fields{
		"schedule_id":   created.ID,
		"schedule_name": created.Name,
		"report_type":   created.ReportKind,
	}).Info("Agendamento criado")

	return created, nil
}

func (s *Service) UpdateSchedule(schedule *domain.NotificationSchedule) (*domain.NotificationSchedule, error) {
	if schedule.ID == "" {
		return nil, NewScheduleError(ErrScheduleNotFound, apiErrors.ErrMissingRequiredData, "ID do agendamento é obrigatório")
	}

	if err := validateSchedule(schedule); err != nil {
		return nil, err
	}

	// Confere a existência antes para distinguir 404 de falha de banco
	existing, err := s.GetSchedule(schedule.ID)
	if err != nil {
		return nil, err
	}

	schedule.CreatedAt = existing.CreatedAt

	if err := s.scheduleRepository.UpdateSchedule(schedule); err != nil {
		logrus.Error("Error updating schedule on the repository:", err)
		return nil, NewScheduleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, schedule.ID, "Falha ao atualizar agendamento no banco de dados")
	}

	return schedule, nil
}

func (s *Service) DeleteSchedule(id string) error {
	if _, err := s.GetSchedule(id); err != nil {
		return err
	}

	if err := s.scheduleRepository.DeleteSchedule(id); err != nil {
		logrus.Error("Error deleting schedule on the repository:", err)
		return NewScheduleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao remover agendamento no banco de dados")
	}

	logrus.WithField("schedule_id", id).Info("Agendamento removido")

	return nil
}

func (s *Service) SetScheduleActive(id string, active bool) error {
	if _, err := s.GetSchedule(id); err != nil {
		return err
	}

	if err := s.scheduleRepository.SetScheduleActive(id, active); err != nil {
		logrus.Error("Error toggling schedule on the repository:", err)
		return NewScheduleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao alterar status do agendamento no banco de dados")
	}

	return nil
}

func validateSchedule(schedule *domain.NotificationSchedule) error {
	if schedule.Name == "" {
		return NewScheduleError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "Nome do agendamento é obrigatório")
	}

	if !schedule.ReportKind.IsValid() {
		return NewScheduleError(ErrInvalidReportKind, apiErrors.ErrInvalidFormat, fmt.Sprintf("Tipo de relatório inválido: %s", schedule.ReportKind))
	}

	if !scheduleTimePattern.MatchString(schedule.ScheduleTime) {
		return NewScheduleError(ErrInvalidScheduleTime, apiErrors.ErrInvalidFormat, fmt.Sprintf("Horário deve estar no formato HH:MM: %s", schedule.ScheduleTime))
	}

	if len(schedule.ScheduleDays) == 0 {
		return NewScheduleError(ErrInvalidScheduleDay, apiErrors.ErrMissingRequiredData, "Pelo menos um dia da semana é obrigatório")
	}

	for _, day := range schedule.ScheduleDays {
		if day < 0 || day > 6 {
			return NewScheduleError(ErrInvalidScheduleDay, apiErrors.ErrInvalidFormat, fmt.Sprintf("Dia da semana deve estar entre 0 (domingo) e 6 (sábado): %d", day))
		}
	}

	if len(schedule.PhoneNumbers) == 0 {
		return NewScheduleError(ErrPhoneNumberRequired, apiErrors.ErrMissingRequiredData, "Pelo menos um número de telefone é obrigatório")
	}

	return nil
}
