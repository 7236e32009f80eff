package notifying

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sectorres/vendas-insights-wa/infrastructure/integrator/evolution"
	"github.com/sectorres/vendas-insights-wa/infrastructure/repository"
	"github.com/sectorres/vendas-insights-wa/internal/domain"
	"github.com/sectorres/vendas-insights-wa/internal/usecases/insighting"
	"github.com/sectorres/vendas-insights-wa/pkg/utils"
)

type Service struct {
	schedules repository.ScheduleRepository
	history   repository.NotificationHistoryRepository
	insighter insighting.Insighter
	whatsapp  evolution.WhatsAppIntegrator
	location  *time.Location
}

func NewService(
	schedules repository.ScheduleRepository,
	history repository.NotificationHistoryRepository,
	insighter insighting.Insighter,
	whatsapp evolution.WhatsAppIntegrator,
	location *time.Location,
) Notifier {
	if location == nil {
		location = time.Local
	}

	return &Service{
		schedules: schedules,
		history:   history,
		insighter: insighter,
		whatsapp:  whatsapp,
		location:  location,
	}
}

// Run avalia os agendamentos ativos contra o minuto informado e dispara os
// relatórios devidos. Cada agendamento roda isolado: a falha de um nunca
// interrompe os demais.
func (s *Service) Run(ctx context.Context, now time.Time) (*DispatchSummary, error) {
	schedules, err := s.schedules.ListActiveSchedules()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar agendamentos ativos: %w", err)
	}

	localNow := now.In(s.location)
	summary := &DispatchSummary{Evaluated: len(schedules)}

	var (
		wg        sync.WaitGroup
		syncMutex sync.Mutex
	)

	for _, schedule := range schedules {
		if !schedule.IsDueAt(localNow) {
			continue
		}

		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(schedule *domain.NotificationSchedule) {
			defer wg.Done()

			err := s.processSchedule(schedule, localNow)

			syncMutex.Lock()
			defer syncMutex.Unlock()
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"schedule_id":   schedule.ID,
					"schedule_name": schedule.Name,
				}).Errorf("Erro ao processar agendamento: %v", err)
				summary.Errors++
				return
			}
			summary.Processed++
		}(schedule)
	}

	wg.Wait()

	if summary.Processed > 0 || summary.Errors > 0 {
		logrus.WithFields(logrus.Fields{
			"evaluated": summary.Evaluated,
			"processed": summary.Processed,
			"errors":    summary.Errors,
		}).Info("Despacho de notificações concluído")
	}

	return summary, nil
}

func (s *Service) processSchedule(schedule *domain.NotificationSchedule, localNow time.Time) error {
	today := localNow.Format("20060102")

	window, err := domain.NewDateWindow(today, today)
	if err != nil {
		return err
	}

	result, err := s.insighter.Preview(window, schedule.ReportKind, schedule.StoreCodes)
	if err != nil {
		return fmt.Errorf("erro ao gerar o relatório: %w", err)
	}

	message := FormatReportMessage(schedule.Name, result, utils.ToBRDate(today))

	var (
		wg     sync.WaitGroup
		failed int
		mu     sync.Mutex
	)

	for _, number := range schedule.PhoneNumbers {
		wg.Add(1)
		go func(number string) {
			defer wg.Done()

			sendErr := s.whatsapp.SendText(number, message)
			s.recordHistory(schedule, number, sendErr)

			if sendErr != nil {
				logrus.WithFields(logrus.Fields{
					"schedule_id":  schedule.ID,
					"phone_number": number,
				}).Errorf("Erro ao enviar mensagem: %v", sendErr)

				mu.Lock()
				failed++
				mu.Unlock()
			}
		}(number)
	}

	wg.Wait()

	if len(schedule.PhoneNumbers) > 0 && failed == len(schedule.PhoneNumbers) {
		return fmt.Errorf("todos os %d envios do agendamento falharam", failed)
	}

	return nil
}

// recordHistory insere uma linha de histórico por número. Falha de escrita no
// histórico não derruba o envio, apenas gera log.
func (s *Service) recordHistory(schedule *domain.NotificationSchedule, number string, sendErr error) {
	entry := &domain.NotificationHistory{
		ScheduleID:  schedule.ID,
		PhoneNumber: number,
		ReportKind:  schedule.ReportKind,
		Status:      domain.NotificationStatusSent,
	}

	if sendErr != nil {
		message := sendErr.Error()
		entry.Status = domain.NotificationStatusFailed
		entry.ErrorMessage = &message
	}

	if err := s.history.Insert(entry); err != nil {
		logrus.WithFields(logrus.Fields{
			"schedule_id":  schedule.ID,
			"phone_number": number,
		}).Errorf("Erro ao registrar histórico de notificação: %v", err)
	}
}
