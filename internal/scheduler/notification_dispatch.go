package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/sectorres/vendas-insights-wa/internal/config"
	"github.com/sectorres/vendas-insights-wa/internal/usecases/notifying"
)

// NotificationDispatchConfig representa a configuração do agendador de despacho de notificações
type NotificationDispatchConfig struct {
	CronSchedule    string
	DispatchEnabled bool
}

// DispatchStatus é o retrato do agendador exposto pela API
type DispatchStatus struct {
	Enabled         bool       `json:"enabled"`
	Running         bool       `json:"running"`
	CronSchedule    string     `json:"cron_schedule"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

// NotificationDispatchService gerencia o agendamento da avaliação dos
// agendamentos de notificação. A cada minuto o notifier decide quais
// agendamentos disparam.
type NotificationDispatchService struct {
	scheduler          *gocron.Scheduler
	config             NotificationDispatchConfig
	notifier           notifying.Notifier
	dispatchRunning    bool
	syncMutex          sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewNotificationDispatchService cria uma nova instância do serviço de despacho de notificações
func NewNotificationDispatchService(
	notifier notifying.Notifier,
	appConfig *config.Config,
	location *time.Location,
) *NotificationDispatchService {
	dispatchConfig := NotificationDispatchConfig{
		CronSchedule:    appConfig.NotificationDispatch.CronSchedule,
		DispatchEnabled: appConfig.NotificationDispatch.Enabled,
	}

	if location == nil {
		location = time.Local
	}

	scheduler := gocron.NewScheduler(location)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    dispatchConfig.CronSchedule,
		"dispatch_enabled": dispatchConfig.DispatchEnabled,
	}).Info("Configuração do agendador de despacho de notificações carregada")

	return &NotificationDispatchService{
		scheduler:       scheduler,
		config:          dispatchConfig,
		notifier:        notifier,
		dispatchRunning: false,
	}
}

// Start inicia o agendador
func (s *NotificationDispatchService) Start(ctx context.Context) error {
	if !s.config.DispatchEnabled {
		logrus.Info("Despacho de notificações desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de despacho de notificações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.dispatchNotifications(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar despacho de notificações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de despacho de notificações")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa uma avaliação imediata, fora do cron. Usado pelo endpoint
// manual da API.
func (s *NotificationDispatchService) RunNow(ctx context.Context) (*notifying.DispatchSummary, error) {
	s.syncMutex.Lock()
	if s.dispatchRunning {
		s.syncMutex.Unlock()
		return nil, fmt.Errorf("despacho de notificações já em andamento")
	}
	s.dispatchRunning = true
	s.lastRunStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.dispatchRunning = false
		s.lastRunCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	return s.notifier.Run(ctx, time.Now())
}

// Status devolve o retrato atual do agendador
func (s *NotificationDispatchService) Status() DispatchStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := DispatchStatus{
		Enabled:      s.config.DispatchEnabled,
		Running:      s.dispatchRunning,
		CronSchedule: s.config.CronSchedule,
	}

	if !s.lastRunStartedAt.IsZero() {
		startedAt := s.lastRunStartedAt
		status.LastStartedAt = &startedAt
	}

	if !s.lastRunCompletedAt.IsZero() {
		completedAt := s.lastRunCompletedAt
		status.LastCompletedAt = &completedAt
	}

	return status
}

// dispatchNotifications avalia os agendamentos do minuto corrente
func (s *NotificationDispatchService) dispatchNotifications(ctx context.Context) {
	startTime := time.Now()

	s.syncMutex.Lock()
	if s.dispatchRunning {
		s.syncMutex.Unlock()
		logrus.Info("Despacho de notificações já em andamento, ignorando")
		return
	}
	s.dispatchRunning = true
	s.lastRunStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.dispatchRunning = false
		s.lastRunCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	summary, err := s.notifier.Run(ctx, startTime)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar o despacho de notificações")
		return
	}

	if summary.Processed > 0 || summary.Errors > 0 {
		logrus.WithFields(logrus.Fields{
			"duration":  time.Since(startTime).String(),
			"evaluated": summary.Evaluated,
			"processed": summary.Processed,
			"errors":    summary.Errors,
		}).Info("Despacho de notificações finalizado")
	}
}
