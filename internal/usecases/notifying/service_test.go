package notifying

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	insightingmocks "github.com/sectorres/vendas-insights-wa/internal/usecases/insighting/mocks"

	evolutionmocks "github.com/sectorres/vendas-insights-wa/infrastructure/integrator/evolution/mocks"
	repositorymocks "github.com/sectorres/vendas-insights-wa/infrastructure/repository/mocks"
	"github.com/sectorres/vendas-insights-wa/internal/domain"
)

type serviceMocks struct {
	schedules *repositorymocks.MockScheduleRepository
	history   *repositorymocks.MockNotificationHistoryRepository
	insighter *insightingmocks.MockInsighter
	whatsapp  *evolutionmocks.MockWhatsAppIntegrator
}

func newServiceWithMocks(t *testing.T) (Notifier, *serviceMocks) {
	ctrl := gomock.NewController(t)

	mocks := &serviceMocks{
		schedules: repositorymocks.NewMockScheduleRepository(ctrl),
		history:   repositorymocks.NewMockNotificationHistoryRepository(ctrl),
		insighter: insightingmocks.NewMockInsighter(ctrl),
		whatsapp:  evolutionmocks.NewMockWhatsAppIntegrator(ctrl),
	}

	service := NewService(mocks.schedules, mocks.history, mocks.insighter, mocks.whatsapp, time.UTC)

	return service, mocks
}

// 15/03/2024 foi uma sexta-feira (weekday 5)
var dispatchMoment = time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)

func dueSchedule() *domain.NotificationSchedule {
	return &domain.NotificationSchedule{
		ID:           "abc123",
		Name:         "Fechamento do dia",
		ReportKind:   domain.ReportKindDailySales,
		ScheduleTime: "08:30",
		ScheduleDays: []int64{5},
		PhoneNumbers: []string{"5511999990001", "5511999990002"},
		StoreCodes:   []int64{1, 5},
		Active:       true,
	}
}

func dailyResult() *domain.AggregateResult {
	return &domain.AggregateResult{
		Kind:  domain.ReportKindDailySales,
		Data:  map[string]map[string]float64{"LOJA-01": {"15/03/2024": 100}},
		Total: 100,
	}
}

func TestRun_DispatchesDueSchedule(t *testing.T) {
	service, mocks := newServiceWithMocks(t)
	schedule := dueSchedule()

	mocks.schedules.EXPECT().ListActiveSchedules().Return([]*domain.NotificationSchedule{schedule}, nil)

	window, err := domain.NewDateWindow("20240315", "20240315")
	require.NoError(t, err)

	mocks.insighter.EXPECT().
		Preview(window, domain.ReportKindDailySales, []int64{1, 5}).
		Return(dailyResult(), nil)

	var (
		mu       sync.Mutex
		sent     []string
		recorded []*domain.NotificationHistory
	)

	mocks.whatsapp.EXPECT().
		SendText(gomock.Any(), gomock.Any()).
		DoAndReturn(func(number, message string) error {
			assert.Contains(t, message, "📊 *Relatório: Fechamento do dia*")
			mu.Lock()
			sent = append(sent, number)
			mu.Unlock()
			return nil
		}).
		Times(2)

	mocks.history.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(entry *domain.NotificationHistory) error {
			mu.Lock()
			recorded = append(recorded, entry)
			mu.Unlock()
			return nil
		}).
		Times(2)

	summary, err := service.Run(context.Background(), dispatchMoment)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Evaluated)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 0, summary.Errors)
	assert.ElementsMatch(t, []string{"5511999990001", "5511999990002"}, sent)

	require.Len(t, recorded, 2)
	for _, entry := range recorded {
		assert.Equal(t, "abc123", entry.ScheduleID)
		assert.Equal(t, domain.NotificationStatusSent, entry.Status)
		assert.Nil(t, entry.ErrorMessage)
	}
}

func TestRun_SkipsScheduleOutsideItsMinute(t *testing.T) {
	service, mocks := newServiceWithMocks(t)

	schedule := dueSchedule()
	schedule.ScheduleTime = "09:00"

	mocks.schedules.EXPECT().ListActiveSchedules().Return([]*domain.NotificationSchedule{schedule}, nil)

	summary, err := service.Run(context.Background(), dispatchMoment)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Evaluated)
	assert.Equal(t, 0, summary.Processed)
	assert.Equal(t, 0, summary.Errors)
}

func TestRun_SkipsScheduleOnWrongWeekday(t *testing.T) {
	service, mocks := newServiceWithMocks(t)

	schedule := dueSchedule()
	schedule.ScheduleDays = []int64{0, 6} // fim de semana

	mocks.schedules.EXPECT().ListActiveSchedules().Return([]*domain.NotificationSchedule{schedule}, nil)

	summary, err := service.Run(context.Background(), dispatchMoment)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Processed)
}

func TestRun_PartialSendFailure(t *testing.T) {
	service, mocks := newServiceWithMocks(t)
	schedule := dueSchedule()

	mocks.schedules.EXPECT().ListActiveSchedules().Return([]*domain.NotificationSchedule{schedule}, nil)
	mocks.insighter.EXPECT().
		Preview(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(dailyResult(), nil)

	mocks.whatsapp.EXPECT().SendText("5511999990001", gomock.Any()).Return(nil)
	mocks.whatsapp.EXPECT().SendText("5511999990002", gomock.Any()).Return(errors.New("número inválido"))

	var (
		mu       sync.Mutex
		recorded []*domain.NotificationHistory
	)
	mocks.history.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(entry *domain.NotificationHistory) error {
			mu.Lock()
			recorded = append(recorded, entry)
			mu.Unlock()
			return nil
		}).
		Times(2)

	summary, err := service.Run(context.Background(), dispatchMoment)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 0, summary.Errors)

	statuses := map[string]string{}
	for _, entry := range recorded {
		statuses[entry.PhoneNumber] = entry.Status
	}
	assert.Equal(t, domain.NotificationStatusSent, statuses["5511999990001"])
	assert.Equal(t, domain.NotificationStatusFailed, statuses["5511999990002"])
}

func TestRun_AllSendsFailed(t *testing.T) {
	service, mocks := newServiceWithMocks(t)
	schedule := dueSchedule()

	mocks.schedules.EXPECT().ListActiveSchedules().Return([]*domain.NotificationSchedule{schedule}, nil)
	mocks.insighter.EXPECT().
		Preview(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(dailyResult(), nil)

	mocks.whatsapp.EXPECT().
		SendText(gomock.Any(), gomock.Any()).
		Return(errors.New("instância desconectada")).
		Times(2)

	mocks.history.EXPECT().Insert(gomock.Any()).Return(nil).Times(2)

	summary, err := service.Run(context.Background(), dispatchMoment)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Processed)
	assert.Equal(t, 1, summary.Errors)
}

func TestRun_PreviewFailureIsolated(t *testing.T) {
	service, mocks := newServiceWithMocks(t)

	broken := dueSchedule()
	broken.ID = "broken"
	broken.Name = "Com erro"
	broken.StoreCodes = []int64{99}

	healthy := dueSchedule()
	healthy.ID = "healthy"
	healthy.PhoneNumbers = []string{"5511999990009"}

	mocks.schedules.EXPECT().
		ListActiveSchedules().
		Return([]*domain.NotificationSchedule{broken, healthy}, nil)

	// A falha de um agendamento não interrompe o outro
	mocks.insighter.EXPECT().
		Preview(gomock.Any(), gomock.Any(), []int64{99}).
		Return(nil, errors.New("integração fora do ar"))
	mocks.insighter.EXPECT().
		Preview(gomock.Any(), gomock.Any(), []int64{1, 5}).
		Return(dailyResult(), nil)

	mocks.whatsapp.EXPECT().SendText("5511999990009", gomock.Any()).Return(nil)
	mocks.history.EXPECT().Insert(gomock.Any()).Return(nil)

	summary, err := service.Run(context.Background(), dispatchMoment)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Evaluated)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Errors)
}

func TestRun_ListSchedulesError(t *testing.T) {
	service, mocks := newServiceWithMocks(t)

	mocks.schedules.EXPECT().ListActiveSchedules().Return(nil, errors.New("conexão recusada"))

	summary, err := service.Run(context.Background(), dispatchMoment)

	require.Error(t, err)
	assert.Nil(t, summary)
}
