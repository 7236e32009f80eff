package scheduling

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repositorymocks "github.com/sectorres/vendas-insights-wa/infrastructure/repository/mocks"
	"github.com/sectorres/vendas-insights-wa/internal/domain"
)

func validSchedule() *domain.NotificationSchedule {
	return &domain.NotificationSchedule{
		Name:         "Fechamento do dia",
		ReportKind:   domain.ReportKindDailySales,
		ScheduleTime: "18:30",
		ScheduleDays: []int64{1, 2, 3, 4, 5},
		PhoneNumbers: []string{"5511999990001"},
		StoreCodes:   []int64{1},
		Active:       true,
	}
}

func TestCreateSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repositorymocks.NewMockScheduleRepository(ctrl)
	service := NewService(repo)

	schedule := validSchedule()

	repo.EXPECT().
		CreateSchedule(schedule).
		DoAndReturn(func(s *domain.NotificationSchedule) (*domain.NotificationSchedule, error) {
			s.ID = "abc123"
			return s, nil
		})

	created, err := service.CreateSchedule(schedule)

	require.NoError(t, err)
	assert.Equal(t, "abc123", created.ID)
}

func TestCreateSchedule_Validation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(s *domain.NotificationSchedule)
		expectedErr error
	}{
		{
			name:        "sem nome",
			mutate:      func(s *domain.NotificationSchedule) { s.Name = "" },
			expectedErr: ErrNameRequired,
		},
		{
			name:        "tipo de relatório desconhecido",
			mutate:      func(s *domain.NotificationSchedule) { s.ReportKind = "weekly_sales" },
			expectedErr: ErrInvalidReportKind,
		},
		{
			name:        "horário sem zero à esquerda",
			mutate:      func(s *domain.NotificationSchedule) { s.ScheduleTime = "8:30" },
			expectedErr: ErrInvalidScheduleTime,
		},
		{
			name:        "hora fora do intervalo",
			mutate:      func(s *domain.NotificationSchedule) { s.ScheduleTime = "24:00" },
			expectedErr: ErrInvalidScheduleTime,
		},
		{
			name:        "sem dias da semana",
			mutate:      func(s *domain.NotificationSchedule) { s.ScheduleDays = nil },
			expectedErr: ErrInvalidScheduleDay,
		},
		{
			name:        "dia da semana fora do intervalo",
			mutate:      func(s *domain.NotificationSchedule) { s.ScheduleDays = []int64{7} },
			expectedErr: ErrInvalidScheduleDay,
		},
		{
			name:        "sem números de telefone",
			mutate:      func(s *domain.NotificationSchedule) { s.PhoneNumbers = nil },
			expectedErr: ErrPhoneNumberRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repositorymocks.NewMockScheduleRepository(ctrl)
			service := NewService(repo)

			schedule := validSchedule()
			tt.mutate(schedule)

			_, err := service.CreateSchedule(schedule)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestGetSchedule_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repositorymocks.NewMockScheduleRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().GetScheduleByID("missing").Return(nil, nil)

	_, err := service.GetSchedule("missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestUpdateSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repositorymocks.NewMockScheduleRepository(ctrl)
	service := NewService(repo)

	schedule := validSchedule()
	schedule.ID = "abc123"

	existing := validSchedule()
	existing.ID = "abc123"

	repo.EXPECT().GetScheduleByID("abc123").Return(existing, nil)
	repo.EXPECT().UpdateSchedule(schedule).Return(nil)

	updated, err := service.UpdateSchedule(schedule)

	require.NoError(t, err)
	assert.Equal(t, "abc123", updated.ID)
}

func TestUpdateSchedule_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repositorymocks.NewMockScheduleRepository(ctrl)
	service := NewService(repo)

	schedule := validSchedule()
	schedule.ID = "missing"

	repo.EXPECT().GetScheduleByID("missing").Return(nil, nil)

	_, err := service.UpdateSchedule(schedule)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestDeleteSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repositorymocks.NewMockScheduleRepository(ctrl)
	service := NewService(repo)

	existing := validSchedule()
	existing.ID = "abc123"

	repo.EXPECT().GetScheduleByID("abc123").Return(existing, nil)
	repo.EXPECT().DeleteSchedule("abc123").Return(nil)

	require.NoError(t, service.DeleteSchedule("abc123"))
}

func TestSetScheduleActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repositorymocks.NewMockScheduleRepository(ctrl)
	service := NewService(repo)

	existing := validSchedule()
	existing.ID = "abc123"

	repo.EXPECT().GetScheduleByID("abc123").Return(existing, nil)
	repo.EXPECT().SetScheduleActive("abc123", false).Return(nil)

	require.NoError(t, service.SetScheduleActive("abc123", false))
}

func TestListSchedules_DatabaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repositorymocks.NewMockScheduleRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().ListSchedules().Return(nil, errors.New("conexão recusada"))

	_, err := service.ListSchedules()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}
