package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sectorres/vendas-insights-wa/internal/config"
	"github.com/sectorres/vendas-insights-wa/internal/usecases/notifying"
	notifyingmocks "github.com/sectorres/vendas-insights-wa/internal/usecases/notifying/mocks"
)

func newDispatchService(t *testing.T) (*NotificationDispatchService, *notifyingmocks.MockNotifier) {
	ctrl := gomock.NewController(t)
	notifier := notifyingmocks.NewMockNotifier(ctrl)

	cfg := &config.Config{}
	cfg.NotificationDispatch.CronSchedule = "* * * * *"
	cfg.NotificationDispatch.Enabled = true

	return NewNotificationDispatchService(notifier, cfg, time.UTC), notifier
}

func TestRunNow(t *testing.T) {
	service, notifier := newDispatchService(t)

	notifier.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		Return(&notifying.DispatchSummary{Evaluated: 2, Processed: 1}, nil)

	summary, err := service.RunNow(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)

	status := service.Status()
	assert.False(t, status.Running)
	assert.NotNil(t, status.LastStartedAt)
	assert.NotNil(t, status.LastCompletedAt)
}

func TestRunNow_RejectsOverlap(t *testing.T) {
	service, notifier := newDispatchService(t)

	started := make(chan struct{})
	release := make(chan struct{})

	notifier.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, now time.Time) (*notifying.DispatchSummary, error) {
			close(started)
			<-release
			return &notifying.DispatchSummary{}, nil
		})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := service.RunNow(context.Background())
		assert.NoError(t, err)
	}()

	<-started

	// Segunda execução concorrente é recusada
	_, err := service.RunNow(context.Background())
	require.Error(t, err)

	close(release)
	<-done
}

func TestStatus_BeforeAnyRun(t *testing.T) {
	service, _ := newDispatchService(t)

	status := service.Status()

	assert.True(t, status.Enabled)
	assert.False(t, status.Running)
	assert.Equal(t, "* * * * *", status.CronSchedule)
	assert.Nil(t, status.LastStartedAt)
	assert.Nil(t, status.LastCompletedAt)
}
