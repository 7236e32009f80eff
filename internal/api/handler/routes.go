package handler

import (
	"net/http"

	"github.com/sectorres/vendas-insights-wa/infrastructure/integrator/evolution"
	"github.com/sectorres/vendas-insights-wa/infrastructure/repository"
	"github.com/sectorres/vendas-insights-wa/internal/api/handler/router"
	"github.com/sectorres/vendas-insights-wa/internal/config"
	"github.com/sectorres/vendas-insights-wa/internal/scheduler"
	"github.com/sectorres/vendas-insights-wa/internal/usecases/authenticating"
	"github.com/sectorres/vendas-insights-wa/internal/usecases/insighting"
	"github.com/sectorres/vendas-insights-wa/internal/usecases/scheduling"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
		{
			Path:    "/v1/users",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights/preview",
			Method:  http.MethodPost,
			Handler: PreviewInsights(service),
		},
	}
}

func Schedules(service scheduling.Scheduler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/schedules",
			Method:  http.MethodGet,
			Handler: ListSchedules(service),
		},
		{
			Path:    "/v1/schedules",
			Method:  http.MethodPost,
			Handler: CreateSchedule(service),
		},
		{
			Path:    "/v1/schedules/:id",
			Method:  http.MethodPut,
			Handler: UpdateSchedule(service),
		},
		{
			Path:    "/v1/schedules/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSchedule(service),
		},
		{
			Path:    "/v1/schedules/:id/toggle",
			Method:  http.MethodPost,
			Handler: ToggleSchedule(service),
		},
	}
}

func NotificationHistory(historyRepo repository.NotificationHistoryRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/notifications/history",
			Method:  http.MethodGet,
			Handler: ListNotificationHistory(historyRepo),
		},
	}
}

func WhatsApp(service evolution.WhatsAppIntegrator, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/whatsapp/qrcode",
			Method:  http.MethodPost,
			Handler: FetchWhatsAppQRCode(service, cfg),
		},
		{
			Path:    "/v1/whatsapp/status",
			Method:  http.MethodGet,
			Handler: GetWhatsAppStatus(service, cfg),
		},
		{
			Path:    "/v1/whatsapp/webhook",
			Method:  http.MethodPost,
			Handler: WhatsAppWebhook(),
		},
	}
}

func CronJobs(service *scheduler.NotificationDispatchService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/dispatch/run",
			Method:  http.MethodPost,
			Handler: RunDispatchNow(service),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetDispatchStatus(service),
		},
	}
}
