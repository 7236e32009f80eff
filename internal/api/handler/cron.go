package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/sectorres/vendas-insights-wa/internal/scheduler"
	"github.com/sectorres/vendas-insights-wa/pkg/apiErrors"
)

// RunDispatchNow dispara manualmente uma avaliação dos agendamentos, fora do
// cron de minuto em minuto
func RunDispatchNow(service *scheduler.NotificationDispatchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de despacho de notificações não disponível", nil)
			return
		}

		summary, err := service.RunNow(r.Context())
		if err != nil {
			logrus.Error("Error running notification dispatch:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"message": "Despacho de notificações executado",
			"summary": summary,
		}); err != nil {
			logrus.Error(err)
		}
	}
}

// GetDispatchStatus devolve o retrato atual do agendador de despacho
func GetDispatchStatus(service *scheduler.NotificationDispatchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de despacho de notificações não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.Status()); err != nil {
			logrus.Error(err)
		}
	}
}
