package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/sectorres/vendas-insights-wa/infrastructure/integrator/evolution"
	"github.com/sectorres/vendas-insights-wa/internal/config"
	"github.com/sectorres/vendas-insights-wa/pkg/apiErrors"
)

// WebhookEvent é o envelope dos eventos enviados pelo gateway Evolution
type WebhookEvent struct {
	Event    string         `json:"event"`
	Instance string         `json:"instance"`
	Data     map[string]any `json:"data,omitempty"`
}

// FetchWhatsAppQRCode cria (ou reaproveita) a instância no gateway e devolve
// o QR code de pareamento
func FetchWhatsAppQRCode(service evolution.WhatsAppIntegrator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qrcode, err := service.FetchQRCode(cfg.Evolution.InstanceName)
		if err != nil {
			logrus.Error("Error fetching WhatsApp QR code:", err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao obter QR code do gateway de WhatsApp", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(qrcode); err != nil {
			logrus.Error(err)
		}
	}
}

// GetWhatsAppStatus consulta o estado da conexão da instância no gateway
func GetWhatsAppStatus(service evolution.WhatsAppIntegrator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := service.ConnectionStatus(cfg.Evolution.InstanceName)
		if err != nil {
			logrus.Error("Error fetching WhatsApp connection status:", err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar status da conexão de WhatsApp", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Error(err)
		}
	}
}

// WhatsAppWebhook recebe os eventos do gateway. Os eventos são apenas
// registrados; o estado da conexão é sempre consultado sob demanda.
func WhatsAppWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event WebhookEvent
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de evento inválido", nil)
			return
		}

		logrus.WithFields(logrus.Fields{
			"event":    event.Event,
			"instance": event.Instance,
		}).Info("Evento recebido do gateway de WhatsApp")

		w.WriteHeader(http.StatusOK)
	}
}
