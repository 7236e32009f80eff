package handler

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/sectorres/vendas-insights-wa/infrastructure/repository"
	"github.com/sectorres/vendas-insights-wa/pkg/apiErrors"
)

// ListNotificationHistory devolve os envios mais recentes. O parâmetro limit
// é opcional e tem teto aplicado pelo repositório.
func ListNotificationHistory(historyRepo repository.NotificationHistoryRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			parsed, err := strconv.Atoi(rawLimit)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		entries, err := historyRepo.ListRecent(limit)
		if err != nil {
			logrus.Error("Error listing notification history:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar histórico de notificações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logrus.Error(err)
		}
	}
}
