package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/sectorres/vendas-insights-wa/internal/domain"
	"github.com/sectorres/vendas-insights-wa/internal/usecases/insighting"
	"github.com/sectorres/vendas-insights-wa/pkg/apiErrors"
)

// InsightsPreviewRequest usa datas compactas YYYYMMDD, o mesmo formato
// trafegado internamente pelo pipeline de vendas
type InsightsPreviewRequest struct {
	StartDate  string  `json:"dataInicial"`
	EndDate    string  `json:"dataFinal"`
	ReportKind string  `json:"reportType"`
	StoreCodes []int64 `json:"empresasOrigem,omitempty"`
}

// PreviewInsights gera um relatório sob demanda, sem envio por WhatsApp
func PreviewInsights(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req InsightsPreviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		window, err := domain.NewDateWindow(req.StartDate, req.EndDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		kind := domain.ReportKind(req.ReportKind)
		if !kind.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de relatório inválido", map[string]any{
				"reportType": req.ReportKind,
			})
			return
		}

		result, err := service.Preview(window, kind, req.StoreCodes)
		if err != nil {
			logrus.Error("Error generating insights preview:", err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao gerar o relatório de vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error(err)
		}
	}
}
