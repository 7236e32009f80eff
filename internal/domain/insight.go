package domain

import "fmt"

// ReportKind é o tipo de relatório suportado. Enumeração fechada: cada valor
// mapeia para uma estratégia de agregação.
type ReportKind string

const (
	ReportKindDailySales   ReportKind = "daily_sales"
	ReportKindMonthlySales ReportKind = "monthly_sales"
	ReportKindSalesByType  ReportKind = "sales_by_type"
)

func (k ReportKind) IsValid() bool {
	switch k {
	case ReportKindDailySales, ReportKindMonthlySales, ReportKindSalesByType:
		return true
	}
	return false
}

// Label retorna o rótulo exibido nas mensagens de WhatsApp
func (k ReportKind) Label() string {
	switch k {
	case ReportKindDailySales:
		return "Vendas Diárias"
	case ReportKindMonthlySales:
		return "Vendas Mensais"
	case ReportKindSalesByType:
		return "Vendas por Tipo de Produto"
	}
	return string(k)
}

// DateWindow é um período inclusivo de datas compactas YYYYMMDD.
type DateWindow struct {
	StartDate string `json:"dataInicial"`
	EndDate   string `json:"dataFinal"`
}

// NewDateWindow valida e constrói um período. A comparação lexicográfica é
// suficiente porque o formato compacto tem largura fixa.
func NewDateWindow(startDate, endDate string) (DateWindow, error) {
	if len(startDate) != 8 || len(endDate) != 8 {
		return DateWindow{}, fmt.Errorf("datas devem estar no formato YYYYMMDD: %q a %q", startDate, endDate)
	}

	if startDate > endDate {
		return DateWindow{}, fmt.Errorf("data inicial %s posterior à data final %s", startDate, endDate)
	}

	return DateWindow{StartDate: startDate, EndDate: endDate}, nil
}

// AggregateResult é o resultado de uma agregação: loja -> bucket -> total,
// mais o total geral (soma simples de todas as folhas).
type AggregateResult struct {
	Kind  ReportKind                    `json:"type"`
	Data  map[string]map[string]float64 `json:"data"`
	Total float64                       `json:"total"`
}

// StoreLabel sintetiza o identificador de exibição da loja a partir do código
// numérico da empresa, descartando o nome cadastrado.
func StoreLabel(companyCode int) string {
	return fmt.Sprintf("LOJA-%02d", companyCode)
}
