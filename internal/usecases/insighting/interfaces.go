package insighting

import (
	shxdomain "github.com/sectorres/vendas-insights-wa/infrastructure/integrator/shx/domain"
	"github.com/sectorres/vendas-insights-wa/internal/domain"
)

// Aggregator agrega notas de venda em um relatório por loja.
type Aggregator interface {
	// Aggregate agrupa as notas por loja e bucket conforme o tipo de
	// relatório. windowStart é a data compacta YYYYMMDD de referência do
	// período (usada como dia alvo no relatório diário).
	Aggregate(notes []shxdomain.SaleNote, kind domain.ReportKind, windowStart string) *domain.AggregateResult
}

// Insighter combina a busca de notas com a agregação para os previews da
// interface e para a avaliação dos agendamentos.
type Insighter interface {
	Aggregator

	// Preview busca as notas do período e devolve o relatório agregado.
	Preview(window domain.DateWindow, kind domain.ReportKind, storeCodes []int64) (*domain.AggregateResult, error)
}
