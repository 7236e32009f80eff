package insighting

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sectorres/vendas-insights-wa/infrastructure/integrator/shx"
	shxdomain "github.com/sectorres/vendas-insights-wa/infrastructure/integrator/shx/domain"
	"github.com/sectorres/vendas-insights-wa/internal/domain"
	"github.com/sectorres/vendas-insights-wa/pkg/utils"
)

// Rótulo de bucket para produtos sem tipo cadastrado
const noTypeLabel = "SEM TIPO"

type Service struct {
	salesFetcher shx.SalesFetcher
}

func NewService(salesFetcher shx.SalesFetcher) Insighter {
	return &Service{
		salesFetcher: salesFetcher,
	}
}

// Preview busca as notas do período na integração SHX e agrega conforme o
// tipo de relatório solicitado.
func (s *Service) Preview(window domain.DateWindow, kind domain.ReportKind, storeCodes []int64) (*domain.AggregateResult, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("tipo de relatório inválido: %s", kind)
	}

	notes, err := s.salesFetcher.FetchSales(window, storeCodes)
	if err != nil {
		return nil, err
	}

	result := s.Aggregate(notes, kind, window.StartDate)

	logrus.WithFields(logrus.Fields{
		"report_type": kind,
		"records":     len(notes),
		"stores":      len(result.Data),
		"total":       result.Total,
	}).Info("Preview de insights gerado")

	return result, nil
}

// Aggregate agrupa as notas por loja e bucket conforme o tipo de relatório.
//
// Os relatórios por data (diário e mensal) somam valorProdutos e usam a data
// de venda para o bucketing; o relatório por tipo soma o valorLiquido de cada
// item. Essa distinção de campo de origem é intencional e deve ser mantida.
func (s *Service) Aggregate(notes []shxdomain.SaleNote, kind domain.ReportKind, windowStart string) *domain.AggregateResult {
	var data map[string]map[string]float64

	switch kind {
	case domain.ReportKindDailySales:
		data = aggregateDailySales(notes, windowStart)
	case domain.ReportKindMonthlySales:
		data = aggregateMonthlySales(notes)
	case domain.ReportKindSalesByType:
		data = aggregateSalesByType(notes)
	default:
		data = make(map[string]map[string]float64)
	}

	return &domain.AggregateResult{
		Kind:  kind,
		Data:  data,
		Total: sumLeaves(data),
	}
}

// aggregateDailySales soma valorProdutos por loja para o dia alvo. Notas de
// outros dias (ou com data de venda ilegível) são descartadas; o componente
// de hora da data de venda é ignorado.
func aggregateDailySales(notes []shxdomain.SaleNote, windowStart string) map[string]map[string]float64 {
	targetDay := utils.ToBRDate(windowStart)
	data := make(map[string]map[string]float64)

	for _, note := range notes {
		saleDay := utils.DateOnly(note.SaleDate)
		if saleDay != targetDay {
			continue
		}

		addToBucket(data, domain.StoreLabel(note.OriginCompany.Code), saleDay, note.ProductsValue)
	}

	return data
}

// aggregateMonthlySales soma valorProdutos por loja e mês MM/YYYY. Toda nota
// do período contribui; apenas datas de venda ilegíveis são descartadas.
func aggregateMonthlySales(notes []shxdomain.SaleNote) map[string]map[string]float64 {
	data := make(map[string]map[string]float64)

	for _, note := range notes {
		if utils.ToCompactDate(note.SaleDate) == "" {
			continue
		}

		// MM/YYYY é a cauda de DD/MM/YYYY a partir da posição 3
		month := utils.DateOnly(note.SaleDate)[3:]

		addToBucket(data, domain.StoreLabel(note.OriginCompany.Code), month, note.ProductsValue)
	}

	return data
}

// aggregateSalesByType soma o valorLiquido de cada item por loja e tipo de
// produto, sem filtro de data. Itens sem tipo caem no bucket "SEM TIPO".
func aggregateSalesByType(notes []shxdomain.SaleNote) map[string]map[string]float64 {
	data := make(map[string]map[string]float64)

	for _, note := range notes {
		storeLabel := domain.StoreLabel(note.OriginCompany.Code)

		for _, product := range note.Products {
			typeLabel := product.Type
			if typeLabel == "" {
				typeLabel = noTypeLabel
			}

			addToBucket(data, storeLabel, typeLabel, product.NetValue)
		}
	}

	return data
}

func addToBucket(data map[string]map[string]float64, storeLabel, bucket string, value float64) {
	if data[storeLabel] == nil {
		data[storeLabel] = make(map[string]float64)
	}

	data[storeLabel][bucket] += value
}

// sumLeaves soma todas as folhas do resultado, independente do tipo de
// relatório. O total geral é sempre essa soma simples.
func sumLeaves(data map[string]map[string]float64) float64 {
	var total float64

	for _, buckets := range data {
		for _, value := range buckets {
			total += value
		}
	}

	return total
}
