package insighting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	shxdomain "github.com/sectorres/vendas-insights-wa/infrastructure/integrator/shx/domain"
	shxmocks "github.com/sectorres/vendas-insights-wa/infrastructure/integrator/shx/mocks"
	"github.com/sectorres/vendas-insights-wa/internal/domain"
)

func TestAggregate_EmptyInput(t *testing.T) {
	service := &Service{}

	for _, kind := range []domain.ReportKind{
		domain.ReportKindDailySales,
		domain.ReportKindMonthlySales,
		domain.ReportKindSalesByType,
	} {
		result := service.Aggregate(nil, kind, "20240315")

		assert.Equal(t, kind, result.Kind)
		assert.Empty(t, result.Data)
		assert.Equal(t, 0.0, result.Total)
	}
}

func TestAggregate_DailySales(t *testing.T) {
	service := &Service{}

	notes := []shxdomain.SaleNote{
		{
			OriginCompany: shxdomain.OriginCompany{Code: 3, Name: "Loja Centro"},
			ProductsValue: 150,
			SaleDate:      "15/03/2024 10:00:00",
		},
		{
			// Fora do dia alvo: descartada por inteiro
			OriginCompany: shxdomain.OriginCompany{Code: 3},
			ProductsValue: 999,
			SaleDate:      "16/03/2024 09:00:00",
		},
		{
			OriginCompany: shxdomain.OriginCompany{Code: 3},
			ProductsValue: 50,
			SaleDate:      "15/03/2024",
		},
		{
			OriginCompany: shxdomain.OriginCompany{Code: 3},
			ProductsValue: 10,
			SaleDate:      "data ilegível",
		},
	}

	result := service.Aggregate(notes, domain.ReportKindDailySales, "20240315")

	require.Contains(t, result.Data, "LOJA-03")
	assert.Equal(t, 200.0, result.Data["LOJA-03"]["15/03/2024"])
	assert.Len(t, result.Data["LOJA-03"], 1)
	assert.Equal(t, 200.0, result.Total)
}

func TestAggregate_MonthlySales(t *testing.T) {
	service := &Service{}

	notes := []shxdomain.SaleNote{
		{
			OriginCompany: shxdomain.OriginCompany{Code: 5},
			ProductsValue: 100,
			SaleDate:      "01/03/2024",
		},
		{
			OriginCompany: shxdomain.OriginCompany{Code: 5},
			ProductsValue: 250,
			SaleDate:      "28/03/2024",
		},
		{
			OriginCompany: shxdomain.OriginCompany{Code: 5},
			ProductsValue: 80,
			SaleDate:      "02/04/2024",
		},
	}

	result := service.Aggregate(notes, domain.ReportKindMonthlySales, "20240301")

	require.Contains(t, result.Data, "LOJA-05")
	assert.Equal(t, 350.0, result.Data["LOJA-05"]["03/2024"])
	assert.Equal(t, 80.0, result.Data["LOJA-05"]["04/2024"])
	assert.Equal(t, 430.0, result.Total)
}

func TestAggregate_SalesByType(t *testing.T) {
	service := &Service{}

	notes := []shxdomain.SaleNote{
		{
			OriginCompany: shxdomain.OriginCompany{Code: 1},
			ProductsValue: 70, // valorProdutos não entra no relatório por tipo
			SaleDate:      "15/03/2024",
			Products: []shxdomain.SaleProduct{
				{Type: "A", NetValue: 40},
				{Type: "", NetValue: 10},
			},
		},
	}

	result := service.Aggregate(notes, domain.ReportKindSalesByType, "20240315")

	require.Contains(t, result.Data, "LOJA-01")
	assert.Equal(t, 40.0, result.Data["LOJA-01"]["A"])
	assert.Equal(t, 10.0, result.Data["LOJA-01"]["SEM TIPO"])
	assert.Equal(t, 50.0, result.Total)
}

func TestAggregate_MultipleStores(t *testing.T) {
	service := &Service{}

	notes := []shxdomain.SaleNote{
		{OriginCompany: shxdomain.OriginCompany{Code: 1}, ProductsValue: 100, SaleDate: "15/03/2024"},
		{OriginCompany: shxdomain.OriginCompany{Code: 12}, ProductsValue: 200, SaleDate: "15/03/2024"},
	}

	result := service.Aggregate(notes, domain.ReportKindDailySales, "20240315")

	assert.Equal(t, 100.0, result.Data["LOJA-01"]["15/03/2024"])
	assert.Equal(t, 200.0, result.Data["LOJA-12"]["15/03/2024"])
	assert.Equal(t, 300.0, result.Total)
}

func TestPreview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := shxmocks.NewMockSalesFetcher(ctrl)
	service := NewService(mockFetcher)

	window, err := domain.NewDateWindow("20240315", "20240315")
	require.NoError(t, err)

	mockFetcher.EXPECT().
		FetchSales(window, []int64{1}).
		Return([]shxdomain.SaleNote{
			{OriginCompany: shxdomain.OriginCompany{Code: 1}, ProductsValue: 120, SaleDate: "15/03/2024"},
		}, nil)

	result, err := service.Preview(window, domain.ReportKindDailySales, []int64{1})

	require.NoError(t, err)
	assert.Equal(t, 120.0, result.Total)
}

func TestPreview_InvalidKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := shxmocks.NewMockSalesFetcher(ctrl)
	service := NewService(mockFetcher)

	window, err := domain.NewDateWindow("20240315", "20240315")
	require.NoError(t, err)

	_, err = service.Preview(window, domain.ReportKind("weekly_sales"), nil)
	require.Error(t, err)
}

func TestPreview_FetcherError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := shxmocks.NewMockSalesFetcher(ctrl)
	service := NewService(mockFetcher)

	window, err := domain.NewDateWindow("20240315", "20240315")
	require.NoError(t, err)

	mockFetcher.EXPECT().
		FetchSales(window, gomock.Nil()).
		Return(nil, errors.New("integração indisponível"))

	_, err = service.Preview(window, domain.ReportKindDailySales, nil)
	require.Error(t, err)
}
