package shx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shxdomain "github.com/sectorres/vendas-insights-wa/infrastructure/integrator/shx/domain"
	"github.com/sectorres/vendas-insights-wa/infrastructure/integrator/shx/shxclient"
	"github.com/sectorres/vendas-insights-wa/internal/config"
	"github.com/sectorres/vendas-insights-wa/internal/domain"
)

func newTestConfig(url string) *config.Config {
	return &config.Config{
		SHX: config.SHX{
			URL:      url,
			Username: "MOISES",
			Password: "secret",
			PageSize: 1000,
			MaxPages: 100,
		},
	}
}

func makeNotes(count int, saleDate string) []shxdomain.SaleNote {
	notes := make([]shxdomain.SaleNote, 0, count)
	for i := 0; i < count; i++ {
		notes = append(notes, shxdomain.SaleNote{
			OriginCompany: shxdomain.OriginCompany{Code: 1, Name: "Loja Centro"},
			ProductsValue: 10,
			SaleDate:      saleDate,
		})
	}
	return notes
}

func mustWindow(t *testing.T, start, end string) domain.DateWindow {
	t.Helper()
	window, err := domain.NewDateWindow(start, end)
	require.NoError(t, err)
	return window
}

func TestFetchSales_Pagination(t *testing.T) {
	var requests int
	var bodies []map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		bodies = append(bodies, body)

		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "MOISES", username)
		assert.Equal(t, "secret", password)

		var resp shxclient.SalesNotesResponse
		switch requests {
		case 1, 2:
			resp = shxclient.SalesNotesResponse{Content: makeNotes(1000, "15/03/2024"), LastPage: false, Total: 2000}
		default:
			resp = shxclient.SalesNotesResponse{Content: nil, LastPage: true, Total: 2000}
		}

		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	fetcher := New(cfg, shxclient.NewClient(cfg))

	notes, err := fetcher.FetchSales(mustWindow(t, "20240315", "20240315"), nil)

	require.NoError(t, err)
	assert.Equal(t, 3, requests)
	assert.Len(t, notes, 2000)

	// Período convertido para o formato YYYY/MM/DD da integração
	assert.Equal(t, "2024/03/15", bodies[0]["dataVendaInicial"])
	assert.Equal(t, "2024/03/15", bodies[0]["dataVendaFinal"])
	assert.Equal(t, "NAO", bodies[0]["incluirCanceladas"])
	assert.Equal(t, "NAO", bodies[0]["mostraRentabilidade"])
	assert.Equal(t, "N", bodies[0]["mostraQuestionario"])
	assert.Equal(t, float64(2), bodies[1]["paginacao"])
}

func TestFetchSales_StoreCodesFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []any{float64(1), float64(5)}, body["empresasOrigem"])

		json.NewEncoder(w).Encode(shxclient.SalesNotesResponse{
			Content:  makeNotes(2, "15/03/2024"),
			LastPage: true,
		})
	}))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	fetcher := New(cfg, shxclient.NewClient(cfg))

	notes, err := fetcher.FetchSales(mustWindow(t, "20240315", "20240315"), []int64{1, 5})

	require.NoError(t, err)
	assert.Len(t, notes, 2)
}

func TestFetchSales_SecondPassFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A integração devolve registros fora do período solicitado; o
		// refiltro interno deve descartá-los (ignorando o componente de hora).
		content := []shxdomain.SaleNote{
			{OriginCompany: shxdomain.OriginCompany{Code: 1}, ProductsValue: 100, SaleDate: "15/03/2024 10:00:00"},
			{OriginCompany: shxdomain.OriginCompany{Code: 1}, ProductsValue: 200, SaleDate: "16/03/2024 09:00:00"},
			{OriginCompany: shxdomain.OriginCompany{Code: 1}, ProductsValue: 300, SaleDate: "data-invalida"},
		}
		json.NewEncoder(w).Encode(shxclient.SalesNotesResponse{Content: content, LastPage: true})
	}))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	fetcher := New(cfg, shxclient.NewClient(cfg))

	notes, err := fetcher.FetchSales(mustWindow(t, "20240315", "20240315"), nil)

	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, 100.0, notes[0].ProductsValue)
}

func TestFetchSales_PartialFailure(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests > 1 {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(shxclient.SalesNotesResponse{
			Content:  makeNotes(500, "15/03/2024"),
			LastPage: false,
		})
	}))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	fetcher := New(cfg, shxclient.NewClient(cfg))

	notes, err := fetcher.FetchSales(mustWindow(t, "20240315", "20240315"), nil)

	// Erro após a primeira página não é fatal: retorna o que já foi coletado
	require.NoError(t, err)
	assert.Equal(t, 2, requests)
	assert.Len(t, notes, 500)
}

func TestFetchSales_FirstPageFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	fetcher := New(cfg, shxclient.NewClient(cfg))

	notes, err := fetcher.FetchSales(mustWindow(t, "20240315", "20240315"), nil)

	require.Error(t, err)
	assert.Nil(t, notes)
	assert.Contains(t, err.Error(), "primeira página")
}

func TestFetchSales_MissingCredential(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, "{}")
	}))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	cfg.SHX.Password = ""
	fetcher := New(cfg, shxclient.NewClient(cfg))

	_, err := fetcher.FetchSales(mustWindow(t, "20240315", "20240315"), nil)

	require.Error(t, err)
	assert.Equal(t, 0, requests, "nenhuma chamada deve ser feita sem credencial")
}

func TestFetchSales_EmptyWindow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(shxclient.SalesNotesResponse{Content: nil, LastPage: true})
	}))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	fetcher := New(cfg, shxclient.NewClient(cfg))

	notes, err := fetcher.FetchSales(mustWindow(t, "20240315", "20240315"), nil)

	require.NoError(t, err)
	assert.Empty(t, notes)
}
