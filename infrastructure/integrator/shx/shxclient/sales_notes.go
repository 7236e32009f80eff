package shxclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	shxdomain "github.com/sectorres/vendas-insights-wa/infrastructure/integrator/shx/domain"
)

type SalesNotesParams struct {
	Page       int
	PageSize   int
	StartDate  string // YYYY/MM/DD
	EndDate    string // YYYY/MM/DD
	StoreCodes []int
}

type SalesNotesResponse struct {
	Content  []shxdomain.SaleNote `json:"content"`
	LastPage bool                 `json:"lastPage"`
	Total    int                  `json:"total"`
}

type salesNotesRequest struct {
	Page              int    `json:"paginacao"`
	Quantity          int    `json:"quantidade"`
	StartSaleDate     string `json:"dataVendaInicial"`
	EndSaleDate       string `json:"dataVendaFinal"`
	IncludeCancelled  string `json:"incluirCanceladas"`
	ShowProfitability string `json:"mostraRentabilidade"`
	ShowQuestionnaire string `json:"mostraQuestionario"`
	OriginCompanies   []int  `json:"empresasOrigem,omitempty"`
}

// GetSalesNotes consulta uma página de notas de venda da integração SHX.
func (c *SHXClient) GetSalesNotes(params SalesNotesParams) (*SalesNotesResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.SHX.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/notas")

	// Flags fixas: sem canceladas, sem rentabilidade, sem questionário.
	requestBody := salesNotesRequest{
		Page:              params.Page,
		Quantity:          params.PageSize,
		StartSaleDate:     params.StartDate,
		EndSaleDate:       params.EndDate,
		IncludeCancelled:  "NAO",
		ShowProfitability: "NAO",
		ShowQuestionnaire: "N",
		OriginCompanies:   params.StoreCodes,
	}

	body, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.config.SHX.Username, c.config.SHX.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorText, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("requisição falhou com status %s: %s", resp.Status, string(errorText))
	}

	var response SalesNotesResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}
