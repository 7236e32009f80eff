package evolutionclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sectorres/vendas-insights-wa/internal/config"
)

type Client interface {
	SendText(number, text string) error
	CreateInstance(instanceName string) error
	ConnectInstance(instanceName string) (*ConnectResponse, error)
	ConnectionState(instanceName string) (*ConnectionStateResponse, error)
}

type EvolutionClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente do gateway Evolution.
func NewClient(cfg *config.Config) Client {
	return &EvolutionClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// doRequest executa uma chamada autenticada ao gateway e decodifica a
// resposta JSON em out quando informado.
func (c *EvolutionClient) doRequest(method, path string, payload any, out any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.Evolution.URL+path, body)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("apikey", c.config.Evolution.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		errorText, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gateway respondeu com status %s: %s", resp.Status, string(errorText))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("erro ao decodificar a resposta: %w", err)
		}
	}

	return nil
}
