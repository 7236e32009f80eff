package shxclient

import (
	"net/http"
	"time"

	"github.com/sectorres/vendas-insights-wa/internal/config"
)

type Client interface {
	GetSalesNotes(params SalesNotesParams) (*SalesNotesResponse, error)
}

type SHXClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da integração SHX.
func NewClient(cfg *config.Config) Client {
	return &SHXClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
