package shx

import (
	"fmt"

	"github.com/sirupsen/logrus"

	shxdomain "github.com/sectorres/vendas-insights-wa/infrastructure/integrator/shx/domain"
	"github.com/sectorres/vendas-insights-wa/infrastructure/integrator/shx/shxclient"
	"github.com/sectorres/vendas-insights-wa/internal/config"
	"github.com/sectorres/vendas-insights-wa/internal/domain"
	"github.com/sectorres/vendas-insights-wa/pkg/utils"
)

const (
	defaultPageSize = 1000
	defaultMaxPages = 100
)

// SalesFetcher busca notas de venda da integração SHX para um período.
type SalesFetcher interface {
	FetchSales(window domain.DateWindow, storeCodes []int64) ([]shxdomain.SaleNote, error)
}

type SHXService struct {
	cfg    *config.Config
	Client shxclient.Client
}

func New(cfg *config.Config, client shxclient.Client) SalesFetcher {
	return &SHXService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchSales pagina a consulta de notas da integração SHX e devolve os
// registros cuja data de venda cai dentro do período solicitado.
//
// A paginação é sequencial: a condição de parada depende do resultado da
// página anterior. Falha na primeira página é fatal; falha em páginas
// seguintes é tratada como fim dos dados e o que já foi acumulado é devolvido.
func (s *SHXService) FetchSales(window domain.DateWindow, storeCodes []int64) ([]shxdomain.SaleNote, error) {
	if s.cfg.SHX.Password == "" {
		return nil, fmt.Errorf("credencial da integração SHX não configurada")
	}

	pageSize := s.cfg.SHX.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	maxPages := s.cfg.SHX.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	codes := make([]int, 0, len(storeCodes))
	for _, code := range storeCodes {
		codes = append(codes, int(code))
	}

	params := shxclient.SalesNotesParams{
		PageSize:   pageSize,
		StartDate:  utils.ToSlashedDate(window.StartDate),
		EndDate:    utils.ToSlashedDate(window.EndDate),
		StoreCodes: codes,
	}

	allNotes := make([]shxdomain.SaleNote, 0)

	for page := 1; page <= maxPages; page++ {
		params.Page = page

		resp, err := s.Client.GetSalesNotes(params)
		if err != nil {
			if page > 1 {
				// A integração não expõe o total de páginas de forma confiável;
				// erro após a primeira página é tratado como fim dos dados.
				logrus.WithError(err).WithField("page", page).
					Warn("Erro ao buscar página de notas, mantendo o que já foi coletado")
				break
			}
			return nil, fmt.Errorf("erro ao buscar a primeira página de notas: %w", err)
		}

		rawCount := len(resp.Content)
		if rawCount == 0 {
			break
		}

		filtered := filterBySaleDate(resp.Content, window)

		logrus.WithFields(logrus.Fields{
			"page":     page,
			"records":  rawCount,
			"filtered": len(filtered),
			"total":    resp.Total,
		}).Debug("Página de notas de venda processada")

		allNotes = append(allNotes, filtered...)

		if resp.LastPage {
			break
		}
	}

	logrus.WithFields(logrus.Fields{
		"start_date": window.StartDate,
		"end_date":   window.EndDate,
		"records":    len(allNotes),
	}).Info("Busca de notas de venda concluída")

	return allNotes, nil
}

// filterBySaleDate reaplica o filtro de período sobre a data de venda de cada
// nota. A integração já recebe o período na requisição, mas é observada
// retornando registros fora dele; este segundo filtro é obrigatório.
func filterBySaleDate(notes []shxdomain.SaleNote, window domain.DateWindow) []shxdomain.SaleNote {
	filtered := make([]shxdomain.SaleNote, 0, len(notes))

	for _, note := range notes {
		compact := utils.ToCompactDate(note.SaleDate)
		if utils.InCompactWindow(compact, window.StartDate, window.EndDate) {
			filtered = append(filtered, note)
		}
	}

	return filtered
}
