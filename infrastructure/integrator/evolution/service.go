package evolution

import (
	"fmt"

	"github.com/sectorres/vendas-insights-wa/infrastructure/integrator/evolution/evolutionclient"
	"github.com/sectorres/vendas-insights-wa/internal/config"
)

// QRCode é o resultado do fluxo de pareamento de uma instância.
type QRCode struct {
	Code         string `json:"qrcode"`
	Status       string `json:"status"`
	InstanceName string `json:"instanceName"`
}

// ConnectionStatus é o estado atual da instância no gateway.
type ConnectionStatus struct {
	Status       string `json:"status"`
	Connected    bool   `json:"connected"`
	InstanceName string `json:"instanceName"`
}

// WhatsAppIntegrator é a fachada do gateway de WhatsApp.
type WhatsAppIntegrator interface {
	SendText(number, message string) error
	FetchQRCode(instanceName string) (*QRCode, error)
	ConnectionStatus(instanceName string) (*ConnectionStatus, error)
}

type EvolutionService struct {
	cfg    *config.Config
	Client evolutionclient.Client
}

func New(cfg *config.Config, client evolutionclient.Client) WhatsAppIntegrator {
	return &EvolutionService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *EvolutionService) checkCredentials() error {
	if s.cfg.Evolution.URL == "" || s.cfg.Evolution.APIKey == "" {
		return fmt.Errorf("credenciais do gateway Evolution não configuradas")
	}
	return nil
}

func (s *EvolutionService) SendText(number, message string) error {
	if err := s.checkCredentials(); err != nil {
		return err
	}

	return s.Client.SendText(number, message)
}

// FetchQRCode cria/reconecta a instância e obtém o QR code de pareamento.
func (s *EvolutionService) FetchQRCode(instanceName string) (*QRCode, error) {
	if err := s.checkCredentials(); err != nil {
		return nil, err
	}

	if err := s.Client.CreateInstance(instanceName); err != nil {
		return nil, fmt.Errorf("erro ao criar a instância: %w", err)
	}

	resp, err := s.Client.ConnectInstance(instanceName)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter o QR code: %w", err)
	}

	code := resp.QRCode.Code
	if code == "" {
		code = resp.Code
	}

	status := resp.Status
	if status == "" {
		status = "pending"
	}

	return &QRCode{
		Code:         code,
		Status:       status,
		InstanceName: instanceName,
	}, nil
}

func (s *EvolutionService) ConnectionStatus(instanceName string) (*ConnectionStatus, error) {
	if err := s.checkCredentials(); err != nil {
		return nil, err
	}

	resp, err := s.Client.ConnectionState(instanceName)
	if err != nil {
		return nil, err
	}

	state := resp.State
	if state == "" {
		state = "disconnected"
	}

	return &ConnectionStatus{
		Status:       state,
		Connected:    state == "open",
		InstanceName: instanceName,
	}, nil
}
