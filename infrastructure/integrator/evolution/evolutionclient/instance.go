package evolutionclient

import "net/http"

type createInstanceRequest struct {
	InstanceName string `json:"instanceName"`
	QRCode       bool   `json:"qrcode"`
	Integration  string `json:"integration"`
}

type ConnectResponse struct {
	QRCode struct {
		Code string `json:"code"`
	} `json:"qrcode"`
	Code   string `json:"code"`
	Status string `json:"status"`
}

type ConnectionStateResponse struct {
	State string `json:"state"`
}

// CreateInstance cria (ou reconecta) a instância de WhatsApp no gateway.
func (c *EvolutionClient) CreateInstance(instanceName string) error {
	payload := createInstanceRequest{
		InstanceName: instanceName,
		QRCode:       true,
		Integration:  "WHATSAPP-BAILEYS",
	}

	return c.doRequest(http.MethodPost, "/instance/create", payload, nil)
}

// ConnectInstance obtém o QR code de pareamento da instância.
func (c *EvolutionClient) ConnectInstance(instanceName string) (*ConnectResponse, error) {
	var response ConnectResponse
	if err := c.doRequest(http.MethodGet, "/instance/connect/"+instanceName, nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// ConnectionState consulta o estado da conexão da instância.
func (c *EvolutionClient) ConnectionState(instanceName string) (*ConnectionStateResponse, error) {
	var response ConnectionStateResponse
	if err := c.doRequest(http.MethodGet, "/instance/connectionState/"+instanceName, nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
