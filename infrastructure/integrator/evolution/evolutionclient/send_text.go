package evolutionclient

import "net/http"

type sendTextRequest struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

// SendText envia uma mensagem de texto para um número via gateway Evolution.
func (c *EvolutionClient) SendText(number, text string) error {
	payload := sendTextRequest{
		Number: number,
		Text:   text,
	}

	return c.doRequest(http.MethodPost, "/message/sendText", payload, nil)
}
