package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client - минимальный клиент Paystack: инициализация транзакции.
type Client struct {
	baseURL   string
	secretKey string
	http      *http.Client
}

func NewClient(baseURL, secretKey string) *Client {
	if baseURL == "" {
		baseURL = "https://api.paystack.co"
	}
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

type InitializeRequest struct {
	Email      string         `json:"email"`
	AmountKobo int64          `json:"amount"` // Paystack принимает сумму в кобо
	Reference  string         `json:"reference,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

type InitializeResult struct {
	AuthorizationURL string
	Reference        string
}

// Initialize создает транзакцию и возвращает checkout URL
func (c *Client) Initialize(ctx context.Context, initReq InitializeRequest) (*InitializeResult, error) {
	body, err := json.Marshal(initReq)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	raw, _ := io.ReadAll(res.Body)
	var data struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			AuthorizationURL string `json:"authorization_url"`
			Reference        string `json:"reference"`
		} `json:"data"`
	}
	_ = json.Unmarshal(raw, &data)

	if res.StatusCode != http.StatusOK || !data.Status {
		return nil, fmt.Errorf("paystack initialize: %s", data.Message)
	}

	return &InitializeResult{
		AuthorizationURL: data.Data.AuthorizationURL,
		Reference:        data.Data.Reference,
	}, nil
}
