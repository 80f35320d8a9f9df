package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type WaveClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewWaveClient(baseURL, apiKey string, timeout time.Duration) *WaveClient {
	return &WaveClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type waveCheckoutRequest struct {
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	ClientReference string `json:"client_reference"`
	Mobile          string `json:"mobile"`
	SuccessURL      string `json:"success_url"`
	ErrorURL        string `json:"error_url"`
}

type waveCheckoutResponse struct {
	ID            string `json:"id"`
	WaveLaunchURL string `json:"wave_launch_url"`
	CheckoutURL   string `json:"checkout_url"`
}

func (c *WaveClient) InitiatePayment(ctx context.Context, req InitiationRequest) (*InitiationResponse, error) {
	payload := waveCheckoutRequest{
		Amount:          req.Montant,
		Currency:        "XOF",
		ClientReference: fmt.Sprintf("commande-%d", req.CommandeID),
		Mobile:          "+" + req.Telephone,
		SuccessURL:      req.ReturnURL,
		ErrorURL:        req.CancelURL,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, _ := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("wave returned status %d", resp.StatusCode)
	}

	var out waveCheckoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &InitiationResponse{
		LaunchURL:  out.WaveLaunchURL,
		PaymentURL: out.CheckoutURL,
		Reference:  out.ID,
	}, nil
}

func (c *WaveClient) CheckStatus(ctx context.Context, reference string) (string, error) {
	httpReq, _ := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/v1/checkout/sessions/%s", c.baseURL, reference), nil)
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wave returned status %d", resp.StatusCode)
	}

	var out struct {
		PaymentStatus string `json:"payment_status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.PaymentStatus, nil
}
