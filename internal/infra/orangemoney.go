package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type OrangeMoneyClient struct {
	baseURL    string
	merchantID string
	apiKey     string
	httpClient *http.Client
}

func NewOrangeMoneyClient(baseURL, merchantID, apiKey string, timeout time.Duration) *OrangeMoneyClient {
	return &OrangeMoneyClient{
		baseURL:    baseURL,
		merchantID: merchantID,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type omWebPaymentRequest struct {
	MerchantID string `json:"merchant_id"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	OrderID    string `json:"order_id"`
	Msisdn     string `json:"msisdn"`
	ReturnURL  string `json:"return_url"`
	CancelURL  string `json:"cancel_url"`
}

type omWebPaymentResponse struct {
	PayToken   string `json:"pay_token"`
	PaymentURL string `json:"payment_url"`
	// Some OM channels answer with a USSD code instead of a web URL; the
	// subscriber then confirms on their handset.
	USSDCode string `json:"ussd_code"`
}

func (c *OrangeMoneyClient) InitiatePayment(ctx context.Context, req InitiationRequest) (*InitiationResponse, error) {
	payload := omWebPaymentRequest{
		MerchantID: c.merchantID,
		Amount:     req.Montant,
		Currency:   "XOF",
		OrderID:    fmt.Sprintf("commande-%d", req.CommandeID),
		Msisdn:     req.Telephone,
		ReturnURL:  req.ReturnURL,
		CancelURL:  req.CancelURL,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, _ := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/webpayment", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("orange money returned status %d", resp.StatusCode)
	}

	var out omWebPaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &InitiationResponse{
		PaymentURL: out.PaymentURL,
		USSDCode:   out.USSDCode,
		Reference:  out.PayToken,
	}, nil
}

func (c *OrangeMoneyClient) CheckStatus(ctx context.Context, reference string) (string, error) {
	httpReq, _ := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/transactionstatus/%s", c.baseURL, reference), nil)
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("orange money returned status %d", resp.StatusCode)
	}

	var out struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Status, nil
}
