package infra

import "context"

type InitiationRequest struct {
	CommandeID uint64 `json:"commande_id"`
	Montant    int64  `json:"montant"`
	// Telephone is already normalized to 221XXXXXXXXX form.
	Telephone string `json:"telephone"`
	ReturnURL string `json:"return_url"`
	CancelURL string `json:"cancel_url"`
}

// InitiationResponse carries exactly one of the three continuation shapes a
// provider answers with: a native app launch URL, a generic web payment URL,
// or a USSD code the client dials manually.
type InitiationResponse struct {
	LaunchURL  string `json:"launch_url,omitempty"`
	PaymentURL string `json:"payment_url,omitempty"`
	USSDCode   string `json:"ussd_code,omitempty"`
	Reference  string `json:"reference"`
}

type PaymentProviderInterface interface {
	InitiatePayment(ctx context.Context, req InitiationRequest) (*InitiationResponse, error)
	// CheckStatus returns the provider's status string as-is; callers
	// classify it through domain.ClassifyPaiementStatus.
	CheckStatus(ctx context.Context, reference string) (string, error)
}

var _ PaymentProviderInterface = (*WaveClient)(nil)
var _ PaymentProviderInterface = (*OrangeMoneyClient)(nil)
