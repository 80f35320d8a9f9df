package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"texpress/internal/domain"
	"texpress/internal/infra"
	"texpress/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPaymentFixture() (*PaymentService, *mocks.MockCommandeRepository, *mocks.MockPaiementRepository, *mocks.MockPanierRepository, *mocks.MockPaymentProvider, *mocks.MockPublisher) {
	commandes := new(mocks.MockCommandeRepository)
	paiements := new(mocks.MockPaiementRepository)
	paniers := new(mocks.MockPanierRepository)
	provider := new(mocks.MockPaymentProvider)
	publisher := new(mocks.MockPublisher)
	providers := map[domain.PaiementMode]infra.PaymentProviderInterface{
		domain.ModeWave:        provider,
		domain.ModeOrangeMoney: provider,
	}
	svc := NewPaymentService(commandes, paiements, paniers, providers, publisher, "https://texpress.sn/payment/confirmation")
	return svc, commandes, paiements, paniers, provider, publisher
}

func TestPaymentService_InitiatePayment(t *testing.T) {
	svc, commandes, paiements, _, provider, _ := newPaymentFixture()

	commandes.On("FindByID", testCommandeID).Return(testCommande(testCommandeID, testClientID, domain.CommandeEnAttente), nil)
	paiements.On("FindByCommandeID", testCommandeID).Return(testPaiement(testCommandeID, domain.ModeWave), nil)
	provider.On("InitiatePayment", mock.Anything, mock.MatchedBy(func(req infra.InitiationRequest) bool {
		return req.Telephone == "221771234567" && req.Montant == 2500
	})).Return(&infra.InitiationResponse{
		LaunchURL: "https://pay.wave.com/c/xyz",
		Reference: "cos-xyz",
	}, nil)
	paiements.On("Update", mock.MatchedBy(func(p *domain.Paiement) bool {
		return p.ProviderRef == "cos-xyz" && p.Telephone == "221771234567"
	})).Return(nil)

	resp, err := svc.InitiatePayment(context.Background(), testClientID, testCommandeID, "+221 77 123 45 67", domain.ModeWave)

	assert.NoError(t, err)
	assert.Equal(t, "https://pay.wave.com/c/xyz", resp.LaunchURL)
	provider.AssertExpectations(t)
	paiements.AssertExpectations(t)
}

func TestPaymentService_InitiatePayment_InvalidPhoneBlocksProvider(t *testing.T) {
	svc, _, _, _, provider, _ := newPaymentFixture()

	resp, err := svc.InitiatePayment(context.Background(), testClientID, testCommandeID, "123", domain.ModeWave)

	assert.ErrorIs(t, err, domain.ErrInvalidPhone)
	assert.Nil(t, resp)
	provider.AssertNotCalled(t, "InitiatePayment", mock.Anything, mock.Anything)
}

func TestPaymentService_InitiatePayment_Rejections(t *testing.T) {
	t.Run("cash mode has no provider flow", func(t *testing.T) {
		svc, _, _, _, _, _ := newPaymentFixture()
		_, err := svc.InitiatePayment(context.Background(), testClientID, testCommandeID, "771234567", domain.ModeEspeces)
		assert.ErrorIs(t, err, ErrModeNonMobile)
	})

	t.Run("order of another client", func(t *testing.T) {
		svc, commandes, _, _, provider, _ := newPaymentFixture()
		commandes.On("FindByID", testCommandeID).Return(testCommande(testCommandeID, 999, domain.CommandeEnAttente), nil)

		_, err := svc.InitiatePayment(context.Background(), testClientID, testCommandeID, "771234567", domain.ModeWave)

		assert.ErrorIs(t, err, ErrCommandeNotFound)
		provider.AssertNotCalled(t, "InitiatePayment", mock.Anything, mock.Anything)
	})

	t.Run("provider rejection leaves payment pending", func(t *testing.T) {
		svc, commandes, paiements, _, provider, _ := newPaymentFixture()
		commandes.On("FindByID", testCommandeID).Return(testCommande(testCommandeID, testClientID, domain.CommandeEnAttente), nil)
		paiements.On("FindByCommandeID", testCommandeID).Return(testPaiement(testCommandeID, domain.ModeWave), nil)
		provider.On("InitiatePayment", mock.Anything, mock.Anything).Return(nil, errors.New("wave returned status 503"))

		_, err := svc.InitiatePayment(context.Background(), testClientID, testCommandeID, "771234567", domain.ModeWave)

		assert.Error(t, err)
		paiements.AssertNotCalled(t, "Update", mock.Anything)
	})
}

func TestPaymentService_InitiatePayment_USSDStaysPending(t *testing.T) {
	svc, commandes, paiements, paniers, provider, _ := newPaymentFixture()

	commandes.On("FindByID", testCommandeID).Return(testCommande(testCommandeID, testClientID, domain.CommandeEnAttente), nil)
	paiements.On("FindByCommandeID", testCommandeID).Return(testPaiement(testCommandeID, domain.ModeOrangeMoney), nil)
	provider.On("InitiatePayment", mock.Anything, mock.Anything).Return(&infra.InitiationResponse{
		USSDCode:  "#144#391*771234567#",
		Reference: "om-token-1",
	}, nil)
	paiements.On("Update", mock.AnythingOfType("*domain.Paiement")).Return(nil)

	resp, err := svc.InitiatePayment(context.Background(), testClientID, testCommandeID, "771234567", domain.ModeOrangeMoney)

	assert.NoError(t, err)
	assert.Equal(t, "#144#391*771234567#", resp.USSDCode)
	// A USSD answer never confirms anything by itself: no order validation,
	// no cart clearing until VerifyStatus sees a success.
	commandes.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	paniers.AssertNotCalled(t, "Clear", mock.Anything)
}

func TestPaymentService_VerifyStatus_Classification(t *testing.T) {
	tests := []struct {
		name            string
		providerStatus  string
		expectedOutcome domain.PaiementOutcome
		expectValidated bool
	}{
		{name: "Complété is success", providerStatus: "Complété", expectedOutcome: domain.OutcomeSuccess, expectValidated: true},
		{name: "validé is success", providerStatus: "validé", expectedOutcome: domain.OutcomeSuccess, expectValidated: true},
		{name: "en_attente is pending", providerStatus: "en_attente", expectedOutcome: domain.OutcomePending},
		{name: "En cours is pending", providerStatus: "En cours", expectedOutcome: domain.OutcomePending},
		{name: "unknown spelling is failed", providerStatus: "transaction annulée", expectedOutcome: domain.OutcomeFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, commandes, paiements, paniers, provider, publisher := newPaymentFixture()

			paiement := testPaiement(testCommandeID, domain.ModeWave)
			paiement.ProviderRef = "cos-xyz"

			commandes.On("FindByID", testCommandeID).Return(testCommande(testCommandeID, testClientID, domain.CommandeEnAttente), nil)
			paiements.On("FindByCommandeID", testCommandeID).Return(paiement, nil)
			provider.On("CheckStatus", mock.Anything, "cos-xyz").Return(tt.providerStatus, nil)
			if tt.providerStatus != "en_attente" {
				paiements.On("Update", mock.AnythingOfType("*domain.Paiement")).Return(nil)
			}
			if tt.expectValidated {
				commandes.On("UpdateStatus", testCommandeID, domain.CommandeValidee).Return(nil)
				paniers.On("Clear", testClientID).Return(nil)
				publisher.On("Publish", mock.Anything, "paiement.completed", mock.Anything).Return(nil).Maybe()
			}

			result, err := svc.VerifyStatus(context.Background(), testCommandeID)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedOutcome, result.Outcome)
			if tt.expectValidated {
				assert.Equal(t, domain.CommandeValidee, result.Commande.Statut)
			} else {
				commandes.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
				paniers.AssertNotCalled(t, "Clear", mock.Anything)
			}

			time.Sleep(100 * time.Millisecond)
			commandes.AssertExpectations(t)
			paiements.AssertExpectations(t)
			paniers.AssertExpectations(t)
		})
	}
}

func TestPaymentService_VerifyStatus_ProviderError(t *testing.T) {
	svc, commandes, paiements, _, provider, _ := newPaymentFixture()

	paiement := testPaiement(testCommandeID, domain.ModeWave)
	paiement.ProviderRef = "cos-xyz"

	commandes.On("FindByID", testCommandeID).Return(testCommande(testCommandeID, testClientID, domain.CommandeEnAttente), nil)
	paiements.On("FindByCommandeID", testCommandeID).Return(paiement, nil)
	provider.On("CheckStatus", mock.Anything, "cos-xyz").Return("", errors.New("wave returned status 500"))

	result, err := svc.VerifyStatus(context.Background(), testCommandeID)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestPaymentService_VerifyStatus_UnknownCommande(t *testing.T) {
	svc, commandes, _, _, _, _ := newPaymentFixture()
	commandes.On("FindByID", uint64(999)).Return(nil, nil)

	result, err := svc.VerifyStatus(context.Background(), 999)

	assert.ErrorIs(t, err, ErrCommandeNotFound)
	assert.Nil(t, result)
}

func TestPaymentService_VerifyStatus_CashWithoutProvider(t *testing.T) {
	svc, commandes, paiements, _, provider, _ := newPaymentFixture()

	// No provider reference: the stored raw status is classified as-is.
	commandes.On("FindByID", testCommandeID).Return(testCommande(testCommandeID, testClientID, domain.CommandeEnAttente), nil)
	paiements.On("FindByCommandeID", testCommandeID).Return(testPaiement(testCommandeID, domain.ModeEspeces), nil)

	result, err := svc.VerifyStatus(context.Background(), testCommandeID)

	assert.NoError(t, err)
	assert.Equal(t, domain.OutcomePending, result.Outcome)
	provider.AssertNotCalled(t, "CheckStatus", mock.Anything, mock.Anything)
}

func TestPaymentService_VerifyStatus_SuccessIsIdempotent(t *testing.T) {
	svc, commandes, paiements, paniers, provider, publisher := newPaymentFixture()

	paiement := testPaiement(testCommandeID, domain.ModeWave)
	paiement.ProviderRef = "cos-xyz"
	paiement.StatutBrut = "Complété"
	paiement.Statut = domain.PaiementComplete

	// The order was already validated by an earlier check; a re-check must
	// not clear the cart or publish again.
	commandes.On("FindByID", testCommandeID).Return(testCommande(testCommandeID, testClientID, domain.CommandeValidee), nil)
	paiements.On("FindByCommandeID", testCommandeID).Return(paiement, nil)
	provider.On("CheckStatus", mock.Anything, "cos-xyz").Return("Complété", nil)

	result, err := svc.VerifyStatus(context.Background(), testCommandeID)

	assert.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, result.Outcome)
	commandes.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	paniers.AssertNotCalled(t, "Clear", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}
