package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"texpress/internal/domain"
	"texpress/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCheckoutFixture() (*CheckoutService, *mocks.MockCommandeRepository, *mocks.MockPanierRepository, *mocks.MockAdresseRepository, *mocks.MockPublisher) {
	commandes := new(mocks.MockCommandeRepository)
	paniers := new(mocks.MockPanierRepository)
	adresses := new(mocks.MockAdresseRepository)
	publisher := new(mocks.MockPublisher)
	svc := NewCheckoutService(commandes, paniers, adresses, publisher)
	return svc, commandes, paniers, adresses, publisher
}

func TestCheckoutService_CreateCommande_Especes(t *testing.T) {
	svc, commandes, paniers, adresses, publisher := newCheckoutFixture()

	paniers.On("FindByClientID", testClientID).Return(testPanier(testClientID), nil)
	adresses.On("FindByID", testAdresseID).Return(testAdresse(testAdresseID, testClientID), nil)
	commandes.On("Save", mock.AnythingOfType("*domain.Commande")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Commande).ID = 42
	})
	paniers.On("Clear", testClientID).Return(nil)
	publisher.On("Publish", mock.Anything, "commande.created", mock.Anything).Return(nil).Maybe()

	result, err := svc.CreateCommande(context.Background(), testClientID, CheckoutRequest{
		AdresseID: testAdresseID,
		Mode:      domain.ModeEspeces,
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "/my-account/orders", result.NextURL)
	assert.Equal(t, int64(2500), result.Commande.Montant)
	assert.Equal(t, domain.CommandeEnAttente, result.Commande.Statut)
	assert.NotEmpty(t, result.Commande.Numero)
	assert.Len(t, result.Commande.Lignes, 2)
	// The payment record is part of the order write, never a second insert.
	assert.NotNil(t, result.Commande.Paiement)
	assert.Equal(t, domain.ModeEspeces, result.Commande.Paiement.Mode)
	assert.Equal(t, int64(2500), result.Commande.Paiement.Montant)
	assert.Equal(t, domain.PaiementEnAttente, result.Commande.Paiement.Statut)

	time.Sleep(100 * time.Millisecond)
	commandes.AssertExpectations(t)
	paniers.AssertExpectations(t)
}

func TestCheckoutService_CreateCommande_Wave(t *testing.T) {
	svc, commandes, paniers, adresses, publisher := newCheckoutFixture()

	paniers.On("FindByClientID", testClientID).Return(testPanier(testClientID), nil)
	adresses.On("FindByID", testAdresseID).Return(testAdresse(testAdresseID, testClientID), nil)
	commandes.On("Save", mock.AnythingOfType("*domain.Commande")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Commande).ID = 42
	})
	publisher.On("Publish", mock.Anything, "commande.created", mock.Anything).Return(nil).Maybe()

	result, err := svc.CreateCommande(context.Background(), testClientID, CheckoutRequest{
		AdresseID: testAdresseID,
		Mode:      domain.ModeWave,
		Telephone: "771234567",
	})

	assert.NoError(t, err)
	assert.Equal(t, "/payment?commande_id=42&mode=wave&montant=2500&telephone=771234567", result.NextURL)
	// The mobile-money cart survives until the payment is confirmed.
	paniers.AssertNotCalled(t, "Clear", testClientID)

	time.Sleep(100 * time.Millisecond)
	commandes.AssertExpectations(t)
}

func TestCheckoutService_CreateCommande_NextURLEscapesTelephone(t *testing.T) {
	svc, commandes, paniers, adresses, publisher := newCheckoutFixture()

	paniers.On("FindByClientID", testClientID).Return(testPanier(testClientID), nil)
	adresses.On("FindByID", testAdresseID).Return(testAdresse(testAdresseID, testClientID), nil)
	commandes.On("Save", mock.AnythingOfType("*domain.Commande")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Commande).ID = 42
	})
	publisher.On("Publish", mock.Anything, "commande.created", mock.Anything).Return(nil).Maybe()

	result, err := svc.CreateCommande(context.Background(), testClientID, CheckoutRequest{
		AdresseID: testAdresseID,
		Mode:      domain.ModeWave,
		Telephone: "+221771234567",
	})

	assert.NoError(t, err)
	// A raw + in the query would decode as a space on the payment page.
	assert.Equal(t, "/payment?commande_id=42&mode=wave&montant=2500&telephone=%2B221771234567", result.NextURL)
}

func TestCheckoutService_CreateCommande_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		req         CheckoutRequest
		setupMocks  func(paniers *mocks.MockPanierRepository, adresses *mocks.MockAdresseRepository)
		expectedErr error
	}{
		{
			name:        "invalid payment mode",
			req:         CheckoutRequest{AdresseID: testAdresseID, Mode: "cheque"},
			setupMocks:  func(*mocks.MockPanierRepository, *mocks.MockAdresseRepository) {},
			expectedErr: ErrModePaiementInvalide,
		},
		{
			name:        "negative shipping fee",
			req:         CheckoutRequest{AdresseID: testAdresseID, Mode: domain.ModeEspeces, FraisLivraison: -100},
			setupMocks:  func(*mocks.MockPanierRepository, *mocks.MockAdresseRepository) {},
			expectedErr: ErrFraisInvalides,
		},
		{
			name: "no cart",
			req:  CheckoutRequest{AdresseID: testAdresseID, Mode: domain.ModeEspeces},
			setupMocks: func(paniers *mocks.MockPanierRepository, _ *mocks.MockAdresseRepository) {
				paniers.On("FindByClientID", testClientID).Return(nil, nil)
			},
			expectedErr: ErrPanierVide,
		},
		{
			name: "empty cart",
			req:  CheckoutRequest{AdresseID: testAdresseID, Mode: domain.ModeEspeces},
			setupMocks: func(paniers *mocks.MockPanierRepository, _ *mocks.MockAdresseRepository) {
				paniers.On("FindByClientID", testClientID).Return(&domain.Panier{ID: 1, ClientID: testClientID}, nil)
			},
			expectedErr: ErrPanierVide,
		},
		{
			name: "address of another client",
			req:  CheckoutRequest{AdresseID: testAdresseID, Mode: domain.ModeEspeces},
			setupMocks: func(paniers *mocks.MockPanierRepository, adresses *mocks.MockAdresseRepository) {
				paniers.On("FindByClientID", testClientID).Return(testPanier(testClientID), nil)
				adresses.On("FindByID", testAdresseID).Return(testAdresse(testAdresseID, 999), nil)
			},
			expectedErr: ErrAdresseIntrouvable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, commandes, paniers, adresses, _ := newCheckoutFixture()
			tt.setupMocks(paniers, adresses)

			result, err := svc.CreateCommande(context.Background(), testClientID, tt.req)

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, result)
			commandes.AssertNotCalled(t, "Save", mock.Anything)
		})
	}
}

func TestCheckoutService_CreateCommande_InlineAdresse(t *testing.T) {
	svc, commandes, paniers, adresses, publisher := newCheckoutFixture()

	paniers.On("FindByClientID", testClientID).Return(testPanier(testClientID), nil)
	adresses.On("Save", mock.AnythingOfType("*domain.Adresse")).Return(nil).Run(func(args mock.Arguments) {
		adr := args.Get(0).(*domain.Adresse)
		adr.ID = 77
		assert.Equal(t, testClientID, adr.ClientID)
	})
	commandes.On("Save", mock.AnythingOfType("*domain.Commande")).Return(nil).Run(func(args mock.Arguments) {
		c := args.Get(0).(*domain.Commande)
		c.ID = 43
		assert.Equal(t, uint64(77), c.AdresseLivraisonID)
	})
	paniers.On("Clear", testClientID).Return(nil)
	publisher.On("Publish", mock.Anything, "commande.created", mock.Anything).Return(nil).Maybe()

	result, err := svc.CreateCommande(context.Background(), testClientID, CheckoutRequest{
		NouvelleAdresse: &domain.Adresse{Ligne1: "Sacré-Cœur 3", Ville: "Dakar"},
		Mode:            domain.ModeEspeces,
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)

	time.Sleep(100 * time.Millisecond)
	adresses.AssertExpectations(t)
	commandes.AssertExpectations(t)
}

func TestCheckoutService_CreateCommande_KeylessOrdersDontCollide(t *testing.T) {
	svc, commandes, paniers, adresses, publisher := newCheckoutFixture()

	paniers.On("FindByClientID", testClientID).Return(testPanier(testClientID), nil)
	adresses.On("FindByID", testAdresseID).Return(testAdresse(testAdresseID, testClientID), nil)
	paniers.On("Clear", testClientID).Return(nil)
	publisher.On("Publish", mock.Anything, "commande.created", mock.Anything).Return(nil).Maybe()

	var nextID uint64 = 100
	commandes.On("Save", mock.MatchedBy(func(c *domain.Commande) bool {
		// No key supplied means the column stays NULL, so the unique index
		// never sees two identical empty strings.
		return c.IdempotencyKey == nil
	})).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Commande).ID = nextID
		nextID++
	}).Twice()

	req := CheckoutRequest{AdresseID: testAdresseID, Mode: domain.ModeEspeces}

	first, err := svc.CreateCommande(context.Background(), testClientID, req)
	assert.NoError(t, err)
	second, err := svc.CreateCommande(context.Background(), testClientID, req)
	assert.NoError(t, err)

	assert.NotEqual(t, first.Commande.ID, second.Commande.ID)
	commandes.AssertNotCalled(t, "FindByIdempotencyKey", mock.Anything)

	time.Sleep(100 * time.Millisecond)
	commandes.AssertExpectations(t)
}

func TestCheckoutService_CreateCommande_Idempotent(t *testing.T) {
	svc, commandes, paniers, _, _ := newCheckoutFixture()

	key := "abc-123"
	existing := testCommande(42, testClientID, domain.CommandeEnAttente)
	existing.IdempotencyKey = &key
	commandes.On("FindByIdempotencyKey", "abc-123").Return(existing, nil)

	result, err := svc.CreateCommande(context.Background(), testClientID, CheckoutRequest{
		AdresseID:      testAdresseID,
		Mode:           domain.ModeWave,
		Telephone:      "771234567",
		IdempotencyKey: "abc-123",
	})

	assert.NoError(t, err)
	assert.Equal(t, uint64(42), result.Commande.ID)
	commandes.AssertNotCalled(t, "Save", mock.Anything)
	paniers.AssertNotCalled(t, "FindByClientID", mock.Anything)
}

func TestCheckoutService_CreateCommande_IdempotentRace(t *testing.T) {
	svc, commandes, paniers, adresses, _ := newCheckoutFixture()

	key := "abc-123"
	winner := testCommande(42, testClientID, domain.CommandeEnAttente)
	winner.IdempotencyKey = &key

	paniers.On("FindByClientID", testClientID).Return(testPanier(testClientID), nil)
	adresses.On("FindByID", testAdresseID).Return(testAdresse(testAdresseID, testClientID), nil)
	// First lookup misses, the insert then collides with the concurrent
	// submission, and the re-lookup finds the winner.
	commandes.On("FindByIdempotencyKey", "abc-123").Return(nil, nil).Once()
	commandes.On("Save", mock.AnythingOfType("*domain.Commande")).Return(errors.New("Duplicate entry 'abc-123'"))
	commandes.On("FindByIdempotencyKey", "abc-123").Return(winner, nil).Once()

	result, err := svc.CreateCommande(context.Background(), testClientID, CheckoutRequest{
		AdresseID:      testAdresseID,
		Mode:           domain.ModeEspeces,
		IdempotencyKey: "abc-123",
	})

	assert.NoError(t, err)
	assert.Equal(t, uint64(42), result.Commande.ID)
	commandes.AssertExpectations(t)
}

func TestCheckoutService_UpdateCommandeStatus(t *testing.T) {
	tests := []struct {
		name        string
		current     domain.CommandeStatus
		next        domain.CommandeStatus
		expectedErr error
	}{
		{name: "validate pending order", current: domain.CommandeEnAttente, next: domain.CommandeValidee},
		{name: "ship prepared order", current: domain.CommandeEnPreparation, next: domain.CommandeExpediee},
		{name: "cannot deliver pending order", current: domain.CommandeEnAttente, next: domain.CommandeLivree, expectedErr: ErrTransitionInvalide},
		{name: "cannot revive cancelled order", current: domain.CommandeAnnulee, next: domain.CommandeValidee, expectedErr: ErrTransitionInvalide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, commandes, _, _, _ := newCheckoutFixture()
			commandes.On("FindByID", testCommandeID).Return(testCommande(testCommandeID, testClientID, tt.current), nil)
			if tt.expectedErr == nil {
				commandes.On("UpdateStatus", testCommandeID, tt.next).Return(nil)
			}

			err := svc.UpdateCommandeStatus(context.Background(), testCommandeID, tt.next)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			commandes.AssertExpectations(t)
		})
	}
}

func TestCheckoutService_GetCommande_Ownership(t *testing.T) {
	svc, commandes, _, _, _ := newCheckoutFixture()
	commandes.On("FindByID", testCommandeID).Return(testCommande(testCommandeID, 999, domain.CommandeEnAttente), nil)

	result, err := svc.GetCommande(context.Background(), testClientID, testCommandeID)

	assert.ErrorIs(t, err, ErrCommandeNotFound)
	assert.Nil(t, result)
}
