package mocks

import (
	"context"

	"texpress/internal/domain"
	"texpress/internal/infra"

	"github.com/stretchr/testify/mock"
)

type MockCommandeRepository struct {
	mock.Mock
}

func (m *MockCommandeRepository) Save(commande *domain.Commande) error {
	args := m.Called(commande)
	return args.Error(0)
}

func (m *MockCommandeRepository) FindByID(id uint64) (*domain.Commande, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Commande), args.Error(1)
}

func (m *MockCommandeRepository) FindByIdempotencyKey(key string) (*domain.Commande, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Commande), args.Error(1)
}

func (m *MockCommandeRepository) FindByClientID(clientID uint64) ([]domain.Commande, error) {
	args := m.Called(clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Commande), args.Error(1)
}

func (m *MockCommandeRepository) FindAll(limit, offset int) ([]domain.Commande, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Commande), args.Error(1)
}

func (m *MockCommandeRepository) UpdateStatus(id uint64, status domain.CommandeStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

type MockPaiementRepository struct {
	mock.Mock
}

func (m *MockPaiementRepository) FindByCommandeID(commandeID uint64) (*domain.Paiement, error) {
	args := m.Called(commandeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Paiement), args.Error(1)
}

func (m *MockPaiementRepository) Update(paiement *domain.Paiement) error {
	args := m.Called(paiement)
	return args.Error(0)
}

type MockPanierRepository struct {
	mock.Mock
}

func (m *MockPanierRepository) FindByClientID(clientID uint64) (*domain.Panier, error) {
	args := m.Called(clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Panier), args.Error(1)
}

func (m *MockPanierRepository) GetOrCreate(clientID uint64) (*domain.Panier, error) {
	args := m.Called(clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Panier), args.Error(1)
}

func (m *MockPanierRepository) UpsertLigne(panierID uint64, ligne *domain.PanierLigne) error {
	args := m.Called(panierID, ligne)
	return args.Error(0)
}

func (m *MockPanierRepository) RemoveLigne(panierID, produitID uint64) error {
	args := m.Called(panierID, produitID)
	return args.Error(0)
}

func (m *MockPanierRepository) Clear(clientID uint64) error {
	args := m.Called(clientID)
	return args.Error(0)
}

type MockAdresseRepository struct {
	mock.Mock
}

func (m *MockAdresseRepository) Save(adresse *domain.Adresse) error {
	args := m.Called(adresse)
	return args.Error(0)
}

func (m *MockAdresseRepository) FindByID(id uint64) (*domain.Adresse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Adresse), args.Error(1)
}

func (m *MockAdresseRepository) FindByClientID(clientID uint64) ([]domain.Adresse, error) {
	args := m.Called(clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Adresse), args.Error(1)
}

func (m *MockAdresseRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockHeroRepository struct {
	mock.Mock
}

func (m *MockHeroRepository) Save(section *domain.HeroSection) error {
	args := m.Called(section)
	return args.Error(0)
}

func (m *MockHeroRepository) FindByID(id uint64) (*domain.HeroSection, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HeroSection), args.Error(1)
}

func (m *MockHeroRepository) FindAll() ([]domain.HeroSection, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HeroSection), args.Error(1)
}

func (m *MockHeroRepository) FindActive() ([]domain.HeroSection, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HeroSection), args.Error(1)
}

func (m *MockHeroRepository) CountActiveByType(t domain.HeroType) (int64, error) {
	args := m.Called(t)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHeroRepository) FindActiveBySlot(p domain.HeroPosition) (*domain.HeroSection, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HeroSection), args.Error(1)
}

func (m *MockHeroRepository) Update(section *domain.HeroSection) error {
	args := m.Called(section)
	return args.Error(0)
}

func (m *MockHeroRepository) SetActive(id uint64, active bool) error {
	args := m.Called(id, active)
	return args.Error(0)
}

func (m *MockHeroRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockProduitRepository struct {
	mock.Mock
}

func (m *MockProduitRepository) Save(produit *domain.Produit) error {
	args := m.Called(produit)
	return args.Error(0)
}

func (m *MockProduitRepository) FindByID(id uint64) (*domain.Produit, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Produit), args.Error(1)
}

func (m *MockProduitRepository) FindAll(actifOnly bool, limit, offset int) ([]domain.Produit, error) {
	args := m.Called(actifOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Produit), args.Error(1)
}

func (m *MockProduitRepository) FindByCategorie(categorieID uint64) ([]domain.Produit, error) {
	args := m.Called(categorieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Produit), args.Error(1)
}

func (m *MockProduitRepository) BestSellers(limit int) ([]domain.Produit, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Produit), args.Error(1)
}

func (m *MockProduitRepository) Update(produit *domain.Produit) error {
	args := m.Called(produit)
	return args.Error(0)
}

func (m *MockProduitRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) InitiatePayment(ctx context.Context, req infra.InitiationRequest) (*infra.InitiationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infra.InitiationResponse), args.Error(1)
}

func (m *MockPaymentProvider) CheckStatus(ctx context.Context, reference string) (string, error) {
	args := m.Called(ctx, reference)
	return args.String(0), args.Error(1)
}
