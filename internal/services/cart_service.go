package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"texpress/internal/domain"
	"texpress/internal/repository"

	"github.com/go-redis/redis/v8"
)

var (
	ErrProduitIntrouvable = errors.New("produit introuvable")
	ErrQuantiteInvalide   = errors.New("quantité invalide")
	ErrStockInsuffisant   = errors.New("stock insuffisant")
)

type CartService struct {
	paniers     repository.PanierRepository
	produits    repository.ProduitRepository
	redisClient *redis.Client
}

func NewCartService(paniers repository.PanierRepository, produits repository.ProduitRepository) *CartService {
	return &CartService{paniers: paniers, produits: produits}
}

func (s *CartService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// CartView is the cart plus its server-computed total.
type CartView struct {
	Panier *domain.Panier `json:"panier"`
	Total  int64          `json:"total"`
}

func (s *CartService) GetPanier(ctx context.Context, clientID uint64) (*CartView, error) {
	panier, err := s.paniers.FindByClientID(clientID)
	if err != nil {
		return nil, err
	}
	if panier == nil {
		panier = &domain.Panier{ClientID: clientID, Lignes: []domain.PanierLigne{}}
	}
	return &CartView{Panier: panier, Total: panier.Total()}, nil
}

// AddProduit adds quantite of the product, snapshotting today's price on the
// line. Adding an already-present product replaces its quantity.
func (s *CartService) AddProduit(ctx context.Context, clientID, produitID uint64, quantite int64) (*CartView, error) {
	if quantite <= 0 {
		return nil, ErrQuantiteInvalide
	}

	produit, err := s.getProduitWithCache(ctx, produitID)
	if err != nil {
		return nil, err
	}
	if produit == nil || !produit.Actif {
		return nil, ErrProduitIntrouvable
	}
	if quantite > produit.Stock {
		return nil, ErrStockInsuffisant
	}

	panier, err := s.paniers.GetOrCreate(clientID)
	if err != nil {
		return nil, err
	}

	ligne := &domain.PanierLigne{
		ProduitID:    produitID,
		Quantite:     quantite,
		PrixUnitaire: produit.Prix,
	}
	if err := s.paniers.UpsertLigne(panier.ID, ligne); err != nil {
		return nil, err
	}
	return s.GetPanier(ctx, clientID)
}

func (s *CartService) UpdateQuantite(ctx context.Context, clientID, produitID uint64, quantite int64) (*CartView, error) {
	if quantite <= 0 {
		return s.RemoveProduit(ctx, clientID, produitID)
	}
	return s.AddProduit(ctx, clientID, produitID, quantite)
}

func (s *CartService) RemoveProduit(ctx context.Context, clientID, produitID uint64) (*CartView, error) {
	panier, err := s.paniers.FindByClientID(clientID)
	if err != nil {
		return nil, err
	}
	if panier != nil {
		if err := s.paniers.RemoveLigne(panier.ID, produitID); err != nil {
			return nil, err
		}
	}
	return s.GetPanier(ctx, clientID)
}

func (s *CartService) Clear(ctx context.Context, clientID uint64) error {
	return s.paniers.Clear(clientID)
}

func (s *CartService) getProduitWithCache(ctx context.Context, produitID uint64) (*domain.Produit, error) {
	cacheKey := fmt.Sprintf("produit:%d", produitID)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var p domain.Produit
			if err := json.Unmarshal([]byte(cached), &p); err == nil {
				return &p, nil
			}
		}
	}

	p, err := s.produits.FindByID(produitID)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil && p != nil {
		if data, err := json.Marshal(p); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, time.Minute)
		}
	}

	return p, nil
}
