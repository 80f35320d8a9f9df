package services

import (
	"context"
	"fmt"
	"log"

	"texpress/internal/domain"
	"texpress/internal/repository"

	"github.com/go-redis/redis/v8"
)

type CatalogService struct {
	produits    repository.ProduitRepository
	categories  repository.CategorieRepository
	articles    repository.ArticleRepository
	redisClient *redis.Client
}

func NewCatalogService(
	produits repository.ProduitRepository,
	categories repository.CategorieRepository,
	articles repository.ArticleRepository,
) *CatalogService {
	return &CatalogService{
		produits:   produits,
		categories: categories,
		articles:   articles,
	}
}

func (s *CatalogService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *CatalogService) ListProduits(ctx context.Context, limit, offset int) ([]domain.Produit, error) {
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	return s.produits.FindAll(true, limit, offset)
}

func (s *CatalogService) ListProduitsAdmin(ctx context.Context, limit, offset int) ([]domain.Produit, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.produits.FindAll(false, limit, offset)
}

func (s *CatalogService) GetProduit(ctx context.Context, id uint64) (*domain.Produit, error) {
	p, err := s.produits.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProduitIntrouvable
	}
	return p, nil
}

func (s *CatalogService) ListByCategorie(ctx context.Context, categorieID uint64) ([]domain.Produit, error) {
	return s.produits.FindByCategorie(categorieID)
}

// BestSellers degrades to an empty list on storage errors so the homepage
// never breaks on a read failure.
func (s *CatalogService) BestSellers(ctx context.Context, limit int) []domain.Produit {
	if limit <= 0 || limit > 50 {
		limit = 8
	}
	out, err := s.produits.BestSellers(limit)
	if err != nil {
		log.Printf("best sellers lookup failed: %v", err)
		return []domain.Produit{}
	}
	return out
}

func (s *CatalogService) CreateProduit(ctx context.Context, p *domain.Produit) error {
	return s.produits.Save(p)
}

func (s *CatalogService) UpdateProduit(ctx context.Context, p *domain.Produit) error {
	existing, err := s.produits.FindByID(p.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProduitIntrouvable
	}
	if err := s.produits.Update(p); err != nil {
		return err
	}
	s.invalidateProduit(ctx, p.ID)
	return nil
}

func (s *CatalogService) DeleteProduit(ctx context.Context, id uint64) error {
	if err := s.produits.Delete(id); err != nil {
		return err
	}
	s.invalidateProduit(ctx, id)
	return nil
}

func (s *CatalogService) invalidateProduit(ctx context.Context, id uint64) {
	if s.redisClient != nil {
		s.redisClient.Del(ctx, fmt.Sprintf("produit:%d", id))
	}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Categorie, error) {
	return s.categories.FindAll()
}

func (s *CatalogService) CreateCategorie(ctx context.Context, c *domain.Categorie) error {
	return s.categories.Save(c)
}

func (s *CatalogService) UpdateCategorie(ctx context.Context, c *domain.Categorie) error {
	return s.categories.Update(c)
}

func (s *CatalogService) DeleteCategorie(ctx context.Context, id uint64) error {
	return s.categories.Delete(id)
}

func (s *CatalogService) ListArticles(ctx context.Context) ([]domain.Article, error) {
	return s.articles.FindPublished()
}

func (s *CatalogService) GetArticle(ctx context.Context, id uint64) (*domain.Article, error) {
	return s.articles.FindByID(id)
}

func (s *CatalogService) SaveArticle(ctx context.Context, a *domain.Article) error {
	return s.articles.Save(a)
}

func (s *CatalogService) DeleteArticle(ctx context.Context, id uint64) error {
	return s.articles.Delete(id)
}
