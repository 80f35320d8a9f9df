package repository

import (
	"texpress/internal/domain"
)

type ProduitRepository interface {
	Save(produit *domain.Produit) error
	FindByID(id uint64) (*domain.Produit, error)
	FindAll(actifOnly bool, limit, offset int) ([]domain.Produit, error)
	FindByCategorie(categorieID uint64) ([]domain.Produit, error)
	BestSellers(limit int) ([]domain.Produit, error)
	Update(produit *domain.Produit) error
	Delete(id uint64) error
}

type CategorieRepository interface {
	Save(categorie *domain.Categorie) error
	FindByID(id uint64) (*domain.Categorie, error)
	FindAll() ([]domain.Categorie, error)
	Update(categorie *domain.Categorie) error
	Delete(id uint64) error
}

type ArticleRepository interface {
	Save(article *domain.Article) error
	FindByID(id uint64) (*domain.Article, error)
	FindPublished() ([]domain.Article, error)
	Delete(id uint64) error
}
