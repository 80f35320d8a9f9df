package mysql

import (
	"errors"

	"texpress/internal/domain"
	"texpress/internal/repository"

	"gorm.io/gorm"
)

type produitRepo struct {
	db *gorm.DB
}

func NewProduitRepository(db *gorm.DB) repository.ProduitRepository {
	return &produitRepo{db: db}
}

func (r *produitRepo) Save(produit *domain.Produit) error {
	return r.db.Create(produit).Error
}

func (r *produitRepo) FindByID(id uint64) (*domain.Produit, error) {
	var p domain.Produit
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *produitRepo) FindAll(actifOnly bool, limit, offset int) ([]domain.Produit, error) {
	q := r.db.Order("created_at DESC")
	if actifOnly {
		q = q.Where("actif = ?", true)
	}
	var out []domain.Produit
	if err := q.Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *produitRepo) FindByCategorie(categorieID uint64) ([]domain.Produit, error) {
	var out []domain.Produit
	err := r.db.Where("categorie_id = ? AND actif = ?", categorieID, true).
		Order("created_at DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *produitRepo) BestSellers(limit int) ([]domain.Produit, error) {
	var out []domain.Produit
	err := r.db.Where("actif = ?", true).
		Order("ventes DESC").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *produitRepo) Update(produit *domain.Produit) error {
	return r.db.Save(produit).Error
}

func (r *produitRepo) Delete(id uint64) error {
	return r.db.Delete(&domain.Produit{}, id).Error
}

type categorieRepo struct {
	db *gorm.DB
}

func NewCategorieRepository(db *gorm.DB) repository.CategorieRepository {
	return &categorieRepo{db: db}
}

func (r *categorieRepo) Save(categorie *domain.Categorie) error {
	return r.db.Create(categorie).Error
}

func (r *categorieRepo) FindByID(id uint64) (*domain.Categorie, error) {
	var c domain.Categorie
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *categorieRepo) FindAll() ([]domain.Categorie, error) {
	var out []domain.Categorie
	if err := r.db.Order("nom ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *categorieRepo) Update(categorie *domain.Categorie) error {
	return r.db.Save(categorie).Error
}

func (r *categorieRepo) Delete(id uint64) error {
	return r.db.Delete(&domain.Categorie{}, id).Error
}

type articleRepo struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) repository.ArticleRepository {
	return &articleRepo{db: db}
}

func (r *articleRepo) Save(article *domain.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepo) FindByID(id uint64) (*domain.Article, error) {
	var a domain.Article
	if err := r.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *articleRepo) FindPublished() ([]domain.Article, error) {
	var out []domain.Article
	err := r.db.Where("publie = ?", true).Order("created_at DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *articleRepo) Delete(id uint64) error {
	return r.db.Delete(&domain.Article{}, id).Error
}
