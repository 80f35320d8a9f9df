package mysql

import (
	"errors"

	"texpress/internal/domain"
	"texpress/internal/repository"

	"gorm.io/gorm"
)

type panierRepo struct {
	db *gorm.DB
}

func NewPanierRepository(db *gorm.DB) repository.PanierRepository {
	return &panierRepo{db: db}
}

func (r *panierRepo) FindByClientID(clientID uint64) (*domain.Panier, error) {
	var p domain.Panier
	err := r.db.Preload("Lignes").Where("client_id = ?", clientID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *panierRepo) GetOrCreate(clientID uint64) (*domain.Panier, error) {
	p, err := r.FindByClientID(clientID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}
	p = &domain.Panier{ClientID: clientID}
	if err := r.db.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *panierRepo) UpsertLigne(panierID uint64, ligne *domain.PanierLigne) error {
	var existing domain.PanierLigne
	err := r.db.Where("panier_id = ? AND produit_id = ?", panierID, ligne.ProduitID).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ligne.PanierID = panierID
			return r.db.Create(ligne).Error
		}
		return err
	}
	existing.Quantite = ligne.Quantite
	return r.db.Save(&existing).Error
}

func (r *panierRepo) RemoveLigne(panierID, produitID uint64) error {
	return r.db.Where("panier_id = ? AND produit_id = ?", panierID, produitID).
		Delete(&domain.PanierLigne{}).Error
}

func (r *panierRepo) Clear(clientID uint64) error {
	p, err := r.FindByClientID(clientID)
	if err != nil || p == nil {
		return err
	}
	return r.db.Where("panier_id = ?", p.ID).Delete(&domain.PanierLigne{}).Error
}
