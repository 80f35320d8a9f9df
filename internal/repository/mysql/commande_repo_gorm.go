package mysql

import (
	"errors"
	"log"

	"texpress/internal/domain"
	"texpress/internal/repository"

	"gorm.io/gorm"
)

type commandeRepo struct {
	db *gorm.DB
}

func NewCommandeRepository(db *gorm.DB) repository.CommandeRepository {
	return &commandeRepo{db: db}
}

func (r *commandeRepo) Save(commande *domain.Commande) error {
	result := r.db.Create(commande)
	if result.Error != nil {
		log.Printf("commande save error: %v", result.Error)
		return result.Error
	}
	if commande.ID == 0 {
		return errors.New("failed to assign commande ID")
	}
	return nil
}

func (r *commandeRepo) FindByID(id uint64) (*domain.Commande, error) {
	var c domain.Commande
	err := r.db.Preload("Lignes").Preload("Paiement").First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *commandeRepo) FindByIdempotencyKey(key string) (*domain.Commande, error) {
	if key == "" {
		return nil, nil
	}
	var c domain.Commande
	err := r.db.Preload("Lignes").Preload("Paiement").
		Where("idempotency_key = ?", key).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *commandeRepo) FindByClientID(clientID uint64) ([]domain.Commande, error) {
	var out []domain.Commande
	err := r.db.Preload("Lignes").Preload("Paiement").
		Where("client_id = ?", clientID).
		Order("created_at DESC").Find(&out).Error
	if err != nil {
		log.Printf("commande FindByClientID error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *commandeRepo) FindAll(limit, offset int) ([]domain.Commande, error) {
	var out []domain.Commande
	err := r.db.Preload("Lignes").Preload("Paiement").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *commandeRepo) UpdateStatus(id uint64, status domain.CommandeStatus) error {
	return r.db.Model(&domain.Commande{}).Where("id = ?", id).
		Update("statut", status).Error
}

type paiementRepo struct {
	db *gorm.DB
}

func NewPaiementRepository(db *gorm.DB) repository.PaiementRepository {
	return &paiementRepo{db: db}
}

func (r *paiementRepo) FindByCommandeID(commandeID uint64) (*domain.Paiement, error) {
	var p domain.Paiement
	err := r.db.Where("commande_id = ?", commandeID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *paiementRepo) Update(paiement *domain.Paiement) error {
	return r.db.Save(paiement).Error
}
