package mysql

import (
	"errors"

	"texpress/internal/domain"
	"texpress/internal/repository"

	"gorm.io/gorm"
)

type clientRepo struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Save(client *domain.Client) error {
	return r.db.Save(client).Error
}

func (r *clientRepo) FindByID(id uint64) (*domain.Client, error) {
	var c domain.Client
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *clientRepo) FindByEmail(email string) (*domain.Client, error) {
	var c domain.Client
	if err := r.db.Where("email = ?", email).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *clientRepo) FindAll(limit, offset int) ([]domain.Client, error) {
	var out []domain.Client
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

type adresseRepo struct {
	db *gorm.DB
}

func NewAdresseRepository(db *gorm.DB) repository.AdresseRepository {
	return &adresseRepo{db: db}
}

func (r *adresseRepo) Save(adresse *domain.Adresse) error {
	// A new default address displaces the previous one for the client.
	if adresse.ParDefaut {
		err := r.db.Model(&domain.Adresse{}).
			Where("client_id = ?", adresse.ClientID).
			Update("par_defaut", false).Error
		if err != nil {
			return err
		}
	}
	return r.db.Create(adresse).Error
}

func (r *adresseRepo) FindByID(id uint64) (*domain.Adresse, error) {
	var a domain.Adresse
	if err := r.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *adresseRepo) FindByClientID(clientID uint64) ([]domain.Adresse, error) {
	var out []domain.Adresse
	err := r.db.Where("client_id = ?", clientID).
		Order("par_defaut DESC, created_at DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *adresseRepo) Delete(id uint64) error {
	return r.db.Delete(&domain.Adresse{}, id).Error
}

type favoriRepo struct {
	db *gorm.DB
}

func NewFavoriRepository(db *gorm.DB) repository.FavoriRepository {
	return &favoriRepo{db: db}
}

func (r *favoriRepo) Add(favori *domain.Favori) error {
	return r.db.Create(favori).Error
}

func (r *favoriRepo) Remove(clientID, produitID uint64) error {
	return r.db.Where("client_id = ? AND produit_id = ?", clientID, produitID).
		Delete(&domain.Favori{}).Error
}

func (r *favoriRepo) FindByClientID(clientID uint64) ([]domain.Favori, error) {
	var out []domain.Favori
	err := r.db.Where("client_id = ?", clientID).Order("created_at DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

type retourRepo struct {
	db *gorm.DB
}

func NewRetourRepository(db *gorm.DB) repository.RetourRepository {
	return &retourRepo{db: db}
}

func (r *retourRepo) Save(retour *domain.Retour) error {
	return r.db.Create(retour).Error
}

func (r *retourRepo) FindByID(id uint64) (*domain.Retour, error) {
	var ret domain.Retour
	if err := r.db.First(&ret, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ret, nil
}

func (r *retourRepo) FindByClientID(clientID uint64) ([]domain.Retour, error) {
	var out []domain.Retour
	err := r.db.Where("client_id = ?", clientID).Order("created_at DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *retourRepo) FindAll(limit, offset int) ([]domain.Retour, error) {
	var out []domain.Retour
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *retourRepo) UpdateStatus(id uint64, status domain.RetourStatus) error {
	return r.db.Model(&domain.Retour{}).Where("id = ?", id).
		Update("statut", status).Error
}
