package repository

import (
	"texpress/internal/domain"
)

type ClientRepository interface {
	Save(client *domain.Client) error
	FindByID(id uint64) (*domain.Client, error)
	FindByEmail(email string) (*domain.Client, error)
	FindAll(limit, offset int) ([]domain.Client, error)
}

type AdresseRepository interface {
	Save(adresse *domain.Adresse) error
	FindByID(id uint64) (*domain.Adresse, error)
	FindByClientID(clientID uint64) ([]domain.Adresse, error)
	Delete(id uint64) error
}

type FavoriRepository interface {
	Add(favori *domain.Favori) error
	Remove(clientID, produitID uint64) error
	FindByClientID(clientID uint64) ([]domain.Favori, error)
}

type RetourRepository interface {
	Save(retour *domain.Retour) error
	FindByID(id uint64) (*domain.Retour, error)
	FindByClientID(clientID uint64) ([]domain.Retour, error)
	FindAll(limit, offset int) ([]domain.Retour, error)
	UpdateStatus(id uint64, status domain.RetourStatus) error
}
