package repository

import (
	"texpress/internal/domain"
)

type CommandeRepository interface {
	// Save inserts the order together with its lines and payment record in
	// one transaction.
	Save(commande *domain.Commande) error
	FindByID(id uint64) (*domain.Commande, error)
	FindByIdempotencyKey(key string) (*domain.Commande, error)
	FindByClientID(clientID uint64) ([]domain.Commande, error)
	FindAll(limit, offset int) ([]domain.Commande, error)
	UpdateStatus(id uint64, status domain.CommandeStatus) error
}

type PaiementRepository interface {
	FindByCommandeID(commandeID uint64) (*domain.Paiement, error)
	Update(paiement *domain.Paiement) error
}
