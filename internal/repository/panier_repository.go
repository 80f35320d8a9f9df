package repository

import (
	"texpress/internal/domain"
)

type PanierRepository interface {
	// FindByClientID returns the client's cart with lines loaded, or
	// (nil, nil) when the client has no cart yet.
	FindByClientID(clientID uint64) (*domain.Panier, error)
	GetOrCreate(clientID uint64) (*domain.Panier, error)
	UpsertLigne(panierID uint64, ligne *domain.PanierLigne) error
	RemoveLigne(panierID, produitID uint64) error
	Clear(clientID uint64) error
}
