package repository

import (
	"texpress/internal/domain"
)

type HeroRepository interface {
	// Save runs slot admission inside the same transaction as the insert,
	// so two concurrent admin sessions cannot both claim the last slot.
	Save(section *domain.HeroSection) error
	FindByID(id uint64) (*domain.HeroSection, error)
	FindAll() ([]domain.HeroSection, error)
	FindActive() ([]domain.HeroSection, error)
	CountActiveByType(t domain.HeroType) (int64, error)
	FindActiveBySlot(p domain.HeroPosition) (*domain.HeroSection, error)
	Update(section *domain.HeroSection) error
	SetActive(id uint64, active bool) error
	Delete(id uint64) error
}
