package services

import (
	"context"
	"errors"

	"texpress/internal/cache"
	"texpress/internal/domain"
	"texpress/internal/repository"
)

var ErrHeroIntrouvable = errors.New("section hero introuvable")
var ErrHeroTypeInvalide = errors.New("type de section hero invalide")

type HeroService struct {
	repo      repository.HeroRepository
	heroCache *cache.HeroCache
}

func NewHeroService(repo repository.HeroRepository, heroCache *cache.HeroCache) *HeroService {
	return &HeroService{repo: repo, heroCache: heroCache}
}

// ListActive serves the storefront through the 5-minute cache.
func (s *HeroService) ListActive(ctx context.Context) ([]domain.HeroSection, error) {
	if s.heroCache != nil {
		if sections, ok := s.heroCache.Get(ctx); ok {
			return sections, nil
		}
	}
	sections, err := s.repo.FindActive()
	if err != nil {
		return nil, err
	}
	if s.heroCache != nil {
		s.heroCache.Set(ctx, sections)
	}
	return sections, nil
}

func (s *HeroService) ListAll(ctx context.Context) ([]domain.HeroSection, error) {
	return s.repo.FindAll()
}

// Create admits the section against the slot rules before any insert: no
// third active side card, and secondary promo banners only in a free
// promo_2/promo_3 slot (auto-assigned when unspecified). The repository
// re-checks the same rules transactionally.
func (s *HeroService) Create(ctx context.Context, section *domain.HeroSection) error {
	if !section.Type.IsValid() {
		return ErrHeroTypeInvalide
	}
	if section.Actif {
		if err := s.admit(section, 0); err != nil {
			return err
		}
	}
	if err := s.repo.Save(section); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *HeroService) Update(ctx context.Context, section *domain.HeroSection) error {
	if !section.Type.IsValid() {
		return ErrHeroTypeInvalide
	}
	existing, err := s.repo.FindByID(section.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrHeroIntrouvable
	}
	if section.Actif {
		if err := s.admit(section, section.ID); err != nil {
			return err
		}
	}
	if err := s.repo.Update(section); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *HeroService) SetActive(ctx context.Context, id uint64, active bool) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrHeroIntrouvable
	}
	if active {
		if err := s.admit(existing, id); err != nil {
			return err
		}
	}
	if err := s.repo.SetActive(id, active); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *HeroService) Delete(ctx context.Context, id uint64) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrHeroIntrouvable
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *HeroService) admit(section *domain.HeroSection, excludeID uint64) error {
	switch section.Type {
	case domain.HeroSideCard:
		count, err := s.repo.CountActiveByType(domain.HeroSideCard)
		if err != nil {
			return err
		}
		if excludeID != 0 {
			// The row being updated is part of the count when already active.
			current, err := s.repo.FindByID(excludeID)
			if err != nil {
				return err
			}
			if current != nil && current.Actif && current.Type == domain.HeroSideCard {
				count--
			}
		}
		if count >= domain.MaxActiveSideCards {
			return domain.ErrSideCardLimit
		}
	case domain.HeroPromoBanner:
		if section.Position == domain.PositionPromo1 {
			return nil
		}
		if section.Position == "" {
			return s.assignPromoSlot(section, excludeID)
		}
		if !domain.IsSecondaryPromoSlot(section.Position) {
			return domain.ErrSlotOccupied
		}
		occupant, err := s.repo.FindActiveBySlot(section.Position)
		if err != nil {
			return err
		}
		if occupant != nil && occupant.ID != excludeID {
			return domain.ErrSlotOccupied
		}
	}
	return nil
}

func (s *HeroService) assignPromoSlot(section *domain.HeroSection, excludeID uint64) error {
	for _, slot := range domain.SecondaryPromoSlots {
		occupant, err := s.repo.FindActiveBySlot(slot)
		if err != nil {
			return err
		}
		if occupant == nil || occupant.ID == excludeID {
			section.Position = slot
			return nil
		}
	}
	return domain.ErrPromoSlotsFull
}

func (s *HeroService) invalidate(ctx context.Context) {
	if s.heroCache != nil {
		s.heroCache.Invalidate(ctx)
	}
}
