package mysql

import (
	"errors"

	"texpress/internal/domain"
	"texpress/internal/repository"

	"gorm.io/gorm"
)

type heroRepo struct {
	db *gorm.DB
}

func NewHeroRepository(db *gorm.DB) repository.HeroRepository {
	return &heroRepo{db: db}
}

// Save re-runs slot admission inside the insert transaction. The service does
// the same checks up front for a friendly error, but only this one is
// authoritative against concurrent admin sessions.
func (r *heroRepo) Save(section *domain.HeroSection) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if section.Actif {
			if err := admitSection(tx, section, 0); err != nil {
				return err
			}
		}
		return tx.Create(section).Error
	})
}

func (r *heroRepo) Update(section *domain.HeroSection) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if section.Actif {
			if err := admitSection(tx, section, section.ID); err != nil {
				return err
			}
		}
		return tx.Save(section).Error
	})
}

func (r *heroRepo) SetActive(id uint64, active bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var s domain.HeroSection
		if err := tx.First(&s, id).Error; err != nil {
			return err
		}
		if active {
			if err := admitSection(tx, &s, s.ID); err != nil {
				return err
			}
		}
		// admitSection may have assigned a free promo slot; persist it along
		// with the flag or the section activates with position "".
		return tx.Model(&s).Updates(map[string]any{
			"actif":    active,
			"position": s.Position,
		}).Error
	})
}

// admitSection enforces the active-slot invariants: at most two active side
// cards, and secondary promo banners confined to the promo_2/promo_3 slots
// with auto-assignment of the free one. excludeID skips the row being updated.
func admitSection(tx *gorm.DB, section *domain.HeroSection, excludeID uint64) error {
	switch section.Type {
	case domain.HeroSideCard:
		var count int64
		q := tx.Model(&domain.HeroSection{}).
			Where("type = ? AND actif = ?", domain.HeroSideCard, true)
		if excludeID != 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return err
		}
		if count >= domain.MaxActiveSideCards {
			return domain.ErrSideCardLimit
		}
	case domain.HeroPromoBanner:
		if section.Position == domain.PositionPromo1 {
			return nil
		}
		if section.Position == "" {
			free, err := freePromoSlot(tx, excludeID)
			if err != nil {
				return err
			}
			if free == "" {
				return domain.ErrPromoSlotsFull
			}
			section.Position = free
			return nil
		}
		if !domain.IsSecondaryPromoSlot(section.Position) {
			return domain.ErrSlotOccupied
		}
		occupied, err := slotTaken(tx, section.Position, excludeID)
		if err != nil {
			return err
		}
		if occupied {
			return domain.ErrSlotOccupied
		}
	}
	return nil
}

func freePromoSlot(tx *gorm.DB, excludeID uint64) (domain.HeroPosition, error) {
	for _, slot := range domain.SecondaryPromoSlots {
		taken, err := slotTaken(tx, slot, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return slot, nil
		}
	}
	return "", nil
}

func slotTaken(tx *gorm.DB, slot domain.HeroPosition, excludeID uint64) (bool, error) {
	var count int64
	q := tx.Model(&domain.HeroSection{}).
		Where("type = ? AND position = ? AND actif = ?", domain.HeroPromoBanner, slot, true)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *heroRepo) FindByID(id uint64) (*domain.HeroSection, error) {
	var s domain.HeroSection
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *heroRepo) FindAll() ([]domain.HeroSection, error) {
	var out []domain.HeroSection
	if err := r.db.Order("ordre ASC, id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *heroRepo) FindActive() ([]domain.HeroSection, error) {
	var out []domain.HeroSection
	err := r.db.Where("actif = ?", true).Order("ordre ASC, id ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *heroRepo) CountActiveByType(t domain.HeroType) (int64, error) {
	var count int64
	err := r.db.Model(&domain.HeroSection{}).
		Where("type = ? AND actif = ?", t, true).Count(&count).Error
	return count, err
}

func (r *heroRepo) FindActiveBySlot(p domain.HeroPosition) (*domain.HeroSection, error) {
	var s domain.HeroSection
	err := r.db.Where("position = ? AND actif = ?", p, true).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *heroRepo) Delete(id uint64) error {
	return r.db.Delete(&domain.HeroSection{}, id).Error
}
