package services

import (
	"context"
	"testing"

	"texpress/internal/domain"
	"texpress/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func activePromo(id uint64, slot domain.HeroPosition) *domain.HeroSection {
	return &domain.HeroSection{ID: id, Type: domain.HeroPromoBanner, Position: slot, Actif: true}
}

func TestHeroService_Create_ThirdSideCardRejected(t *testing.T) {
	repo := new(mocks.MockHeroRepository)
	svc := NewHeroService(repo, nil)

	repo.On("CountActiveByType", domain.HeroSideCard).Return(int64(2), nil)

	err := svc.Create(context.Background(), &domain.HeroSection{
		Type:  domain.HeroSideCard,
		Titre: "Troisième carte",
		Actif: true,
	})

	assert.ErrorIs(t, err, domain.ErrSideCardLimit)
	// Rejected before any insert is attempted.
	repo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestHeroService_Create_SecondSideCardAllowed(t *testing.T) {
	repo := new(mocks.MockHeroRepository)
	svc := NewHeroService(repo, nil)

	repo.On("CountActiveByType", domain.HeroSideCard).Return(int64(1), nil)
	repo.On("Save", mock.AnythingOfType("*domain.HeroSection")).Return(nil)

	err := svc.Create(context.Background(), &domain.HeroSection{
		Type:  domain.HeroSideCard,
		Actif: true,
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestHeroService_Create_PromoSlotAutoAssign(t *testing.T) {
	repo := new(mocks.MockHeroRepository)
	svc := NewHeroService(repo, nil)

	// promo_2 occupied, promo_3 free: the new banner lands in promo_3.
	repo.On("FindActiveBySlot", domain.PositionPromo2).Return(activePromo(5, domain.PositionPromo2), nil)
	repo.On("FindActiveBySlot", domain.PositionPromo3).Return(nil, nil)
	repo.On("Save", mock.AnythingOfType("*domain.HeroSection")).Return(nil)

	section := &domain.HeroSection{Type: domain.HeroPromoBanner, Actif: true}
	err := svc.Create(context.Background(), section)

	assert.NoError(t, err)
	assert.Equal(t, domain.PositionPromo3, section.Position)
	repo.AssertExpectations(t)
}

func TestHeroService_Create_PromoSlotsFull(t *testing.T) {
	repo := new(mocks.MockHeroRepository)
	svc := NewHeroService(repo, nil)

	repo.On("FindActiveBySlot", domain.PositionPromo2).Return(activePromo(5, domain.PositionPromo2), nil)
	repo.On("FindActiveBySlot", domain.PositionPromo3).Return(activePromo(6, domain.PositionPromo3), nil)

	err := svc.Create(context.Background(), &domain.HeroSection{Type: domain.HeroPromoBanner, Actif: true})

	assert.ErrorIs(t, err, domain.ErrPromoSlotsFull)
	repo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestHeroService_Create_ExplicitSlotOccupied(t *testing.T) {
	repo := new(mocks.MockHeroRepository)
	svc := NewHeroService(repo, nil)

	repo.On("FindActiveBySlot", domain.PositionPromo2).Return(activePromo(5, domain.PositionPromo2), nil)

	err := svc.Create(context.Background(), &domain.HeroSection{
		Type:     domain.HeroPromoBanner,
		Position: domain.PositionPromo2,
		Actif:    true,
	})

	assert.ErrorIs(t, err, domain.ErrSlotOccupied)
	repo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestHeroService_Create_PrimaryPromoSkipsSlotCheck(t *testing.T) {
	repo := new(mocks.MockHeroRepository)
	svc := NewHeroService(repo, nil)

	repo.On("Save", mock.AnythingOfType("*domain.HeroSection")).Return(nil)

	err := svc.Create(context.Background(), &domain.HeroSection{
		Type:     domain.HeroPromoBanner,
		Position: domain.PositionPromo1,
		Actif:    true,
	})

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "FindActiveBySlot", mock.Anything)
}

func TestHeroService_Create_InactiveSkipsAdmission(t *testing.T) {
	repo := new(mocks.MockHeroRepository)
	svc := NewHeroService(repo, nil)

	repo.On("Save", mock.AnythingOfType("*domain.HeroSection")).Return(nil)

	err := svc.Create(context.Background(), &domain.HeroSection{
		Type:  domain.HeroSideCard,
		Actif: false,
	})

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "CountActiveByType", mock.Anything)
}

func TestHeroService_Create_InvalidType(t *testing.T) {
	repo := new(mocks.MockHeroRepository)
	svc := NewHeroService(repo, nil)

	err := svc.Create(context.Background(), &domain.HeroSection{Type: "popup", Actif: true})

	assert.ErrorIs(t, err, ErrHeroTypeInvalide)
}

func TestHeroService_Update_KeepingOwnSlot(t *testing.T) {
	repo := new(mocks.MockHeroRepository)
	svc := NewHeroService(repo, nil)

	current := activePromo(5, domain.PositionPromo2)
	repo.On("FindByID", uint64(5)).Return(current, nil)
	// The slot's only occupant is the section being updated.
	repo.On("FindActiveBySlot", domain.PositionPromo2).Return(current, nil)
	repo.On("Update", mock.AnythingOfType("*domain.HeroSection")).Return(nil)

	updated := activePromo(5, domain.PositionPromo2)
	updated.Titre = "Promo mise à jour"
	err := svc.Update(context.Background(), updated)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestHeroService_SetActive_ThirdSideCardRejected(t *testing.T) {
	repo := new(mocks.MockHeroRepository)
	svc := NewHeroService(repo, nil)

	dormant := &domain.HeroSection{ID: 3, Type: domain.HeroSideCard, Actif: false}
	repo.On("FindByID", uint64(3)).Return(dormant, nil)
	repo.On("CountActiveByType", domain.HeroSideCard).Return(int64(2), nil)

	err := svc.SetActive(context.Background(), 3, true)

	assert.ErrorIs(t, err, domain.ErrSideCardLimit)
	repo.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything)
}

func TestHeroService_SetActive_PromoTakesFreeSlot(t *testing.T) {
	repo := new(mocks.MockHeroRepository)
	svc := NewHeroService(repo, nil)

	dormant := &domain.HeroSection{ID: 8, Type: domain.HeroPromoBanner, Actif: false}
	repo.On("FindByID", uint64(8)).Return(dormant, nil)
	repo.On("FindActiveBySlot", domain.PositionPromo2).Return(activePromo(5, domain.PositionPromo2), nil)
	repo.On("FindActiveBySlot", domain.PositionPromo3).Return(nil, nil)
	repo.On("SetActive", uint64(8), true).Return(nil)

	err := svc.SetActive(context.Background(), 8, true)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestHeroService_SetActive_DeactivationSkipsAdmission(t *testing.T) {
	repo := new(mocks.MockHeroRepository)
	svc := NewHeroService(repo, nil)

	repo.On("FindByID", uint64(5)).Return(activePromo(5, domain.PositionPromo2), nil)
	repo.On("SetActive", uint64(5), false).Return(nil)

	err := svc.SetActive(context.Background(), 5, false)

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "FindActiveBySlot", mock.Anything)
}

func TestHeroService_SetActive_Unknown(t *testing.T) {
	repo := new(mocks.MockHeroRepository)
	svc := NewHeroService(repo, nil)

	repo.On("FindByID", uint64(99)).Return(nil, nil)

	err := svc.SetActive(context.Background(), 99, true)

	assert.ErrorIs(t, err, ErrHeroIntrouvable)
	repo.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything)
}
