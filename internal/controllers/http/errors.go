package http

import (
	"errors"
	"net/http"

	"texpress/internal/domain"
	"texpress/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service sentinels onto HTTP codes; everything carries a
// "message" field the storefront shows as-is in its toast.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrCommandeNotFound),
		errors.Is(err, services.ErrPaiementIntrouvable),
		errors.Is(err, services.ErrAdresseIntrouvable),
		errors.Is(err, services.ErrProduitIntrouvable),
		errors.Is(err, services.ErrRetourIntrouvable),
		errors.Is(err, services.ErrHeroIntrouvable):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrPanierVide),
		errors.Is(err, services.ErrModePaiementInvalide),
		errors.Is(err, services.ErrFraisInvalides),
		errors.Is(err, services.ErrQuantiteInvalide),
		errors.Is(err, services.ErrStockInsuffisant),
		errors.Is(err, services.ErrModeNonMobile),
		errors.Is(err, services.ErrTransitionInvalide),
		errors.Is(err, services.ErrRetourNonEligible),
		errors.Is(err, services.ErrHeroTypeInvalide),
		errors.Is(err, domain.ErrSideCardLimit),
		errors.Is(err, domain.ErrPromoSlotsFull),
		errors.Is(err, domain.ErrSlotOccupied):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidPhone):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrEmailDejaPris):
		status = http.StatusConflict
	case errors.Is(err, services.ErrIdentifiantsInvalides):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrProviderIndisponible):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"message": err.Error()})
}
