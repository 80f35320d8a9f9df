package http

import (
	"net/http"
	"time"

	"texpress/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AdminListHero(c *gin.Context) {
	sections, err := h.hero.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

func (h *Handler) AdminCreateHero(c *gin.Context) {
	var req HeroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	section, err := req.toDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := h.hero.Create(c.Request.Context(), section); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, section)
}

func (h *Handler) AdminUpdateHero(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}
	var req HeroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	section, err := req.toDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	section.ID = id
	if err := h.hero.Update(c.Request.Context(), section); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, section)
}

func (h *Handler) AdminToggleHero(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}
	var req ActifRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := h.hero.SetActive(c.Request.Context(), id, *req.Actif); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "section mise à jour"})
}

func (h *Handler) AdminDeleteHero(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}
	if err := h.hero.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "section supprimée"})
}

func (r HeroRequest) toDomain() (*domain.HeroSection, error) {
	section := &domain.HeroSection{
		Type:        domain.HeroType(r.Type),
		Position:    domain.HeroPosition(r.Position),
		Titre:       r.Titre,
		SousTitre:   r.SousTitre,
		Description: r.Description,
		Pourcentage: r.Pourcentage,
		Prix:        r.Prix,
		PrixBarre:   r.PrixBarre,
		BoutonTexte: r.BoutonTexte,
		BoutonLien:  r.BoutonLien,
		CouleurFond: r.CouleurFond,
		Image1:      r.Image1,
		Image2:      r.Image2,
		Image3:      r.Image3,
		Ordre:       r.Ordre,
		Actif:       true,
	}
	if r.Actif != nil {
		section.Actif = *r.Actif
	}
	if r.FinCompte != "" {
		t, err := time.Parse(time.RFC3339, r.FinCompte)
		if err != nil {
			return nil, err
		}
		section.FinCompte = &t
	}
	return section, nil
}
