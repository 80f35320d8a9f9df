package http

import (
	"net/http"

	"texpress/internal/domain"
	"texpress/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateCommande(c *gin.Context) {
	var req CheckoutHTTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	key := req.IdempotencyKey
	if header := c.GetHeader("X-Idempotency-Key"); header != "" {
		key = header
	}

	checkoutReq := services.CheckoutRequest{
		AdresseID:      req.AdresseID,
		Mode:           domain.PaiementMode(req.Mode),
		Telephone:      req.Telephone,
		Notes:          req.Notes,
		FraisLivraison: req.FraisLivraison,
		IdempotencyKey: key,
	}
	if req.NouvelleAdresse != nil {
		checkoutReq.NouvelleAdresse = req.NouvelleAdresse.toDomain()
	}

	result, err := h.checkout.CreateCommande(c.Request.Context(), clientID(c), checkoutReq)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"commande": result.Commande,
		"next_url": result.NextURL,
	})
}

func (h *Handler) ListMyCommandes(c *gin.Context) {
	commandes, err := h.checkout.ListClientCommandes(c.Request.Context(), clientID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, commandes)
}

func (h *Handler) GetCommande(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}
	commande, err := h.checkout.GetCommande(c.Request.Context(), clientID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, commande)
}

func (h *Handler) AdminListCommandes(c *gin.Context) {
	limit, offset := pagination(c)
	commandes, err := h.checkout.ListAllCommandes(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, commandes)
}

func (h *Handler) AdminUpdateCommandeStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}
	var req StatutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := h.checkout.UpdateCommandeStatus(c.Request.Context(), id, domain.CommandeStatus(req.Statut)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "statut mis à jour"})
}
