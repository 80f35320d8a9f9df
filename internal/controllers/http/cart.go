package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetPanier(c *gin.Context) {
	view, err := h.cart.GetPanier(c.Request.Context(), clientID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) AddPanierLigne(c *gin.Context) {
	var req PanierLigneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	view, err := h.cart.AddProduit(c.Request.Context(), clientID(c), req.ProduitID, req.Quantite)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) UpdatePanierLigne(c *gin.Context) {
	produitID, err := parseID(c, "produitId")
	if err != nil {
		return
	}
	var req QuantiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	view, err := h.cart.UpdateQuantite(c.Request.Context(), clientID(c), produitID, req.Quantite)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) RemovePanierLigne(c *gin.Context) {
	produitID, err := parseID(c, "produitId")
	if err != nil {
		return
	}
	view, err := h.cart.RemoveProduit(c.Request.Context(), clientID(c), produitID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) ClearPanier(c *gin.Context) {
	if err := h.cart.Clear(c.Request.Context(), clientID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "panier vidé"})
}
