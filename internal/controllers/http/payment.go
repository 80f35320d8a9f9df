package http

import (
	"net/http"
	"strconv"

	"texpress/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) InitiatePayment(c *gin.Context) {
	var req InitiationHTTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	resp, err := h.payments.InitiatePayment(c.Request.Context(), clientID(c),
		req.CommandeID, req.Telephone, domain.PaiementMode(req.Mode))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerifyPaymentStatus is the single check the confirmation page fires on
// mount. The outcome field always drives the page state, including the error
// cases, so the response code is 200 whenever a classification was reached.
func (h *Handler) VerifyPaymentStatus(c *gin.Context) {
	raw := c.Query("commande_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"outcome": domain.OutcomeError,
			"message": "commande_id manquant",
		})
		return
	}
	commandeID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"outcome": domain.OutcomeError,
			"message": "commande_id invalide",
		})
		return
	}

	result, err := h.payments.VerifyStatus(c.Request.Context(), commandeID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"outcome": domain.OutcomeError,
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, result)
}
