package http

import (
	"errors"
	"net/http"
	"strconv"

	"texpress/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	session, err := h.accounts.SignUp(c.Request.Context(), req.Nom, req.Prenom, req.Email, req.Telephone, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	session, err := h.accounts.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) SignOut(c *gin.Context) {
	if err := h.accounts.SignOut(c.Request.Context(), c.GetString(ctxToken)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "déconnecté"})
}

func (h *Handler) Me(c *gin.Context) {
	client, err := h.accounts.GetClient(c.Request.Context(), clientID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if client == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "client introuvable"})
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) ListAdresses(c *gin.Context) {
	adresses, err := h.accounts.ListAdresses(c.Request.Context(), clientID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adresses)
}

func (h *Handler) CreateAdresse(c *gin.Context) {
	var req AdresseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	adresse := req.toDomain()
	if err := h.accounts.CreateAdresse(c.Request.Context(), clientID(c), adresse); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, adresse)
}

func (h *Handler) ReplaceAdresse(c *gin.Context) {
	oldID, err := parseID(c, "id")
	if err != nil {
		return
	}
	var req AdresseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	adresse := req.toDomain()
	if err := h.accounts.ReplaceAdresse(c.Request.Context(), clientID(c), oldID, adresse); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adresse)
}

func (h *Handler) DeleteAdresse(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}
	if err := h.accounts.DeleteAdresse(c.Request.Context(), clientID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "adresse supprimée"})
}

func (h *Handler) ListFavoris(c *gin.Context) {
	favoris, err := h.accounts.ListFavoris(c.Request.Context(), clientID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favoris)
}

func (h *Handler) AddFavori(c *gin.Context) {
	produitID, err := parseID(c, "produitId")
	if err != nil {
		return
	}
	if err := h.accounts.AddFavori(c.Request.Context(), clientID(c), produitID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "ajouté aux favoris"})
}

func (h *Handler) RemoveFavori(c *gin.Context) {
	produitID, err := parseID(c, "produitId")
	if err != nil {
		return
	}
	if err := h.accounts.RemoveFavori(c.Request.Context(), clientID(c), produitID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "retiré des favoris"})
}

func (h *Handler) ListRetours(c *gin.Context) {
	retours, err := h.accounts.ListRetours(c.Request.Context(), clientID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, retours)
}

func (h *Handler) CreateRetour(c *gin.Context) {
	var req RetourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	retour := &domain.Retour{
		CommandeID: req.CommandeID,
		ProduitID:  req.ProduitID,
		Quantite:   req.Quantite,
		Motif:      req.Motif,
	}
	if err := h.accounts.RequestRetour(c.Request.Context(), clientID(c), retour); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, retour)
}

func parseID(c *gin.Context, param string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "identifiant invalide"})
		return 0, errInvalidID
	}
	return id, nil
}

var errInvalidID = errors.New("identifiant invalide")
