package http

import (
	"net/http"
	"strconv"

	"texpress/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, h.home.Load(c.Request.Context()))
}

// ListHero is the public banner feed; it degrades to an empty list so the
// storefront header never breaks.
func (h *Handler) ListHero(c *gin.Context) {
	sections, err := h.hero.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, []domain.HeroSection{})
		return
	}
	c.JSON(http.StatusOK, sections)
}

func (h *Handler) ListProduits(c *gin.Context) {
	limit, offset := pagination(c)
	produits, err := h.catalog.ListProduits(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, produits)
}

func (h *Handler) GetProduit(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}
	produit, err := h.catalog.GetProduit(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, produit)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) ListProduitsByCategorie(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}
	produits, err := h.catalog.ListByCategorie(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, produits)
}

func (h *Handler) ListArticles(c *gin.Context) {
	articles, err := h.catalog.ListArticles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (h *Handler) GetArticle(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}
	article, err := h.catalog.GetArticle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "article introuvable"})
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *Handler) AdminListProduits(c *gin.Context) {
	limit, offset := pagination(c)
	produits, err := h.catalog.ListProduitsAdmin(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, produits)
}

func (h *Handler) AdminCreateProduit(c *gin.Context) {
	var produit domain.Produit
	if err := c.ShouldBindJSON(&produit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	produit.ID = 0
	if err := h.catalog.CreateProduit(c.Request.Context(), &produit); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, produit)
}

func (h *Handler) AdminUpdateProduit(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}
	var produit domain.Produit
	if err := c.ShouldBindJSON(&produit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	produit.ID = id
	if err := h.catalog.UpdateProduit(c.Request.Context(), &produit); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, produit)
}

func (h *Handler) AdminDeleteProduit(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}
	if err := h.catalog.DeleteProduit(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "produit supprimé"})
}

func (h *Handler) AdminCreateCategorie(c *gin.Context) {
	var categorie domain.Categorie
	if err := c.ShouldBindJSON(&categorie); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	categorie.ID = 0
	if err := h.catalog.CreateCategorie(c.Request.Context(), &categorie); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, categorie)
}

func (h *Handler) AdminUpdateCategorie(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}
	var categorie domain.Categorie
	if err := c.ShouldBindJSON(&categorie); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	categorie.ID = id
	if err := h.catalog.UpdateCategorie(c.Request.Context(), &categorie); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categorie)
}

func (h *Handler) AdminDeleteCategorie(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}
	if err := h.catalog.DeleteCategorie(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "catégorie supprimée"})
}

func (h *Handler) AdminSaveArticle(c *gin.Context) {
	var article domain.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := h.catalog.SaveArticle(c.Request.Context(), &article); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

func (h *Handler) AdminDeleteArticle(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}
	if err := h.catalog.DeleteArticle(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article supprimé"})
}

func (h *Handler) AdminListClients(c *gin.Context) {
	limit, offset := pagination(c)
	clients, err := h.accounts.ListClients(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *Handler) AdminListRetours(c *gin.Context) {
	limit, offset := pagination(c)
	retours, err := h.accounts.ListAllRetours(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, retours)
}

func (h *Handler) AdminUpdateRetourStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}
	var req StatutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := h.accounts.UpdateRetourStatus(c.Request.Context(), id, domain.RetourStatus(req.Statut)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "statut mis à jour"})
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.Query("limit"))
	offset, _ = strconv.Atoi(c.Query("offset"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
