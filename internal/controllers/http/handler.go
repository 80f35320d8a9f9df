package http

import (
	"texpress/internal/auth"
	"texpress/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	accounts *services.AccountService
	checkout *services.CheckoutService
	payments *services.PaymentService
	cart     *services.CartService
	catalog  *services.CatalogService
	hero     *services.HeroService
	home     *services.HomeService
	tokens   *auth.TokenStore
}

func NewHandler(
	accounts *services.AccountService,
	checkout *services.CheckoutService,
	payments *services.PaymentService,
	cart *services.CartService,
	catalog *services.CatalogService,
	hero *services.HeroService,
	home *services.HomeService,
	tokens *auth.TokenStore,
) *Handler {
	return &Handler{
		accounts: accounts,
		checkout: checkout,
		payments: payments,
		cart:     cart,
		catalog:  catalog,
		hero:     hero,
		home:     home,
		tokens:   tokens,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.POST("/auth/inscription", h.SignUp)
	api.POST("/auth/connexion", h.SignIn)

	api.GET("/accueil", h.Home)
	api.GET("/hero", h.ListHero)
	api.GET("/catalogue/produits", h.ListProduits)
	api.GET("/catalogue/produits/:id", h.GetProduit)
	api.GET("/catalogue/categories", h.ListCategories)
	api.GET("/catalogue/categories/:id/produits", h.ListProduitsByCategorie)
	api.GET("/articles", h.ListArticles)
	api.GET("/articles/:id", h.GetArticle)

	authed := api.Group("")
	authed.Use(h.AuthRequired())
	{
		authed.POST("/auth/deconnexion", h.SignOut)
		authed.GET("/moi", h.Me)

		authed.GET("/panier", h.GetPanier)
		authed.POST("/panier/lignes", h.AddPanierLigne)
		authed.PUT("/panier/lignes/:produitId", h.UpdatePanierLigne)
		authed.DELETE("/panier/lignes/:produitId", h.RemovePanierLigne)
		authed.DELETE("/panier", h.ClearPanier)

		authed.POST("/commandes", h.CreateCommande)
		authed.GET("/commandes", h.ListMyCommandes)
		authed.GET("/commandes/:id", h.GetCommande)

		authed.POST("/paiements/initier", h.InitiatePayment)
		authed.GET("/paiements/statut", h.VerifyPaymentStatus)

		authed.GET("/adresses", h.ListAdresses)
		authed.POST("/adresses", h.CreateAdresse)
		authed.PUT("/adresses/:id", h.ReplaceAdresse)
		authed.DELETE("/adresses/:id", h.DeleteAdresse)

		authed.GET("/favoris", h.ListFavoris)
		authed.POST("/favoris/:produitId", h.AddFavori)
		authed.DELETE("/favoris/:produitId", h.RemoveFavori)

		authed.GET("/retours", h.ListRetours)
		authed.POST("/retours", h.CreateRetour)
	}

	admin := api.Group("/admin")
	admin.Use(h.AuthRequired(), h.AdminRequired())
	{
		admin.GET("/produits", h.AdminListProduits)
		admin.POST("/produits", h.AdminCreateProduit)
		admin.PUT("/produits/:id", h.AdminUpdateProduit)
		admin.DELETE("/produits/:id", h.AdminDeleteProduit)

		admin.POST("/categories", h.AdminCreateCategorie)
		admin.PUT("/categories/:id", h.AdminUpdateCategorie)
		admin.DELETE("/categories/:id", h.AdminDeleteCategorie)

		admin.POST("/articles", h.AdminSaveArticle)
		admin.DELETE("/articles/:id", h.AdminDeleteArticle)

		admin.GET("/hero", h.AdminListHero)
		admin.POST("/hero", h.AdminCreateHero)
		admin.PUT("/hero/:id", h.AdminUpdateHero)
		admin.PATCH("/hero/:id/actif", h.AdminToggleHero)
		admin.DELETE("/hero/:id", h.AdminDeleteHero)

		admin.GET("/commandes", h.AdminListCommandes)
		admin.PATCH("/commandes/:id/statut", h.AdminUpdateCommandeStatus)

		admin.GET("/retours", h.AdminListRetours)
		admin.PATCH("/retours/:id/statut", h.AdminUpdateRetourStatus)

		admin.GET("/clients", h.AdminListClients)
	}
}
