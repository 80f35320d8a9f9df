package http

import (
	"texpress/internal/domain"
)

type SignUpRequest struct {
	Nom       string `json:"nom" binding:"required"`
	Prenom    string `json:"prenom"`
	Email     string `json:"email" binding:"required,email"`
	Telephone string `json:"telephone"`
	Password  string `json:"password" binding:"required,min=6"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AdresseRequest struct {
	Ligne1    string `json:"ligne1" binding:"required"`
	Ligne2    string `json:"ligne2"`
	Ville     string `json:"ville" binding:"required"`
	Pays      string `json:"pays"`
	Telephone string `json:"telephone"`
	Type      string `json:"type"`
	ParDefaut bool   `json:"par_defaut"`
}

func (r AdresseRequest) toDomain() *domain.Adresse {
	return &domain.Adresse{
		Ligne1:    r.Ligne1,
		Ligne2:    r.Ligne2,
		Ville:     r.Ville,
		Pays:      r.Pays,
		Telephone: r.Telephone,
		Type:      domain.AdresseType(r.Type),
		ParDefaut: r.ParDefaut,
	}
}

type CheckoutHTTPRequest struct {
	AdresseID       uint64          `json:"adresse_id"`
	NouvelleAdresse *AdresseRequest `json:"nouvelle_adresse"`
	Mode            string          `json:"mode" binding:"required"`
	Telephone       string          `json:"telephone"`
	Notes           string          `json:"notes"`
	FraisLivraison  int64           `json:"frais_livraison"`
	IdempotencyKey  string          `json:"idempotency_key"`
}

type PanierLigneRequest struct {
	ProduitID uint64 `json:"produit_id" binding:"required"`
	Quantite  int64  `json:"quantite" binding:"required,min=1"`
}

type QuantiteRequest struct {
	Quantite int64 `json:"quantite" binding:"required"`
}

type InitiationHTTPRequest struct {
	CommandeID uint64 `json:"commande_id" binding:"required"`
	Telephone  string `json:"telephone" binding:"required"`
	Mode       string `json:"mode" binding:"required"`
}

type RetourRequest struct {
	CommandeID uint64 `json:"commande_id" binding:"required"`
	ProduitID  uint64 `json:"produit_id" binding:"required"`
	Quantite   int64  `json:"quantite" binding:"required,min=1"`
	Motif      string `json:"motif" binding:"required"`
}

type StatutRequest struct {
	Statut string `json:"statut" binding:"required"`
}

type ActifRequest struct {
	Actif *bool `json:"actif" binding:"required"`
}

type HeroRequest struct {
	Type        string `json:"type" binding:"required"`
	Position    string `json:"position"`
	Titre       string `json:"titre"`
	SousTitre   string `json:"sous_titre"`
	Description string `json:"description"`
	Pourcentage int    `json:"pourcentage"`
	Prix        int64  `json:"prix"`
	PrixBarre   int64  `json:"prix_barre"`
	BoutonTexte string `json:"bouton_texte"`
	BoutonLien  string `json:"bouton_lien"`
	CouleurFond string `json:"couleur_fond"`
	FinCompte   string `json:"fin_compte"`
	Image1      string `json:"image1"`
	Image2      string `json:"image2"`
	Image3      string `json:"image3"`
	Actif       *bool  `json:"actif"`
	Ordre       int    `json:"ordre"`
}
