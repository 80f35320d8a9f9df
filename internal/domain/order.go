package domain

import "time"

type CommandeStatus string

const (
	CommandeEnAttente     CommandeStatus = "en_attente"
	CommandeValidee       CommandeStatus = "validee"
	CommandeEnPreparation CommandeStatus = "en_preparation"
	CommandeExpediee      CommandeStatus = "expediee"
	CommandeLivree        CommandeStatus = "livree"
	CommandeAnnulee       CommandeStatus = "annulee"
)

// commandeTransitions lists the admin-reachable status moves. Payment
// confirmation only ever moves en_attente -> validee.
var commandeTransitions = map[CommandeStatus][]CommandeStatus{
	CommandeEnAttente:     {CommandeValidee, CommandeAnnulee},
	CommandeValidee:       {CommandeEnPreparation, CommandeAnnulee},
	CommandeEnPreparation: {CommandeExpediee, CommandeAnnulee},
	CommandeExpediee:      {CommandeLivree},
	CommandeLivree:        {},
	CommandeAnnulee:       {},
}

func (s CommandeStatus) CanTransitionTo(next CommandeStatus) bool {
	for _, allowed := range commandeTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Commande struct {
	ID                   uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Numero               string          `json:"numero" gorm:"uniqueIndex;not null"`
	ClientID             uint64          `json:"clientId" gorm:"not null;index"`
	Lignes               []CommandeLigne `json:"lignes" gorm:"foreignKey:CommandeID;constraint:OnDelete:CASCADE"`
	AdresseLivraisonID   uint64          `json:"adresseLivraisonId" gorm:"not null"`
	AdresseFacturationID uint64          `json:"adresseFacturationId"`
	FraisLivraison       int64           `json:"fraisLivraison" gorm:"default:0"`
	Montant              int64           `json:"montant" gorm:"not null"`
	Statut               CommandeStatus  `json:"statut" gorm:"type:enum('en_attente','validee','en_preparation','expediee','livree','annulee');default:'en_attente'"`
	Notes                string          `json:"notes"`
	// IdempotencyKey deduplicates resubmissions; the unique index makes a
	// duplicate insert fail instead of creating a second order. Orders placed
	// without a key store NULL so the index never collides on them.
	IdempotencyKey *string   `json:"-" gorm:"uniqueIndex;size:64"`
	Paiement       *Paiement `json:"paiement,omitempty" gorm:"foreignKey:CommandeID"`
	CreatedAt      time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

type CommandeLigne struct {
	ID           uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	CommandeID   uint64 `json:"commandeId" gorm:"index;not null"`
	ProduitID    uint64 `json:"produitId" gorm:"not null"`
	Quantite     int64  `json:"quantite" gorm:"not null"`
	PrixUnitaire int64  `json:"prix_unitaire" gorm:"not null"`
}
