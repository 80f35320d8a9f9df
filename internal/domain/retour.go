package domain

import "time"

type RetourStatus string

const (
	RetourDemande RetourStatus = "demande"
	RetourAccepte RetourStatus = "accepte"
	RetourRefuse  RetourStatus = "refuse"
	RetourClos    RetourStatus = "clos"
)

type Retour struct {
	ID         uint64       `json:"id" gorm:"primaryKey;autoIncrement"`
	CommandeID uint64       `json:"commandeId" gorm:"not null;index"`
	ClientID   uint64       `json:"clientId" gorm:"not null;index"`
	ProduitID  uint64       `json:"produitId" gorm:"not null"`
	Quantite   int64        `json:"quantite" gorm:"not null"`
	Motif      string       `json:"motif" gorm:"not null"`
	Statut     RetourStatus `json:"statut" gorm:"type:enum('demande','accepte','refuse','clos');default:'demande'"`
	CreatedAt  time.Time    `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time    `json:"updatedAt" gorm:"autoUpdateTime"`
}

type Favori struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	ClientID  uint64    `json:"clientId" gorm:"not null;uniqueIndex:idx_favori_client_produit"`
	ProduitID uint64    `json:"produitId" gorm:"not null;uniqueIndex:idx_favori_client_produit"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
