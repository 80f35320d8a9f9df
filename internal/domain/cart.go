package domain

import "time"

type Panier struct {
	ID        uint64         `json:"id" gorm:"primaryKey;autoIncrement"`
	ClientID  uint64         `json:"clientId" gorm:"uniqueIndex;not null"`
	Lignes    []PanierLigne  `json:"lignes" gorm:"foreignKey:PanierID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
}

type PanierLigne struct {
	ID        uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	PanierID  uint64 `json:"panierId" gorm:"index;not null"`
	ProduitID uint64 `json:"produitId" gorm:"not null"`
	Quantite  int64  `json:"quantite" gorm:"not null"`
	// PrixUnitaire is snapshotted when the line is added; a later catalog
	// price change does not reprice lines already in the cart.
	PrixUnitaire int64 `json:"prix_unitaire" gorm:"not null"`
}

// Total is the authoritative cart total: sum of quantite × prix_unitaire
// over all lines. Never trusted from the client.
func (p *Panier) Total() int64 {
	var total int64
	for _, l := range p.Lignes {
		total += l.Quantite * l.PrixUnitaire
	}
	return total
}

func (p *Panier) IsEmpty() bool {
	return len(p.Lignes) == 0
}
