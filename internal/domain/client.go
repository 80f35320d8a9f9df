package domain

import "time"

type Client struct {
	ID           uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Nom          string    `json:"nom" gorm:"not null"`
	Prenom       string    `json:"prenom"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Telephone    string    `json:"telephone"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Actif        bool      `json:"actif" gorm:"default:true"`
	Admin        bool      `json:"admin" gorm:"default:false"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

type AdresseType string

const (
	AdresseFacturation AdresseType = "facturation"
	AdresseLivraison   AdresseType = "livraison"
	AdressePrincipale  AdresseType = "principale"
)

type Adresse struct {
	ID        uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	ClientID  uint64      `json:"clientId" gorm:"not null;index"`
	Ligne1    string      `json:"ligne1" gorm:"not null"`
	Ligne2    string      `json:"ligne2"`
	Ville     string      `json:"ville" gorm:"not null"`
	Pays      string      `json:"pays" gorm:"default:'Sénégal'"`
	Telephone string      `json:"telephone"`
	Type      AdresseType `json:"type" gorm:"type:enum('facturation','livraison','principale');default:'livraison'"`
	ParDefaut bool        `json:"parDefaut" gorm:"default:false"`
	CreatedAt time.Time   `json:"createdAt" gorm:"autoCreateTime"`
}
