package domain

import "time"

type Categorie struct {
	ID          uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Nom         string    `json:"nom" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

type Produit struct {
	ID          uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	CategorieID uint64    `json:"categorieId" gorm:"index"`
	Nom         string    `json:"nom" gorm:"not null"`
	Description string    `json:"description"`
	// Prix is in FCFA, which has no minor unit.
	Prix       int64     `json:"prix" gorm:"not null"`
	PrixBarre  int64     `json:"prixBarre"`
	Stock      int64     `json:"stock" gorm:"not null;default:0"`
	Image      string    `json:"image"`
	Actif      bool      `json:"actif" gorm:"default:true"`
	Ventes     int64     `json:"ventes" gorm:"default:0"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

type Article struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Titre     string    `json:"titre" gorm:"not null"`
	Contenu   string    `json:"contenu" gorm:"type:text"`
	Image     string    `json:"image"`
	Publie    bool      `json:"publie" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
