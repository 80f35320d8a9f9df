package domain

import (
	"errors"
	"time"
)

var (
	ErrSideCardLimit  = errors.New("maximum de 2 cartes latérales actives atteint")
	ErrPromoSlotsFull = errors.New("les emplacements promo_2 et promo_3 sont occupés")
	ErrSlotOccupied   = errors.New("emplacement déjà occupé")
)

type HeroType string

const (
	HeroCarousel    HeroType = "carousel"
	HeroSideCard    HeroType = "side_card"
	HeroPromoBanner HeroType = "promo_banner"
	HeroCountdown   HeroType = "countdown"
)

func (t HeroType) IsValid() bool {
	switch t {
	case HeroCarousel, HeroSideCard, HeroPromoBanner, HeroCountdown:
		return true
	}
	return false
}

type HeroPosition string

const (
	PositionSide1  HeroPosition = "side_1"
	PositionSide2  HeroPosition = "side_2"
	PositionPromo1 HeroPosition = "promo_1"
	PositionPromo2 HeroPosition = "promo_2"
	PositionPromo3 HeroPosition = "promo_3"
)

// MaxActiveSideCards is the hard cap on simultaneously active side cards.
const MaxActiveSideCards = 2

// SecondaryPromoSlots are the two slots a promo_banner without an explicit
// position competes for. promo_1 is the large primary banner and is assigned
// explicitly.
var SecondaryPromoSlots = []HeroPosition{PositionPromo2, PositionPromo3}

func IsSecondaryPromoSlot(p HeroPosition) bool {
	return p == PositionPromo2 || p == PositionPromo3
}

type HeroSection struct {
	ID          uint64       `json:"id" gorm:"primaryKey;autoIncrement"`
	Type        HeroType     `json:"type" gorm:"type:enum('carousel','side_card','promo_banner','countdown');not null"`
	Position    HeroPosition `json:"position" gorm:"index"`
	Titre       string       `json:"titre"`
	SousTitre   string       `json:"sousTitre"`
	Description string       `json:"description"`
	Pourcentage int          `json:"pourcentage"`
	Prix        int64        `json:"prix"`
	PrixBarre   int64        `json:"prixBarre"`
	BoutonTexte string       `json:"boutonTexte"`
	BoutonLien  string       `json:"boutonLien"`
	CouleurFond string       `json:"couleurFond"`
	FinCompte   *time.Time   `json:"finCompte,omitempty"`
	Image1      string       `json:"image1"`
	Image2      string       `json:"image2"`
	Image3      string       `json:"image3"`
	Actif       bool         `json:"actif" gorm:"default:true;index"`
	Ordre       int          `json:"ordre" gorm:"default:0"`
	CreatedAt   time.Time    `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time    `json:"updatedAt" gorm:"autoUpdateTime"`
}
