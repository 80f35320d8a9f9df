package domain

import (
	"strings"
	"time"
)

type PaiementMode string

const (
	ModeWave        PaiementMode = "wave"
	ModeOrangeMoney PaiementMode = "orange_money"
	ModeEspeces     PaiementMode = "especes"
	ModeCarte       PaiementMode = "carte"
)

func (m PaiementMode) IsValid() bool {
	switch m {
	case ModeWave, ModeOrangeMoney, ModeEspeces, ModeCarte:
		return true
	}
	return false
}

// IsMobileMoney reports whether the mode goes through a provider
// initiate/redirect flow instead of offline settlement.
func (m PaiementMode) IsMobileMoney() bool {
	return m == ModeWave || m == ModeOrangeMoney
}

type PaiementStatus string

const (
	PaiementEnAttente PaiementStatus = "en_attente"
	PaiementComplete  PaiementStatus = "complete"
	PaiementEchoue    PaiementStatus = "echoue"
	PaiementRembourse PaiementStatus = "rembourse"
)

type Paiement struct {
	ID         uint64       `json:"id" gorm:"primaryKey;autoIncrement"`
	CommandeID uint64       `json:"commandeId" gorm:"uniqueIndex;not null"`
	Montant    int64        `json:"montant" gorm:"not null"`
	Mode       PaiementMode `json:"mode" gorm:"type:enum('wave','orange_money','especes','carte');not null"`
	// StatutBrut holds the status string exactly as the provider or a legacy
	// backend row spelled it. Classification always goes through
	// ClassifyPaiementStatus; nothing else compares raw spellings.
	StatutBrut  string         `json:"statutBrut" gorm:"column:statut_brut;default:'en_attente'"`
	Statut      PaiementStatus `json:"statut" gorm:"type:enum('en_attente','complete','echoue','rembourse');default:'en_attente'"`
	Telephone   string         `json:"telephone"`
	ProviderRef string         `json:"providerRef"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
}

// PaiementOutcome is the classification a status check resolves to. It is
// what the payment confirmation page renders from.
type PaiementOutcome string

const (
	OutcomeSuccess PaiementOutcome = "success"
	OutcomePending PaiementOutcome = "pending"
	OutcomeFailed  PaiementOutcome = "failed"
	OutcomeError   PaiementOutcome = "error"
)

// Legacy and current backends spell the same semantic status several ways;
// the lookup tables fold them all here, at the boundary.
var (
	successSpellings = map[string]struct{}{
		"Complété":  {},
		"validé":    {},
		"complete":  {},
		"completed": {},
	}
	pendingSpellings = map[string]struct{}{
		"en_attente": {},
		"En cours":   {},
		"En attente": {},
		"pending":    {},
	}
)

// ClassifyPaiementStatus maps a raw provider/backend status string to an
// outcome. Unknown non-empty spellings are failures, not errors: the check
// itself succeeded, the payment did not.
func ClassifyPaiementStatus(raw string) PaiementOutcome {
	raw = strings.TrimSpace(raw)
	if _, ok := successSpellings[raw]; ok {
		return OutcomeSuccess
	}
	if _, ok := pendingSpellings[raw]; ok {
		return OutcomePending
	}
	return OutcomeFailed
}

// NormalizePaiementStatus folds a raw spelling into the closed enum.
func NormalizePaiementStatus(raw string) PaiementStatus {
	switch ClassifyPaiementStatus(raw) {
	case OutcomeSuccess:
		return PaiementComplete
	case OutcomePending:
		return PaiementEnAttente
	default:
		if strings.EqualFold(strings.TrimSpace(raw), "remboursé") || strings.EqualFold(strings.TrimSpace(raw), "rembourse") {
			return PaiementRembourse
		}
		return PaiementEchoue
	}
}
