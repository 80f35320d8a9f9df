package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPaiementStatus(t *testing.T) {
	tests := []struct {
		raw      string
		expected PaiementOutcome
	}{
		{"Complété", OutcomeSuccess},
		{"validé", OutcomeSuccess},
		{"complete", OutcomeSuccess},
		{"en_attente", OutcomePending},
		{"En cours", OutcomePending},
		{"En attente", OutcomePending},
		{"échoué", OutcomeFailed},
		{"annulé", OutcomeFailed},
		{"n'importe quoi", OutcomeFailed},
		{"FAILED", OutcomeFailed},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyPaiementStatus(tt.raw))
		})
	}
}

func TestNormalizePaiementStatus(t *testing.T) {
	assert.Equal(t, PaiementComplete, NormalizePaiementStatus("Complété"))
	assert.Equal(t, PaiementComplete, NormalizePaiementStatus("validé"))
	assert.Equal(t, PaiementEnAttente, NormalizePaiementStatus("En cours"))
	assert.Equal(t, PaiementEnAttente, NormalizePaiementStatus("en_attente"))
	assert.Equal(t, PaiementRembourse, NormalizePaiementStatus("remboursé"))
	assert.Equal(t, PaiementEchoue, NormalizePaiementStatus("échoué"))
	assert.Equal(t, PaiementEchoue, NormalizePaiementStatus("timeout"))
}

func TestPaiementModeHelpers(t *testing.T) {
	assert.True(t, ModeWave.IsMobileMoney())
	assert.True(t, ModeOrangeMoney.IsMobileMoney())
	assert.False(t, ModeEspeces.IsMobileMoney())
	assert.False(t, ModeCarte.IsMobileMoney())

	assert.True(t, ModeEspeces.IsValid())
	assert.False(t, PaiementMode("cheque").IsValid())
}
