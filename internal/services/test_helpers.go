package services

import (
	"time"

	"texpress/internal/domain"
)

func testPanier(clientID uint64) *domain.Panier {
	return &domain.Panier{
		ID:       1,
		ClientID: clientID,
		Lignes: []domain.PanierLigne{
			{ID: 1, PanierID: 1, ProduitID: 1, Quantite: 2, PrixUnitaire: 1000},
			{ID: 2, PanierID: 1, ProduitID: 2, Quantite: 1, PrixUnitaire: 500},
		},
	}
}

func testAdresse(id, clientID uint64) *domain.Adresse {
	return &domain.Adresse{
		ID:       id,
		ClientID: clientID,
		Ligne1:   "Cité Keur Gorgui, Lot 12",
		Ville:    "Dakar",
		Pays:     "Sénégal",
		Type:     domain.AdresseLivraison,
	}
}

func testCommande(id, clientID uint64, statut domain.CommandeStatus) *domain.Commande {
	return &domain.Commande{
		ID:                 id,
		Numero:             "CMD-TEST0001-240101",
		ClientID:           clientID,
		AdresseLivraisonID: 10,
		Montant:            2500,
		Statut:             statut,
		CreatedAt:          time.Now(),
	}
}

func testPaiement(commandeID uint64, mode domain.PaiementMode) *domain.Paiement {
	return &domain.Paiement{
		ID:         1,
		CommandeID: commandeID,
		Montant:    2500,
		Mode:       mode,
		Statut:     domain.PaiementEnAttente,
		StatutBrut: "en_attente",
		Telephone:  "221771234567",
	}
}

const (
	testClientID   = uint64(7)
	testAdresseID  = uint64(10)
	testCommandeID = uint64(1)
)
