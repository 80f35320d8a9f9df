package domain

import "time"

type CommandeCreatedEvent struct {
	CommandeID uint64       `json:"commandeId"`
	Numero     string       `json:"numero"`
	ClientID   uint64       `json:"clientId"`
	Montant    int64        `json:"montant"`
	Mode       PaiementMode `json:"mode"`
	CreatedAt  time.Time    `json:"createdAt"`
}

type PaiementCompletedEvent struct {
	CommandeID uint64       `json:"commandeId"`
	PaiementID uint64       `json:"paiementId"`
	Montant    int64        `json:"montant"`
	Mode       PaiementMode `json:"mode"`
	CreatedAt  time.Time    `json:"createdAt"`
}

type RetourRequestedEvent struct {
	RetourID   uint64    `json:"retourId"`
	CommandeID uint64    `json:"commandeId"`
	ClientID   uint64    `json:"clientId"`
	CreatedAt  time.Time `json:"createdAt"`
}
