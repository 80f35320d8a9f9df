package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"texpress/internal/domain"
	"texpress/internal/infra"
	rabbit "texpress/internal/infra/rabbitmq"
	"texpress/internal/repository"
)

var (
	ErrPaiementIntrouvable  = errors.New("paiement introuvable")
	ErrProviderIndisponible = errors.New("fournisseur de paiement indisponible")
	ErrModeNonMobile        = errors.New("ce mode de paiement ne passe pas par un fournisseur mobile")
)

type PaymentService struct {
	commandes repository.CommandeRepository
	paiements repository.PaiementRepository
	paniers   repository.PanierRepository
	providers map[domain.PaiementMode]infra.PaymentProviderInterface
	publisher rabbit.PublisherInterface
	// confirmURL is the storefront page providers redirect back to.
	confirmURL string
}

func NewPaymentService(
	commandes repository.CommandeRepository,
	paiements repository.PaiementRepository,
	paniers repository.PanierRepository,
	providers map[domain.PaiementMode]infra.PaymentProviderInterface,
	publisher rabbit.PublisherInterface,
	confirmURL string,
) *PaymentService {
	return &PaymentService{
		commandes:  commandes,
		paiements:  paiements,
		paniers:    paniers,
		providers:  providers,
		publisher:  publisher,
		confirmURL: confirmURL,
	}
}

// InitiatePayment validates and normalizes the phone, then asks the provider
// for a continuation (launch URL, web URL or USSD code). A USSD answer leaves
// the payment pending; confirmation only ever comes from VerifyStatus.
func (s *PaymentService) InitiatePayment(ctx context.Context, clientID, commandeID uint64, telephone string, mode domain.PaiementMode) (*infra.InitiationResponse, error) {
	if !mode.IsMobileMoney() {
		return nil, ErrModeNonMobile
	}

	normalized, err := domain.NormalizePhone(telephone)
	if err != nil {
		return nil, err
	}

	commande, err := s.commandes.FindByID(commandeID)
	if err != nil {
		return nil, err
	}
	if commande == nil || commande.ClientID != clientID {
		return nil, ErrCommandeNotFound
	}

	paiement, err := s.paiements.FindByCommandeID(commandeID)
	if err != nil {
		return nil, err
	}
	if paiement == nil {
		return nil, ErrPaiementIntrouvable
	}

	provider, ok := s.providers[mode]
	if !ok {
		return nil, ErrProviderIndisponible
	}

	resp, err := provider.InitiatePayment(ctx, infra.InitiationRequest{
		CommandeID: commandeID,
		Montant:    commande.Montant,
		Telephone:  normalized,
		ReturnURL:  fmt.Sprintf("%s?commande_id=%d", s.confirmURL, commandeID),
		CancelURL:  fmt.Sprintf("%s?commande_id=%d&annule=1", s.confirmURL, commandeID),
	})
	if err != nil {
		return nil, err
	}

	paiement.Mode = mode
	paiement.Telephone = normalized
	paiement.ProviderRef = resp.Reference
	if err := s.paiements.Update(paiement); err != nil {
		return nil, err
	}

	return resp, nil
}

// VerificationResult is what the payment confirmation page renders from.
type VerificationResult struct {
	Outcome  domain.PaiementOutcome `json:"outcome"`
	Statut   domain.PaiementStatus  `json:"statut"`
	Commande *domain.Commande       `json:"commande,omitempty"`
}

// VerifyStatus performs the single status check of the confirmation flow and
// classifies it. On the first successful classification it validates the
// order, clears the cart and emits paiement.completed; re-checks after that
// are read-only.
func (s *PaymentService) VerifyStatus(ctx context.Context, commandeID uint64) (*VerificationResult, error) {
	commande, err := s.commandes.FindByID(commandeID)
	if err != nil {
		return nil, err
	}
	if commande == nil {
		return nil, ErrCommandeNotFound
	}

	paiement, err := s.paiements.FindByCommandeID(commandeID)
	if err != nil {
		return nil, err
	}
	if paiement == nil {
		return nil, ErrPaiementIntrouvable
	}

	raw := paiement.StatutBrut
	if provider, ok := s.providers[paiement.Mode]; ok && paiement.ProviderRef != "" {
		raw, err = provider.CheckStatus(ctx, paiement.ProviderRef)
		if err != nil {
			return nil, err
		}
	}

	outcome := domain.ClassifyPaiementStatus(raw)
	statut := domain.NormalizePaiementStatus(raw)

	if raw != paiement.StatutBrut || statut != paiement.Statut {
		paiement.StatutBrut = raw
		paiement.Statut = statut
		if err := s.paiements.Update(paiement); err != nil {
			log.Printf("paiement status update failed: %v", err)
		}
	}

	if outcome == domain.OutcomeSuccess && commande.Statut == domain.CommandeEnAttente {
		if err := s.commandes.UpdateStatus(commande.ID, domain.CommandeValidee); err != nil {
			return nil, err
		}
		commande.Statut = domain.CommandeValidee
		if err := s.paniers.Clear(commande.ClientID); err != nil {
			log.Printf("panier clear after paiement failed: %v", err)
		}
		go s.publishPaiementCompleted(context.Background(), commande, paiement)
	}

	return &VerificationResult{
		Outcome:  outcome,
		Statut:   statut,
		Commande: commande,
	}, nil
}

func (s *PaymentService) publishPaiementCompleted(ctx context.Context, c *domain.Commande, p *domain.Paiement) {
	evt := domain.PaiementCompletedEvent{
		CommandeID: c.ID,
		PaiementID: p.ID,
		Montant:    p.Montant,
		Mode:       p.Mode,
		CreatedAt:  time.Now(),
	}
	if err := s.publisher.Publish(ctx, "paiement.completed", evt); err != nil {
		log.Printf("failed to publish paiement.completed: %v", err)
	}
}
