package services

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"texpress/internal/domain"
	rabbit "texpress/internal/infra/rabbitmq"
	"texpress/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrPanierVide           = errors.New("panier vide")
	ErrAdresseIntrouvable   = errors.New("adresse introuvable")
	ErrModePaiementInvalide = errors.New("mode de paiement invalide")
	ErrFraisInvalides       = errors.New("frais de livraison invalides")
	ErrCommandeNotFound     = errors.New("commande introuvable")
	ErrTransitionInvalide   = errors.New("transition de statut invalide")
)

type CheckoutService struct {
	commandes repository.CommandeRepository
	paniers   repository.PanierRepository
	adresses  repository.AdresseRepository
	publisher rabbit.PublisherInterface
}

func NewCheckoutService(
	commandes repository.CommandeRepository,
	paniers repository.PanierRepository,
	adresses repository.AdresseRepository,
	publisher rabbit.PublisherInterface,
) *CheckoutService {
	return &CheckoutService{
		commandes: commandes,
		paniers:   paniers,
		adresses:  adresses,
		publisher: publisher,
	}
}

type CheckoutRequest struct {
	AdresseID       uint64
	NouvelleAdresse *domain.Adresse
	Mode            domain.PaiementMode
	Telephone       string
	Notes           string
	FraisLivraison  int64
	IdempotencyKey  string
}

type CheckoutResult struct {
	Commande *domain.Commande
	// NextURL is where the storefront sends the client next: the order
	// history for cash, the payment page for everything else.
	NextURL string
}

// CreateCommande turns the client's persisted cart into an order. A repeated
// idempotency key returns the order created by the first submission instead
// of creating a duplicate.
func (s *CheckoutService) CreateCommande(ctx context.Context, clientID uint64, req CheckoutRequest) (*CheckoutResult, error) {
	if !req.Mode.IsValid() {
		return nil, ErrModePaiementInvalide
	}
	if req.FraisLivraison < 0 {
		return nil, ErrFraisInvalides
	}

	if req.IdempotencyKey != "" {
		existing, err := s.commandes.FindByIdempotencyKey(req.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ClientID == clientID {
			return &CheckoutResult{
				Commande: existing,
				NextURL:  s.nextURL(existing, req.Mode, req.Telephone),
			}, nil
		}
	}

	panier, err := s.paniers.FindByClientID(clientID)
	if err != nil {
		return nil, err
	}
	if panier == nil || panier.IsEmpty() {
		return nil, ErrPanierVide
	}

	adresseID, err := s.resolveAdresse(clientID, req)
	if err != nil {
		return nil, err
	}

	lignes := make([]domain.CommandeLigne, 0, len(panier.Lignes))
	for _, l := range panier.Lignes {
		lignes = append(lignes, domain.CommandeLigne{
			ProduitID:    l.ProduitID,
			Quantite:     l.Quantite,
			PrixUnitaire: l.PrixUnitaire,
		})
	}

	montant := panier.Total() + req.FraisLivraison
	commande := &domain.Commande{
		Numero:             generateNumero(),
		ClientID:           clientID,
		Lignes:             lignes,
		AdresseLivraisonID: adresseID,
		FraisLivraison:     req.FraisLivraison,
		Montant:            montant,
		Statut:             domain.CommandeEnAttente,
		Notes:              req.Notes,
		// The payment row rides the same insert as the order, so a failed
		// write leaves neither behind.
		Paiement: &domain.Paiement{
			Montant:    montant,
			Mode:       req.Mode,
			Statut:     domain.PaiementEnAttente,
			StatutBrut: string(domain.PaiementEnAttente),
			Telephone:  req.Telephone,
		},
	}
	if req.IdempotencyKey != "" {
		key := req.IdempotencyKey
		commande.IdempotencyKey = &key
	}
	if err := s.commandes.Save(commande); err != nil {
		// A unique-key collision means a concurrent resubmission won the
		// race; hand back its order.
		if req.IdempotencyKey != "" {
			if existing, ferr := s.commandes.FindByIdempotencyKey(req.IdempotencyKey); ferr == nil && existing != nil {
				return &CheckoutResult{
					Commande: existing,
					NextURL:  s.nextURL(existing, req.Mode, req.Telephone),
				}, nil
			}
		}
		return nil, err
	}

	// Cash settles offline, so the cart's job is done at order creation.
	// Mobile-money carts are cleared on payment confirmation instead.
	if req.Mode == domain.ModeEspeces {
		if err := s.paniers.Clear(clientID); err != nil {
			log.Printf("panier clear after checkout failed: %v", err)
		}
	}

	go s.publishCommandeCreated(context.Background(), commande, req.Mode)

	return &CheckoutResult{
		Commande: commande,
		NextURL:  s.nextURL(commande, req.Mode, req.Telephone),
	}, nil
}

func (s *CheckoutService) resolveAdresse(clientID uint64, req CheckoutRequest) (uint64, error) {
	if req.NouvelleAdresse != nil {
		adr := *req.NouvelleAdresse
		adr.ID = 0
		adr.ClientID = clientID
		if adr.Type == "" {
			adr.Type = domain.AdresseLivraison
		}
		if err := s.adresses.Save(&adr); err != nil {
			return 0, err
		}
		return adr.ID, nil
	}

	adr, err := s.adresses.FindByID(req.AdresseID)
	if err != nil {
		return 0, err
	}
	if adr == nil || adr.ClientID != clientID {
		return 0, ErrAdresseIntrouvable
	}
	return adr.ID, nil
}

func (s *CheckoutService) nextURL(c *domain.Commande, mode domain.PaiementMode, telephone string) string {
	if mode == domain.ModeEspeces {
		return "/my-account/orders"
	}
	q := url.Values{}
	q.Set("commande_id", strconv.FormatUint(c.ID, 10))
	q.Set("mode", string(mode))
	q.Set("montant", strconv.FormatInt(c.Montant, 10))
	q.Set("telephone", telephone)
	return "/payment?" + q.Encode()
}

func (s *CheckoutService) publishCommandeCreated(ctx context.Context, c *domain.Commande, mode domain.PaiementMode) {
	evt := domain.CommandeCreatedEvent{
		CommandeID: c.ID,
		Numero:     c.Numero,
		ClientID:   c.ClientID,
		Montant:    c.Montant,
		Mode:       mode,
		CreatedAt:  c.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, "commande.created", evt); err != nil {
		log.Printf("failed to publish commande.created: %v", err)
	}
}

func generateNumero() string {
	return "CMD-" + strings.ToUpper(uuid.NewString()[:8]) + "-" +
		time.Now().Format("060102")
}

// GetCommande returns the order only when it belongs to the given client.
func (s *CheckoutService) GetCommande(ctx context.Context, clientID, commandeID uint64) (*domain.Commande, error) {
	c, err := s.commandes.FindByID(commandeID)
	if err != nil {
		return nil, err
	}
	if c == nil || c.ClientID != clientID {
		return nil, ErrCommandeNotFound
	}
	return c, nil
}

func (s *CheckoutService) ListClientCommandes(ctx context.Context, clientID uint64) ([]domain.Commande, error) {
	return s.commandes.FindByClientID(clientID)
}

func (s *CheckoutService) ListAllCommandes(ctx context.Context, limit, offset int) ([]domain.Commande, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.commandes.FindAll(limit, offset)
}

// UpdateCommandeStatus applies an admin status move, rejecting transitions
// outside the lifecycle graph.
func (s *CheckoutService) UpdateCommandeStatus(ctx context.Context, commandeID uint64, next domain.CommandeStatus) error {
	c, err := s.commandes.FindByID(commandeID)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCommandeNotFound
	}
	if !c.Statut.CanTransitionTo(next) {
		return ErrTransitionInvalide
	}
	return s.commandes.UpdateStatus(commandeID, next)
}
