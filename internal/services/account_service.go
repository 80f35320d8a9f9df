package services

import (
	"context"
	"errors"
	"log"
	"time"

	"texpress/internal/auth"
	"texpress/internal/domain"
	rabbit "texpress/internal/infra/rabbitmq"
	"texpress/internal/repository"
)

var (
	ErrEmailDejaPris         = errors.New("email déjà utilisé")
	ErrIdentifiantsInvalides = errors.New("email ou mot de passe incorrect")
	ErrRetourNonEligible     = errors.New("seule une commande livrée peut faire l'objet d'un retour")
	ErrRetourIntrouvable     = errors.New("retour introuvable")
)

type AccountService struct {
	clients   repository.ClientRepository
	adresses  repository.AdresseRepository
	favoris   repository.FavoriRepository
	retours   repository.RetourRepository
	commandes repository.CommandeRepository
	tokens    *auth.TokenStore
	publisher rabbit.PublisherInterface
}

func NewAccountService(
	clients repository.ClientRepository,
	adresses repository.AdresseRepository,
	favoris repository.FavoriRepository,
	retours repository.RetourRepository,
	commandes repository.CommandeRepository,
	tokens *auth.TokenStore,
	publisher rabbit.PublisherInterface,
) *AccountService {
	return &AccountService{
		clients:   clients,
		adresses:  adresses,
		favoris:   favoris,
		retours:   retours,
		commandes: commandes,
		tokens:    tokens,
		publisher: publisher,
	}
}

type Session struct {
	Token  string         `json:"token"`
	Client *domain.Client `json:"client"`
}

func (s *AccountService) SignUp(ctx context.Context, nom, prenom, email, telephone, password string) (*Session, error) {
	existing, err := s.clients.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailDejaPris
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	client := &domain.Client{
		Nom:          nom,
		Prenom:       prenom,
		Email:        email,
		Telephone:    telephone,
		PasswordHash: hash,
		Actif:        true,
	}
	if err := s.clients.Save(client); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, Client: client}, nil
}

func (s *AccountService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	client, err := s.clients.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if client == nil || !client.Actif || !auth.CheckPassword(client.PasswordHash, password) {
		return nil, ErrIdentifiantsInvalides
	}

	token, err := s.tokens.Issue(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, Client: client}, nil
}

func (s *AccountService) SignOut(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

func (s *AccountService) GetClient(ctx context.Context, clientID uint64) (*domain.Client, error) {
	return s.clients.FindByID(clientID)
}

func (s *AccountService) ListAdresses(ctx context.Context, clientID uint64) ([]domain.Adresse, error) {
	return s.adresses.FindByClientID(clientID)
}

func (s *AccountService) CreateAdresse(ctx context.Context, clientID uint64, adresse *domain.Adresse) error {
	adresse.ID = 0
	adresse.ClientID = clientID
	if adresse.Type == "" {
		adresse.Type = domain.AdresseLivraison
	}
	return s.adresses.Save(adresse)
}

// ReplaceAdresse is the edit path: addresses are never mutated in place, the
// old row is dropped and a fresh one created.
func (s *AccountService) ReplaceAdresse(ctx context.Context, clientID, oldID uint64, adresse *domain.Adresse) error {
	old, err := s.adresses.FindByID(oldID)
	if err != nil {
		return err
	}
	if old == nil || old.ClientID != clientID {
		return ErrAdresseIntrouvable
	}
	if err := s.adresses.Delete(oldID); err != nil {
		return err
	}
	return s.CreateAdresse(ctx, clientID, adresse)
}

func (s *AccountService) DeleteAdresse(ctx context.Context, clientID, adresseID uint64) error {
	adr, err := s.adresses.FindByID(adresseID)
	if err != nil {
		return err
	}
	if adr == nil || adr.ClientID != clientID {
		return ErrAdresseIntrouvable
	}
	return s.adresses.Delete(adresseID)
}

func (s *AccountService) AddFavori(ctx context.Context, clientID, produitID uint64) error {
	return s.favoris.Add(&domain.Favori{ClientID: clientID, ProduitID: produitID})
}

func (s *AccountService) RemoveFavori(ctx context.Context, clientID, produitID uint64) error {
	return s.favoris.Remove(clientID, produitID)
}

func (s *AccountService) ListFavoris(ctx context.Context, clientID uint64) ([]domain.Favori, error) {
	return s.favoris.FindByClientID(clientID)
}

// RequestRetour opens a return request on a delivered order of the client.
func (s *AccountService) RequestRetour(ctx context.Context, clientID uint64, retour *domain.Retour) error {
	commande, err := s.commandes.FindByID(retour.CommandeID)
	if err != nil {
		return err
	}
	if commande == nil || commande.ClientID != clientID {
		return ErrCommandeNotFound
	}
	if commande.Statut != domain.CommandeLivree {
		return ErrRetourNonEligible
	}

	retour.ID = 0
	retour.ClientID = clientID
	retour.Statut = domain.RetourDemande
	if err := s.retours.Save(retour); err != nil {
		return err
	}

	go func() {
		evt := domain.RetourRequestedEvent{
			RetourID:   retour.ID,
			CommandeID: retour.CommandeID,
			ClientID:   clientID,
			CreatedAt:  time.Now(),
		}
		if err := s.publisher.Publish(context.Background(), "retour.requested", evt); err != nil {
			log.Printf("failed to publish retour.requested: %v", err)
		}
	}()
	return nil
}

func (s *AccountService) ListRetours(ctx context.Context, clientID uint64) ([]domain.Retour, error) {
	return s.retours.FindByClientID(clientID)
}

func (s *AccountService) ListAllRetours(ctx context.Context, limit, offset int) ([]domain.Retour, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.retours.FindAll(limit, offset)
}

func (s *AccountService) UpdateRetourStatus(ctx context.Context, retourID uint64, status domain.RetourStatus) error {
	retour, err := s.retours.FindByID(retourID)
	if err != nil {
		return err
	}
	if retour == nil {
		return ErrRetourIntrouvable
	}
	return s.retours.UpdateStatus(retourID, status)
}

func (s *AccountService) ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.clients.FindAll(limit, offset)
}
