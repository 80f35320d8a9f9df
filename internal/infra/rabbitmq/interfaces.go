package rabbitmq

import "context"

// PublisherInterface is what the services publish commerce events through
// (commande.created, paiement.completed, retour.requested).
type PublisherInterface interface {
	Publish(ctx context.Context, routingKey string, data any) error
}

var _ PublisherInterface = (*Publisher)(nil)
