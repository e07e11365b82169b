package services

import (
	"context"

	"github.com/SscSPs/pocket_money_app/internal/core/domain"
)

// NotificationTransport is the physical connection to one observer.
// Send and Close are only ever called from a single goroutine, and so is Receive.
type NotificationTransport interface {
	// Send writes one transaction to the observer.
	Send(tx domain.Transaction) error

	// Receive blocks until the next inbound frame. Application messages return nil;
	// a closed or broken transport returns an error.
	Receive() error

	// Close tells the observer the stream is over and releases the transport.
	Close() error
}

// NotificationPublisherSvc fans transactions out to live subscribers.
type NotificationPublisherSvc interface {
	// Publish queues tx to every subscription for childName. Delivery failures are
	// logged and never returned.
	Publish(ctx context.Context, childName string, tx domain.Transaction)
}

// NotificationRegistrySvc manages subscriptions.
type NotificationRegistrySvc interface {
	Subscribe(ctx context.Context, childName string) (*domain.Subscription, error)
	Unsubscribe(ctx context.Context, subscriptionID string)
	SubscriberCount(childName string) int

	// CloseAll queues a close signal to every live subscription.
	CloseAll(ctx context.Context)
}

// NotificationStreamSvc runs the delivery loop for one observer.
type NotificationStreamSvc interface {
	// Stream registers a subscription for childName and pumps its queue into the
	// transport until either side closes. It deregisters before returning.
	Stream(ctx context.Context, childName string, transport NotificationTransport) error
}

// NotificationSvcFacade combines all notification service interfaces.
type NotificationSvcFacade interface {
	NotificationPublisherSvc
	NotificationRegistrySvc
	NotificationStreamSvc
}

// EventPublisher forwards recorded transactions to an external system.
type EventPublisher interface {
	PublishTransaction(ctx context.Context, tx domain.Transaction) error
	Close() error
}
