package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/SscSPs/pocket_money_app/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_money_app/internal/core/ports/services"
	"github.com/SscSPs/pocket_money_app/internal/middleware"
	"github.com/google/uuid"
)

// DefaultNotificationQueueSize is the per-subscription queue capacity.
const DefaultNotificationQueueSize = 32

var (
	errQueueFull          = errors.New("subscriber queue full")
	errSubscriptionClosed = errors.New("subscription closed")
)

// subscription owns one observer's bounded queue. The mutex orders deliveries against
// close so a send never lands on a closed channel.
type subscription struct {
	id        string
	childName string
	requestID string

	mu     sync.Mutex
	closed bool
	queue  chan domain.Notification
}

func (s *subscription) deliver(n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errSubscriptionClosed
	}
	select {
	case s.queue <- n:
		return nil
	default:
		return errQueueFull
	}
}

func (s *subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.queue)
	}
}

// notificationService is the registry of live subscriptions plus the fan-out broadcaster.
type notificationService struct {
	BaseService
	mu            sync.RWMutex
	subscriptions map[string]*subscription
	queueSize     int
}

// NewNotificationService creates an empty registry whose subscriptions buffer up to
// queueSize notifications each.
func NewNotificationService(queueSize int) portssvc.NotificationSvcFacade {
	if queueSize <= 0 {
		queueSize = DefaultNotificationQueueSize
	}
	return &notificationService{
		subscriptions: make(map[string]*subscription),
		queueSize:     queueSize,
	}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) Subscribe(ctx context.Context, childName string) (*domain.Subscription, error) {
	sub := &subscription{
		id:        uuid.NewString(),
		childName: childName,
		queue:     make(chan domain.Notification, s.queueSize),
	}
	// The owning connection, when the subscription comes from an HTTP request.
	sub.requestID, _ = middleware.GetRequestIDFromCtx(ctx)

	s.mu.Lock()
	s.subscriptions[sub.id] = sub
	total := len(s.subscriptions)
	s.mu.Unlock()

	s.LogInfo(ctx, "Subscription registered",
		slog.String("subscription_id", sub.id),
		slog.String("child_name", childName),
		slog.Int("registered", total))

	return &domain.Subscription{
		ID:        sub.id,
		ChildName: childName,
		RequestID: sub.requestID,
		Outbound:  sub.queue,
	}, nil
}

func (s *notificationService) Unsubscribe(ctx context.Context, subscriptionID string) {
	s.mu.Lock()
	sub, ok := s.subscriptions[subscriptionID]
	delete(s.subscriptions, subscriptionID)
	total := len(s.subscriptions)
	s.mu.Unlock()

	if !ok {
		return
	}
	sub.close()

	s.LogInfo(ctx, "Subscription removed",
		slog.String("subscription_id", subscriptionID),
		slog.Int("registered", total))
}

func (s *notificationService) SubscriberCount(childName string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, sub := range s.subscriptions {
		if sub.childName == childName {
			count++
		}
	}
	return count
}

func (s *notificationService) Publish(ctx context.Context, childName string, tx domain.Transaction) {
	for _, sub := range s.matching(childName) {
		if err := sub.deliver(domain.TransactionNotification(tx)); err != nil {
			s.LogWarn(ctx, err, "Failed to queue notification",
				slog.String("subscription_id", sub.id),
				slog.Uint64("transaction_id", tx.ID))
			continue
		}
		s.LogDebug(ctx, "Notification queued",
			slog.String("subscription_id", sub.id),
			slog.Uint64("transaction_id", tx.ID))
	}
}

func (s *notificationService) CloseAll(ctx context.Context) {
	s.mu.RLock()
	subs := make([]*subscription, 0, len(s.subscriptions))
	for _, sub := range s.subscriptions {
		subs = append(subs, sub)
	}
	s.mu.RUnlock()

	for _, sub := range subs {
		err := sub.deliver(domain.CloseNotification())
		if errors.Is(err, errQueueFull) {
			// Closing the queue still ends the delivery loop once it drains.
			s.LogWarn(ctx, err, "Close signal did not fit, closing queue", slog.String("subscription_id", sub.id))
			sub.close()
			continue
		}
		if err != nil {
			s.LogWarn(ctx, err, "Failed to queue close signal", slog.String("subscription_id", sub.id))
		}
	}
}

// matching snapshots the subscriptions for childName so dispatch runs without the lock.
func (s *notificationService) matching(childName string) []*subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var subs []*subscription
	for _, sub := range s.subscriptions {
		if sub.childName == childName {
			subs = append(subs, sub)
		}
	}
	return subs
}

func (s *notificationService) Stream(ctx context.Context, childName string, transport portssvc.NotificationTransport) error {
	sub, err := s.Subscribe(ctx, childName)
	if err != nil {
		return err
	}

	logger := s.GetLogger(ctx).With(
		slog.String("subscription_id", sub.ID),
		slog.String("child_name", childName),
	)

	closeSignal := make(chan struct{})
	var signalOnce sync.Once
	signalClose := func() { signalOnce.Do(func() { close(closeSignal) }) }

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		s.outgoing(ctx, logger, sub, transport, closeSignal)
		s.Unsubscribe(ctx, sub.ID)
	}()

	go func() {
		defer wg.Done()
		incoming(logger, transport)
		signalClose()
	}()

	wg.Wait()
	s.Unsubscribe(ctx, sub.ID)
	logger.Info("Notification stream finished")
	return nil
}

// outgoing drains the subscription queue into the transport until the queue is
// closed, a close item arrives, or the incoming side signals.
func (s *notificationService) outgoing(ctx context.Context, logger *slog.Logger, sub *domain.Subscription, transport portssvc.NotificationTransport, closeSignal <-chan struct{}) {
	logger.Info("Starting outgoing notification loop")
	defer logger.Info("Outgoing notification loop exiting")

	closeTransport := func(reason string) {
		logger.Info("Closing notification transport", slog.String("reason", reason))
		if err := transport.Close(); err != nil {
			logger.Warn("Failed to close notification transport", slog.String("error", err.Error()))
		}
	}

	for {
		select {
		case n, ok := <-sub.Outbound:
			if !ok {
				closeTransport("queue closed")
				return
			}
			if n.Kind == domain.NotificationClose {
				closeTransport("close requested")
				return
			}
			if err := transport.Send(n.Transaction); err != nil {
				logger.Warn("Failed to send notification",
					slog.Uint64("transaction_id", n.Transaction.ID),
					slog.String("error", err.Error()))
			}
		case <-closeSignal:
			closeTransport("observer disconnected")
			return
		case <-ctx.Done():
			closeTransport("context done")
			return
		}
	}
}

// incoming reads frames until the transport reports close or error. Application
// messages are ignored.
func incoming(logger *slog.Logger, transport portssvc.NotificationTransport) {
	for {
		if err := transport.Receive(); err != nil {
			logger.Info("Notification transport ended", slog.String("reason", err.Error()))
			return
		}
		logger.Debug("Ignoring inbound notification frame")
	}
}
