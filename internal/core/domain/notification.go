package domain

// NotificationKind tells the delivery loop what to do with a queued item.
type NotificationKind int

const (
	NotificationTransaction NotificationKind = iota
	NotificationClose
)

// Notification is one item on a subscriber's outbound queue.
type Notification struct {
	Kind        NotificationKind
	Transaction Transaction
}

// TransactionNotification wraps a recorded transaction for delivery.
func TransactionNotification(t Transaction) Notification {
	return Notification{Kind: NotificationTransaction, Transaction: t}
}

// CloseNotification asks the delivery loop to close the observer's transport.
func CloseNotification() Notification {
	return Notification{Kind: NotificationClose}
}

// Subscription is a live registration of one observer for one child's transactions.
type Subscription struct {
	ID        string
	ChildName string
	RequestID string // Request that opened the subscription; empty outside HTTP
	Outbound  <-chan Notification
}
