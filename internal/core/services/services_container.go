package services

import (
	portsrepo "github.com/SscSPs/pocket_money_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_money_app/internal/core/ports/services"
	"github.com/SscSPs/pocket_money_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// events may be nil when no external publisher is configured.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, events portssvc.EventPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(repos.TransactionRepo)
	container.Notification = NewNotificationService(cfg.NotificationQueueSize)

	var options []CoordinatorOption
	if events != nil {
		options = append(options, WithEventPublisher(events))
	}
	container.Coordinator = NewCoordinatorService(container.Ledger, container.Notification, options...)

	return container
}
