// Package shared holds the collaborators every aggregate service depends on.
package shared

import (
	"context"

	"github.com/rescue-ops/backend/internal/domain/audit"
	"github.com/rescue-ops/backend/internal/domain/identity"
	"github.com/rescue-ops/backend/internal/domain/incident"
	"github.com/rescue-ops/backend/internal/domain/messaging"
	"github.com/rescue-ops/backend/internal/domain/teams"
)

// TransactionScope defines the interface for executing operations within a transaction.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides the repositories of the status-bearing
// aggregates and the audit trail, all bound to the same transaction.
type TransactionalRepositories interface {
	Users() identity.UserRepository
	Teams() teams.TeamRepository
	Incidents() incident.IncidentRepository
	Messages() messaging.MessageRepository
	Audit() audit.Repository
}
