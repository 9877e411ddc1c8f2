// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/pluang/hrbuddy/internal/domain"
)

// Repository defines the interface for persisting leave records.
// Records are append-only: nothing in the service updates or deletes them.
type Repository interface {
	// AppendLeave persists a new leave record and fills in its ID.
	AppendLeave(ctx context.Context, record *domain.LeaveRecord) error

	// ListLeaves retrieves leave records for a session in append order.
	// If leaveType is non-empty, only records of that type are returned.
	ListLeaves(ctx context.Context, sessionID string, leaveType domain.LeaveType) ([]*domain.LeaveRecord, error)

	// Ping verifies database connectivity and returns an error if the database is unreachable.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
