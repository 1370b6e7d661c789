package store

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// mutation describes one optimistic write against the mirror. The four
// phases share a single contract for every entity's create, update, delete
// and status transition:
//
//	apply     — in-memory change, runs under the write lock
//	send      — the remote persistence call
//	reconcile — replace optimistic rows with the authoritative result
//	revert    — restore the pre-apply snapshot after a remote failure
type mutation[T any] struct {
	apply     func()
	send      func(ctx context.Context) (T, error)
	reconcile func(result T)
	revert    func()
}

// run executes the optimistic mutation protocol. The change is visible to
// readers as soon as apply returns; a remote failure rolls it back and is
// surfaced to the caller. There is no retry.
func run[T any](ctx context.Context, s *Store, name string, m mutation[T]) error {
	s.mu.Lock()
	if m.apply != nil {
		m.apply()
	}
	s.mu.Unlock()

	result, err := m.send(ctx)
	if err != nil {
		s.mu.Lock()
		if m.revert != nil {
			m.revert()
		}
		s.mu.Unlock()
		s.logger.Error("Mutation failed, in-memory state rolled back",
			slog.String("mutation", name),
			slog.String("error", err.Error()),
		)
		return err
	}

	s.mu.Lock()
	if m.reconcile != nil {
		m.reconcile(result)
	}
	s.mu.Unlock()
	return nil
}

// tempID mints a placeholder identifier for an optimistically inserted row.
// It is replaced by the database-assigned id on reconciliation.
func tempID() string {
	return "temp-" + uuid.NewString()
}
