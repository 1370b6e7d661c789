package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/limpanome/crm_backend/internal/core/domain"
)

// appendEvent records one entry in a contract's audit trail. The trail is
// best-effort: a failed insert is logged and skipped, it never rolls back
// the mutation that produced it.
func (s *Store) appendEvent(ctx context.Context, contractID string, typ domain.EventType, description string) {
	event := domain.ContractEvent{
		EventID:     tempID(),
		UserID:      s.userID,
		ContractID:  contractID,
		Type:        typ,
		Description: description,
		Date:        time.Now().UTC(),
	}

	inserted, err := s.repos.Events.InsertEvent(ctx, event)
	if err != nil {
		s.logger.Error("Failed to record contract event",
			slog.String("contract_id", contractID),
			slog.String("event_type", string(typ)),
			slog.String("error", err.Error()),
		)
		return
	}

	s.mu.Lock()
	s.events = append([]domain.ContractEvent{inserted}, s.events...)
	s.mu.Unlock()
}

// appendEvents records a batch of audit entries, one per contract, e.g. when
// a whole list completes. Best-effort like appendEvent.
func (s *Store) appendEvents(ctx context.Context, events []domain.ContractEvent) {
	if len(events) == 0 {
		return
	}
	inserted, err := s.repos.Events.InsertEvents(ctx, events)
	if err != nil {
		s.logger.Error("Failed to record contract event batch",
			slog.Int("count", len(events)),
			slog.String("error", err.Error()),
		)
		return
	}

	s.mu.Lock()
	s.events = append(inserted, s.events...)
	s.mu.Unlock()
}
