package store

import (
	"context"
	"fmt"
	"time"

	"github.com/limpanome/crm_backend/internal/apperrors"
	"github.com/limpanome/crm_backend/internal/core/domain"
)

// NewClient carries the fields needed to register a client.
type NewClient struct {
	Name     string
	Document string
	Phone    string
	Email    string
	Notes    string
}

// ClientPatch carries a partial client edit. Nil fields are left unchanged.
type ClientPatch struct {
	Name     *string
	Document *string
	Phone    *string
	Email    *string
	Notes    *string
}

// AddClient registers a client. The client is visible in the mirror
// immediately under a temporary id, which is replaced once the database
// assigns the real one.
func (s *Store) AddClient(ctx context.Context, input NewClient) (domain.Client, error) {
	if input.Name == "" {
		return domain.Client{}, fmt.Errorf("%w: client name is required", apperrors.ErrValidation)
	}

	optimistic := domain.Client{
		ClientID:  tempID(),
		UserID:    s.userID,
		Name:      input.Name,
		Document:  input.Document,
		Phone:     input.Phone,
		Email:     input.Email,
		Notes:     input.Notes,
		CreatedAt: time.Now().UTC(),
	}

	var created domain.Client
	err := run(ctx, s, "add_client", mutation[domain.Client]{
		apply: func() {
			s.clients = append([]domain.Client{optimistic}, s.clients...)
		},
		send: func(ctx context.Context) (domain.Client, error) {
			return s.repos.Clients.InsertClient(ctx, optimistic)
		},
		reconcile: func(result domain.Client) {
			for i := range s.clients {
				if s.clients[i].ClientID == optimistic.ClientID {
					s.clients[i] = result
					break
				}
			}
			created = result
		},
		revert: func() {
			s.clients = removeClientLocked(s.clients, optimistic.ClientID)
		},
	})
	if err != nil {
		return domain.Client{}, err
	}
	return created, nil
}

// UpdateClient applies a partial edit to a client.
func (s *Store) UpdateClient(ctx context.Context, clientID string, patch ClientPatch) (domain.Client, error) {
	prior, ok := s.Client(clientID)
	if !ok {
		return domain.Client{}, fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
	}

	updated := prior
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Document != nil {
		updated.Document = *patch.Document
	}
	if patch.Phone != nil {
		updated.Phone = *patch.Phone
	}
	if patch.Email != nil {
		updated.Email = *patch.Email
	}
	if patch.Notes != nil {
		updated.Notes = *patch.Notes
	}
	if updated.Name == "" {
		return domain.Client{}, fmt.Errorf("%w: client name is required", apperrors.ErrValidation)
	}

	err := run(ctx, s, "update_client", mutation[struct{}]{
		apply: func() {
			s.replaceClientLocked(updated)
		},
		send: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.repos.Clients.UpdateClient(ctx, updated)
		},
		revert: func() {
			s.replaceClientLocked(prior)
		},
	})
	if err != nil {
		return domain.Client{}, err
	}
	return updated, nil
}

// DeleteClient removes a client. Contract cascades are a database concern;
// the mirror only drops the client row itself.
func (s *Store) DeleteClient(ctx context.Context, clientID string) error {
	if _, ok := s.Client(clientID); !ok {
		return fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
	}

	var snapshot []domain.Client
	return run(ctx, s, "delete_client", mutation[struct{}]{
		apply: func() {
			snapshot = make([]domain.Client, len(s.clients))
			copy(snapshot, s.clients)
			s.clients = removeClientLocked(s.clients, clientID)
		},
		send: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.repos.Clients.DeleteClient(ctx, clientID, s.userID)
		},
		revert: func() {
			s.clients = snapshot
		},
	})
}

func (s *Store) replaceClientLocked(client domain.Client) {
	for i := range s.clients {
		if s.clients[i].ClientID == client.ClientID {
			s.clients[i] = client
			return
		}
	}
}

func removeClientLocked(clients []domain.Client, clientID string) []domain.Client {
	out := clients[:0]
	for _, c := range clients {
		if c.ClientID != clientID {
			out = append(out, c)
		}
	}
	return out
}
