package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/limpanome/crm_backend/internal/apperrors"
	"github.com/limpanome/crm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NewPayment carries the fields needed to record an installment payment.
type NewPayment struct {
	ContractID string
	Amount     decimal.Decimal
	Date       time.Time
	Method     string
	Notes      string
}

// AddPayment records a payment against a contract and evaluates the
// eligibility rule: when cumulative paid, including this payment, reaches
// half of the contract's total value, a contract still at in_progress (or
// draft) is promoted to eligible. The promotion is one-directional; nothing
// ever moves a contract back below eligible automatically.
func (s *Store) AddPayment(ctx context.Context, input NewPayment) (domain.Payment, error) {
	if !input.Amount.IsPositive() {
		return domain.Payment{}, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	contract, ok := s.Contract(input.ContractID)
	if !ok {
		return domain.Payment{}, fmt.Errorf("%w: contract %s", apperrors.ErrNotFound, input.ContractID)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	optimistic := domain.Payment{
		PaymentID:  tempID(),
		UserID:     s.userID,
		ContractID: input.ContractID,
		Amount:     input.Amount,
		Date:       date,
		Method:     input.Method,
		Notes:      input.Notes,
	}

	var created domain.Payment
	err := run(ctx, s, "add_payment", mutation[domain.Payment]{
		apply: func() {
			s.payments = append([]domain.Payment{optimistic}, s.payments...)
		},
		send: func(ctx context.Context) (domain.Payment, error) {
			return s.repos.Payments.InsertPayment(ctx, optimistic)
		},
		reconcile: func(result domain.Payment) {
			for i := range s.payments {
				if s.payments[i].PaymentID == optimistic.PaymentID {
					s.payments[i] = result
					break
				}
			}
			created = result
		},
		revert: func() {
			s.payments = removePaymentLocked(s.payments, optimistic.PaymentID)
		},
	})
	if err != nil {
		return domain.Payment{}, err
	}

	s.appendEvent(ctx, input.ContractID, domain.EventPayment,
		fmt.Sprintf("Pagamento recebido: R$ %s", created.Amount.StringFixed(2)))

	s.checkEligibility(ctx, contract)
	return created, nil
}

// DeletePayment removes a payment. Contract status is deliberately not
// re-derived: dropping below 50% paid does not demote an eligible contract.
// On a remote failure the whole payments collection is resynced from
// persistence instead of patching the mirror.
func (s *Store) DeletePayment(ctx context.Context, paymentID string) error {
	var deleted domain.Payment
	found := false
	s.mu.RLock()
	for _, p := range s.payments {
		if p.PaymentID == paymentID {
			deleted = p
			found = true
			break
		}
	}
	s.mu.RUnlock()
	if !found {
		return fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, paymentID)
	}

	err := run(ctx, s, "delete_payment", mutation[struct{}]{
		apply: func() {
			s.payments = removePaymentLocked(s.payments, paymentID)
		},
		send: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.repos.Payments.DeletePayment(ctx, paymentID, s.userID)
		},
		revert: func() {
			s.resyncPayments(ctx)
		},
	})
	if err != nil {
		return err
	}

	s.appendEvent(ctx, deleted.ContractID, domain.EventPayment,
		fmt.Sprintf("Pagamento removido: R$ %s", deleted.Amount.StringFixed(2)))
	return nil
}

// checkEligibility promotes a contract to eligible once cumulative paid
// reaches the threshold. Contracts already at eligible or beyond are left
// alone; a zero total value never promotes.
func (s *Store) checkEligibility(ctx context.Context, contract domain.Contract) {
	current, ok := s.Contract(contract.ContractID)
	if !ok {
		return
	}
	if current.Status != domain.StatusInProgress && current.Status != domain.StatusDraft {
		return
	}
	if !current.TotalValue.IsPositive() {
		return
	}

	paid := decimal.Zero
	for _, p := range s.PaymentsForContract(current.ContractID) {
		paid = paid.Add(p.Amount)
	}
	if paid.Div(current.TotalValue).LessThan(domain.EligibilityThreshold) {
		return
	}

	prior := current
	updated := current
	updated.Status = domain.StatusEligible

	err := run(ctx, s, "promote_eligible", mutation[struct{}]{
		apply: func() {
			s.replaceContractLocked(updated)
		},
		send: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.repos.Contracts.UpdateContract(ctx, updated)
		},
		revert: func() {
			s.replaceContractLocked(prior)
		},
	})
	if err != nil {
		return
	}

	s.appendEvent(ctx, updated.ContractID, domain.EventStatusChange,
		"Contrato atingiu 50% e tornou-se Elegível para envio")
}

// resyncPayments replaces the payments mirror with the persisted state.
// Used to recover from a failed delete, where the dropped row is easier to
// re-fetch than to splice back in order.
func (s *Store) resyncPayments(ctx context.Context) {
	payments, err := s.repos.Payments.ListPaymentsByUser(ctx, s.userID)
	if err != nil {
		s.logger.Error("Failed to resync payments after rollback", slog.String("error", err.Error()))
		return
	}
	s.payments = payments
}

func removePaymentLocked(payments []domain.Payment, paymentID string) []domain.Payment {
	out := payments[:0]
	for _, p := range payments {
		if p.PaymentID != paymentID {
			out = append(out, p)
		}
	}
	return out
}
