package repositories

import (
	"context"

	"github.com/limpanome/crm_backend/internal/core/domain"
)

// PaymentRepository persists installment payments. Payments are immutable
// once stored; there is no update.
type PaymentRepository interface {
	InsertPayment(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID string, userID string) error
	// ListPaymentsByUser returns the user's payments, most recent date first.
	ListPaymentsByUser(ctx context.Context, userID string) ([]domain.Payment, error)
}
