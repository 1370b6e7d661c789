package mapping

import (
	"github.com/limpanome/crm_backend/internal/core/domain"
	"github.com/limpanome/crm_backend/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment.
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:  d.PaymentID,
		UserID:     d.UserID,
		ContractID: d.ContractID,
		Amount:     d.Amount,
		Date:       d.Date,
		Method:     d.Method,
		Notes:      d.Notes,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:  m.PaymentID,
		UserID:     m.UserID,
		ContractID: m.ContractID,
		Amount:     m.Amount,
		Date:       m.Date,
		Method:     m.Method,
		Notes:      m.Notes,
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments.
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
