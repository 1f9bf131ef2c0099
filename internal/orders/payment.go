package orders

import "strconv"

// Payment is the derived payment state for an order.
type Payment struct {
	PaidAmount float64
	BalanceDue float64
	Status     string
}

// DerivePayment computes payment state from the order total and a raw
// paid-amount input. Unparsable input counts as zero. The stored paid
// amount is kept as entered; only the balance is clamped at zero.
func DerivePayment(totalAmount float64, rawPaid string) Payment {
	paid, err := strconv.ParseFloat(rawPaid, 64)
	if err != nil {
		paid = 0
	}
	return derive(totalAmount, paid)
}

// DerivePaymentAmount is DerivePayment for an already-parsed paid amount.
func DerivePaymentAmount(totalAmount, paidAmount float64) Payment {
	return derive(totalAmount, paidAmount)
}

func derive(total, paid float64) Payment {
	balance := total - paid
	if balance < 0 {
		balance = 0
	}
	status := PaymentUnpaid
	switch {
	case paid >= total:
		status = PaymentPaid
	case paid > 0:
		status = PaymentPartial
	}
	return Payment{PaidAmount: paid, BalanceDue: balance, Status: status}
}

// MarkFullyPaid returns the payment state for settling the whole total.
func MarkFullyPaid(totalAmount float64) Payment {
	return derive(totalAmount, totalAmount)
}

// ResetUnpaid returns the payment state with nothing paid.
func ResetUnpaid(totalAmount float64) Payment {
	return derive(totalAmount, 0)
}
