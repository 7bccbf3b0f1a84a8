package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is a mobile-money rail a wallet can be paid out through.
type PaymentMethod string

const (
	PaymentMethodMpesa PaymentMethod = "MPESA"
	PaymentMethodEmola PaymentMethod = "EMOLA"
)

// WalletMethod holds the account holder details for one payout rail.
type WalletMethod struct {
	Method     PaymentMethod `json:"method"`
	HolderName string        `json:"holder_name"`
	Contact    string        `json:"contact"`
}

// Complete reports whether the method carries both a holder name and a contact.
func (m WalletMethod) Complete() bool {
	return strings.TrimSpace(m.HolderName) != "" && strings.TrimSpace(m.Contact) != ""
}

// Wallet is a vendor's payout destination. The engine only reads wallets.
type Wallet struct {
	ID              uuid.UUID      `json:"id"`
	VendorID        uuid.UUID      `json:"vendor_id"`
	Name            string         `json:"name"`
	Email           string         `json:"email,omitempty"`
	PreferredMethod PaymentMethod  `json:"preferred_method"`
	Methods         []WalletMethod `json:"methods"`
	Active          bool           `json:"active"`
	LastUsedAt      *time.Time     `json:"last_used_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// Holder picks the method to pay out through: the preferred method when it is
// complete, otherwise the first complete one.
func (w *Wallet) Holder() (WalletMethod, bool) {
	for _, m := range w.Methods {
		if m.Method == w.PreferredMethod && m.Complete() {
			return m, true
		}
	}
	for _, m := range w.Methods {
		if m.Complete() {
			return m, true
		}
	}
	return WalletMethod{}, false
}
