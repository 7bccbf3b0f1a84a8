package domain

import (
	"crypto/subtle"
	"time"

	"github.com/google/uuid"
)

// ApprovalCodeRetention is how long an expired code is kept so a late
// confirmation reports Expired rather than InvalidCode.
const ApprovalCodeRetention = 15 * time.Minute

// ApprovalCode is a one-time code authorizing one administrator to
// re-approve one cancelled sale.
type ApprovalCode struct {
	SaleID    uuid.UUID `json:"sale_id"`
	AdminID   uuid.UUID `json:"admin_id"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
}

// IsExpired reports whether the code is past its expiry at now.
func (c *ApprovalCode) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// Usable reports whether the code is unused and unexpired at now.
func (c *ApprovalCode) Usable(now time.Time) bool {
	return !c.Used && !c.IsExpired(now)
}

// Matches compares the digits in constant time.
func (c *ApprovalCode) Matches(code string) bool {
	return subtle.ConstantTimeCompare([]byte(c.Code), []byte(code)) == 1
}

// ApprovalCodeIssue is what the requesting administrator learns about a code.
// The digits themselves only travel through the notification channel.
type ApprovalCodeIssue struct {
	SaleID        uuid.UUID `json:"sale_id"`
	ExpiresAt     time.Time `json:"expires_at"`
	AlreadyIssued bool      `json:"already_issued"`
}
