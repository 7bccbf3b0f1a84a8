package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Kind groups error codes by how callers are expected to react to them.
type Kind string

const (
	KindValidation  Kind = "validation"
	KindNotFound    Kind = "not_found"
	KindConflict    Kind = "conflict"
	KindTransient   Kind = "transient"
	KindUnavailable Kind = "unavailable"
	KindRateLimited Kind = "rate_limited"
	KindAuth        Kind = "auth"
	KindInternal    Kind = "internal"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string        `json:"error_code"`
	Message    string        `json:"message"`
	HTTPStatus int           `json:"-"`
	Kind       Kind          `json:"-"`
	RetryAfter time.Duration `json:"-"` // only set for rate limited errors
	Err        error         `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(kind Kind, code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Kind:       kind,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(kind Kind, code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Kind:       kind,
		Err:        err,
	}
}

// As returns the first *AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err carries an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}

// IsCode reports whether err carries an AppError with the given code.
func IsCode(err error, code string) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}

// ---- Request Signing (SEC) ----

func ErrMissingSignature() *AppError {
	return New(KindAuth, "SEC_001", "Missing signature headers", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New(KindAuth, "SEC_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New(KindAuth, "SEC_003", "Request timestamp expired", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New(KindAuth, "SEC_004", "Nonce has already been used", http.StatusForbidden)
}

// ---- Validation (VAL) ----

func ErrInvalidAmount() *AppError {
	return New(KindValidation, "VAL_001", "Amount must be positive with at most two decimal places", http.StatusBadRequest)
}

func ErrInvalidWallet(reason string) *AppError {
	return New(KindValidation, "VAL_002", reason, http.StatusBadRequest)
}

func ErrInsufficientRevenue() *AppError {
	return New(KindValidation, "VAL_003", "Amount exceeds available revenue", http.StatusUnprocessableEntity)
}

func ErrInvalidConfirmationCode() *AppError {
	return New(KindValidation, "VAL_004", "Invalid or expired confirmation code", http.StatusBadRequest)
}

// Validation returns a generic validation error.
func Validation(message string) *AppError {
	return New(KindValidation, "VAL_005", message, http.StatusBadRequest)
}

func ErrVendorSuspended() *AppError {
	return New(KindValidation, "VAL_006", "Vendor account is suspended", http.StatusForbidden)
}

// ---- Lookup (NF) ----

func ErrNotFound(entity string) *AppError {
	return New(KindNotFound, "NF_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Conflicts (CON) ----

func ErrPendingWithdrawalExists() *AppError {
	return New(KindConflict, "CON_001", "A pending withdrawal request already exists", http.StatusConflict)
}

func ErrSaleState(message string) *AppError {
	return New(KindConflict, "CON_002", message, http.StatusConflict)
}

func ErrInvalidTransition(from, to string) *AppError {
	return New(KindConflict, "CON_003", fmt.Sprintf("Cannot move withdrawal from %s to %s", from, to), http.StatusConflict)
}

// ---- Manual approval codes (OTP) ----

func ErrInvalidCode() *AppError {
	return New(KindValidation, "OTP_001", "Invalid approval code", http.StatusBadRequest)
}

func ErrWrongAdmin() *AppError {
	return New(KindValidation, "OTP_002", "Approval code was issued to another administrator", http.StatusForbidden)
}

func ErrCodeExpired() *AppError {
	return New(KindValidation, "OTP_003", "Approval code has expired", http.StatusGone)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New(KindAuth, "AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New(KindAuth, "AUTH_005", "Insufficient role for this operation", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimited(retryAfter time.Duration) *AppError {
	e := New(KindRateLimited, "RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
	e.RetryAfter = retryAfter
	return e
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap(KindInternal, "SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// ErrTransientStore marks a store failure that is safe to retry as a whole unit.
func ErrTransientStore(err error) *AppError {
	return Wrap(KindTransient, "SYS_002", "Temporary storage failure", http.StatusServiceUnavailable, err)
}

func ErrSettlementUnavailable(err error) *AppError {
	return Wrap(KindUnavailable, "SYS_003", "Settlement temporarily unavailable", http.StatusServiceUnavailable, err)
}

// ErrPartialSettlement is reported to operators only. The triggering
// transition has already been committed when it is raised.
func ErrPartialSettlement(err error) *AppError {
	return Wrap(KindInternal, "SYS_004", "Settlement committed without commission credit", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(KindInternal, "SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
