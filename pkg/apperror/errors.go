package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an AppError independently of its specific code, so callers
// can make retry and rendering decisions without matching every code.
type Kind string

const (
	KindNotFound          Kind = "NOT_FOUND"
	KindAlreadyExists     Kind = "ALREADY_EXISTS"
	KindInvalidState      Kind = "INVALID_STATE"
	KindInsufficientValue Kind = "INSUFFICIENT_VALUE"
	KindCapExceeded       Kind = "CAP_EXCEEDED"
	KindUnauthorized      Kind = "UNAUTHORIZED"
	KindPriceUnavailable  Kind = "PRICE_UNAVAILABLE"
	KindOverflow          Kind = "OVERFLOW"
	KindValidation        Kind = "VALIDATION"
	KindRateLimited       Kind = "RATE_LIMITED"
	KindInternal          Kind = "INTERNAL"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Kind       Kind   `json:"kind"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
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

// Is matches on Code so sentinel comparisons work against freshly built errors.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// New creates a new AppError.
func New(code string, kind Kind, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Kind:       kind,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, kind Kind, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Kind:       kind,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// KindOf returns the Kind of err, or KindInternal when err is not an AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// CodeOf returns the code of err, or "" when err is not an AppError.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Wexel lifecycle (WXL) ----

func ErrWexelNotFound() *AppError {
	return New("WXL_001", KindNotFound, "Wexel not found", http.StatusNotFound)
}

func ErrWexelFinalized() *AppError {
	return New("WXL_002", KindInvalidState, "Wexel is finalized", http.StatusConflict)
}

func ErrWexelExists() *AppError {
	return New("WXL_003", KindAlreadyExists, "Wexel already exists", http.StatusConflict)
}

func ErrNotMatured() *AppError {
	return New("WXL_004", KindInvalidState, "Wexel has not reached maturity", http.StatusConflict)
}

func ErrPoolNotFound() *AppError {
	return New("WXL_005", KindNotFound, "Pool not found", http.StatusNotFound)
}

func ErrPoolInactive() *AppError {
	return New("WXL_006", KindInvalidState, "Pool is not accepting deposits", http.StatusConflict)
}

func ErrBelowMinDeposit() *AppError {
	return New("WXL_007", KindInsufficientValue, "Deposit is below pool minimum", http.StatusUnprocessableEntity)
}

func ErrPoolExists() *AppError {
	return New("WXL_008", KindAlreadyExists, "Pool already exists", http.StatusConflict)
}

// ---- Rewards (CLM) ----

func ErrNothingToClaim() *AppError {
	return New("CLM_001", KindInvalidState, "Nothing to claim", http.StatusConflict)
}

func ErrClaimExceedsPending() *AppError {
	return New("CLM_002", KindInsufficientValue, "Claim amount exceeds pending rewards", http.StatusUnprocessableEntity)
}

// ---- Boost (BST) ----

func ErrUnsupportedToken(mint string) *AppError {
	return New("BST_001", KindValidation, fmt.Sprintf("Boost token %s is not supported", mint), http.StatusBadRequest)
}

func ErrBoostCapExceeded() *AppError {
	return New("BST_002", KindCapExceeded, "Boost APY would exceed pool maximum", http.StatusInternalServerError)
}

// ---- Collateral (COL) ----

func ErrAlreadyCollateralized() *AppError {
	return New("COL_001", KindAlreadyExists, "Wexel is already collateralized", http.StatusConflict)
}

func ErrPositionNotFound() *AppError {
	return New("COL_002", KindNotFound, "Collateral position not found", http.StatusNotFound)
}

func ErrAlreadyRepaid() *AppError {
	return New("COL_003", KindInvalidState, "Loan already repaid", http.StatusConflict)
}

func ErrInsufficientRepayment() *AppError {
	return New("COL_004", KindInsufficientValue, "Repayment amount is less than loan amount", http.StatusUnprocessableEntity)
}

func ErrCollateralizedWexel() *AppError {
	return New("COL_005", KindInvalidState, "Wexel is collateralized", http.StatusConflict)
}

// ---- Marketplace (MKT) ----

func ErrListingNotFound() *AppError {
	return New("MKT_001", KindNotFound, "Listing not found", http.StatusNotFound)
}

func ErrAlreadyListed() *AppError {
	return New("MKT_002", KindAlreadyExists, "Wexel already has an active listing", http.StatusConflict)
}

func ErrListingNotActive() *AppError {
	return New("MKT_003", KindInvalidState, "Listing is not active", http.StatusConflict)
}

func ErrPriceTooLow() *AppError {
	return New("MKT_004", KindInsufficientValue, "Price is less than asking price", http.StatusUnprocessableEntity)
}

func ErrListingExpired() *AppError {
	return New("MKT_005", KindInvalidState, "Listing has expired", http.StatusConflict)
}

func ErrListedWexel() *AppError {
	return New("MKT_006", KindInvalidState, "Wexel has an active listing", http.StatusConflict)
}

// ---- Pricing (PRC) ----

func ErrPriceUnavailable(mint string, err error) *AppError {
	return Wrap("PRC_001", KindPriceUnavailable, fmt.Sprintf("Price unavailable for %s", mint), http.StatusServiceUnavailable, err)
}

// ---- Authorization (AUTH) ----

func ErrUnauthorized() *AppError {
	return New("AUTH_001", KindUnauthorized, "Caller is not the owner", http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", KindUnauthorized, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", KindRateLimited, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// ErrOverflow reports an arithmetic step that left the int64 domain. The ledger
// must not continue with a wrapped value.
func ErrOverflow(op string) *AppError {
	return New("SYS_004", KindOverflow, fmt.Sprintf("Arithmetic overflow in %s", op), http.StatusInternalServerError)
}

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", KindInternal, "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", KindInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_001 validation error.
func Validation(message string) *AppError {
	return New("VAL_001", KindValidation, message, http.StatusBadRequest)
}
