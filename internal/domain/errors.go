package domain

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrSellerNotFound = errors.New("seller not found")
	ErrEventNotFound  = errors.New("event not found")
	ErrTicketNotFound = errors.New("ticket not found")
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSellerSuspended    = errors.New("seller account suspended")
	ErrSellerNotApproved  = errors.New("seller not approved")
	ErrForbidden          = errors.New("forbidden")
)

var (
	ErrEmailTaken    = errors.New("email already in use")
	ErrTicketUsed    = errors.New("ticket already used")
	ErrQuotaExceeded = errors.New("ticket limit reached")
)

var (
	ErrEventInactive    = errors.New("event is inactive")
	ErrEventStillActive = errors.New("deactivate the event before deleting")
	ErrSellerNotSusp    = errors.New("suspend the seller before deleting")
	ErrLimitBelowSold   = errors.New("ticket limit cannot be below tickets already sold")
)

var (
	ErrValidation  = errors.New("validation error")
	ErrRateLimited = errors.New("rate limit exceeded")
)
