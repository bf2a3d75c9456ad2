package models

import (
	"errors"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrTooManyAttempts = errors.New("too many sign-in attempts")
)

var (
	ErrNoRecord                = errors.New("models: no matching record found")
	ErrInvalidCredentials      = errors.New("models: invalid credentials")
	ErrDuplicateEmail          = errors.New("models: duplicate email")
	ErrDuplicatePhone          = errors.New("models: duplicate phone number")
	ErrUserNotFound            = errors.New("models: user not found")
	ErrInvalidPassword         = errors.New("models: invalid password")
	ErrInvalidVerificationCode = errors.New("models: invalid verification code")
	ErrPropertyNotFound        = errors.New("property not found")
	ErrAuctionNotFound         = errors.New("auction not found")
	ErrAuctionClosed           = errors.New("auction closed for bidding")
	ErrBidTooLow               = errors.New("bid below minimum increment")
	ErrForbidden               = errors.New("action not allowed for role")
	ErrUpstreamUnavailable     = errors.New("platform api unavailable")
)
