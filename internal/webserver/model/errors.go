package model

import "errors"

// Sentinel errors returned by the repositories. Controllers decide which of
// them reach the user and which are only logged.
var (
	ErrDuplicateIdentity = errors.New("an account with this username or email already exists")
	ErrInviteNotFound    = errors.New("invite token not found")
	ErrInviteExpired     = errors.New("invite token expired")
	ErrInviteUsed        = errors.New("invite token already used")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrInvalidCode       = errors.New("invalid verification code")
	ErrAccountInactive   = errors.New("account is deactivated")
)
