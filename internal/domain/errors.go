package domain

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrEntryNotFound       = errors.New("entry not found")
	ErrDuplicateID         = errors.New("id already exists")
	ErrRecipientNotFound   = errors.New("recipient account not found")
	ErrParentNotFound      = errors.New("parent entry not found")
	ErrAnonymousNotAllowed = errors.New("recipient does not accept anonymous questions")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrInvalidCredentials  = errors.New("invalid account id or secret")
	ErrInvalidRole         = errors.New("invalid role")
)
