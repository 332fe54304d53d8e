package application

import "github.com/bnema/askme/internal/domain"

type RegisterCommand struct {
	Name           string
	Username       string
	Secret         string
	Email          string
	AllowAnonymous bool
	// Admin requests the admin role. It is granted to an admin Actor, or to
	// anyone while no account exists yet.
	Admin bool
	Actor *domain.Account
}

// UpdateProfileCommand carries a partial update. Nil fields keep their
// current value.
type UpdateProfileCommand struct {
	ID             domain.AccountID
	Name           *string
	Email          *string
	Secret         *string
	AllowAnonymous *bool
}

type AskCommand struct {
	RecipientID domain.AccountID
	// ParentID is the entry this one replies to. Zero and domain.NoParent
	// both start a new thread.
	ParentID  domain.EntryID
	Anonymous bool
	Question  string
}

type AnswerCommand struct {
	EntryID domain.EntryID
	Text    string
}
