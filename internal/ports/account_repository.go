package ports

import (
	"context"

	"github.com/bnema/askme/internal/domain"
)

// AccountLookup is the read side the thread repository needs to validate
// recipients.
type AccountLookup interface {
	GetByID(ctx context.Context, id domain.AccountID) (domain.Account, error)
}

type AccountRepository interface {
	AccountLookup
	NextID() domain.AccountID
	List(ctx context.Context) ([]domain.Account, error)
	Add(ctx context.Context, account domain.Account) error
	Update(ctx context.Context, account domain.Account) error
	Remove(ctx context.Context, id domain.AccountID) error
	Authenticate(ctx context.Context, id domain.AccountID, secret string) (domain.Account, error)
}
