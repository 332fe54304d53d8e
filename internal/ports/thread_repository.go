package ports

import (
	"context"

	"github.com/bnema/askme/internal/domain"
)

type DeleteResult struct {
	// Deleted lists every removed id, replies first and the target last.
	Deleted []domain.EntryID
	// Skipped lists replies the actor was not allowed to delete.
	Skipped []domain.EntryID
}

type ThreadRepository interface {
	NextID() domain.EntryID
	Get(ctx context.Context, id domain.EntryID) (domain.Entry, error)
	Create(ctx context.Context, entry domain.Entry) error
	SetAnswer(ctx context.Context, id domain.EntryID, text string) error
	ListTo(ctx context.Context, accountID domain.AccountID) ([]domain.Entry, error)
	ListFrom(ctx context.Context, accountID domain.AccountID) ([]domain.Entry, error)
	ListReplies(ctx context.Context, parentID domain.EntryID) ([]domain.Entry, error)
	Delete(ctx context.Context, id domain.EntryID, actor domain.Account) (DeleteResult, error)
	Feed(ctx context.Context, actor domain.Account) ([]domain.Entry, error)
}
