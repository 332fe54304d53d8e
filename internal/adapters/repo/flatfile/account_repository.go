package flatfile

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bnema/askme/internal/adapters/codec/record"
	"github.com/bnema/askme/internal/domain"
	"github.com/bnema/askme/internal/ports"
)

// AccountRepository owns the account collection for the life of the process
// and rewrites the accounts file after every successful mutation.
type AccountRepository struct {
	path   string
	store  ports.LineStore
	logger *slog.Logger

	mu       sync.RWMutex
	accounts map[domain.AccountID]domain.Account
}

var _ ports.AccountRepository = (*AccountRepository)(nil)

// LoadAccountRepository reads path through store. Lines that fail to decode
// are logged and dropped; the repository starts with whatever was readable.
func LoadAccountRepository(ctx context.Context, store ports.LineStore, path string, logger *slog.Logger) (*AccountRepository, error) {
	logger = orDiscard(logger)

	lines, err := store.ReadLines(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}

	repo := &AccountRepository{
		path:     path,
		store:    store,
		logger:   logger,
		accounts: make(map[domain.AccountID]domain.Account, len(lines)),
	}

	for i, line := range lines {
		account, err := record.DecodeAccount(line)
		if err == nil {
			err = account.Validate()
		}
		if err != nil {
			logger.WarnContext(ctx, "skipping malformed account record", "path", path, "record", i+1, "error", err)
			continue
		}
		if _, exists := repo.accounts[account.ID]; exists {
			logger.WarnContext(ctx, "skipping duplicate account record", "path", path, "record", i+1, "id", account.ID)
			continue
		}
		repo.accounts[account.ID] = account
	}

	logger.DebugContext(ctx, "accounts loaded", "path", path, "count", len(repo.accounts), "skipped", len(lines)-len(repo.accounts))

	return repo, nil
}

func (r *AccountRepository) NextID() domain.AccountID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return nextID(r.accounts)
}

func (r *AccountRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.accounts)
}

func (r *AccountRepository) GetByID(ctx context.Context, id domain.AccountID) (domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return domain.Account{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return domain.Account{}, fmt.Errorf("account %d: %w", id, domain.ErrAccountNotFound)
	}

	return account, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedValues(r.accounts), nil
}

func (r *AccountRepository) Add(ctx context.Context, account domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := account.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.ID]; exists {
		return fmt.Errorf("account %d: %w", account.ID, domain.ErrDuplicateID)
	}

	r.accounts[account.ID] = account

	return r.persistLocked(ctx)
}

func (r *AccountRepository) Update(ctx context.Context, account domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := account.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.ID]; !exists {
		return fmt.Errorf("account %d: %w", account.ID, domain.ErrAccountNotFound)
	}

	r.accounts[account.ID] = account

	return r.persistLocked(ctx)
}

// Remove deletes the account only. Entries it authored or received stay.
func (r *AccountRepository) Remove(ctx context.Context, id domain.AccountID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[id]; !exists {
		return fmt.Errorf("account %d: %w", id, domain.ErrAccountNotFound)
	}

	delete(r.accounts, id)

	return r.persistLocked(ctx)
}

// Authenticate compares secret with the stored value byte for byte. Unknown
// ids and wrong secrets return the same error.
func (r *AccountRepository) Authenticate(ctx context.Context, id domain.AccountID, secret string) (domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return domain.Account{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok || subtle.ConstantTimeCompare([]byte(account.Secret), []byte(secret)) != 1 {
		return domain.Account{}, domain.ErrInvalidCredentials
	}

	return account, nil
}

// persistLocked rewrites the accounts file. The in-memory change is kept even
// when the write fails.
func (r *AccountRepository) persistLocked(ctx context.Context) error {
	accounts := sortedValues(r.accounts)
	lines := make([]string, 0, len(accounts))
	for _, account := range accounts {
		lines = append(lines, record.EncodeAccount(account))
	}

	if err := r.store.WriteLines(ctx, r.path, lines); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}

	return nil
}
