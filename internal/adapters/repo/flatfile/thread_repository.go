package flatfile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/bnema/askme/internal/adapters/codec/record"
	"github.com/bnema/askme/internal/domain"
	"github.com/bnema/askme/internal/ports"
)

// ThreadRepository owns the question/answer entries. It consults accounts
// to validate recipients and the anonymous-question permission at creation.
type ThreadRepository struct {
	path     string
	store    ports.LineStore
	accounts ports.AccountLookup
	logger   *slog.Logger

	mu      sync.RWMutex
	entries map[domain.EntryID]domain.Entry
}

var _ ports.ThreadRepository = (*ThreadRepository)(nil)

func LoadThreadRepository(ctx context.Context, store ports.LineStore, path string, accounts ports.AccountLookup, logger *slog.Logger) (*ThreadRepository, error) {
	if accounts == nil {
		return nil, errors.New("thread repository needs an account lookup")
	}
	logger = orDiscard(logger)

	lines, err := store.ReadLines(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load threads: %w", err)
	}

	repo := &ThreadRepository{
		path:     path,
		store:    store,
		accounts: accounts,
		logger:   logger,
		entries:  make(map[domain.EntryID]domain.Entry, len(lines)),
	}

	for i, line := range lines {
		entry, err := record.DecodeEntry(line)
		if err == nil {
			err = entry.Validate()
		}
		if err != nil {
			logger.WarnContext(ctx, "skipping malformed thread record", "path", path, "record", i+1, "error", err)
			continue
		}
		if _, exists := repo.entries[entry.ID]; exists {
			logger.WarnContext(ctx, "skipping duplicate thread record", "path", path, "record", i+1, "id", entry.ID)
			continue
		}
		repo.entries[entry.ID] = entry
	}

	logger.DebugContext(ctx, "threads loaded", "path", path, "count", len(repo.entries), "skipped", len(lines)-len(repo.entries))

	return repo, nil
}

func (r *ThreadRepository) NextID() domain.EntryID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return nextID(r.entries)
}

func (r *ThreadRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

func (r *ThreadRepository) Get(ctx context.Context, id domain.EntryID) (domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return domain.Entry{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return domain.Entry{}, fmt.Errorf("entry %d: %w", id, domain.ErrEntryNotFound)
	}

	return entry, nil
}

// Create stores a new entry. The recipient must exist and, for anonymous
// entries, accept anonymous questions right now. A reply's parent must exist
// right now. Neither condition is checked again later.
func (r *ThreadRepository) Create(ctx context.Context, entry domain.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.ID]; exists {
		return fmt.Errorf("entry %d: %w", entry.ID, domain.ErrDuplicateID)
	}

	recipient, err := r.accounts.GetByID(ctx, entry.RecipientID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return fmt.Errorf("account %d: %w", entry.RecipientID, domain.ErrRecipientNotFound)
		}
		return fmt.Errorf("look up recipient: %w", err)
	}

	if entry.IsReply() {
		if _, ok := r.entries[entry.ParentID]; !ok {
			return fmt.Errorf("entry %d: %w", entry.ParentID, domain.ErrParentNotFound)
		}
	}

	if entry.Anonymous && !recipient.AllowAnonymous {
		return fmt.Errorf("account %d: %w", recipient.ID, domain.ErrAnonymousNotAllowed)
	}

	r.entries[entry.ID] = entry

	return r.persistLocked(ctx)
}

// SetAnswer replaces the answer text of id. It does not check who answers;
// callers apply domain.CanAnswer first.
func (r *ThreadRepository) SetAnswer(ctx context.Context, id domain.EntryID, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := domain.ValidateAnswer(text); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("entry %d: %w", id, domain.ErrEntryNotFound)
	}

	entry.Answer = text
	r.entries[id] = entry

	return r.persistLocked(ctx)
}

func (r *ThreadRepository) ListTo(ctx context.Context, accountID domain.AccountID) ([]domain.Entry, error) {
	return r.filter(ctx, func(e domain.Entry) bool { return e.RecipientID == accountID })
}

func (r *ThreadRepository) ListFrom(ctx context.Context, accountID domain.AccountID) ([]domain.Entry, error) {
	return r.filter(ctx, func(e domain.Entry) bool { return e.AuthorID == accountID })
}

// ListReplies returns the direct replies of parentID. The parent itself does
// not have to exist any more.
func (r *ThreadRepository) ListReplies(ctx context.Context, parentID domain.EntryID) ([]domain.Entry, error) {
	return r.filter(ctx, func(e domain.Entry) bool { return e.ParentID == parentID })
}

func (r *ThreadRepository) Feed(ctx context.Context, actor domain.Account) ([]domain.Entry, error) {
	if !domain.CanViewFeed(actor) {
		return nil, fmt.Errorf("feed for account %d: %w", actor.ID, domain.ErrPermissionDenied)
	}

	return r.filter(ctx, func(domain.Entry) bool { return true })
}

// Delete removes id together with the direct replies to it that actor may
// delete. A reply actor may not delete is skipped. Replies of replies are
// left in place with a dangling parent id. The file is rewritten once, after
// the whole cascade.
func (r *ThreadRepository) Delete(ctx context.Context, id domain.EntryID, actor domain.Account) (ports.DeleteResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.DeleteResult{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return ports.DeleteResult{}, fmt.Errorf("entry %d: %w", id, domain.ErrEntryNotFound)
	}
	if !domain.CanDelete(entry, actor) {
		return ports.DeleteResult{}, fmt.Errorf("delete entry %d as account %d: %w", id, actor.ID, domain.ErrPermissionDenied)
	}

	var result ports.DeleteResult
	for _, reply := range r.repliesLocked(id) {
		if reply.ID == id {
			continue
		}
		if !domain.CanDelete(reply, actor) {
			r.logger.InfoContext(ctx, "skipping reply owned by another account",
				"entry", reply.ID, "parent", id, "author", reply.AuthorID, "actor", actor.ID)
			result.Skipped = append(result.Skipped, reply.ID)
			continue
		}

		delete(r.entries, reply.ID)
		result.Deleted = append(result.Deleted, reply.ID)
	}

	delete(r.entries, id)
	result.Deleted = append(result.Deleted, id)

	if err := r.persistLocked(ctx); err != nil {
		return result, err
	}

	return result, nil
}

func (r *ThreadRepository) repliesLocked(parentID domain.EntryID) []domain.Entry {
	var replies []domain.Entry
	for _, entry := range r.entries {
		if entry.ParentID == parentID {
			replies = append(replies, entry)
		}
	}
	slices.SortFunc(replies, func(a, b domain.Entry) int { return int(a.ID) - int(b.ID) })

	return replies
}

func (r *ThreadRepository) filter(ctx context.Context, keep func(domain.Entry) bool) ([]domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]domain.Entry, 0)
	for _, entry := range sortedValues(r.entries) {
		if keep(entry) {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

func (r *ThreadRepository) persistLocked(ctx context.Context) error {
	entries := sortedValues(r.entries)
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, record.EncodeEntry(entry))
	}

	if err := r.store.WriteLines(ctx, r.path, lines); err != nil {
		return fmt.Errorf("save threads: %w", err)
	}

	return nil
}
