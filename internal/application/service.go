package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/askme/internal/domain"
	"github.com/bnema/askme/internal/ports"
)

type Service struct {
	accounts ports.AccountRepository
	threads  ports.ThreadRepository
	logger   *slog.Logger
}

func NewService(accounts ports.AccountRepository, threads ports.ThreadRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Service{
		accounts: accounts,
		threads:  threads,
		logger:   logger,
	}
}

func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (domain.Account, error) {
	role := domain.RoleMember
	if cmd.Admin {
		allowed, err := s.canGrantAdmin(ctx, cmd.Actor)
		if err != nil {
			return domain.Account{}, fmt.Errorf("register account: %w", err)
		}
		if !allowed {
			return domain.Account{}, fmt.Errorf("register admin account: %w", domain.ErrPermissionDenied)
		}
		role = domain.RoleAdmin
	}

	account := domain.Account{
		ID:             s.accounts.NextID(),
		Name:           cmd.Name,
		Username:       cmd.Username,
		Secret:         cmd.Secret,
		Email:          cmd.Email,
		AllowAnonymous: cmd.AllowAnonymous,
		Role:           role,
	}

	if err := s.accounts.Add(ctx, account); err != nil {
		return domain.Account{}, fmt.Errorf("register account: %w", err)
	}

	s.logger.InfoContext(ctx, "account registered", "id", account.ID, "role", account.Role.String())

	return account, nil
}

func (s *Service) canGrantAdmin(ctx context.Context, actor *domain.Account) (bool, error) {
	if actor != nil && actor.IsAdmin() {
		return true, nil
	}

	existing, err := s.accounts.List(ctx)
	if err != nil {
		return false, fmt.Errorf("list accounts: %w", err)
	}

	return len(existing) == 0, nil
}

func (s *Service) Login(ctx context.Context, id domain.AccountID, secret string) (domain.Account, error) {
	account, err := s.accounts.Authenticate(ctx, id, secret)
	if err != nil {
		return domain.Account{}, fmt.Errorf("login as account %d: %w", id, err)
	}

	return account, nil
}

func (s *Service) UpdateProfile(ctx context.Context, actor domain.Account, cmd UpdateProfileCommand) (domain.Account, error) {
	if !domain.CanManageAccount(cmd.ID, actor) {
		return domain.Account{}, fmt.Errorf("update account %d: %w", cmd.ID, domain.ErrPermissionDenied)
	}

	account, err := s.accounts.GetByID(ctx, cmd.ID)
	if err != nil {
		return domain.Account{}, fmt.Errorf("get account by id: %w", err)
	}

	if cmd.Name != nil {
		account.Name = *cmd.Name
	}
	if cmd.Email != nil {
		account.Email = *cmd.Email
	}
	if cmd.Secret != nil {
		account.Secret = *cmd.Secret
	}
	if cmd.AllowAnonymous != nil {
		account.AllowAnonymous = *cmd.AllowAnonymous
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		return domain.Account{}, fmt.Errorf("save account profile: %w", err)
	}

	return account, nil
}

// RemoveAccount deletes the account record only. Entries it authored or
// received stay in the thread store.
func (s *Service) RemoveAccount(ctx context.Context, actor domain.Account, id domain.AccountID) error {
	if !domain.CanRemoveAccount(actor) {
		return fmt.Errorf("remove account %d: %w", id, domain.ErrPermissionDenied)
	}

	if err := s.accounts.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove account: %w", err)
	}

	s.logger.InfoContext(ctx, "account removed", "id", id, "by", actor.ID)

	return nil
}

func (s *Service) ListAccounts(ctx context.Context, actor domain.Account) ([]domain.Account, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("list accounts: %w", domain.ErrPermissionDenied)
	}

	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	return accounts, nil
}

func (s *Service) Directory(ctx context.Context) (Directory, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	directory := make(Directory, len(accounts))
	for _, account := range accounts {
		directory[account.ID] = account.Username
	}

	return directory, nil
}

func (s *Service) Ask(ctx context.Context, actor domain.Account, cmd AskCommand) (domain.Entry, error) {
	parentID := cmd.ParentID
	if parentID == 0 {
		parentID = domain.NoParent
	}

	entry := domain.Entry{
		ID:          s.threads.NextID(),
		ParentID:    parentID,
		AuthorID:    actor.ID,
		RecipientID: cmd.RecipientID,
		Anonymous:   cmd.Anonymous,
		Question:    cmd.Question,
	}

	if err := s.threads.Create(ctx, entry); err != nil {
		return domain.Entry{}, fmt.Errorf("ask question: %w", err)
	}

	s.logger.DebugContext(ctx, "question created", "id", entry.ID, "parent", entry.ParentID, "recipient", entry.RecipientID)

	return entry, nil
}

func (s *Service) Answer(ctx context.Context, actor domain.Account, cmd AnswerCommand) (domain.Entry, error) {
	entry, err := s.threads.Get(ctx, cmd.EntryID)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("get entry by id: %w", err)
	}
	if !domain.CanAnswer(entry, actor) {
		return domain.Entry{}, fmt.Errorf("answer entry %d as account %d: %w", entry.ID, actor.ID, domain.ErrPermissionDenied)
	}

	if entry.IsAnswered() {
		s.logger.InfoContext(ctx, "replacing existing answer", "id", entry.ID)
	}

	if err := s.threads.SetAnswer(ctx, entry.ID, cmd.Text); err != nil {
		return domain.Entry{}, fmt.Errorf("save answer: %w", err)
	}

	entry.Answer = cmd.Text

	return entry, nil
}

func (s *Service) DeleteEntry(ctx context.Context, actor domain.Account, id domain.EntryID) (ports.DeleteResult, error) {
	result, err := s.threads.Delete(ctx, id, actor)
	if err != nil {
		return result, fmt.Errorf("delete entry: %w", err)
	}

	return result, nil
}

func (s *Service) QuestionsTo(ctx context.Context, actor domain.Account) ([]domain.Entry, error) {
	entries, err := s.threads.ListTo(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list questions to account %d: %w", actor.ID, err)
	}

	return entries, nil
}

func (s *Service) QuestionsFrom(ctx context.Context, actor domain.Account) ([]domain.Entry, error) {
	entries, err := s.threads.ListFrom(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list questions from account %d: %w", actor.ID, err)
	}

	return entries, nil
}

// Thread returns parentID with its direct replies. The parent must exist.
func (s *Service) Thread(ctx context.Context, parentID domain.EntryID) (ThreadView, error) {
	parent, err := s.threads.Get(ctx, parentID)
	if err != nil {
		return ThreadView{}, fmt.Errorf("get thread parent: %w", err)
	}

	replies, err := s.threads.ListReplies(ctx, parentID)
	if err != nil {
		return ThreadView{}, fmt.Errorf("list replies: %w", err)
	}

	return ThreadView{Parent: parent, Replies: replies}, nil
}

func (s *Service) Feed(ctx context.Context, actor domain.Account) ([]domain.Entry, error) {
	entries, err := s.threads.Feed(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}

	return entries, nil
}
