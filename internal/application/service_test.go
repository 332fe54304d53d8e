package application

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/bnema/askme/internal/adapters/repo/flatfile"
	"github.com/bnema/askme/internal/adapters/store/linefile"
	"github.com/bnema/askme/internal/domain"
	"github.com/bnema/askme/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	ctx := context.Background()
	dir := t.TempDir()
	store := linefile.NewStore()

	accounts, err := flatfile.LoadAccountRepository(ctx, store, filepath.Join(dir, "accounts.txt"), nil)
	require.NoError(t, err)
	threads, err := flatfile.LoadThreadRepository(ctx, store, filepath.Join(dir, "threads.txt"), accounts, nil)
	require.NoError(t, err)

	return NewService(accounts, threads, nil)
}

func registerPair(t *testing.T, service *Service) (domain.Account, domain.Account) {
	t.Helper()

	ctx := context.Background()
	admin, err := service.Register(ctx, RegisterCommand{Name: "Ada", Username: "ada", Secret: "pw1", Email: "ada@example.com", Admin: true})
	require.NoError(t, err)
	member, err := service.Register(ctx, RegisterCommand{Name: "Bo", Username: "bo", Secret: "pw2", Email: "bo@example.com", AllowAnonymous: true})
	require.NoError(t, err)

	return admin, member
}

func TestServiceRegisterBootstrapsFirstAdmin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := newTestService(t)
	admin, member := registerPair(t, service)

	assert.Equal(t, domain.AccountID(1), admin.ID)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.Equal(t, domain.AccountID(2), member.ID)
	assert.Equal(t, domain.RoleMember, member.Role)

	_, err := service.Register(ctx, RegisterCommand{Name: "Cy", Username: "cy", Secret: "pw3", Admin: true, Actor: &member})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = service.Register(ctx, RegisterCommand{Name: "Cy", Username: "cy", Secret: "pw3", Admin: true})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	second, err := service.Register(ctx, RegisterCommand{Name: "Di", Username: "di", Secret: "pw4", Admin: true, Actor: &admin})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, second.Role)
}

func TestServiceLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := newTestService(t)
	_, member := registerPair(t, service)

	account, err := service.Login(ctx, member.ID, "pw2")
	require.NoError(t, err)
	assert.Equal(t, member, account)

	_, err = service.Login(ctx, member.ID, "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestServiceUpdateProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := newTestService(t)
	admin, member := registerPair(t, service)

	closed := false
	email := "bo@new.example.com"
	updated, err := service.UpdateProfile(ctx, member, UpdateProfileCommand{ID: member.ID, Email: &email, AllowAnonymous: &closed})
	require.NoError(t, err)
	assert.Equal(t, "Bo", updated.Name)
	assert.Equal(t, email, updated.Email)
	assert.False(t, updated.AllowAnonymous)

	name := "Ada L."
	_, err = service.UpdateProfile(ctx, member, UpdateProfileCommand{ID: admin.ID, Name: &name})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = service.UpdateProfile(ctx, admin, UpdateProfileCommand{ID: member.ID, Name: &name})
	require.NoError(t, err)

	_, err = service.UpdateProfile(ctx, admin, UpdateProfileCommand{ID: 42, Name: &name})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestServiceAccountAdministration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := newTestService(t)
	admin, member := registerPair(t, service)

	_, err := service.ListAccounts(ctx, member)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	accounts, err := service.ListAccounts(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)

	_, err = service.Ask(ctx, member, AskCommand{RecipientID: admin.ID, Question: "still here?"})
	require.NoError(t, err)

	assert.ErrorIs(t, service.RemoveAccount(ctx, member, admin.ID), domain.ErrPermissionDenied)
	require.NoError(t, service.RemoveAccount(ctx, admin, member.ID))

	directory, err := service.Directory(ctx)
	require.NoError(t, err)
	_, ok := directory.Username(member.ID)
	assert.False(t, ok)

	entries, err := service.QuestionsTo(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestServiceAskAnswerDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := newTestService(t)
	admin, member := registerPair(t, service)

	entry, err := service.Ask(ctx, member, AskCommand{RecipientID: admin.ID, Question: "Q1"})
	require.NoError(t, err)
	assert.Equal(t, domain.NoParent, entry.ParentID)
	assert.Equal(t, member.ID, entry.AuthorID)

	_, err = service.Answer(ctx, member, AnswerCommand{EntryID: entry.ID, Text: "self answer"})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	answered, err := service.Answer(ctx, admin, AnswerCommand{EntryID: entry.ID, Text: "A1"})
	require.NoError(t, err)
	assert.Equal(t, "A1", answered.Answer)

	replyEntry, err := service.Ask(ctx, admin, AskCommand{RecipientID: member.ID, ParentID: entry.ID, Anonymous: true, Question: "follow-up"})
	require.NoError(t, err)

	thread, err := service.Thread(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, thread.Parent.ID)
	require.Len(t, thread.Replies, 1)
	assert.Equal(t, replyEntry.ID, thread.Replies[0].ID)

	from, err := service.QuestionsFrom(ctx, member)
	require.NoError(t, err)
	assert.Len(t, from, 1)

	result, err := service.DeleteEntry(ctx, member, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.EntryID{entry.ID}, result.Deleted)
	assert.Equal(t, []domain.EntryID{replyEntry.ID}, result.Skipped)

	_, err = service.Thread(ctx, entry.ID)
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)

	_, err = service.Answer(ctx, admin, AnswerCommand{EntryID: entry.ID, Text: "late"})
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestServiceAskAnonymousGate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := newTestService(t)
	admin, member := registerPair(t, service)

	_, err := service.Ask(ctx, member, AskCommand{RecipientID: admin.ID, Anonymous: true, Question: "who am I?"})
	assert.ErrorIs(t, err, domain.ErrAnonymousNotAllowed)

	_, err = service.Ask(ctx, admin, AskCommand{RecipientID: member.ID, Anonymous: true, Question: "guess"})
	require.NoError(t, err)

	_, err = service.Ask(ctx, admin, AskCommand{RecipientID: 99, Question: "anyone?"})
	assert.ErrorIs(t, err, domain.ErrRecipientNotFound)
}

func TestServiceFeed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := newTestService(t)
	admin, member := registerPair(t, service)

	_, err := service.Ask(ctx, member, AskCommand{RecipientID: admin.ID, Question: "Q"})
	require.NoError(t, err)

	_, err = service.Feed(ctx, member)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	feed, err := service.Feed(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, feed, 1)
}

func TestServiceRegisterSurfacesWriteFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := mocks.NewMockLineStore(t)
	store.EXPECT().ReadLines(mock.Anything, mock.Anything).Return([]string{}, nil)
	store.EXPECT().WriteLines(mock.Anything, "accounts.txt", mock.Anything).Return(errors.New("disk full"))

	accounts, err := flatfile.LoadAccountRepository(ctx, store, "accounts.txt", nil)
	require.NoError(t, err)
	threads, err := flatfile.LoadThreadRepository(ctx, store, "threads.txt", accounts, nil)
	require.NoError(t, err)

	service := NewService(accounts, threads, nil)
	_, err = service.Register(ctx, RegisterCommand{Name: "Ada", Username: "ada", Secret: "pw"})
	assert.ErrorContains(t, err, "register account: save accounts: disk full")
}
