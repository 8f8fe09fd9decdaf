package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/versa/internal/common"
	"github.com/dmitrijs2005/versa/internal/cryptox"
	"github.com/dmitrijs2005/versa/internal/logging"
	"github.com/dmitrijs2005/versa/internal/server/auth"
	"github.com/dmitrijs2005/versa/internal/server/config"
	"github.com/dmitrijs2005/versa/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokens(t *testing.T) *auth.TokenService {
	t.Helper()
	ts, err := auth.NewTokenService([]byte("k"), time.Hour)
	require.NoError(t, err)
	return ts
}

func newAccountService(t *testing.T, store *memStore) *AccountService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	cfg := &config.Config{DefaultCredits: 100}
	return NewAccountService(db, &fakeRepoManager{s: store}, newTokens(t), cfg, logging.Nop(), WithPasswordParams(cheapHash))
}

type failingIssuer struct{}

func (failingIssuer) Issue(string) (string, error) { return "", errBoom{} }

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
}

func TestRegister_Success(t *testing.T) {
	store := newMemStore()
	s := newAccountService(t, store)

	res, err := s.Register(context.Background(), " Alice@Example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	acc := res.Account
	assert.Equal(t, "alice@example.com", acc.Email)
	assert.Equal(t, 100, acc.Credits)
	assert.Equal(t, models.RoleUser, acc.Role)
	require.NotNil(t, acc.PasswordHash)
	assert.NotEqual(t, "password123", *acc.PasswordHash)

	ok, err := cryptox.VerifyPassword(*acc.PasswordHash, []byte("password123"))
	require.NoError(t, err)
	assert.True(t, ok)

	sub, err := newTokens(t).Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, acc.ID, sub)
}

func TestRegister_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	s := newAccountService(t, newMemStore())

	_, err := s.Register(context.Background(), "bob@example.com", "password123")
	require.NoError(t, err)

	_, err = s.Register(context.Background(), "BOB@example.com", "another-password")
	assert.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestRegister_InvalidInput(t *testing.T) {
	s := newAccountService(t, newMemStore())

	_, err := s.Register(context.Background(), "  ", "password123")
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = s.Register(context.Background(), "a@b.c", "")
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = s.Register(context.Background(), "a@b.c", "1234567")
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = s.Register(context.Background(), "a@b.c", "12345678")
	assert.NoError(t, err)
}

func TestRegister_StoreAndTokenErrors(t *testing.T) {
	store := newMemStore()
	store.createAcctErr = errBoom{}
	s := newAccountService(t, store)

	_, err := s.Register(context.Background(), "a@b.c", "password123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error creating account: boom")

	store.createAcctErr = nil
	s.tokens = failingIssuer{}
	_, err = s.Register(context.Background(), "a@b.c", "password123")
	assert.ErrorContains(t, err, "error issuing token")
}

func TestCreateAdmin(t *testing.T) {
	s := newAccountService(t, newMemStore())

	acc, err := s.CreateAdmin(context.Background(), "root@example.com", "password123")
	require.NoError(t, err)
	assert.True(t, acc.IsAdmin())

	_, err = s.CreateAdmin(context.Background(), "root@example.com", "password123")
	assert.ErrorIs(t, err, common.ErrEmailTaken)

	// the bootstrap tool gets the same floor as public registration
	_, err = s.CreateAdmin(context.Background(), "ops@example.com", "short")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestLogin_Flows(t *testing.T) {
	store := newMemStore()
	s := newAccountService(t, store)
	ctx := context.Background()

	reg, err := s.Register(ctx, "carol@example.com", "password123")
	require.NoError(t, err)

	// success, any email casing
	res, err := s.Login(ctx, "CAROL@example.com ", "password123")
	require.NoError(t, err)
	assert.Equal(t, reg.Account.ID, res.Account.ID)
	assert.NotEmpty(t, res.Token)

	// wrong password
	_, err = s.Login(ctx, "carol@example.com", "wrong-password")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	// unknown email gets the same error
	_, err = s.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	// identity-provider-only account
	ext := store.addAccount("ext@example.com", 100, models.RoleUser)
	require.Nil(t, ext.PasswordHash)
	_, err = s.Login(ctx, "ext@example.com", "anything")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	// corrupt stored hash
	bad := "not-a-hash"
	store.mu.Lock()
	store.accounts[ext.ID].PasswordHash = &bad
	store.mu.Unlock()
	_, err = s.Login(ctx, "ext@example.com", "anything")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_StoreError(t *testing.T) {
	store := newMemStore()
	store.getByEmailErr = errBoom{}
	s := newAccountService(t, store)

	_, err := s.Login(context.Background(), "a@b.c", "x")
	require.Error(t, err)
	assert.False(t, errors.Is(err, common.ErrInvalidCredentials))
	assert.Contains(t, err.Error(), "boom")
}

func TestLoginExternal(t *testing.T) {
	store := newMemStore()
	s := newAccountService(t, store)
	ctx := context.Background()

	res, created, err := s.LoginExternal(ctx, "Dana@Example.com")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "dana@example.com", res.Account.Email)
	assert.Equal(t, 100, res.Account.Credits)
	assert.Nil(t, res.Account.PasswordHash)
	assert.NotEmpty(t, res.Token)

	again, created, err := s.LoginExternal(ctx, "dana@example.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, res.Account.ID, again.Account.ID)

	// an existing password account is reused, not duplicated
	reg, err := s.Register(ctx, "erin@example.com", "password123")
	require.NoError(t, err)
	ext, created, err := s.LoginExternal(ctx, "erin@example.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, reg.Account.ID, ext.Account.ID)

	_, _, err = s.LoginExternal(ctx, " ")
	assert.ErrorIs(t, err, common.ErrUpstreamIdentity)
}

func TestMe(t *testing.T) {
	s := newAccountService(t, newMemStore())

	acc := &models.Account{ID: "x"}
	got, err := s.Me(context.Background(), acc)
	require.NoError(t, err)
	assert.Same(t, acc, got)

	_, err = s.Me(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrAccountNotFound)
}

func TestCredits_JournalOfCaller(t *testing.T) {
	store := newMemStore()
	s := newAccountService(t, store)
	ctx := context.Background()

	alice := store.addAccount("alice@example.com", 100, models.RoleUser)
	bob := store.addAccount("bob@example.com", 100, models.RoleUser)
	ledger := memLedger{store}
	_, err := ledger.Append(ctx, &models.CreditEntry{AccountID: alice.ID, PostID: "p-1", Kind: models.CreditDebit, Amount: 30, BalanceAfter: 70})
	require.NoError(t, err)
	_, err = ledger.Append(ctx, &models.CreditEntry{AccountID: bob.ID, PostID: "p-2", Kind: models.CreditDebit, Amount: 10, BalanceAfter: 90})
	require.NoError(t, err)
	_, err = ledger.Append(ctx, &models.CreditEntry{AccountID: alice.ID, PostID: "p-1", Kind: models.CreditRefund, Amount: 30, BalanceAfter: 100})
	require.NoError(t, err)

	entries, err := s.Credits(ctx, alice)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.CreditDebit, entries[0].Kind)
	assert.Equal(t, models.CreditRefund, entries[1].Kind)
	assert.Equal(t, 100, entries[1].BalanceAfter)

	fresh := store.addAccount("carol@example.com", 100, models.RoleUser)
	entries, err = s.Credits(ctx, fresh)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	_, err = s.Credits(ctx, nil)
	assert.ErrorIs(t, err, common.ErrAccountNotFound)
}
