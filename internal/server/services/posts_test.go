package services

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/versa/internal/common"
	"github.com/dmitrijs2005/versa/internal/logging"
	"github.com/dmitrijs2005/versa/internal/server/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postFixture struct {
	store *memStore
	rec   *countingRecorder
	svc   *PostService
}

func newPostFixture(t *testing.T) *postFixture {
	t.Helper()
	store := newMemStore()
	db := newTxDB(t, store)
	rm := &fakeRepoManager{s: store}
	rec := &countingRecorder{}
	guard := NewGuard(db, rm, newTokens(t))
	return &postFixture{
		store: store,
		rec:   rec,
		svc:   NewPostService(db, rm, guard, rec, logging.Nop()),
	}
}

func (f *postFixture) assertTx(t *testing.T, commits, rollbacks int) {
	t.Helper()
	c, r := f.store.txCounts()
	assert.Equal(t, commits, c, "commits")
	assert.Equal(t, rollbacks, r, "rollbacks")
}

func (f *postFixture) journal(t *testing.T, accountID string) []models.CreditEntry {
	t.Helper()
	entries, err := memLedger{f.store}.ListByAccount(context.Background(), accountID)
	require.NoError(t, err)
	return entries
}

func TestCreditLifecycle_CreateThenDeleteRestoresBalance(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	u := f.store.addAccount("u@example.com", 100, models.RoleUser)

	post, after, err := f.svc.Create(ctx, u, "hello", 30)
	require.NoError(t, err)
	assert.Equal(t, 70, after.Credits)
	assert.Equal(t, 70, f.store.balance(u.ID))
	assert.Equal(t, 30, post.CreditsUsed)
	assert.Equal(t, u.ID, post.OwnerID)

	u.Credits = after.Credits

	owner, err := f.svc.Delete(ctx, u, post.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, owner.ID)
	assert.Equal(t, 100, owner.Credits)
	assert.Equal(t, 100, f.store.balance(u.ID))

	// journal: debit then refund, with running balance
	entries, err := memLedger{f.store}.ListByAccount(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.CreditDebit, entries[0].Kind)
	assert.Equal(t, 30, entries[0].Amount)
	assert.Equal(t, 70, entries[0].BalanceAfter)
	assert.Equal(t, models.CreditRefund, entries[1].Kind)
	assert.Equal(t, 100, entries[1].BalanceAfter)

	assert.Equal(t, 30, f.rec.debited)
	assert.Equal(t, 30, f.rec.refunded)

	// a second delete of the same post finds nothing and refunds nothing
	_, err = f.svc.Delete(ctx, u, post.ID)
	assert.ErrorIs(t, err, common.ErrPostNotFound)
	assert.Equal(t, 100, f.store.balance(u.ID))

	f.assertTx(t, 2, 0)
}

func TestCreate_ExactBalanceIsAllowed(t *testing.T) {
	f := newPostFixture(t)
	u := f.store.addAccount("u@example.com", 10, models.RoleUser)

	_, after, err := f.svc.Create(context.Background(), u, "all in", 10)
	require.NoError(t, err)
	assert.Equal(t, 0, after.Credits)
}

func TestCreate_ZeroCost(t *testing.T) {
	f := newPostFixture(t)
	u := f.store.addAccount("u@example.com", 0, models.RoleUser)

	_, after, err := f.svc.Create(context.Background(), u, "free", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, after.Credits)
}

func TestCreate_InsufficientCreditsChangesNothing(t *testing.T) {
	f := newPostFixture(t)
	u := f.store.addAccount("u@example.com", 20, models.RoleUser)

	_, _, err := f.svc.Create(context.Background(), u, "too pricey", 30)
	assert.ErrorIs(t, err, common.ErrInsufficientCredits)
	assert.Equal(t, 20, f.store.balance(u.ID))
	assert.Equal(t, 0, f.store.postCount())
	assert.Equal(t, 0, f.rec.debited)

	// no transaction was opened
	f.assertTx(t, 0, 0)
}

func TestCreate_LostRaceRollsBack(t *testing.T) {
	f := newPostFixture(t)
	u := f.store.addAccount("u@example.com", 100, models.RoleUser)

	// another request spent the balance after u was loaded
	_, err := memAccounts{f.store}.AdjustCredits(context.Background(), u.ID, -90)
	require.NoError(t, err)

	_, _, err = f.svc.Create(context.Background(), u, "late", 30)
	assert.ErrorIs(t, err, common.ErrInsufficientCredits)
	assert.Equal(t, 10, f.store.balance(u.ID))
	assert.Equal(t, 0, f.store.postCount())
	f.assertTx(t, 0, 1)
}

func TestCreate_FailuresRollBack(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *memStore)
		want  string
	}{
		{"post insert fails", func(s *memStore) { s.postCreateErr = errBoom{} }, "error creating post: boom"},
		{"ledger append fails", func(s *memStore) { s.ledgerErr = errBoom{} }, "error writing ledger: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPostFixture(t)
			u := f.store.addAccount("u@example.com", 100, models.RoleUser)
			tt.setup(f.store)

			_, _, err := f.svc.Create(context.Background(), u, "x", 30)
			assert.ErrorContains(t, err, tt.want)

			// the debit applied before the failure is undone
			assert.Equal(t, 100, f.store.balance(u.ID))
			assert.Equal(t, 0, f.store.postCount())
			assert.Empty(t, f.journal(t, u.ID))
			assert.Equal(t, 0, f.rec.debited)
			f.assertTx(t, 0, 1)
		})
	}
}

func TestCreate_ConcurrentSpendNeverOverdraws(t *testing.T) {
	const (
		workers = 12
		cost    = 30
		start   = 100
	)
	f := newPostFixture(t)
	u := f.store.addAccount("u@example.com", start, models.RoleUser)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		denied  int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// every request holds the same stale view of the balance
			actor := *u
			_, _, err := f.svc.Create(context.Background(), &actor, "race", cost)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case assert.ErrorIs(t, err, common.ErrInsufficientCredits):
				denied++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, start/cost, created)
	assert.Equal(t, workers-start/cost, denied)
	assert.Equal(t, start/cost, f.store.postCount())
	assert.Equal(t, start-(start/cost)*cost, f.store.balance(u.ID))
	assert.GreaterOrEqual(t, f.store.balance(u.ID), 0)
	assert.Len(t, f.journal(t, u.ID), start/cost)
	f.assertTx(t, start/cost, workers-start/cost)
}

func TestCreate_UnknownAccount(t *testing.T) {
	f := newPostFixture(t)
	ghost := &models.Account{ID: uuid.NewString(), Credits: 100}

	_, _, err := f.svc.Create(context.Background(), ghost, "x", 10)
	assert.ErrorIs(t, err, common.ErrAccountNotFound)
}

func TestCreate_InvalidInput(t *testing.T) {
	f := newPostFixture(t)
	u := f.store.addAccount("u@example.com", 100, models.RoleUser)

	_, _, err := f.svc.Create(context.Background(), u, "   ", 10)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, _, err = f.svc.Create(context.Background(), u, "x", -5)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, _, err = f.svc.Create(context.Background(), nil, "x", 5)
	assert.ErrorIs(t, err, common.ErrAccountNotFound)

	assert.Equal(t, 100, f.store.balance(u.ID))
}

func TestEdit(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	owner := f.store.addAccount("o@example.com", 100, models.RoleUser)
	stranger := f.store.addAccount("s@example.com", 100, models.RoleUser)
	admin := f.store.addAccount("a@example.com", 100, models.RoleAdmin)

	post, _, err := f.svc.Create(ctx, owner, "v1", 30)
	require.NoError(t, err)

	edited, err := f.svc.Edit(ctx, owner, post.ID, "v2")
	require.NoError(t, err)
	assert.Equal(t, "v2", edited.Content)
	assert.Equal(t, 30, edited.CreditsUsed)
	assert.True(t, edited.UpdatedAt.After(post.UpdatedAt))

	edited, err = f.svc.Edit(ctx, admin, post.ID, "v3 by admin")
	require.NoError(t, err)
	assert.Equal(t, "v3 by admin", edited.Content)

	_, err = f.svc.Edit(ctx, stranger, post.ID, "hijack")
	assert.ErrorIs(t, err, common.ErrForbidden)

	_, err = f.svc.Edit(ctx, owner, uuid.NewString(), "x")
	assert.ErrorIs(t, err, common.ErrPostNotFound)

	_, err = f.svc.Edit(ctx, owner, "not-a-uuid", "x")
	assert.ErrorIs(t, err, common.ErrPostNotFound)

	_, err = f.svc.Edit(ctx, owner, post.ID, "")
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	// edits never touch balances
	assert.Equal(t, 70, f.store.balance(owner.ID))
	assert.Equal(t, 100, f.store.balance(admin.ID))
}

func TestDelete_ByAdminRefundsOwner(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	owner := f.store.addAccount("o@example.com", 100, models.RoleUser)
	admin := f.store.addAccount("a@example.com", 50, models.RoleAdmin)

	post, _, err := f.svc.Create(ctx, owner, "x", 30)
	require.NoError(t, err)

	refunded, err := f.svc.Delete(ctx, admin, post.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, refunded.ID)
	assert.Equal(t, 100, f.store.balance(owner.ID))
	assert.Equal(t, 50, f.store.balance(admin.ID))
}

func TestDelete_ForbiddenForStranger(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	owner := f.store.addAccount("o@example.com", 100, models.RoleUser)
	stranger := f.store.addAccount("s@example.com", 100, models.RoleUser)

	post, _, err := f.svc.Create(ctx, owner, "x", 30)
	require.NoError(t, err)

	_, err = f.svc.Delete(ctx, stranger, post.ID)
	assert.ErrorIs(t, err, common.ErrForbidden)
	assert.Equal(t, 1, f.store.postCount())
	assert.Equal(t, 70, f.store.balance(owner.ID))
	assert.Equal(t, 100, f.store.balance(stranger.ID))
}

func TestDelete_LedgerFailureRollsBack(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()
	owner := f.store.addAccount("o@example.com", 100, models.RoleUser)

	post, _, err := f.svc.Create(ctx, owner, "x", 30)
	require.NoError(t, err)

	f.store.ledgerErr = errBoom{}
	_, err = f.svc.Delete(ctx, owner, post.ID)
	assert.ErrorContains(t, err, "error writing ledger: boom")

	// neither the refund nor the removal survives
	assert.Equal(t, 70, f.store.balance(owner.ID))
	assert.Equal(t, 1, f.store.postCount())
	kept, err := memPosts{f.store}.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, kept.CreditsUsed)
	assert.Len(t, f.journal(t, owner.ID), 1)
	assert.Equal(t, 0, f.rec.refunded)
	f.assertTx(t, 1, 1)

	// once the journal recovers the same post can be deleted and refunded
	f.store.ledgerErr = nil
	refunded, err := f.svc.Delete(ctx, owner, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, refunded.Credits)
	assert.Equal(t, 0, f.store.postCount())
}

func TestListMineAndAll(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	alice := f.store.addAccount("alice@example.com", 100, models.RoleUser)
	bob := f.store.addAccount("bob@example.com", 100, models.RoleUser)
	admin := f.store.addAccount("admin@example.com", 100, models.RoleAdmin)

	a1, _, err := f.svc.Create(ctx, alice, "a1", 10)
	require.NoError(t, err)
	_, _, err = f.svc.Create(ctx, bob, "b1", 10)
	require.NoError(t, err)
	a2, _, err := f.svc.Create(ctx, alice, "a2", 10)
	require.NoError(t, err)

	mine, err := f.svc.ListMine(ctx, alice)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, a2.ID, mine[0].ID, "newest first")
	assert.Equal(t, a1.ID, mine[1].ID)

	all, err := f.svc.ListAll(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = f.svc.ListAll(ctx, alice)
	assert.ErrorIs(t, err, common.ErrForbidden)

	_, err = f.svc.ListMine(ctx, nil)
	assert.ErrorIs(t, err, common.ErrAccountNotFound)

	f.store.postsListErr = errBoom{}
	_, err = f.svc.ListMine(ctx, alice)
	assert.ErrorContains(t, err, "error listing posts: boom")
}
