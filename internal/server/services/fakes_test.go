package services

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/versa/internal/common"
	"github.com/dmitrijs2005/versa/internal/cryptox"
	"github.com/dmitrijs2005/versa/internal/dbx"
	"github.com/dmitrijs2005/versa/internal/server/models"
	"github.com/dmitrijs2005/versa/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/versa/internal/server/repositories/ledger"
	"github.com/dmitrijs2005/versa/internal/server/repositories/posts"
	"github.com/google/uuid"
)

// --- helpers ---

var cheapHash = cryptox.Params{Time: 1, Memory: 1024, Threads: 1, SaltLen: 8, KeyLen: 16}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// memStore is an in-memory stand-in for the three repositories. It applies
// the same conditional balance rule as the SQL implementation. Opened through
// newTxDB it is also transactional: one transaction runs at a time and a
// rollback restores the state captured at begin.
type memStore struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
	posts    map[string]*models.Post
	entries  []models.CreditEntry
	clock    time.Time

	txMu      sync.Mutex
	snap      *memSnapshot
	commits   int
	rollbacks int

	getByIDErr    error
	postCreateErr error
	ledgerErr     error
	postsListErr  error
	createAcctErr error
	getByEmailErr error
}

func newMemStore() *memStore {
	return &memStore{
		accounts: map[string]*models.Account{},
		posts:    map[string]*models.Post{},
		clock:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

type memSnapshot struct {
	accounts map[string]models.Account
	posts    map[string]models.Post
	entries  []models.CreditEntry
}

func (s *memStore) begin() {
	s.txMu.Lock()
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := &memSnapshot{
		accounts: make(map[string]models.Account, len(s.accounts)),
		posts:    make(map[string]models.Post, len(s.posts)),
		entries:  append([]models.CreditEntry(nil), s.entries...),
	}
	for id, a := range s.accounts {
		snap.accounts[id] = *a
	}
	for id, p := range s.posts {
		snap.posts[id] = *p
	}
	s.snap = snap
}

func (s *memStore) commit() {
	s.mu.Lock()
	s.snap = nil
	s.commits++
	s.mu.Unlock()
	s.txMu.Unlock()
}

func (s *memStore) rollback() {
	s.mu.Lock()
	snap := s.snap
	s.accounts = make(map[string]*models.Account, len(snap.accounts))
	for id, a := range snap.accounts {
		a := a
		s.accounts[id] = &a
	}
	s.posts = make(map[string]*models.Post, len(snap.posts))
	for id, p := range snap.posts {
		p := p
		s.posts[id] = &p
	}
	s.entries = snap.entries
	s.snap = nil
	s.rollbacks++
	s.mu.Unlock()
	s.txMu.Unlock()
}

func (s *memStore) txCounts() (commits, rollbacks int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits, s.rollbacks
}

// newTxDB returns a *sql.DB whose transactions begin, commit and roll back
// against store. Statements are not supported; repositories come from
// fakeRepoManager and never touch the handle.
func newTxDB(t *testing.T, store *memStore) *sql.DB {
	t.Helper()
	db := sql.OpenDB(memConnector{s: store})
	t.Cleanup(func() { db.Close() })
	return db
}

var errNoStatements = errors.New("memtx: statements are not supported")

type memConnector struct{ s *memStore }

func (c memConnector) Connect(context.Context) (driver.Conn, error) { return &memConn{s: c.s}, nil }
func (c memConnector) Driver() driver.Driver                        { return memDriver{s: c.s} }

type memDriver struct{ s *memStore }

func (d memDriver) Open(string) (driver.Conn, error) { return &memConn{s: d.s}, nil }

type memConn struct{ s *memStore }

func (c *memConn) Prepare(string) (driver.Stmt, error) { return nil, errNoStatements }
func (c *memConn) Close() error                        { return nil }

func (c *memConn) Begin() (driver.Tx, error) {
	c.s.begin()
	return &memTx{s: c.s}, nil
}

type memTx struct {
	s    *memStore
	done bool
}

func (t *memTx) Commit() error {
	if t.done {
		return sql.ErrTxDone
	}
	t.done = true
	t.s.commit()
	return nil
}

func (t *memTx) Rollback() error {
	if t.done {
		return sql.ErrTxDone
	}
	t.done = true
	t.s.rollback()
	return nil
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *memStore) addAccount(email string, credits int, role models.Role) *models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := &models.Account{ID: uuid.NewString(), Email: email, Credits: credits, Role: role, CreatedAt: s.tick()}
	s.accounts[a.ID] = a
	cp := *a
	return &cp
}

func (s *memStore) balance(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[id].Credits
}

func (s *memStore) postCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.posts)
}

// accounts.Repository

type memAccounts struct{ s *memStore }

func (r memAccounts) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createAcctErr != nil {
		return nil, s.createAcctErr
	}
	for _, x := range s.accounts {
		if x.Email == a.Email {
			return nil, common.ErrEmailTaken
		}
	}
	cp := *a
	cp.ID = uuid.NewString()
	cp.CreatedAt = s.tick()
	cp.UpdatedAt = cp.CreatedAt
	s.accounts[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r memAccounts) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getByEmailErr != nil {
		return nil, s.getByEmailErr
	}
	for _, x := range s.accounts {
		if x.Email == email {
			cp := *x
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memAccounts) GetByID(ctx context.Context, id string) (*models.Account, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getByIDErr != nil {
		return nil, s.getByIDErr
	}
	x, ok := s.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *x
	return &cp, nil
}

func (r memAccounts) GetOrCreateByEmail(ctx context.Context, a *models.Account) (*models.Account, bool, error) {
	if got, err := r.GetByEmail(ctx, a.Email); err == nil {
		return got, false, nil
	}
	created, err := r.Create(ctx, a)
	return created, err == nil, err
}

func (r memAccounts) AdjustCredits(ctx context.Context, id string, delta int) (*models.Account, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	x, ok := s.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if x.Credits+delta < 0 {
		return nil, common.ErrInsufficientCredits
	}
	x.Credits += delta
	cp := *x
	return &cp, nil
}

// posts.Repository

type memPosts struct{ s *memStore }

func (r memPosts) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.postCreateErr != nil {
		return nil, s.postCreateErr
	}
	cp := *p
	cp.ID = uuid.NewString()
	cp.CreatedAt = s.tick()
	cp.UpdatedAt = cp.CreatedAt
	s.posts[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r memPosts) GetByID(ctx context.Context, id string) (*models.Post, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *p
	return &cp, nil
}

func (r memPosts) UpdateContent(ctx context.Context, id, content string) (*models.Post, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	p.Content = content
	p.UpdatedAt = s.tick()
	cp := *p
	return &cp, nil
}

func (r memPosts) Delete(ctx context.Context, id string) (*models.Post, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(s.posts, id)
	return p, nil
}

func (r memPosts) list(match func(*models.Post) bool) ([]models.Post, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.postsListErr != nil {
		return nil, s.postsListErr
	}
	res := make([]models.Post, 0)
	for _, p := range s.posts {
		if match(p) {
			res = append(res, *p)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (r memPosts) ListByOwner(ctx context.Context, ownerID string) ([]models.Post, error) {
	return r.list(func(p *models.Post) bool { return p.OwnerID == ownerID })
}

func (r memPosts) ListAll(ctx context.Context) ([]models.Post, error) {
	return r.list(func(*models.Post) bool { return true })
}

// ledger.Repository

type memLedger struct{ s *memStore }

func (r memLedger) Append(ctx context.Context, e *models.CreditEntry) (*models.CreditEntry, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ledgerErr != nil {
		return nil, s.ledgerErr
	}
	cp := *e
	cp.ID = uuid.NewString()
	cp.CreatedAt = s.tick()
	s.entries = append(s.entries, cp)
	return &cp, nil
}

func (r memLedger) ListByAccount(ctx context.Context, accountID string) ([]models.CreditEntry, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]models.CreditEntry, 0)
	for _, e := range s.entries {
		if e.AccountID == accountID {
			res = append(res, e)
		}
	}
	return res, nil
}

type fakeRepoManager struct{ s *memStore }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Accounts(db dbx.DBTX) accounts.Repository     { return memAccounts{m.s} }
func (m *fakeRepoManager) Posts(db dbx.DBTX) posts.Repository           { return memPosts{m.s} }
func (m *fakeRepoManager) Ledger(db dbx.DBTX) ledger.Repository         { return memLedger{m.s} }

type countingRecorder struct {
	mu                sync.Mutex
	debited, refunded int
}

func (c *countingRecorder) CreditsDebited(n int) {
	c.mu.Lock()
	c.debited += n
	c.mu.Unlock()
}

func (c *countingRecorder) CreditsRefunded(n int) {
	c.mu.Lock()
	c.refunded += n
	c.mu.Unlock()
}
