package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Krittamet-rrt/walletapi/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// The in-memory stores below back full-stack tests without PostgreSQL.
// A single lockTransactor serializes every "transaction", standing in for
// the row-level locks the real store takes with SELECT ... FOR UPDATE, so
// concurrent purchases see the same one-at-a-time semantics as production.

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[int64]*domain.Wallet
	nextID  int64
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[int64]*domain.Wallet)}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	w.ID = r.nextID
	w.CreatedAt = time.Now().UTC()
	w.UpdatedAt = w.CreatedAt
	cp := *w
	r.wallets[w.ID] = &cp
	return nil
}

func (r *inMemoryWalletRepo) GetByID(ctx context.Context, id int64) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Wallet, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryWalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, id int64, balance decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[id]
	if !ok {
		return fmt.Errorf("wallet not found: %d", id)
	}
	w.Balance = balance
	w.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryWalletRepo) Update(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wallets[w.ID]; !ok {
		return fmt.Errorf("wallet not found: %d", w.ID)
	}
	w.UpdatedAt = time.Now().UTC()
	cp := *w
	r.wallets[w.ID] = &cp
	return nil
}

func (r *inMemoryWalletRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wallets[id]; !ok {
		return fmt.Errorf("wallet not found: %d", id)
	}
	delete(r.wallets, id)
	return nil
}

// --- In-Memory Merchant Repo ---

type inMemoryMerchantRepo struct {
	mu        sync.RWMutex
	merchants map[int64]*domain.Merchant
	items     *inMemoryItemRepo // delete cascades to items
	nextID    int64
}

func newInMemoryMerchantRepo(items *inMemoryItemRepo) *inMemoryMerchantRepo {
	return &inMemoryMerchantRepo{merchants: make(map[int64]*domain.Merchant), items: items}
}

func (r *inMemoryMerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	m.ID = r.nextID
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = m.CreatedAt
	cp := *m
	r.merchants[m.ID] = &cp
	return nil
}

func (r *inMemoryMerchantRepo) List(ctx context.Context) ([]domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Merchant, 0, len(r.merchants))
	for i := int64(1); i <= r.nextID; i++ {
		if m, ok := r.merchants[i]; ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *inMemoryMerchantRepo) GetByID(ctx context.Context, id int64) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.merchants[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *inMemoryMerchantRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Merchant, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryMerchantRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, id int64, balance decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.merchants[id]
	if !ok {
		return fmt.Errorf("merchant not found: %d", id)
	}
	m.Balance = balance
	m.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryMerchantRepo) Update(ctx context.Context, m *domain.Merchant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.merchants[m.ID]; !ok {
		return fmt.Errorf("merchant not found: %d", m.ID)
	}
	m.UpdatedAt = time.Now().UTC()
	cp := *m
	r.merchants[m.ID] = &cp
	return nil
}

func (r *inMemoryMerchantRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.merchants[id]; !ok {
		return fmt.Errorf("merchant not found: %d", id)
	}
	delete(r.merchants, id)
	r.items.deleteByMerchant(id)
	return nil
}

// --- In-Memory Item Repo ---

type inMemoryItemRepo struct {
	mu     sync.RWMutex
	items  map[int64]*domain.Item
	nextID int64
}

func newInMemoryItemRepo() *inMemoryItemRepo {
	return &inMemoryItemRepo{items: make(map[int64]*domain.Item)}
}

func (r *inMemoryItemRepo) Create(ctx context.Context, i *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	i.ID = r.nextID
	i.CreatedAt = time.Now().UTC()
	i.UpdatedAt = i.CreatedAt
	cp := *i
	r.items[i.ID] = &cp
	return nil
}

func (r *inMemoryItemRepo) List(ctx context.Context) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Item, 0, len(r.items))
	for i := int64(1); i <= r.nextID; i++ {
		if it, ok := r.items[i]; ok {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *inMemoryItemRepo) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *inMemoryItemRepo) Update(ctx context.Context, i *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[i.ID]; !ok {
		return fmt.Errorf("item not found: %d", i.ID)
	}
	i.UpdatedAt = time.Now().UTC()
	cp := *i
	r.items[i.ID] = &cp
	return nil
}

func (r *inMemoryItemRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("item not found: %d", id)
	}
	delete(r.items, id)
	return nil
}

func (r *inMemoryItemRepo) deleteByMerchant(merchantID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, i := range r.items {
		if i.MerchantID == merchantID {
			delete(r.items, id)
		}
	}
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction
	nextID       int64
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	t.ID = r.nextID
	cp := *t
	r.transactions = append(r.transactions, &cp)
	return nil
}

func (r *inMemoryTransactionRepo) List(ctx context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Transaction, 0, len(r.transactions))
	// Newest first, matching the store's ordering.
	for i := len(r.transactions) - 1; i >= 0; i-- {
		out = append(out, *r.transactions[i])
	}
	return out, nil
}

func (r *inMemoryTransactionRepo) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.transactions {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu     sync.RWMutex
	users  map[int64]*domain.User
	nextID int64
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[int64]*domain.User)}
}

func (r *inMemoryUserRepo) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return fmt.Errorf("username already exists")
		}
	}
	r.nextID++
	u.ID = r.nextID
	u.RegisterDate = time.Now().UTC()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *inMemoryUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryUserRepo) Update(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return fmt.Errorf("user not found: %d", u.ID)
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

// --- In-Memory Transactor ---

// lockTransactor serializes transactions behind one mutex. Holding the lock
// from Begin until Commit/Rollback mirrors the wallet row lock the real
// purchase path takes, so a second concurrent purchase always observes the
// first one's committed balance.
type lockTransactor struct {
	mu sync.Mutex
}

func newLockTransactor() *lockTransactor {
	return &lockTransactor{}
}

func (t *lockTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &lockTx{release: t.mu.Unlock}, nil
}

// lockTx is a pgx.Tx that releases the transactor lock exactly once,
// whether through Commit or the deferred Rollback.
type lockTx struct {
	release func()
	done    bool
	mu      sync.Mutex
}

func (t *lockTx) finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.done {
		t.done = true
		t.release()
	}
}

func (t *lockTx) Commit(ctx context.Context) error   { t.finish(); return nil }
func (t *lockTx) Rollback(ctx context.Context) error { t.finish(); return nil }

func (t *lockTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *lockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *lockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *lockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *lockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *lockTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *lockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *lockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *lockTx) Conn() *pgx.Conn { return nil }
