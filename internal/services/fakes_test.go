package services

import (
	"context"
	"sync"
	"time"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
	"github.com/postoverde/cashback-backend/internal/domain/ports"
	"github.com/postoverde/cashback-backend/internal/domain/repositories"
)

// noopLogger descarta tudo; os testes de serviço não inspecionam logs
type noopLogger struct{}

func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}
func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (l noopLogger) With(args ...any) ports.Logger {
	return l
}

// fakeUnitOfWork executa o bloco diretamente, sem transação real
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(ctx context.Context) error                   { return nil }
func (fakeUnitOfWork) Rollback(ctx context.Context) error                 { return nil }
func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// fakeUserRepo guarda usuários em memória, com a mesma semântica
// condicional dos UPDATEs do repositório real
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) put(user *entities.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.ID] = &copied
}

func (r *fakeUserRepo) get(id string) *entities.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied
	}
	return nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entities.User) error {
	r.put(user)
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.get(id), nil
}

func (r *fakeUserRepo) FindByCPF(ctx context.Context, cpf string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.CPF.String() == cpf {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email.String() == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateBalanceAndPoints(ctx context.Context, id string, balance *float64, points *int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil
	}
	if balance != nil {
		u.Balance = *balance
	}
	if points != nil {
		u.Points = *points
	}
	return nil
}

func (r *fakeUserRepo) CreditPoints(ctx context.Context, id string, points int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.Points += points
	}
	return nil
}

func (r *fakeUserRepo) ConvertPoints(ctx context.Context, id string, points int, value float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.Points < points {
		return false, nil
	}
	u.Points -= points
	u.Balance += value
	return true, nil
}

func (r *fakeUserRepo) DebitBalance(ctx context.Context, id string, value float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.Balance < value {
		return false, nil
	}
	u.Balance -= value
	return true, nil
}

func (r *fakeUserRepo) CountByRole(ctx context.Context, role entities.Role) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, u := range r.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make(map[string]*entities.User)
	return nil
}

var _ repositories.UserRepository = (*fakeUserRepo)(nil)

// fakeTransactionRepo guarda transações em memória
type fakeTransactionRepo struct {
	mu  sync.Mutex
	txs []*entities.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{}
}

func (r *fakeTransactionRepo) Create(ctx context.Context, tx *entities.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *tx
	r.txs = append(r.txs, &copied)
	return nil
}

func (r *fakeTransactionRepo) FindByUser(ctx context.Context, userID string) ([]*entities.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.Transaction
	for i := len(r.txs) - 1; i >= 0; i-- {
		if r.txs[i].UserID == userID {
			copied := *r.txs[i]
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindAll(ctx context.Context) ([]*repositories.TransactionWithCustomer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*repositories.TransactionWithCustomer
	for i := len(r.txs) - 1; i >= 0; i-- {
		out = append(out, &repositories.TransactionWithCustomer{Transaction: *r.txs[i]})
	}
	return out, nil
}

func (r *fakeTransactionRepo) Stats(ctx context.Context, since time.Time) (*repositories.TransactionStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &repositories.TransactionStats{}
	customers := make(map[string]struct{})
	for _, tx := range r.txs {
		if tx.Date.Before(since) {
			continue
		}
		stats.TotalTransactions++
		stats.TotalSales += tx.Amount
		stats.TotalCashback += tx.Cashback
		stats.TotalPoints += int64(tx.Points)
		customers[tx.UserID] = struct{}{}
	}
	stats.ActiveCustomers = int64(len(customers))
	return stats, nil
}

func (r *fakeTransactionRepo) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txs = nil
	return nil
}

var _ repositories.TransactionRepository = (*fakeTransactionRepo)(nil)

// fakeCodeRepo guarda códigos em memória, com MarkUsed condicional como
// no repositório real
type fakeCodeRepo struct {
	mu    sync.Mutex
	codes map[string]*entities.CashbackCode // por ID
}

func newFakeCodeRepo() *fakeCodeRepo {
	return &fakeCodeRepo{codes: make(map[string]*entities.CashbackCode)}
}

func (r *fakeCodeRepo) get(id string) *entities.CashbackCode {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.codes[id]; ok {
		copied := *c
		return &copied
	}
	return nil
}

func (r *fakeCodeRepo) Create(ctx context.Context, code *entities.CashbackCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *code
	r.codes[code.ID] = &copied
	return nil
}

func (r *fakeCodeRepo) FindByCode(ctx context.Context, code string) (*entities.CashbackCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.codes {
		if c.Code == code {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeCodeRepo) FindRedeemable(ctx context.Context, code string, now time.Time) (*entities.CashbackCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.codes {
		if c.Code == code && !c.Used && c.ExpiresAt.After(now) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeCodeRepo) MarkUsed(ctx context.Context, id string, employeeID string, usedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.codes[id]
	if !ok || c.Used {
		return false, nil
	}
	c.MarkUsed(employeeID, usedAt)
	return true, nil
}

func (r *fakeCodeRepo) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes = make(map[string]*entities.CashbackCode)
	return nil
}

var _ repositories.CashbackCodeRepository = (*fakeCodeRepo)(nil)

// fakeConfigRepo guarda configurações em memória com Upsert idempotente
type fakeConfigRepo struct {
	mu      sync.Mutex
	configs map[string]*entities.Configuration
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{configs: make(map[string]*entities.Configuration)}
}

func (r *fakeConfigRepo) Upsert(ctx context.Context, config *entities.Configuration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.configs[config.Key]; ok {
		return nil
	}
	copied := *config
	r.configs[config.Key] = &copied
	return nil
}

func (r *fakeConfigRepo) FindByKey(ctx context.Context, key string) (*entities.Configuration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.configs[key]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeConfigRepo) FindAll(ctx context.Context) ([]*entities.Configuration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.Configuration
	for _, c := range r.configs {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeConfigRepo) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs = make(map[string]*entities.Configuration)
	return nil
}

var _ repositories.ConfigurationRepository = (*fakeConfigRepo)(nil)
