package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/api-sage/bank-account/src/internal/domain"
)

type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]*domain.Account)}
}

func (r *AccountRepository) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	number := account.AccountNumber()
	if _, ok := r.accounts[number]; ok {
		return domain.ErrAccountExists
	}
	r.accounts[number] = account
	return nil
}

func (r *AccountRepository) GetByAccountNumber(_ context.Context, accountNumber string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[strings.TrimSpace(accountNumber)]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return account, nil
}

func (r *AccountRepository) List(_ context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, account)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AccountNumber() < out[j].AccountNumber()
	})
	return out, nil
}
