package service

import (
	"context"
	"sort"
	"time"

	"github.com/tasfirul8269/frooxi-backend/internal/domain"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
)

// MockUserRepository is an in-memory UserRepository
type MockUserRepository struct {
	users map[string]*domain.User
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User)}
}

func (m *MockUserRepository) AddUser(u *domain.User) {
	m.users[u.ID] = u
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return m.users[id], nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, _ := m.GetByEmail(ctx, email)
	return u != nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string, changedAt time.Time) error {
	if u, ok := m.users[id]; ok {
		u.PasswordHash = passwordHash
		u.PasswordChangedAt = &changedAt
	}
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	delete(m.users, id)
	return nil
}

func (m *MockUserRepository) List(ctx context.Context, page, limit int) ([]*domain.User, int64, error) {
	out := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (m *MockUserRepository) ListRecent(ctx context.Context, limit int) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

// MockTransactionRepository is an in-memory TransactionRepository
type MockTransactionRepository struct {
	transactions map[string]*domain.Transaction
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{transactions: make(map[string]*domain.Transaction)}
}

func (m *MockTransactionRepository) AddTransaction(tx *domain.Transaction) {
	m.transactions[tx.ID] = tx
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	m.transactions[tx.ID] = tx
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id, ownerID string) (*domain.Transaction, error) {
	tx, ok := m.transactions[id]
	if !ok || tx.CreatedBy != ownerID {
		return nil, nil
	}
	return tx, nil
}

func (m *MockTransactionRepository) List(ctx context.Context, ownerID string, filter *dto.TransactionFilter, from, to *time.Time) ([]*domain.Transaction, int64, error) {
	out, err := m.ListForSummary(ctx, ownerID, from, to)
	if err != nil {
		return nil, 0, err
	}
	if filter != nil && filter.Type != "" {
		filtered := out[:0]
		for _, tx := range out {
			if string(tx.Type) == filter.Type {
				filtered = append(filtered, tx)
			}
		}
		out = filtered
	}
	return out, int64(len(out)), nil
}

func (m *MockTransactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	m.transactions[tx.ID] = tx
	return nil
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id, ownerID string) error {
	delete(m.transactions, id)
	return nil
}

func (m *MockTransactionRepository) ListForSummary(ctx context.Context, ownerID string, from, to *time.Time) ([]*domain.Transaction, error) {
	var out []*domain.Transaction
	for _, tx := range m.transactions {
		if tx.CreatedBy != ownerID {
			continue
		}
		if from != nil && tx.Date.Before(*from) {
			continue
		}
		if to != nil && tx.Date.After(*to) {
			continue
		}
		out = append(out, tx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
