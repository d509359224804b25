package service

import (
	"context"

	"github.com/phrazzld/bank-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockClientStore mocks the store.ClientStore interface
type MockClientStore struct {
	mock.Mock
}

func (m *MockClientStore) BootstrapSchema(ctx context.Context, seed bool) error {
	args := m.Called(ctx, seed)
	return args.Error(0)
}

func (m *MockClientStore) GetByID(ctx context.Context, id int) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientStore) GetAll(ctx context.Context) ([]*domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Client), args.Error(1)
}

func (m *MockClientStore) Insert(ctx context.Context, firstName, lastName string) (*domain.Client, error) {
	args := m.Called(ctx, firstName, lastName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientStore) InsertWithID(
	ctx context.Context,
	id int,
	firstName, lastName string,
) (*domain.Client, error) {
	args := m.Called(ctx, id, firstName, lastName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientStore) Update(
	ctx context.Context,
	id int,
	firstName, lastName string,
) (*domain.Client, error) {
	args := m.Called(ctx, id, firstName, lastName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

// MockAccountStore mocks the store.AccountStore interface
type MockAccountStore struct {
	mock.Mock
}

func (m *MockAccountStore) BootstrapSchema(ctx context.Context, seed bool) error {
	args := m.Called(ctx, seed)
	return args.Error(0)
}

func (m *MockAccountStore) CreateForClient(
	ctx context.Context,
	clientID, amount int,
) (*domain.Account, error) {
	args := m.Called(ctx, clientID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountStore) ListByClient(ctx context.Context, clientID int) ([]*domain.Account, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Account), args.Error(1)
}

func (m *MockAccountStore) GetByClientAndAccount(
	ctx context.Context,
	clientID, accountID int,
) (*domain.Account, error) {
	args := m.Called(ctx, clientID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountStore) ListBetweenAmounts(
	ctx context.Context,
	clientID, low, high int,
) ([]*domain.Account, error) {
	args := m.Called(ctx, clientID, low, high)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Account), args.Error(1)
}

func (m *MockAccountStore) UpdateAmount(
	ctx context.Context,
	clientID, accountID, newAmount int,
) (*domain.Account, error) {
	args := m.Called(ctx, clientID, accountID, newAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountStore) Delete(
	ctx context.Context,
	clientID, accountID int,
) (*domain.Account, error) {
	args := m.Called(ctx, clientID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
