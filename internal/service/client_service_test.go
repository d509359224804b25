package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/bank-api/internal/domain"
	"github.com/phrazzld/bank-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClientService(t *testing.T) (ClientService, *MockClientStore) {
	t.Helper()

	clients := new(MockClientStore)
	svc, err := NewClientService(clients, testLogger())
	require.NoError(t, err)

	return svc, clients
}

func TestNewClientService(t *testing.T) {
	_, err := NewClientService(nil, testLogger())
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = NewClientService(new(MockClientStore), nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClientService_GetClient(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, clients := newTestClientService(t)
		want := &domain.Client{ID: 1, FirstName: "George", LastName: "Lucas"}
		clients.On("GetByID", ctx, 1).Return(want, nil)

		got, err := svc.GetClient(ctx, " 1 ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
		clients.AssertExpectations(t)
	})

	t.Run("not found carries the requested id", func(t *testing.T) {
		svc, clients := newTestClientService(t)
		clients.On("GetByID", ctx, 5).Return(nil, fmt.Errorf("%w: id 5", store.ErrClientNotFound))

		_, err := svc.GetClient(ctx, "5")
		assert.Equal(t, KindClientNotFound, KindOf(err))
		assert.Equal(t, "The client with the ID 5 was not found", MessageOf(err))
	})

	t.Run("bad id never reaches the store", func(t *testing.T) {
		svc, clients := newTestClientService(t)

		_, err := svc.GetClient(ctx, "five")
		assert.Equal(t, KindBadParameter, KindOf(err))
		assert.Equal(t, "Client ID must be int value. User provided five", MessageOf(err))
		clients.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("id outside INTEGER range never reaches the store", func(t *testing.T) {
		svc, clients := newTestClientService(t)

		_, err := svc.GetClient(ctx, "9999999999")
		assert.Equal(t, KindBadParameter, KindOf(err))
		assert.Equal(t, "Client ID must be int value. User provided 9999999999", MessageOf(err))
		clients.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("blank id", func(t *testing.T) {
		svc, _ := newTestClientService(t)

		_, err := svc.GetClient(ctx, "  ")
		assert.Equal(t, KindEmptyParameter, KindOf(err))
	})

	t.Run("store fault is hidden behind a stable message", func(t *testing.T) {
		svc, clients := newTestClientService(t)
		clients.On("GetByID", ctx, 1).
			Return(nil, fmt.Errorf("%w: dial tcp 10.0.0.5:5432: connection refused", store.ErrUnavailable))

		_, err := svc.GetClient(ctx, "1")
		assert.Equal(t, KindDatabaseUnavailable, KindOf(err))
		assert.Equal(t, "Could not connect to the database", MessageOf(err))
	})
}

func TestClientService_GetAllClients(t *testing.T) {
	ctx := context.Background()
	svc, clients := newTestClientService(t)

	all := []*domain.Client{
		{ID: 1, FirstName: "George", LastName: "Lucas"},
		{ID: 2, FirstName: "Johnny", LastName: "Depp"},
	}
	clients.On("GetAll", ctx).Return(all, nil)

	got, err := svc.GetAllClients(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestClientService_AddClient(t *testing.T) {
	ctx := context.Background()

	t.Run("names are trimmed before insert", func(t *testing.T) {
		svc, clients := newTestClientService(t)
		clients.On("Insert", ctx, "Owen", "Wilson").
			Return(&domain.Client{ID: 3, FirstName: "Owen", LastName: "Wilson"}, nil)

		msg, err := svc.AddClient(ctx, "  Owen ", "Wilson  ")
		require.NoError(t, err)
		assert.Equal(t, "Client Owen Wilson with ID of 3 was added successfully.", msg)
		clients.AssertExpectations(t)
	})

	t.Run("blank and whitespace names give the same error", func(t *testing.T) {
		svc, clients := newTestClientService(t)

		_, errEmpty := svc.AddClient(ctx, "", "Wilson")
		_, errSpaces := svc.AddClient(ctx, "   ", "Wilson")

		assert.Equal(t, KindEmptyParameter, KindOf(errEmpty))
		assert.Equal(t, MessageOf(errEmpty), MessageOf(errSpaces))
		clients.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("insert affected nothing", func(t *testing.T) {
		svc, clients := newTestClientService(t)
		clients.On("Insert", ctx, "Owen", "Wilson").Return(nil, store.ErrClientAddFailed)

		_, err := svc.AddClient(ctx, "Owen", "Wilson")
		assert.Equal(t, KindAddFailed, KindOf(err))
	})
}

func TestClientService_AddClientWithID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, clients := newTestClientService(t)
		clients.On("InsertWithID", ctx, 10, "Sandra", "Bullock").
			Return(&domain.Client{ID: 10, FirstName: "Sandra", LastName: "Bullock"}, nil)

		msg, err := svc.AddClientWithID(ctx, "10", "Sandra", "Bullock")
		require.NoError(t, err)
		assert.Equal(t, "The clientID, 10 and client name, Sandra Bullock, has been added.", msg)
	})

	t.Run("taken id", func(t *testing.T) {
		svc, clients := newTestClientService(t)
		clients.On("InsertWithID", ctx, 1, "Sandra", "Bullock").Return(nil, store.ErrClientExists)

		_, err := svc.AddClientWithID(ctx, "1", "Sandra", "Bullock")
		assert.Equal(t, KindClientAlreadyExists, KindOf(err))
		assert.Equal(t, "A client with the ID 1 already exists", MessageOf(err))
	})

	t.Run("non-positive id", func(t *testing.T) {
		svc, clients := newTestClientService(t)

		_, err := svc.AddClientWithID(ctx, "0", "Sandra", "Bullock")
		assert.Equal(t, KindBadParameter, KindOf(err))
		clients.AssertNotCalled(t, "InsertWithID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestClientService_UpdateClient(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, clients := newTestClientService(t)
		clients.On("Update", ctx, 1, "Harrison", "Ford").
			Return(&domain.Client{ID: 1, FirstName: "Harrison", LastName: "Ford"}, nil)

		msg, err := svc.UpdateClient(ctx, "1", "Harrison", "Ford")
		require.NoError(t, err)
		assert.Equal(t, "The clientID, 1 has had their name updated to Harrison Ford", msg)
	})

	t.Run("unknown client", func(t *testing.T) {
		svc, clients := newTestClientService(t)
		clients.On("Update", ctx, 99, "Harrison", "Ford").Return(nil, store.ErrClientNotFound)

		_, err := svc.UpdateClient(ctx, "99", "Harrison", "Ford")
		assert.Equal(t, KindClientNotFound, KindOf(err))
	})

	t.Run("blank check runs before parsing", func(t *testing.T) {
		svc, _ := newTestClientService(t)

		_, err := svc.UpdateClient(ctx, "abc", "", "Ford")
		assert.Equal(t, KindEmptyParameter, KindOf(err))
		assert.Contains(t, MessageOf(err), "First Name")
	})
}
