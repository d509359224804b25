package api

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/bank-api/internal/domain"
	"github.com/phrazzld/bank-api/internal/service"
)

// fakeClientService implements service.ClientService with function fields
type fakeClientService struct {
	getClientFn       func(ctx context.Context, clientID string) (*domain.Client, error)
	getAllClientsFn   func(ctx context.Context) ([]*domain.Client, error)
	addClientFn       func(ctx context.Context, firstName, lastName string) (string, error)
	addClientWithIDFn func(ctx context.Context, clientID, firstName, lastName string) (string, error)
	updateClientFn    func(ctx context.Context, clientID, firstName, lastName string) (string, error)
}

func (f *fakeClientService) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	return f.getClientFn(ctx, clientID)
}

func (f *fakeClientService) GetAllClients(ctx context.Context) ([]*domain.Client, error) {
	return f.getAllClientsFn(ctx)
}

func (f *fakeClientService) AddClient(ctx context.Context, firstName, lastName string) (string, error) {
	return f.addClientFn(ctx, firstName, lastName)
}

func (f *fakeClientService) AddClientWithID(
	ctx context.Context,
	clientID, firstName, lastName string,
) (string, error) {
	return f.addClientWithIDFn(ctx, clientID, firstName, lastName)
}

func (f *fakeClientService) UpdateClient(
	ctx context.Context,
	clientID, firstName, lastName string,
) (string, error) {
	return f.updateClientFn(ctx, clientID, firstName, lastName)
}

// fakeAccountService implements service.AccountService with function fields
type fakeAccountService struct {
	addAccountFn         func(ctx context.Context, clientID, amount string) (string, error)
	getAccountsFn        func(ctx context.Context, clientID string) ([]*domain.Account, error)
	getAccountFn         func(ctx context.Context, clientID, accountID string) (*domain.Account, error)
	getAccountsBetweenFn func(ctx context.Context, clientID, low, high string) ([]*domain.Account, error)
	updateAccountFn      func(ctx context.Context, clientID, accountID, amount string) (string, error)
	deleteAccountFn      func(ctx context.Context, clientID, accountID string) (string, error)
}

func (f *fakeAccountService) AddAccount(ctx context.Context, clientID, amount string) (string, error) {
	return f.addAccountFn(ctx, clientID, amount)
}

func (f *fakeAccountService) GetAccounts(ctx context.Context, clientID string) ([]*domain.Account, error) {
	return f.getAccountsFn(ctx, clientID)
}

func (f *fakeAccountService) GetAccount(
	ctx context.Context,
	clientID, accountID string,
) (*domain.Account, error) {
	return f.getAccountFn(ctx, clientID, accountID)
}

func (f *fakeAccountService) GetAccountsBetween(
	ctx context.Context,
	clientID, low, high string,
) ([]*domain.Account, error) {
	return f.getAccountsBetweenFn(ctx, clientID, low, high)
}

func (f *fakeAccountService) UpdateAccount(
	ctx context.Context,
	clientID, accountID, amount string,
) (string, error) {
	return f.updateAccountFn(ctx, clientID, accountID, amount)
}

func (f *fakeAccountService) DeleteAccount(ctx context.Context, clientID, accountID string) (string, error) {
	return f.deleteAccountFn(ctx, clientID, accountID)
}

// fakePinger implements Pinger
type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error {
	return p.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// serve routes a request through a chi router so path parameters resolve.
func serve(mount func(chi.Router), method, target, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	mount(r)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var (
	_ service.ClientService  = (*fakeClientService)(nil)
	_ service.AccountService = (*fakeAccountService)(nil)
)
