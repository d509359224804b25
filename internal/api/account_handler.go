package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/bank-api/internal/api/shared"
	"github.com/phrazzld/bank-api/internal/domain"
	"github.com/phrazzld/bank-api/internal/platform/logger"
	"github.com/phrazzld/bank-api/internal/service"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService service.AccountService
	logger         *slog.Logger
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService service.AccountService, logger *slog.Logger) *AccountHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AccountHandler")
	}

	return &AccountHandler{
		accountService: accountService,
		logger:         logger.With(slog.String("component", "account_handler")),
	}
}

// Routes mounts the account endpoints on r.
func (h *AccountHandler) Routes(r chi.Router) {
	r.Route("/clients/{id}/accounts", func(r chi.Router) {
		r.Post("/", h.CreateAccount)
		r.Get("/", h.ListAccounts)
		r.Get("/{accountId}", h.GetAccount)
		r.Put("/{accountId}", h.UpdateAccount)
		r.Delete("/{accountId}", h.DeleteAccount)
	})
}

// CreateAccount handles POST /clients/{id}/accounts requests
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req AccountRequest
	if !decodeBody(w, r, &req, log) {
		return
	}

	message, err := h.accountService.AddAccount(r.Context(), chi.URLParam(r, clientIDParam), req.Amount.String())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusCreated, message)
}

// ListAccounts handles GET /clients/{id}/accounts requests
// With both amountGreaterThan and amountLessThan present the listing is
// restricted to that range; otherwise every account of the client is returned.
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, clientIDParam)
	query := r.URL.Query()

	var (
		accounts []*domain.Account
		err      error
	)
	if query.Has(amountGreaterThanQuery) && query.Has(amountLessThanQuery) {
		accounts, err = h.accountService.GetAccountsBetween(
			r.Context(),
			clientID,
			query.Get(amountGreaterThanQuery),
			query.Get(amountLessThanQuery),
		)
	} else {
		accounts, err = h.accountService.GetAccounts(r.Context(), clientID)
	}
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, accountsToResponse(accounts))
}

// GetAccount handles GET /clients/{id}/accounts/{accountId} requests
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.accountService.GetAccount(
		r.Context(),
		chi.URLParam(r, clientIDParam),
		chi.URLParam(r, accountIDParam),
	)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, accountToResponse(account))
}

// UpdateAccount handles PUT /clients/{id}/accounts/{accountId} requests
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req AccountRequest
	if !decodeBody(w, r, &req, log) {
		return
	}

	message, err := h.accountService.UpdateAccount(
		r.Context(),
		chi.URLParam(r, clientIDParam),
		chi.URLParam(r, accountIDParam),
		req.Amount.String(),
	)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, message)
}

// DeleteAccount handles DELETE /clients/{id}/accounts/{accountId} requests
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	message, err := h.accountService.DeleteAccount(
		r.Context(),
		chi.URLParam(r, clientIDParam),
		chi.URLParam(r, accountIDParam),
	)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, message)
}
