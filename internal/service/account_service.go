package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bank-api/internal/domain"
	"github.com/phrazzld/bank-api/internal/platform/logger"
	"github.com/phrazzld/bank-api/internal/redact"
	"github.com/phrazzld/bank-api/internal/store"
)

// AccountService provides account-related operations. Ids and amounts arrive
// as text and are parsed in the order clientId, accountId, then amount or bounds.
type AccountService interface {
	// AddAccount opens an account for a client and returns a confirmation message
	AddAccount(ctx context.Context, clientID, amount string) (string, error)

	// GetAccounts lists every account of a client
	GetAccounts(ctx context.Context, clientID string) ([]*domain.Account, error)

	// GetAccount retrieves one account, verifying that the client owns it
	GetAccount(ctx context.Context, clientID, accountID string) (*domain.Account, error)

	// GetAccountsBetween lists a client's accounts with low <= amount <= high
	GetAccountsBetween(ctx context.Context, clientID, low, high string) ([]*domain.Account, error)

	// UpdateAccount replaces the amount of an owned account
	UpdateAccount(ctx context.Context, clientID, accountID, amount string) (string, error)

	// DeleteAccount removes an owned account
	DeleteAccount(ctx context.Context, clientID, accountID string) (string, error)
}

// AccountServiceConfig holds account-query policy.
type AccountServiceConfig struct {
	// EmptyListAsNotFound reports an empty listing as AccountNotFound
	// instead of returning an empty slice.
	EmptyListAsNotFound bool
}

// accountServiceImpl implements the AccountService interface
type accountServiceImpl struct {
	accounts store.AccountStore
	cfg      AccountServiceConfig
	logger   *slog.Logger
}

// NewAccountService creates a new AccountService
// It returns an error if any of the required dependencies are nil.
func NewAccountService(
	accounts store.AccountStore,
	cfg AccountServiceConfig,
	logger *slog.Logger,
) (AccountService, error) {
	if accounts == nil {
		return nil, domain.NewValidationError("accounts", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		return nil, domain.NewValidationError("logger", "cannot be nil", domain.ErrValidation)
	}

	return &accountServiceImpl{
		accounts: accounts,
		cfg:      cfg,
		logger:   logger.With(slog.String("component", "account_service")),
	}, nil
}

// AddAccount implements AccountService.AddAccount
func (s *accountServiceImpl) AddAccount(ctx context.Context, clientID, amount string) (string, error) {
	const op = "add_account"
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := requireNonBlank(op, "add an account",
		Param{labelClientID, clientID},
		Param{labelAmount, amount},
	); err != nil {
		return "", err
	}
	values, err := parseInts(op,
		Param{labelClientID, clientID},
		Param{labelAmount, amount},
	)
	if err != nil {
		return "", err
	}
	cID, amt := values[0], values[1]

	candidate, err := domain.NewAccount(cID, amt)
	if err != nil {
		// Non-positive ids can never reference a client
		return "", s.wrapStoreError(log, op, fmt.Errorf("%w: %v", store.ErrClientNotFound, err), cID, 0)
	}

	account, err := s.accounts.CreateForClient(ctx, candidate.ClientID, candidate.Amount)
	if err != nil {
		return "", s.wrapStoreError(log, op, err, cID, 0)
	}

	log.Info("account added",
		slog.Int("account_id", account.ID),
		slog.Int("client_id", account.ClientID))
	return fmt.Sprintf("Account %d with amount of %d for Client %d was added successfully.",
		account.ID, account.Amount, account.ClientID), nil
}

// GetAccounts implements AccountService.GetAccounts
func (s *accountServiceImpl) GetAccounts(ctx context.Context, clientID string) ([]*domain.Account, error) {
	const op = "get_accounts"
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := requireNonBlank(op, "get all of the accounts of a client",
		Param{labelClientID, clientID},
	); err != nil {
		return nil, err
	}
	cID, err := ParseInt(op, Param{labelClientID, clientID})
	if err != nil {
		return nil, err
	}

	accounts, err := s.accounts.ListByClient(ctx, cID)
	if err != nil {
		return nil, s.wrapStoreError(log, op, err, cID, 0)
	}

	return s.applyEmptyPolicy(log, op, accounts, cID)
}

// GetAccount implements AccountService.GetAccount
func (s *accountServiceImpl) GetAccount(
	ctx context.Context,
	clientID, accountID string,
) (*domain.Account, error) {
	const op = "get_account"
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := requireNonBlank(op, "get an account",
		Param{labelClientID, clientID},
		Param{labelAccountID, accountID},
	); err != nil {
		return nil, err
	}
	values, err := parseInts(op,
		Param{labelClientID, clientID},
		Param{labelAccountID, accountID},
	)
	if err != nil {
		return nil, err
	}
	cID, aID := values[0], values[1]

	account, err := s.accounts.GetByClientAndAccount(ctx, cID, aID)
	if err != nil {
		return nil, s.wrapStoreError(log, op, err, cID, aID)
	}

	return account, nil
}

// GetAccountsBetween implements AccountService.GetAccountsBetween
func (s *accountServiceImpl) GetAccountsBetween(
	ctx context.Context,
	clientID, low, high string,
) ([]*domain.Account, error) {
	const op = "get_accounts_between"
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := requireNonBlank(op, "get accounts between two amounts",
		Param{labelClientID, clientID},
		Param{labelLowerValue, low},
		Param{labelHigherValue, high},
	); err != nil {
		return nil, err
	}
	values, err := parseInts(op,
		Param{labelClientID, clientID},
		Param{labelLowerValue, low},
		Param{labelHigherValue, high},
	)
	if err != nil {
		return nil, err
	}
	cID, lowVal, highVal := values[0], values[1], values[2]

	if lowVal >= highVal {
		return nil, NewServiceError(op,
			fmt.Sprintf("Lower Value must be lower than Higher Value. User provided %d and %d",
				lowVal, highVal),
			ErrBadParameter)
	}

	accounts, err := s.accounts.ListBetweenAmounts(ctx, cID, lowVal, highVal)
	if err != nil {
		return nil, s.wrapStoreError(log, op, err, cID, 0)
	}

	return s.applyEmptyPolicy(log, op, accounts, cID)
}

// UpdateAccount implements AccountService.UpdateAccount
func (s *accountServiceImpl) UpdateAccount(
	ctx context.Context,
	clientID, accountID, amount string,
) (string, error) {
	const op = "update_account"
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := requireNonBlank(op, "update an account",
		Param{labelClientID, clientID},
		Param{labelAccountID, accountID},
		Param{labelAmount, amount},
	); err != nil {
		return "", err
	}
	values, err := parseInts(op,
		Param{labelClientID, clientID},
		Param{labelAccountID, accountID},
		Param{labelAmount, amount},
	)
	if err != nil {
		return "", err
	}
	cID, aID, amt := values[0], values[1], values[2]

	account, err := s.accounts.UpdateAmount(ctx, cID, aID, amt)
	if err != nil {
		return "", s.wrapStoreError(log, op, err, cID, aID)
	}

	log.Info("account updated",
		slog.Int("account_id", account.ID),
		slog.Int("client_id", account.ClientID))
	return fmt.Sprintf("The Account, %d, has had their amount updated to %d", account.ID, account.Amount), nil
}

// DeleteAccount implements AccountService.DeleteAccount
// Store faults are returned, never swallowed.
func (s *accountServiceImpl) DeleteAccount(
	ctx context.Context,
	clientID, accountID string,
) (string, error) {
	const op = "delete_account"
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := requireNonBlank(op, "delete an account",
		Param{labelClientID, clientID},
		Param{labelAccountID, accountID},
	); err != nil {
		return "", err
	}
	values, err := parseInts(op,
		Param{labelClientID, clientID},
		Param{labelAccountID, accountID},
	)
	if err != nil {
		return "", err
	}
	cID, aID := values[0], values[1]

	account, err := s.accounts.Delete(ctx, cID, aID)
	if err != nil {
		return "", s.wrapStoreError(log, op, err, cID, aID)
	}

	log.Info("account deleted",
		slog.Int("account_id", account.ID),
		slog.Int("client_id", account.ClientID))
	return fmt.Sprintf("Account %d with amount of %d for Client %d was deleted successfully.",
		account.ID, account.Amount, account.ClientID), nil
}

func (s *accountServiceImpl) applyEmptyPolicy(
	log *slog.Logger,
	op string,
	accounts []*domain.Account,
	clientID int,
) ([]*domain.Account, error) {
	if len(accounts) > 0 || !s.cfg.EmptyListAsNotFound {
		return accounts, nil
	}

	log.Debug("no accounts found", slog.String("operation", op), slog.Int("client_id", clientID))
	return nil, NewServiceError(op,
		fmt.Sprintf("No accounts could be found for the client with the ID %d", clientID),
		store.ErrAccountNotFound)
}

// wrapStoreError replaces the store's message with one naming the caller's ids
// while keeping the store sentinel as the error kind.
func (s *accountServiceImpl) wrapStoreError(
	log *slog.Logger,
	op string,
	err error,
	clientID, accountID int,
) error {
	attrs := []any{
		slog.String("operation", op),
		slog.Int("client_id", clientID),
		slog.Int("account_id", accountID),
	}

	switch {
	case errors.Is(err, store.ErrClientNotFound):
		log.Debug("client not found", attrs...)
		return NewServiceError(op, fmt.Sprintf("The client with the ID %d was not found", clientID), err)
	case errors.Is(err, store.ErrAccountNotFound):
		log.Debug("account not found", attrs...)
		return NewServiceError(op, fmt.Sprintf("Account with ID %d could not be found", accountID), err)
	case errors.Is(err, store.ErrAccountClientMismatch):
		log.Warn("account does not belong to client", attrs...)
		return NewServiceError(op,
			fmt.Sprintf("The account with ID %d does not belong to the client with ID %d", accountID, clientID),
			err)
	case errors.Is(err, store.ErrAddFailed):
		log.Warn("account could not be added", attrs...)
		return NewServiceError(op, "Something went wrong and the account could not be added.", err)
	default:
		log.Error("account store failure", append(attrs, slog.String("error", redact.Error(err)))...)
		return NewServiceError(op, unavailableMessage, ensureKind(err))
	}
}
