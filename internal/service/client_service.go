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

// ClientService provides client-related operations. Every input arrives as
// text and is validated before the store is touched.
type ClientService interface {
	// GetClient retrieves a client by its id
	GetClient(ctx context.Context, clientID string) (*domain.Client, error)

	// GetAllClients returns every client
	GetAllClients(ctx context.Context) ([]*domain.Client, error)

	// AddClient creates a client with a store-assigned id and returns a confirmation message
	AddClient(ctx context.Context, firstName, lastName string) (string, error)

	// AddClientWithID creates a client under a caller-supplied id
	AddClientWithID(ctx context.Context, clientID, firstName, lastName string) (string, error)

	// UpdateClient replaces both names of an existing client
	UpdateClient(ctx context.Context, clientID, firstName, lastName string) (string, error)
}

// clientServiceImpl implements the ClientService interface
type clientServiceImpl struct {
	clients store.ClientStore
	logger  *slog.Logger
}

// NewClientService creates a new ClientService
// It returns an error if any of the required dependencies are nil.
func NewClientService(clients store.ClientStore, logger *slog.Logger) (ClientService, error) {
	if clients == nil {
		return nil, domain.NewValidationError("clients", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		return nil, domain.NewValidationError("logger", "cannot be nil", domain.ErrValidation)
	}

	return &clientServiceImpl{
		clients: clients,
		logger:  logger.With(slog.String("component", "client_service")),
	}, nil
}

// GetClient implements ClientService.GetClient
func (s *clientServiceImpl) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	const op = "get_client"
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := requireNonBlank(op, "get a client", Param{labelClientID, clientID}); err != nil {
		return nil, err
	}
	id, err := ParseInt(op, Param{labelClientID, clientID})
	if err != nil {
		return nil, err
	}

	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, s.wrapStoreError(log, op, err, id)
	}

	return client, nil
}

// GetAllClients implements ClientService.GetAllClients
func (s *clientServiceImpl) GetAllClients(ctx context.Context) ([]*domain.Client, error) {
	const op = "get_all_clients"
	log := logger.FromContextOrDefault(ctx, s.logger)

	clients, err := s.clients.GetAll(ctx)
	if err != nil {
		return nil, s.wrapStoreError(log, op, err, 0)
	}

	return clients, nil
}

// AddClient implements ClientService.AddClient
func (s *clientServiceImpl) AddClient(ctx context.Context, firstName, lastName string) (string, error) {
	const op = "add_client"
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := requireNonBlank(op, "add a client",
		Param{labelFirstName, firstName},
		Param{labelLastName, lastName},
	); err != nil {
		return "", err
	}

	candidate, err := domain.NewClient(firstName, lastName)
	if err != nil {
		return "", NewServiceError(op, err.Error(), ErrBadParameter)
	}

	client, err := s.clients.Insert(ctx, candidate.FirstName, candidate.LastName)
	if err != nil {
		return "", s.wrapStoreError(log, op, err, 0)
	}

	log.Info("client added", slog.Int("client_id", client.ID))
	return fmt.Sprintf("Client %s with ID of %d was added successfully.", client.FullName(), client.ID), nil
}

// AddClientWithID implements ClientService.AddClientWithID
func (s *clientServiceImpl) AddClientWithID(
	ctx context.Context,
	clientID, firstName, lastName string,
) (string, error) {
	const op = "add_client_with_id"
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := requireNonBlank(op, "add a client with an ID",
		Param{labelClientID, clientID},
		Param{labelFirstName, firstName},
		Param{labelLastName, lastName},
	); err != nil {
		return "", err
	}
	id, err := ParseInt(op, Param{labelClientID, clientID})
	if err != nil {
		return "", err
	}
	if id <= 0 {
		return "", NewServiceError(op,
			fmt.Sprintf("Client ID must be a positive integer. User provided %s", clientID),
			ErrBadParameter)
	}

	candidate, err := domain.NewClient(firstName, lastName)
	if err != nil {
		return "", NewServiceError(op, err.Error(), ErrBadParameter)
	}

	client, err := s.clients.InsertWithID(ctx, id, candidate.FirstName, candidate.LastName)
	if err != nil {
		return "", s.wrapStoreError(log, op, err, id)
	}

	log.Info("client added with explicit ID", slog.Int("client_id", client.ID))
	return fmt.Sprintf("The clientID, %d and client name, %s, has been added.", client.ID, client.FullName()), nil
}

// UpdateClient implements ClientService.UpdateClient
func (s *clientServiceImpl) UpdateClient(
	ctx context.Context,
	clientID, firstName, lastName string,
) (string, error) {
	const op = "update_client"
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := requireNonBlank(op, "update a client",
		Param{labelClientID, clientID},
		Param{labelFirstName, firstName},
		Param{labelLastName, lastName},
	); err != nil {
		return "", err
	}
	id, err := ParseInt(op, Param{labelClientID, clientID})
	if err != nil {
		return "", err
	}

	candidate, err := domain.NewClient(firstName, lastName)
	if err != nil {
		return "", NewServiceError(op, err.Error(), ErrBadParameter)
	}

	client, err := s.clients.Update(ctx, id, candidate.FirstName, candidate.LastName)
	if err != nil {
		return "", s.wrapStoreError(log, op, err, id)
	}

	log.Info("client updated", slog.Int("client_id", client.ID))
	return fmt.Sprintf("The clientID, %d has had their name updated to %s", client.ID, client.FullName()), nil
}

// wrapStoreError replaces the store's message with one naming the caller's id
// while keeping the store sentinel as the error kind.
func (s *clientServiceImpl) wrapStoreError(log *slog.Logger, op string, err error, clientID int) error {
	switch {
	case errors.Is(err, store.ErrClientNotFound):
		log.Debug("client not found", slog.String("operation", op), slog.Int("client_id", clientID))
		return NewServiceError(op, fmt.Sprintf("The client with the ID %d was not found", clientID), err)
	case errors.Is(err, store.ErrClientExists):
		log.Debug("client already exists", slog.String("operation", op), slog.Int("client_id", clientID))
		return NewServiceError(op, fmt.Sprintf("A client with the ID %d already exists", clientID), err)
	case errors.Is(err, store.ErrAddFailed):
		log.Warn("client could not be added", slog.String("operation", op))
		return NewServiceError(op, "Something went wrong and the client could not be added.", err)
	default:
		log.Error("client store failure",
			slog.String("operation", op),
			slog.String("error", redact.Error(err)))
		return NewServiceError(op, unavailableMessage, ensureKind(err))
	}
}
