package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/bank-api/internal/api/shared"
	"github.com/phrazzld/bank-api/internal/platform/logger"
	"github.com/phrazzld/bank-api/internal/service"
)

// ClientHandler handles client-related HTTP requests
type ClientHandler struct {
	clientService service.ClientService
	logger        *slog.Logger
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService service.ClientService, logger *slog.Logger) *ClientHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ClientHandler")
	}

	return &ClientHandler{
		clientService: clientService,
		logger:        logger.With(slog.String("component", "client_handler")),
	}
}

// Routes mounts the client endpoints on r.
func (h *ClientHandler) Routes(r chi.Router) {
	r.Get("/clients", h.GetAllClients)
	r.Post("/clients", h.CreateClient)
	r.Get("/clients/{id}", h.GetClient)
	r.Post("/clients/{id}", h.CreateClientWithID)
	r.Put("/clients/{id}", h.UpdateClient)
}

// GetAllClients handles GET /clients requests
func (h *ClientHandler) GetAllClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.GetAllClients(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, clientsToResponse(clients))
}

// GetClient handles GET /clients/{id} requests
func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.clientService.GetClient(r.Context(), chi.URLParam(r, clientIDParam))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, clientToResponse(client))
}

// CreateClient handles POST /clients requests
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ClientRequest
	if !decodeBody(w, r, &req, log) {
		return
	}

	message, err := h.clientService.AddClient(r.Context(), req.FirstName, req.LastName)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusCreated, message)
}

// CreateClientWithID handles POST /clients/{id} requests
// The client is stored under the id given in the path.
func (h *ClientHandler) CreateClientWithID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ClientRequest
	if !decodeBody(w, r, &req, log) {
		return
	}

	message, err := h.clientService.AddClientWithID(
		r.Context(),
		chi.URLParam(r, clientIDParam),
		req.FirstName,
		req.LastName,
	)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusCreated, message)
}

// UpdateClient handles PUT /clients/{id} requests
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ClientRequest
	if !decodeBody(w, r, &req, log) {
		return
	}

	message, err := h.clientService.UpdateClient(
		r.Context(),
		chi.URLParam(r, clientIDParam),
		req.FirstName,
		req.LastName,
	)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusAccepted, message)
}
