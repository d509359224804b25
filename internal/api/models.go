package api

import (
	"github.com/phrazzld/bank-api/internal/api/shared"
	"github.com/phrazzld/bank-api/internal/domain"
)

// ClientRequest is the payload for creating or renaming a client.
type ClientRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AccountRequest is the payload for opening an account or changing its amount.
// Amount accepts a JSON number or string; parsing happens in the service.
type AccountRequest struct {
	Amount shared.Text `json:"amount"`
}

// ClientResponse represents a client in responses
type ClientResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AccountResponse represents an account in responses
type AccountResponse struct {
	ID       int `json:"accountId"`
	ClientID int `json:"clientId"`
	Amount   int `json:"amount"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

func clientToResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
}

func clientsToResponse(clients []*domain.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, clientToResponse(c))
	}
	return out
}

func accountToResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:       a.ID,
		ClientID: a.ClientID,
		Amount:   a.Amount,
	}
}

func accountsToResponse(accounts []*domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, accountToResponse(a))
	}
	return out
}
