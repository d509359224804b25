package domain

import "strings"

// Client is the owning party of zero or more accounts.
// The ID is assigned by the store on insert; zero means "not yet stored".
type Client struct {
	ID        int    `json:"id"        validate:"gte=0"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
}

// NewClient creates a Client that has not been stored yet.
// Names are trimmed; blank names are rejected.
func NewClient(firstName, lastName string) (*Client, error) {
	client := &Client{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
	}

	if err := client.Validate(); err != nil {
		return nil, err
	}

	return client, nil
}

// Validate checks if the Client has valid data.
func (c *Client) Validate() error {
	return validateStruct(c)
}

// FullName returns "first last".
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
