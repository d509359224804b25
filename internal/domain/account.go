package domain

// Account is a financial record owned by exactly one client.
// Ownership is a reference by ClientID, not an aggregate collection.
type Account struct {
	ID       int `json:"accountId" validate:"gte=0"`
	ClientID int `json:"clientId"  validate:"gt=0"`
	Amount   int `json:"amount"`
}

// NewAccount creates an Account for the given client that has not been stored yet.
func NewAccount(clientID, amount int) (*Account, error) {
	account := &Account{
		ClientID: clientID,
		Amount:   amount,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
func (a *Account) Validate() error {
	return validateStruct(a)
}

// OwnedBy reports whether the account belongs to the given client.
func (a *Account) OwnedBy(clientID int) bool {
	return a.ClientID == clientID
}
