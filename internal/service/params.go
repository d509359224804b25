package service

import (
	"fmt"
	"strconv"
	"strings"
)

// Param is one text input as it arrived at the service boundary, paired with
// the label used in validation messages.
type Param struct {
	Label string
	Value string
}

// Labels used in validation messages.
const (
	labelClientID    = "Client ID"
	labelAccountID   = "Account ID"
	labelAmount      = "Amount"
	labelLowerValue  = "Lower Value"
	labelHigherValue = "Higher Value"
	labelFirstName   = "First Name"
	labelLastName    = "Last Name"
)

// requireNonBlank fails with ErrEmptyParameter when any param is empty after
// trimming. The message names the action and every blank field, so "" and
// "   " produce the same text.
func requireNonBlank(operation, action string, params ...Param) error {
	var blank []string
	for _, p := range params {
		if strings.TrimSpace(p.Value) == "" {
			blank = append(blank, p.Label)
		}
	}
	if len(blank) == 0 {
		return nil
	}

	return NewServiceError(operation,
		fmt.Sprintf("When trying to %s, the following parameters were left blank: %s.",
			action, strings.Join(blank, ", ")),
		ErrEmptyParameter)
}

// ParseInt converts one trimmed text parameter to an int within the range of
// the INTEGER columns it is stored in. On failure the returned *ServiceError
// wraps ErrBadParameter and names the field and the text supplied.
func ParseInt(operation string, p Param) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(p.Value), 10, 32)
	if err != nil {
		return 0, NewServiceError(operation,
			fmt.Sprintf("%s must be int value. User provided %s", p.Label, p.Value),
			ErrBadParameter)
	}
	return int(n), nil
}

// parseInts parses params left to right and stops at the first failure.
func parseInts(operation string, params ...Param) ([]int, error) {
	values := make([]int, 0, len(params))
	for _, p := range params {
		n, err := ParseInt(operation, p)
		if err != nil {
			return nil, err
		}
		values = append(values, n)
	}
	return values, nil
}
