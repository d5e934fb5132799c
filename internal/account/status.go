package account

import (
	"fmt"
	"strings"
)

// Status is the account lifecycle flag. It gates which operations are legal
// through the legality matrix in operation.go.
type Status string

const (
	StatusVerified  Status = "Verified"
	StatusSuspended Status = "Suspended"
	StatusClosed    Status = "Closed"
)

// Statuses returns the closed set of valid statuses, in display order.
func Statuses() []Status {
	return []Status{StatusVerified, StatusSuspended, StatusClosed}
}

func (s Status) Valid() bool {
	switch s {
	case StatusVerified, StatusSuspended, StatusClosed:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus maps free-form input to a Status ("verified" == "Verified").
func ParseStatus(raw string) (Status, error) {
	for _, s := range Statuses() {
		if strings.EqualFold(strings.TrimSpace(raw), string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be one of Verified, Suspended, Closed)", ErrInvalidStatus, raw)
}
