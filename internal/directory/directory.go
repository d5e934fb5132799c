// Package directory holds the static, read-only list of transfer-target
// accounts. It is a lookup service only; the account core owns all
// business-rule enforcement.
package directory

import (
	"errors"
	"fmt"

	"github.com/mfarouk/teller/internal/account"
)

var ErrTargetNotFound = errors.New("target not found")

// Directory is immutable after construction and therefore safe for shared
// reads without locking.
type Directory struct {
	targets []account.Target
	byID    map[string]account.Target
}

func New(targets []account.Target) *Directory {
	d := &Directory{
		targets: make([]account.Target, len(targets)),
		byID:    make(map[string]account.Target, len(targets)),
	}
	copy(d.targets, targets)
	for _, t := range targets {
		d.byID[t.ID] = t
	}
	return d
}

// Resolve returns the target for id, or ErrTargetNotFound.
func (d *Directory) Resolve(id string) (account.Target, error) {
	target, ok := d.byID[id]
	if !ok {
		return account.Target{}, fmt.Errorf("%w: %q", ErrTargetNotFound, id)
	}
	return target, nil
}

// All returns a copy of every target in listing order.
func (d *Directory) All() []account.Target {
	out := make([]account.Target, len(d.targets))
	copy(out, d.targets)
	return out
}

var _ account.TargetResolver = (*Directory)(nil)
