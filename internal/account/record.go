package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind classifies a ledger record. The amount on a record is always a
// positive magnitude; direction is derived from the kind by the display
// layer, never stored as a sign.
type Kind string

const (
	KindInitialBalance Kind = "InitialBalance"
	KindDeposit        Kind = "Deposit"
	KindWithdrawal     Kind = "Withdrawal"
	KindTransferOut    Kind = "TransferOut"
)

// Outgoing reports whether the kind moves money out of the account.
func (k Kind) Outgoing() bool {
	return k == KindWithdrawal || k == KindTransferOut
}

// Record is a single ledger entry. Records are immutable once appended.
type Record struct {
	// Seq is 1-based, unique and strictly increasing in append order.
	Seq int64

	// Time is fixed at append and never rewritten.
	Time time.Time

	Kind Kind

	// TargetID and TargetName are set only for TransferOut records.
	TargetID   string
	TargetName string

	// Amount is the positive magnitude of the movement.
	Amount decimal.Decimal

	// Balance is the account balance immediately after this record applied.
	Balance decimal.Decimal
}

// Target is a transfer destination as seen by the account core. The directory
// of targets is an external, read-only collaborator.
type Target struct {
	ID          string
	Name        string
	AccountType string
}

// TargetResolver looks up transfer targets by id. Implementations must treat
// the directory as immutable; an unknown id is a lookup error, not a crash.
type TargetResolver interface {
	Resolve(id string) (Target, error)
}
