package account

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Profile is the immutable identity metadata of an account.
type Profile struct {
	Number      string
	Owner       string
	AccountType string
}

// Snapshot is the full serializable state of an account, handed to the
// post-mutation hook after every successful mutation. Restoring it on startup
// is the caller's responsibility.
type Snapshot struct {
	Profile Profile
	Balance decimal.Decimal
	Status  Status
	Records []Record
}

// SnapshotHook receives the state after a successful mutation. Persistence
// timing and failure handling belong to the integration layer, so the hook
// returns nothing to the core.
type SnapshotHook func(Snapshot)

// Account owns the current balance and status of a single bank account and
// enforces the status-gated legality rules on every mutating operation.
// Balance and ledger are only ever mutated together in the same synchronous
// step, so a reader can never observe one without the other.
//
// Account is not safe for concurrent use. Operations are expected to execute
// one at a time; a caller embedding it in a concurrent environment must
// serialize mutations (the service layer does).
type Account struct {
	profile Profile
	balance decimal.Decimal
	status  Status
	ledger  *Ledger

	targets  TargetResolver
	onChange SnapshotHook

	// transferPending models the two-phase transfer session: begin sets it,
	// confirm and cancel clear it. It is a pure in-memory flag with no
	// external resource attached.
	transferPending bool
}

// Open creates a fresh account with an opening balance and writes the
// InitialBalance record as the first ledger entry. A nil clock defaults to
// time.Now.
func Open(profile Profile, opening decimal.Decimal, status Status, now func() time.Time) (*Account, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	a := &Account{
		profile: profile,
		balance: opening,
		status:  status,
		ledger:  NewLedger(now),
	}
	a.ledger.Append(KindInitialBalance, opening, opening)
	return a, nil
}

// Restore rebuilds an account from a persisted snapshot. The snapshot's
// balance must match the resulting balance of its last record (or stand alone
// if the record list is empty).
func Restore(snap Snapshot, now func() time.Time) (*Account, error) {
	if !snap.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, snap.Status)
	}
	if n := len(snap.Records); n > 0 {
		last := snap.Records[n-1]
		if !last.Balance.Equal(snap.Balance) {
			return nil, fmt.Errorf("snapshot balance %s does not match last record balance %s",
				snap.Balance, last.Balance)
		}
	}
	return &Account{
		profile: snap.Profile,
		balance: snap.Balance,
		status:  snap.Status,
		ledger:  RestoreLedger(now, snap.Records),
	}, nil
}

// SetTargets installs the read-only transfer-target directory.
func (a *Account) SetTargets(r TargetResolver) {
	a.targets = r
}

// OnChange installs the post-mutation snapshot hook.
func (a *Account) OnChange(fn SnapshotHook) {
	a.onChange = fn
}

func (a *Account) Profile() Profile         { return a.profile }
func (a *Account) Balance() decimal.Decimal { return a.balance }
func (a *Account) Status() Status           { return a.status }
func (a *Account) TransferPending() bool    { return a.transferPending }

// Deposit adds funds. Checks run in fixed order: legality, then amount shape.
// A failed deposit leaves balance and ledger untouched.
func (a *Account) Deposit(amount decimal.Decimal) (Record, error) {
	if !Allowed(OpDeposit, a.status) {
		return Record{}, fmt.Errorf("deposits are illegal for %s accounts: %w", a.status, ErrIllegalOperation)
	}
	if err := validAmount(amount); err != nil {
		return Record{}, err
	}
	a.balance = a.balance.Add(amount)
	rec := a.ledger.Append(KindDeposit, amount, a.balance)
	a.changed()
	return rec, nil
}

// Withdraw removes funds. Checks run in fixed order: legality, amount shape,
// then sufficiency.
func (a *Account) Withdraw(amount decimal.Decimal) (Record, error) {
	if !Allowed(OpWithdraw, a.status) {
		return Record{}, fmt.Errorf("withdrawals are illegal for %s accounts: %w", a.status, ErrIllegalOperation)
	}
	if err := validAmount(amount); err != nil {
		return Record{}, err
	}
	if amount.GreaterThan(a.balance) {
		return Record{}, fmt.Errorf("withdrawal of %s exceeds balance %s: %w", amount, a.balance, ErrInsufficientFunds)
	}
	a.balance = a.balance.Sub(amount)
	rec := a.ledger.Append(KindWithdrawal, amount, a.balance)
	a.changed()
	return rec, nil
}

// BeginTransfer opens a transfer session. It has no financial side effect; it
// only signals that target selection is now expected.
func (a *Account) BeginTransfer() error {
	if !Allowed(OpTransfer, a.status) {
		return fmt.Errorf("transfers are illegal for %s accounts: %w", a.status, ErrIllegalOperation)
	}
	a.transferPending = true
	return nil
}

// CancelTransfer abandons the transfer session. Always legal regardless of
// status, never a side effect beyond clearing the session flag.
func (a *Account) CancelTransfer() {
	a.transferPending = false
}

// ConfirmTransfer executes the transfer. Status legality is re-checked here,
// not only at BeginTransfer, since the status may have changed between the
// two calls. Checks run in fixed order: legality, amount shape, target
// resolution, then sufficiency. Success closes the session.
func (a *Account) ConfirmTransfer(targetID string, amount decimal.Decimal) (Record, error) {
	if !Allowed(OpTransfer, a.status) {
		return Record{}, fmt.Errorf("transfers are illegal for %s accounts: %w", a.status, ErrIllegalOperation)
	}
	if err := validAmount(amount); err != nil {
		return Record{}, err
	}
	target, err := a.resolveTarget(targetID)
	if err != nil {
		return Record{}, err
	}
	if amount.GreaterThan(a.balance) {
		return Record{}, fmt.Errorf("transfer of %s exceeds balance %s: %w", amount, a.balance, ErrInsufficientFunds)
	}
	a.balance = a.balance.Sub(amount)
	rec := a.ledger.AppendTransfer(target, amount, a.balance)
	a.transferPending = false
	a.changed()
	return rec, nil
}

// ChangeStatus switches to any of the three statuses; transitions are
// unrestricted. No ledger record is created, but the snapshot hook still
// fires so the new status persists. A pending transfer session is cancelled
// when the new status makes transfers illegal.
func (a *Account) ChangeStatus(newStatus Status) error {
	if !newStatus.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}
	a.status = newStatus
	if !Allowed(OpTransfer, a.status) {
		a.transferPending = false
	}
	a.changed()
	return nil
}

// StatementView is the read-only statement payload: the full history plus the
// current summary.
type StatementView struct {
	Profile Profile
	Balance decimal.Decimal
	Status  Status
	Records []Record
	Count   int
}

// Statement returns the ledger history in the requested order plus the
// current balance and status. Always legal, pure read.
func (a *Account) Statement(order Order) StatementView {
	records := a.ledger.History(order)
	return StatementView{
		Profile: a.profile,
		Balance: a.balance,
		Status:  a.status,
		Records: records,
		Count:   len(records),
	}
}

// Snapshot returns the full serializable state, records in append order.
func (a *Account) Snapshot() Snapshot {
	return Snapshot{
		Profile: a.profile,
		Balance: a.balance,
		Status:  a.status,
		Records: a.ledger.History(OldestFirst),
	}
}

func (a *Account) resolveTarget(id string) (Target, error) {
	if a.targets == nil {
		return Target{}, fmt.Errorf("no target directory configured: %w", ErrUnknownTarget)
	}
	target, err := a.targets.Resolve(id)
	if err != nil {
		return Target{}, fmt.Errorf("target %q: %w", id, ErrUnknownTarget)
	}
	return target, nil
}

func validAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero, got %s: %w", amount, ErrInvalidAmount)
	}
	return nil
}

func (a *Account) changed() {
	if a.onChange != nil {
		a.onChange(a.Snapshot())
	}
}
