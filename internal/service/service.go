// Package service wires the account core to its collaborators: the SQLite
// store, the transfer-target directory and the configuration. It owns the
// serialization of mutating operations and the post-mutation persistence hook.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mfarouk/teller/internal/account"
	"github.com/mfarouk/teller/internal/config"
	"github.com/mfarouk/teller/internal/directory"
	"github.com/mfarouk/teller/internal/store"
	"github.com/mfarouk/teller/internal/validation"
	"github.com/shopspring/decimal"
)

type Service struct {
	cfg  *config.Config
	repo store.Repository
	dir  *directory.Directory
	acct *account.Account
	log  *slog.Logger

	// mu serializes mutating operations: the balance read-modify-write and
	// its paired ledger append must be atomic as a unit.
	mu sync.Mutex

	// persistedSeq is the highest ledger sequence already in the store.
	persistedSeq int64
}

// New loads the account from the store, seeding it from config on first run,
// and installs the snapshot hook that persists every successful mutation.
func New(repo store.Repository, cfg *config.Config, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Service{
		cfg:  cfg,
		repo: repo,
		dir:  directory.New(targetsFromConfig(cfg.Targets)),
		log:  logger,
	}

	row, err := repo.GetAccount()
	switch {
	case errors.Is(err, store.ErrNotFound):
		if err := s.seed(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err := s.hydrate(row); err != nil {
			return nil, err
		}
	}

	s.acct.SetTargets(s.dir)
	s.acct.OnChange(s.persist)

	return s, nil
}

func (s *Service) seed() error {
	opening, err := decimal.NewFromString(s.cfg.Account.OpeningBalance)
	if err != nil {
		return fmt.Errorf("invalid opening balance %q in config: %w", s.cfg.Account.OpeningBalance, err)
	}

	acct, err := account.Open(account.Profile{
		Number:      s.cfg.Account.Number,
		Owner:       s.cfg.Account.Owner,
		AccountType: s.cfg.Account.Type,
	}, opening, account.StatusVerified, nil)
	if err != nil {
		return err
	}

	snap := acct.Snapshot()
	err = s.repo.InitAccount(store.AccountRow{
		Number:   snap.Profile.Number,
		Owner:    snap.Profile.Owner,
		Type:     snap.Profile.AccountType,
		Currency: s.cfg.Account.Currency,
		Balance:  snap.Balance.String(),
		Status:   string(snap.Status),
	}, recordToRow(snap.Records[0]))
	if err != nil {
		return fmt.Errorf("failed to seed account: %w", err)
	}

	s.acct = acct
	s.persistedSeq = snap.Records[0].Seq
	s.log.Info("seeded account",
		"number", snap.Profile.Number,
		"opening_balance", snap.Balance.String())
	return nil
}

func (s *Service) hydrate(row *store.AccountRow) error {
	txRows, err := s.repo.GetTransactions()
	if err != nil {
		return err
	}

	records := make([]account.Record, 0, len(txRows))
	for _, txRow := range txRows {
		rec, err := rowToRecord(txRow)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}

	balance, err := decimal.NewFromString(row.Balance)
	if err != nil {
		return fmt.Errorf("corrupt balance %q in store: %w", row.Balance, err)
	}

	acct, err := account.Restore(account.Snapshot{
		Profile: account.Profile{
			Number:      row.Number,
			Owner:       row.Owner,
			AccountType: row.Type,
		},
		Balance: balance,
		Status:  account.Status(row.Status),
		Records: records,
	}, nil)
	if err != nil {
		return err
	}

	s.acct = acct
	if len(records) > 0 {
		s.persistedSeq = records[len(records)-1].Seq
	}
	return nil
}

// persist is the snapshot hook. A persistence failure is logged, not
// propagated: the in-memory mutation already happened and the failure
// handling policy belongs here, not in the core.
func (s *Service) persist(snap account.Snapshot) {
	var newRows []store.TransactionRow
	for _, rec := range snap.Records {
		if rec.Seq > s.persistedSeq {
			newRows = append(newRows, recordToRow(rec))
		}
	}

	if err := s.repo.SaveSnapshot(snap.Balance.String(), string(snap.Status), newRows); err != nil {
		s.log.Error("failed to persist account state", "err", err)
		return
	}

	if n := len(newRows); n > 0 {
		s.persistedSeq = newRows[n-1].Seq
	}
}

// Deposit parses and deposits the raw amount. The core's fixed check order is
// preserved: when both the status and the amount are bad, the status failure
// wins, so a malformed amount is degraded to zero and the core decides.
func (s *Service) Deposit(rawAmount string) (account.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runAmountOp(rawAmount, s.acct.Deposit)
}

// Withdraw parses and withdraws the raw amount.
func (s *Service) Withdraw(rawAmount string) (account.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runAmountOp(rawAmount, s.acct.Withdraw)
}

// BeginTransfer opens the two-phase transfer session.
func (s *Service) BeginTransfer() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acct.BeginTransfer()
}

// ConfirmTransfer executes the transfer to targetID.
func (s *Service) ConfirmTransfer(targetID, rawAmount string) (account.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runAmountOp(rawAmount, func(amount decimal.Decimal) (account.Record, error) {
		return s.acct.ConfirmTransfer(targetID, amount)
	})
}

// CancelTransfer abandons the transfer session. Always legal.
func (s *Service) CancelTransfer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.acct.CancelTransfer()
}

// SetStatus parses and applies a status change.
func (s *Service) SetStatus(raw string) (account.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status, err := account.ParseStatus(raw)
	if err != nil {
		return "", err
	}
	if err := s.acct.ChangeStatus(status); err != nil {
		return "", err
	}
	s.log.Info("status changed", "status", status.String())
	return status, nil
}

// Statement returns the read-only statement view.
func (s *Service) Statement(order account.Order) account.StatementView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acct.Statement(order)
}

func (s *Service) Profile() account.Profile {
	return s.acct.Profile()
}

func (s *Service) Balance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acct.Balance()
}

func (s *Service) Status() account.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acct.Status()
}

func (s *Service) TransferPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acct.TransferPending()
}

// Targets lists the transfer directory for selection prompts.
func (s *Service) Targets() []account.Target {
	return s.dir.All()
}

// Currency is the display symbol from config.
func (s *Service) Currency() string {
	return s.cfg.Account.Currency
}

// runAmountOp funnels a raw amount through parse + core operation while
// keeping the legality-before-amount check order intact.
func (s *Service) runAmountOp(raw string, op func(decimal.Decimal) (account.Record, error)) (account.Record, error) {
	amount, parseErr := validation.ParseAmount(raw)
	if parseErr != nil {
		amount = decimal.Zero
	}

	rec, err := op(amount)
	if err != nil {
		if parseErr != nil && errors.Is(err, account.ErrInvalidAmount) {
			return account.Record{}, parseErr
		}
		return account.Record{}, err
	}
	return rec, nil
}

func targetsFromConfig(targets []config.TargetConfig) []account.Target {
	out := make([]account.Target, 0, len(targets))
	for _, t := range targets {
		out = append(out, account.Target{
			ID:          t.ID,
			Name:        t.Name,
			AccountType: t.Type,
		})
	}
	return out
}

func recordToRow(rec account.Record) store.TransactionRow {
	return store.TransactionRow{
		Seq:              rec.Seq,
		Timestamp:        rec.Time.Unix(),
		Kind:             string(rec.Kind),
		TargetID:         rec.TargetID,
		TargetName:       rec.TargetName,
		Amount:           rec.Amount.String(),
		ResultingBalance: rec.Balance.String(),
	}
}

func rowToRecord(row store.TransactionRow) (account.Record, error) {
	amount, err := decimal.NewFromString(row.Amount)
	if err != nil {
		return account.Record{}, fmt.Errorf("corrupt amount %q in transaction %d: %w", row.Amount, row.Seq, err)
	}
	balance, err := decimal.NewFromString(row.ResultingBalance)
	if err != nil {
		return account.Record{}, fmt.Errorf("corrupt balance %q in transaction %d: %w", row.ResultingBalance, row.Seq, err)
	}
	return account.Record{
		Seq:        row.Seq,
		Time:       time.Unix(row.Timestamp, 0),
		Kind:       account.Kind(row.Kind),
		TargetID:   row.TargetID,
		TargetName: row.TargetName,
		Amount:     amount,
		Balance:    balance,
	}, nil
}
