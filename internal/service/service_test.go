package service_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/mfarouk/teller/internal/account"
	"github.com/mfarouk/teller/internal/config"
	"github.com/mfarouk/teller/internal/service"
	"github.com/mfarouk/teller/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory store.Repository for service tests.
type fakeRepo struct {
	account *store.AccountRow
	rows    []store.TransactionRow
	saveErr error
	saves   int
}

func (f *fakeRepo) GetAccount() (*store.AccountRow, error) {
	if f.account == nil {
		return nil, store.ErrNotFound
	}
	row := *f.account
	return &row, nil
}

func (f *fakeRepo) InitAccount(row store.AccountRow, opening store.TransactionRow) error {
	if f.account != nil {
		return store.ErrAlreadySeeded
	}
	f.account = &row
	f.rows = append(f.rows, opening)
	return nil
}

func (f *fakeRepo) UpdateAccount(balance, status string) error {
	if f.account == nil {
		return store.ErrNotFound
	}
	f.account.Balance = balance
	f.account.Status = status
	return nil
}

func (f *fakeRepo) InsertTransaction(row store.TransactionRow) error {
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeRepo) GetTransactions() ([]store.TransactionRow, error) {
	out := make([]store.TransactionRow, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeRepo) MaxSeq() (int64, error) {
	if len(f.rows) == 0 {
		return 0, nil
	}
	return f.rows[len(f.rows)-1].Seq, nil
}

func (f *fakeRepo) SaveSnapshot(balance, status string, newRows []store.TransactionRow) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	if err := f.UpdateAccount(balance, status); err != nil {
		return err
	}
	f.rows = append(f.rows, newRows...)
	return nil
}

func (f *fakeRepo) Close() error { return nil }

var _ store.Repository = (*fakeRepo)(nil)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(t *testing.T, repo *fakeRepo) *service.Service {
	t.Helper()
	svc, err := service.New(repo, config.NewDefault(), testLogger())
	require.NoError(t, err)
	return svc
}

func TestNewSeedsOnFirstRun(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc := newService(t, repo)

	require.NotNil(t, repo.account)
	assert.Equal(t, "123456", repo.account.Number)
	assert.Equal(t, "Mariam Riyad", repo.account.Owner)
	assert.Equal(t, "1000", repo.account.Balance)
	assert.Equal(t, "Verified", repo.account.Status)

	require.Len(t, repo.rows, 1)
	assert.Equal(t, "InitialBalance", repo.rows[0].Kind)
	assert.Equal(t, int64(1), repo.rows[0].Seq)

	assert.Equal(t, "1000", svc.Balance().String())
	assert.Equal(t, account.StatusVerified, svc.Status())
}

func TestNewHydratesExistingState(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{
		account: &store.AccountRow{
			Number: "123456", Owner: "Mariam Riyad", Type: "Savings",
			Currency: "$", Balance: "1200", Status: "Suspended",
		},
		rows: []store.TransactionRow{
			{Seq: 1, Timestamp: 1705314600, Kind: "InitialBalance", Amount: "1000", ResultingBalance: "1000"},
			{Seq: 2, Timestamp: 1705314660, Kind: "Deposit", Amount: "200", ResultingBalance: "1200"},
		},
	}
	svc := newService(t, repo)

	assert.Equal(t, "1200", svc.Balance().String())
	assert.Equal(t, account.StatusSuspended, svc.Status())
	assert.Equal(t, 2, svc.Statement(account.OldestFirst).Count)

	// sequence numbers continue past the hydrated history
	rec, err := svc.Deposit("50")
	require.NoError(t, err)
	assert.Equal(t, int64(3), rec.Seq)
	require.Len(t, repo.rows, 3)
	assert.Equal(t, int64(3), repo.rows[2].Seq)
}

func TestDepositPersists(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc := newService(t, repo)

	rec, err := svc.Deposit("200")
	require.NoError(t, err)
	assert.Equal(t, "1200", rec.Balance.String())

	assert.Equal(t, "1200", repo.account.Balance)
	require.Len(t, repo.rows, 2)
	assert.Equal(t, "Deposit", repo.rows[1].Kind)
	assert.Equal(t, "200", repo.rows[1].Amount)
}

func TestDepositMalformedAmount(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc := newService(t, repo)

	_, err := svc.Deposit("abc")
	assert.ErrorIs(t, err, account.ErrInvalidAmount)
	assert.Equal(t, "1000", repo.account.Balance)
	assert.Len(t, repo.rows, 1)
}

func TestLegalityOutranksMalformedAmount(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc := newService(t, repo)

	_, err := svc.SetStatus("Closed")
	require.NoError(t, err)

	_, err = svc.Deposit("abc")
	assert.ErrorIs(t, err, account.ErrIllegalOperation)
}

func TestWithdraw(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc := newService(t, repo)

	rec, err := svc.Withdraw("300.50")
	require.NoError(t, err)
	assert.Equal(t, "699.5", rec.Balance.String())
	assert.Equal(t, "699.5", repo.account.Balance)

	_, err = svc.Withdraw("10000")
	assert.ErrorIs(t, err, account.ErrInsufficientFunds)
}

func TestTransferFlow(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc := newService(t, repo)

	require.NoError(t, svc.BeginTransfer())
	assert.True(t, svc.TransferPending())

	rec, err := svc.ConfirmTransfer("789012", "300")
	require.NoError(t, err)

	assert.Equal(t, "Ahmed Hassan", rec.TargetName)
	assert.Equal(t, "700", rec.Balance.String())
	assert.False(t, svc.TransferPending())

	require.Len(t, repo.rows, 2)
	assert.Equal(t, "TransferOut", repo.rows[1].Kind)
	assert.Equal(t, "789012", repo.rows[1].TargetID)
	assert.Equal(t, "Ahmed Hassan", repo.rows[1].TargetName)
}

func TestTransferUnknownTarget(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc := newService(t, repo)

	_, err := svc.ConfirmTransfer("000000", "300")
	assert.ErrorIs(t, err, account.ErrUnknownTarget)
	assert.Len(t, repo.rows, 1)
}

func TestSetStatusPersistsWithoutLedgerRecord(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc := newService(t, repo)

	status, err := svc.SetStatus("suspended")
	require.NoError(t, err)
	assert.Equal(t, account.StatusSuspended, status)

	assert.Equal(t, "Suspended", repo.account.Status)
	assert.Len(t, repo.rows, 1)

	_, err = svc.SetStatus("Frozen")
	assert.ErrorIs(t, err, account.ErrInvalidStatus)
}

func TestPersistFailureDoesNotFailOperation(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc := newService(t, repo)

	repo.saveErr = assert.AnError
	rec, err := svc.Deposit("200")
	require.NoError(t, err)
	assert.Equal(t, "1200", rec.Balance.String())

	// the store kept its old state, the failure was absorbed by the hook
	assert.Equal(t, "1000", repo.account.Balance)
	assert.Equal(t, 1, repo.saves)
}

func TestTargets(t *testing.T) {
	t.Parallel()
	svc := newService(t, &fakeRepo{})

	targets := svc.Targets()
	require.Len(t, targets, 3)
	assert.Equal(t, "789012", targets[0].ID)
	assert.Equal(t, "Sara Ahmed", targets[1].Name)
	assert.Equal(t, "$", svc.Currency())
}
