package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mfarouk/teller/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "teller.db")
	s, err := store.NewStore(dbPath, os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedTestAccount(t *testing.T, s *store.Store) {
	t.Helper()

	err := s.InitAccount(store.AccountRow{
		Number: "123456", Owner: "Mariam Riyad", Type: "Savings",
		Currency: "$", Balance: "1000", Status: "Verified",
	}, store.TransactionRow{
		Seq: 1, Timestamp: 1705314600, Kind: "InitialBalance",
		Amount: "1000", ResultingBalance: "1000",
	})
	require.NoError(t, err)
}

func TestGetAccountNotSeeded(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	_, err := s.GetAccount()
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestInitAccount(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	seedTestAccount(t, s)

	row, err := s.GetAccount()
	require.NoError(t, err)
	assert.Equal(t, "123456", row.Number)
	assert.Equal(t, "Mariam Riyad", row.Owner)
	assert.Equal(t, "1000", row.Balance)
	assert.Equal(t, "Verified", row.Status)

	txs, err := s.GetTransactions()
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "InitialBalance", txs[0].Kind)

	// seeding twice must fail, the opening balance already exists
	err = s.InitAccount(store.AccountRow{Number: "123456"}, store.TransactionRow{Seq: 1})
	assert.ErrorIs(t, err, store.ErrAlreadySeeded)
}

func TestUpdateAccount(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	err := s.UpdateAccount("1200", "Suspended")
	assert.ErrorIs(t, err, store.ErrNotFound)

	seedTestAccount(t, s)
	require.NoError(t, s.UpdateAccount("1200", "Suspended"))

	row, err := s.GetAccount()
	require.NoError(t, err)
	assert.Equal(t, "1200", row.Balance)
	assert.Equal(t, "Suspended", row.Status)
}

func TestTransactionsOrderedBySeq(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	seedTestAccount(t, s)

	require.NoError(t, s.InsertTransaction(store.TransactionRow{
		Seq: 3, Timestamp: 1705314720, Kind: "Withdrawal",
		Amount: "50", ResultingBalance: "1150",
	}))
	require.NoError(t, s.InsertTransaction(store.TransactionRow{
		Seq: 2, Timestamp: 1705314660, Kind: "Deposit",
		Amount: "200", ResultingBalance: "1200",
	}))

	txs, err := s.GetTransactions()
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, int64(1), txs[0].Seq)
	assert.Equal(t, int64(2), txs[1].Seq)
	assert.Equal(t, int64(3), txs[2].Seq)

	maxSeq, err := s.MaxSeq()
	require.NoError(t, err)
	assert.Equal(t, int64(3), maxSeq)
}

func TestMaxSeqEmpty(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	maxSeq, err := s.MaxSeq()
	require.NoError(t, err)
	assert.Equal(t, int64(0), maxSeq)
}

func TestSaveSnapshot(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	seedTestAccount(t, s)

	err := s.SaveSnapshot("650", "Verified", []store.TransactionRow{
		{Seq: 2, Timestamp: 1705314660, Kind: "Deposit", Amount: "200", ResultingBalance: "1200"},
		{Seq: 3, Timestamp: 1705314720, Kind: "TransferOut", TargetID: "789012",
			TargetName: "Ahmed Hassan", Amount: "550", ResultingBalance: "650"},
	})
	require.NoError(t, err)

	row, err := s.GetAccount()
	require.NoError(t, err)
	assert.Equal(t, "650", row.Balance)

	txs, err := s.GetTransactions()
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, "Ahmed Hassan", txs[2].TargetName)
	assert.Equal(t, "789012", txs[2].TargetID)
}

func TestSaveSnapshotRejectsStaleRows(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	seedTestAccount(t, s)

	// a row at or below the stored high-water mark means two writers diverged
	err := s.SaveSnapshot("1000", "Verified", []store.TransactionRow{
		{Seq: 1, Timestamp: 1705314600, Kind: "Deposit", Amount: "1", ResultingBalance: "1001"},
	})
	assert.ErrorIs(t, err, store.ErrSnapshotDrift)

	// nothing from the rejected snapshot may have landed
	row, err := s.GetAccount()
	require.NoError(t, err)
	assert.Equal(t, "1000", row.Balance)

	txs, err := s.GetTransactions()
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestSaveSnapshotNoNewRows(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	seedTestAccount(t, s)

	// status-only change carries no ledger rows
	require.NoError(t, s.SaveSnapshot("1000", "Closed", nil))

	row, err := s.GetAccount()
	require.NoError(t, err)
	assert.Equal(t, "Closed", row.Status)
}

func TestExecTx(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	seedTestAccount(t, s)

	err := s.ExecTx(func(r store.Repository) error {
		if err := r.InsertTransaction(store.TransactionRow{
			Seq: 2, Timestamp: 1705314660, Kind: "Deposit", Amount: "200", ResultingBalance: "1200",
		}); err != nil {
			return err
		}
		return r.UpdateAccount("1200", "Verified")
	})
	require.NoError(t, err)

	row, err := s.GetAccount()
	require.NoError(t, err)
	assert.Equal(t, "1200", row.Balance)

	err = s.ExecTx(func(r store.Repository) error {
		if err := r.InsertTransaction(store.TransactionRow{
			Seq: 3, Timestamp: 1705314720, Kind: "Deposit", Amount: "1", ResultingBalance: "1201",
		}); err != nil {
			return err
		}
		return store.ErrSnapshotDrift
	})
	assert.Error(t, err)

	// rolled back, the insert inside the failed closure is gone
	maxSeq, err := s.MaxSeq()
	require.NoError(t, err)
	assert.Equal(t, int64(2), maxSeq)
}
