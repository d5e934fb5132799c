package store

import (
	"database/sql"
	"fmt"
)

func (s *Store) InsertTransaction(row TransactionRow) error {
	_, err := s.db.Exec(`
		INSERT INTO transactions (seq, timestamp, kind, target_id, target_name, amount, resulting_balance)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, row.Seq, row.Timestamp, row.Kind, row.TargetID, row.TargetName, row.Amount, row.ResultingBalance)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %d: %w", row.Seq, err)
	}
	return nil
}

// GetTransactions returns every ledger row in sequence (append) order.
func (s *Store) GetTransactions() ([]TransactionRow, error) {
	rows, err := s.db.Query(`
		SELECT seq, timestamp, kind, target_id, target_name, amount, resulting_balance
		FROM transactions
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txs []TransactionRow
	for rows.Next() {
		var tx TransactionRow
		err := rows.Scan(
			&tx.Seq, &tx.Timestamp, &tx.Kind,
			&tx.TargetID, &tx.TargetName,
			&tx.Amount, &tx.ResultingBalance,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

func (s *Store) MaxSeq() (int64, error) {
	var seq sql.NullInt64
	err := s.db.QueryRow(`SELECT MAX(seq) FROM transactions`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to query max seq: %w", err)
	}
	if seq.Valid {
		return seq.Int64, nil
	}
	return 0, nil
}

// SaveSnapshot persists a post-mutation state: the account row update plus
// every ledger row past the already-persisted high-water mark, atomically.
// Ledger rows are never updated or deleted, only appended.
func (s *Store) SaveSnapshot(balance, status string, newRows []TransactionRow) error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return fmt.Errorf("SaveSnapshot cannot be called within an existing transaction")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	txStore := &Store{db: tx}

	maxSeq, err := txStore.MaxSeq()
	if err != nil {
		return err
	}
	for _, row := range newRows {
		if row.Seq <= maxSeq {
			return fmt.Errorf("row %d behind persisted seq %d: %w", row.Seq, maxSeq, ErrSnapshotDrift)
		}
	}

	if err := txStore.UpdateAccount(balance, status); err != nil {
		return err
	}
	for _, row := range newRows {
		if err := txStore.InsertTransaction(row); err != nil {
			return err
		}
	}

	return tx.Commit()
}
