package store

import (
	"database/sql"
	"errors"
	"fmt"
)

func (s *Store) GetAccount() (*AccountRow, error) {
	row := s.db.QueryRow(`
		SELECT number, owner, type, currency, balance, status
		FROM account
		LIMIT 1
	`)

	acc := &AccountRow{}
	err := row.Scan(
		&acc.Number, &acc.Owner, &acc.Type,
		&acc.Currency, &acc.Balance, &acc.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query account: %w", err)
	}

	return acc, nil
}

// InitAccount seeds the singleton account row together with its opening
// ledger row in one database transaction. Fails with ErrAlreadySeeded when a
// row already exists.
func (s *Store) InitAccount(acc AccountRow, opening TransactionRow) error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return fmt.Errorf("InitAccount cannot be called within an existing transaction")
	}

	existing, err := s.GetAccount()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if existing != nil {
		return ErrAlreadySeeded
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	txStore := &Store{db: tx}

	_, err = tx.Exec(`
		INSERT INTO account (number, owner, type, currency, balance, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`, acc.Number, acc.Owner, acc.Type, acc.Currency, acc.Balance, acc.Status)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	if err := txStore.InsertTransaction(opening); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) UpdateAccount(balance, status string) error {
	result, err := s.db.Exec(`
		UPDATE account
		SET balance = ?, status = ?
	`, balance, status)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
