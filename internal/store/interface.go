package store

type Repository interface {
	// Account row (singleton)
	GetAccount() (*AccountRow, error)
	InitAccount(row AccountRow, opening TransactionRow) error
	UpdateAccount(balance, status string) error

	// Ledger rows (insert-only)
	InsertTransaction(row TransactionRow) error
	GetTransactions() ([]TransactionRow, error)
	MaxSeq() (int64, error)

	// SaveSnapshot persists the post-mutation state atomically: the account
	// row update and every not-yet-persisted ledger row in one database
	// transaction.
	SaveSnapshot(balance, status string, newRows []TransactionRow) error

	Close() error
}
