package store

// AccountRow is the singleton account row. Balance is a canonical decimal
// string; SQLite has no decimal type and floats would drift.
type AccountRow struct {
	Number   string
	Owner    string
	Type     string
	Currency string
	Balance  string
	Status   string
}

// TransactionRow mirrors one ledger record. Rows are insert-only.
type TransactionRow struct {
	Seq              int64
	Timestamp        int64
	Kind             string
	TargetID         string
	TargetName       string
	Amount           string
	ResultingBalance string
}
