package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order selects the direction of a history snapshot. Both orders are keyed by
// sequence number, so the result is deterministic regardless of timestamp ties.
type Order int

const (
	OldestFirst Order = iota
	NewestFirst
)

// Ledger is the append-only, ordered history of balance-affecting events for
// one account. It performs no business validation; authorization and amount
// checks live in Account. There is no delete or edit operation.
type Ledger struct {
	now     func() time.Time
	records []Record
}

// NewLedger returns an empty ledger. A nil clock defaults to time.Now.
func NewLedger(now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{now: now}
}

// RestoreLedger rebuilds a ledger from previously persisted records. The
// records must already be in append (sequence) order.
func RestoreLedger(now func() time.Time, records []Record) *Ledger {
	l := NewLedger(now)
	l.records = append(l.records, records...)
	return l
}

// Append stores a new record with the next sequence number and the current
// time. It always succeeds.
func (l *Ledger) Append(kind Kind, amount, balance decimal.Decimal) Record {
	return l.append(Record{
		Kind:    kind,
		Amount:  amount,
		Balance: balance,
	})
}

// AppendTransfer stores a TransferOut record carrying the resolved target.
func (l *Ledger) AppendTransfer(target Target, amount, balance decimal.Decimal) Record {
	return l.append(Record{
		Kind:       KindTransferOut,
		TargetID:   target.ID,
		TargetName: target.Name,
		Amount:     amount,
		Balance:    balance,
	})
}

func (l *Ledger) append(rec Record) Record {
	rec.Seq = l.nextSeq()
	rec.Time = l.now()
	l.records = append(l.records, rec)
	return rec
}

func (l *Ledger) nextSeq() int64 {
	if len(l.records) == 0 {
		return 1
	}
	return l.records[len(l.records)-1].Seq + 1
}

// History returns a copy of all records in the requested order. Mutating the
// returned slice does not affect the ledger.
func (l *Ledger) History(order Order) []Record {
	out := make([]Record, len(l.records))
	if order == NewestFirst {
		for i, rec := range l.records {
			out[len(out)-1-i] = rec
		}
		return out
	}
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Last returns the most recent record, or false if the ledger is empty.
func (l *Ledger) Last() (Record, bool) {
	if len(l.records) == 0 {
		return Record{}, false
	}
	return l.records[len(l.records)-1], true
}
