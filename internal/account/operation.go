package account

// Operation identifies an account operation for legality checks.
type Operation string

const (
	OpDeposit       Operation = "deposit"
	OpWithdraw      Operation = "withdraw"
	OpTransfer      Operation = "transfer"
	OpViewStatement Operation = "view statement"
	OpChangeStatus  Operation = "change status"
)

// legality is the authoritative (operation, status) matrix. Execution is
// governed by this table alone, not by any per-status display text.
var legality = map[Operation]map[Status]bool{
	OpDeposit: {
		StatusVerified:  true,
		StatusSuspended: true,
		StatusClosed:    false,
	},
	OpWithdraw: {
		StatusVerified:  true,
		StatusSuspended: false,
		StatusClosed:    false,
	},
	OpTransfer: {
		StatusVerified:  true,
		StatusSuspended: false,
		StatusClosed:    false,
	},
	OpViewStatement: {
		StatusVerified:  true,
		StatusSuspended: true,
		StatusClosed:    true,
	},
	OpChangeStatus: {
		StatusVerified:  true,
		StatusSuspended: true,
		StatusClosed:    true,
	},
}

// Allowed reports whether op is legal under status.
func Allowed(op Operation, status Status) bool {
	return legality[op][status]
}
