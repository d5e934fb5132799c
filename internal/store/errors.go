package store

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadySeeded = errors.New("account already seeded")
	ErrSnapshotDrift = errors.New("snapshot does not extend persisted history")
)
