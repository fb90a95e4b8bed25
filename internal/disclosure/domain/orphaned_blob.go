package domain

import "time"

// OrphanedBlob is a storage key whose best-effort deletion failed.
type OrphanedBlob struct {
	Key           string
	Reason        string
	Attempts      int64
	CreatedAt     time.Time
	LastAttemptAt *time.Time
}
