package domain

import "time"

const DefaultDocumentKind = "supporting"

type Document struct {
	ID          string
	PropertyID  string
	Kind        string // Matched against checklist item ids
	Filename    string
	ContentType string
	Size        int64
	SHA         string // BLAKE3, hex encoded
	StorageKey  string
	CreatedAt   time.Time
}
