package domain

import "time"

// Form2Snapshot is the checklist state a disclosure document was rendered from.
type Form2Snapshot struct {
	Checklist []ChecklistItem `json:"checklist"`
}

type Form2Version struct {
	ID          string
	PropertyID  string
	Version     int64
	Snapshot    Form2Snapshot
	StorageKey  string
	ContentType string
	CreatedAt   time.Time
}

type ManifestDocument struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Filename string `json:"filename"`
}

type ServePackManifest struct {
	IncludedKinds []string           `json:"includedKinds"`
	Documents     []ManifestDocument `json:"documents"`
	Form2Version  int64              `json:"form2Version"`
}

type ServePack struct {
	ID         string
	PropertyID string
	Version    int64
	Manifest   ServePackManifest
	StorageKey string
	CreatedAt  time.Time
}
