package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store/drivers/sqlite/gen"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

// NewStore opens dsn with foreign keys enforced on every pooled connection.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", withPragmas(dsn))
	if err != nil {
		return nil, err
	}

	// An in-memory database exists per connection, so pin the pool to one.
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func withPragmas(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	var pragmas []string
	if !strings.Contains(dsn, "foreign_keys") {
		pragmas = append(pragmas, "_pragma=foreign_keys(1)")
	}
	if !strings.Contains(dsn, "busy_timeout") {
		pragmas = append(pragmas, "_pragma=busy_timeout(5000)")
	}
	if len(pragmas) == 0 {
		return dsn
	}
	return dsn + sep + strings.Join(pragmas, "&")
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Orgs() store.Orgs                   { return &orgsRepo{q: s.q} }
func (s *Store) Users() store.Users                 { return &usersRepo{q: s.q} }
func (s *Store) Properties() store.Properties       { return &propertiesRepo{q: s.q} }
func (s *Store) Documents() store.Documents         { return &documentsRepo{q: s.q} }
func (s *Store) Form2Versions() store.Form2Versions { return &form2VersionsRepo{q: s.q} }
func (s *Store) ServePacks() store.ServePacks       { return &servePacksRepo{q: s.q} }
func (s *Store) Invites() store.Invites             { return &invitesRepo{q: s.q} }
func (s *Store) OrphanedBlobs() store.OrphanedBlobs { return &orphanedBlobsRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns unique and primary key violations into ErrAlreadyExists.
func mapConstraint(err error) error {
	var se *msqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return errors.Join(store.ErrAlreadyExists, err)
		}
	}
	return err
}

func mapNullStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		val := ns.String
		return &val
	}
	return nil
}

func mapOptionalString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}

func mapTimeNull(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func splitFields(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}

func mapOrg(row gen.Org) domain.Org {
	return domain.Org{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}

func mapUser(row gen.User) domain.User {
	return domain.User{
		ID:              row.ID,
		OrgID:           row.OrgID,
		ExternalSubject: row.ExternalSubject,
		Email:           row.Email,
		Name:            row.Name,
		Roles:           domain.ParseRoleSet(splitFields(row.Roles)),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func mapProperty(row gen.Property) domain.Property {
	return domain.Property{
		ID:        row.ID,
		OrgID:     row.OrgID,
		Type:      row.Type,
		Title:     row.Title,
		Address:   row.Address,
		SellerID:  mapNullStringPtr(row.SellerID),
		AgentID:   row.AgentID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func mapDocument(row gen.Document) domain.Document {
	return domain.Document{
		ID:          row.ID,
		PropertyID:  row.PropertyID,
		Kind:        row.Kind,
		Filename:    row.Filename,
		ContentType: row.ContentType,
		Size:        row.Size,
		SHA:         row.Sha,
		StorageKey:  row.StorageKey,
		CreatedAt:   row.CreatedAt,
	}
}

func mapForm2Version(row gen.Form2Version) (domain.Form2Version, error) {
	var snapshot domain.Form2Snapshot
	if err := json.Unmarshal([]byte(row.ChecklistSnapshot), &snapshot); err != nil {
		return domain.Form2Version{}, err
	}
	return domain.Form2Version{
		ID:          row.ID,
		PropertyID:  row.PropertyID,
		Version:     row.Version,
		Snapshot:    snapshot,
		StorageKey:  row.StorageKey,
		ContentType: row.ContentType,
		CreatedAt:   row.CreatedAt,
	}, nil
}

func mapServePack(row gen.ServePack) (domain.ServePack, error) {
	var manifest domain.ServePackManifest
	if err := json.Unmarshal([]byte(row.Manifest), &manifest); err != nil {
		return domain.ServePack{}, err
	}
	return domain.ServePack{
		ID:         row.ID,
		PropertyID: row.PropertyID,
		Version:    row.Version,
		Manifest:   manifest,
		StorageKey: row.StorageKey,
		CreatedAt:  row.CreatedAt,
	}, nil
}

func mapInvite(row gen.Invite) domain.Invite {
	role, _ := domain.ParseRole(row.Role)
	return domain.Invite{
		ID:         row.ID,
		OrgID:      row.OrgID,
		PropertyID: row.PropertyID,
		TokenHash:  row.TokenHash,
		Email:      row.Email,
		Role:       role,
		CreatedBy:  row.CreatedBy,
		ExpiresAt:  row.ExpiresAt,
		AcceptedAt: mapNullTimePtr(row.AcceptedAt),
		AcceptedBy: mapNullStringPtr(row.AcceptedBy),
		CreatedAt:  row.CreatedAt,
	}
}

func mapOrphanedBlob(row gen.OrphanedBlob) domain.OrphanedBlob {
	return domain.OrphanedBlob{
		Key:           row.StorageKey,
		Reason:        row.Reason,
		Attempts:      row.Attempts,
		CreatedAt:     row.CreatedAt,
		LastAttemptAt: mapNullTimePtr(row.LastAttemptAt),
	}
}
