package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/store"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store/drivers/sqlite/gen"
)

type txStore struct {
	tx *sql.Tx
	q  *gen.Queries
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{
		tx: tx,
		q:  gen.New(tx),
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller commits or rolls back; the outer DB stays open

// Ping is a no-op; the connection is held by the transaction.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Orgs() store.Orgs                   { return &orgsRepo{q: t.q} }
func (t *txStore) Users() store.Users                 { return &usersRepo{q: t.q} }
func (t *txStore) Properties() store.Properties       { return &propertiesRepo{q: t.q} }
func (t *txStore) Documents() store.Documents         { return &documentsRepo{q: t.q} }
func (t *txStore) Form2Versions() store.Form2Versions { return &form2VersionsRepo{q: t.q} }
func (t *txStore) ServePacks() store.ServePacks       { return &servePacksRepo{q: t.q} }
func (t *txStore) Invites() store.Invites             { return &invitesRepo{q: t.q} }
func (t *txStore) OrphanedBlobs() store.OrphanedBlobs { return &orphanedBlobsRepo{q: t.q} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx
