package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories are exposed as methods so a Tx-scoped
// Store hands out repos bound to the same transaction and nobody can start a
// transaction inside another one.
type Store interface {
	Orgs() Orgs
	Users() Users
	Properties() Properties
	Documents() Documents
	Form2Versions() Form2Versions
	ServePacks() ServePacks
	Invites() Invites
	OrphanedBlobs() OrphanedBlobs

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Orgs interface {
	CreateOrg(ctx context.Context, o domain.Org) error
	GetOrgByID(ctx context.Context, id string) (domain.Org, error)
	ListOrgs(ctx context.Context) ([]domain.Org, error)
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserBySubject looks a user up by the identity provider's subject.
	GetUserBySubject(ctx context.Context, subject string) (domain.User, error)

	// GetUserByEmail matches email case-insensitively within an org.
	GetUserByEmail(ctx context.Context, orgID, email string) (domain.User, error)

	// CreateUser returns ErrAlreadyExists when the subject is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile refreshes the identity-provider owned fields. The org is
	// never changed.
	UpdateProfile(ctx context.Context, u domain.User) error
}

// PropertyFilter restricts a listing to one org and, unless All is set, to
// properties assigned to AgentID or owned by SellerID.
type PropertyFilter struct {
	OrgID    string
	All      bool
	AgentID  string
	SellerID string
}

type Properties interface {
	CreateProperty(ctx context.Context, p domain.Property) error
	GetPropertyByID(ctx context.Context, id string) (domain.Property, error)

	// ListProperties returns matching properties newest first.
	ListProperties(ctx context.Context, f PropertyFilter) ([]domain.Property, error)

	UpdateDetails(ctx context.Context, p domain.Property) error
	SetSeller(ctx context.Context, propertyID, sellerID string, at time.Time) error
	SetAgent(ctx context.Context, propertyID, agentID string, at time.Time) error

	// DeleteProperty returns ErrNotFound when nothing was deleted. Dependents
	// must be removed first.
	DeleteProperty(ctx context.Context, id string) error
}

type Documents interface {
	CreateDocument(ctx context.Context, d domain.Document) error
	GetDocumentByID(ctx context.Context, id string) (domain.Document, error)

	// ListByProperty returns documents newest first.
	ListByProperty(ctx context.Context, propertyID string) ([]domain.Document, error)
	ListKeysByProperty(ctx context.Context, propertyID string) ([]string, error)

	DeleteDocument(ctx context.Context, id string) error
	DeleteByProperty(ctx context.Context, propertyID string) error
}

type Form2Versions interface {
	// CreateForm2Version returns ErrAlreadyExists when the version is taken.
	CreateForm2Version(ctx context.Context, v domain.Form2Version) error
	GetLatest(ctx context.Context, propertyID string) (domain.Form2Version, error)

	// MaxVersion returns 0 when the property has no versions.
	MaxVersion(ctx context.Context, propertyID string) (int64, error)

	// ListByProperty returns versions highest first.
	ListByProperty(ctx context.Context, propertyID string) ([]domain.Form2Version, error)
	ListKeysByProperty(ctx context.Context, propertyID string) ([]string, error)
	DeleteByProperty(ctx context.Context, propertyID string) error
}

type ServePacks interface {
	// CreateServePack returns ErrAlreadyExists when the version is taken.
	CreateServePack(ctx context.Context, sp domain.ServePack) error
	GetLatest(ctx context.Context, propertyID string) (domain.ServePack, error)

	// MaxVersion returns 0 when the property has no serve packs.
	MaxVersion(ctx context.Context, propertyID string) (int64, error)

	// ListByProperty returns serve packs highest version first.
	ListByProperty(ctx context.Context, propertyID string) ([]domain.ServePack, error)
	ListKeysByProperty(ctx context.Context, propertyID string) ([]string, error)
	DeleteByProperty(ctx context.Context, propertyID string) error
}

type Invites interface {
	// CreateInvite returns ErrAlreadyExists on a token hash collision.
	CreateInvite(ctx context.Context, inv domain.Invite) error
	GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error)

	// MarkAccepted stamps a pending invite. It reports false when the invite
	// had already been accepted.
	MarkAccepted(ctx context.Context, inviteID, userID string, at time.Time) (bool, error)

	ListByProperty(ctx context.Context, propertyID string) ([]domain.Invite, error)
	DeleteByProperty(ctx context.Context, propertyID string) error
}

type OrphanedBlobs interface {
	// Record upserts keys whose deletion failed.
	Record(ctx context.Context, keys []string, reason string, at time.Time) error
	List(ctx context.Context, limit int) ([]domain.OrphanedBlob, error)
	Delete(ctx context.Context, key string) error
	MarkAttempt(ctx context.Context, key string, at time.Time) error
	Count(ctx context.Context) (int64, error)
}
