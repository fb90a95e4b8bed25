package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/access"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/blob"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store"
	"github.com/aussiebroadwan/disclosure/pkg/slogx"
)

type DeletionService struct {
	Store     store.Store
	Access    *AccessService
	Blob      blob.Gateway
	BatchSize int
	Now       func() time.Time
}

type DeleteResult struct {
	Deleted  bool
	Warnings []Warning
}

// DeleteProperty removes a property with everything hanging off it. Stored
// files go first and best effort; the rows then go in one transaction.
func (s *DeletionService) DeleteProperty(ctx context.Context, id domain.Identity, propertyID string) (DeleteResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Authorize.
	u, p, err := s.Access.Authorize(ctx, id, propertyID, access.ActionDelete)
	if err != nil {
		return DeleteResult{}, err
	}

	// 2. Collect every stored file.
	keys, err := s.collectKeys(ctx, p.ID)
	if err != nil {
		return DeleteResult{}, err
	}

	// 3. Best effort: remove the files, queueing failures.
	warnings := reapBlobs(ctx, s.Store, s.Blob, keys, s.BatchSize, "property deleted", clock(s.Now))

	// 4. Authoritative: remove the rows.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Documents().DeleteByProperty(ctx, p.ID); err != nil {
			return fmt.Errorf("delete documents: %w", err)
		}
		if err := tx.Form2Versions().DeleteByProperty(ctx, p.ID); err != nil {
			return fmt.Errorf("delete form2 versions: %w", err)
		}
		if err := tx.ServePacks().DeleteByProperty(ctx, p.ID); err != nil {
			return fmt.Errorf("delete serve packs: %w", err)
		}
		if err := tx.Invites().DeleteByProperty(ctx, p.ID); err != nil {
			return fmt.Errorf("delete invites: %w", err)
		}
		return tx.Properties().DeleteProperty(ctx, p.ID)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Deleted concurrently.
			return DeleteResult{}, fmt.Errorf("property %s: %w", p.ID, ErrNotFound)
		}
		log.Error("failed to delete property rows", slog.String("property_id", p.ID), slog.Any("error", err))
		return DeleteResult{}, unavailable("delete property", err)
	}

	log.Info("property deleted",
		slog.String("property_id", p.ID),
		slog.String("deleted_by", u.ID),
		slog.Int("blobs", len(keys)),
		slog.Int("warnings", len(warnings)),
	)
	return DeleteResult{Deleted: true, Warnings: warnings}, nil
}

func (s *DeletionService) collectKeys(ctx context.Context, propertyID string) ([]string, error) {
	docs, err := s.Store.Documents().ListKeysByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list document keys: %w", err)
	}
	form2, err := s.Store.Form2Versions().ListKeysByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list form2 keys: %w", err)
	}
	packs, err := s.Store.ServePacks().ListKeysByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list serve pack keys: %w", err)
	}

	keys := make([]string, 0, len(docs)+len(form2)+len(packs))
	keys = append(keys, docs...)
	keys = append(keys, form2...)
	return append(keys, packs...), nil
}
