package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store/drivers/sqlite/gen"
)

type orphanedBlobsRepo struct {
	q *gen.Queries
}

func (r *orphanedBlobsRepo) Record(ctx context.Context, keys []string, reason string, at time.Time) error {
	for _, key := range keys {
		err := r.q.RecordOrphanedBlob(ctx, gen.RecordOrphanedBlobParams{
			StorageKey: key,
			Reason:     reason,
			CreatedAt:  at.UTC(),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *orphanedBlobsRepo) List(ctx context.Context, limit int) ([]domain.OrphanedBlob, error) {
	rows, err := r.q.ListOrphanedBlobs(ctx, int64(limit))
	if err != nil {
		return nil, err
	}
	out := make([]domain.OrphanedBlob, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapOrphanedBlob(row))
	}
	return out, nil
}

func (r *orphanedBlobsRepo) Delete(ctx context.Context, key string) error {
	return r.q.DeleteOrphanedBlob(ctx, key)
}

func (r *orphanedBlobsRepo) MarkAttempt(ctx context.Context, key string, at time.Time) error {
	return r.q.MarkOrphanedBlobAttempt(ctx, gen.MarkOrphanedBlobAttemptParams{
		LastAttemptAt: mapTimeNull(at),
		StorageKey:    key,
	})
}

func (r *orphanedBlobsRepo) Count(ctx context.Context) (int64, error) {
	return r.q.CountOrphanedBlobs(ctx)
}
