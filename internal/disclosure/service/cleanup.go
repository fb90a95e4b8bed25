package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/blob"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store"
	"github.com/aussiebroadwan/disclosure/pkg/slogx"
)

// DefaultDeleteBatchSize matches the S3 multi-object delete limit.
const DefaultDeleteBatchSize = 1000

// reapBlobs deletes keys from the object store in batches. Keys that cannot
// be removed are recorded as orphaned so housekeeping can retry them, and a
// single warning is returned describing the failure.
func reapBlobs(
	ctx context.Context,
	st store.Store,
	gw blob.Gateway,
	keys []string,
	batchSize int,
	reason string,
	now time.Time,
) []Warning {
	log := slogx.FromContext(ctx)

	if batchSize <= 0 {
		batchSize = DefaultDeleteBatchSize
	}

	var failed []string
	for _, batch := range blob.Chunk(keys, batchSize) {
		if err := gw.DeleteBatch(ctx, batch); err != nil {
			bad := blob.FailedKeys(err, batch)
			log.Error("blob delete batch failed",
				slog.Int("batch", len(batch)),
				slog.Int("failed", len(bad)),
				slog.Any("error", err),
			)
			failed = append(failed, bad...)
		}
	}
	if len(failed) == 0 {
		return nil
	}

	if err := st.OrphanedBlobs().Record(ctx, failed, reason, now); err != nil {
		// Last resort: the keys only survive in the log.
		log.Error("failed to record orphaned blobs",
			slog.String("reason", reason),
			slog.Any("keys", failed),
			slog.Any("error", err),
		)
	}

	return []Warning{{
		Code:    WarnBlobCleanupFailed,
		Message: fmt.Sprintf("%d stored file(s) could not be removed and were queued for cleanup", len(failed)),
	}}
}
