package service

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/blob"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store"
)

// DefaultHousekeepingInterval is used when no interval is configured.
const DefaultHousekeepingInterval = 10 * time.Minute

// KeyRefresher reloads verification keys from their source.
type KeyRefresher interface {
	Refresh(ctx context.Context) error
}

// HousekeepingService periodically retries deletes of orphaned blobs and
// refreshes remote verification keys. Expired invites are kept so Inspect
// can keep reporting them as expired.
type HousekeepingService struct {
	Store     store.Store
	Blob      blob.Gateway
	Keys      KeyRefresher // Optional
	Logger    *slog.Logger
	Interval  time.Duration
	BatchSize int
	Now       func() time.Time

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to DefaultHousekeepingInterval.
func NewHousekeepingService(
	st store.Store,
	gw blob.Gateway,
	keys KeyRefresher,
	logger *slog.Logger,
	interval time.Duration,
) *HousekeepingService {
	if interval <= 0 {
		interval = DefaultHousekeepingInterval
	}
	return &HousekeepingService{
		Store:    st,
		Blob:     gw,
		Keys:     keys,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the worker in the background until Stop is called.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", slog.Duration("interval", s.Interval))
}

// Stop shuts the worker down and waits for an in-progress pass to finish.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-s.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	s.RunOnce(ctx)

	for {
		select {
		case <-ticker.C:
			s.RunOnce(ctx)
		case <-s.stopCh:
			return
		}
	}
}

// HousekeepingReport summarises one pass.
type HousekeepingReport struct {
	Retried       int
	Removed       int
	Failed        int
	KeysRefreshed bool
}

// RunOnce performs a single pass. Each task is independent; a failure in
// one does not stop the others.
func (s *HousekeepingService) RunOnce(ctx context.Context) HousekeepingReport {
	var rep HousekeepingReport

	// Refresh remote keys.
	if s.Keys != nil {
		if err := s.Keys.Refresh(ctx); err != nil {
			s.Logger.Error("failed to refresh verification keys", slog.Any("error", err))
		} else {
			rep.KeysRefreshed = true
		}
	}

	// Retry orphaned blobs.
	s.retryOrphans(ctx, &rep)

	s.Logger.Info("housekeeping pass completed",
		slog.Int("orphans_retried", rep.Retried),
		slog.Int("orphans_removed", rep.Removed),
		slog.Int("orphans_failed", rep.Failed),
	)
	return rep
}

func (s *HousekeepingService) retryOrphans(ctx context.Context, rep *HousekeepingReport) {
	batchSize := s.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultDeleteBatchSize
	}

	orphans, err := s.Store.OrphanedBlobs().List(ctx, batchSize)
	if err != nil {
		s.Logger.Error("failed to list orphaned blobs", slog.Any("error", err))
		return
	}
	if len(orphans) == 0 {
		return
	}

	keys := make([]string, 0, len(orphans))
	for _, o := range orphans {
		keys = append(keys, o.Key)
	}
	rep.Retried = len(keys)

	var failed []string
	if err := s.Blob.DeleteBatch(ctx, keys); err != nil {
		failed = blob.FailedKeys(err, keys)
		s.Logger.Warn("orphaned blob delete failed",
			slog.Int("failed", len(failed)),
			slog.Any("error", err),
		)
	}

	now := clock(s.Now)
	for _, key := range keys {
		if slices.Contains(failed, key) {
			rep.Failed++
			if err := s.Store.OrphanedBlobs().MarkAttempt(ctx, key, now); err != nil {
				s.Logger.Error("failed to mark orphaned blob attempt", slog.String("key", key), slog.Any("error", err))
			}
			continue
		}
		if err := s.Store.OrphanedBlobs().Delete(ctx, key); err != nil {
			s.Logger.Error("failed to remove orphaned blob row", slog.String("key", key), slog.Any("error", err))
			continue
		}
		rep.Removed++
	}
}
