package service

import (
	"context"
	"fmt"
	"riftlens/internal/constants"
	"riftlens/internal/domain"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"
)

type SyncResult struct {
	Success         bool   `json:"success"`
	SyncID          string `json:"syncId"`
	Version         string `json:"version"`
	Champions       int    `json:"champions"`
	Items           int    `json:"items"`
	Runes           int    `json:"runes"`
	AggregatedStats int    `json:"aggregatedStats"`
}

type SyncService struct {
	source     ReferenceSource
	refs       ReferenceRepository
	aggregator *AggregationService
	history    SyncHistory
	logger     zerolog.Logger
}

func NewSyncService(source ReferenceSource, refs ReferenceRepository, aggregator *AggregationService, history SyncHistory, logger zerolog.Logger) *SyncService {
	return &SyncService{
		source:     source,
		refs:       refs,
		aggregator: aggregator,
		history:    history,
		logger:     logger,
	}
}

// Sync refreshes the champion, item and rune catalogs to the latest Data
// Dragon version and recomputes champion stats for that patch.
func (s *SyncService) Sync(ctx context.Context) (*SyncResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.SyncTimeout)
	defer cancel()

	version, err := s.source.LatestVersion(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get latest version")
		return nil, fmt.Errorf("failed to get latest version: %w", err)
	}

	var (
		champions []domain.Champion
		items     []domain.Item
		runes     []domain.Rune
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) (err error) {
		champions, err = s.source.Champions(ctx, version)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		items, err = s.source.Items(ctx, version)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		runes, err = s.source.Runes(ctx, version)
		return err
	})
	if err := p.Wait(); err != nil {
		s.logger.Error().Err(err).Str("version", version).Msg("failed to fetch reference data")
		return nil, fmt.Errorf("failed to fetch reference data: %w", err)
	}

	if err := s.refs.SaveCatalog(ctx, champions, items, runes); err != nil {
		s.logger.Error().Err(err).Str("version", version).Msg("failed to save reference data")
		return nil, fmt.Errorf("failed to save reference data: %w", err)
	}

	prefix := domain.PatchPrefix(version)
	aggregated, err := s.aggregator.Aggregate(ctx, prefix)
	if err != nil {
		return nil, err
	}

	run := domain.SyncRun{
		Version:         version,
		PatchPrefix:     prefix,
		Champions:       len(champions),
		Items:           len(items),
		Runes:           len(runes),
		AggregatedStats: aggregated,
	}
	id, err := s.history.Record(ctx, run)
	if err != nil {
		s.logger.Warn().Err(err).Str("version", version).Msg("failed to record sync run")
	}

	s.logger.Info().
		Str("sync_id", id).
		Str("version", version).
		Int("champions", run.Champions).
		Int("items", run.Items).
		Int("runes", run.Runes).
		Int("aggregated_stats", aggregated).
		Msg("reference data synced")

	return &SyncResult{
		Success:         true,
		SyncID:          id,
		Version:         version,
		Champions:       run.Champions,
		Items:           run.Items,
		Runes:           run.Runes,
		AggregatedStats: aggregated,
	}, nil
}

func (s *SyncService) History(ctx context.Context, limit int) ([]domain.SyncRun, error) {
	runs, err := s.history.List(ctx, clamp(limit, 1, constants.MaxSyncHistory))
	if err != nil {
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}
	return runs, nil
}
