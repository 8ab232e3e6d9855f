package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"riftlens/internal/db"
	"riftlens/internal/domain"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
)

// ReferenceRepository stores the versioned static catalogs: champions, items and runes.
type ReferenceRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewReferenceRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *ReferenceRepository {
	return &ReferenceRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *ReferenceRepository) SaveCatalog(ctx context.Context, champions []domain.Champion, items []domain.Item, runes []domain.Rune) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	for _, c := range champions {
		tags, err := encodeTags(c.Tags)
		if err != nil {
			return err
		}
		err = qtx.UpsertChampion(ctx, db.UpsertChampionParams{
			ID:           int64(c.ID),
			Key:          c.Key,
			Name:         c.Name,
			Title:        c.Title,
			ImageUrl:     c.ImageURL,
			Tags:         tags,
			PatchVersion: c.PatchVersion,
		})
		if err != nil {
			return fmt.Errorf("failed to upsert champion %d: %w", c.ID, err)
		}
	}

	for _, it := range items {
		tags, err := encodeTags(it.Tags)
		if err != nil {
			return err
		}
		err = qtx.UpsertItem(ctx, db.UpsertItemParams{
			ID:           int64(it.ID),
			Name:         it.Name,
			Description:  it.Description,
			ImageUrl:     it.ImageURL,
			Gold:         int64(it.Gold),
			Tags:         tags,
			PatchVersion: it.PatchVersion,
		})
		if err != nil {
			return fmt.Errorf("failed to upsert item %d: %w", it.ID, err)
		}
	}

	for _, ru := range runes {
		err := qtx.UpsertRune(ctx, db.UpsertRuneParams{
			ID:           int64(ru.ID),
			Name:         ru.Name,
			Description:  ru.Description,
			ImageUrl:     ru.ImageURL,
			TreeID:       int64(ru.TreeID),
			TreeName:     ru.TreeName,
			Slot:         int64(ru.Slot),
			PatchVersion: ru.PatchVersion,
		})
		if err != nil {
			return fmt.Errorf("failed to upsert rune %d: %w", ru.ID, err)
		}
	}

	return tx.Commit()
}

func (r *ReferenceRepository) ListChampions(ctx context.Context) ([]domain.Champion, error) {
	rows, err := r.queries.ListChampions(ctx)
	if err != nil {
		return nil, err
	}
	champions := make([]domain.Champion, 0, len(rows))
	for _, row := range rows {
		champions = append(champions, r.toDomainChampion(row))
	}
	return champions, nil
}

// GetChampion returns nil, nil for an unknown id.
func (r *ReferenceRepository) GetChampion(ctx context.Context, id int) (*domain.Champion, error) {
	row, err := r.queries.GetChampion(ctx, int64(id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c := r.toDomainChampion(row)
	return &c, nil
}

func (r *ReferenceRepository) toDomainChampion(row db.Champion) domain.Champion {
	var tags []string
	if err := sonic.UnmarshalString(row.Tags, &tags); err != nil {
		r.logger.Warn().Err(err).Int64("champion_id", row.ID).Msg("unreadable champion tags")
	}
	return domain.Champion{
		ID:           int(row.ID),
		Key:          row.Key,
		Name:         row.Name,
		Title:        row.Title,
		ImageURL:     row.ImageUrl,
		Tags:         tags,
		PatchVersion: row.PatchVersion,
	}
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	s, err := sonic.MarshalString(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return s, nil
}
