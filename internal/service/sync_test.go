package service

import (
	"context"
	"errors"
	"testing"

	"riftlens/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	version  string
	itemsErr error
}

func (f *fakeSource) LatestVersion(ctx context.Context) (string, error) {
	return f.version, nil
}

func (f *fakeSource) Champions(ctx context.Context, version string) ([]domain.Champion, error) {
	return []domain.Champion{
		{ID: 42, Key: "Ahri", Name: "Ahri", Title: "the Nine-Tailed Fox", Tags: []string{"Mage", "Assassin"}, PatchVersion: version},
		{ID: 1, Key: "Annie", Name: "Annie", Title: "the Dark Child", Tags: []string{"Mage"}, PatchVersion: version},
	}, nil
}

func (f *fakeSource) Items(ctx context.Context, version string) ([]domain.Item, error) {
	if f.itemsErr != nil {
		return nil, f.itemsErr
	}
	return []domain.Item{{ID: 3031, Name: "Infinity Edge", Gold: 3450, PatchVersion: version}}, nil
}

func (f *fakeSource) Runes(ctx context.Context, version string) ([]domain.Rune, error) {
	return []domain.Rune{
		{ID: 8005, Name: "Press the Attack", TreeID: 8000, TreeName: "Precision", Slot: 0, PatchVersion: version},
		{ID: 8008, Name: "Lethal Tempo", TreeID: 8000, TreeName: "Precision", Slot: 0, PatchVersion: version},
	}, nil
}

func newSyncService(store *testStore, source ReferenceSource) *SyncService {
	agg := NewAggregationService(store.stats, zerolog.Nop())
	return NewSyncService(source, store.refs, agg, store.history, zerolog.Nop())
}

func TestSyncService_SyncsCatalogAndAggregates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedParticipants(t, store, "NA1_A", "15.10.1.1", []domain.MatchParticipant{
		{ChampionID: 42, Role: strRef(domain.RoleMid), Win: true},
	})

	res, err := newSyncService(store, &fakeSource{version: "15.10.1"}).Sync(ctx)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.NotEmpty(t, res.SyncID)
	assert.Equal(t, "15.10.1", res.Version)
	assert.Equal(t, 2, res.Champions)
	assert.Equal(t, 1, res.Items)
	assert.Equal(t, 2, res.Runes)
	assert.Equal(t, 1, res.AggregatedStats)

	assert.Equal(t, 2, store.count(t, "champions"))
	assert.Equal(t, 1, store.count(t, "items"))
	assert.Equal(t, 2, store.count(t, "runes"))

	latest, err := store.history.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, res.SyncID, latest.ID)
	assert.Equal(t, "15.10", latest.PatchPrefix)
}

func TestSyncService_FetchFailureWritesNothing(t *testing.T) {
	store := newTestStore(t)
	source := &fakeSource{version: "15.10.1", itemsErr: errors.New("ddragon down")}

	_, err := newSyncService(store, source).Sync(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, store.count(t, "champions"))
	assert.Equal(t, 0, store.count(t, "sync_runs"))
}

func TestSyncService_History(t *testing.T) {
	store := newTestStore(t)
	svc := newSyncService(store, &fakeSource{version: "15.10.1"})

	for i := 0; i < 3; i++ {
		_, err := svc.Sync(context.Background())
		require.NoError(t, err)
	}

	runs, err := svc.History(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	runs, err = svc.History(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
