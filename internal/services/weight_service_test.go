package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"ironlog/internal/models/db_models"
	"ironlog/internal/models/request_models"
	"ironlog/pkg/utils"
)

type fakeWeightRepo struct {
	entries map[string]*db_models.WeightEntry // keyed on user|date
}

func newFakeWeightRepo() *fakeWeightRepo {
	return &fakeWeightRepo{entries: make(map[string]*db_models.WeightEntry)}
}

func weightKey(userID uuid.UUID, date time.Time) string {
	return userID.String() + "|" + date.Format("2006-01-02")
}

func (f *fakeWeightRepo) Upsert(_ context.Context, entry *db_models.WeightEntry) error {
	key := weightKey(entry.UserID, entry.Date)
	if existing, ok := f.entries[key]; ok {
		existing.Weight = entry.Weight
		entry.ID = existing.ID
		return nil
	}
	entry.ID = uuid.New()
	stored := *entry
	f.entries[key] = &stored
	return nil
}

func (f *fakeWeightRepo) FindByUserId(_ context.Context, userID uuid.UUID) ([]db_models.WeightEntry, error) {
	var out []db_models.WeightEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeWeightRepo) FindByUserIdAndDateRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.WeightEntry, error) {
	var out []db_models.WeightEntry
	for _, e := range f.entries {
		if e.UserID == userID && !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeWeightRepo) DeleteById(_ context.Context, id uuid.UUID) error {
	for k, e := range f.entries {
		if e.ID == id {
			delete(f.entries, k)
		}
	}
	return nil
}

func TestWeightService_SameDayOverwrites(t *testing.T) {
	repo := newFakeWeightRepo()
	svc := NewWeightService(repo)
	ctx := context.Background()

	userID := uuid.New().String()
	w1, w2 := 82.5, 81.9

	_, err := svc.SubmitWeight(ctx, request_models.CreateWeightEntryRequest{
		UserID: userID, Weight: &w1, Date: "2025-06-01",
	})
	require.NoError(t, err)

	_, err = svc.SubmitWeight(ctx, request_models.CreateWeightEntryRequest{
		UserID: userID, Weight: &w2, Date: "2025-06-01",
	})
	require.NoError(t, err)

	entries, err := svc.GetWeightEntries(ctx, userID, "", "")
	require.NoError(t, err)
	require.Len(t, entries, 1, "second write for the same day must overwrite, not append")
	require.Equal(t, w2, entries[0].Weight)
}

func TestWeightService_MissingFields(t *testing.T) {
	svc := NewWeightService(newFakeWeightRepo())
	ctx := context.Background()
	w := 80.0

	cases := []request_models.CreateWeightEntryRequest{
		{Weight: &w, Date: "2025-06-01"},
		{UserID: uuid.New().String(), Date: "2025-06-01"},
		{UserID: uuid.New().String(), Weight: &w},
	}
	for i, req := range cases {
		_, err := svc.SubmitWeight(ctx, req)
		require.ErrorIs(t, err, utils.ErrMissingRequiredFields, "case %d", i)
	}
}

func TestWeightService_DateRange(t *testing.T) {
	repo := newFakeWeightRepo()
	svc := NewWeightService(repo)
	ctx := context.Background()

	userID := uuid.New().String()
	w := 80.0
	for _, d := range []string{"2025-06-01", "2025-06-10", "2025-06-20"} {
		_, err := svc.SubmitWeight(ctx, request_models.CreateWeightEntryRequest{
			UserID: userID, Weight: &w, Date: d,
		})
		require.NoError(t, err)
	}

	entries, err := svc.GetWeightEntries(ctx, userID, "2025-06-05", "2025-06-15")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "2025-06-10", entries[0].Date)
}

func TestWeightService_Delete(t *testing.T) {
	repo := newFakeWeightRepo()
	svc := NewWeightService(repo)
	ctx := context.Background()

	userID := uuid.New().String()
	w := 80.0
	entry, err := svc.SubmitWeight(ctx, request_models.CreateWeightEntryRequest{
		UserID: userID, Weight: &w, Date: "2025-06-01",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWeightEntry(ctx, entry.ID))

	entries, err := svc.GetWeightEntries(ctx, userID, "", "")
	require.NoError(t, err)
	require.Empty(t, entries)
}
