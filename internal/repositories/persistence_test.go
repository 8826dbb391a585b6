package repositories

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triptalk/internal/models/db_models"
	"triptalk/internal/models/trip_models"
	"triptalk/pkg/logger"
)

func samplePlans() []trip_models.TripPlan {
	a := planFor("a", jejuInput(trip_models.StyleNature, trip_models.StyleHealing))
	a.DailySchedules = []trip_models.DailySchedule{{
		Day:  1,
		Date: "2024.03.15",
		Schedules: []trip_models.ScheduleItem{
			{OrderIndex: 1, Time: "10:00", Title: "제주공항 도착", Description: "렌터카 수령"},
		},
	}}
	a.OutboundTransportation = &trip_models.TransportationLeg{Origin: "김포", Destination: "제주", Name: "제주항공", Price: 65000}
	a.Accommodations = []trip_models.Accommodation{{Name: "해비치 호텔", Address: "서귀포시", PricePerNight: 250000}}

	b := planFor("b", jejuInput(trip_models.StyleFoodFocus))
	b.Destination = "부산"
	return []trip_models.TripPlan{a, b}
}

func TestJSONFilePersistence_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "travel_data.json")
	p := NewJSONFilePersistence(path, logger.Nop())
	ctx := context.Background()

	require.NoError(t, p.Save(ctx, samplePlans()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "{\n  \"data\": ["))
	assert.Contains(t, string(raw), "제주공항 도착")

	got, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, samplePlans(), got)
}

func TestJSONFilePersistence_MissingAndCorrupt(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	got, err := NewJSONFilePersistence(filepath.Join(dir, "absent.json"), logger.Nop()).Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	corrupt := filepath.Join(dir, "corrupt.json")
	require.NoError(t, os.WriteFile(corrupt, []byte(`{"data": [{"id": `), 0o644))
	_, err = NewJSONFilePersistence(corrupt, logger.Nop()).Load(ctx)
	assert.Error(t, err)

	store := NewTripStore(NewJSONFilePersistence(corrupt, logger.Nop()), logger.Nop())
	require.NoError(t, store.Load(ctx))
	assert.Zero(t, store.Len())
}

func TestJSONFilePersistence_SkipsBadRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "travel_data.json")
	doc := `{"data": [
		{"id": "good", "title": "제주도 여행", "destination": "제주도", "travel_styles": ["NATURE"]},
		{"id": "stale", "title": "부산 여행", "destination": "부산", "travel_styles": ["SKYDIVING"]},
		{"id": "empty-leg", "destination": "강릉", "outbound_transportation": {"price": 1000}},
		"not a record"
	]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	ctx := context.Background()

	got, err := NewJSONFilePersistence(path, logger.Nop()).Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "good", got[0].ID)

	store := NewTripStore(NewJSONFilePersistence(path, logger.Nop()), logger.Nop())
	require.NoError(t, store.Load(ctx))
	require.Equal(t, 1, store.Len())
	require.NoError(t, store.Upsert(ctx, "new", planFor("new", jejuInput(trip_models.StyleFoodFocus))))

	reloaded, err := NewJSONFilePersistence(path, logger.Nop()).Load(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(reloaded))
	for _, p := range reloaded {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"good", "new"}, ids)
}

func TestJSONFilePersistence_LegacyRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "travel_data.json")
	legacy := `{"data": [{
		"id": "legacy-1",
		"title": "제주도 여행",
		"destination": "제주도",
		"travel_styles": ["자연과 함께", "HEALING"],
		"highlights": [{"id": "h1", "content": "성산일출봉"}, "한라산"],
		"daily_schedules": [{"day": 1, "date": "2024-03-15", "schedules": [{"sequence": 1, "time": "09:00", "title": "공항"}]}],
		"outbound_transportation": {"type": "항공", "route": "김포 -> 제주", "price": "65,000원", "company": "제주항공"},
		"return_transportation": null,
		"accommodations": [{"name": "호텔", "price_per_night": "250,000원", "check_in_date": "2024-03-15", "nights": 2}]
	}]}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	got, err := NewJSONFilePersistence(path, logger.Nop()).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	plan := got[0]
	assert.Equal(t, []trip_models.TravelStyle{trip_models.StyleNature, trip_models.StyleHealing}, plan.TravelStyles)
	assert.Equal(t, trip_models.HighlightList{"성산일출봉", "한라산"}, plan.Highlights)
	assert.Equal(t, 1, plan.DailySchedules[0].Schedules[0].OrderIndex)
	require.NotNil(t, plan.OutboundTransportation)
	assert.Equal(t, "김포", plan.OutboundTransportation.Origin)
	assert.Equal(t, 65000, plan.OutboundTransportation.Price)
	assert.Nil(t, plan.ReturnTransportation)
	assert.Equal(t, 250000, plan.Accommodations[0].PricePerNight)
}

func TestBoltPersistence_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trips.bolt")
	p, err := NewBoltPersistence(path, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	ctx := context.Background()

	empty, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, p.Save(ctx, samplePlans()))
	got, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, samplePlans(), got)

	// a smaller snapshot replaces the previous one entirely
	require.NoError(t, p.Save(ctx, samplePlans()[1:]))
	got, err = p.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestBoltPersistence_KeepsOrderPastTenEntries(t *testing.T) {
	p, err := NewBoltPersistence(filepath.Join(t.TempDir(), "trips.bolt"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	var plans []trip_models.TripPlan
	for _, id := range []string{"k", "j", "i", "h", "g", "f", "e", "d", "c", "b", "a", "z"} {
		plans = append(plans, planFor(id, jejuInput()))
	}
	require.NoError(t, p.Save(context.Background(), plans))

	got, err := p.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, len(plans))
	for i := range plans {
		assert.Equal(t, plans[i].ID, got[i].ID)
	}
}

func TestTripStore_OverBolt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trips.bolt")
	p, err := NewBoltPersistence(path, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	store := NewTripStore(p, logger.Nop())
	for _, plan := range samplePlans() {
		require.NoError(t, store.Upsert(ctx, plan.ID, plan))
	}
	require.NoError(t, store.Delete(ctx, "a"))
	require.NoError(t, p.Close())

	reopened, err := NewBoltPersistence(path, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	again := NewTripStore(reopened, logger.Nop())
	require.NoError(t, again.Load(ctx))
	list := again.List()
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].ID)
}

func TestTripRecord_Conversion(t *testing.T) {
	plan := samplePlans()[0]

	row, err := db_models.NewTripRecord(3, plan)
	require.NoError(t, err)
	assert.Equal(t, "a", row.ID)
	assert.Equal(t, 3, row.Position)
	assert.Equal(t, []string{"NATURE", "HEALING"}, []string(row.TravelStyles))
	assert.Equal(t, "trip_records", row.TableName())

	back, err := row.TripPlan()
	require.NoError(t, err)
	assert.Equal(t, plan, back)
}

func TestPlanWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outputs", "latest_plan.md")
	w := NewPlanWriter(path, logger.Nop())

	w.WriteLatest("# 첫 번째")
	w.WriteLatest("# 두 번째")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# 두 번째", string(raw))
}

func TestPlanWriter_FailureIsSwallowed(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	w := NewPlanWriter(filepath.Join(blocker, "latest_plan.md"), logger.Nop())
	assert.NotPanics(t, func() { w.WriteLatest("x") })
}
