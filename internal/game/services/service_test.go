package services

import (
	"testing"
	"time"

	"fogexplore/internal/game/dto"
	"fogexplore/internal/players/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestBuildStateSetStatsOnlyLeavesOtherFieldsAlone(t *testing.T) {
	now := time.Now()

	set := buildStateSet(dto.SaveMapDataRequest{
		Stats: &dto.StatsPatch{DistanceTravelled: floatPtr(1234.5)},
	}, now)

	assert.Equal(t, 1234.5, set["stats.distanceTravelled"])
	assert.Equal(t, now, set["lastLogin"])
	assert.Equal(t, now, set["updatedAt"])

	// A counters-only save must not touch any other document field
	for _, key := range []string{"checkpoints", "pathHistory", "location", "fogClearedArea", "stats.totalCheckpoints"} {
		assert.NotContains(t, set, key)
	}
}

func TestBuildStateSetEmptyPayloadOnlyRestampsBaseline(t *testing.T) {
	now := time.Now()

	set := buildStateSet(dto.SaveMapDataRequest{}, now)

	require.Len(t, set, 2)
	assert.Equal(t, now, set["lastLogin"])
	assert.Equal(t, now, set["updatedAt"])
}

func TestBuildStateSetFullPayload(t *testing.T) {
	now := time.Now()

	set := buildStateSet(dto.SaveMapDataRequest{
		Location:       &models.Location{Coordinates: []float64{4.89, 52.37}},
		PathHistory:    [][]float64{{4.89, 52.37}},
		Checkpoints:    []models.Checkpoint{{Name: "harbor", Lat: 52.37, Lng: 4.89}},
		FogClearedArea: [][]float64{{4.89, 52.37}},
		Stats: &dto.StatsPatch{
			DistanceTravelled: floatPtr(10),
			TotalCheckpoints:  intPtr(1),
		},
	}, now)

	assert.Contains(t, set, "location")
	assert.Contains(t, set, "pathHistory")
	assert.Contains(t, set, "checkpoints")
	assert.Contains(t, set, "fogClearedArea")
	assert.Equal(t, 10.0, set["stats.distanceTravelled"])
	assert.Equal(t, 1, set["stats.totalCheckpoints"])
}

func TestBuildStateSetEmptySlicesStillClear(t *testing.T) {
	// A present-but-empty slice is an explicit clear, not an absent field
	set := buildStateSet(dto.SaveMapDataRequest{
		PathHistory: [][]float64{},
		Checkpoints: []models.Checkpoint{},
	}, time.Now())

	assert.Contains(t, set, "pathHistory")
	assert.Contains(t, set, "checkpoints")
}

func TestBuildStateSetLocationDefaults(t *testing.T) {
	now := time.Now()

	set := buildStateSet(dto.SaveMapDataRequest{
		Location: &models.Location{Coordinates: []float64{4.89, 52.37}},
	}, now)

	location, ok := set["location"].(*models.Location)
	require.True(t, ok)
	assert.Equal(t, "Point", location.Type)
	assert.Equal(t, now, location.LastUpdated)
}

func TestBuildStateSetLocationKeepsExplicitValues(t *testing.T) {
	stamped := time.Now().Add(-time.Minute)

	set := buildStateSet(dto.SaveMapDataRequest{
		Location: &models.Location{Type: "Point", Coordinates: []float64{4.89, 52.37}, LastUpdated: stamped},
	}, time.Now())

	location, ok := set["location"].(*models.Location)
	require.True(t, ok)
	assert.Equal(t, stamped, location.LastUpdated)
}

func TestSessionDelta(t *testing.T) {
	now := time.Now()
	earlier := now.Add(-90 * time.Second)
	future := now.Add(time.Hour)

	assert.Equal(t, int64(0), sessionDelta(nil, now))
	assert.Equal(t, int64(90), sessionDelta(&earlier, now))
	assert.Equal(t, int64(0), sessionDelta(&future, now))
}
