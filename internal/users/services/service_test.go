package services

import (
	"testing"

	"fogexplore/internal/players/models"
	"fogexplore/internal/users/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func sampleCheckpoints() []models.Checkpoint {
	return []models.Checkpoint{
		{Name: "harbor", Lat: 52.37, Lng: 4.89},
		{Name: "park", Lat: 52.36, Lng: 4.88},
		{Name: "bridge", Lat: 52.37, Lng: 4.89},
	}
}

func TestRemoveCheckpointsByIndex(t *testing.T) {
	remaining, err := removeCheckpoints(sampleCheckpoints(), dto.DeleteCheckpointRequest{
		UserID: "id",
		Index:  intPtr(1),
	})
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, "harbor", remaining[0].Name)
	assert.Equal(t, "bridge", remaining[1].Name)
}

func TestRemoveCheckpointsIndexOutOfBounds(t *testing.T) {
	for _, idx := range []int{-1, 3, 100} {
		_, err := removeCheckpoints(sampleCheckpoints(), dto.DeleteCheckpointRequest{
			UserID: "id",
			Index:  intPtr(idx),
		})
		assert.ErrorIs(t, err, ErrInvalidCheckpointIndex, "index %d", idx)
	}
}

func TestRemoveCheckpointsByCoordinates(t *testing.T) {
	// Both checkpoints at the exact coordinate pair are removed
	remaining, err := removeCheckpoints(sampleCheckpoints(), dto.DeleteCheckpointRequest{
		UserID: "id",
		Lat:    floatPtr(52.37),
		Lng:    floatPtr(4.89),
	})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "park", remaining[0].Name)
}

func TestRemoveCheckpointsCoordinateMissEmptiesNothing(t *testing.T) {
	remaining, err := removeCheckpoints(sampleCheckpoints(), dto.DeleteCheckpointRequest{
		UserID: "id",
		Lat:    floatPtr(0),
		Lng:    floatPtr(0),
	})
	require.NoError(t, err)
	assert.Len(t, remaining, 3)
}

func TestRemoveCheckpointsMissingSelector(t *testing.T) {
	_, err := removeCheckpoints(sampleCheckpoints(), dto.DeleteCheckpointRequest{UserID: "id"})
	assert.ErrorIs(t, err, ErrCheckpointSelector)

	// Half a coordinate pair is not a selector either
	_, err = removeCheckpoints(sampleCheckpoints(), dto.DeleteCheckpointRequest{
		UserID: "id",
		Lat:    floatPtr(52.37),
	})
	assert.ErrorIs(t, err, ErrCheckpointSelector)
}

func TestRemoveCheckpointsIndexWinsOverCoordinates(t *testing.T) {
	remaining, err := removeCheckpoints(sampleCheckpoints(), dto.DeleteCheckpointRequest{
		UserID: "id",
		Index:  intPtr(0),
		Lat:    floatPtr(52.36),
		Lng:    floatPtr(4.88),
	})
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, "park", remaining[0].Name)
}

func TestRemoveCheckpointsNeverReturnsNil(t *testing.T) {
	remaining, err := removeCheckpoints([]models.Checkpoint{{Name: "only", Lat: 1, Lng: 2}}, dto.DeleteCheckpointRequest{
		UserID: "id",
		Index:  intPtr(0),
	})
	require.NoError(t, err)
	assert.NotNil(t, remaining)
	assert.Empty(t, remaining)
}
