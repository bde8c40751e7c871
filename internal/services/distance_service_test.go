package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKmKnownDistance(t *testing.T) {
	svc := NewDistanceService(nil)

	// Ben Thanh Market to the Saigon Notre-Dame Basilica, roughly 1.1 km.
	km := svc.HaversineKm(10.7721, 106.6983, 10.7798, 106.6990)
	assert.InDelta(t, 0.86, km, 0.05)

	// Ho Chi Minh City to Hanoi, roughly 1140 km.
	km = svc.HaversineKm(10.7769, 106.7009, 21.0278, 105.8342)
	assert.InDelta(t, 1140, km, 20)
}

func TestHaversineKmZeroForSamePoint(t *testing.T) {
	svc := NewDistanceService(nil)
	assert.Equal(t, 0.0, svc.HaversineKm(10.7769, 106.7009, 10.7769, 106.7009))
}

func TestTravelMinutesDefaultSpeed(t *testing.T) {
	svc := NewDistanceService(nil)

	// 40 km/h default: 20 km takes 30 minutes.
	assert.Equal(t, 30, svc.TravelMinutes(20))
	assert.Equal(t, 0, svc.TravelMinutes(0))
}

func TestTravelMinutesCustomSpeedModel(t *testing.T) {
	svc := NewDistanceService(ConstantSpeedModel{SpeedKmh: 60})
	assert.Equal(t, 20, svc.TravelMinutes(20))
}

func TestBuildMatricesSymmetricWithZeroDiagonal(t *testing.T) {
	svc := NewDistanceService(nil)

	locations := []GeoPoint{
		{Latitude: 10.7769, Longitude: 106.7009},
		{Latitude: 10.7798, Longitude: 106.6990},
		{Latitude: 10.8231, Longitude: 106.6297},
	}

	distKm, timeMin := svc.BuildMatrices(locations)

	assert.Len(t, distKm, 3)
	assert.Len(t, timeMin, 3)
	for i := range locations {
		assert.Equal(t, 0.0, distKm[i][i])
		assert.Equal(t, 0, timeMin[i][i])
		for j := range locations {
			assert.InDelta(t, distKm[i][j], distKm[j][i], 1e-9)
		}
	}
	assert.Greater(t, distKm[0][2], distKm[0][1])
}
