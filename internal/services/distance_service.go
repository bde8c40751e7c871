package services

import "math"

const earthRadiusKm = 6371

// GeoPoint is anything the distance service can position on the globe.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// SpeedModel converts a distance into travel minutes. Injecting it keeps the
// travel-time assumption swappable without touching the matrix builder.
type SpeedModel interface {
	TravelMinutes(distanceKm float64) int
}

// ConstantSpeedModel assumes a single average speed for every leg.
type ConstantSpeedModel struct {
	SpeedKmh float64
}

func (m ConstantSpeedModel) TravelMinutes(distanceKm float64) int {
	if distanceKm <= 0 || m.SpeedKmh <= 0 {
		return 0
	}
	return int(distanceKm / m.SpeedKmh * 60)
}

type DistanceServiceInterface interface {
	HaversineKm(lat1, lon1, lat2, lon2 float64) float64
	TravelMinutes(distanceKm float64) int
	BuildMatrices(locations []GeoPoint) ([][]float64, [][]int)
}

type DistanceService struct {
	speed SpeedModel
}

func NewDistanceService(speed SpeedModel) DistanceServiceInterface {
	if speed == nil {
		speed = ConstantSpeedModel{SpeedKmh: 40}
	}
	return &DistanceService{speed: speed}
}

// HaversineKm returns the great-circle distance between two coordinates.
func (d *DistanceService) HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}

func (d *DistanceService) TravelMinutes(distanceKm float64) int {
	return d.speed.TravelMinutes(distanceKm)
}

// BuildMatrices computes the full pairwise distance (km) and travel-time
// (minutes) matrices with a zero diagonal. O(n²), fine for the bounded
// candidate sets the optimizer works on.
func (d *DistanceService) BuildMatrices(locations []GeoPoint) ([][]float64, [][]int) {
	n := len(locations)
	distKm := make([][]float64, n)
	timeMin := make([][]int, n)

	for i := 0; i < n; i++ {
		distKm[i] = make([]float64, n)
		timeMin[i] = make([]int, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			km := d.HaversineKm(
				locations[i].Latitude, locations[i].Longitude,
				locations[j].Latitude, locations[j].Longitude,
			)
			distKm[i][j] = km
			timeMin[i][j] = d.speed.TravelMinutes(km)
		}
	}

	return distKm, timeMin
}
