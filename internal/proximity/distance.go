package proximity

import (
	"math"

	"github.com/shenikar/emergency_dispatch/internal/models"
)

// EarthRadiusKm - радиус Земли, используемый в формуле гаверсинуса
const EarthRadiusKm = 6371.0

// Distance возвращает расстояние по дуге большого круга между двумя точками в километрах.
// Если одна из точек некорректна, возвращается +Inf.
func Distance(a, b models.Location) float64 {
	if !a.Valid() || !b.Valid() {
		return math.Inf(1)
	}

	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*sinLon*sinLon

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
