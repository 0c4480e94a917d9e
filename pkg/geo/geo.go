package geo

import (
	"errors"
	"math"
)

const earthRadiusMeters = 6371000

var ErrEmptyPointSet = errors.New("empty point set")

// Coordinates is a WGS84 lat/lng pair. Value type, freely copied.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// BoundingBox is the padded min/max rectangle covering a point set.
type BoundingBox struct {
	Southwest Coordinates `json:"southwest"`
	Northeast Coordinates `json:"northeast"`
}

// Haversine returns the great-circle distance between a and b in meters.
func Haversine(a, b Coordinates) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// Center returns the arithmetic mean of the points. Good enough at city
// scale; no geodesic correction.
func Center(points []Coordinates) (Coordinates, error) {
	if len(points) == 0 {
		return Coordinates{}, ErrEmptyPointSet
	}

	var sumLat, sumLng float64
	for _, p := range points {
		sumLat += p.Lat
		sumLng += p.Lng
	}

	n := float64(len(points))
	return Coordinates{Lat: sumLat / n, Lng: sumLng / n}, nil
}

// boundsPadding expands the box so markers are not clipped at the map edge.
const boundsPadding = 0.10

// Bounds returns the min/max lat/lng rectangle over the points, expanded
// by a fixed padding fraction on each side.
func Bounds(points []Coordinates) (BoundingBox, error) {
	if len(points) == 0 {
		return BoundingBox{}, ErrEmptyPointSet
	}

	minLat, maxLat := points[0].Lat, points[0].Lat
	minLng, maxLng := points[0].Lng, points[0].Lng
	for _, p := range points[1:] {
		minLat = math.Min(minLat, p.Lat)
		maxLat = math.Max(maxLat, p.Lat)
		minLng = math.Min(minLng, p.Lng)
		maxLng = math.Max(maxLng, p.Lng)
	}

	padLat := (maxLat - minLat) * boundsPadding
	padLng := (maxLng - minLng) * boundsPadding

	return BoundingBox{
		Southwest: Coordinates{Lat: minLat - padLat, Lng: minLng - padLng},
		Northeast: Coordinates{Lat: maxLat + padLat, Lng: maxLng + padLng},
	}, nil
}
