package features

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

type Bbox struct {
	MinLng float64
	MinLat float64
	MaxLng float64
	MaxLat float64
}

func NewBbox(minLng, minLat, maxLng, maxLat float64) Bbox {
	return Bbox{
		MinLng: minLng,
		MinLat: minLat,
		MaxLng: maxLng,
		MaxLat: maxLat,
	}
}

// ParseBbox reads the four path parameters min_lng, min_lat, max_lng, max_lat.
func ParseBbox(minLng, minLat, maxLng, maxLat string) (Bbox, error) {
	coords := make([]float64, 0, 4)

	for _, s := range []string{minLng, minLat, maxLng, maxLat} {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return Bbox{}, fmt.Errorf("%w: invalid bbox coordinate %q", ErrMalformedGeometry, s)
		}
		coords = append(coords, f)
	}

	return NewBbox(coords[0], coords[1], coords[2], coords[3]), nil
}

// WKT renders the box as a closed polygon ring starting and ending at the min corner.
func (b Bbox) WKT() string {
	ring := b.Ring()

	points := make([]string, 0, len(ring))
	for _, p := range ring {
		points = append(points, formatCoord(p[0])+" "+formatCoord(p[1]))
	}

	return "POLYGON((" + strings.Join(points, ", ") + "))"
}

func (b Bbox) Ring() orb.Ring {
	return orb.Ring{
		{b.MinLng, b.MinLat},
		{b.MinLng, b.MaxLat},
		{b.MaxLng, b.MaxLat},
		{b.MaxLng, b.MinLat},
		{b.MinLng, b.MinLat},
	}
}

func (b Bbox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinLng, b.MinLat},
		Max: orb.Point{b.MaxLng, b.MaxLat},
	}
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
