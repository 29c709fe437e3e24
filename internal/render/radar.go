package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/BerylCAtieno/careerpath-agent/internal/models"
)

const (
	radarSize   = 320.0
	radarRadius = 110.0
	labelOffset = 22.0
)

// Radar is the precomputed geometry of the competency chart.
type Radar struct {
	Size    float64
	Center  float64
	Rings   []string
	Spokes  []Line
	Labels  []Label
	Polygon string
}

type Line struct {
	X1, Y1, X2, Y2 float64
}

type Label struct {
	X, Y   float64
	Text   string
	Score  float64
	Anchor string
}

// NewRadar lays out one axis per radar point, starting at twelve o'clock and
// going clockwise. Scores are scaled by their own full mark.
func NewRadar(points []models.RadarPoint) Radar {
	c := radarSize / 2
	r := Radar{Size: radarSize, Center: c}
	n := len(points)
	if n == 0 {
		return r
	}

	for _, frac := range []float64{0.25, 0.5, 0.75, 1} {
		ring := make([]string, n)
		for i := range points {
			x, y := polar(c, radarRadius*frac, i, n)
			ring[i] = coord(x, y)
		}
		r.Rings = append(r.Rings, strings.Join(ring, " "))
	}

	poly := make([]string, n)
	for i, p := range points {
		x, y := polar(c, radarRadius, i, n)
		r.Spokes = append(r.Spokes, Line{X1: c, Y1: c, X2: round(x), Y2: round(y)})

		lx, ly := polar(c, radarRadius+labelOffset, i, n)
		r.Labels = append(r.Labels, Label{
			X:      round(lx),
			Y:      round(ly),
			Text:   p.Subject,
			Score:  p.Score,
			Anchor: anchor(lx, c),
		})

		frac := 0.0
		if p.FullMark > 0 {
			frac = math.Min(p.Score/p.FullMark, 1)
		}
		px, py := polar(c, radarRadius*frac, i, n)
		poly[i] = coord(px, py)
	}
	r.Polygon = strings.Join(poly, " ")
	return r
}

func polar(c, radius float64, i, n int) (float64, float64) {
	angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
	return c + radius*math.Cos(angle), c + radius*math.Sin(angle)
}

func anchor(x, c float64) string {
	switch {
	case x < c-1:
		return "end"
	case x > c+1:
		return "start"
	default:
		return "middle"
	}
}

func round(v float64) float64 {
	return math.Round(v*10) / 10
}

func coord(x, y float64) string {
	return fmt.Sprintf("%.1f,%.1f", x, y)
}
