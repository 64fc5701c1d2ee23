package aggregators

import (
	"behavior-analytics/internal/models"
)

const DefaultHeatmapBucketSize = 10

// HeatmapRolluper buckets raw mouse samples into a fixed-size grid at
// read time. Bucketing is a pure function of bucket size and point
// coordinates; nothing aggregated is ever persisted. The order of the
// returned buckets is not guaranteed.
//
//go:generate mockgen -source=heatmap_rolluper.go -destination=./mocks/heatmap_rolluper_mock.go -package=mocks
type HeatmapRolluper interface {
	// Rollup returns the summed-count buckets plus the total raw point
	// count before bucketing.
	Rollup(points []*models.HeatmapPoint) ([]models.HeatmapBucket, int64)
}

type heatmapRolluper struct {
	bucketSize int
}

func NewHeatmapRolluper(bucketSize int) HeatmapRolluper {
	if bucketSize <= 0 {
		bucketSize = DefaultHeatmapBucketSize
	}
	return &heatmapRolluper{bucketSize: bucketSize}
}

func (r *heatmapRolluper) Rollup(points []*models.HeatmapPoint) ([]models.HeatmapBucket, int64) {
	type cell struct{ x, y int }
	counts := make(map[cell]int64)

	for _, p := range points {
		c := cell{
			x: bucketOrigin(p.X, r.bucketSize),
			y: bucketOrigin(p.Y, r.bucketSize),
		}
		counts[c] += p.Count
	}

	buckets := make([]models.HeatmapBucket, 0, len(counts))
	for c, count := range counts {
		buckets = append(buckets, models.HeatmapBucket{X: c.x, Y: c.y, Count: count})
	}
	return buckets, int64(len(points))
}

// bucketOrigin floors a coordinate to its bucket's origin.
func bucketOrigin(v, size int) int {
	q := v / size
	if v%size != 0 && v < 0 {
		q--
	}
	return q * size
}
