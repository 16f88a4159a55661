package insight

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/peoplelens/attritiond/internal/constant"
	"github.com/peoplelens/attritiond/internal/core/employee"
	"github.com/peoplelens/attritiond/internal/core/filter"
)

// BoxStats is the five-number summary of a numeric column for one split value.
// Quartiles use the nearest-rank method.
type BoxStats struct {
	Split  string
	Count  int
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	Mean   float64
}

// Distribution summarizes column over the shown records for every split value, ordered by split value.
// Empty cells are skipped.
func Distribution(t *filter.Table, column, splitBy string) ([]BoxStats, error) {
	ds := t.Dataset()
	if !ds.HasColumn(column) || !ds.HasColumn(splitBy) {
		return nil, ErrUnknownColumn
	}
	if !ds.IsNumeric(column) {
		return nil, ErrNotNumeric
	}

	groups := make(map[string]stats.Float64Data)
	t.Each(func(r employee.Record) {
		v := r.Number(column)
		if math.IsNaN(v) {
			return
		}
		s, _ := r.Value(splitBy)
		groups[s] = append(groups[s], v)
	})

	splits := make([]string, 0, len(groups))
	for s := range groups {
		splits = append(splits, s)
	}
	sort.Strings(splits)

	result := make([]BoxStats, 0, len(splits))
	for _, s := range splits {
		result = append(result, summarize(s, groups[s]))
	}
	return result, nil
}

// AttritionDistribution summarizes column split by attrition.
func AttritionDistribution(t *filter.Table, column string) ([]BoxStats, error) {
	return Distribution(t, column, constant.ColumnAttrition)
}

func summarize(split string, data stats.Float64Data) BoxStats {
	// data is never empty here, so the errors below cannot occur.
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	median, _ := stats.Median(data)
	mean, _ := stats.Mean(data)
	q1, _ := stats.PercentileNearestRank(data, 25)
	q3, _ := stats.PercentileNearestRank(data, 75)

	return BoxStats{
		Split:  split,
		Count:  len(data),
		Min:    min,
		Q1:     q1,
		Median: median,
		Q3:     q3,
		Max:    max,
		Mean:   mean,
	}
}
