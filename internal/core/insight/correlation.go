package insight

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/peoplelens/attritiond/internal/core/employee"
	"github.com/peoplelens/attritiond/internal/core/filter"
)

// Matrix is a square Pearson correlation matrix over Columns. Undefined coefficients are NaN.
type Matrix struct {
	Columns []string
	Values  [][]float64
}

func (m Matrix) At(row, col string) (float64, bool) {
	i, j := -1, -1
	for k, c := range m.Columns {
		if c == row {
			i = k
		}
		if c == col {
			j = k
		}
	}
	if i < 0 || j < 0 {
		return math.NaN(), false
	}
	return m.Values[i][j], true
}

// CorrelationMatrix computes pairwise-complete Pearson coefficients between every numeric
// column of the dataset, in header order. A coefficient is NaN when fewer than two shown
// records carry both values or when either column is constant over those records.
func CorrelationMatrix(t *filter.Table) Matrix {
	columns := t.Dataset().NumericColumns()

	vectors := make([][]float64, len(columns))
	for i := range vectors {
		vectors[i] = make([]float64, 0, t.Len())
	}
	t.Each(func(r employee.Record) {
		for i, c := range columns {
			vectors[i] = append(vectors[i], r.Number(c))
		}
	})

	values := make([][]float64, len(columns))
	for i := range values {
		values[i] = make([]float64, len(columns))
	}
	for i := range columns {
		for j := i; j < len(columns); j++ {
			v := pearson(vectors[i], vectors[j])
			if i == j && !math.IsNaN(v) {
				v = 1
			}
			values[i][j] = v
			values[j][i] = v
		}
	}

	return Matrix{Columns: columns, Values: values}
}

func pearson(a, b []float64) float64 {
	x := make(stats.Float64Data, 0, len(a))
	y := make(stats.Float64Data, 0, len(b))
	for k := range a {
		if math.IsNaN(a[k]) || math.IsNaN(b[k]) {
			continue
		}
		x = append(x, a[k])
		y = append(y, b[k])
	}
	if len(x) < 2 || isConstant(x) || isConstant(y) {
		return math.NaN()
	}

	r, err := stats.Pearson(x, y)
	if err != nil {
		return math.NaN()
	}
	return math.Max(-1, math.Min(1, r))
}

func isConstant(data stats.Float64Data) bool {
	for _, v := range data[1:] {
		if v != data[0] {
			return false
		}
	}
	return true
}
