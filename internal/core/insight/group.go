package insight

import (
	"github.com/ahmetb/go-linq/v3"

	"github.com/peoplelens/attritiond/internal/constant"
	"github.com/peoplelens/attritiond/internal/core/employee"
	"github.com/peoplelens/attritiond/internal/core/filter"
)

// GroupCount is the number of shown records having Value in the grouped
// column and Split in the split column.
type GroupCount struct {
	Value string `json:"value"`
	Split string `json:"split"`
	Count int    `json:"count"`
}

type groupKey struct {
	value string
	split string
}

type groupCell struct {
	GroupCount
	order float64
}

// GroupCounts counts the shown records per (dimension, splitBy) value pair. Only observed pairs
// are listed. Cells are ordered by dimension value, numerically for numeric columns and lexically
// otherwise, then by split value. The counts always sum to the number of shown records.
func GroupCounts(t *filter.Table, dimension, splitBy string) ([]GroupCount, error) {
	ds := t.Dataset()
	if !ds.HasColumn(dimension) || !ds.HasColumn(splitBy) {
		return nil, ErrUnknownColumn
	}
	numeric := ds.IsNumeric(dimension)

	counts := make(map[groupKey]*groupCell)
	t.Each(func(r employee.Record) {
		v, _ := r.Value(dimension)
		s, _ := r.Value(splitBy)
		k := groupKey{value: v, split: s}
		c, ok := counts[k]
		if !ok {
			c = &groupCell{GroupCount: GroupCount{Value: v, Split: s}}
			if numeric {
				c.order = r.Number(dimension)
			}
			counts[k] = c
		}
		c.Count++
	})

	cells := make([]groupCell, 0, len(counts))
	for _, c := range counts {
		cells = append(cells, *c)
	}

	q := linq.From(cells)
	var ordered linq.OrderedQuery
	if numeric {
		ordered = q.OrderByT(func(c groupCell) float64 { return c.order }).
			ThenByT(func(c groupCell) string { return c.Value })
	} else {
		ordered = q.OrderByT(func(c groupCell) string { return c.Value })
	}

	result := make([]GroupCount, 0, len(cells))
	ordered.
		ThenByT(func(c groupCell) string { return c.Split }).
		SelectT(func(c groupCell) GroupCount { return c.GroupCount }).
		ToSlice(&result)
	return result, nil
}

// AttritionGroups counts the shown records per value of dimension, split by attrition.
func AttritionGroups(t *filter.Table, dimension string) ([]GroupCount, error) {
	return GroupCounts(t, dimension, constant.ColumnAttrition)
}

// ValueCount is the number of shown records having Value.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// AttritionCounts counts the shown records per attrition value, most frequent first.
func AttritionCounts(t *filter.Table) []ValueCount {
	counts := make(map[string]int)
	t.Each(func(r employee.Record) {
		counts[r.Attrition]++
	})

	result := make([]ValueCount, 0, len(counts))
	linq.From(counts).
		SelectT(func(kv linq.KeyValue) ValueCount {
			return ValueCount{Value: kv.Key.(string), Count: kv.Value.(int)}
		}).
		OrderByDescendingT(func(v ValueCount) int { return v.Count }).
		ThenByT(func(v ValueCount) string { return v.Value }).
		ToSlice(&result)
	return result
}
