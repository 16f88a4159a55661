package insight

import (
	"fmt"

	"github.com/peoplelens/attritiond/internal/core/employee"
	"github.com/peoplelens/attritiond/internal/core/filter"
	"github.com/peoplelens/attritiond/internal/util"
)

// Rate is a percentage rounded to two decimals.
type Rate float64

func (r Rate) String() string {
	return fmt.Sprintf("%.2f%%", float64(r))
}

func TotalCount(ds *employee.Dataset) int {
	return ds.Len()
}

func ShownCount(t *filter.Table) int {
	return t.Len()
}

// AttritionRate is the share of leavers in the whole dataset. Filters never affect it.
func AttritionRate(ds *employee.Dataset) Rate {
	yes := 0
	ds.Each(func(_ int, r employee.Record) {
		if r.Attrited() {
			yes++
		}
	})
	return Rate(util.Percent(yes, ds.Len(), 2))
}
