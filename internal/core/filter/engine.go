package filter

import (
	"github.com/peoplelens/attritiond/internal/core/employee"
)

// Table is a read-only view of the records of a Dataset that passed a filter.
type Table struct {
	ds   *employee.Dataset
	rows []int
}

// Apply selects the records whose department and gender are selected and whose age lies
// inside the age range. It never modifies ds.
func Apply(ds *employee.Dataset, st State) *Table {
	t := &Table{ds: ds}
	if len(st.departments) == 0 || len(st.genders) == 0 {
		return t
	}

	ds.Each(func(i int, r employee.Record) {
		if st.HasDepartment(r.Department) && st.HasGender(r.Gender) && st.AgeRange.Contains(r.Age) {
			t.rows = append(t.rows, i)
		}
	})
	return t
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Row(i int) employee.Record {
	return t.ds.Row(t.rows[i])
}

func (t *Table) Each(fn func(r employee.Record)) {
	for _, i := range t.rows {
		fn(t.ds.Row(i))
	}
}

// Dataset returns the dataset the table was filtered from.
func (t *Table) Dataset() *employee.Dataset {
	return t.ds
}
