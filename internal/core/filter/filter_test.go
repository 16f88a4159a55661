package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peoplelens/attritiond/internal/core/employee"
	"github.com/peoplelens/attritiond/internal/core/filter"
	"github.com/peoplelens/attritiond/internal/pkg/testentry"
)

func TestDefaultStateSelectsEverything(t *testing.T) {
	ds := testentry.Dataset(t, testentry.SampleCSV)
	st := filter.DefaultState(ds)

	assert.Equal(t, []string{"Human Resources", "Research & Development", "Sales"}, st.Departments())
	assert.Equal(t, []string{"Female", "Male"}, st.Genders())
	assert.Equal(t, filter.AgeRange{Min: 27, Max: 59}, st.AgeRange)

	table := filter.Apply(ds, st)
	assert.Equal(t, ds.Len(), table.Len())
	assert.Same(t, ds, table.Dataset())
}

func TestEmptySelectionYieldsNoRows(t *testing.T) {
	ds := testentry.Dataset(t, testentry.SampleCSV)

	st := filter.DefaultState(ds)
	st.SetDepartments()
	assert.Equal(t, 0, filter.Apply(ds, st).Len())

	st = filter.DefaultState(ds)
	st.SetGenders()
	assert.Equal(t, 0, filter.Apply(ds, st).Len())

	assert.Equal(t, 0, filter.Apply(ds, filter.State{}).Len())
}

func TestSetAgeRangeClamps(t *testing.T) {
	ds := testentry.Dataset(t, testentry.SampleCSV)
	st := filter.DefaultState(ds)

	st.SetAgeRange(0, 200)
	assert.Equal(t, filter.AgeRange{Min: 27, Max: 59}, st.AgeRange)

	st.SetAgeRange(30, 40)
	assert.Equal(t, filter.AgeRange{Min: 30, Max: 40}, st.AgeRange)

	st.SetAgeRange(45, 35)
	assert.Equal(t, filter.AgeRange{Min: 45, Max: 35}, st.AgeRange)
	assert.Equal(t, 0, filter.Apply(ds, st).Len())
}

func TestApplyWorkedExample(t *testing.T) {
	ds := testentry.Dataset(t, testentry.ThreeRowCSV)
	st := filter.DefaultState(ds)
	st.SetDepartments("A")
	st.SetGenders("M", "F")
	st.SetAgeRange(25, 45)

	assert.Equal(t, filter.AgeRange{Min: 30, Max: 45}, st.AgeRange)

	table := filter.Apply(ds, st)
	assert.Equal(t, 2, table.Len())

	var ages []int
	table.Each(func(r employee.Record) { ages = append(ages, r.Age) })
	assert.Equal(t, []int{30, 40}, ages)
	assert.Equal(t, "A", table.Row(1).Department)
}

func TestApplyDoesNotMutateDataset(t *testing.T) {
	ds := testentry.Dataset(t, testentry.SampleCSV)
	before := ds.Row(3)

	st := filter.DefaultState(ds)
	st.SetDepartments("Sales")
	_ = filter.Apply(ds, st)

	assert.Equal(t, 8, ds.Len())
	after := ds.Row(3)
	assert.Equal(t, before.Department, after.Department)
	assert.Equal(t, before.Age, after.Age)
	assert.Equal(t, before.Attrition, after.Attrition)
}

func TestKeyIsCanonical(t *testing.T) {
	ds := testentry.Dataset(t, testentry.SampleCSV)

	a := filter.DefaultState(ds)
	a.SetDepartments("Sales", "Human Resources")
	b := filter.DefaultState(ds)
	b.SetDepartments("Human Resources", "Sales", "Sales")

	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, `d="Human Resources","Sales";g="Female","Male";a=27-59`, a.Key())

	b.SetAgeRange(30, 59)
	assert.NotEqual(t, a.Key(), b.Key())
}
