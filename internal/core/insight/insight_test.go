package insight_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplelens/attritiond/internal/constant"
	"github.com/peoplelens/attritiond/internal/core/filter"
	"github.com/peoplelens/attritiond/internal/core/insight"
	"github.com/peoplelens/attritiond/internal/pkg/testentry"
)

func TestWorkedExample(t *testing.T) {
	ds := testentry.Dataset(t, testentry.ThreeRowCSV)
	st := filter.DefaultState(ds)
	st.SetDepartments("A")
	st.SetGenders("M", "F")
	st.SetAgeRange(25, 45)
	table := filter.Apply(ds, st)

	assert.Equal(t, 3, insight.TotalCount(ds))
	assert.Equal(t, 2, insight.ShownCount(table))
	assert.Equal(t, insight.Rate(33.33), insight.AttritionRate(ds))
	assert.Equal(t, "33.33%", insight.AttritionRate(ds).String())

	groups, err := insight.GroupCounts(table, constant.ColumnDepartment, constant.ColumnAttrition)
	require.NoError(t, err)
	assert.Equal(t, []insight.GroupCount{
		{Value: "A", Split: "No", Count: 1},
		{Value: "A", Split: "Yes", Count: 1},
	}, groups)
}

func TestShownNeverExceedsTotal(t *testing.T) {
	ds := testentry.Dataset(t, testentry.SampleCSV)

	states := []func(*filter.State){
		func(*filter.State) {},
		func(s *filter.State) { s.SetDepartments("Sales") },
		func(s *filter.State) { s.SetGenders("Female") },
		func(s *filter.State) { s.SetAgeRange(30, 40) },
		func(s *filter.State) { s.SetDepartments("Nope") },
	}
	for _, mutate := range states {
		st := filter.DefaultState(ds)
		mutate(&st)
		table := filter.Apply(ds, st)

		assert.LessOrEqual(t, insight.ShownCount(table), insight.TotalCount(ds))
		assert.Equal(t, insight.Rate(37.5), insight.AttritionRate(ds), "rate ignores filters")

		for _, dim := range constant.ChartDimensions {
			groups, err := insight.AttritionGroups(table, dim)
			require.NoError(t, err)
			sum := 0
			for _, g := range groups {
				sum += g.Count
			}
			assert.Equal(t, insight.ShownCount(table), sum, dim)
		}
	}
}

func TestGroupCountsOrdering(t *testing.T) {
	ds := testentry.Dataset(t, testentry.SampleCSV)
	table := filter.Apply(ds, filter.DefaultState(ds))

	groups, err := insight.AttritionGroups(table, constant.ColumnDepartment)
	require.NoError(t, err)
	assert.Equal(t, []insight.GroupCount{
		{Value: "Human Resources", Split: "No", Count: 1},
		{Value: "Research & Development", Split: "No", Count: 4},
		{Value: "Research & Development", Split: "Yes", Count: 1},
		{Value: "Sales", Split: "Yes", Count: 2},
	}, groups)

	groups, err = insight.AttritionGroups(table, constant.ColumnYearsAtCompany)
	require.NoError(t, err)
	assert.Equal(t, []insight.GroupCount{
		{Value: "0", Split: "Yes", Count: 1},
		{Value: "1", Split: "No", Count: 1},
		{Value: "1", Split: "Yes", Count: 1},
		{Value: "2", Split: "No", Count: 1},
		{Value: "6", Split: "Yes", Count: 1},
		{Value: "7", Split: "No", Count: 1},
		{Value: "8", Split: "No", Count: 1},
		{Value: "10", Split: "No", Count: 1},
	}, groups)

	_, err = insight.GroupCounts(table, "Salary", constant.ColumnAttrition)
	assert.ErrorIs(t, err, insight.ErrUnknownColumn)
}

func TestAttritionCounts(t *testing.T) {
	ds := testentry.Dataset(t, testentry.SampleCSV)

	table := filter.Apply(ds, filter.DefaultState(ds))
	assert.Equal(t, []insight.ValueCount{
		{Value: "No", Count: 5},
		{Value: "Yes", Count: 3},
	}, insight.AttritionCounts(table))

	st := filter.DefaultState(ds)
	st.SetDepartments("Sales")
	assert.Equal(t, []insight.ValueCount{
		{Value: "Yes", Count: 2},
	}, insight.AttritionCounts(filter.Apply(ds, st)))
}

func TestCorrelationMatrix(t *testing.T) {
	ds := testentry.Dataset(t, testentry.SampleCSV)
	m := insight.CorrelationMatrix(filter.Apply(ds, filter.DefaultState(ds)))

	require.Equal(t, ds.NumericColumns(), m.Columns)
	require.Len(t, m.Values, len(m.Columns))

	for i, col := range m.Columns {
		require.Len(t, m.Values[i], len(m.Columns))
		for j := range m.Columns {
			a, b := m.Values[i][j], m.Values[j][i]
			if math.IsNaN(a) {
				assert.True(t, math.IsNaN(b), "%s is not symmetric", col)
				continue
			}
			assert.Equal(t, a, b)
			assert.LessOrEqual(t, math.Abs(a), 1.0)
		}
		if col == "EmployeeCount" {
			assert.True(t, math.IsNaN(m.Values[i][i]), "constant column")
		} else {
			assert.Equal(t, 1.0, m.Values[i][i])
		}
	}

	v, ok := m.At("EmployeeCount", "Age")
	assert.True(t, ok)
	assert.True(t, math.IsNaN(v))

	_, ok = m.At("Department", "Age")
	assert.False(t, ok)
}

func TestCorrelationOfLinearColumns(t *testing.T) {
	ds := testentry.Dataset(t, testentry.ThreeRowCSV)
	m := insight.CorrelationMatrix(filter.Apply(ds, filter.DefaultState(ds)))

	v, ok := m.At(constant.ColumnAge, constant.ColumnMonthlyIncome)
	require.True(t, ok)
	assert.InDelta(t, 1.0, v, 1e-9)
}

func TestCorrelationNeedsTwoRows(t *testing.T) {
	ds := testentry.Dataset(t, testentry.ThreeRowCSV)
	st := filter.DefaultState(ds)
	st.SetDepartments("B")
	m := insight.CorrelationMatrix(filter.Apply(ds, st))

	for i := range m.Columns {
		for j := range m.Columns {
			assert.True(t, math.IsNaN(m.Values[i][j]))
		}
	}
}

func TestDistribution(t *testing.T) {
	ds := testentry.Dataset(t, testentry.ThreeRowCSV)
	table := filter.Apply(ds, filter.DefaultState(ds))

	box, err := insight.AttritionDistribution(table, constant.ColumnAge)
	require.NoError(t, err)
	assert.Equal(t, []insight.BoxStats{
		{Split: "No", Count: 2, Min: 40, Q1: 40, Median: 45, Q3: 50, Max: 50, Mean: 45},
		{Split: "Yes", Count: 1, Min: 30, Q1: 30, Median: 30, Q3: 30, Max: 30, Mean: 30},
	}, box)

	_, err = insight.AttritionDistribution(table, constant.ColumnDepartment)
	assert.ErrorIs(t, err, insight.ErrNotNumeric)

	_, err = insight.AttritionDistribution(table, "Salary")
	assert.ErrorIs(t, err, insight.ErrUnknownColumn)
}

func TestReducersOnEmptyTable(t *testing.T) {
	ds := testentry.Dataset(t, testentry.SampleCSV)
	st := filter.DefaultState(ds)
	st.SetDepartments()
	table := filter.Apply(ds, st)

	assert.Equal(t, 0, insight.ShownCount(table))
	assert.Equal(t, 8, insight.TotalCount(ds))

	groups, err := insight.AttritionGroups(table, constant.ColumnDepartment)
	require.NoError(t, err)
	assert.Empty(t, groups)

	assert.Empty(t, insight.AttritionCounts(table))

	box, err := insight.AttritionDistribution(table, constant.ColumnMonthlyIncome)
	require.NoError(t, err)
	assert.Empty(t, box)

	m := insight.CorrelationMatrix(table)
	assert.Equal(t, ds.NumericColumns(), m.Columns)
	for i := range m.Columns {
		assert.True(t, math.IsNaN(m.Values[i][i]))
	}
}

func TestReducersOnEmptyDataset(t *testing.T) {
	ds := testentry.Dataset(t, testentry.HeaderOnlyCSV)
	st := filter.DefaultState(ds)
	table := filter.Apply(ds, st)

	assert.Equal(t, 0, insight.TotalCount(ds))
	assert.Equal(t, 0, insight.ShownCount(table))
	assert.Equal(t, insight.Rate(0), insight.AttritionRate(ds))
	assert.Equal(t, "0.00%", insight.AttritionRate(ds).String())
	assert.Empty(t, st.Departments())
	assert.Empty(t, st.Genders())

	for _, dim := range constant.ChartDimensions {
		groups, err := insight.AttritionGroups(table, dim)
		require.NoError(t, err, dim)
		assert.Empty(t, groups, dim)
	}
	for _, col := range constant.DistributionColumns {
		box, err := insight.AttritionDistribution(table, col)
		require.NoError(t, err, col)
		assert.Empty(t, box, col)
	}
	assert.Empty(t, insight.AttritionCounts(table))

	m := insight.CorrelationMatrix(table)
	assert.ElementsMatch(t, constant.NumericColumns, m.Columns)
	for i := range m.Columns {
		assert.True(t, math.IsNaN(m.Values[i][i]))
	}
}

func TestGroupCountsTrimPaddedCells(t *testing.T) {
	content := strings.Replace(testentry.ThreeRowCSV, ",A,Medical,1,1,", ", A ,Medical,1,1,", 1)
	ds := testentry.Dataset(t, content)
	table := filter.Apply(ds, filter.DefaultState(ds))

	groups, err := insight.AttritionGroups(table, constant.ColumnDepartment)
	require.NoError(t, err)
	assert.Equal(t, []insight.GroupCount{
		{Value: "A", Split: "No", Count: 1},
		{Value: "A", Split: "Yes", Count: 1},
		{Value: "B", Split: "No", Count: 1},
	}, groups)
	assert.Equal(t, []string{"A", "B"}, ds.Departments())
}
