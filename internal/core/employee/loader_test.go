package employee_test

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplelens/attritiond/internal/app/appconfig"
	"github.com/peoplelens/attritiond/internal/core/employee"
	"github.com/peoplelens/attritiond/internal/pkg/testentry"
)

func newLoader(t *testing.T, path string) *employee.Loader {
	t.Helper()

	var loc appconfig.DatasetLocation
	require.NoError(t, loc.Decode(path))
	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{DatasetURI: loc, DatasetDelimiter: ','}}
	return employee.NewLoader(conf, employee.NewSource(conf))
}

type countingSource struct {
	mu      sync.Mutex
	fetches int
	content string
}

func (s *countingSource) Fetch(context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetches++
	return []byte(s.content), nil
}

func (s *countingSource) String() string { return "memory" }

func TestLoadSample(t *testing.T) {
	loader := newLoader(t, testentry.WriteFixture(t, testentry.SampleCSV))

	ds, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8, ds.Len())
	assert.Equal(t, []string{"Sales", "Research & Development", "Human Resources"}, ds.Departments())
	assert.Equal(t, []string{"Female", "Male"}, ds.Genders())
	lo, hi := ds.AgeBounds()
	assert.Equal(t, 27, lo)
	assert.Equal(t, 59, hi)
	assert.Len(t, ds.Fingerprint, 16)
	assert.False(t, ds.LoadedAt.IsZero())
	assert.True(t, loader.Loaded())

	first := ds.Row(0)
	assert.Equal(t, "Sales", first.Department)
	assert.Equal(t, 41, first.Age)
	assert.True(t, first.Attrited())
	assert.Equal(t, 5993.0, first.MonthlyIncome)
	v, ok := first.Value("JobRole")
	assert.True(t, ok)
	assert.Equal(t, "Sales Executive", v)
}

func TestNumericColumns(t *testing.T) {
	ds := testentry.Dataset(t, testentry.SampleCSV)

	numeric := ds.NumericColumns()
	assert.Equal(t, []string{
		"Age", "EmployeeCount", "EmployeeNumber", "EnvironmentSatisfaction", "MonthlyIncome",
		"PercentSalaryHike", "StockOptionLevel", "TrainingTimesLastYear", "YearsAtCompany", "YearsSinceLastPromotion",
	}, numeric)
	assert.False(t, ds.IsNumeric("Department"))
	assert.False(t, ds.IsNumeric("Over18"))
	assert.True(t, math.IsNaN(ds.Row(0).Number("Department")))
	assert.True(t, math.IsNaN(ds.Row(0).Number("NoSuchColumn")))
	assert.Equal(t, 2.0, ds.Row(0).Number("EnvironmentSatisfaction"))
}

func TestAccessorsReturnCopies(t *testing.T) {
	ds := testentry.Dataset(t, testentry.SampleCSV)

	deps := ds.Departments()
	deps[0] = "mutated"
	assert.Equal(t, "Sales", ds.Departments()[0])

	cols := ds.Columns()
	cols[0] = "mutated"
	assert.Equal(t, "Age", ds.Columns()[0])
}

func TestLoadReturnsCachedDataset(t *testing.T) {
	src := &countingSource{content: testentry.SampleCSV}
	loader := employee.NewLoader(&appconfig.Config{ConfigSpec: appconfig.ConfigSpec{DatasetDelimiter: ','}}, src)

	var wg sync.WaitGroup
	results := make([]*employee.Dataset, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ds, err := loader.Load(context.Background())
			assert.NoError(t, err)
			results[i] = ds
		}(i)
	}
	wg.Wait()

	for _, ds := range results {
		assert.Same(t, results[0], ds)
	}
	assert.Equal(t, 1, src.fetches)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "missing column",
			content: strings.Replace(testentry.SampleCSV, "Department", "Dept", 1),
			want:    "missing required columns: Department",
		},
		{
			name:    "non-integer age",
			content: strings.Replace(testentry.SampleCSV, "\n41,", "\nforty-one,", 1),
			want:    "non-integer Age",
		},
		{
			name:    "fractional age",
			content: strings.Replace(testentry.SampleCSV, "\n41,", "\n41.5,", 1),
			want:    "non-integer Age",
		},
		{
			name:    "unknown attrition",
			content: strings.Replace(testentry.SampleCSV, "41,Yes,", "41,Maybe,", 1),
			want:    `Attrition must be "Yes" or "No"`,
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			loader := newLoader(t, testentry.WriteFixture(t, c.content))

			ds, err := loader.Load(context.Background())
			assert.Nil(t, ds)
			require.Error(t, err)
			assert.ErrorIs(t, err, employee.ErrLoad)
			assert.Contains(t, err.Error(), c.want)
			assert.False(t, loader.Loaded())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := newLoader(t, filepath.Join(t.TempDir(), "absent.csv"))

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, employee.ErrLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var le *employee.LoadError
	require.ErrorAs(t, err, &le)
	assert.True(t, strings.HasSuffix(le.Source, "absent.csv"))
}

func TestLoadSemicolonDelimited(t *testing.T) {
	content := strings.ReplaceAll(testentry.ThreeRowCSV, ",", ";")
	var loc appconfig.DatasetLocation
	require.NoError(t, loc.Decode(testentry.WriteFixture(t, content)))
	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{DatasetURI: loc, DatasetDelimiter: ';'}}

	ds, err := employee.NewLoader(conf, employee.NewSource(conf)).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, []string{"A", "B"}, ds.Departments())
}

func TestParseHeaderOnly(t *testing.T) {
	ds, err := employee.Parse([]byte(testentry.HeaderOnlyCSV), ',')
	require.NoError(t, err)

	assert.Equal(t, 0, ds.Len())
	assert.Equal(t, strings.Split(testentry.Header(), ","), ds.Columns())
	assert.Empty(t, ds.Departments())
	assert.Empty(t, ds.Genders())
	assert.True(t, ds.IsNumeric("Age"))
	assert.True(t, ds.IsNumeric("MonthlyIncome"))
	assert.False(t, ds.IsNumeric("Department"))

	lower, upper := ds.AgeBounds()
	assert.Equal(t, 0, lower)
	assert.Equal(t, 0, upper)

	_, err = employee.Parse([]byte(strings.Replace(testentry.HeaderOnlyCSV, "Gender", "Sex", 1)), ',')
	assert.ErrorContains(t, err, "missing required columns: Gender")

	_, err = employee.Parse([]byte{}, ',')
	assert.Error(t, err)
}

func TestParseTrimsCells(t *testing.T) {
	content := strings.Replace(testentry.ThreeRowCSV, ",A,Medical,1,1,", ", A ,Medical,1,1,", 1)
	content = strings.Replace(content, ",M,Manager,Single,", ", M,Manager,Single,", 1)
	ds := testentry.Dataset(t, content)

	assert.Equal(t, []string{"A", "B"}, ds.Departments())
	assert.Equal(t, []string{"M", "F"}, ds.Genders())

	r := ds.Row(0)
	assert.Equal(t, "A", r.Department)
	v, ok := r.Value("Department")
	require.True(t, ok)
	assert.Equal(t, "A", v)
	v, _ = r.Value("Gender")
	assert.Equal(t, "M", v)
}
