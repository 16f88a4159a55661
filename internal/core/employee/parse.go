package employee

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/peoplelens/attritiond/internal/constant"
)

// Parse builds a Dataset from the bytes of a delimited table. Column types are
// inferred by gota: a column is numeric when every cell parses as an integer or a float.
// A table with a header and no rows gives an empty Dataset.
func Parse(b []byte, delimiter rune) (*Dataset, error) {
	typed := dataframe.ReadCSV(bytes.NewReader(b),
		dataframe.WithDelimiter(delimiter),
		dataframe.HasHeader(true),
	)
	if typed.Err != nil {
		if columns, ok := headerOnly(b, delimiter); ok {
			return empty(columns)
		}
		return nil, errors.Wrap(typed.Err, "parse table")
	}
	raw := dataframe.ReadCSV(bytes.NewReader(b),
		dataframe.WithDelimiter(delimiter),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if raw.Err != nil {
		return nil, errors.Wrap(raw.Err, "parse table")
	}

	columns := typed.Names()
	sc, err := newSchema(columns)
	if err != nil {
		return nil, err
	}
	rawCols := make([][]string, len(columns))
	numCols := make([][]float64, len(columns))
	for i, name := range columns {
		rawCols[i] = raw.Col(name).Records()

		s := typed.Col(name)
		if s.Type() == series.Int || s.Type() == series.Float {
			sc.numeric[i] = true
			numCols[i] = s.Float()
		}
	}

	n := typed.Nrow()
	ds := &Dataset{
		records: make([]Record, n),
		schema:  sc,
	}
	for row := 0; row < n; row++ {
		r := Record{
			schema:  sc,
			raw:     make([]string, len(columns)),
			numbers: make([]float64, len(columns)),
		}
		for i := range columns {
			r.raw[i] = strings.TrimSpace(rawCols[i][row])
			if sc.numeric[i] {
				r.numbers[i] = numCols[i][row]
			} else {
				r.numbers[i] = math.NaN()
			}
		}
		if err := fillTyped(&r, row); err != nil {
			return nil, err
		}
		ds.records[row] = r
	}

	ds.departments = lo.Uniq(lo.Map(ds.records, func(r Record, _ int) string { return r.Department }))
	ds.genders = lo.Uniq(lo.Map(ds.records, func(r Record, _ int) string { return r.Gender }))
	if n > 0 {
		ages := lo.Map(ds.records, func(r Record, _ int) int { return r.Age })
		ds.ageMin, ds.ageMax = lo.Min(ages), lo.Max(ages)
	}

	return ds, nil
}

func newSchema(columns []string) (*schema, error) {
	missing := lo.Without(constant.RequiredColumns, columns...)
	if len(missing) > 0 {
		return nil, errors.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	sc := &schema{
		columns: columns,
		index:   make(map[string]int, len(columns)),
		numeric: make([]bool, len(columns)),
	}
	for i, name := range columns {
		sc.index[name] = i
	}
	return sc, nil
}

// headerOnly returns the header of a table that has no data rows.
func headerOnly(b []byte, delimiter rune) ([]string, bool) {
	r := csv.NewReader(bytes.NewReader(b))
	r.Comma = delimiter
	records, err := r.ReadAll()
	if err != nil || len(records) != 1 {
		return nil, false
	}
	return records[0], true
}

func empty(columns []string) (*Dataset, error) {
	sc, err := newSchema(columns)
	if err != nil {
		return nil, err
	}
	for _, c := range constant.NumericColumns {
		sc.numeric[sc.index[c]] = true
	}
	return &Dataset{
		records:     []Record{},
		schema:      sc,
		departments: []string{},
		genders:     []string{},
	}, nil
}

func fillTyped(r *Record, row int) error {
	str := func(column string) string {
		v, _ := r.Value(column)
		return strings.TrimSpace(v)
	}
	num := func(column string) float64 {
		if f := r.Number(column); !math.IsNaN(f) {
			return f
		}
		f, err := strconv.ParseFloat(str(column), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}

	age, err := strconv.Atoi(str(constant.ColumnAge))
	if err != nil {
		return fmt.Errorf("row %d: non-integer %s %q", row+1, constant.ColumnAge, str(constant.ColumnAge))
	}
	attrition := str(constant.ColumnAttrition)
	if attrition != constant.AttritionYes && attrition != constant.AttritionNo {
		return fmt.Errorf("row %d: %s must be %q or %q, got %q", row+1, constant.ColumnAttrition, constant.AttritionYes, constant.AttritionNo, attrition)
	}

	r.Department = str(constant.ColumnDepartment)
	r.Gender = str(constant.ColumnGender)
	r.Age = age
	r.Attrition = attrition
	r.BusinessTravel = str(constant.ColumnBusinessTravel)
	r.EducationField = str(constant.ColumnEducationField)
	r.MaritalStatus = str(constant.ColumnMaritalStatus)
	r.JobRole = str(constant.ColumnJobRole)
	r.OverTime = str(constant.ColumnOverTime)
	r.EnvironmentSatisfaction = num(constant.ColumnEnvironmentSatisfaction)
	r.MonthlyIncome = num(constant.ColumnMonthlyIncome)
	r.StockOptionLevel = num(constant.ColumnStockOptionLevel)
	r.PercentSalaryHike = num(constant.ColumnPercentSalaryHike)
	r.YearsAtCompany = num(constant.ColumnYearsAtCompany)
	r.YearsSinceLastPromotion = num(constant.ColumnYearsSinceLastPromotion)
	r.TrainingTimesLastYear = num(constant.ColumnTrainingTimesLastYear)
	return nil
}
