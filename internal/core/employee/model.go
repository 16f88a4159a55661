package employee

import (
	"math"
	"time"

	"github.com/peoplelens/attritiond/internal/constant"
)

type schema struct {
	columns []string
	index   map[string]int
	numeric []bool
}

func (s *schema) lookup(column string) (int, bool) {
	i, ok := s.index[column]
	return i, ok
}

// Record is one employee row. Typed fields mirror the columns the dashboard reads;
// every other column is reachable through Value and Number.
type Record struct {
	Department              string
	Gender                  string
	Age                     int
	Attrition               string
	BusinessTravel          string
	EducationField          string
	MaritalStatus           string
	JobRole                 string
	OverTime                string
	EnvironmentSatisfaction float64
	MonthlyIncome           float64
	StockOptionLevel        float64
	PercentSalaryHike       float64
	YearsAtCompany          float64
	YearsSinceLastPromotion float64
	TrainingTimesLastYear   float64

	schema  *schema
	raw     []string
	numbers []float64
}

func (r Record) Attrited() bool {
	return r.Attrition == constant.AttritionYes
}

// Value returns the raw value of column as it appeared in the source table.
func (r Record) Value(column string) (string, bool) {
	i, ok := r.schema.lookup(column)
	if !ok {
		return "", false
	}
	return r.raw[i], true
}

// Number returns the value of a numeric column, or NaN when the column is
// missing, not numeric, or the cell is empty.
func (r Record) Number(column string) float64 {
	i, ok := r.schema.lookup(column)
	if !ok || !r.schema.numeric[i] {
		return math.NaN()
	}
	return r.numbers[i]
}

// Dataset is the loaded employee table. It is never mutated after load.
type Dataset struct {
	records []Record
	schema  *schema

	departments []string
	genders     []string
	ageMin      int
	ageMax      int

	// Fingerprint is the xxh3 digest of the source bytes.
	Fingerprint string
	Source      string
	LoadedAt    time.Time
}

func (d *Dataset) Len() int {
	return len(d.records)
}

func (d *Dataset) Row(i int) Record {
	return d.records[i]
}

// Each calls fn for every record in source order.
func (d *Dataset) Each(fn func(i int, r Record)) {
	for i, r := range d.records {
		fn(i, r)
	}
}

func (d *Dataset) Columns() []string {
	return append([]string(nil), d.schema.columns...)
}

func (d *Dataset) HasColumn(column string) bool {
	_, ok := d.schema.lookup(column)
	return ok
}

func (d *Dataset) IsNumeric(column string) bool {
	i, ok := d.schema.lookup(column)
	return ok && d.schema.numeric[i]
}

// NumericColumns lists the numeric columns in header order.
func (d *Dataset) NumericColumns() []string {
	cols := make([]string, 0, len(d.schema.columns))
	for i, c := range d.schema.columns {
		if d.schema.numeric[i] {
			cols = append(cols, c)
		}
	}
	return cols
}

// Departments lists the distinct departments in first-seen order.
func (d *Dataset) Departments() []string {
	return append([]string(nil), d.departments...)
}

// Genders lists the distinct genders in first-seen order.
func (d *Dataset) Genders() []string {
	return append([]string(nil), d.genders...)
}

// AgeBounds returns the observed minimum and maximum age. Both are zero for an empty dataset.
func (d *Dataset) AgeBounds() (int, int) {
	return d.ageMin, d.ageMax
}
