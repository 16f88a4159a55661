package model

import (
	"time"

	"gopkg.in/guregu/null.v3"
)

type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterState is the resolved filter selection echoed back to clients.
type FilterState struct {
	Departments []string `json:"departments"`
	Genders     []string `json:"genders"`
	AgeRange    AgeRange `json:"ageRange"`
}

// FilterOptions bounds the filter controls of a dashboard client.
type FilterOptions struct {
	Departments []string    `json:"departments"`
	Genders     []string    `json:"genders"`
	AgeBounds   AgeRange    `json:"ageBounds"`
	Default     FilterState `json:"default"`
}

type DatasetInfo struct {
	Source      string    `json:"source"`
	Fingerprint string    `json:"fingerprint"`
	Rows        int       `json:"rows"`
	Columns     []string  `json:"columns"`
	LoadedAt    time.Time `json:"loadedAt"`
}

type KPIs struct {
	TotalEmployees    int     `json:"totalEmployees"`
	EmployeesShown    int     `json:"employeesShown"`
	AttritionRate     float64 `json:"attritionRate"`
	AttritionRateText string  `json:"attritionRateText"`
}

type GroupCell struct {
	Value string `json:"value"`
	Split string `json:"split"`
	Count int    `json:"count"`
}

type GroupChart struct {
	Dimension string      `json:"dimension"`
	SplitBy   string      `json:"splitBy"`
	Numeric   bool        `json:"numeric"`
	Cells     []GroupCell `json:"cells"`
}

type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type Box struct {
	Split  string  `json:"split"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

type Distribution struct {
	Column  string `json:"column"`
	SplitBy string `json:"splitBy"`
	Boxes   []Box  `json:"boxes"`
}

// Correlation carries undefined coefficients as null.
type Correlation struct {
	Columns []string       `json:"columns"`
	Values  [][]null.Float `json:"values"`
}

type Section struct {
	Name          string   `json:"name"`
	Dimensions    []string `json:"dimensions"`
	Distributions []string `json:"distributions"`
}

// Dashboard is every view of one filter pass.
type Dashboard struct {
	Filter          FilterState    `json:"filter"`
	Dataset         DatasetInfo    `json:"dataset"`
	KPIs            KPIs           `json:"kpis"`
	AttritionCounts []ValueCount   `json:"attritionCounts"`
	Groups          []GroupChart   `json:"groups"`
	Distributions   []Distribution `json:"distributions"`
	Correlation     Correlation    `json:"correlation"`
	Sections        []Section      `json:"sections"`
}
