package constant

// Column names of the source table that the pipeline reads directly.
const (
	ColumnDepartment              = "Department"
	ColumnGender                  = "Gender"
	ColumnAge                     = "Age"
	ColumnAttrition               = "Attrition"
	ColumnBusinessTravel          = "BusinessTravel"
	ColumnEducationField          = "EducationField"
	ColumnMaritalStatus           = "MaritalStatus"
	ColumnJobRole                 = "JobRole"
	ColumnOverTime                = "OverTime"
	ColumnEnvironmentSatisfaction = "EnvironmentSatisfaction"
	ColumnMonthlyIncome           = "MonthlyIncome"
	ColumnStockOptionLevel        = "StockOptionLevel"
	ColumnPercentSalaryHike       = "PercentSalaryHike"
	ColumnYearsAtCompany          = "YearsAtCompany"
	ColumnYearsSinceLastPromotion = "YearsSinceLastPromotion"
	ColumnTrainingTimesLastYear   = "TrainingTimesLastYear"
)

const (
	AttritionYes = "Yes"
	AttritionNo  = "No"
)

// RequiredColumns must all be present in the header of the source table.
var RequiredColumns = []string{
	ColumnDepartment,
	ColumnGender,
	ColumnAge,
	ColumnAttrition,
	ColumnBusinessTravel,
	ColumnEducationField,
	ColumnMaritalStatus,
	ColumnJobRole,
	ColumnOverTime,
	ColumnEnvironmentSatisfaction,
	ColumnMonthlyIncome,
	ColumnStockOptionLevel,
	ColumnPercentSalaryHike,
	ColumnYearsAtCompany,
	ColumnYearsSinceLastPromotion,
	ColumnTrainingTimesLastYear,
}

// NumericColumns are the required columns holding numbers. They are treated as
// numeric when a table has no rows to infer column types from.
var NumericColumns = []string{
	ColumnAge,
	ColumnEnvironmentSatisfaction,
	ColumnMonthlyIncome,
	ColumnStockOptionLevel,
	ColumnPercentSalaryHike,
	ColumnYearsAtCompany,
	ColumnYearsSinceLastPromotion,
	ColumnTrainingTimesLastYear,
}

// ChartDimensions are the grouping dimensions of the attrition charts, in display order.
var ChartDimensions = []string{
	ColumnDepartment,
	ColumnGender,
	ColumnBusinessTravel,
	ColumnAge,
	ColumnEducationField,
	ColumnMaritalStatus,
	ColumnJobRole,
	ColumnOverTime,
	ColumnEnvironmentSatisfaction,
	ColumnStockOptionLevel,
	ColumnPercentSalaryHike,
	ColumnYearsAtCompany,
	ColumnYearsSinceLastPromotion,
	ColumnTrainingTimesLastYear,
}

// DistributionColumns are the numeric columns rendered as box plots split by attrition.
var DistributionColumns = []string{
	ColumnAge,
	ColumnMonthlyIncome,
	ColumnPercentSalaryHike,
}

// Section groups chart dimensions the way the dashboard lays them out.
type Section struct {
	Name          string
	Dimensions    []string
	Distributions []string
}

var Sections = []Section{
	{Name: "Overview", Dimensions: []string{ColumnDepartment, ColumnGender, ColumnBusinessTravel}},
	{Name: "Demographics", Dimensions: []string{ColumnAge, ColumnEducationField, ColumnMaritalStatus}, Distributions: []string{ColumnAge}},
	{Name: "Workplace Factors", Dimensions: []string{ColumnJobRole, ColumnOverTime, ColumnEnvironmentSatisfaction}},
	{Name: "Compensation", Dimensions: []string{ColumnStockOptionLevel, ColumnPercentSalaryHike}, Distributions: []string{ColumnMonthlyIncome, ColumnPercentSalaryHike}},
	{Name: "Tenure & Career", Dimensions: []string{ColumnYearsAtCompany, ColumnYearsSinceLastPromotion, ColumnTrainingTimesLastYear}},
	{Name: "Correlation"},
}
