package testentry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peoplelens/attritiond/internal/core/employee"
)

const header = "Age,Attrition,BusinessTravel,Department,EducationField,EmployeeCount,EmployeeNumber,EnvironmentSatisfaction,Gender,JobRole,MaritalStatus,MonthlyIncome,Over18,OverTime,PercentSalaryHike,StockOptionLevel,TrainingTimesLastYear,YearsAtCompany,YearsSinceLastPromotion\n"

// SampleCSV is an eight-row excerpt of the attrition table: 3 leavers, ages 27 to 59,
// departments Sales, Research & Development and Human Resources.
const SampleCSV = header +
	"41,Yes,Travel_Rarely,Sales,Life Sciences,1,1,2,Female,Sales Executive,Single,5993,Y,Yes,11,0,0,6,0\n" +
	"49,No,Travel_Frequently,Research & Development,Life Sciences,1,2,3,Male,Research Scientist,Married,5130,Y,No,23,1,3,10,1\n" +
	"37,Yes,Travel_Rarely,Research & Development,Other,1,4,4,Male,Laboratory Technician,Single,2090,Y,Yes,15,0,3,0,0\n" +
	"33,No,Travel_Frequently,Research & Development,Life Sciences,1,5,4,Female,Research Scientist,Married,2909,Y,Yes,11,0,3,8,3\n" +
	"27,No,Travel_Rarely,Research & Development,Medical,1,7,1,Male,Laboratory Technician,Married,3468,Y,No,12,1,3,2,2\n" +
	"32,No,Travel_Frequently,Research & Development,Life Sciences,1,8,4,Male,Laboratory Technician,Single,3068,Y,No,13,0,2,7,3\n" +
	"59,No,Travel_Rarely,Human Resources,Medical,1,10,3,Female,Manager,Married,2670,Y,Yes,20,3,3,1,0\n" +
	"30,Yes,Non-Travel,Sales,Life Sciences,1,11,4,Male,Sales Representative,Divorced,2693,Y,No,22,1,2,1,0\n"

// ThreeRowCSV holds departments A, A, B with genders M, F, M, ages 30, 40, 50
// and attrition Yes, No, No.
const ThreeRowCSV = header +
	"30,Yes,Travel_Rarely,A,Medical,1,1,3,M,Manager,Single,4000,Y,No,12,0,2,3,1\n" +
	"40,No,Travel_Rarely,A,Medical,1,2,2,F,Manager,Married,5000,Y,Yes,14,1,3,5,2\n" +
	"50,No,Non-Travel,B,Other,1,3,4,M,Manager,Married,6000,Y,No,16,2,4,9,4\n"

// HeaderOnlyCSV is a table with the fixture header and no rows.
const HeaderOnlyCSV = header

// Header is the header line shared by the fixtures, without the trailing newline.
func Header() string {
	return header[:len(header)-1]
}

// WriteFixture writes content into a fresh temporary directory and returns the file path.
func WriteFixture(t testing.TB, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), "EA.csv")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// Dataset parses content as a comma separated employee table.
func Dataset(t testing.TB, content string) *employee.Dataset {
	t.Helper()

	ds, err := employee.Parse([]byte(content), ',')
	require.NoError(t, err)
	return ds
}
