package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/peoplelens/attritiond/internal/app/appconfig"
	"github.com/peoplelens/attritiond/internal/core/employee"
	"github.com/peoplelens/attritiond/internal/model"
	"github.com/peoplelens/attritiond/internal/pkg/testentry"
	"github.com/peoplelens/attritiond/internal/service"
)

func sampleDashboard(t *testing.T) *model.Dashboard {
	t.Helper()

	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{DatasetDelimiter: ','}}
	loader := employee.NewLoader(conf, employee.FileSource(testentry.WriteFixture(t, testentry.ThreeRowCSV)))
	d, err := service.NewDashboard(loader).Build(context.Background(), nil)
	require.NoError(t, err)
	return d
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatTable, sampleDashboard(t)))

	out := buf.String()
	assert.Contains(t, out, "Total Employees")
	assert.Contains(t, out, "33.33%")
	assert.Contains(t, out, "== Tenure & Career ==")
	assert.Contains(t, out, "Attrition by Department")
	assert.Contains(t, out, "Age distribution by Attrition")
	assert.Contains(t, out, "n/a", "constant EmployeeCount column")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, sampleDashboard(t)))

	body := buf.String()
	assert.Equal(t, int64(3), gjson.Get(body, "kpis.totalEmployees").Int())
	assert.Equal(t, "33.33%", gjson.Get(body, "kpis.attritionRateText").String())
	assert.Equal(t, "Department", gjson.Get(body, "groups.0.dimension").String())
	assert.Equal(t, 6, len(gjson.Get(body, "sections").Array()))
}

func TestRenderUnknownFormat(t *testing.T) {
	assert.Error(t, Render(&bytes.Buffer{}, "yaml", &model.Dashboard{}))
}
