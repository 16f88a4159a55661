package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"gopkg.in/guregu/null.v3"

	"github.com/peoplelens/attritiond/internal/model/types"
)

func parseFlags(t *testing.T, args ...string) *types.FilterRequest {
	t.Helper()

	var req *types.FilterRequest
	app := &cli.App{
		Name: "attritiond",
		Commands: []*cli.Command{{
			Name:  "report",
			Flags: Command().Flags,
			Action: func(c *cli.Context) error {
				req = requestFromFlags(c)
				return nil
			},
		}},
	}
	require.NoError(t, app.Run(append([]string{"attritiond", "report"}, args...)))
	return req
}

func TestRequestFromFlags(t *testing.T) {
	req := parseFlags(t)
	assert.Nil(t, req.Departments)
	assert.Nil(t, req.Genders)
	assert.Nil(t, req.AgeRange)

	req = parseFlags(t, "--department", "Sales", "--department", "Human Resources", "--age-min", "30")
	assert.Equal(t, []string{"Sales", "Human Resources"}, req.Departments)
	assert.Nil(t, req.Genders)
	require.NotNil(t, req.AgeRange)
	assert.Equal(t, null.IntFrom(30), req.AgeRange.Min)
	assert.False(t, req.AgeRange.Max.Valid)

	req = parseFlags(t, "--gender", "")
	assert.NotNil(t, req.Genders)
	assert.Empty(t, req.Genders)
}
