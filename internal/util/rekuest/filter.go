package rekuest

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/peoplelens/attritiond/internal/model/types"
	"github.com/peoplelens/attritiond/internal/pkg/pgerr"
)

const (
	QueryDepartment = "department"
	QueryGender     = "gender"
	QueryAgeMin     = "ageMin"
	QueryAgeMax     = "ageMax"
)

// FilterFromQuery reads a filter selection from repeated department and gender query
// parameters and the ageMin and ageMax parameters. A parameter given only with empty
// values selects nothing; an absent parameter keeps the default.
func FilterFromQuery(ctx *fiber.Ctx) (*types.FilterRequest, error) {
	args := ctx.Context().QueryArgs()
	req := &types.FilterRequest{}

	multi := func(key string) []string {
		if !args.Has(key) {
			return nil
		}
		return lo.FilterMap(args.PeekMulti(key), func(b []byte, _ int) (string, bool) {
			v := strings.TrimSpace(string(b))
			return v, v != ""
		})
	}
	req.Departments = multi(QueryDepartment)
	req.Genders = multi(QueryGender)

	bound := func(key string) (null.Int, error) {
		raw := strings.TrimSpace(ctx.Query(key))
		if raw == "" {
			return null.Int{}, nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return null.Int{}, pgerr.ErrInvalidReq.Msg("invalid request: %s must be an integer, got %q", key, raw)
		}
		return null.IntFrom(int64(v)), nil
	}
	min, err := bound(QueryAgeMin)
	if err != nil {
		return nil, err
	}
	max, err := bound(QueryAgeMax)
	if err != nil {
		return nil, err
	}
	if min.Valid || max.Valid {
		req.AgeRange = &types.AgeRangeRequest{Min: min, Max: max}
	}

	if err := ValidStruct(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// FilterFromBody reads a filter selection from a JSON body. An empty body keeps the default.
func FilterFromBody(ctx *fiber.Ctx) (*types.FilterRequest, error) {
	req := &types.FilterRequest{}
	if len(ctx.Body()) == 0 {
		return req, nil
	}
	if err := ValidBody(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}
