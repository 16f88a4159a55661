package types

import (
	"gopkg.in/guregu/null.v3"

	"github.com/peoplelens/attritiond/internal/core/employee"
	"github.com/peoplelens/attritiond/internal/core/filter"
)

// FilterRequest is a filter selection sent by a client. A nil selection keeps the
// default (everything selected); an empty, non-nil selection selects nothing.
type FilterRequest struct {
	Departments []string         `json:"departments" validate:"omitempty,dive,max=128"`
	Genders     []string         `json:"genders" validate:"omitempty,dive,max=128"`
	AgeRange    *AgeRangeRequest `json:"ageRange" validate:"omitempty"`
}

type AgeRangeRequest struct {
	Min null.Int `json:"min" validate:"omitempty,gte=0,lte=150"`
	Max null.Int `json:"max" validate:"omitempty,gte=0,lte=150"`
}

// State resolves the request against ds, starting from the default selection.
func (r *FilterRequest) State(ds *employee.Dataset) filter.State {
	st := filter.DefaultState(ds)
	if r == nil {
		return st
	}

	if r.Departments != nil {
		st.SetDepartments(r.Departments...)
	}
	if r.Genders != nil {
		st.SetGenders(r.Genders...)
	}
	if r.AgeRange != nil {
		min, max := st.AgeRange.Min, st.AgeRange.Max
		if r.AgeRange.Min.Valid {
			min = int(r.AgeRange.Min.Int64)
		}
		if r.AgeRange.Max.Valid {
			max = int(r.AgeRange.Max.Int64)
		}
		st.SetAgeRange(min, max)
	}
	return st
}
