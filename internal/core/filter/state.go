package filter

import (
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/peoplelens/attritiond/internal/core/employee"
)

// AgeRange is an inclusive age interval.
type AgeRange struct {
	Min int
	Max int
}

func (r AgeRange) Contains(age int) bool {
	return r.Min <= age && age <= r.Max
}

// State is the user's current filter selection. The zero value selects nothing.
type State struct {
	departments map[string]struct{}
	genders     map[string]struct{}
	AgeRange    AgeRange

	lower int
	upper int
}

// DefaultState selects every department, every gender and the full observed age range of ds.
func DefaultState(ds *employee.Dataset) State {
	lower, upper := ds.AgeBounds()
	st := State{
		AgeRange: AgeRange{Min: lower, Max: upper},
		lower:    lower,
		upper:    upper,
	}
	st.SetDepartments(ds.Departments()...)
	st.SetGenders(ds.Genders()...)
	return st
}

// SetDepartments replaces the department selection. An empty call selects no department.
func (s *State) SetDepartments(values ...string) {
	s.departments = toSet(values)
}

// SetGenders replaces the gender selection. An empty call selects no gender.
func (s *State) SetGenders(values ...string) {
	s.genders = toSet(values)
}

// SetAgeRange replaces the age range, clamping both bounds to the observed ages of the dataset.
func (s *State) SetAgeRange(min, max int) {
	s.AgeRange = AgeRange{
		Min: clamp(min, s.lower, s.upper),
		Max: clamp(max, s.lower, s.upper),
	}
}

func (s State) HasDepartment(v string) bool {
	_, ok := s.departments[v]
	return ok
}

func (s State) HasGender(v string) bool {
	_, ok := s.genders[v]
	return ok
}

// Departments returns the selected departments in lexical order.
func (s State) Departments() []string {
	return sortedKeys(s.departments)
}

// Genders returns the selected genders in lexical order.
func (s State) Genders() []string {
	return sortedKeys(s.genders)
}

// Key is a canonical representation of the selection, stable across equal states.
func (s State) Key() string {
	var sb strings.Builder
	sb.WriteString("d=")
	sb.WriteString(strings.Join(lo.Map(s.Departments(), quote), ","))
	sb.WriteString(";g=")
	sb.WriteString(strings.Join(lo.Map(s.Genders(), quote), ","))
	sb.WriteString(";a=")
	sb.WriteString(strconv.Itoa(s.AgeRange.Min))
	sb.WriteByte('-')
	sb.WriteString(strconv.Itoa(s.AgeRange.Max))
	return sb.String()
}

func (s State) String() string {
	return s.Key()
}

func quote(v string, _ int) string {
	return strconv.Quote(v)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	keys := lo.Keys(set)
	sort.Strings(keys)
	return keys
}

func clamp(v, lower, upper int) int {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}
