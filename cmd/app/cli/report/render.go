package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/peoplelens/attritiond/internal/constant"
	"github.com/peoplelens/attritiond/internal/model"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Render writes d to w in the given format.
func Render(w io.Writer, format string, d *model.Dashboard) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case FormatTable:
		renderTables(w, d)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func renderTables(w io.Writer, d *model.Dashboard) {
	fmt.Fprintf(w, "Filter: departments=%s genders=%s age=%d-%d\n\n",
		list(d.Filter.Departments), list(d.Filter.Genders), d.Filter.AgeRange.Min, d.Filter.AgeRange.Max)

	kpi := newTable(w, "Total Employees", "Employees Shown", "Attrition Rate")
	kpi.Append([]string{
		strconv.Itoa(d.KPIs.TotalEmployees),
		strconv.Itoa(d.KPIs.EmployeesShown),
		d.KPIs.AttritionRateText,
	})
	kpi.Render()

	fmt.Fprintln(w, "\nAttrition Count")
	counts := newTable(w, constant.ColumnAttrition, "Count")
	for _, vc := range d.AttritionCounts {
		counts.Append([]string{vc.Value, strconv.Itoa(vc.Count)})
	}
	counts.Render()

	groups := lo.KeyBy(d.Groups, func(g model.GroupChart) string { return g.Dimension })
	dists := lo.KeyBy(d.Distributions, func(d model.Distribution) string { return d.Column })

	for _, s := range d.Sections {
		fmt.Fprintf(w, "\n== %s ==\n", s.Name)
		for _, dim := range s.Dimensions {
			if g, ok := groups[dim]; ok {
				fmt.Fprintf(w, "\n%s by %s\n", g.SplitBy, g.Dimension)
				renderGroup(w, g)
			}
		}
		for _, col := range s.Distributions {
			if dist, ok := dists[col]; ok {
				fmt.Fprintf(w, "\n%s distribution by %s\n", dist.Column, dist.SplitBy)
				renderDistribution(w, dist)
			}
		}
		if s.Name == "Correlation" {
			fmt.Fprintln(w)
			renderCorrelation(w, d.Correlation)
		}
	}
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetAutoFormatHeaders(false)
	t.SetHeader(header)
	return t
}

// renderGroup pivots the cells of g into one row per dimension value and one column per split value.
func renderGroup(w io.Writer, g model.GroupChart) {
	var values, splits []string
	counts := make(map[[2]string]int)
	for _, c := range g.Cells {
		if !lo.Contains(values, c.Value) {
			values = append(values, c.Value)
		}
		if !lo.Contains(splits, c.Split) {
			splits = append(splits, c.Split)
		}
		counts[[2]string{c.Value, c.Split}] = c.Count
	}
	sort.Strings(splits)

	t := newTable(w, append([]string{g.Dimension}, splits...)...)
	for _, v := range values {
		row := []string{v}
		for _, s := range splits {
			row = append(row, strconv.Itoa(counts[[2]string{v, s}]))
		}
		t.Append(row)
	}
	t.Render()
}

func renderDistribution(w io.Writer, d model.Distribution) {
	t := newTable(w, d.SplitBy, "Count", "Min", "Q1", "Median", "Q3", "Max", "Mean")
	for _, b := range d.Boxes {
		t.Append([]string{
			b.Split,
			strconv.Itoa(b.Count),
			num(b.Min), num(b.Q1), num(b.Median), num(b.Q3), num(b.Max), num(b.Mean),
		})
	}
	t.Render()
}

func renderCorrelation(w io.Writer, c model.Correlation) {
	t := newTable(w, append([]string{""}, c.Columns...)...)
	for i, col := range c.Columns {
		row := []string{col}
		for _, v := range c.Values[i] {
			if v.Valid {
				row = append(row, strconv.FormatFloat(v.Float64, 'f', 2, 64))
			} else {
				row = append(row, "n/a")
			}
		}
		t.Append(row)
	}
	t.Render()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func list(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ",")
}
