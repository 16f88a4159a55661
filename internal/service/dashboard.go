package service

import (
	"context"
	"math"
	"time"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/guregu/null.v3"

	"github.com/peoplelens/attritiond/internal/constant"
	"github.com/peoplelens/attritiond/internal/core/employee"
	"github.com/peoplelens/attritiond/internal/core/filter"
	"github.com/peoplelens/attritiond/internal/core/insight"
	"github.com/peoplelens/attritiond/internal/model"
	"github.com/peoplelens/attritiond/internal/model/types"
	"github.com/peoplelens/attritiond/internal/pkg/async"
	"github.com/peoplelens/attritiond/internal/pkg/observability"
	"github.com/peoplelens/attritiond/internal/pkg/pgerr"
)

var tracer = otel.Tracer("github.com/peoplelens/attritiond/internal/service")

const (
	ViewDashboard    = "dashboard"
	ViewKPIs         = "kpis"
	ViewGroups       = "groups"
	ViewCorrelation  = "correlation"
	ViewDistribution = "distribution"
)

// Dashboard runs the filter and aggregate pipeline over the loaded dataset.
type Dashboard struct {
	Loader *employee.Loader
}

func NewDashboard(loader *employee.Loader) *Dashboard {
	return &Dashboard{
		Loader: loader,
	}
}

// pass is one filter evaluation.
type pass struct {
	ds    *employee.Dataset
	state filter.State
	table *filter.Table
}

func (s *Dashboard) dataset(ctx context.Context) (*employee.Dataset, error) {
	ds, err := s.Loader.Load(ctx)
	if err != nil {
		log.Error().
			Err(err).
			Str("evt.name", "dashboard.dataset.unavailable").
			Msg("failed to load dataset")
		return nil, pgerr.ErrDatasetUnavailable.Msg("dataset could not be loaded: %s", errors.Cause(err))
	}
	return ds, nil
}

func (s *Dashboard) run(ctx context.Context, view string, req *types.FilterRequest) (*pass, trace.Span, func(), error) {
	ctx, span := tracer.Start(ctx, "dashboard."+view)
	start := time.Now()

	ds, err := s.dataset(ctx)
	if err != nil {
		span.RecordError(err)
		span.End()
		return nil, nil, nil, err
	}

	st := req.State(ds)
	table := filter.Apply(ds, st)

	span.SetAttributes(
		attribute.String("filter.key", st.Key()),
		attribute.Int("filter.shown", table.Len()),
	)
	observability.PipelineFilteredRows.WithLabelValues(view).Set(float64(table.Len()))

	done := func() {
		took := time.Since(start)
		observability.PipelineDuration.WithLabelValues(view).Observe(took.Seconds())
		log.Debug().
			Str("evt.name", "dashboard.pass").
			Str("view", view).
			Str("filter", st.Key()).
			Int("shown", table.Len()).
			Int("total", ds.Len()).
			Dur("took", took).
			Msg("filter pass computed")
		span.End()
	}

	return &pass{ds: ds, state: st, table: table}, span, done, nil
}

// Version identifies the result of a pass: equal versions render equal views.
func (s *Dashboard) Version(ctx context.Context, req *types.FilterRequest) (string, error) {
	ds, err := s.dataset(ctx)
	if err != nil {
		return "", err
	}
	return ds.Fingerprint + "|" + req.State(ds).Key(), nil
}

func (s *Dashboard) FilterOptions(ctx context.Context) (*model.FilterOptions, error) {
	ds, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	lower, upper := ds.AgeBounds()

	var def model.FilterState
	if err := copier.Copy(&def, filter.DefaultState(ds)); err != nil {
		return nil, errors.Wrap(err, "copy filter state")
	}

	return &model.FilterOptions{
		Departments: ds.Departments(),
		Genders:     ds.Genders(),
		AgeBounds:   model.AgeRange{Min: lower, Max: upper},
		Default:     def,
	}, nil
}

func (s *Dashboard) Build(ctx context.Context, req *types.FilterRequest) (*model.Dashboard, error) {
	p, _, done, err := s.run(ctx, ViewDashboard, req)
	if err != nil {
		return nil, err
	}
	defer done()

	var result model.Dashboard
	if err := copier.Copy(&result.Filter, p.state); err != nil {
		return nil, errors.Wrap(err, "copy filter state")
	}
	result.Dataset = datasetInfo(p.ds)
	result.KPIs = kpis(p)
	result.AttritionCounts = make([]model.ValueCount, 0, 2)
	if err := copier.Copy(&result.AttritionCounts, insight.AttritionCounts(p.table)); err != nil {
		return nil, errors.Wrap(err, "copy attrition counts")
	}

	result.Groups = make([]model.GroupChart, len(constant.ChartDimensions))
	result.Distributions = make([]model.Distribution, len(constant.DistributionColumns))

	tasks := make([]<-chan error, 0, len(result.Groups)+len(result.Distributions)+1)
	for i, dim := range constant.ChartDimensions {
		i, dim := i, dim
		tasks = append(tasks, async.Errable(func() error {
			chart, err := groupChart(p, dim)
			if err != nil {
				return err
			}
			result.Groups[i] = *chart
			return nil
		}))
	}
	for i, col := range constant.DistributionColumns {
		i, col := i, col
		tasks = append(tasks, async.Errable(func() error {
			dist, err := distribution(p, col)
			if err != nil {
				return err
			}
			result.Distributions[i] = *dist
			return nil
		}))
	}
	tasks = append(tasks, async.Errable(func() error {
		result.Correlation = correlation(p)
		return nil
	}))
	if err := async.WaitAll(tasks...); err != nil {
		return nil, err
	}
	result.Sections = sections()

	return &result, nil
}

func (s *Dashboard) KPIs(ctx context.Context, req *types.FilterRequest) (*model.KPIs, error) {
	p, _, done, err := s.run(ctx, ViewKPIs, req)
	if err != nil {
		return nil, err
	}
	defer done()

	k := kpis(p)
	return &k, nil
}

func (s *Dashboard) Groups(ctx context.Context, req *types.FilterRequest, dimension string) (*model.GroupChart, error) {
	p, span, done, err := s.run(ctx, ViewGroups, req)
	if err != nil {
		return nil, err
	}
	defer done()
	span.SetAttributes(attribute.String("groups.dimension", dimension))

	return groupChart(p, dimension)
}

func (s *Dashboard) Correlation(ctx context.Context, req *types.FilterRequest) (*model.Correlation, error) {
	p, _, done, err := s.run(ctx, ViewCorrelation, req)
	if err != nil {
		return nil, err
	}
	defer done()

	c := correlation(p)
	return &c, nil
}

func (s *Dashboard) Distribution(ctx context.Context, req *types.FilterRequest, column string) (*model.Distribution, error) {
	p, span, done, err := s.run(ctx, ViewDistribution, req)
	if err != nil {
		return nil, err
	}
	defer done()
	span.SetAttributes(attribute.String("distribution.column", column))

	return distribution(p, column)
}

func datasetInfo(ds *employee.Dataset) model.DatasetInfo {
	return model.DatasetInfo{
		Source:      ds.Source,
		Fingerprint: ds.Fingerprint,
		Rows:        ds.Len(),
		Columns:     ds.Columns(),
		LoadedAt:    ds.LoadedAt,
	}
}

func kpis(p *pass) model.KPIs {
	rate := insight.AttritionRate(p.ds)
	return model.KPIs{
		TotalEmployees:    insight.TotalCount(p.ds),
		EmployeesShown:    insight.ShownCount(p.table),
		AttritionRate:     float64(rate),
		AttritionRateText: rate.String(),
	}
}

func groupChart(p *pass, dimension string) (*model.GroupChart, error) {
	cells, err := insight.AttritionGroups(p.table, dimension)
	if errors.Is(err, insight.ErrUnknownColumn) {
		return nil, pgerr.ErrNotFound.Msg("unknown dimension %q", dimension)
	} else if err != nil {
		return nil, err
	}

	chart := &model.GroupChart{
		Dimension: dimension,
		SplitBy:   constant.ColumnAttrition,
		Numeric:   p.ds.IsNumeric(dimension),
		Cells:     make([]model.GroupCell, 0, len(cells)),
	}
	if err := copier.Copy(&chart.Cells, cells); err != nil {
		return nil, errors.Wrap(err, "copy group cells")
	}
	return chart, nil
}

func distribution(p *pass, column string) (*model.Distribution, error) {
	boxes, err := insight.AttritionDistribution(p.table, column)
	switch {
	case errors.Is(err, insight.ErrUnknownColumn):
		return nil, pgerr.ErrNotFound.Msg("unknown column %q", column)
	case errors.Is(err, insight.ErrNotNumeric):
		return nil, pgerr.ErrInvalidReq.Msg("invalid request: column %q is not numeric", column)
	case err != nil:
		return nil, err
	}

	dist := &model.Distribution{
		Column:  column,
		SplitBy: constant.ColumnAttrition,
		Boxes:   make([]model.Box, 0, len(boxes)),
	}
	if err := copier.Copy(&dist.Boxes, boxes); err != nil {
		return nil, errors.Wrap(err, "copy distribution")
	}
	return dist, nil
}

func correlation(p *pass) model.Correlation {
	m := insight.CorrelationMatrix(p.table)
	return model.Correlation{
		Columns: m.Columns,
		Values: lo.Map(m.Values, func(row []float64, _ int) []null.Float {
			return lo.Map(row, func(v float64, _ int) null.Float {
				return null.NewFloat(v, !math.IsNaN(v))
			})
		}),
	}
}

func sections() []model.Section {
	return lo.Map(constant.Sections, func(s constant.Section, _ int) model.Section {
		return model.Section{
			Name:          s.Name,
			Dimensions:    append([]string{}, s.Dimensions...),
			Distributions: append([]string{}, s.Distributions...),
		}
	})
}
