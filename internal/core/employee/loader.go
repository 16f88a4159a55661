package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zeebo/xxh3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/peoplelens/attritiond/internal/app/appconfig"
	"github.com/peoplelens/attritiond/internal/pkg/cache"
	"github.com/peoplelens/attritiond/internal/pkg/observability"
)

var tracer = otel.Tracer("github.com/peoplelens/attritiond/internal/core/employee")

// Loader reads the employee table once per process and hands out the same Dataset afterwards.
type Loader struct {
	Source    Source
	Delimiter rune

	cached *cache.Singular[*Dataset]
}

func NewLoader(conf *appconfig.Config, source Source) *Loader {
	delimiter := rune(conf.DatasetDelimiter)
	if delimiter == 0 {
		delimiter = ','
	}
	return &Loader{
		Source:    source,
		Delimiter: delimiter,
		cached:    cache.NewSingular[*Dataset]("dataset"),
	}
}

// Load returns the Dataset, reading the source on the first call only.
// Failed loads are not cached. Every error matches ErrLoad.
func (l *Loader) Load(ctx context.Context) (*Dataset, error) {
	var ds *Dataset
	_, err := l.cached.MutexGetSet(&ds, func() (*Dataset, error) {
		return l.read(ctx)
	}, 0)
	if err != nil {
		return nil, err
	}
	return ds, nil
}

// Loaded reports whether the Dataset is already in memory.
func (l *Loader) Loaded() bool {
	return l.cached.Has()
}

func (l *Loader) read(ctx context.Context) (ds *Dataset, err error) {
	ctx, span := tracer.Start(ctx, "employee.Load")
	span.SetAttributes(attribute.String("dataset.source", l.Source.String()))
	defer span.End()

	start := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		observability.DatasetLoadDuration.
			WithLabelValues(sourceScheme(l.Source), result).
			Observe(time.Since(start).Seconds())
	}()

	b, err := l.Source.Fetch(ctx)
	if err != nil {
		return nil, &LoadError{Source: l.Source.String(), Err: err}
	}

	ds, err = Parse(b, l.Delimiter)
	if err != nil {
		return nil, &LoadError{Source: l.Source.String(), Err: err}
	}
	ds.Fingerprint = fmt.Sprintf("%016x", xxh3.Hash(b))
	ds.Source = l.Source.String()
	ds.LoadedAt = time.Now()

	observability.DatasetRows.Set(float64(ds.Len()))
	span.SetAttributes(attribute.Int("dataset.rows", ds.Len()))

	log.Info().
		Str("evt.name", "employee.dataset.loaded").
		Str("source", ds.Source).
		Str("fingerprint", ds.Fingerprint).
		Int("rows", ds.Len()).
		Int("columns", len(ds.schema.columns)).
		Dur("took", time.Since(start)).
		Msg("employee dataset loaded")

	return ds, nil
}

func sourceScheme(s Source) string {
	switch s.(type) {
	case *S3Source:
		return appconfig.SchemeS3
	default:
		return appconfig.SchemeFile
	}
}
