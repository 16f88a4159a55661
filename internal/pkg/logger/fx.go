package logger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx/fxevent"
)

type fxLogger struct {
	l zerolog.Logger
}

var _ fxevent.Logger = (*fxLogger)(nil)

// Fx routes fx lifecycle events into zerolog. Successful wiring events are traced
// only; failures always surface at error level.
func Fx() fxevent.Logger {
	return &fxLogger{
		l: log.Logger.
			With().
			Str("evt.name", "fx.init").
			Logger(),
	}
}

func (f *fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.Provided:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Str("module", e.ModuleName).Msg("fx: provide failed")
			return
		}
		f.l.Trace().
			Str("constructor", e.ConstructorName).
			Strs("types", e.OutputTypeNames).
			Str("module", e.ModuleName).
			Msg("fx: provided")
	case *fxevent.Invoked:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Str("function", e.FunctionName).Str("module", e.ModuleName).Msg("fx: invoke failed")
			return
		}
		f.l.Trace().Str("function", e.FunctionName).Str("module", e.ModuleName).Msg("fx: invoked")
	case *fxevent.OnStartExecuted:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Str("callee", e.FunctionName).Msg("fx: OnStart hook failed")
			return
		}
		f.l.Debug().Str("callee", e.FunctionName).Dur("runtime", e.Runtime).Msg("fx: OnStart hook executed")
	case *fxevent.OnStopExecuted:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Str("callee", e.FunctionName).Msg("fx: OnStop hook failed")
			return
		}
		f.l.Debug().Str("callee", e.FunctionName).Dur("runtime", e.Runtime).Msg("fx: OnStop hook executed")
	case *fxevent.RollingBack:
		f.l.Error().Err(e.StartErr).Msg("fx: start failed, rolling back")
	case *fxevent.Started:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Msg("fx: start failed")
			return
		}
		f.l.Debug().Msg("fx: started")
	case *fxevent.Stopped:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Msg("fx: stop failed")
			return
		}
		f.l.Debug().Msg("fx: stopped")
	}
}
