package trace

import (
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// ConfigureLog sets up the commonlog backend. verbosity 0 keeps only
// errors; every step adds a level (warning, notice, info, debug).
func ConfigureLog(verbosity int, path string) {
	var p *string
	if path != "" && path != "-" {
		p = &path
	}
	commonlog.Configure(verbosity, p)
}

// LogTracer forwards events to a commonlog logger: span ends at info,
// everything else at debug.
type LogTracer struct {
	log   commonlog.Logger
	level Level
}

func NewLogTracer(name string, level Level) *LogTracer {
	return &LogTracer{log: commonlog.GetLogger(name), level: level}
}

func (t *LogTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	switch ev.Kind {
	case KindSpanEnd:
		t.log.Infof("%s %s done %s", ev.Scope, ev.Name, ev.Detail)
	case KindSpanBegin:
		t.log.Debugf("%s %s start", ev.Scope, ev.Name)
	default:
		t.log.Debugf("%s %s: %s", ev.Scope, ev.Name, ev.Detail)
	}
}

func (t *LogTracer) Flush() error  { return nil }
func (t *LogTracer) Close() error  { return nil }
func (t *LogTracer) Level() Level  { return t.level }
func (t *LogTracer) Enabled() bool { return t.level > LevelOff }
