package driver

import (
	"context"
	"time"

	"adaleph/internal/observ"
	"adaleph/internal/trace"
)

// phaseRecorder связывает одну фазу разбора с таймером, трейсом и наблюдателем.
type phaseRecorder struct {
	ctx      context.Context
	path     string
	timer    *observ.Timer
	observer PhaseObserver
}

func newPhaseRecorder(ctx context.Context, path string, timer *observ.Timer, observer PhaseObserver) *phaseRecorder {
	return &phaseRecorder{ctx: ctx, path: path, timer: timer, observer: observer}
}

// run выполняет fn как фазу name; fn возвращает заметку для отчёта.
func (r *phaseRecorder) run(name string, fn func() string) {
	span, _ := trace.StartSpan(r.ctx, trace.ScopePass, name)
	r.notify(PhaseEvent{Path: r.path, Name: name, Status: PhaseStart})
	started := time.Now()

	idx := r.timer.Begin(name)
	note := fn()
	r.timer.End(idx, note)

	span.End(note)
	r.notify(PhaseEvent{Path: r.path, Name: name, Status: PhaseEnd, Elapsed: time.Since(started), Note: note})
}

func (r *phaseRecorder) notify(ev PhaseEvent) {
	if r.observer != nil {
		r.observer(ev)
	}
}
