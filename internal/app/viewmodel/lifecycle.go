package viewmodel

import (
	"context"
	"log/slog"

	"github.com/looplab/fsm"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/logging"
)

// Save lifecycle states. Invalid, Failed and Done are terminal.
const (
	StateDraft      = "draft"
	StateValidating = "validating"
	StateInvalid    = "invalid"
	StateMapped     = "mapped"
	StatePersisting = "persisting"
	StatePersisted  = "persisted"
	StateCascading  = "cascading"
	StateCloning    = "cloning"
	StateDone       = "done"
	StateFailed     = "failed"
)

const (
	eventValidate = "validate"
	eventReject   = "reject"
	eventMap      = "map"
	eventPersist  = "persist"
	eventStored   = "stored"
	eventCascade  = "cascade"
	eventClone    = "clone"
	eventComplete = "complete"
	eventFail     = "fail"
	eventAbort    = "abort"
)

// lifecycle tracks one SaveModel run.
type lifecycle struct {
	machine *fsm.FSM
	name    string
}

func newLifecycle(name string) *lifecycle {
	l := &lifecycle{name: name}
	l.machine = fsm.NewFSM(
		StateDraft,
		fsm.Events{
			{Name: eventValidate, Src: []string{StateDraft}, Dst: StateValidating},
			{Name: eventReject, Src: []string{StateValidating}, Dst: StateInvalid},
			{Name: eventMap, Src: []string{StateValidating}, Dst: StateMapped},
			{Name: eventPersist, Src: []string{StateMapped}, Dst: StatePersisting},
			{Name: eventStored, Src: []string{StatePersisting}, Dst: StatePersisted},
			{Name: eventCascade, Src: []string{StatePersisted}, Dst: StateCascading},
			{Name: eventClone, Src: []string{StateCascading}, Dst: StateCloning},
			{Name: eventComplete, Src: []string{StateCascading, StateCloning}, Dst: StateDone},
			{
				Name: eventFail,
				Src: []string{
					StateDraft, StateValidating, StateMapped, StatePersisting,
					StatePersisted, StateCascading, StateCloning,
				},
				Dst: StateFailed,
			},
			// The root commit runs after the pipeline reached done.
			{Name: eventAbort, Src: []string{StateDone}, Dst: StateFailed},
		},
		fsm.Callbacks{
			"enter_state": func(ctx context.Context, e *fsm.Event) {
				logging.FromContext(ctx).DebugContext(ctx, "save lifecycle transition",
					slog.String("viewmodel", l.name),
					slog.String("event", e.Event),
					slog.String("from", e.Src),
					slog.String("to", e.Dst),
				)
			},
		},
	)
	return l
}

// fire applies event. A transition the machine rejects is a programming
// error in the pipeline, logged rather than surfaced to callers.
func (l *lifecycle) fire(ctx context.Context, event string) {
	if err := l.machine.Event(context.WithoutCancel(ctx), event); err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "rejected save lifecycle transition",
			slog.String("viewmodel", l.name),
			slog.String("event", event),
			slog.String("state", l.machine.Current()),
			slog.Any("error", err),
		)
	}
}

func (l *lifecycle) current() string {
	return l.machine.Current()
}
