package viewmodel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/txscope"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/ports"
)

// View is the constraint every view type satisfies, typically by embedding
// domain.ViewMeta in a struct used through a pointer.
type View interface {
	Meta() *domain.ViewMeta
}

// Definition describes one model/view pair. NewModel and NewView are
// required; the rest fall back to NewDeepCopyMapper, a validator that accepts
// everything and NopHooks.
type Definition[M any, V View] struct {
	// Name labels logs, spans and metrics, e.g. "article".
	Name      string
	NewModel  func() *M
	NewView   func() V
	NewMapper func() Mapper[M, V]
	Validator Validator[V]
	Hooks     Hooks[M, V]
}

// Repository builds view-models for one Definition and holds the
// collaborators their pipelines share. Construct one per entity type at
// startup and inject it.
type Repository[M any, V View] struct {
	def     Definition[M, V]
	gateway ports.PersistenceGateway[M]
	scopes  *txscope.Manager
	metrics *telemetry.Metrics
	tracer  trace.Tracer
}

// NewRepository validates def and fills its optional parts. metrics may be nil.
func NewRepository[M any, V View](
	def Definition[M, V],
	gateway ports.PersistenceGateway[M],
	scopes *txscope.Manager,
	metrics *telemetry.Metrics,
) (*Repository[M, V], error) {
	if def.Name == "" {
		return nil, errors.New("viewmodel: definition name must not be empty")
	}
	if def.NewModel == nil || def.NewView == nil {
		return nil, fmt.Errorf("viewmodel: %s: NewModel and NewView are required", def.Name)
	}
	if gateway == nil || scopes == nil {
		return nil, fmt.Errorf("viewmodel: %s: gateway and scope manager are required", def.Name)
	}
	if def.NewMapper == nil {
		def.NewMapper = func() Mapper[M, V] { return NewDeepCopyMapper[M, V]() }
	}
	if def.Validator == nil {
		def.Validator = acceptAll[V]{}
	}
	if def.Hooks == nil {
		def.Hooks = NopHooks[M, V]{}
	}

	return &Repository[M, V]{
		def:     def,
		gateway: gateway,
		scopes:  scopes,
		metrics: metrics,
		tracer:  otel.Tracer(telemetry.InstrumentationName),
	}, nil
}

// Name returns the definition name.
func (r *Repository[M, V]) Name() string {
	return r.def.Name
}

// New returns a view-model over an empty view and a zero model.
func (r *Repository[M, V]) New() *ViewModel[M, V] {
	return &ViewModel[M, V]{repo: r, model: r.def.NewModel(), view: r.def.NewView()}
}

// FromView wraps an existing view. The model is rebuilt from it by the
// pipelines.
func (r *Repository[M, V]) FromView(view V) *ViewModel[M, V] {
	return &ViewModel[M, V]{repo: r, model: r.def.NewModel(), view: view}
}

// FromModel wraps model and maps it onto a fresh view without expansion.
func (r *Repository[M, V]) FromModel(model *M) (*ViewModel[M, V], error) {
	vm := &ViewModel[M, V]{repo: r, model: model, view: r.def.NewView()}
	if err := vm.mapper().ToView(model, vm.view); err != nil {
		return nil, fmt.Errorf("mapping %s model to view: %w", r.def.Name, err)
	}
	return vm, nil
}

// duplicate returns a view-model over an independent copy of source.
func (r *Repository[M, V]) duplicate(source *M) (*ViewModel[M, V], error) {
	vm := r.New()
	if err := vm.mapper().Duplicate(source, vm.model); err != nil {
		return nil, fmt.Errorf("duplicating %s model: %w", r.def.Name, err)
	}
	return vm, nil
}

// instrument opens a span for one pipeline run and returns the function that
// closes it and records the run's metrics.
func (r *Repository[M, V]) instrument(ctx context.Context, operation string) (context.Context, func(success bool)) {
	start := time.Now()
	name := r.def.Name + "." + operation

	ctx, span := r.tracer.Start(ctx, name,
		trace.WithAttributes(attribute.String("viewmodel.name", r.def.Name)),
	)
	_, nested := txscope.From(ctx)
	span.SetAttributes(attribute.Bool("viewmodel.nested", nested))

	return ctx, func(success bool) {
		if !success {
			span.SetStatus(codes.Error, name+" failed")
		}
		span.End()
		r.metrics.RecordPipeline(ctx, name, success, time.Since(start))
	}
}

// fault logs err through the gateway and wraps it in a failed Result.
func fault[T any, M any, V View](ctx context.Context, r *Repository[M, V], err error) domain.Result[T] {
	r.gateway.LogErrorMessage(ctx, err)
	return domain.FromFault[T](err)
}

// finalize hands the pipeline outcome to the scope manager. Only a root
// scope is actually committed or rolled back.
func finalize[T any, M any, V View](
	ctx context.Context, r *Repository[M, V], scope *txscope.Scope, result domain.Result[T],
) domain.Result[T] {
	if err := r.scopes.Handle(ctx, scope, result.Success); err != nil {
		r.gateway.LogErrorMessage(ctx, err)
		result.SetFault(err)
	}
	return result
}

// recovered turns a panic raised inside a pipeline into a failed Result and
// rolls back a root scope.
func recovered[T any, M any, V View](
	ctx context.Context, r *Repository[M, V], scope *txscope.Scope, p any,
) domain.Result[T] {
	err, ok := p.(error)
	if !ok {
		err = fmt.Errorf("%v", p)
	}
	err = fmt.Errorf("%s pipeline panicked: %w", r.def.Name, err)
	r.gateway.LogErrorMessage(ctx, err)
	return txscope.HandleFault[T](ctx, r.scopes, scope, err)
}
