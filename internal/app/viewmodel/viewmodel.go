// Package viewmodel orchestrates persistence for model/view pairs.
//
// A ViewModel couples one model with its view. Its pipelines validate the
// view, rebuild the model, persist it through a ports.PersistenceGateway,
// cascade to related records through Hooks and replicate the model into
// other locales, all inside one transaction scope:
//
//	vm := articles.FromView(view)
//	result := vm.SaveModel(ctx, true)
//	if !result.Success {
//	    return result.Err()
//	}
//
// Scope ownership follows txscope: the outermost pipeline on a context owns
// the transaction and is the only one that commits or rolls back. Pipelines
// invoked from hooks borrow it, so a cascade of any depth is atomic.
//
// Pipelines never panic or return bare errors. Every failure, including a
// panic raised by a hook or gateway, comes back as a failed domain.Result.
//
// A ViewModel is not safe for concurrent pipeline runs; its mapper is created
// once per instance on first use and that creation is safe from any goroutine.
// Every pipeline has an ...Async twin that runs the same code on its own
// goroutine and delivers the result on a one-shot channel.
package viewmodel

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/logging"
)

const (
	opExpand = "expand"
	opSave   = "save"
	opRemove = "remove"
	opClone  = "clone"
)

// ViewModel pairs a model with its view.
type ViewModel[M any, V View] struct {
	repo  *Repository[M, V]
	model *M
	view  V
	state string

	mapperOnce sync.Once
	mapperImpl Mapper[M, V]
}

// Model returns the current backing model.
func (vm *ViewModel[M, V]) Model() *M {
	return vm.model
}

// View returns the view.
func (vm *ViewModel[M, V]) View() V {
	return vm.view
}

// State returns where the last SaveModel run stopped, or StateDraft.
func (vm *ViewModel[M, V]) State() string {
	if vm.state == "" {
		return StateDraft
	}
	return vm.state
}

func (vm *ViewModel[M, V]) mapper() Mapper[M, V] {
	vm.mapperOnce.Do(func() {
		vm.mapperImpl = vm.repo.def.NewMapper()
	})
	return vm.mapperImpl
}

// ParseModel replaces the model with a fresh instance built from the view.
func (vm *ViewModel[M, V]) ParseModel() (*M, error) {
	model := vm.repo.def.NewModel()
	if err := vm.mapper().ToModel(vm.view, model); err != nil {
		return nil, fmt.Errorf("mapping %s view to model: %w", vm.repo.def.Name, err)
	}
	vm.model = model
	return model, nil
}

// ParseView maps the model onto the view. With expand set it then runs the
// ExpandView hook inside a transaction scope. ok is false, and the view is
// the zero value, when mapping or expansion failed; the failure has already
// been logged, a root scope rolled back, and the cause recorded as the
// view's Fault.
func (vm *ViewModel[M, V]) ParseView(ctx context.Context, expand bool) (view V, ok bool) {
	var zero V
	vm.view.Meta().Fault = nil

	if err := vm.mapper().ToView(vm.model, vm.view); err != nil {
		vm.parseFailed(ctx, fmt.Errorf("mapping %s model to view: %w", vm.repo.def.Name, err))
		return zero, false
	}
	if !expand {
		return vm.view, true
	}

	ctx, done := vm.repo.instrument(ctx, opExpand)
	defer func() { done(ok) }()

	ctx, scope, err := vm.repo.scopes.Init(ctx)
	if err != nil {
		vm.parseFailed(ctx, err)
		return zero, false
	}

	defer func() {
		if p := recover(); p != nil {
			vm.view.Meta().Fault = recovered[V](ctx, vm.repo, scope, p).Fault
			view, ok = zero, false
		}
	}()

	if err := vm.repo.def.Hooks.ExpandView(ctx, vm.view); err != nil {
		vm.parseFailed(ctx, fmt.Errorf("expanding %s view: %w", vm.repo.def.Name, err))
		_ = finalize(ctx, vm.repo, scope, domain.Fail[V]())
		return zero, false
	}

	if result := finalize(ctx, vm.repo, scope, domain.OK(vm.view)); !result.Success {
		vm.view.Meta().Fault = result.Fault
		return zero, false
	}
	return vm.view, true
}

func (vm *ViewModel[M, V]) parseFailed(ctx context.Context, err error) {
	vm.repo.gateway.LogErrorMessage(ctx, err)
	vm.view.Meta().Fault = err
}

// Validate runs the validator and records the outcome on the view's
// metadata, replacing the errors of any earlier run.
func (vm *ViewModel[M, V]) Validate(ctx context.Context) bool {
	meta := vm.view.Meta()
	meta.Errors = vm.repo.def.Validator.Validate(ctx, vm.view)
	meta.IsValid = len(meta.Errors) == 0

	if !meta.IsValid {
		logging.FromContext(ctx).DebugContext(ctx, "view failed validation",
			slog.String("viewmodel", vm.repo.def.Name),
			slog.String("specificulture", meta.Specificulture),
			slog.Any("errors", meta.Errors),
		)
	}
	return meta.IsValid
}
