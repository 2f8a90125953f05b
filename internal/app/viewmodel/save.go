package viewmodel

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/txscope"
)

// SaveModel validates the view and, if it is valid, persists the rebuilt
// model. With saveSubModels set the SaveSubModels hook runs next; when the
// view is flagged IsClone and this call owns the scope, the saved model is
// then cloned into the view's Cultures.
//
// An invalid view never reaches the gateway. Each stage runs only if the
// previous one succeeded, and the scope is committed only if all did.
func (vm *ViewModel[M, V]) SaveModel(ctx context.Context, saveSubModels bool) (result domain.Result[V]) {
	ctx, done := vm.repo.instrument(ctx, opSave)
	lc := newLifecycle(vm.repo.def.Name)
	defer func() {
		vm.state = lc.current()
		vm.view.Meta().Fault = result.Fault
		done(result.Success)
	}()

	ctx, scope, err := vm.repo.scopes.Init(ctx)
	if err != nil {
		lc.fire(ctx, eventFail)
		return fault[V](ctx, vm.repo, err)
	}

	defer func() {
		if p := recover(); p != nil {
			lc.fire(ctx, eventFail)
			result = recovered[V](ctx, vm.repo, scope, p)
		}
	}()

	lc.fire(ctx, eventValidate)
	if !vm.Validate(ctx) {
		lc.fire(ctx, eventReject)
		result = domain.Fail[V](vm.view.Meta().Errors...)
		result.Payload = vm.view
		return finalize(ctx, vm.repo, scope, result)
	}

	result = vm.persist(ctx, scope, lc, saveSubModels)
	result.Payload = vm.view
	result = finalize(ctx, vm.repo, scope, result)
	if !result.Success && lc.current() == StateDone {
		lc.fire(ctx, eventAbort)
	}
	return result
}

func (vm *ViewModel[M, V]) persist(
	ctx context.Context, scope *txscope.Scope, lc *lifecycle, saveSubModels bool,
) domain.Result[V] {
	model, err := vm.ParseModel()
	if err != nil {
		lc.fire(ctx, eventFail)
		return fault[V](ctx, vm.repo, err)
	}
	lc.fire(ctx, eventMap)

	lc.fire(ctx, eventPersist)
	saved, err := vm.repo.gateway.SaveModel(ctx, model)
	if err != nil {
		lc.fire(ctx, eventFail)
		return fault[V](ctx, vm.repo, fmt.Errorf("saving %s: %w", vm.repo.def.Name, err))
	}
	if saved != nil {
		vm.model = saved
	}
	if err := vm.mapper().ToView(vm.model, vm.view); err != nil {
		lc.fire(ctx, eventFail)
		return fault[V](ctx, vm.repo, fmt.Errorf("mapping saved %s to view: %w", vm.repo.def.Name, err))
	}
	lc.fire(ctx, eventStored)

	result := domain.OK(vm.view)

	lc.fire(ctx, eventCascade)
	if saveSubModels {
		domain.Absorb(&result, vm.repo.def.Hooks.SaveSubModels(ctx, vm.model, vm.view))
		if !result.Success {
			lc.fire(ctx, eventFail)
			return result
		}
	}

	meta := vm.view.Meta()
	if !meta.IsClone || !scope.IsRoot() {
		lc.fire(ctx, eventComplete)
		return result
	}

	lc.fire(ctx, eventClone)
	domain.Absorb(&result, vm.Clone(ctx, vm.model, meta.Cultures))
	if !result.Success {
		lc.fire(ctx, eventFail)
		return result
	}
	lc.fire(ctx, eventComplete)
	return result
}
