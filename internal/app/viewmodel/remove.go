package viewmodel

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
)

// RemoveModel deletes the model rebuilt from the view. With removeRelated
// set the RemoveRelatedModels hook runs first and the delete happens only if
// it succeeded. The payload is the removed model.
func (vm *ViewModel[M, V]) RemoveModel(ctx context.Context, removeRelated bool) (result domain.Result[*M]) {
	ctx, done := vm.repo.instrument(ctx, opRemove)
	defer func() { done(result.Success) }()

	ctx, scope, err := vm.repo.scopes.Init(ctx)
	if err != nil {
		return fault[*M](ctx, vm.repo, err)
	}

	defer func() {
		if p := recover(); p != nil {
			result = recovered[*M](ctx, vm.repo, scope, p)
		}
	}()

	model, err := vm.ParseModel()
	if err != nil {
		return finalize(ctx, vm.repo, scope, fault[*M](ctx, vm.repo, err))
	}

	if removeRelated {
		related := vm.repo.def.Hooks.RemoveRelatedModels(ctx, vm.view)
		if !related.Success || len(related.Errors) > 0 {
			result = domain.Fail[*M]()
			domain.Absorb(&result, related)
			return finalize(ctx, vm.repo, scope, result)
		}
	}

	if err := vm.repo.gateway.RemoveModel(ctx, model); err != nil {
		err = fmt.Errorf("removing %s: %w", vm.repo.def.Name, err)
		return finalize(ctx, vm.repo, scope, fault[*M](ctx, vm.repo, err))
	}

	return finalize(ctx, vm.repo, scope, domain.OK(model))
}
