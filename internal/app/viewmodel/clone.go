package viewmodel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/txscope"
)

// Clone replicates source into each locale, strictly in the order given.
//
// A locale that already holds the record is reported as a success without a
// write. Otherwise the copy is saved without sub-models or further cloning,
// and the CloneSubModels hook runs for it with the same locale set. Sub-model
// views are never added to the payload.
//
// The payload lists the views of locales that succeeded. A failed locale does
// not stop the loop: its errors and fault are accumulated and the shared
// scope is marked rollback-only, so the root owner undoes every locale. Each
// locale runs behind its own savepoint when the scope manager has them
// enabled, so a failed statement in one locale does not abort the next.
// Callers filter locales before calling; see domain.CloneTargets.
func (vm *ViewModel[M, V]) Clone(ctx context.Context, source *M, locales []domain.Locale) (result domain.Result[[]V]) {
	ctx, done := vm.repo.instrument(ctx, opClone)
	defer func() { done(result.Success) }()

	ctx, scope, err := vm.repo.scopes.Init(ctx)
	if err != nil {
		return fault[[]V](ctx, vm.repo, err)
	}

	defer func() {
		if p := recover(); p != nil {
			result = recovered[[]V](ctx, vm.repo, scope, p)
		}
	}()

	result = domain.OK(make([]V, 0, len(locales)))
	for _, locale := range locales {
		step := vm.cloneStep(ctx, scope, source, locale, locales)
		if step.Success {
			result.Payload = append(result.Payload, step.Payload)
		} else {
			logging.FromContext(ctx).WarnContext(ctx, "clone into locale failed",
				slog.String("viewmodel", vm.repo.def.Name),
				slog.String("specificulture", locale.Code),
				slog.Any("errors", step.Errors),
			)
			domain.Absorb(&result, step)
		}
		vm.repo.scopes.Checkpoint(ctx, scope, result.Success)
	}

	return finalize(ctx, vm.repo, scope, result)
}

// cloneStep runs cloneInto behind a savepoint and rewinds it on failure.
func (vm *ViewModel[M, V]) cloneStep(
	ctx context.Context, scope *txscope.Scope, source *M, locale domain.Locale, locales []domain.Locale,
) domain.Result[V] {
	sp, err := vm.repo.scopes.Savepoint(ctx, scope)
	if err != nil {
		return fault[V](ctx, vm.repo, err)
	}

	step := vm.cloneInto(ctx, source, locale, locales)
	if err := vm.repo.scopes.Settle(ctx, sp, step.Success); err != nil {
		domain.Absorb(&step, fault[V](ctx, vm.repo, err))
	}
	return step
}

func (vm *ViewModel[M, V]) cloneInto(
	ctx context.Context, source *M, locale domain.Locale, locales []domain.Locale,
) (step domain.Result[V]) {
	defer func() {
		if p := recover(); p != nil {
			step = fault[V](ctx, vm.repo, fmt.Errorf("cloning %s into %s panicked: %v", vm.repo.def.Name, locale.Code, p))
		}
	}()

	target, err := vm.repo.duplicate(source)
	if err != nil {
		return fault[V](ctx, vm.repo, err)
	}

	view, ok := target.ParseView(ctx, false)
	if !ok {
		return domain.Fail[V](fmt.Sprintf("%s: could not build view for %s", vm.repo.def.Name, locale.Code))
	}
	meta := view.Meta()
	meta.Specificulture = locale.Code
	meta.IsClone = false
	meta.Cultures = nil

	model, err := target.ParseModel()
	if err != nil {
		return fault[V](ctx, vm.repo, err)
	}

	exists, err := vm.repo.gateway.CheckExists(ctx, model)
	if err != nil {
		return fault[V](ctx, vm.repo, fmt.Errorf("checking %s in %s: %w", vm.repo.def.Name, locale.Code, err))
	}
	if exists {
		return domain.OK(view)
	}

	saved := target.SaveModel(ctx, false)
	if !saved.Success {
		return saved
	}

	domain.Absorb(&saved, vm.repo.def.Hooks.CloneSubModels(ctx, source, saved.Payload, locales))
	return saved
}
