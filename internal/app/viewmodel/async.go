package viewmodel

import (
	"context"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
)

// async runs fn on its own goroutine and delivers its result once.
func async[T any](fn func() T) <-chan T {
	ch := make(chan T, 1)
	go func() {
		ch <- fn()
	}()
	return ch
}

// ParseModelAsync is the non-blocking form of ParseModel.
func (vm *ViewModel[M, V]) ParseModelAsync() <-chan domain.Result[*M] {
	return async(func() domain.Result[*M] {
		model, err := vm.ParseModel()
		if err != nil {
			return domain.FromFault[*M](err)
		}
		return domain.OK(model)
	})
}

// ParseViewAsync is the non-blocking form of ParseView. A failed expansion
// delivers a failed Result carrying the cause.
func (vm *ViewModel[M, V]) ParseViewAsync(ctx context.Context, expand bool) <-chan domain.Result[V] {
	return async(func() domain.Result[V] {
		view, ok := vm.ParseView(ctx, expand)
		if !ok {
			if fault := vm.view.Meta().Fault; fault != nil {
				return domain.FromFault[V](fault)
			}
			return domain.Fail[V](vm.repo.def.Name + ": view expansion failed")
		}
		return domain.OK(view)
	})
}

// ValidateAsync is the non-blocking form of Validate.
func (vm *ViewModel[M, V]) ValidateAsync(ctx context.Context) <-chan bool {
	return async(func() bool { return vm.Validate(ctx) })
}

// SaveModelAsync is the non-blocking form of SaveModel.
func (vm *ViewModel[M, V]) SaveModelAsync(ctx context.Context, saveSubModels bool) <-chan domain.Result[V] {
	return async(func() domain.Result[V] { return vm.SaveModel(ctx, saveSubModels) })
}

// RemoveModelAsync is the non-blocking form of RemoveModel.
func (vm *ViewModel[M, V]) RemoveModelAsync(ctx context.Context, removeRelated bool) <-chan domain.Result[*M] {
	return async(func() domain.Result[*M] { return vm.RemoveModel(ctx, removeRelated) })
}

// CloneAsync is the non-blocking form of Clone.
func (vm *ViewModel[M, V]) CloneAsync(ctx context.Context, source *M, locales []domain.Locale) <-chan domain.Result[[]V] {
	return async(func() domain.Result[[]V] { return vm.Clone(ctx, source, locales) })
}
