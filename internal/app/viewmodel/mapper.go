package viewmodel

import (
	"github.com/tiendc/go-deepcopy"
)

// Mapper projects fields between a model and its view, and duplicates models.
// Fields present on only one side are left alone.
type Mapper[M, V any] interface {
	ToView(model *M, view V) error
	ToModel(view V, model *M) error
	Duplicate(src, dst *M) error
}

// DeepCopyMapper matches fields by name, including fields promoted from
// embedded structs. Fields tagged `copy:"-"` are never projected.
type DeepCopyMapper[M, V any] struct {
	opts []deepcopy.Option
}

// NewDeepCopyMapper returns the default mapper. Copy plans are cached per
// type pair, so one mapper per view-model instance is cheap.
func NewDeepCopyMapper[M, V any]() *DeepCopyMapper[M, V] {
	return &DeepCopyMapper[M, V]{
		opts: []deepcopy.Option{
			deepcopy.CopyBetweenPtrAndValue(true),
			deepcopy.IgnoreNonCopyableTypes(true),
		},
	}
}

// ToView copies model fields onto view.
func (m *DeepCopyMapper[M, V]) ToView(model *M, view V) error {
	return deepcopy.Copy(view, model, m.opts...)
}

// ToModel copies view fields onto model.
func (m *DeepCopyMapper[M, V]) ToModel(view V, model *M) error {
	return deepcopy.Copy(model, view, m.opts...)
}

// Duplicate deep-copies src into dst so the two share no slices or maps.
func (m *DeepCopyMapper[M, V]) Duplicate(src, dst *M) error {
	return deepcopy.Copy(dst, src, m.opts...)
}
