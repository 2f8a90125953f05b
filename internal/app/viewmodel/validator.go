package viewmodel

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
)

// Validator checks a view's declared constraints. It never consults the
// backing store. An empty result means the view is valid.
type Validator[V any] interface {
	Validate(ctx context.Context, view V) []string
}

// Rule is a cross-field constraint written as a boolean expr-lang expression
// over the view's fields, e.g. `string(Status) != "published" || Content != ""`.
type Rule struct {
	Expr    string
	Message string
}

type compiledRule struct {
	program *vm.Program
	message string
}

// StructValidator validates `validate` struct tags with go-playground and
// then evaluates each Rule. Field names in messages come from json tags.
type StructValidator[V any] struct {
	validate *validator.Validate
	rules    []compiledRule
}

// NewStructValidator compiles rules against the shape of sample, which is
// only used for type checking.
func NewStructValidator[V any](sample V, rules ...Rule) (*StructValidator[V], error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		program, err := expr.Compile(r.Expr, expr.Env(sample), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compiling rule %q: %w", r.Expr, err)
		}
		compiled = append(compiled, compiledRule{program: program, message: r.Message})
	}

	return &StructValidator[V]{validate: v, rules: compiled}, nil
}

// Validate returns one message per failed constraint.
func (s *StructValidator[V]) Validate(ctx context.Context, view V) []string {
	var messages []string

	if err := s.validate.StructCtx(ctx, view); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return []string{err.Error()}
		}
		for _, fe := range fieldErrs {
			messages = append(messages, fe.Field()+": "+describe(fe))
		}
	}

	for _, r := range s.rules {
		out, err := expr.Run(r.program, view)
		if err != nil {
			messages = append(messages, fmt.Sprintf("%s (%v)", r.message, err))
			continue
		}
		if ok, _ := out.(bool); !ok {
			messages = append(messages, r.message)
		}
	}

	return messages
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return domain.MsgRequired
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "lowercase":
		return "must be lowercase"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	default:
		return name
	}
}

type acceptAll[V any] struct{}

func (acceptAll[V]) Validate(context.Context, V) []string { return nil }
