package viewmodel_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/app/viewmodel"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/config"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/txscope"
	"github.com/jsamuelsen11/go-viewmodel-service/mocks"
)

type note struct {
	ID             string
	Specificulture string
	Body           string
	Priority       int
}

type noteView struct {
	domain.ViewMeta
	ID   string `json:"id" validate:"required"`
	Body string `json:"body" validate:"required,max=20"`
}

var testLocales = []domain.Locale{
	{Code: "en-us", IsDefault: true, IsSupported: true},
	{Code: "fr-fr", IsSupported: true},
	{Code: "vi-vn", IsSupported: true},
	{Code: "de-de"},
}

// stubHooks overrides only the hooks a test sets.
type stubHooks struct {
	viewmodel.NopHooks[note, *noteView]

	expand        func(context.Context, *noteView) error
	saveSub       func(context.Context, *note, *noteView) domain.Result[bool]
	removeRelated func(context.Context, *noteView) domain.Result[bool]
	cloneSub      func(context.Context, *note, *noteView, []domain.Locale) domain.Result[bool]
}

func (h *stubHooks) ExpandView(ctx context.Context, v *noteView) error {
	if h.expand == nil {
		return h.NopHooks.ExpandView(ctx, v)
	}
	return h.expand(ctx, v)
}

func (h *stubHooks) SaveSubModels(ctx context.Context, m *note, v *noteView) domain.Result[bool] {
	if h.saveSub == nil {
		return h.NopHooks.SaveSubModels(ctx, m, v)
	}
	return h.saveSub(ctx, m, v)
}

func (h *stubHooks) RemoveRelatedModels(ctx context.Context, v *noteView) domain.Result[bool] {
	if h.removeRelated == nil {
		return h.NopHooks.RemoveRelatedModels(ctx, v)
	}
	return h.removeRelated(ctx, v)
}

func (h *stubHooks) CloneSubModels(ctx context.Context, src *note, clone *noteView, locales []domain.Locale) domain.Result[bool] {
	if h.cloneSub == nil {
		return h.NopHooks.CloneSubModels(ctx, src, clone, locales)
	}
	return h.cloneSub(ctx, src, clone, locales)
}

type harness struct {
	repo    *viewmodel.Repository[note, *noteView]
	gateway *mocks.MockPersistenceGateway[note]
	scopes  *txscope.Manager
	db      sqlmock.Sqlmock
}

func testDatabaseConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		TxTimeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Minute,
			HalfOpenLimit: 1,
		},
	}
}

func newScopes(t *testing.T, opts ...txscope.Option) (*txscope.Manager, sqlmock.Sqlmock) {
	t.Helper()

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return txscope.NewManager(db, testDatabaseConfig(), slog.New(slog.DiscardHandler), opts...), dbMock
}

func newHarness(t *testing.T, hooks viewmodel.Hooks[note, *noteView], opts ...txscope.Option) *harness {
	t.Helper()

	scopes, dbMock := newScopes(t, opts...)
	gateway := mocks.NewMockPersistenceGateway[note](t)
	gateway.EXPECT().LogErrorMessage(mock.Anything, mock.Anything).Return().Maybe()

	validator, err := viewmodel.NewStructValidator(&noteView{}, viewmodel.Rule{
		Expr:    `Body != "forbidden"`,
		Message: "body: must not be forbidden",
	})
	require.NoError(t, err)

	repo, err := viewmodel.NewRepository[note, *noteView](viewmodel.Definition[note, *noteView]{
		Name:      "note",
		NewModel:  func() *note { return &note{} },
		NewView:   func() *noteView { return &noteView{} },
		Validator: validator,
		Hooks:     hooks,
	}, gateway, scopes, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := dbMock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet database expectations: %v", err)
		}
	})

	return &harness{repo: repo, gateway: gateway, scopes: scopes, db: dbMock}
}

func validView() *noteView {
	return &noteView{
		ViewMeta: domain.ViewMeta{Specificulture: "en-us"},
		ID:       "n-1",
		Body:     "hello",
	}
}

func inCulture(code string) interface{} {
	return mock.MatchedBy(func(n *note) bool { return n.Specificulture == code })
}

// echo stores a model unchanged.
func echo(_ context.Context, n *note) (*note, error) {
	saved := *n
	return &saved, nil
}

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for async result")
		var zero T
		return zero
	}
}
