package app

import (
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain/article"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/config"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/txscope"
	"github.com/jsamuelsen11/go-viewmodel-service/mocks"
)

var testLocales = []domain.Locale{
	{Code: "en-us", IsDefault: true, IsSupported: true},
	{Code: "fr-fr", IsSupported: true},
	{Code: "vi-vn", IsSupported: true},
	{Code: "de-de"},
}

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type fixture struct {
	svc      *ArticleService
	hooks    *ArticleHooks
	scopes   *txscope.Manager
	store    *mocks.MockArticleStore
	tagStore *mocks.MockTagStore
	db       sqlmock.Sqlmock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, dbMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	scopes := txscope.NewManager(db, &config.DatabaseConfig{
		TxTimeout: 5 * time.Second,
		Retry:     config.RetryConfig{MaxAttempts: 1, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, Multiplier: 2},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures: 5, Timeout: time.Minute, HalfOpenLimit: 1,
		},
	}, discardLogger())

	store := mocks.NewMockArticleStore(t)
	store.EXPECT().LogErrorMessage(mock.Anything, mock.Anything).Return().Maybe()
	tagStore := mocks.NewMockTagStore(t)
	tagStore.EXPECT().LogErrorMessage(mock.Anything, mock.Anything).Return().Maybe()

	tags, err := NewTagRepository(tagStore, scopes, nil)
	if err != nil {
		t.Fatalf("NewTagRepository() error = %v", err)
	}
	articles, err := NewArticleRepository(store, tags, tagStore, scopes, nil)
	if err != nil {
		t.Fatalf("NewArticleRepository() error = %v", err)
	}

	t.Cleanup(func() {
		if err := dbMock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet database expectations: %v", err)
		}
	})

	return &fixture{
		svc:      NewArticleService(articles, store, testLocales, discardLogger()),
		hooks:    NewArticleHooks(tags, tagStore),
		scopes:   scopes,
		store:    store,
		tagStore: tagStore,
		db:       dbMock,
	}
}

func validArticle() *article.Article {
	return &article.Article{
		ID:             "a-1",
		Specificulture: "en-us",
		Title:          "Hello",
		Slug:           "hello",
		Content:        "body",
		Status:         article.StatusDraft,
		CreatedAt:      testTime,
		UpdatedAt:      testTime,
	}
}

func validView() *article.View {
	return &article.View{
		ViewMeta: domain.ViewMeta{Specificulture: "en-us"},
		ID:       "a-1",
		Title:    "Hello",
		Slug:     "hello",
		Content:  "body",
		Status:   article.StatusDraft,
	}
}

func articleIn(code string) interface{} {
	return mock.MatchedBy(func(a *article.Article) bool { return a.Specificulture == code })
}

func tagIn(code string) interface{} {
	return mock.MatchedBy(func(tg *article.Tag) bool { return tg.Specificulture == code })
}
