package viewmodel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/txscope"
)

var cloneTargets = []domain.Locale{
	{Code: "fr-fr", IsSupported: true},
	{Code: "vi-vn", IsSupported: true},
	{Code: "ja-jp", IsSupported: true},
}

func cultures(views []*noteView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Specificulture)
	}
	return out
}

func TestClone_AllLocalesSucceed(t *testing.T) {
	t.Parallel()

	var hookCalls int
	h := newHarness(t, &stubHooks{
		cloneSub: func(_ context.Context, _ *note, _ *noteView, locales []domain.Locale) domain.Result[bool] {
			hookCalls++
			assert.Equal(t, cloneTargets, locales)
			return domain.OK(true)
		},
	})
	h.db.ExpectBegin()
	h.db.ExpectCommit()
	h.gateway.EXPECT().CheckExists(mock.Anything, mock.Anything).Return(false, nil).Times(3)
	h.gateway.EXPECT().SaveModel(mock.Anything, mock.Anything).RunAndReturn(echo).Times(3)

	source := &note{ID: "n-1", Specificulture: "en-us", Body: "hello"}
	result := h.repo.New().Clone(context.Background(), source, cloneTargets)

	require.True(t, result.Success, result.Summary())
	assert.Equal(t, []string{"fr-fr", "vi-vn", "ja-jp"}, cultures(result.Payload))
	for _, v := range result.Payload {
		assert.Equal(t, "n-1", v.ID, "clones keep the source key")
		assert.Equal(t, "hello", v.Body)
		assert.False(t, v.IsClone)
	}
	assert.Equal(t, 3, hookCalls)
	assert.Equal(t, "en-us", source.Specificulture, "source model is never mutated")
}

func TestClone_SkipsLocalesThatExist(t *testing.T) {
	t.Parallel()

	hookCalls := 0
	h := newHarness(t, &stubHooks{
		cloneSub: func(context.Context, *note, *noteView, []domain.Locale) domain.Result[bool] {
			hookCalls++
			return domain.OK(true)
		},
	})
	h.db.ExpectBegin()
	h.db.ExpectCommit()
	h.gateway.EXPECT().CheckExists(mock.Anything, inCulture("fr-fr")).Return(true, nil)
	h.gateway.EXPECT().CheckExists(mock.Anything, inCulture("vi-vn")).Return(false, nil)
	h.gateway.EXPECT().SaveModel(mock.Anything, inCulture("vi-vn")).RunAndReturn(echo).Once()

	source := &note{ID: "n-1", Specificulture: "en-us", Body: "hello"}
	result := h.repo.New().Clone(context.Background(), source, cloneTargets[:2])

	require.True(t, result.Success, result.Summary())
	assert.Equal(t, []string{"fr-fr", "vi-vn"}, cultures(result.Payload))
	assert.Equal(t, 1, hookCalls, "existing locales get no sub-model clone")
	h.gateway.AssertNotCalled(t, "SaveModel", mock.Anything, inCulture("fr-fr"))
}

func TestClone_FailedLocaleDoesNotStopLoop(t *testing.T) {
	t.Parallel()

	h := newHarness(t, &stubHooks{})
	h.db.ExpectBegin()
	h.db.ExpectRollback()
	h.gateway.EXPECT().CheckExists(mock.Anything, mock.Anything).Return(false, nil).Times(3)
	h.gateway.EXPECT().SaveModel(mock.Anything, inCulture("fr-fr")).RunAndReturn(echo).Once()
	h.gateway.EXPECT().SaveModel(mock.Anything, inCulture("vi-vn")).Return(nil, errors.New("vi-vn rejected")).Once()
	h.gateway.EXPECT().SaveModel(mock.Anything, inCulture("ja-jp")).RunAndReturn(echo).Once()

	source := &note{ID: "n-1", Specificulture: "en-us", Body: "hello"}
	result := h.repo.New().Clone(context.Background(), source, cloneTargets)

	assert.False(t, result.Success)
	assert.Equal(t, []string{"saving note: vi-vn rejected"}, result.Errors)
	require.Error(t, result.Fault)
	assert.Equal(t, []string{"fr-fr", "ja-jp"}, cultures(result.Payload), "only successful locales are reported")
}

func TestClone_InvalidCloneFails(t *testing.T) {
	t.Parallel()

	h := newHarness(t, &stubHooks{})
	h.db.ExpectBegin()
	h.db.ExpectRollback()
	h.gateway.EXPECT().CheckExists(mock.Anything, mock.Anything).Return(false, nil)

	source := &note{ID: "n-1", Specificulture: "en-us"}
	result := h.repo.New().Clone(context.Background(), source, cloneTargets[:1])

	assert.False(t, result.Success)
	assert.Equal(t, []string{"body: is required"}, result.Errors)
	assert.Empty(t, result.Payload)
	h.gateway.AssertNotCalled(t, "SaveModel", mock.Anything, mock.Anything)
}

func TestClone_SubModelFailureMarksLocaleFailed(t *testing.T) {
	t.Parallel()

	h := newHarness(t, &stubHooks{
		cloneSub: func(_ context.Context, _ *note, clone *noteView, _ []domain.Locale) domain.Result[bool] {
			if clone.Specificulture == "fr-fr" {
				return domain.Fail[bool]("tag t-1: clone failed")
			}
			return domain.OK(true)
		},
	})
	h.db.ExpectBegin()
	h.db.ExpectRollback()
	h.gateway.EXPECT().CheckExists(mock.Anything, mock.Anything).Return(false, nil).Times(2)
	h.gateway.EXPECT().SaveModel(mock.Anything, mock.Anything).RunAndReturn(echo).Times(2)

	source := &note{ID: "n-1", Specificulture: "en-us", Body: "hello"}
	result := h.repo.New().Clone(context.Background(), source, cloneTargets[:2])

	assert.False(t, result.Success)
	assert.Equal(t, []string{"tag t-1: clone failed"}, result.Errors)
	assert.Equal(t, []string{"vi-vn"}, cultures(result.Payload))
}

func TestClone_CheckExistsFaultCountsAsFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t, &stubHooks{})
	h.db.ExpectBegin()
	h.db.ExpectRollback()
	h.gateway.EXPECT().CheckExists(mock.Anything, mock.Anything).Return(false, errors.New("timeout"))

	result := h.repo.New().Clone(context.Background(), &note{ID: "n-1", Body: "x"}, cloneTargets[:1])

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "checking note in fr-fr")
}

func TestClone_NoLocalesCommitsEmptyPayload(t *testing.T) {
	t.Parallel()

	h := newHarness(t, &stubHooks{})
	h.db.ExpectBegin()
	h.db.ExpectCommit()

	result := h.repo.New().Clone(context.Background(), &note{ID: "n-1"}, nil)

	assert.True(t, result.Success)
	assert.Empty(t, result.Payload)
}

func TestClone_RewindsFailedLocaleToSavepoint(t *testing.T) {
	t.Parallel()

	h := newHarness(t, &stubHooks{}, txscope.WithSavepoints())
	ok := sqlmock.NewResult(0, 0)
	h.db.ExpectBegin()
	h.db.ExpectExec("^SAVEPOINT vm_sp_1$").WillReturnResult(ok)
	h.db.ExpectExec("^RELEASE SAVEPOINT vm_sp_1$").WillReturnResult(ok)
	h.db.ExpectExec("^SAVEPOINT vm_sp_2$").WillReturnResult(ok)
	h.db.ExpectExec("^ROLLBACK TO SAVEPOINT vm_sp_2$").WillReturnResult(ok)
	h.db.ExpectExec("^SAVEPOINT vm_sp_3$").WillReturnResult(ok)
	h.db.ExpectExec("^RELEASE SAVEPOINT vm_sp_3$").WillReturnResult(ok)
	h.db.ExpectRollback()
	h.gateway.EXPECT().CheckExists(mock.Anything, mock.Anything).Return(false, nil).Times(3)
	h.gateway.EXPECT().SaveModel(mock.Anything, inCulture("fr-fr")).RunAndReturn(echo).Once()
	h.gateway.EXPECT().SaveModel(mock.Anything, inCulture("vi-vn")).Return(nil, errors.New("vi-vn rejected")).Once()
	h.gateway.EXPECT().SaveModel(mock.Anything, inCulture("ja-jp")).RunAndReturn(echo).Once()

	source := &note{ID: "n-1", Specificulture: "en-us", Body: "hello"}
	result := h.repo.New().Clone(context.Background(), source, cloneTargets)

	assert.False(t, result.Success)
	assert.Equal(t, []string{"saving note: vi-vn rejected"}, result.Errors, "later locales fail only on their own merits")
	assert.Equal(t, []string{"fr-fr", "ja-jp"}, cultures(result.Payload))
}

func TestClone_SavepointFailureFailsLocale(t *testing.T) {
	t.Parallel()

	h := newHarness(t, &stubHooks{}, txscope.WithSavepoints())
	h.db.ExpectBegin()
	h.db.ExpectExec("^SAVEPOINT vm_sp_1$").WillReturnError(errors.New("connection reset"))
	h.db.ExpectRollback()

	source := &note{ID: "n-1", Specificulture: "en-us", Body: "hello"}
	result := h.repo.New().Clone(context.Background(), source, cloneTargets[:1])

	assert.False(t, result.Success)
	require.Error(t, result.Fault)
	assert.ErrorContains(t, result.Fault, "creating savepoint vm_sp_1")
	assert.Empty(t, result.Payload)
	h.gateway.AssertNotCalled(t, "SaveModel", mock.Anything, mock.Anything)
}
