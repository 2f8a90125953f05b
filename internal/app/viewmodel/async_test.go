package viewmodel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
)

func TestSaveModelAsync_MatchesBlockingResult(t *testing.T) {
	t.Parallel()

	h := newHarness(t, &stubHooks{})
	h.db.ExpectBegin()
	h.db.ExpectCommit()
	h.gateway.EXPECT().SaveModel(mock.Anything, mock.Anything).RunAndReturn(echo)

	view := validView()
	result := receive(t, h.repo.FromView(view).SaveModelAsync(context.Background(), false))

	require.True(t, result.Success, result.Summary())
	assert.Same(t, view, result.Payload)
}

func TestRemoveModelAsync_ReportsFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t, &stubHooks{})
	h.db.ExpectBegin()
	h.db.ExpectRollback()
	h.gateway.EXPECT().RemoveModel(mock.Anything, mock.Anything).Return(errors.New("gone"))

	result := receive(t, h.repo.FromView(validView()).RemoveModelAsync(context.Background(), false))

	assert.False(t, result.Success)
	assert.Equal(t, []string{"removing note: gone"}, result.Errors)
}

func TestCloneAsync(t *testing.T) {
	t.Parallel()

	h := newHarness(t, &stubHooks{})
	h.db.ExpectBegin()
	h.db.ExpectCommit()
	h.gateway.EXPECT().CheckExists(mock.Anything, mock.Anything).Return(true, nil)

	locales := []domain.Locale{{Code: "fr-fr", IsSupported: true}}
	result := receive(t, h.repo.New().CloneAsync(context.Background(), &note{ID: "n-1", Body: "x"}, locales))

	require.True(t, result.Success, result.Summary())
	require.Len(t, result.Payload, 1)
	assert.Equal(t, "fr-fr", result.Payload[0].Specificulture)
}

func TestParseAsync(t *testing.T) {
	t.Parallel()

	h := newHarness(t, &stubHooks{
		expand: func(context.Context, *noteView) error { return errors.New("no tags") },
	})
	h.db.ExpectBegin()
	h.db.ExpectRollback()

	vm := h.repo.FromView(validView())

	model := receive(t, vm.ParseModelAsync())
	require.True(t, model.Success)
	assert.Equal(t, "hello", model.Payload.Body)

	assert.True(t, receive(t, vm.ValidateAsync(context.Background())))

	view := receive(t, vm.ParseViewAsync(context.Background(), true))
	assert.False(t, view.Success)
	assert.ErrorContains(t, view.Fault, "expanding note view: no tags")
}
