package executor_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/feral-file/realty-crm/internal/api/shared/errors"
	"github.com/feral-file/realty-crm/internal/api/shared/executor"
	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/store/schema"
)

func TestCreateVideo(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()

	t.Run("published by default", func(t *testing.T) {
		mocks.store.EXPECT().
			CreateVideo(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, video *schema.Video) error {
				assert.True(t, video.IsPublished)
				assert.Equal(t, aliceID, video.CreatedBy)
				return nil
			})

		_, err := mocks.executor.CreateVideo(ctx, alice, []byte(`{"title":"Tour","videoUrl":"https://cdn.example.com/tour.mp4"}`))
		require.NoError(t, err)
	})

	t.Run("explicitly unpublished", func(t *testing.T) {
		mocks.store.EXPECT().
			CreateVideo(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, video *schema.Video) error {
				assert.False(t, video.IsPublished)
				return nil
			})

		_, err := mocks.executor.CreateVideo(ctx, alice, []byte(`{"title":"Tour","videoUrl":"https://cdn.example.com/tour.mp4","isPublished":false}`))
		require.NoError(t, err)
	})

	t.Run("missing video url", func(t *testing.T) {
		_, err := mocks.executor.CreateVideo(ctx, alice, []byte(`{"title":"Tour"}`))
		requireAPIError(t, err, apierrors.ErrCodeValidationFailed, "title and videoUrl are required")
	})
}

func TestDeleteVideo(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()

	t.Run("has feedback", func(t *testing.T) {
		mocks.store.EXPECT().DeleteVideo(ctx, aliceID, videoID).Return(domain.ErrReferenced)

		err := mocks.executor.DeleteVideo(ctx, alice, videoID)
		requireAPIError(t, err, apierrors.ErrCodeBadRequest, "Cannot delete video with existing feedback")
	})

	t.Run("not owned", func(t *testing.T) {
		mocks.store.EXPECT().DeleteVideo(ctx, aliceID, videoID).Return(domain.ErrNotFound)

		err := mocks.executor.DeleteVideo(ctx, alice, videoID)
		requireAPIError(t, err, apierrors.ErrCodeNotFound, "Video not found or access denied")
	})

	t.Run("deleted", func(t *testing.T) {
		mocks.store.EXPECT().DeleteVideo(ctx, aliceID, videoID).Return(nil)

		require.NoError(t, mocks.executor.DeleteVideo(ctx, alice, videoID))
	})
}

func TestToggleVideoPublished(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	mocks.store.EXPECT().
		ToggleVideoPublished(ctx, aliceID, videoID).
		Return(&schema.Video{ID: videoID, IsPublished: false}, nil)

	video, err := mocks.executor.ToggleVideoPublished(ctx, alice, videoID)

	require.NoError(t, err)
	assert.False(t, video.IsPublished)
}

func TestUpdateVideo_InvalidBool(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	_, err := mocks.executor.UpdateVideo(context.Background(), alice, videoID, []byte(`{"isPublished":"yes"}`))

	requireAPIError(t, err, apierrors.ErrCodeValidationFailed, "isPublished must be a boolean")
}
