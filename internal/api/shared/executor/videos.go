package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/feral-file/realty-crm/internal/api/shared/dto"
	apierrors "github.com/feral-file/realty-crm/internal/api/shared/errors"
	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/store"
	"github.com/feral-file/realty-crm/internal/store/schema"
)

const videoNotFound = "Video not found or access denied"

func (e *executor) ListVideos(ctx context.Context, caller domain.Caller, query dto.VideoListQuery) (*dto.ListResponse[schema.Video], error) {
	opts, err := e.listOptions(query.ListQuery, store.VideoSortFields)
	if err != nil {
		return nil, err
	}

	filter := store.VideoFilter{
		IsPublished: boolFilter(query.IsPublished),
	}

	videos, total, err := e.store.ListVideos(ctx, caller, filter, opts)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list videos: %v", err))
	}

	resp := dto.NewList(videos, total, opts.Page, opts.Limit)
	return &resp, nil
}

func (e *executor) GetVideo(ctx context.Context, caller domain.Caller, id string) (*schema.Video, error) {
	if !isValidID(id) {
		return nil, apierrors.NewNotFoundError(videoNotFound)
	}

	video, err := e.store.GetVideo(ctx, caller, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get video: %v", err))
	}
	if video == nil {
		return nil, apierrors.NewNotFoundError(videoNotFound)
	}
	return video, nil
}

func (e *executor) CreateVideo(ctx context.Context, caller domain.Caller, body []byte) (*schema.Video, error) {
	payload, err := dto.ParsePayload(body)
	if err != nil {
		return nil, err
	}
	if payload.String("title") == "" || payload.String("videoUrl") == "" {
		return nil, apierrors.NewValidationError("title and videoUrl are required")
	}

	var req dto.CreateVideoRequest
	if err := payload.Decode(&req); err != nil {
		return nil, err
	}

	video := req.ToSchema(caller.ID)
	if err := e.store.CreateVideo(ctx, video); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create video: %v", err))
	}
	return video, nil
}

func (e *executor) UpdateVideo(ctx context.Context, caller domain.Caller, id string, body []byte) (*schema.Video, error) {
	if !isValidID(id) {
		return nil, apierrors.NewNotFoundError(videoNotFound)
	}

	payload, err := dto.ParsePayload(body)
	if err != nil {
		return nil, err
	}
	updates, err := payload.Updates(dto.VideoUpdateFields)
	if err != nil {
		return nil, err
	}

	video, err := e.store.UpdateVideo(ctx, caller.ID, id, e.touch(updates))
	if err != nil {
		return nil, mutationError(err, "update video", videoNotFound)
	}
	return video, nil
}

func (e *executor) DeleteVideo(ctx context.Context, caller domain.Caller, id string) error {
	if !isValidID(id) {
		return apierrors.NewNotFoundError(videoNotFound)
	}

	err := e.store.DeleteVideo(ctx, caller.ID, id)
	if errors.Is(err, domain.ErrReferenced) {
		return apierrors.NewBadRequestError("Cannot delete video with existing feedback")
	}
	if err != nil {
		return mutationError(err, "delete video", videoNotFound)
	}
	return nil
}

func (e *executor) ToggleVideoPublished(ctx context.Context, caller domain.Caller, id string) (*schema.Video, error) {
	if !isValidID(id) {
		return nil, apierrors.NewNotFoundError(videoNotFound)
	}

	video, err := e.store.ToggleVideoPublished(ctx, caller.ID, id)
	if err != nil {
		return nil, mutationError(err, "toggle video", videoNotFound)
	}
	return video, nil
}
