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

const feedbackNotFound = "Video feedback not found"

func (e *executor) ListFeedbacks(ctx context.Context, query dto.FeedbackListQuery) (*dto.ListResponse[schema.VideoFeedback], error) {
	opts, err := e.listOptions(query.ListQuery, store.FeedbackSortFields)
	if err != nil {
		return nil, err
	}
	if !validIDFilter(query.VideoID) || !validIDFilter(query.ContactID) {
		resp := dto.NewList[schema.VideoFeedback](nil, 0, opts.Page, opts.Limit)
		return &resp, nil
	}

	filter := store.FeedbackFilter{
		VideoID:   query.VideoID,
		ContactID: query.ContactID,
	}

	feedbacks, total, err := e.store.ListFeedbacks(ctx, filter, opts)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list video feedback: %v", err))
	}

	resp := dto.NewList(feedbacks, total, opts.Page, opts.Limit)
	return &resp, nil
}

func (e *executor) GetFeedback(ctx context.Context, id string) (*schema.VideoFeedback, error) {
	if !isValidID(id) {
		return nil, apierrors.NewNotFoundError(feedbackNotFound)
	}

	feedback, err := e.store.GetFeedback(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get video feedback: %v", err))
	}
	if feedback == nil {
		return nil, apierrors.NewNotFoundError(feedbackNotFound)
	}
	return feedback, nil
}

// ensureVideoExists checks the referenced video regardless of its owner
func (e *executor) ensureVideoExists(ctx context.Context, videoID string) error {
	if !isValidID(videoID) {
		return apierrors.NewNotFoundError("Video not found")
	}
	exists, err := e.store.VideoExists(ctx, videoID)
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to get video: %v", err))
	}
	if !exists {
		return apierrors.NewNotFoundError("Video not found")
	}
	return nil
}

// ensureContactExists checks the referenced contact regardless of its owner
func (e *executor) ensureContactExists(ctx context.Context, contactID string) error {
	if !isValidID(contactID) {
		return apierrors.NewNotFoundError(contactNotFound)
	}
	exists, err := e.store.ContactExists(ctx, contactID)
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to get contact: %v", err))
	}
	if !exists {
		return apierrors.NewNotFoundError(contactNotFound)
	}
	return nil
}

func (e *executor) CreateFeedback(ctx context.Context, body []byte) (*schema.VideoFeedback, error) {
	payload, err := dto.ParsePayload(body)
	if err != nil {
		return nil, err
	}
	if !payload.Has("videoId") || !payload.Has("responses") {
		return nil, apierrors.NewValidationError("videoId and responses are required")
	}
	if !dto.IsJSONObject(payload.Raw("responses")) {
		return nil, apierrors.NewValidationError("responses must be a valid JSON object")
	}

	var req dto.CreateFeedbackRequest
	if err := payload.Decode(&req); err != nil {
		return nil, err
	}
	if err := e.ensureVideoExists(ctx, req.VideoID); err != nil {
		return nil, err
	}
	if req.ContactID != nil {
		if err := e.ensureContactExists(ctx, *req.ContactID); err != nil {
			return nil, err
		}
	}

	feedback := req.ToSchema()
	if err := e.store.CreateFeedback(ctx, feedback); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apierrors.NewNotFoundError("Video not found")
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create video feedback: %v", err))
	}
	return feedback, nil
}

func (e *executor) UpdateFeedback(ctx context.Context, id string, body []byte) (*schema.VideoFeedback, error) {
	if !isValidID(id) {
		return nil, apierrors.NewNotFoundError(feedbackNotFound)
	}

	payload, err := dto.ParsePayload(body)
	if err != nil {
		return nil, err
	}
	updates, err := payload.Updates(dto.FeedbackUpdateFields)
	if err != nil {
		return nil, err
	}
	if videoID, ok := updates["video_id"].(string); ok {
		if err := e.ensureVideoExists(ctx, videoID); err != nil {
			return nil, err
		}
	}
	if contactID, ok := updates["contact_id"].(string); ok {
		if err := e.ensureContactExists(ctx, contactID); err != nil {
			return nil, err
		}
	}

	feedback, err := e.store.UpdateFeedback(ctx, id, e.touch(updates))
	if err != nil {
		return nil, mutationError(err, "update video feedback", feedbackNotFound)
	}
	return feedback, nil
}

func (e *executor) DeleteFeedback(ctx context.Context, id string) error {
	if !isValidID(id) {
		return apierrors.NewNotFoundError(feedbackNotFound)
	}
	if err := e.store.DeleteFeedback(ctx, id); err != nil {
		return mutationError(err, "delete video feedback", feedbackNotFound)
	}
	return nil
}

func (e *executor) ListVideoFeedbacks(ctx context.Context, videoID string) ([]schema.VideoFeedback, error) {
	if err := e.ensureVideoExists(ctx, videoID); err != nil {
		return nil, err
	}
	feedbacks, err := e.store.ListFeedbacksByVideo(ctx, videoID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list video feedback: %v", err))
	}
	return feedbacks, nil
}

func (e *executor) ListFeedbacksForContact(ctx context.Context, contactID string) ([]schema.VideoFeedback, error) {
	if err := e.ensureContactExists(ctx, contactID); err != nil {
		return nil, err
	}
	feedbacks, err := e.store.ListFeedbacksByContact(ctx, contactID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list video feedback: %v", err))
	}
	return feedbacks, nil
}
