package executor

import (
	"context"
	"fmt"

	"github.com/feral-file/realty-crm/internal/api/shared/dto"
	apierrors "github.com/feral-file/realty-crm/internal/api/shared/errors"
	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/store"
	"github.com/feral-file/realty-crm/internal/store/schema"
)

const questionnaireNotFound = "Investor questionnaire not found"

func (e *executor) ListQuestionnaires(ctx context.Context, caller domain.Caller, query dto.QuestionnaireListQuery) (*dto.ListResponse[schema.InvestorQuestionnaire], error) {
	opts, err := e.listOptions(query.ListQuery, store.QuestionnaireSortFields)
	if err != nil {
		return nil, err
	}
	if !validIDFilter(query.ContactID) {
		resp := dto.NewList[schema.InvestorQuestionnaire](nil, 0, opts.Page, opts.Limit)
		return &resp, nil
	}

	filter := store.QuestionnaireFilter{
		ContactID:            query.ContactID,
		IsAccreditedInvestor: boolFilter(query.IsAccreditedInvestor),
	}

	questionnaires, total, err := e.store.ListQuestionnaires(ctx, caller, filter, opts)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list investor questionnaires: %v", err))
	}

	resp := dto.NewList(questionnaires, total, opts.Page, opts.Limit)
	return &resp, nil
}

func (e *executor) GetQuestionnaire(ctx context.Context, caller domain.Caller, id string) (*schema.InvestorQuestionnaire, error) {
	if !isValidID(id) {
		return nil, apierrors.NewNotFoundError(questionnaireNotFound)
	}

	questionnaire, err := e.store.GetQuestionnaire(ctx, caller, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get investor questionnaire: %v", err))
	}
	if questionnaire == nil {
		return nil, apierrors.NewNotFoundError(questionnaireNotFound)
	}
	return questionnaire, nil
}

func (e *executor) CreateQuestionnaire(ctx context.Context, caller domain.Caller, body []byte) (*schema.InvestorQuestionnaire, error) {
	payload, err := dto.ParsePayload(body)
	if err != nil {
		return nil, err
	}
	if err := payload.RequireFields(dto.QuestionnaireRequiredFields...); err != nil {
		return nil, err
	}

	var req dto.CreateQuestionnaireRequest
	if err := payload.Decode(&req); err != nil {
		return nil, err
	}
	if err := e.ensureOwnedContact(ctx, caller, req.ContactID); err != nil {
		return nil, err
	}

	questionnaire := req.ToSchema(caller.ID)
	if err := e.store.CreateQuestionnaire(ctx, questionnaire); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create investor questionnaire: %v", err))
	}
	return questionnaire, nil
}

func (e *executor) UpdateQuestionnaire(ctx context.Context, caller domain.Caller, id string, body []byte) (*schema.InvestorQuestionnaire, error) {
	if !isValidID(id) {
		return nil, apierrors.NewNotFoundError(questionnaireNotFound)
	}

	payload, err := dto.ParsePayload(body)
	if err != nil {
		return nil, err
	}
	updates, err := payload.Updates(dto.QuestionnaireUpdateFields)
	if err != nil {
		return nil, err
	}
	if contactID, ok := updates["contact_id"].(string); ok {
		if err := e.ensureOwnedContact(ctx, caller, contactID); err != nil {
			return nil, err
		}
	}

	questionnaire, err := e.store.UpdateQuestionnaire(ctx, caller.ID, id, e.touch(updates))
	if err != nil {
		return nil, mutationError(err, "update investor questionnaire", questionnaireNotFound)
	}
	return questionnaire, nil
}

func (e *executor) DeleteQuestionnaire(ctx context.Context, caller domain.Caller, id string) error {
	if !isValidID(id) {
		return apierrors.NewNotFoundError(questionnaireNotFound)
	}
	if err := e.store.DeleteQuestionnaire(ctx, caller.ID, id); err != nil {
		return mutationError(err, "delete investor questionnaire", questionnaireNotFound)
	}
	return nil
}
