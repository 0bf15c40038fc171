package executor

import (
	"context"
	"fmt"

	"gorm.io/datatypes"

	"github.com/feral-file/realty-crm/internal/api/shared/dto"
	apierrors "github.com/feral-file/realty-crm/internal/api/shared/errors"
	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/store"
	"github.com/feral-file/realty-crm/internal/store/schema"
)

const contactNotFound = "Contact not found"

func validateContactStatus(status string) error {
	if !domain.IsValidContactStatus(domain.ContactStatus(status)) {
		return apierrors.NewValidationError("status must be one of: lead, client, former_client")
	}
	return nil
}

func (e *executor) ListContacts(ctx context.Context, caller domain.Caller, query dto.ContactListQuery) (*dto.ListResponse[schema.Contact], error) {
	opts, err := e.listOptions(query.ListQuery, store.ContactSortFields)
	if err != nil {
		return nil, err
	}

	filter := store.ContactFilter{
		Status:        query.Status,
		PipelineStage: query.PipelineStage,
		Tag:           query.Tag,
		Search:        query.Search,
	}

	contacts, total, err := e.store.ListContacts(ctx, caller, filter, opts)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list contacts: %v", err))
	}

	resp := dto.NewList(contacts, total, opts.Page, opts.Limit)
	return &resp, nil
}

func (e *executor) GetContact(ctx context.Context, caller domain.Caller, id string) (*schema.Contact, error) {
	if !isValidID(id) {
		return nil, apierrors.NewNotFoundError(contactNotFound)
	}

	contact, err := e.store.GetContact(ctx, caller, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get contact: %v", err))
	}
	if contact == nil {
		return nil, apierrors.NewNotFoundError(contactNotFound)
	}
	return contact, nil
}

func (e *executor) CreateContact(ctx context.Context, caller domain.Caller, body []byte) (*schema.Contact, error) {
	payload, err := dto.ParsePayload(body)
	if err != nil {
		return nil, err
	}
	if err := payload.RequireFields(dto.ContactRequiredFields...); err != nil {
		return nil, err
	}

	var req dto.CreateContactRequest
	if err := payload.Decode(&req); err != nil {
		return nil, err
	}
	if req.Status != nil {
		if err := validateContactStatus(*req.Status); err != nil {
			return nil, err
		}
	}

	contact := req.ToSchema(caller.ID)
	if err := e.store.CreateContact(ctx, contact); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create contact: %v", err))
	}
	return contact, nil
}

func (e *executor) UpdateContact(ctx context.Context, caller domain.Caller, id string, body []byte) (*schema.Contact, error) {
	if !isValidID(id) {
		return nil, apierrors.NewNotFoundError(contactNotFound)
	}

	payload, err := dto.ParsePayload(body)
	if err != nil {
		return nil, err
	}
	updates, err := payload.Updates(dto.ContactUpdateFields)
	if err != nil {
		return nil, err
	}
	if status, ok := updates["status"].(string); ok {
		if err := validateContactStatus(status); err != nil {
			return nil, err
		}
	}
	if tags, ok := updates["tags"].(datatypes.JSONSlice[string]); ok {
		updates["tags"] = datatypes.JSONSlice[string](domain.MergeTags(nil, tags))
	}

	contact, err := e.store.UpdateContact(ctx, caller.ID, id, e.touch(updates))
	if err != nil {
		return nil, mutationError(err, "update contact", contactNotFound)
	}
	return contact, nil
}

func (e *executor) DeleteContact(ctx context.Context, caller domain.Caller, id string) error {
	if !isValidID(id) {
		return apierrors.NewNotFoundError(contactNotFound)
	}
	if err := e.store.DeleteContact(ctx, caller.ID, id); err != nil {
		return mutationError(err, "delete contact", contactNotFound)
	}
	return nil
}

func (e *executor) AddContactTags(ctx context.Context, caller domain.Caller, id string, body []byte) (*schema.Contact, error) {
	tags, err := parseTags(body)
	if err != nil {
		return nil, err
	}
	if !isValidID(id) {
		return nil, apierrors.NewNotFoundError(contactNotFound)
	}

	contact, err := e.store.AddContactTags(ctx, caller.ID, id, tags)
	if err != nil {
		return nil, mutationError(err, "add contact tags", contactNotFound)
	}
	return contact, nil
}

func (e *executor) RemoveContactTags(ctx context.Context, caller domain.Caller, id string, body []byte) (*schema.Contact, error) {
	tags, err := parseTags(body)
	if err != nil {
		return nil, err
	}
	if !isValidID(id) {
		return nil, apierrors.NewNotFoundError(contactNotFound)
	}

	contact, err := e.store.RemoveContactTags(ctx, caller.ID, id, tags)
	if err != nil {
		return nil, mutationError(err, "remove contact tags", contactNotFound)
	}
	return contact, nil
}

func parseTags(body []byte) ([]string, error) {
	payload, err := dto.ParsePayload(body)
	if err != nil {
		return nil, err
	}
	value, err := dto.StringSliceField("tags", payload.Raw("tags"))
	if err != nil {
		return nil, err
	}
	return []string(value.(datatypes.JSONSlice[string])), nil
}

func (e *executor) UpdatePipelineStage(ctx context.Context, caller domain.Caller, id string, body []byte) (*schema.Contact, error) {
	payload, err := dto.ParsePayload(body)
	if err != nil {
		return nil, err
	}
	if err := payload.RequireFields("pipelineStage"); err != nil {
		return nil, err
	}
	stage, err := dto.StringField("pipelineStage", payload.Raw("pipelineStage"))
	if err != nil {
		return nil, err
	}
	if !isValidID(id) {
		return nil, apierrors.NewNotFoundError(contactNotFound)
	}

	contact, err := e.store.UpdateContact(ctx, caller.ID, id, map[string]interface{}{"pipeline_stage": stage})
	if err != nil {
		return nil, mutationError(err, "update pipeline stage", contactNotFound)
	}
	return contact, nil
}

func (e *executor) LookupPin(ctx context.Context, caller domain.Caller, body []byte) (*dto.ContactPin, error) {
	payload, err := dto.ParsePayload(body)
	if err != nil {
		return nil, err
	}
	phoneNumber := payload.String("phoneNumber")
	if phoneNumber == "" {
		return nil, apierrors.NewValidationError("phoneNumber is required")
	}

	contact, err := e.store.FindContactWithPinByPhone(ctx, caller, phoneNumber)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to look up contact: %v", err))
	}
	if contact == nil {
		return nil, apierrors.NewNotFoundError("Contact not found or PIN not set")
	}

	return &dto.ContactPin{
		ID:          contact.ID,
		Name:        contact.Name,
		PhoneNumber: contact.PhoneNumber,
		Pin:         contact.Pin,
	}, nil
}

func (e *executor) ListContactCalculations(ctx context.Context, caller domain.Caller, contactID string) ([]schema.InvestmentCalculation, error) {
	if err := e.ensureVisibleContact(ctx, caller, contactID); err != nil {
		return nil, err
	}
	calculations, err := e.store.ListCalculationsByContact(ctx, caller, contactID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list investment calculations: %v", err))
	}
	return calculations, nil
}

func (e *executor) ListContactQuestionnaires(ctx context.Context, caller domain.Caller, contactID string) ([]schema.InvestorQuestionnaire, error) {
	if err := e.ensureVisibleContact(ctx, caller, contactID); err != nil {
		return nil, err
	}
	questionnaires, err := e.store.ListQuestionnairesByContact(ctx, caller, contactID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list investor questionnaires: %v", err))
	}
	return questionnaires, nil
}

func (e *executor) ListContactFeedbacks(ctx context.Context, caller domain.Caller, contactID string) ([]schema.VideoFeedback, error) {
	if err := e.ensureVisibleContact(ctx, caller, contactID); err != nil {
		return nil, err
	}
	feedbacks, err := e.store.ListFeedbacksByContact(ctx, contactID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list video feedback: %v", err))
	}
	return feedbacks, nil
}
