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

const calculationNotFound = "Investment calculation not found"

func (e *executor) ListCalculations(ctx context.Context, caller domain.Caller, query dto.CalculationListQuery) (*dto.ListResponse[schema.InvestmentCalculation], error) {
	opts, err := e.listOptions(query.ListQuery, store.CalculationSortFields)
	if err != nil {
		return nil, err
	}
	if !validIDFilter(query.ContactID) {
		resp := dto.NewList[schema.InvestmentCalculation](nil, 0, opts.Page, opts.Limit)
		return &resp, nil
	}

	filter := store.CalculationFilter{
		ContactID:    query.ContactID,
		PropertyType: query.PropertyType,
		MarketArea:   query.MarketArea,
	}

	calculations, total, err := e.store.ListCalculations(ctx, caller, filter, opts)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list investment calculations: %v", err))
	}

	resp := dto.NewList(calculations, total, opts.Page, opts.Limit)
	return &resp, nil
}

func (e *executor) GetCalculation(ctx context.Context, caller domain.Caller, id string) (*schema.InvestmentCalculation, error) {
	if !isValidID(id) {
		return nil, apierrors.NewNotFoundError(calculationNotFound)
	}

	calculation, err := e.store.GetCalculation(ctx, caller, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get investment calculation: %v", err))
	}
	if calculation == nil {
		return nil, apierrors.NewNotFoundError(calculationNotFound)
	}
	return calculation, nil
}

func (e *executor) CreateCalculation(ctx context.Context, caller domain.Caller, body []byte) (*schema.InvestmentCalculation, error) {
	payload, err := dto.ParsePayload(body)
	if err != nil {
		return nil, err
	}
	if err := payload.RequireFields(dto.CalculationRequiredFields...); err != nil {
		return nil, err
	}

	var req dto.CreateCalculationRequest
	if err := payload.Decode(&req); err != nil {
		return nil, err
	}
	if err := e.ensureOwnedContact(ctx, caller, req.ContactID); err != nil {
		return nil, err
	}

	calculation := req.ToSchema(caller.ID)
	if err := e.store.CreateCalculation(ctx, calculation); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create investment calculation: %v", err))
	}
	return calculation, nil
}

func (e *executor) UpdateCalculation(ctx context.Context, caller domain.Caller, id string, body []byte) (*schema.InvestmentCalculation, error) {
	if !isValidID(id) {
		return nil, apierrors.NewNotFoundError(calculationNotFound)
	}

	payload, err := dto.ParsePayload(body)
	if err != nil {
		return nil, err
	}
	updates, err := payload.Updates(dto.CalculationUpdateFields)
	if err != nil {
		return nil, err
	}
	if contactID, ok := updates["contact_id"].(string); ok {
		if err := e.ensureOwnedContact(ctx, caller, contactID); err != nil {
			return nil, err
		}
	}

	calculation, err := e.store.UpdateCalculation(ctx, caller.ID, id, e.touch(updates))
	if err != nil {
		return nil, mutationError(err, "update investment calculation", calculationNotFound)
	}
	return calculation, nil
}

func (e *executor) DeleteCalculation(ctx context.Context, caller domain.Caller, id string) error {
	if !isValidID(id) {
		return apierrors.NewNotFoundError(calculationNotFound)
	}
	if err := e.store.DeleteCalculation(ctx, caller.ID, id); err != nil {
		return mutationError(err, "delete investment calculation", calculationNotFound)
	}
	return nil
}
