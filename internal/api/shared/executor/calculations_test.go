package executor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/realty-crm/internal/api/shared/dto"
	apierrors "github.com/feral-file/realty-crm/internal/api/shared/errors"
	"github.com/feral-file/realty-crm/internal/api/shared/executor"
	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/store"
	"github.com/feral-file/realty-crm/internal/store/schema"
)

const calculationBody = `{
	"propertyType": "single_family",
	"marketArea": "Austin",
	"investmentAmount": 250000,
	"holdPeriod": 5,
	"annualReturnRate": 7.5,
	"propertyManagementFee": 8,
	"vacancyRate": 5,
	"monthlyCashFlow": 450.5,
	"annualCashFlow": 5406,
	"totalReturn": 95000,
	"roi": 38,
	"contactId": "44444444-4444-4444-4444-444444444444"
}`

func TestCreateCalculation_Success(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	mocks.store.EXPECT().GetContactOwnedBy(ctx, aliceID, contactID).Return(&schema.Contact{ID: contactID}, nil)
	mocks.store.EXPECT().
		CreateCalculation(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, calculation *schema.InvestmentCalculation) error {
			assert.Equal(t, "single_family", calculation.PropertyType)
			assert.Equal(t, 5, calculation.HoldPeriod)
			assert.Equal(t, 450.5, calculation.MonthlyCashFlow)
			assert.Equal(t, contactID, calculation.ContactID)
			assert.Equal(t, aliceID, calculation.CreatedBy)
			calculation.ID = recordID
			return nil
		})

	calculation, err := mocks.executor.CreateCalculation(ctx, alice, []byte(calculationBody))

	require.NoError(t, err)
	assert.Equal(t, recordID, calculation.ID)
}

func TestCreateCalculation_MissingField(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	_, err := mocks.executor.CreateCalculation(context.Background(), alice, []byte(`{"propertyType":"condo","marketArea":"Austin"}`))

	requireAPIError(t, err, apierrors.ErrCodeValidationFailed, "investmentAmount is required")
}

func TestCreateCalculation_ContactNotOwned(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	mocks.store.EXPECT().GetContactOwnedBy(ctx, aliceID, contactID).Return(nil, nil)

	_, err := mocks.executor.CreateCalculation(ctx, alice, []byte(calculationBody))

	requireAPIError(t, err, apierrors.ErrCodeNotFound, "Contact not found or access denied")
}

func TestListCalculations_InvalidContactFilter(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	resp, err := mocks.executor.ListCalculations(context.Background(), alice, dto.CalculationListQuery{
		ContactID: stringPtr("not-a-uuid"),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Data)
	assert.Equal(t, int64(0), resp.Pagination.Total)
}

func TestListCalculations_Filters(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	query := dto.CalculationListQuery{
		ListQuery:    dto.ListQuery{SortBy: "roi", Order: "asc"},
		ContactID:    stringPtr(contactID),
		PropertyType: stringPtr("condo"),
	}

	mocks.store.EXPECT().
		ListCalculations(ctx, admin, store.CalculationFilter{
			ContactID:    query.ContactID,
			PropertyType: query.PropertyType,
		}, store.ListOptions{Page: 1, Limit: 10, SortColumn: "roi", Order: store.OrderAsc}).
		Return([]schema.InvestmentCalculation{{ID: recordID}}, int64(1), nil)

	resp, err := mocks.executor.ListCalculations(ctx, admin, query)

	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
}

func TestUpdateCalculation(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()

	t.Run("wrong type", func(t *testing.T) {
		_, err := mocks.executor.UpdateCalculation(ctx, alice, recordID, []byte(`{"holdPeriod":"five"}`))
		requireAPIError(t, err, apierrors.ErrCodeValidationFailed, "holdPeriod must be an integer")
	})

	t.Run("reassign to a contact owned by someone else", func(t *testing.T) {
		mocks.store.EXPECT().GetContactOwnedBy(ctx, aliceID, contactID).Return(nil, nil)

		_, err := mocks.executor.UpdateCalculation(ctx, alice, recordID, []byte(`{"contactId":"`+contactID+`"}`))
		requireAPIError(t, err, apierrors.ErrCodeNotFound, "Contact not found or access denied")
	})

	t.Run("not owned", func(t *testing.T) {
		mocks.store.EXPECT().
			UpdateCalculation(ctx, aliceID, recordID, map[string]interface{}{"roi": float64(40)}).
			Return(nil, domain.ErrNotFound)

		_, err := mocks.executor.UpdateCalculation(ctx, alice, recordID, []byte(`{"roi":40}`))
		requireAPIError(t, err, apierrors.ErrCodeNotFound, "Investment calculation not found")
	})

	t.Run("database error", func(t *testing.T) {
		mocks.store.EXPECT().
			UpdateCalculation(ctx, aliceID, recordID, gomock.Any()).
			Return(nil, errors.New("deadlock detected"))

		_, err := mocks.executor.UpdateCalculation(ctx, alice, recordID, []byte(`{"roi":40}`))
		requireAPIError(t, err, apierrors.ErrCodeDatabaseError, "Failed to update investment calculation: deadlock detected")
	})
}

func TestGetCalculation_MalformedID(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	_, err := mocks.executor.GetCalculation(context.Background(), alice, "123")

	requireAPIError(t, err, apierrors.ErrCodeNotFound, "Investment calculation not found")
}

func TestDeleteCalculation_NotOwned(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	mocks.store.EXPECT().DeleteCalculation(ctx, aliceID, recordID).Return(domain.ErrNotFound)

	err := mocks.executor.DeleteCalculation(ctx, alice, recordID)

	requireAPIError(t, err, apierrors.ErrCodeNotFound, "Investment calculation not found")
}
