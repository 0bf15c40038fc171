package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/realty-crm/internal/api/shared/dto"
	apierrors "github.com/feral-file/realty-crm/internal/api/shared/errors"
)

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "object", body: `{"name":"Jane"}`},
		{name: "empty object", body: `{}`},
		{name: "empty body", body: `  `, wantErr: "Request body is required"},
		{name: "array", body: `[1,2]`, wantErr: "Request body must be a JSON object"},
		{name: "null", body: `null`, wantErr: "Request body must be a JSON object"},
		{name: "malformed", body: `{"name":`, wantErr: "Request body must be a JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := dto.ParsePayload([]byte(tt.body))
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.NotNil(t, p)
				return
			}
			require.Error(t, err)
			apiErr, ok := err.(*apierrors.APIError)
			require.True(t, ok)
			assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
			assert.Equal(t, tt.wantErr, apiErr.Message)
		})
	}
}

func TestPayload_RequireFields(t *testing.T) {
	p, err := dto.ParsePayload([]byte(`{"propertyType":"condo","marketArea":"","investmentAmount":0,"holdPeriod":null}`))
	require.NoError(t, err)

	// falsy values count as provided
	assert.NoError(t, p.RequireFields("propertyType", "marketArea", "investmentAmount", "holdPeriod"))

	err = p.RequireFields(dto.CalculationRequiredFields...)
	require.Error(t, err)
	apiErr := err.(*apierrors.APIError)
	assert.Equal(t, "annualReturnRate is required", apiErr.Message)
	assert.Equal(t, 400, apiErr.StatusCode())
}

func TestPayload_String(t *testing.T) {
	p, err := dto.ParsePayload([]byte(`{"message":"hi","contactId":42}`))
	require.NoError(t, err)

	assert.Equal(t, "hi", p.String("message"))
	assert.Equal(t, "", p.String("contactId"))
	assert.Equal(t, "", p.String("userId"))
}

func TestPayload_Updates(t *testing.T) {
	p, err := dto.ParsePayload([]byte(`{
		"name": "Jane Buyer",
		"email": null,
		"tags": ["vip", "investor"],
		"id": "ignored",
		"createdBy": "ignored"
	}`))
	require.NoError(t, err)

	updates, err := p.Updates(dto.ContactUpdateFields)
	require.NoError(t, err)

	assert.Len(t, updates, 3)
	assert.Equal(t, "Jane Buyer", updates["name"])
	assert.Nil(t, updates["email"])
	assert.Contains(t, updates, "email")
	assert.Equal(t, datatypes.JSONSlice[string]{"vip", "investor"}, updates["tags"])
	assert.NotContains(t, updates, "id")
	assert.NotContains(t, updates, "created_by")
}

func TestPayload_UpdatesRejectsWrongTypes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		fields  map[string]dto.UpdateField
		wantMsg string
	}{
		{
			name:    "string expected",
			body:    `{"name":5}`,
			fields:  dto.ContactUpdateFields,
			wantMsg: "name must be a string",
		},
		{
			name:    "number expected",
			body:    `{"roi":"high"}`,
			fields:  dto.CalculationUpdateFields,
			wantMsg: "roi must be a number",
		},
		{
			name:    "boolean expected",
			body:    `{"isPublished":"yes"}`,
			fields:  dto.VideoUpdateFields,
			wantMsg: "isPublished must be a boolean",
		},
		{
			name:    "object expected",
			body:    `{"responses":[1,2]}`,
			fields:  dto.FeedbackUpdateFields,
			wantMsg: "responses must be a valid JSON object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := dto.ParsePayload([]byte(tt.body))
			require.NoError(t, err)

			_, err = p.Updates(tt.fields)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.(*apierrors.APIError).Message)
		})
	}
}

func TestCoerceStringSlice(t *testing.T) {
	assert.Equal(t, datatypes.JSONSlice[string]{"Austin"}, dto.CoerceStringSlice([]byte(`["Austin"]`)))
	assert.Equal(t, datatypes.JSONSlice[string]{}, dto.CoerceStringSlice([]byte(`"Austin"`)))
	assert.Equal(t, datatypes.JSONSlice[string]{}, dto.CoerceStringSlice([]byte(`null`)))
	assert.Equal(t, datatypes.JSONSlice[string]{}, dto.CoerceStringSlice(nil))
}

func TestCreateQuestionnaireRequest_ToSchema(t *testing.T) {
	p, err := dto.ParsePayload([]byte(`{
		"isAccreditedInvestor": false,
		"marketsInterested": "not-an-array",
		"propertyTypesInterested": ["duplex"],
		"contactId": "c1"
	}`))
	require.NoError(t, err)

	var req dto.CreateQuestionnaireRequest
	require.NoError(t, p.Decode(&req))

	q := req.ToSchema("owner")
	assert.Equal(t, datatypes.JSONSlice[string]{}, q.MarketsInterested)
	assert.Equal(t, datatypes.JSONSlice[string]{"duplex"}, q.PropertyTypesInterested)
	assert.Equal(t, "owner", q.CreatedBy)
	assert.Equal(t, "c1", q.ContactID)
}

func TestCreateVideoRequest_ToSchemaDefaultsToPublished(t *testing.T) {
	req := dto.CreateVideoRequest{Title: "Tour", VideoURL: "https://example.com/v.mp4"}
	assert.True(t, req.ToSchema("owner").IsPublished)

	unpublished := false
	req.IsPublished = &unpublished
	assert.False(t, req.ToSchema("owner").IsPublished)
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, dto.Pagination{Total: 21, Page: 2, Limit: 10, Pages: 3}, dto.NewPagination(21, 2, 10))
	assert.Equal(t, dto.Pagination{Total: 0, Page: 1, Limit: 10, Pages: 0}, dto.NewPagination(0, 1, 10))
}
