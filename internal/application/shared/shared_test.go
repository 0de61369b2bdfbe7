package shared

import (
	"context"
	"errors"
	"testing"

	"github.com/rescue-ops/backend/internal/domain/reference"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type sampleInput struct {
	Name     string `json:"name" validate:"required,max=5"`
	Email    string `json:"email" validate:"omitempty,email"`
	StatusID *int64 `json:"status_id" validate:"omitnil,gt=0"`
}

func TestValidateInput(t *testing.T) {
	t.Run("accepts valid input", func(t *testing.T) {
		assert.NoError(t, ValidateInput(sampleInput{Name: "ok"}))
	})

	t.Run("reports first failing field by json name", func(t *testing.T) {
		err := ValidateInput(sampleInput{})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, shared.CodeValidationRejected, domainErr.Code)
		assert.Equal(t, "name", domainErr.Field)
		assert.Equal(t, "is required", domainErr.Message)
	})

	t.Run("validates supplied pointers", func(t *testing.T) {
		zero := int64(0)
		err := ValidateInput(sampleInput{Name: "ok", StatusID: &zero})

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "status_id", domainErr.Field)
	})

	t.Run("string length message", func(t *testing.T) {
		err := ValidateInput(sampleInput{Name: "too long"})
		assert.EqualError(t, err, "name: must be at most 5 characters")
	})
}

type renameInput struct {
	Name  string  `json:"name" validate:"required,notblank,max=5"`
	Label *string `json:"label" validate:"omitnil,notblank,max=5"`
}

func TestValidateInput_Blank(t *testing.T) {
	spaces := "   "
	padded := " ab "

	tests := []struct {
		name  string
		input renameInput
		field string
	}{
		{"padded values pass", renameInput{Name: " ok ", Label: &padded}, ""},
		{"omitted pointer passes", renameInput{Name: "ok"}, ""},
		{"spaces only name", renameInput{Name: spaces}, "name"},
		{"tabs and newlines", renameInput{Name: "\t\n"}, "name"},
		{"spaces only label", renameInput{Name: "ok", Label: &spaces}, "label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInput(tt.input)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, shared.CodeValidationRejected, domainErr.Code)
			assert.Equal(t, tt.field, domainErr.Field)
			assert.Equal(t, "must not be blank", domainErr.Message)
		})
	}
}

type countingObserver struct {
	calls []string
}

func (o *countingObserver) IncValidationReject(aggregate, field string) {
	o.calls = append(o.calls, aggregate+"."+field)
}

func TestReferences(t *testing.T) {
	missing := reference.ResolverFunc(func(ctx context.Context, id int64) error {
		return shared.NewNotFound("address", id)
	})
	v := reference.NewValidator(map[reference.Kind]reference.Resolver{reference.KindAddress: missing})
	specs := []reference.KeySpec{{Field: "address_id", Kind: reference.KindAddress, Required: true}}

	obs := &countingObserver{}
	refs := NewReferences(v, obs, "incident")

	err := refs.Check(context.Background(), reference.Bind(specs, reference.ID(9)))
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrValidationRejected)
	assert.Equal(t, []string{"incident.address_id"}, obs.calls)

	assert.NoError(t, refs.CheckSupplied(context.Background(), reference.Bind(specs, nil)))
	assert.Len(t, obs.calls, 1)

	assert.NoError(t, NewReferences(v, nil, "incident").CheckSupplied(context.Background(), nil))
}

func TestStoreError(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	logger := zap.New(core)

	t.Run("unique violation becomes validation rejection", func(t *testing.T) {
		err := StoreError(logger, "create user", shared.NewUniqueViolation("email"))
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, shared.CodeValidationRejected, domainErr.Code)
		assert.Equal(t, "email", domainErr.Field)
	})

	t.Run("domain errors pass through", func(t *testing.T) {
		err := StoreError(logger, "update team", shared.NewNotFound("team", 4))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("unknown errors are logged and hidden", func(t *testing.T) {
		err := StoreError(logger, "update team", errors.New("connection reset"))
		assert.ErrorIs(t, err, shared.NewInternalError(""))
		assert.NotContains(t, err.Error(), "connection reset")
		assert.Equal(t, 1, logs.FilterMessage("Failed to update team").Len())
	})
}

func TestDeleteError(t *testing.T) {
	logger := zap.NewNop()

	err := DeleteError(logger, "company", 3, shared.NewIntegrityConflict("fk"))
	assert.ErrorIs(t, err, shared.ErrHasActiveReferences)
	assert.EqualError(t, err, "company 3 has active references")

	err = DeleteError(logger, "company", 3, shared.NewHasActiveReferences("company", 3))
	assert.ErrorIs(t, err, shared.ErrHasActiveReferences)

	err = DeleteError(logger, "company", 3, shared.NewNotFound("company", 3))
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestStatusDetail(t *testing.T) {
	assert.Equal(t, "status changed from 1 to 3", StatusDetail("", 1, 3))
	assert.Equal(t, "status changed from 1 to 3", StatusDetail("   ", 1, 3))
	assert.Equal(t, "deployed to site", StatusDetail(" deployed to site ", 1, 3))
}

func TestMerge(t *testing.T) {
	name := "Alpha"
	MergeString(&name, nil)
	assert.Equal(t, "Alpha", name)
	supplied := "  Bravo "
	MergeString(&name, &supplied)
	assert.Equal(t, "Bravo", name)

	status := int64(1)
	MergeID(&status, nil)
	assert.Equal(t, int64(1), status)
	next := int64(3)
	MergeID(&status, &next)
	assert.Equal(t, int64(3), status)

	leader := reference.ID(8)
	MergeOptionalID(&leader, nil)
	require.NotNil(t, leader)
	other := int64(9)
	MergeOptionalID(&leader, &other)
	assert.Equal(t, int64(9), *leader)
	zero := int64(0)
	MergeOptionalID(&leader, &zero)
	assert.Nil(t, leader)
}
