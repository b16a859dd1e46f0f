package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/growplate/backend/internal/service"
	"github.com/pageza/growplate/backend/internal/testhelpers"
	"github.com/pageza/growplate/backend/internal/types"
	"github.com/pageza/growplate/backend/internal/units"
)

func TestGrowthCreateComputesBMI(t *testing.T) {
	svc := service.NewGrowthService(testhelpers.NewSQLiteDB(t), nil)
	ctx := context.Background()
	userID := uuid.New()

	metric, err := svc.CreateEntry(ctx, userID, &types.GrowthEntryRequest{
		Date: at(1, 9), Weight: 70, WeightUnit: "kg", Height: 170, HeightUnit: "cm",
	})
	require.NoError(t, err)
	assert.Equal(t, 24.22, metric.BMI)
	assert.Equal(t, units.Kilograms, metric.WeightUnit)

	imperial, err := svc.CreateEntry(ctx, userID, &types.GrowthEntryRequest{
		Date: at(2, 9), Weight: 154.324, WeightUnit: "LBS", Height: 66.929, HeightUnit: "inches",
	})
	require.NoError(t, err)
	assert.InDelta(t, 24.22, imperial.BMI, 0.01)

	got, err := svc.GetEntry(ctx, userID, metric.ID)
	require.NoError(t, err)
	assert.Equal(t, 24.22, got.BMI)

	recent, err := svc.RecentEntries(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, imperial.ID, recent[0].ID)
}

func TestGrowthCreateValidation(t *testing.T) {
	svc := service.NewGrowthService(testhelpers.NewSQLiteDB(t), nil)

	tests := []struct {
		name string
		req  types.GrowthEntryRequest
		want []string
	}{
		{
			name: "unknown units",
			req:  types.GrowthEntryRequest{Weight: 70, WeightUnit: "stone", Height: 170, HeightUnit: "ft"},
			want: []string{"Weight unit must be kg or lbs", "Height unit must be cm or inches"},
		},
		{
			name: "unrealistic weight",
			req:  types.GrowthEntryRequest{Weight: 500, WeightUnit: "kg", Height: 170, HeightUnit: "cm"},
			want: []string{"Weight seems unrealistic. Please check the value."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEntry(context.Background(), uuid.New(), &tt.req)
			var verr *service.EntryValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.want, verr.Messages)
		})
	}
}

func TestGrowthUpdateRecomputesBMI(t *testing.T) {
	svc := service.NewGrowthService(testhelpers.NewSQLiteDB(t), nil)
	ctx := context.Background()
	userID := uuid.New()

	entry, err := svc.CreateEntry(ctx, userID, &types.GrowthEntryRequest{
		Weight: 70, WeightUnit: "kg", Height: 170, HeightUnit: "cm",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateEntry(ctx, userID, entry.ID, &types.GrowthEntryRequest{
		Weight: 80, WeightUnit: "kg", Height: 170, HeightUnit: "cm",
	})
	require.NoError(t, err)
	assert.Equal(t, 27.68, updated.BMI)

	_, err = svc.UpdateEntry(ctx, uuid.New(), entry.ID, &types.GrowthEntryRequest{
		Weight: 80, WeightUnit: "kg", Height: 170, HeightUnit: "cm",
	})
	assert.ErrorIs(t, err, service.ErrEntryNotFound)

	require.NoError(t, svc.DeleteEntry(ctx, userID, entry.ID))
	assert.ErrorIs(t, svc.DeleteEntry(ctx, userID, entry.ID), service.ErrEntryNotFound)
}
