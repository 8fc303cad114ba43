package phone

import (
	"testing"

	"github.com/BTulkas/Foster-Finder/internal/apperrors"
	"github.com/BTulkas/Foster-Finder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint {
	return &v
}

func TestBuildPlanPartialSlotFails(t *testing.T) {
	owner := models.ClinicOwner(1)

	_, err := BuildPlan(owner, nil, Input{DialCode: "02"}, Input{}, true)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "phone1", validationErr.Field)

	_, err = BuildPlan(owner, nil, Input{DialCode: "02", Number: "1234567"}, Input{Number: "7654321"}, true)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "phone2", validationErr.Field)
}

func TestBuildPlanRejectsMalformedNumbers(t *testing.T) {
	owner := models.VolunteerOwner(3)

	_, err := BuildPlan(owner, nil, Input{DialCode: "1", Number: "1234567"}, Input{}, false)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = BuildPlan(owner, nil, Input{DialCode: "02", Number: "123"}, Input{}, false)
	require.ErrorAs(t, err, &validationErr)
}

func TestBuildPlanBothEmptyRequireOne(t *testing.T) {
	_, err := BuildPlan(models.ClinicOwner(1), nil, Input{}, Input{}, true)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "phone1", validationErr.Field)
}

func TestBuildPlanBothEmptyAllowed(t *testing.T) {
	plan, err := BuildPlan(models.VolunteerOwner(1), nil, Input{}, Input{}, false)
	require.NoError(t, err)
	assert.True(t, plan.IsEmpty())
}

func TestBuildPlanIdenticalPairsCollapse(t *testing.T) {
	main := Input{DialCode: "02", Number: "1234567", Primary: true}
	emergency := Input{DialCode: "02", Number: "1234567"}

	plan, err := BuildPlan(models.VolunteerOwner(1), nil, main, emergency, true)
	require.NoError(t, err)
	require.Len(t, plan.Creates, 1)
	assert.Empty(t, plan.Updates)
	assert.Empty(t, plan.DeleteIDs)
	assert.True(t, plan.Creates[0].PrimaryContact)
}

func TestBuildPlanPrimaryTieBreaksToMain(t *testing.T) {
	main := Input{DialCode: "02", Number: "1234567"}
	emergency := Input{DialCode: "03", Number: "7654321"}

	plan, err := BuildPlan(models.VolunteerOwner(1), nil, main, emergency, true)
	require.NoError(t, err)
	require.Len(t, plan.Creates, 2)
	assert.True(t, plan.Creates[0].PrimaryContact)
	assert.False(t, plan.Creates[1].PrimaryContact)
}

func TestBuildPlanSingleSlotForcedPrimary(t *testing.T) {
	plan, err := BuildPlan(models.VolunteerOwner(1), nil, Input{}, Input{DialCode: "03", Number: "7654321"}, true)
	require.NoError(t, err)
	require.Len(t, plan.Creates, 1)
	assert.True(t, plan.Creates[0].PrimaryContact)
}

func TestBuildPlanUpdatesExistingRows(t *testing.T) {
	owner := models.VolunteerOwner(7)
	existing := []models.PhoneNumber{
		{ID: 10, DialCode: "02", Number: "1111111", PrimaryContact: true, VolunteerID: uintPtr(7)},
		{ID: 11, DialCode: "03", Number: "2222222", PrimaryContact: false, VolunteerID: uintPtr(7)},
	}

	plan, err := BuildPlan(owner, existing,
		Input{DialCode: "04", Number: "3333333", Primary: true},
		Input{DialCode: "05", Number: "4444444"},
		true)
	require.NoError(t, err)
	require.Len(t, plan.Updates, 2)
	assert.Empty(t, plan.Creates)
	assert.Empty(t, plan.DeleteIDs)

	assert.Equal(t, uint(10), plan.Updates[0].ID)
	assert.Equal(t, "04", plan.Updates[0].DialCode)
	assert.True(t, plan.Updates[0].PrimaryContact)
	assert.Equal(t, uint(11), plan.Updates[1].ID)
	assert.False(t, plan.Updates[1].PrimaryContact)
}

func TestBuildPlanClearedMainPromotesEmergency(t *testing.T) {
	owner := models.VolunteerOwner(7)
	existing := []models.PhoneNumber{
		{ID: 10, DialCode: "02", Number: "1111111", PrimaryContact: true, VolunteerID: uintPtr(7)},
		{ID: 11, DialCode: "03", Number: "2222222", PrimaryContact: false, VolunteerID: uintPtr(7)},
	}

	plan, err := BuildPlan(owner, existing, Input{}, Input{DialCode: "03", Number: "2222222"}, true)
	require.NoError(t, err)
	assert.Equal(t, []uint{10}, plan.DeleteIDs)
	require.Len(t, plan.Updates, 1)
	assert.Equal(t, uint(11), plan.Updates[0].ID)
	assert.True(t, plan.Updates[0].PrimaryContact, "the remaining number must become primary")
}

func TestBuildPlanClearedEmergencyDeletesRow(t *testing.T) {
	owner := models.ClinicOwner(2)
	existing := []models.PhoneNumber{
		{ID: 20, DialCode: "02", Number: "1111111", PrimaryContact: true, ClinicID: uintPtr(2)},
		{ID: 21, DialCode: "03", Number: "2222222", PrimaryContact: false, ClinicID: uintPtr(2)},
	}

	plan, err := BuildPlan(owner, existing, Input{DialCode: "02", Number: "1111111"}, Input{}, true)
	require.NoError(t, err)
	assert.Equal(t, []uint{21}, plan.DeleteIDs)
	require.Len(t, plan.Updates, 1)
	assert.True(t, plan.Updates[0].PrimaryContact)
}

func TestPlanSetOwner(t *testing.T) {
	plan, err := BuildPlan(models.VolunteerOwner(0), nil, Input{DialCode: "02", Number: "1234567"}, Input{}, true)
	require.NoError(t, err)

	plan.SetOwner(models.VolunteerOwner(42))
	require.Len(t, plan.Creates, 1)
	require.NotNil(t, plan.Creates[0].VolunteerID)
	assert.Equal(t, uint(42), *plan.Creates[0].VolunteerID)
	assert.Nil(t, plan.Creates[0].ClinicID)
}
