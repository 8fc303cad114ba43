package service

import (
	"testing"

	"github.com/BTulkas/Foster-Finder/internal/apperrors"
	"github.com/BTulkas/Foster-Finder/internal/phone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileReconcilesNumbers(t *testing.T) {
	env := newTestEnv(t)

	registered := registerClinic(t, env, "vet@example.com", "North Vet")

	updated, err := env.clinics.UpdateProfile(registered.Clinic.ID, UpdateClinicInput{
		Name:            "North Vet",
		Area:            "center",
		MainNumber:      phone.Input{DialCode: "02", Number: "5550000"},
		EmergencyNumber: phone.Input{DialCode: "03", Number: "5551111"},
	})
	require.NoError(t, err)

	require.NotNil(t, updated.AreaName)
	assert.Equal(t, "center", *updated.AreaName)
	require.Len(t, updated.PhoneNumbers, 2)
	for _, number := range updated.PhoneNumbers {
		assert.Equal(t, number.Number == "5550000", number.PrimaryContact)
	}

	// Dropping the main slot promotes the emergency number to primary
	updated, err = env.clinics.UpdateProfile(registered.Clinic.ID, UpdateClinicInput{
		Name:            "North Vet",
		Area:            "center",
		EmergencyNumber: phone.Input{DialCode: "03", Number: "5551111"},
	})
	require.NoError(t, err)

	require.Len(t, updated.PhoneNumbers, 1)
	assert.Equal(t, "5551111", updated.PhoneNumbers[0].Number)
	assert.True(t, updated.PhoneNumbers[0].PrimaryContact)
	assert.Equal(t, int64(1), env.countPhones(t))
}

func TestUpdateProfileRequiresANumber(t *testing.T) {
	env := newTestEnv(t)

	registered := registerClinic(t, env, "vet@example.com", "North Vet")

	_, err := env.clinics.UpdateProfile(registered.Clinic.ID, UpdateClinicInput{
		Name: "Renamed Vet",
	})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	// Nothing was written
	current, findErr := env.clinics.GetProfile(registered.Clinic.ID)
	require.NoError(t, findErr)
	assert.Equal(t, "North Vet", current.Name)
	assert.Equal(t, int64(1), env.countPhones(t))
}

func TestUpdateProfileRejectsTakenName(t *testing.T) {
	env := newTestEnv(t)

	registerClinic(t, env, "first@example.com", "First Vet")
	second, err := env.auth.Register(RegisterInput{
		Email:      "second@example.com",
		Name:       "Second Vet",
		Password:   "secret123",
		MainNumber: phone.Input{DialCode: "03", Number: "5551111"},
	})
	require.NoError(t, err)

	_, err = env.clinics.UpdateProfile(second.Clinic.ID, UpdateClinicInput{
		Name:       "First Vet",
		MainNumber: phone.Input{DialCode: "03", Number: "5551111"},
	})

	var conflictErr *apperrors.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "name", conflictErr.Field)
}

func TestSearchClinicsPhoneTakesPrecedence(t *testing.T) {
	env := newTestEnv(t)

	byPhone := registerClinic(t, env, "holder@example.com", "Phone Holder")
	_, err := env.auth.Register(RegisterInput{
		Email:      "other@example.com",
		Name:       "Other Vet",
		Password:   "secret123",
		MainNumber: phone.Input{DialCode: "03", Number: "5551111"},
	})
	require.NoError(t, err)

	result, err := env.clinics.SearchClinics("Other", "other@example.com", "02", "5550000", 1)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, byPhone.Clinic.ID, result.Items[0].ID)

	// Phone miss falls back to name/email matching
	result, err = env.clinics.SearchClinics("Other", "", "09", "0000000", 1)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Other Vet", result.Items[0].Name)
}

func TestSearchClinicsBlankTermsMatchAll(t *testing.T) {
	env := newTestEnv(t)

	registerClinic(t, env, "first@example.com", "First Vet")
	_, err := env.auth.Register(RegisterInput{
		Email:      "second@example.com",
		Name:       "Second Vet",
		Password:   "secret123",
		MainNumber: phone.Input{DialCode: "03", Number: "5551111"},
	})
	require.NoError(t, err)

	result, err := env.clinics.SearchClinics("", "", "", "", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	assert.Len(t, result.Items, 2)
}

func TestGetProfileUnknownClinic(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.clinics.GetProfile(999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
