package service

import (
	"testing"

	"github.com/BTulkas/Foster-Finder/internal/apperrors"
	"github.com/BTulkas/Foster-Finder/internal/models"
	"github.com/BTulkas/Foster-Finder/internal/phone"
	"github.com/BTulkas/Foster-Finder/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerClinic(t *testing.T, env *testEnv, email, name string) *LoginResponse {
	t.Helper()

	response, err := env.auth.Register(RegisterInput{
		Email:      email,
		Name:       name,
		Password:   "secret123",
		Area:       "north",
		MainNumber: phone.Input{DialCode: "02", Number: "5550000"},
	})
	require.NoError(t, err)
	return response
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	response := registerClinic(t, env, "vet@example.com", "North Vet")
	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)
	assert.Equal(t, "North Vet", response.Clinic.Name)

	// The registered main number is stored as primary
	numbers, err := env.phoneRepo.FindByOwner(models.ClinicOwner(response.Clinic.ID))
	require.NoError(t, err)
	require.Len(t, numbers, 1)
	assert.True(t, numbers[0].PrimaryContact)

	login, err := env.auth.Login("vet@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, response.Clinic.ID, login.Clinic.ID)

	_, err = env.auth.Login("vet@example.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	registerClinic(t, env, "vet@example.com", "North Vet")

	_, err := env.auth.Register(RegisterInput{
		Email:      "vet@example.com",
		Name:       "Other Vet",
		Password:   "secret123",
		MainNumber: phone.Input{DialCode: "03", Number: "5551111"},
	})

	var conflictErr *apperrors.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "email", conflictErr.Field)
}

func TestRegisterWithoutPhoneFailsWithoutWrites(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register(RegisterInput{
		Email:    "vet@example.com",
		Name:     "North Vet",
		Password: "secret123",
	})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	var clinicCount int64
	require.NoError(t, env.db.Model(&models.Clinic{}).Count(&clinicCount).Error)
	assert.Zero(t, clinicCount)
	assert.Zero(t, env.countPhones(t))
}

func TestRegisterRejectsPhoneOwnedElsewhere(t *testing.T) {
	env := newTestEnv(t)

	registerClinic(t, env, "first@example.com", "First Vet")

	_, err := env.auth.Register(RegisterInput{
		Email:      "second@example.com",
		Name:       "Second Vet",
		Password:   "secret123",
		MainNumber: phone.Input{DialCode: "02", Number: "5550000"},
	})

	var conflictErr *apperrors.ConflictError
	require.ErrorAs(t, err, &conflictErr)
}

func TestRefreshAndLogout(t *testing.T) {
	env := newTestEnv(t)

	response := registerClinic(t, env, "vet@example.com", "North Vet")

	accessToken, err := env.auth.RefreshAccessToken(response.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	require.NoError(t, env.auth.Logout(response.RefreshToken))

	_, err = env.auth.RefreshAccessToken(response.RefreshToken)
	assert.Error(t, err)
}

func TestPasswordReset(t *testing.T) {
	env := newTestEnv(t)

	response := registerClinic(t, env, "vet@example.com", "North Vet")

	// Unknown emails are not reported
	require.NoError(t, env.auth.RequestPasswordReset("nobody@example.com"))

	token, err := utils.GeneratePasswordResetToken(response.Clinic.ID)
	require.NoError(t, err)
	require.NoError(t, env.auth.ResetPassword(token, "newsecret"))

	_, err = env.auth.Login("vet@example.com", "secret123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = env.auth.Login("vet@example.com", "newsecret")
	assert.NoError(t, err)

	err = env.auth.ResetPassword("not-a-token", "whatever")
	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
