package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"archery/app_error"
	"archery/repository"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signUpInput() SignUpInput {
	return SignUpInput{
		Username:    "archer" + gofakeit.DigitN(6),
		Email:       gofakeit.DigitN(6) + gofakeit.Email(),
		Password:    "correct horse",
		FirstName:   gofakeit.FirstName(),
		LastName:    gofakeit.LastName(),
		DateOfBirth: time.Now().AddDate(-25, 0, 0),
	}
}

func TestSignUpEnforcesUniqueness(t *testing.T) {
	defer tearDown()
	accounts := NewAccountService(db, NewMemoryAttemptCounter(), nil)

	input := signUpInput()
	input.Email = "bob@example.com"
	account, err := accounts.SignUp(input)
	require.NoError(t, err)
	assert.True(t, account.HasRole(repository.RoleArcher))
	assert.NotEqual(t, input.Password, account.PasswordHash)

	sameName := signUpInput()
	sameName.Username = input.Username
	_, err = accounts.SignUp(sameName)
	assert.ErrorIs(t, err, app_error.ErrConflict)

	sameEmail := signUpInput()
	sameEmail.Email = "Bob@Example.com"
	_, err = accounts.SignUp(sameEmail)
	assert.ErrorIs(t, err, app_error.ErrConflict, "emails compare case-insensitively")

	short := signUpInput()
	short.Password = "short"
	_, err = accounts.SignUp(short)
	assert.ErrorIs(t, err, app_error.ErrValidation)
}

func TestLoginLocksAfterRepeatedFailures(t *testing.T) {
	defer tearDown()
	attempts := NewMemoryAttemptCounter()
	clock := time.Now()
	attempts.now = func() time.Time { return clock }
	accounts := NewAccountService(db, attempts, nil)
	ctx := context.Background()

	input := signUpInput()
	_, err := accounts.SignUp(input)
	require.NoError(t, err)

	for i := 0; i < MaxLoginFailures; i++ {
		_, _, err := accounts.Login(ctx, input.Username, "wrong password")
		assert.Equal(t, http.StatusUnauthorized, app_error.HTTPStatus(err))
	}
	_, _, err = accounts.Login(ctx, input.Username, input.Password)
	assert.ErrorIs(t, err, app_error.ErrLoginLocked, "even the right password is refused while locked")

	clock = clock.Add(LoginLockout + time.Second)
	account, token, err := accounts.Login(ctx, input.Username, input.Password)
	require.NoError(t, err)
	assert.Equal(t, input.Username, account.Username)
	assert.NotEmpty(t, token)

	failures, err := attempts.Count(ctx, input.Username)
	require.NoError(t, err)
	assert.Equal(t, 0, failures, "a successful login clears the counter")
}

func TestDeactivatedAccountCannotLogin(t *testing.T) {
	defer tearDown()
	accounts := NewAccountService(db, NewMemoryAttemptCounter(), nil)
	input := signUpInput()
	account, err := accounts.SignUp(input)
	require.NoError(t, err)

	stranger := createAccount(t)
	assert.ErrorIs(t, accounts.Deactivate(stranger, account.Id), app_error.ErrForbidden)
	require.NoError(t, accounts.Deactivate(account, account.Id))

	_, _, err = accounts.Login(context.Background(), input.Username, input.Password)
	assert.ErrorIs(t, err, app_error.ErrForbidden)
	assert.True(t, reload(t, account).Deactivated)
}

func TestAdminUpdateRejectsUnknownRoles(t *testing.T) {
	defer tearDown()
	accounts := NewAccountService(db, NewMemoryAttemptCounter(), nil)
	account := createAccount(t)

	_, err := accounts.AdminUpdate(account.Id, []repository.Role{"captain"}, nil)
	assert.ErrorIs(t, err, app_error.ErrValidation)

	updated, err := accounts.AdminUpdate(account.Id, []repository.Role{repository.RoleRecorder, repository.RoleArcher}, nil)
	require.NoError(t, err)
	assert.True(t, updated.HasRole(repository.RoleRecorder))
	assert.False(t, updated.IsAdmin())
}
