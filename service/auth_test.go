package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"saldo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokens struct{}

func (fakeTokens) Issue(userID uint, email string) (string, error) {
	return fmt.Sprintf("token-%d-%s", userID, email), nil
}

type fakeNotifier struct {
	sent []string
	err  error
}

func (n *fakeNotifier) SendWelcomeEmail(toEmail, name string) error {
	n.sent = append(n.sent, toEmail)
	return n.err
}

func TestAuthService_Register(t *testing.T) {
	env := newTestEnv(t)
	notifier := &fakeNotifier{}
	s := NewAuthService(env.users, fakeTokens{}, notifier)
	ctx := context.Background()

	result, err := s.Register(ctx, RegisterInput{Email: " Ana@Example.com ", Password: "secret1", Name: " Ana "})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", result.User.Email)
	assert.Equal(t, "Ana", result.User.Name)
	assert.Equal(t, fmt.Sprintf("token-%d-ana@example.com", result.User.ID), result.Token)
	assert.Equal(t, []string{"ana@example.com"}, notifier.sent)

	stored, err := env.users.FindByID(ctx, result.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	s := NewAuthService(env.users, fakeTokens{}, nil)
	ctx := context.Background()

	_, err := s.Register(ctx, RegisterInput{Email: "dup@example.com", Password: "secret1", Name: "First"})
	require.NoError(t, err)

	_, err = s.Register(ctx, RegisterInput{Email: "DUP@example.com", Password: "secret2", Name: "Second"})
	assert.ErrorIs(t, err, ErrConflict)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	env := newTestEnv(t)
	s := NewAuthService(env.users, fakeTokens{}, nil)

	tests := []struct {
		name  string
		in    RegisterInput
		field string
	}{
		{"bad email", RegisterInput{Email: "not-an-email", Password: "secret1", Name: "A"}, "email"},
		{"short password", RegisterInput{Email: "a@b.com", Password: "12345", Name: "A"}, "password"},
		{"blank name", RegisterInput{Email: "a@b.com", Password: "secret1", Name: "   "}, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), tt.in)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestAuthService_RegisterNotifierFailureIsNotFatal(t *testing.T) {
	env := newTestEnv(t)
	s := NewAuthService(env.users, fakeTokens{}, &fakeNotifier{err: errors.New("smtp down")})

	result, err := s.Register(context.Background(), RegisterInput{Email: "mail@example.com", Password: "secret1", Name: "Mail"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	s := NewAuthService(env.users, fakeTokens{}, nil)
	ctx := context.Background()

	registered, err := s.Register(ctx, RegisterInput{Email: "login@example.com", Password: "secret1", Name: "Login"})
	require.NoError(t, err)

	result, err := s.Login(ctx, LoginInput{Email: "LOGIN@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, result.User.ID)
	assert.NotEmpty(t, result.Token)

	_, err = s.Login(ctx, LoginInput{Email: "login@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = s.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_Profile(t *testing.T) {
	env := newTestEnv(t)
	s := NewAuthService(env.users, fakeTokens{}, nil)
	ctx := context.Background()

	user := env.user(t, "profile@example.com")

	info, err := s.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "profile@example.com", info.Email)

	_, err = s.Profile(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthService_ChangePassword(t *testing.T) {
	env := newTestEnv(t)
	s := NewAuthService(env.users, fakeTokens{}, nil)
	ctx := context.Background()

	registered, err := s.Register(ctx, RegisterInput{Email: "pw@example.com", Password: "secret1", Name: "Pw"})
	require.NoError(t, err)
	id := registered.User.ID

	err = s.ChangePassword(ctx, id, ChangePasswordInput{OldPassword: "wrong", NewPassword: "newsecret"})
	assert.ErrorIs(t, err, ErrValidation)

	err = s.ChangePassword(ctx, id, ChangePasswordInput{OldPassword: "secret1", NewPassword: "123"})
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, s.ChangePassword(ctx, id, ChangePasswordInput{OldPassword: "secret1", NewPassword: "newsecret"}))

	_, err = s.Login(ctx, LoginInput{Email: "pw@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = s.Login(ctx, LoginInput{Email: "pw@example.com", Password: "newsecret"})
	assert.NoError(t, err)
}
