package services

import (
	"context"
	"errors"
	"log"

	"mazadWeb/internal/forms"
	"mazadWeb/internal/models"
)

// AccountAPI is the slice of the platform client the account service
// uses.
type AccountAPI interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error)
	SignIn(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error)
	SignOut(ctx context.Context, accessToken string) error
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyResetCode(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, req models.NewPasswordRequest) error
	Profile(ctx context.Context, accessToken string) (models.User, error)
	UpdateProfile(ctx context.Context, accessToken string, upd models.ProfileUpdate) (models.User, error)
	UpdateAvatar(ctx context.Context, accessToken, avatarPath string) (models.User, error)
}

// SessionStore is the session surface the account service drives.
type SessionStore interface {
	Create(ctx context.Context, user models.User, tokens models.Tokens) (models.Session, error)
	UpdateUser(ctx context.Context, id string, user models.User) (models.Session, error)
	Delete(ctx context.Context, id string) error
}

// SignInLimiter throttles repeated failed sign-ins per account.
type SignInLimiter interface {
	Allow(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// ImageUploader stores user media and returns its public URL.
type ImageUploader interface {
	UploadImage(data []byte, contentType, folder string) (string, error)
}

type AccountService struct {
	API      AccountAPI
	Sessions SessionStore
	Limiter  SignInLimiter
	Uploader ImageUploader
	ErrorLog *log.Logger
}

// SignUp registers the account upstream and opens a session for it.
func (s *AccountService) SignUp(ctx context.Context, form forms.SignUpForm) (models.Session, error) {
	if err := form.Validate(); err != nil {
		return models.Session{}, err
	}

	role := form.Role
	if role == "" {
		role = string(models.RoleBuyer)
	}

	resp, err := s.API.SignUp(ctx, models.SignUpRequest{
		Name:     form.Name,
		Phone:    form.Phone,
		Email:    form.Email,
		Password: form.Password,
		Role:     role,
	})
	if err != nil {
		return models.Session{}, err
	}
	return s.Sessions.Create(ctx, resp.User, resp.Tokens)
}

// SignIn authenticates against the platform. Failed attempts count
// toward the rate limit; a success clears it. Malformed input is
// rejected before it touches the limiter.
func (s *AccountService) SignIn(ctx context.Context, form forms.SignInForm) (models.Session, error) {
	if err := form.Validate(); err != nil {
		return models.Session{}, err
	}

	if err := s.Limiter.Allow(ctx, form.Email); err != nil {
		return models.Session{}, err
	}

	resp, err := s.API.SignIn(ctx, models.SignInRequest{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		return models.Session{}, err
	}

	if err := s.Limiter.Reset(ctx, form.Email); err != nil {
		s.ErrorLog.Printf("reset sign-in limiter for %s: %v", form.Email, err)
	}
	return s.Sessions.Create(ctx, resp.User, resp.Tokens)
}

// SignOut revokes the tokens upstream and drops the session. The
// session dies even when the upstream call fails; the browser is
// signing out either way.
func (s *AccountService) SignOut(ctx context.Context, sess models.Session) error {
	if err := s.API.SignOut(ctx, sess.Tokens.AccessToken); err != nil {
		s.ErrorLog.Printf("platform sign-out for user %d: %v", sess.User.ID, err)
	}
	return s.Sessions.Delete(ctx, sess.ID)
}

// RequestPasswordReset always reports success to the caller so the
// endpoint does not leak which emails exist; only upstream failures
// unrelated to the account bubble up.
func (s *AccountService) RequestPasswordReset(ctx context.Context, form forms.ResetRequestForm) error {
	if err := form.Validate(); err != nil {
		return err
	}

	err := s.API.RequestPasswordReset(ctx, form.Email)
	if err != nil && !isAccountError(err) {
		return err
	}
	return nil
}

// VerifyResetCode checks the emailed code before the new password
// screen is shown.
func (s *AccountService) VerifyResetCode(ctx context.Context, form forms.ResetVerifyForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	return s.API.VerifyResetCode(ctx, form.Email, form.Code)
}

// ResetPassword sets the new password using a verified code.
func (s *AccountService) ResetPassword(ctx context.Context, form forms.ResetConfirmForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	return s.API.ResetPassword(ctx, models.NewPasswordRequest{
		Email:       form.Email,
		Code:        form.Code,
		NewPassword: form.NewPassword,
	})
}

// Profile returns the live account record, not the session snapshot.
func (s *AccountService) Profile(ctx context.Context, sess models.Session) (models.User, error) {
	return s.API.Profile(ctx, sess.Tokens.AccessToken)
}

// UpdateProfile pushes profile changes upstream and refreshes the
// session snapshot so the header shows the new name immediately.
func (s *AccountService) UpdateProfile(ctx context.Context, sess models.Session, form forms.ProfileForm) (models.User, error) {
	if err := form.Validate(); err != nil {
		return models.User{}, err
	}

	user, err := s.API.UpdateProfile(ctx, sess.Tokens.AccessToken, models.ProfileUpdate{
		Name:  form.Name,
		Phone: form.Phone,
		City:  form.City,
	})
	if err != nil {
		return models.User{}, err
	}

	if _, err := s.Sessions.UpdateUser(ctx, sess.ID, user); err != nil {
		s.ErrorLog.Printf("refresh session snapshot for user %d: %v", user.ID, err)
	}
	return user, nil
}

// UpdateAvatar uploads the new picture to object storage, points the
// account at it and refreshes the session snapshot.
func (s *AccountService) UpdateAvatar(ctx context.Context, sess models.Session, data []byte, contentType string) (models.User, error) {
	url, err := s.Uploader.UploadImage(data, contentType, "avatars")
	if err != nil {
		return models.User{}, err
	}

	user, err := s.API.UpdateAvatar(ctx, sess.Tokens.AccessToken, url)
	if err != nil {
		return models.User{}, err
	}

	if _, err := s.Sessions.UpdateUser(ctx, sess.ID, user); err != nil {
		s.ErrorLog.Printf("refresh session snapshot for user %d: %v", user.ID, err)
	}
	return user, nil
}

func isAccountError(err error) bool {
	return errors.Is(err, models.ErrUserNotFound) ||
		errors.Is(err, models.ErrNoRecord) ||
		errors.Is(err, models.ErrTooManyAttempts)
}
