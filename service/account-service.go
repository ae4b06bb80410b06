package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"archery/app_error"
	"archery/auth"
	"archery/logger"
	"archery/metrics"
	"archery/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,30}$`)

type SignUpInput struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	Gender      string
}

type ProfileUpdate struct {
	FirstName   *string
	LastName    *string
	Email       *string
	DateOfBirth *time.Time
	Gender      *string
}

type AccountService struct {
	accountRepository *repository.AccountRepository
	attempts          AttemptCounter
	assets            *AssetService
	log               *zap.SugaredLogger
}

func NewAccountService(db *gorm.DB, attempts AttemptCounter, assets *AssetService) *AccountService {
	return &AccountService{
		accountRepository: repository.NewAccountRepository(db),
		attempts:          attempts,
		assets:            assets,
		log:               logger.Named("account"),
	}
}

func validateProfile(firstName, lastName, email string, dob time.Time) error {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return app_error.Validation("first and last name are required")
	}
	if !strings.Contains(email, "@") {
		return app_error.Validation("email address is invalid")
	}
	if dob.IsZero() || dob.After(time.Now()) {
		return app_error.Validation("date of birth is invalid")
	}
	return nil
}

func (s *AccountService) SignUp(input SignUpInput) (*repository.Account, error) {
	if !usernamePattern.MatchString(input.Username) {
		return nil, app_error.Validation("username must be 3-30 letters, digits, dots, dashes or underscores")
	}
	if err := validateProfile(input.FirstName, input.LastName, input.Email, input.DateOfBirth); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, app_error.Validation(err.Error())
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	taken, err := s.accountRepository.ExistsWithUsernameOrEmail(input.Username, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, app_error.Conflict("username or email is already registered")
	}
	account := &repository.Account{
		Username:     input.Username,
		Email:        email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		DateOfBirth:  input.DateOfBirth,
		Gender:       input.Gender,
		PasswordHash: hash,
		Roles:        []string{string(repository.RoleArcher)},
	}
	account, err = s.accountRepository.Save(account)
	if err != nil {
		return nil, err
	}
	s.log.Infow("auth_event", "event", "signup", "account_id", account.Id)
	return account, nil
}

// Login verifies the credentials and returns the account with a signed token.
func (s *AccountService) Login(ctx context.Context, username string, password string) (*repository.Account, string, error) {
	failures, err := s.attempts.Count(ctx, username)
	if err != nil {
		s.log.Warnw("could not read login failures", "error", err)
	}
	if failures >= MaxLoginFailures {
		s.log.Infow("auth_event", "event", "login_locked", "username", username)
		return nil, "", app_error.ErrLoginLocked
	}

	account, err := s.accountRepository.GetByUsername(username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}
	if account == nil || !auth.CheckPassword(account.PasswordHash, password) {
		metrics.LoginFailureCounter.Inc()
		if _, err := s.attempts.Increment(ctx, username, LoginLockout); err != nil {
			s.log.Warnw("could not count login failure", "error", err)
		}
		s.log.Infow("auth_event", "event", "login_failed", "username", username)
		return nil, "", app_error.Status(errors.New("invalid username or password"), 401)
	}
	if account.Deactivated {
		return nil, "", app_error.Forbidden("account is deactivated")
	}
	if err := s.attempts.Reset(ctx, username); err != nil {
		s.log.Warnw("could not reset login failures", "error", err)
	}
	token, err := auth.CreateToken(account)
	if err != nil {
		return nil, "", err
	}
	s.log.Infow("auth_event", "event", "login", "account_id", account.Id)
	return account, token, nil
}

// GetActor loads the account behind verified claims.
func (s *AccountService) GetActor(claims *auth.Claims) (*repository.Account, error) {
	if claims == nil {
		return nil, app_error.ErrUnauthenticated
	}
	account, err := s.accountRepository.GetById(claims.UserId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.ErrUnauthenticated
		}
		return nil, err
	}
	if account.Deactivated {
		return nil, app_error.ErrUnauthenticated
	}
	return account, nil
}

func (s *AccountService) GetAccount(id int) (*repository.Account, error) {
	return s.accountRepository.GetById(id)
}

func (s *AccountService) ListAccounts(filter repository.AccountFilter) ([]*repository.Account, error) {
	return s.accountRepository.List(filter)
}

func (s *AccountService) UpdateSelf(actor *repository.Account, update ProfileUpdate) (*repository.Account, error) {
	if update.FirstName != nil {
		actor.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		actor.LastName = *update.LastName
	}
	if update.Email != nil {
		actor.Email = strings.ToLower(strings.TrimSpace(*update.Email))
	}
	if update.DateOfBirth != nil {
		actor.DateOfBirth = *update.DateOfBirth
	}
	if update.Gender != nil {
		actor.Gender = *update.Gender
	}
	if err := validateProfile(actor.FirstName, actor.LastName, actor.Email, actor.DateOfBirth); err != nil {
		return nil, err
	}
	taken, err := s.accountRepository.ExistsWithUsernameOrEmail(actor.Username, actor.Email, actor.Id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, app_error.Conflict("email is already registered")
	}
	return s.accountRepository.Save(actor)
}

func (s *AccountService) ChangePassword(actor *repository.Account, oldPassword string, newPassword string) error {
	if !auth.CheckPassword(actor.PasswordHash, oldPassword) {
		return app_error.Forbidden("current password is wrong")
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return app_error.Validation(err.Error())
	}
	actor.PasswordHash = hash
	_, err = s.accountRepository.Save(actor)
	if err == nil {
		s.log.Infow("auth_event", "event", "password_changed", "account_id", actor.Id)
	}
	return err
}

// AdminUpdate replaces the roles and deactivation flag of an account.
func (s *AccountService) AdminUpdate(id int, roles []repository.Role, deactivated *bool) (*repository.Account, error) {
	account, err := s.accountRepository.GetById(id)
	if err != nil {
		return nil, err
	}
	if roles != nil {
		names := make([]string, 0, len(roles))
		for _, role := range roles {
			if !role.Valid() {
				return nil, app_error.Validation(fmt.Sprintf("unknown role %q", role))
			}
			names = append(names, string(role))
		}
		account.Roles = names
	}
	if deactivated != nil {
		account.Deactivated = *deactivated
	}
	return s.accountRepository.Save(account)
}

// Deactivate is allowed for admins and for the account owner.
func (s *AccountService) Deactivate(actor *repository.Account, id int) error {
	if actor.Id != id && !actor.IsAdmin() {
		return app_error.Forbidden("only admins can deactivate other accounts")
	}
	if _, err := s.accountRepository.GetById(id); err != nil {
		return err
	}
	s.log.Infow("auth_event", "event", "deactivated", "account_id", id, "by", actor.Id)
	return s.accountRepository.SetDeactivated(id, true)
}

func (s *AccountService) UploadAvatar(ctx context.Context, actor *repository.Account, data []byte) (*repository.Account, error) {
	url, err := s.assets.Upload(ctx, "avatars", data, ImageTypes)
	if err != nil {
		return nil, err
	}
	actor.AvatarUrl = &url
	return s.accountRepository.Save(actor)
}
