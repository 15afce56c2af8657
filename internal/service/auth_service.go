package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strconv"
	"time"

	"mocar/config"
	"mocar/internal/auth"
	"mocar/internal/repository"
	"mocar/pkg/mailer"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCreds       = errors.New("invalid credentials")
	ErrEmailNotRegistered = errors.New("email not registered")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrNoAdminAccount     = errors.New("admin account not found")
)

const otpValidity = 10 * time.Minute

type AuthService struct {
	cfg       *config.Config
	adminRepo *repository.AdminRepository
	resetRepo *repository.PasswordResetRepository
	mail      mailer.Mailer
}

func NewAuthService(cfg *config.Config, adminRepo *repository.AdminRepository, resetRepo *repository.PasswordResetRepository, mail mailer.Mailer) *AuthService {
	return &AuthService{cfg: cfg, adminRepo: adminRepo, resetRepo: resetRepo, mail: mail}
}

// Login verifies the credentials and issues an access token carrying the
// account id.
func (s *AuthService) Login(username, password string) (string, error) {
	a, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCreds
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCreds
	}
	return auth.GenerateAccessToken(&s.cfg.JWT, a.ID, a.Username)
}

// ForgotPassword issues a one-time passcode to the configured admin email.
// Nothing is generated or stored for any other address. Delivery failure is
// an error: an undelivered code is useless.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if email != s.cfg.Admin.Email {
		return ErrEmailNotRegistered
	}
	code, err := generateOTP()
	if err != nil {
		return err
	}
	if err := s.resetRepo.Put(email, code, time.Now().Add(otpValidity)); err != nil {
		return err
	}
	body := fmt.Sprintf("<p>Your OTP for password reset is: <strong>%s</strong></p><p>It expires in 10 minutes.</p>", code)
	if err := s.mail.Send(ctx, email, "MoCar Admin Password Reset OTP", body); err != nil {
		log.Printf("[mail] otp delivery failed: %v", err)
		return err
	}
	return nil
}

// ResetPassword consumes a passcode and sets a new password. The reset flow
// carries no account identity, so the password of the first admin row is
// updated; valid only under the single-admin deployment assumption.
func (s *AuthService) ResetPassword(email, code, newPassword string) error {
	if email != s.cfg.Admin.Email {
		return ErrEmailNotRegistered
	}
	rec, err := s.resetRepo.Get(email)
	if err != nil {
		return err
	}
	if rec == nil || rec.Code != code || time.Now().After(rec.ExpiresAt) {
		return ErrInvalidOTP
	}
	a, err := s.adminRepo.First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoAdminAccount
		}
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.adminRepo.UpdatePassword(a.ID, string(hash)); err != nil {
		return err
	}
	if err := s.resetRepo.Delete(email); err != nil {
		log.Printf("[auth] consume otp: %v", err)
	}
	return nil
}

// ChangeUsername renames the acting account. The current password is a
// required second factor on top of the bearer token.
func (s *AuthService) ChangeUsername(adminID uint, currentPassword, newUsername string) error {
	a, err := s.adminRepo.GetByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCreds
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCreds
	}
	return s.adminRepo.UpdateUsername(a.ID, newUsername)
}

// generateOTP returns a 6-digit numeric code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
