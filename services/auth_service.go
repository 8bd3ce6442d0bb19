package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"kickconnect.net/configs"
	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"
	"kickconnect.net/repositories"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials AuthServiceError = "invalid email or password"
	ErrUserNotActive      AuthServiceError = "this login has been disabled"
	ErrTokenIssueFailed   AuthServiceError = "sign-in token could not be issued"
)

const tokenLifetime = 24 * time.Hour

// AuthClaims is the JWT payload issued on login.
type AuthClaims struct {
	UserID    uint   `json:"userId"`
	AccountID uint   `json:"accountId"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// LoginResult is the signed-in session handed back to the client.
type LoginResult struct {
	Token         string             `json:"token"`
	User          *models.UserDetail `json:"user"`
	ResetPassword bool               `json:"resetPassword"`
}

// IAuthService signs users in and verifies their tokens.
type IAuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	VerifyToken(tokenString string) (*AuthClaims, error)
}

type AuthService struct {
	userRepo repositories.IUserRepository
	secret   []byte
	now      func() time.Time
}

func NewAuthService() IAuthService {
	return &AuthService{
		userRepo: repositories.NewUserRepository(),
		secret:   []byte(configs.JWTSecret()),
		now:      time.Now,
	}
}

// Login checks the credentials and issues a signed token. All credential
// failures read the same so the endpoint leaks nothing about which part
// was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		configslog.Log.Error("AuthService.Login: lookup failed", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.IsActive != 1 {
		return nil, ErrUserNotActive
	}

	issuedAt := s.now()
	claims := AuthClaims{
		UserID:    user.UserID,
		AccountID: user.AccountID,
		Email:     user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenLifetime)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		configslog.Log.Error("AuthService.Login: token signing failed", zap.Error(err))
		return nil, ErrTokenIssueFailed
	}

	detail, err := s.userRepo.GetDetail(ctx, user.UserID)
	if err != nil {
		configslog.Log.Error("AuthService.Login: detail lookup failed", zap.Uint("userId", user.UserID), zap.Error(err))
		return nil, ErrTokenIssueFailed
	}

	configslog.SLog.Infof("User signed in: id=%d", user.UserID)
	return &LoginResult{Token: token, User: detail, ResetPassword: user.ResetPassword}, nil
}

// VerifyToken parses and validates a bearer token.
func (s *AuthService) VerifyToken(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	return claims, nil
}

var _ IAuthService = (*AuthService)(nil)
