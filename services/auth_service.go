package services

import (
	"errors"
	"fmt"
	"time"

	"forum-api/config"
	"forum-api/helper"
	"forum-api/models"
	"forum-api/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims is the token payload: just the user id plus the registered claims.
// Everything else about the user is reloaded from storage per request.
type Claims struct {
	UserID uint `json:"id"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(req models.RegisterRequest) (*models.RegisteredUser, error)
	Login(req models.LoginRequest) (*models.TokenResponse, error)
	VerifyToken(tokenString string) (uint, error)
	GetUserByID(id uint) (*models.User, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	cfg       *config.Config
	sanitizer *helper.Sanitizer
	validator *helper.Validator
}

func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config, sanitizer *helper.Sanitizer, validator *helper.Validator) AuthService {
	return &authService{
		userRepo:  userRepo,
		cfg:       cfg,
		sanitizer: sanitizer,
		validator: validator,
	}
}

func (s *authService) Register(req models.RegisterRequest) (*models.RegisteredUser, error) {
	if validation := s.validator.ValidateUser(req.Username, req.Name, req.Password); len(validation) > 0 {
		return nil, models.ErrorValidation{Message: "Validation error", Validation: validation}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(s.sanitizer.Clean(req.Password)), config.BcryptCost)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "Error hashing password", Err: err}
	}

	user := &models.User{
		Username: s.sanitizer.Clean(req.Username),
		Name:     s.sanitizer.Clean(req.Name),
		Password: string(hashed),
		Admin:    false,
		Pending:  false,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, models.ErrorQuery{Message: "Error creating user", Err: err}
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "Error signing token", Err: err}
	}

	return &models.RegisteredUser{User: *user, Token: token}, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.TokenResponse, error) {
	users, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		return nil, models.ErrorQuery{Message: "Error finding user", Err: err}
	}

	if len(users) == 0 {
		return nil, models.ErrorValidation{
			Message: "Validation error",
			Validation: []models.FieldError{{
				Field:   "username",
				Message: fmt.Sprintf("No user with username = %s found", req.Username),
			}},
		}
	}

	// A unique index guarantees a single match; more than one is an
	// integrity violation.
	if len(users) > 1 {
		return nil, models.ErrorInternalServer{
			Message: fmt.Sprintf("expected exactly 1 user, got %d", len(users)),
		}
	}

	user := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrorUnauthorized{
			Message: "Invalid password",
			Validation: []models.FieldError{{
				Field:   "password",
				Message: "Invalid password",
			}},
		}
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "Error signing token", Err: err}
	}

	return &models.TokenResponse{Token: token}, nil
}

// VerifyToken checks signature and expiry and returns the embedded user id.
// An expired token is distinguished from every other parse failure.
func (s *authService) VerifyToken(tokenString string) (uint, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.cfg.JWTSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, models.ErrorUnauthorized{Message: "expired token"}
		}
		return 0, models.ErrorUnauthorized{Message: "invalid token"}
	}

	if !token.Valid {
		return 0, models.ErrorUnauthorized{Message: "invalid token"}
	}

	return claims.UserID, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "User not found"}
		}
		return nil, models.ErrorQuery{Message: "Error finding user", Code: 500, Err: err}
	}
	return user, nil
}

func (s *authService) generateToken(userID uint) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.cfg.JWTSecret)
}
