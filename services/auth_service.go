package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"influencer-api/models"
	"influencer-api/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims is the payload of the bearer tokens issued by AuthService.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type AuthService interface {
	CreateUser(ctx context.Context, email, password string, fields models.UserFields) (*models.User, error)
	CreateSuperuser(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req models.TokenRequest) (*models.TokenResponse, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, req models.UpdateUserRequest) (*models.User, error)
}

type authService struct {
	userRepo   repositories.UserRepository
	secret     []byte
	expiration time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, secret []byte, expiration time.Duration) AuthService {
	return &authService{
		userRepo:   userRepo,
		secret:     secret,
		expiration: expiration,
	}
}

// CreateUser normalizes the email, hashes the password and stores the user.
// An empty password leaves the account without a usable password.
func (s *authService) CreateUser(ctx context.Context, email, password string, fields models.UserFields) (*models.User, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return nil, models.ErrEmailRequired
	}

	// Check if user already exists
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, models.ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:       email,
		Password:    hashedPassword,
		Name:        fields.Name,
		IsActive:    true,
		IsStaff:     fields.IsStaff,
		IsSuperuser: fields.IsSuperuser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) CreateSuperuser(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.CreateUser(ctx, email, password, models.UserFields{})
	if err != nil {
		return nil, err
	}

	user.IsStaff = true
	user.IsSuperuser = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	return s.CreateUser(ctx, req.Email, req.Password, models.UserFields{Name: req.Name})
}

func (s *authService) Login(ctx context.Context, req models.TokenRequest) (*models.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, models.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, models.ErrInvalidCredentials
	}

	// Check password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{Token: token}, nil
}

// Authenticate validates a bearer token and loads its user. Tokens of
// deleted or deactivated users are rejected.
func (s *authService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrorUnauthorized{Message: "Invalid token."}
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrInactiveUser
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, models.ErrInactiveUser
	}
	return user, nil
}

func (s *authService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrUserNotFound
	}
	return user, err
}

func (s *authService) UpdateUser(ctx context.Context, id uint, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		if user.Password, err = hashPassword(*req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signedToken, nil
}

func hashPassword(password string) (string, error) {
	if password == "" {
		return models.UnusablePassword, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
