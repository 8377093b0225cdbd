package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kerem/fitness-tracker-api/internal/config"
	"github.com/kerem/fitness-tracker-api/internal/domain"
	"github.com/kerem/fitness-tracker-api/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailExists          = errors.New("email already exists")
	ErrRefreshTokenInvalid  = errors.New("refresh token invalid or expired")
	ErrRefreshTokenRevoked  = errors.New("refresh token revoked")
	ErrUnexpectedSignMethod = errors.New("unexpected signing method")
)

// Claims carried by both token kinds. Identity and privilege are embedded so
// handlers never need a database round trip to authorize a request.
type Claims struct {
	UserID  uint   `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

type AuthService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	log      *zap.Logger

	// Compared against when a login names an unknown email, so the request
	// costs a bcrypt verification either way.
	dummyHash []byte
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config, log *zap.Logger) *AuthService {
	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cfg.BcryptCost)
	if err != nil {
		// Only reachable with an out-of-range cost, which Load rejects.
		panic(err)
	}
	return &AuthService{
		userRepo:  userRepo,
		cfg:       cfg,
		log:       log,
		dummyHash: dummy,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Height   float64
	Weight   float64
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (uint, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return 0, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Height:       input.Height,
		Weight:       input.Weight,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrEmailExists
		}
		return 0, err
	}

	return user.ID, nil
}

type AuthResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

// Login verifies credentials and rotates the stored refresh token. The new
// refresh token is persisted before the result is returned, so the cookie the
// caller sets is always the value on record.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Burn a comparison anyway: an early return would let callers
			// probe account existence through response timing.
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// Refresh exchanges a valid, currently-stored refresh token for a fresh token
// pair. A token that verifies cryptographically but no longer matches the
// stored value has been superseded and is rejected.
func (s *AuthService) Refresh(ctx context.Context, presented string) (*AuthResult, error) {
	claims, err := s.ValidateRefreshToken(presented)
	if err != nil {
		s.log.Info("refresh token rejected", zap.Error(err))
		return nil, ErrRefreshTokenInvalid
	}

	user, err := s.userRepo.GetByIDAndRefreshToken(ctx, claims.UserID, presented)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Info("refresh token superseded or unknown", zap.Uint("user_id", claims.UserID))
			return nil, ErrRefreshTokenRevoked
		}
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	// Overwriting the stored value revokes every refresh token issued before
	// this point.
	if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}

	return &AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) GenerateAccessToken(user *domain.User) (string, error) {
	return s.signToken(user, s.cfg.AccessTokenTTL, s.cfg.AccessTokenSecret)
}

func (s *AuthService) GenerateRefreshToken(user *domain.User) (string, error) {
	return s.signToken(user, s.cfg.RefreshTokenTTL, s.cfg.RefreshTokenSecret)
}

func (s *AuthService) signToken(user *domain.User, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			// Unique per issuance: timestamps alone have second granularity,
			// which would let two logins in the same second mint the same
			// token and defeat rotation.
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *AuthService) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.parseToken(tokenString, s.cfg.AccessTokenSecret)
}

func (s *AuthService) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return s.parseToken(tokenString, s.cfg.RefreshTokenSecret)
}

func (s *AuthService) parseToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedSignMethod
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
