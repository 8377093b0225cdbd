package service

import (
	"context"
	"errors"

	"github.com/kerem/fitness-tracker-api/internal/config"
	"github.com/kerem/fitness-tracker-api/internal/domain"
	"github.com/kerem/fitness-tracker-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, cfg *config.Config) *UserService {
	return &UserService{userRepo: userRepo, cfg: cfg}
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateEmail(ctx context.Context, id uint, email string) error {
	if err := s.userRepo.UpdateEmail(ctx, id, email); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

func (s *UserService) UpdatePassword(ctx context.Context, id uint, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, id, string(hashedPassword))
}

type UpdateProfileInput struct {
	Name    string
	Surname string
	Phone   string
	Address string
	City    string
	Country string
	Height  float64
	Weight  float64
}

func (s *UserService) UpdateProfile(ctx context.Context, id uint, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Name = input.Name
	user.Surname = input.Surname
	user.Phone = input.Phone
	user.Address = input.Address
	user.City = input.City
	user.Country = input.Country
	user.Height = input.Height
	user.Weight = input.Weight

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	rows, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserService) ListAll(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}
