package application

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/formflowhq/formflow/internal/domain/user"
	"github.com/formflowhq/formflow/internal/repository"
	"github.com/formflowhq/formflow/pkg/fault"
)

type UserService struct {
	repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{repos: repos}
}

func (s *UserService) Register(input user.RegisterDTO) (*user.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fault.Internal("failed to hash password", err)
	}
	u := &user.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if err := s.repos.User.CreateUser(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fault.Conflict("username %q is taken", input.Username)
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) Profile(userID uint) (*user.User, error) {
	u, err := s.repos.User.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("user %d not found", userID)
		}
		return nil, err
	}
	return &u, nil
}

var ErrInvalidCredentials = errors.New("invalid username or password")

func (s *UserService) Login(input user.LoginDTO) (*user.User, error) {
	u, err := s.repos.User.GetUserByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}
