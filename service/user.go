package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"sistema_eventos/model"
	"sistema_eventos/repository"
)

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.UserResponse, error)
	GetAll(ctx context.Context) ([]model.UserResponse, error)
	Create(ctx context.Context, req model.UserCreateRequest) (*model.UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, req model.UserUpdateRequest) (*model.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	resp := userToResponse(user)
	return &resp, nil
}

func (s *userService) GetAll(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	resps := make([]model.UserResponse, 0, len(users))
	for i := range users {
		resps = append(resps, userToResponse(&users[i]))
	}
	return resps, nil
}

func (s *userService) Create(ctx context.Context, req model.UserCreateRequest) (*model.UserResponse, error) {
	birthDate, err := validateUserFields(req.Name, req.Email, req.Password, req.BirthDate)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hash),
		Phone:     req.Phone,
		BirthDate: birthDate,
		IsActive:  req.IsActive,
	}

	if err := s.repo.Add(ctx, user); err != nil {
		return nil, err
	}

	resp := userToResponse(user)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req model.UserUpdateRequest) (*model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	birthDate, err := validateUserFields(req.Name, req.Email, req.Password, req.BirthDate)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Password = string(hash)
	user.Phone = req.Phone
	user.BirthDate = birthDate
	user.IsActive = req.IsActive

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	resp := userToResponse(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func validateUserFields(name, email, password string, birthDate *string) (*time.Time, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalidArgument("name", "Name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, invalidArgument("email", "Email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, invalidArgument("email", "Invalid email format")
	}
	if strings.TrimSpace(password) == "" || len(password) < 6 {
		return nil, invalidArgument("password", "Password must be at least 6 characters long")
	}
	if birthDate == nil {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *birthDate)
	if err != nil {
		return nil, invalidArgument("birthDate", "Data de nascimento inválida, use o formato 2006-01-02")
	}
	if parsed.After(time.Now()) {
		return nil, invalidArgument("birthDate", "Birth date cannot be in the future")
	}
	return &parsed, nil
}

func userToResponse(user *model.User) model.UserResponse {
	var birthDate *string
	if user.BirthDate != nil {
		s := user.BirthDate.Format(dateLayout)
		birthDate = &s
	}
	return model.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		BirthDate: birthDate,
		IsActive:  user.IsActive,
	}
}
