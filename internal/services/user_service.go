package services

import (
	"context"
	errs "errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/flexilease/flexilease-backend/internal/dateutil"
	"github.com/flexilease/flexilease-backend/internal/domain/entities"
	"github.com/flexilease/flexilease-backend/internal/domain/errors"
	"github.com/flexilease/flexilease-backend/internal/domain/ports"
	"github.com/flexilease/flexilease-backend/internal/domain/repositories"
	"github.com/flexilease/flexilease-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	postal   ports.PostalLookup
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	postal ports.PostalLookup,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		postal:   postal,
		logger:   logger,
	}
}

// RegisterUserInput representa os dados de cadastro de um usuário
type RegisterUserInput struct {
	Name      string
	CPF       string
	Birth     string // dd/mm/aaaa
	Email     string
	Password  string
	CEP       string
	Qualified string
}

// UpdateUserInput representa uma atualização parcial; campos nil
// permanecem como estão
type UpdateUserInput struct {
	Name      *string
	CPF       *string
	Birth     *string
	Email     *string
	Password  *string
	CEP       *string
	Qualified *string
}

// Register cadastra um novo usuário: valida os dados, enriquece o
// endereço pelo CEP e persiste com a senha já com hash
func (s *UserService) Register(ctx context.Context, input RegisterUserInput) (*entities.User, error) {
	s.logger.Info("registering user", "email", input.Email)

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	cpf, err := valueobjects.NewCPF(input.CPF)
	if err != nil {
		return nil, errors.ErrInvalidCPF
	}

	birth, err := dateutil.Parse(input.Birth)
	if err != nil {
		return nil, errors.ErrInvalidDate
	}

	if existing, err := s.userRepo.FindByEmail(ctx, email.String()); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	if existing, err := s.userRepo.FindByCPF(ctx, cpf.String()); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, errors.ErrCPFAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:         input.Name,
		CPF:          cpf,
		Birth:        birth,
		Email:        email,
		PasswordHash: string(hash),
		CEP:          input.CEP,
		Qualified:    entities.Qualification(input.Qualified),
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := s.fillAddress(ctx, user); err != nil {
		return nil, err
	}

	if err := user.Validate(); err != nil {
		return nil, &errors.DomainError{
			Type:    errors.ProblemTypeValidation,
			Message: err.Error(),
			Err:     err,
		}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuários com filtros e paginação
func (s *UserService) ListUsers(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, int64, error) {
	return s.userRepo.List(ctx, filters)
}

// UpdateUser aplica uma atualização parcial: valida de novo o que
// mudou, refaz o hash quando a senha muda e refaz a consulta de CEP
// quando o CEP muda
func (s *UserService) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if input.Name != nil {
		user.Name = *input.Name
	}

	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, errors.ErrInvalidEmail
		}
		if existing, err := s.userRepo.FindByEmail(ctx, email.String()); err != nil {
			return nil, err
		} else if existing != nil && existing.ID != user.ID {
			return nil, errors.ErrEmailAlreadyExists
		}
		user.Email = email
	}

	if input.CPF != nil {
		cpf, err := valueobjects.NewCPF(*input.CPF)
		if err != nil {
			return nil, errors.ErrInvalidCPF
		}
		if existing, err := s.userRepo.FindByCPF(ctx, cpf.String()); err != nil {
			return nil, err
		} else if existing != nil && existing.ID != user.ID {
			return nil, errors.ErrCPFAlreadyExists
		}
		user.CPF = cpf
	}

	if input.Birth != nil {
		birth, err := dateutil.Parse(*input.Birth)
		if err != nil {
			return nil, errors.ErrInvalidDate
		}
		user.Birth = birth
	}

	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if input.CEP != nil && *input.CEP != user.CEP {
		user.CEP = *input.CEP
		if err := s.fillAddress(ctx, user); err != nil {
			return nil, err
		}
	}

	if input.Qualified != nil {
		user.Qualified = entities.Qualification(*input.Qualified)
	}

	if err := user.Validate(); err != nil {
		return nil, &errors.DomainError{
			Type:    errors.ProblemTypeValidation,
			Message: err.Error(),
			Err:     err,
		}
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser remove um usuário por ID. Reservas existentes não são
// afetadas; as referências ficam pendentes.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.ErrUserNotFound
	}

	return s.userRepo.Delete(ctx, id)
}

// fillAddress consulta o CEP e preenche os campos de endereço,
// caindo para "N/A" quando o serviço não retorna o dado
func (s *UserService) fillAddress(ctx context.Context, user *entities.User) error {
	addr, err := s.postal.Lookup(ctx, user.CEP)
	if err != nil {
		if errs.Is(err, errors.ErrCEPNotFound) {
			return errors.ErrCEPNotFound
		}
		return &errors.DomainError{
			Type:    errors.ProblemTypeUpstream,
			Message: err.Error(),
			Err:     err,
		}
	}

	user.Patio = fallback(addr.Patio)
	user.Complement = fallback(addr.Complement)
	user.Neighborhood = fallback(addr.Neighborhood)
	user.Locality = fallback(addr.Locality)
	user.UF = fallback(addr.UF)
	return nil
}

func fallback(v string) string {
	if v == "" {
		return entities.AddressFallback
	}
	return v
}
