package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/flexilease/flexilease-backend/internal/domain/entities"
	"github.com/flexilease/flexilease-backend/internal/domain/repositories"
	"github.com/flexilease/flexilease-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	user.ID = model.ID
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) FindByCPF(ctx context.Context, cpf string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("cpf = ?", cpf).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.Where("id = ?", id).Delete(&UserModel{}).Error
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, int64, error) {
	var models []*UserModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&UserModel{})

	if filters.Name != nil {
		query = query.Where("name ILIKE ?", "%"+*filters.Name+"%")
	}
	if filters.CPF != nil {
		query = query.Where("cpf = ?", *filters.CPF)
	}
	if filters.Email != nil {
		query = query.Where("email ILIKE ?", "%"+*filters.Email+"%")
	}
	if filters.Qualified != nil {
		query = query.Where("qualified = ?", *filters.Qualified)
	}
	if filters.UF != nil {
		query = query.Where("uf = ?", *filters.UF)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filters.Page, filters.Limit, 10)
	if err := query.Limit(limit).Offset((page - 1) * limit).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	users, err := r.toEntities(models)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// normalizePage aplica os padrões de paginação compartilhados pelos
// repositórios
func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Name:         user.Name,
		CPF:          user.CPF.String(),
		Birth:        user.Birth,
		Email:        user.Email.String(),
		PasswordHash: user.PasswordHash,
		CEP:          user.CEP,
		Qualified:    string(user.Qualified),
		Patio:        user.Patio,
		Complement:   user.Complement,
		Neighborhood: user.Neighborhood,
		Locality:     user.Locality,
		UF:           user.UF,
		CreatedAt:    user.CreatedAt.Unix(),
		UpdatedAt:    user.UpdatedAt.Unix(),
	}
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	cpf, err := valueobjects.NewCPF(model.CPF)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:           model.ID,
		Name:         model.Name,
		CPF:          cpf,
		Birth:        model.Birth.UTC(),
		Email:        email,
		PasswordHash: model.PasswordHash,
		CEP:          model.CEP,
		Qualified:    entities.Qualification(model.Qualified),
		Patio:        model.Patio,
		Complement:   model.Complement,
		Neighborhood: model.Neighborhood,
		Locality:     model.Locality,
		UF:           model.UF,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
		UpdatedAt:    time.Unix(model.UpdatedAt, 0),
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		user, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}
