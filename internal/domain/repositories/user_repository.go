package repositories

import (
	"context"

	"github.com/flexilease/flexilease-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByCPF(ctx context.Context, cpf string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters UserFilters) ([]*entities.User, int64, error)
}

// UserFilters contém os filtros permitidos na listagem de usuários.
// Campos nil não filtram; strings fazem busca case-insensitive por
// substring, exceto CPF/Qualified/UF que são comparações exatas.
type UserFilters struct {
	Name      *string
	CPF       *string
	Email     *string
	Qualified *string
	UF        *string
	Page      int // Página (começa em 1)
	Limit     int // Itens por página
}
