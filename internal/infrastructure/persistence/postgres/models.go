package postgres

import "time"

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string    `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	CPF          string    `gorm:"type:varchar(14);uniqueIndex;not null"`
	Birth        time.Time `gorm:"type:date;not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CEP          string    `gorm:"type:varchar(9);not null"`
	Qualified    string    `gorm:"type:varchar(3);not null"`
	Patio        string    `gorm:"type:varchar(255)"`
	Complement   string    `gorm:"type:varchar(255)"`
	Neighborhood string    `gorm:"type:varchar(255);not null"`
	Locality     string    `gorm:"type:varchar(255);not null"`
	UF           string    `gorm:"type:varchar(50);not null"`
	CreatedAt    int64     `gorm:"autoCreateTime"`
	UpdatedAt    int64     `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// CarModel é o model GORM para carros
type CarModel struct {
	ID                 string           `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Model              string           `gorm:"type:varchar(255);not null;index"`
	Color              string           `gorm:"type:varchar(100);not null"`
	Year               int              `gorm:"not null"`
	ValuePerDay        float64          `gorm:"not null"`
	NumberOfPassengers int              `gorm:"not null"`
	Accessories        []AccessoryModel `gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
	CreatedAt          int64            `gorm:"autoCreateTime"`
	UpdatedAt          int64            `gorm:"autoUpdateTime"`
}

func (CarModel) TableName() string {
	return "cars"
}

// AccessoryModel é o model GORM para acessórios, sub-entidade
// exclusiva de um carro. O id vem do chamador (upsert) ou é gerado
// pelo serviço na criação do carro.
type AccessoryModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	CarID       string `gorm:"type:uuid;not null;index"`
	Description string `gorm:"type:varchar(255);not null"`
}

func (AccessoryModel) TableName() string {
	return "accessories"
}

// ReservationModel é o model GORM para reservas. UserID e CarID são
// referências não-proprietárias, sem constraint de FK: apagar usuário
// ou carro não cascateia para reservas.
type ReservationModel struct {
	ID         string    `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     string    `gorm:"type:uuid;not null;index"`
	CarID      string    `gorm:"type:uuid;not null;index"`
	StartDate  time.Time `gorm:"type:date;not null;index"`
	EndDate    time.Time `gorm:"type:date;not null;index"`
	FinalValue float64   `gorm:"not null"`
	CreatedAt  int64     `gorm:"autoCreateTime"`
	UpdatedAt  int64     `gorm:"autoUpdateTime"`
}

func (ReservationModel) TableName() string {
	return "reservations"
}
