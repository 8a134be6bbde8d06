// Package userrepo persists staff accounts.
package userrepo

import (
	"bakery/internal/core/domain/model/identity"
	"bakery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting users.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	FirstName    string    `gorm:"type:varchar(255);not null"`
	LastName     string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         int       `gorm:"type:smallint;not null"`
	Locked       bool      `gorm:"not null;default:false"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *identity.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Raw(),
		Email:        u.Email(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		PasswordHash: u.PasswordHash(),
		Role:         int(u.Role()),
		Locked:       u.Locked(),
	}
}

// ToDomain converts a database DTO to a user entity.
func ToDomain(dto UserDTO) (*identity.User, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}

	return identity.RestoreUser(
		id,
		dto.Email,
		dto.FirstName,
		dto.LastName,
		dto.PasswordHash,
		identity.Role(dto.Role),
		dto.Locked,
	)
}
