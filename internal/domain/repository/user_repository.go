package repository

import "github.com/jhoicas/consola-admin/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	UpdatePasswordHash(id int64, hash string) error
}
