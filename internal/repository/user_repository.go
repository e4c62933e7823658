package repository

import "github.com/crumpledflowers/vault-guard-cli/internal/model"

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	Create(user *model.User) error
	Save(user *model.User) error
	UpdatePasswordByID(userID uint, hashedPassword string) error
	UsernameExists(username string) (bool, error)
	CountAll() (int64, error)
}
