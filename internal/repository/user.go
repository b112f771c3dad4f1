package repository

import (
	"gorm.io/gorm"

	"github.com/formflowhq/formflow/internal/domain/user"
)

type UserRepo interface {
	CreateUser(u *user.User) error
	GetUserByID(id uint) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	return u, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	return &DBUserRepo{db: tx}
}
