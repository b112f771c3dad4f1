package repository

import (
	"gorm.io/gorm"

	"github.com/formflowhq/formflow/internal/domain/form"
)

type FormRepo interface {
	Create(f *form.Form) error
	FindByID(id uint) (form.Form, error)
	FindByIDForUser(id, userID uint) (form.Form, error)
	FindByPublicID(publicID string) (form.Form, error)
	ListByUser(userID uint) ([]form.Form, error)
	Update(f *form.Form) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{db: db}
}

func (r *DBFormRepo) Create(f *form.Form) error {
	return r.db.Create(f).Error
}

func (r *DBFormRepo) FindByID(id uint) (form.Form, error) {
	var f form.Form
	err := r.db.First(&f, id).Error
	return f, err
}

// FindByIDForUser scopes the lookup to the owning user, so one tenant can
// never address another tenant's form by id.
func (r *DBFormRepo) FindByIDForUser(id, userID uint) (form.Form, error) {
	var f form.Form
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&f).Error
	return f, err
}

func (r *DBFormRepo) FindByPublicID(publicID string) (form.Form, error) {
	var f form.Form
	err := r.db.Where("public_id = ?", publicID).First(&f).Error
	return f, err
}

func (r *DBFormRepo) ListByUser(userID uint) ([]form.Form, error) {
	var forms []form.Form
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) Update(f *form.Form) error {
	return r.db.Save(f).Error
}

func (r *DBFormRepo) Delete(id uint) error {
	return r.db.Delete(&form.Form{}, id).Error
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	return &DBFormRepo{db: tx}
}
