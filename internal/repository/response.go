package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/formflowhq/formflow/internal/domain/response"
)

type ResponseRepo interface {
	CreateView(v *response.FormView) error
	CreateResponse(resp *response.Response) error
	ListByForm(formID uint) ([]response.Response, error)
	CountViews(formID uint, from, to time.Time) (int64, error)
	CountResponses(formID uint, from, to time.Time) (int64, error)
	WithTx(tx *gorm.DB) ResponseRepo
}

type DBResponseRepo struct {
	db *gorm.DB
}

func NewResponseRepo(db *gorm.DB) *DBResponseRepo {
	return &DBResponseRepo{db: db}
}

func (r *DBResponseRepo) CreateView(v *response.FormView) error {
	return r.db.Create(v).Error
}

func (r *DBResponseRepo) CreateResponse(resp *response.Response) error {
	return r.db.Create(resp).Error
}

func (r *DBResponseRepo) ListByForm(formID uint) ([]response.Response, error) {
	var responses []response.Response
	err := r.db.Where("form_id = ?", formID).Order("created_at desc").Find(&responses).Error
	return responses, err
}

func (r *DBResponseRepo) CountViews(formID uint, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&response.FormView{}).
		Where("form_id = ? AND created_at >= ? AND created_at < ?", formID, from, to).
		Count(&count).Error
	return count, err
}

func (r *DBResponseRepo) CountResponses(formID uint, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&response.Response{}).
		Where("form_id = ? AND created_at >= ? AND created_at < ?", formID, from, to).
		Count(&count).Error
	return count, err
}

func (r *DBResponseRepo) WithTx(tx *gorm.DB) ResponseRepo {
	return &DBResponseRepo{db: tx}
}
