package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User     UserRepo
	Form     FormRepo
	Response ResponseRepo

	db *gorm.DB
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		User:     NewUserRepo(db),
		Form:     NewFormRepo(db),
		Response: NewResponseRepo(db),
		db:       db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:     r.User.WithTx(tx),
		Form:     r.Form.WithTx(tx),
		Response: r.Response.WithTx(tx),
		db:       tx,
	}
}

// ExecTx runs fn inside one transaction. Without a database handle (mocked
// repos in unit tests) it runs fn against the container as-is.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
