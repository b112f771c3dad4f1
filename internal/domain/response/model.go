package response

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FormView records one respondent page load, written before the form is
// rendered. View counts feed the analytics window deltas.
type FormView struct {
	gorm.Model
	FormID uint `json:"form_id" gorm:"index"`
}

// Response is one completed submission: the accumulated answer map keyed by
// question id.
type Response struct {
	gorm.Model
	FormID     uint              `json:"form_id" gorm:"index"`
	FormViewID uint              `json:"form_view_id"`
	Answers    datatypes.JSONMap `json:"answers" gorm:"type:jsonb"`
}
