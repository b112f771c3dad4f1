package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/formflowhq/formflow/internal/api/handlers"
	"github.com/formflowhq/formflow/internal/api/middleware"
	"github.com/formflowhq/formflow/internal/application"
	"github.com/formflowhq/formflow/internal/repository"
	"github.com/formflowhq/formflow/internal/session"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, sessions session.Store) {
	repos := repository.New(db)
	services := application.New(repos, sessions)
	h := handlers.New(services)

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	// Public respondent surface, keyed by opaque form link.
	r.GET("/f/:publicId", h.Respond.Start)
	r.POST("/f/:publicId/sessions", h.Respond.Start)
	r.POST("/sessions/:sid/next", h.Respond.Next)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/me", h.User.Me)
		auth.GET("/ws/forms/:id/responses", h.WS.StreamResponses)

		forms := auth.Group("/forms")
		{
			forms.GET("", h.Form.GetForms)
			forms.POST("", h.Form.CreateForm)
			forms.GET("/:id", h.Form.GetFormByID)
			forms.PUT("/:id", h.Form.UpdateForm)
			forms.DELETE("/:id", h.Form.DeleteForm)

			forms.POST("/:id/questions", h.Form.AddQuestion)
			forms.PUT("/:id/questions/:qid", h.Form.EditQuestion)
			forms.DELETE("/:id/questions/:qid", h.Form.DeleteQuestion)

			forms.POST("/:id/publish", h.Form.Publish)
			forms.POST("/:id/unpublish", h.Form.Unpublish)

			forms.GET("/:id/flow", h.Flow.GetGraph)
			forms.PUT("/:id/flow/nodes/:nodeId/position", h.Flow.MoveNode)
			forms.POST("/:id/flow/edges", h.Flow.InsertOnEdge)
			forms.POST("/:id/flow/preview", h.Flow.Preview)

			forms.PUT("/:id/questions/:qid/logic", h.Flow.UpdateLogic)
			forms.GET("/:id/questions/:qid/conditions", h.Flow.GetConditionMap)
			forms.PUT("/:id/questions/:qid/conditions", h.Flow.SaveConditionMap)

			forms.GET("/:id/responses", h.Respond.Responses)
			forms.GET("/:id/analytics", h.Respond.Analytics)
		}
	}
}
