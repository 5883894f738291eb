package server

import "github.com/gin-gonic/gin"

// SetupRoutes - REST-поверхность бэкенда, с которой работает ядро
// (list/create/update/delete) плюс выгрузка и справочник клиентов.
func SetupRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")

	api.GET("/routines", h.ListRoutines)
	api.POST("/routines", h.CreateRoutine)
	api.GET("/routines/:id", h.GetRoutine)
	api.PUT("/routines/:id", h.UpdateRoutine)
	api.DELETE("/routines/:id", h.DeleteRoutine)
	api.GET("/routines/:id/export", h.ExportRoutine)

	api.GET("/members", h.ListMembers)
	api.POST("/members", h.CreateMember)
	api.GET("/members/:id", h.GetMember)
}
