package handler

import (
	"github.com/gin-gonic/gin"
)

// Routes bundles the handlers to mount on the gin engine. Dashboard and
// Exports may be nil when the corresponding feature flag is off; their
// routes are then not registered.
type Routes struct {
	Auth      *AuthHandler
	Users     *UserHandler
	Students  *StudentHandler
	Syllabi   *SyllabusHandler
	Batches   *BatchHandler
	Schedules *ScheduleHandler
	Mappings  *MappingHandler
	Overview  *OverviewHandler
	Dashboard *DashboardHandler
	Exports   *ExportHandler
	Guard     gin.HandlerFunc
}

// Register mounts all gateway routes. Everything except login sits behind
// the session guard.
func (rt Routes) Register(r *gin.Engine) {
	r.POST("/auth/login", rt.Auth.Login)

	guarded := r.Group("/", rt.Guard)

	guarded.POST("/auth/logout", rt.Auth.Logout)
	guarded.GET("/auth/me", rt.Auth.Me)

	guarded.GET("/users", rt.Users.List)
	guarded.POST("/users", rt.Users.Create)
	guarded.GET("/users/:id", rt.Users.Get)

	guarded.GET("/students", rt.Students.List)
	guarded.POST("/students", rt.Students.Create)
	guarded.GET("/students/:studentId", rt.Students.Get)
	guarded.PUT("/students/:studentId", rt.Students.Update)
	guarded.DELETE("/students/:studentId", rt.Students.Delete)

	guarded.POST("/students/:studentId/batches", rt.Mappings.Map)
	guarded.GET("/students/batches/:batchId", rt.Mappings.BatchStudents)
	guarded.GET("/students/mappings/:mappingId", rt.Mappings.Get)
	guarded.PUT("/students/mappings/:mappingId", rt.Mappings.Update)
	guarded.DELETE("/students/mappings/:mappingId", rt.Mappings.Delete)

	guarded.GET("/syllabus", rt.Syllabi.List)
	guarded.POST("/syllabus", rt.Syllabi.Create)
	guarded.GET("/syllabus/:id", rt.Syllabi.Get)
	guarded.PUT("/syllabus/:id", rt.Syllabi.Update)
	guarded.DELETE("/syllabus/:id", rt.Syllabi.Delete)

	guarded.GET("/batches", rt.Batches.List)
	guarded.POST("/batches", rt.Batches.Create)
	guarded.GET("/batches/:batchId", rt.Batches.Get)
	guarded.PUT("/batches/:batchId", rt.Batches.Update)
	guarded.DELETE("/batches/:batchId", rt.Batches.Delete)

	guarded.GET("/batches/:batchId/schedule-class", rt.Schedules.List)
	guarded.POST("/batches/:batchId/schedule-class", rt.Schedules.Create)
	guarded.PUT("/batches/:batchId/schedule-class/:scheduleId", rt.Schedules.Update)
	guarded.DELETE("/batches/:batchId/schedule-class/:scheduleId", rt.Schedules.Delete)

	guarded.GET("/batches/:batchId/overview", rt.Overview.Batch)
	guarded.GET("/batches/:batchId/overview/students", rt.Overview.Students)
	guarded.POST("/batches/:batchId/overview/students", rt.Overview.AddStudent)
	guarded.GET("/batches/:batchId/overview/schedule", rt.Overview.Schedule)
	guarded.GET("/batches/:batchId/overview/syllabus", rt.Overview.Syllabus)

	if rt.Dashboard != nil {
		guarded.GET("/dashboard/summary", rt.Dashboard.Summary)
	}
	if rt.Exports != nil {
		guarded.GET("/batches/:batchId/export", rt.Exports.Roster)
	}
}
