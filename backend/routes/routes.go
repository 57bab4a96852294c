package routes

import (
	"coursehub/backend/config"
	"coursehub/backend/controllers"
	"coursehub/backend/middleware"
	"coursehub/backend/store"
	"coursehub/backend/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	users := store.NewUserStore(db)
	courses := store.NewCourseStore(db)
	enrollments := store.NewEnrollmentStore(db)

	authRequired := middleware.AuthMiddleware(cfg)
	adminOnly := middleware.AdminMiddleware(users)

	// Auth routes
	authController := controllers.NewAuthController(users, cfg)
	auth := app.Group("/api/auth")
	auth.Post("/signup", validators.Signup(), authController.Signup)
	auth.Post("/login", validators.Login(), authController.Login)
	auth.Post("/logout", authRequired, authController.Logout)
	auth.Get("/me", authRequired, authController.Me)

	// Course catalog (read-only)
	coursesController := controllers.NewCoursesController(courses)
	courseGroup := app.Group("/api/courses")
	courseGroup.Get("/", validators.Pagination(), coursesController.ListCourses)
	courseGroup.Get("/:id", coursesController.GetCourse)

	// Enrollment routes
	enrollmentController := controllers.NewEnrollmentController(enrollments, courses, users)
	enrollmentGroup := app.Group("/api/enrollments", authRequired)
	enrollmentGroup.Post("/", validators.Enroll(), enrollmentController.Enroll)
	enrollmentGroup.Get("/me", validators.Pagination(), enrollmentController.MyEnrollments)
	enrollmentGroup.Get("/course/:courseId", adminOnly, validators.Pagination(), enrollmentController.CourseEnrollments)
	enrollmentGroup.Get("/stats/all", adminOnly, enrollmentController.Stats)
	enrollmentGroup.Get("/:id", enrollmentController.GetEnrollment)
	enrollmentGroup.Put("/:id/progress", validators.UpdateProgress(), enrollmentController.UpdateProgress)
	enrollmentGroup.Delete("/:id", enrollmentController.Unenroll)

	// Admin user management
	userController := controllers.NewUserController(users)
	userGroup := app.Group("/api/users", authRequired, adminOnly)
	userGroup.Get("/", validators.Pagination(), userController.ListUsers)
	userGroup.Get("/:id", userController.GetUser)
	userGroup.Delete("/:id", userController.DeleteUser)
}
