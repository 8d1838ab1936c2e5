// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/cache"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/config"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/handlers"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/middleware"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/services"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Services
	notificationService := services.NewNotificationService(cfg)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Warn("S3 storage unavailable, falling back to local storage")
		storageService = services.NewLocalStorageService(cfg)
	}
	redisCache := cache.New(cfg.Redis)

	authService := services.NewAuthService(db, cfg, notificationService)
	partnerService := services.NewPartnerService(db)
	customerService := services.NewCustomerService(db)
	applicationService := services.NewApplicationService(db, notificationService)
	licenseService := services.NewLicenseService(db)
	userService := services.NewUserService(db)
	courseService := services.NewCourseService(db)
	adminService := services.NewAdminService(db)
	acronisService := services.NewAcronisService(cfg, redisCache)
	parasutService := services.NewParasutService(cfg)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	partnerHandler := handlers.NewPartnerHandler(partnerService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, storageService)
	licenseHandler := handlers.NewLicenseHandler(licenseService)
	userHandler := handlers.NewUserHandler(userService)
	courseHandler := handlers.NewCourseHandler(courseService)
	adminHandler := handlers.NewAdminHandler(adminService)
	acronisHandler := handlers.NewAcronisHandler(acronisService)
	parasutHandler := handlers.NewParasutHandler(parasutService)

	utils.SetJWTSecret(cfg.Session.SecretKey)

	renewWindow := time.Duration(cfg.Session.RenewHours) * time.Hour
	lifetime := time.Duration(cfg.Session.LifetimeHours) * time.Hour
	authRequired := middleware.AuthRequired(db, renewWindow, lifetime)
	adminRequired := middleware.AdminRequired()

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Portal.BaseURL))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/signin", middleware.SigninRateLimit(), authHandler.SignIn)
		auth.GET("/verify", authHandler.Verify)
		auth.POST("/signout", authRequired, authHandler.SignOut)
		auth.GET("/me", authRequired, authHandler.Me)
	}

	// The onboarding form is the only unauthenticated mutation.
	api.POST("/application", middleware.UploadRateLimit(), applicationHandler.Create)

	// Authenticated routes
	partner := api.Group("/partner", authRequired)
	{
		partner.GET("", partnerHandler.List)
		partner.GET("/:acronisId", partnerHandler.Get)
		partner.POST("", adminRequired, partnerHandler.Create)
		partner.PUT("/:acronisId", adminRequired, partnerHandler.Update)
	}

	customer := api.Group("/customer", authRequired)
	{
		customer.GET("", customerHandler.List)
		customer.GET("/:acronisId", customerHandler.Get)
		customer.POST("", customerHandler.Create)
		customer.PUT("/:acronisId", customerHandler.Update)
	}

	application := api.Group("/application", authRequired, adminRequired)
	{
		application.GET("", applicationHandler.List)
		application.GET("/:id", applicationHandler.Get)
		application.PUT("/:id", applicationHandler.Update)
	}

	license := api.Group("/license", authRequired)
	{
		license.GET("", licenseHandler.List)
		license.PUT("/assign", licenseHandler.Assign)
		license.GET("/:id", licenseHandler.Get)
		license.PUT("/:id/:partial", licenseHandler.SetPartial)
		license.POST("", adminRequired, licenseHandler.Create)
	}

	acronis := api.Group("/acronis", authRequired)
	{
		tenants := acronis.Group("/tenants/:id", middleware.TenantAccessRequired(db))
		{
			tenants.GET("/info", acronisHandler.GetTenantInfo)
			tenants.GET("/users", acronisHandler.GetTenantUsers)
			tenants.GET("/contacts", acronisHandler.GetTenantContacts)
			tenants.GET("/locations", acronisHandler.GetTenantLocations)
			tenants.GET("/usages", acronisHandler.GetTenantUsages)
			tenants.GET("/children", acronisHandler.GetTenantChildren)
			tenants.GET("/alerts", acronisHandler.GetTenantAlerts)
		}
		acronis.GET("/users/checkLogin", acronisHandler.CheckLogin)
	}

	parasut := api.Group("/parasut", authRequired)
	{
		parasut.GET("/contacts/:id", parasutHandler.GetContact)
		parasut.GET("/salesInvoices", parasutHandler.ListSalesInvoices)
		parasut.GET("/salesInvoices/:id", parasutHandler.GetSalesInvoice)
	}

	user := api.Group("/user", authRequired, adminRequired)
	{
		user.GET("", userHandler.List)
		user.GET("/:id", userHandler.Get)
		user.POST("", userHandler.Create)
		user.PUT("/:id", userHandler.Update)
	}

	course := api.Group("/course", authRequired)
	{
		course.GET("", courseHandler.List)
		course.GET("/:id", courseHandler.Get)
		course.POST("", adminRequired, courseHandler.CreateCourse)
		course.PUT("/:id", adminRequired, courseHandler.UpdateCourse)
		course.POST("/chapter", adminRequired, courseHandler.CreateChapter)
		course.PUT("/chapter/:id", adminRequired, courseHandler.UpdateChapter)
		course.POST("/lesson", adminRequired, courseHandler.CreateLesson)
		course.PUT("/lesson/:id", adminRequired, courseHandler.UpdateLesson)
	}

	admin := api.Group("/admin", authRequired, adminRequired)
	{
		admin.GET("/dashboard/stats", adminHandler.GetDashboardStats)
		admin.PUT("/application/:id/approve", applicationHandler.Approve)
		admin.POST("/application/:id/partner", applicationHandler.ConvertToPartner)
		admin.PUT("/license/assign", licenseHandler.AssignFirst)
	}

	return r
}
