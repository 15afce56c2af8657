package router

import (
	"net/http"

	"mocar/config"
	"mocar/internal/handler"
	"mocar/internal/middleware"
	"mocar/internal/repository"
	"mocar/internal/service"
	"mocar/pkg/mailer"
	"mocar/pkg/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, store storage.Storage, mail mailer.Mailer) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Repositories
	carRepo := repository.NewVehicleRepository(db, "cars")
	bikeRepo := repository.NewVehicleRepository(db, "bikes")
	cityRepo := repository.NewPlaceRepository(db, "cities")
	locationRepo := repository.NewPlaceRepository(db, "locations")
	galleryRepo := repository.NewGalleryRepository(db)
	heroRepo := repository.NewHeroRepository(db)
	aboutRepo := repository.NewAboutRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	resetRepo := repository.NewPasswordResetRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, adminRepo, resetRepo, mail)

	// Handlers
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(authSvc)
	carHandler := handler.NewVehicleHandler(carRepo)
	bikeHandler := handler.NewVehicleHandler(bikeRepo)
	cityHandler := handler.NewPlaceHandler(cityRepo, "City")
	locationHandler := handler.NewPlaceHandler(locationRepo, "Location")
	galleryHandler := handler.NewGalleryHandler(galleryRepo)
	heroHandler := handler.NewHeroHandler(heroRepo)
	aboutHandler := handler.NewAboutHandler(aboutRepo)
	contactHandler := handler.NewContactHandler(messageRepo, mail, cfg.Admin.Email)
	uploadHandler := handler.NewUploadHandler(store)

	adminMw := middleware.AdminRequired(&cfg.JWT)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "MoCar backend is running")
	})
	if disk, ok := store.(*storage.DiskStorage); ok {
		r.Static("/uploads", disk.Dir())
	}

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/forgot-password", authHandler.ForgotPassword)
			authGroup.POST("/reset-password", authHandler.ResetPassword)
			authGroup.POST("/change-username", adminMw, authHandler.ChangeUsername)
		}

		api.GET("/cars", carHandler.List)
		api.POST("/cars", adminMw, carHandler.Create)
		api.PUT("/cars/:id", adminMw, carHandler.Update)
		api.DELETE("/cars/:id", adminMw, carHandler.Delete)

		api.GET("/bikes", bikeHandler.List)
		api.POST("/bikes", adminMw, bikeHandler.Create)
		api.PUT("/bikes/:id", adminMw, bikeHandler.Update)
		api.DELETE("/bikes/:id", adminMw, bikeHandler.Delete)

		api.GET("/cities", cityHandler.List)
		api.POST("/cities", adminMw, cityHandler.Create)
		api.DELETE("/cities/:name", adminMw, cityHandler.Delete)

		api.GET("/locations", locationHandler.List)
		api.POST("/locations", adminMw, locationHandler.Create)
		api.DELETE("/locations/:name", adminMw, locationHandler.Delete)

		api.GET("/gallery", galleryHandler.List)
		api.POST("/gallery", adminMw, galleryHandler.Add)
		api.DELETE("/gallery", adminMw, galleryHandler.Delete)

		api.GET("/hero", heroHandler.List)
		api.POST("/hero", adminMw, heroHandler.Add)
		api.DELETE("/hero/:id", adminMw, heroHandler.Delete)

		api.GET("/about/image", aboutHandler.Get)
		api.POST("/about/image", adminMw, aboutHandler.Set)
		api.DELETE("/about/image", adminMw, aboutHandler.Delete)

		api.POST("/contact", contactHandler.Submit)
		api.GET("/messages", adminMw, contactHandler.List)
		api.DELETE("/messages/:id", adminMw, contactHandler.Delete)

		api.POST("/upload", adminMw, uploadHandler.Upload)
	}

	return r
}
