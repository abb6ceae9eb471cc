package routes

import (
	"net/http"

	"github.com/akksi/picky/controllers"
	"github.com/akksi/picky/middlewares"
	"github.com/akksi/picky/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, hub *services.RealtimeHub, photos *services.PhotoService) *gin.Engine {
	r := gin.Default()

	authCtrl := controllers.NewAuthController(db)
	catCtrl := controllers.NewCatController(db, hub)
	foodCtrl := controllers.NewFoodController(db, hub)
	ratingCtrl := controllers.NewRatingController(
		services.NewRatingService(db),
		services.NewStatsService(db),
		hub,
	)
	uploadCtrl := controllers.NewUploadController(photos)
	realtimeCtrl := controllers.NewRealtimeController(hub)

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/forgot", authCtrl.ForgotPassword)
		auth.POST("/reset", authCtrl.ResetPassword)
		auth.GET("/profile", middlewares.AuthMiddleware(), authCtrl.GetProfile)
	}

	cats := api.Group("/cats")
	cats.Use(middlewares.AuthMiddleware())
	{
		cats.GET("", catCtrl.GetCats)
		cats.GET("/:id", catCtrl.GetCatByID)
		cats.POST("", catCtrl.CreateCat)
		cats.PUT("/:id", catCtrl.UpdateCat)
		cats.DELETE("/:id", catCtrl.DeleteCat)
	}

	foods := api.Group("/foods")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.GET("", foodCtrl.GetFoods)
		foods.GET("/:id", foodCtrl.GetFoodByID)
		foods.POST("", foodCtrl.CreateFood)
		foods.PUT("/:id", foodCtrl.UpdateFood)
		foods.DELETE("/:id", foodCtrl.DeleteFood)
	}

	ratings := api.Group("/ratings")
	ratings.Use(middlewares.AuthMiddleware())
	{
		ratings.GET("", ratingCtrl.GetRatings)
		ratings.GET("/cat/:catId", ratingCtrl.GetRatingsByCat)
		ratings.GET("/stats", ratingCtrl.GetFoodStats)
		ratings.POST("", ratingCtrl.CreateOrUpdateRating)
		ratings.DELETE("/:id", ratingCtrl.DeleteRating)
	}

	api.POST("/uploads", middlewares.AuthMiddleware(), uploadCtrl.UploadImage)
	api.GET("/ws", middlewares.AuthMiddleware(), realtimeCtrl.ChangesWS)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Picky Cat Food Tracker API is running"})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return r
}
