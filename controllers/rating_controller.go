package controllers

import (
	"net/http"
	"strconv"

	"github.com/akksi/picky/services"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	Ratings *services.RatingService
	Stats   *services.StatsService
	Hub     *services.RealtimeHub
}

func NewRatingController(ratings *services.RatingService, stats *services.StatsService, hub *services.RealtimeHub) *RatingController {
	return &RatingController{Ratings: ratings, Stats: stats, Hub: hub}
}

type RatingInput struct {
	CatID  uint    `json:"catId" binding:"required"`
	FoodID uint    `json:"foodId" binding:"required"`
	Liked  *bool   `json:"liked" binding:"required"`
	Notes  *string `json:"notes"`
}

func (rc *RatingController) GetRatings(c *gin.Context) {
	userID := c.GetUint("userID")

	ratings, err := rc.Ratings.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}

func (rc *RatingController) GetRatingsByCat(c *gin.Context) {
	userID := c.GetUint("userID")
	catID, err := strconv.Atoi(c.Param("catId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ratings, err := rc.Ratings.ListByCat(userID, uint(catID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}

func (rc *RatingController) GetFoodStats(c *gin.Context) {
	userID := c.GetUint("userID")

	stats, err := rc.Stats.FoodStats(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// CreateOrUpdateRating saves the single rating for (cat, food): 201
// when a new row was written, 200 when an existing one was replaced.
func (rc *RatingController) CreateOrUpdateRating(c *gin.Context) {
	userID := c.GetUint("userID")

	var input RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, created, err := rc.Ratings.Upsert(userID, input.CatID, input.FoodID, *input.Liked, input.Notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	rc.Hub.BroadcastChange(userID, "rating.saved", rating)

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"rating": rating})
}

func (rc *RatingController) DeleteRating(c *gin.Context) {
	userID := c.GetUint("userID")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
		return
	}

	if err := rc.Ratings.Delete(userID, uint(id)); err != nil {
		if err == services.ErrRatingNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	rc.Hub.BroadcastChange(userID, "rating.deleted", gin.H{"id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted successfully"})
}
