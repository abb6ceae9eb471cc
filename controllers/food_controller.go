package controllers

import (
	"net/http"
	"strconv"

	"github.com/akksi/picky/models"
	"github.com/akksi/picky/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FoodController struct {
	DB  *gorm.DB
	Hub *services.RealtimeHub
}

func NewFoodController(db *gorm.DB, hub *services.RealtimeHub) *FoodController {
	return &FoodController{DB: db, Hub: hub}
}

type FoodInput struct {
	Name  string `json:"name" binding:"required"`
	Brand string `json:"brand" binding:"required"`
	Type  string `json:"type"`
}

func (fc *FoodController) GetFoods(c *gin.Context) {
	userID := c.GetUint("userID")

	foods := []models.Food{}
	err := fc.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&foods).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"foods": foods})
}

func (fc *FoodController) GetFoodByID(c *gin.Context) {
	userID := c.GetUint("userID")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		return
	}

	var food models.Food
	err = fc.DB.Where("id = ? AND user_id = ?", id, userID).First(&food).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"food": food})
}

func (fc *FoodController) CreateFood(c *gin.Context) {
	userID := c.GetUint("userID")

	var input FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food := models.Food{
		UserID: userID,
		Name:   input.Name,
		Brand:  input.Brand,
		Type:   input.Type,
	}
	if err := fc.DB.Create(&food).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	fc.Hub.BroadcastChange(userID, "food.created", food)
	c.JSON(http.StatusCreated, gin.H{"food": food})
}

func (fc *FoodController) UpdateFood(c *gin.Context) {
	userID := c.GetUint("userID")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		return
	}

	var input FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var food models.Food
	err = fc.DB.Where("id = ? AND user_id = ?", id, userID).First(&food).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	food.Name = input.Name
	food.Brand = input.Brand
	food.Type = input.Type
	if err := fc.DB.Save(&food).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	fc.Hub.BroadcastChange(userID, "food.updated", food)
	c.JSON(http.StatusOK, gin.H{"food": food})
}

func (fc *FoodController) DeleteFood(c *gin.Context) {
	userID := c.GetUint("userID")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		return
	}

	res := fc.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Food{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		return
	}

	fc.Hub.BroadcastChange(userID, "food.deleted", gin.H{"id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Food deleted successfully"})
}
