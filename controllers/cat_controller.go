package controllers

import (
	"net/http"
	"strconv"

	"github.com/akksi/picky/models"
	"github.com/akksi/picky/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CatController struct {
	DB  *gorm.DB
	Hub *services.RealtimeHub
}

func NewCatController(db *gorm.DB, hub *services.RealtimeHub) *CatController {
	return &CatController{DB: db, Hub: hub}
}

type CatInput struct {
	Name     string  `json:"name" binding:"required"`
	Breed    *string `json:"breed"`
	Age      *int    `json:"age" binding:"omitempty,gte=0"`
	ImageURL *string `json:"image_url"`
}

func (cc *CatController) GetCats(c *gin.Context) {
	userID := c.GetUint("userID")

	cats := []models.Cat{}
	err := cc.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&cats).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cats": cats})
}

func (cc *CatController) GetCatByID(c *gin.Context) {
	userID := c.GetUint("userID")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cat not found"})
		return
	}

	var cat models.Cat
	err = cc.DB.Where("id = ? AND user_id = ?", id, userID).First(&cat).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cat not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cat": cat})
}

func (cc *CatController) CreateCat(c *gin.Context) {
	userID := c.GetUint("userID")

	var input CatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat := models.Cat{
		UserID:   userID,
		Name:     input.Name,
		Breed:    input.Breed,
		Age:      input.Age,
		ImageURL: input.ImageURL,
	}
	if err := cc.DB.Create(&cat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	cc.Hub.BroadcastChange(userID, "cat.created", cat)
	c.JSON(http.StatusCreated, gin.H{"cat": cat})
}

// UpdateCat replaces every mutable field; optional fields missing from
// the body clear to NULL rather than keeping their old value.
func (cc *CatController) UpdateCat(c *gin.Context) {
	userID := c.GetUint("userID")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cat not found"})
		return
	}

	var input CatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var cat models.Cat
	err = cc.DB.Where("id = ? AND user_id = ?", id, userID).First(&cat).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cat not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	cat.Name = input.Name
	cat.Breed = input.Breed
	cat.Age = input.Age
	cat.ImageURL = input.ImageURL
	if err := cc.DB.Save(&cat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	cc.Hub.BroadcastChange(userID, "cat.updated", cat)
	c.JSON(http.StatusOK, gin.H{"cat": cat})
}

func (cc *CatController) DeleteCat(c *gin.Context) {
	userID := c.GetUint("userID")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cat not found"})
		return
	}

	res := cc.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Cat{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cat not found"})
		return
	}

	cc.Hub.BroadcastChange(userID, "cat.deleted", gin.H{"id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Cat deleted successfully"})
}
