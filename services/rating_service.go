package services

import (
	"errors"

	"github.com/akksi/picky/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRatingNotFound = errors.New("rating not found")

type RatingService struct {
	db *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{db: db}
}

// Upsert writes the rating for (user, cat, food) in a single statement.
// The unique index on the triple makes INSERT … ON CONFLICT DO UPDATE
// atomic, so two concurrent saves for the same pair can never produce a
// duplicate row. The second return value reports whether a new row was
// created.
func (s *RatingService) Upsert(userID, catID, foodID uint, liked bool, notes *string) (*models.Rating, bool, error) {
	rating := models.Rating{
		UserID: userID,
		CatID:  catID,
		FoodID: foodID,
		Liked:  liked,
		Notes:  notes,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "cat_id"}, {Name: "food_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"liked", "notes", "updated_at"}),
	}, clause.Returning{}).Create(&rating).Error
	if err != nil {
		return nil, false, err
	}

	// A fresh insert sets both timestamps to the same instant; an
	// update leaves created_at behind.
	created := rating.CreatedAt.Equal(rating.UpdatedAt)
	return &rating, created, nil
}

func (s *RatingService) List(userID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&ratings).Error
	return ratings, err
}

func (s *RatingService) ListByCat(userID, catID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	err := s.db.
		Where("cat_id = ? AND user_id = ?", catID, userID).
		Find(&ratings).Error
	return ratings, err
}

func (s *RatingService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Rating{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRatingNotFound
	}
	return nil
}
