package models

import "time"

// One rating per (user, cat, food); the unique index backs the
// ON CONFLICT upsert in services.RatingService. Ratings are dropped by
// the database when their cat or food goes away.
type Rating struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:ux_ratings_user_cat_food;not null"`
	CatID     uint      `json:"cat_id" gorm:"uniqueIndex:ux_ratings_user_cat_food;not null"`
	FoodID    uint      `json:"food_id" gorm:"uniqueIndex:ux_ratings_user_cat_food;not null"`
	Liked     bool      `json:"liked"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Cat  Cat  `json:"-" gorm:"foreignKey:CatID;constraint:OnDelete:CASCADE"`
	Food Food `json:"-" gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE"`
}
