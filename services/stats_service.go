package services

import (
	"math"

	"gorm.io/gorm"
)

// FoodStat is one row of the like/dislike leaderboard.
type FoodStat struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Brand        string `json:"brand"`
	Type         string `json:"type"`
	TotalRatings int64  `json:"total_ratings"`
	Likes        int64  `json:"likes"`
	Dislikes     int64  `json:"dislikes"`
	Percentage   int    `json:"percentage"`
	HasRatings   bool   `json:"has_ratings"`
}

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// FoodStats joins the owner's foods to their ratings. Foods without
// ratings still appear, flagged so the client can render "no ratings
// yet" instead of 0% liked.
func (s *StatsService) FoodStats(userID uint) ([]FoodStat, error) {
	var stats []FoodStat
	err := s.db.Raw(`
		SELECT
			f.id,
			f.name,
			f.brand,
			f.type,
			COUNT(r.id) AS total_ratings,
			COUNT(CASE WHEN r.liked = true THEN 1 END) AS likes,
			COUNT(CASE WHEN r.liked = false THEN 1 END) AS dislikes
		FROM foods f
		LEFT JOIN ratings r ON f.id = r.food_id
		WHERE f.user_id = ?
		GROUP BY f.id, f.name, f.brand, f.type
		ORDER BY total_ratings DESC, likes DESC`,
		userID,
	).Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	for i := range stats {
		FinishStat(&stats[i])
	}
	return stats, nil
}

// FinishStat derives the percentage and the has-ratings flag from the
// raw counts.
func FinishStat(st *FoodStat) {
	st.HasRatings = st.TotalRatings > 0
	if st.TotalRatings > 0 {
		st.Percentage = int(math.Round(float64(st.Likes) / float64(st.TotalRatings) * 100))
	} else {
		st.Percentage = 0
	}
}
