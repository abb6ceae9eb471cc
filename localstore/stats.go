package localstore

import (
	"math"
	"sort"
)

// FoodStat mirrors the catalogue screen's leaderboard rows.
type FoodStat struct {
	Food       Food `json:"food"`
	Likes      int  `json:"likes"`
	Dislikes   int  `json:"dislikes"`
	Total      int  `json:"total"`
	Percentage int  `json:"percentage"`
	HasRatings bool `json:"hasRatings"`
}

// FoodStats counts likes and dislikes per food by linear scan. Foods
// with no ratings still appear, flagged so the UI can show "no ratings
// yet" instead of 0% liked. Sorted by total, then likes, descending.
func (s *Store) FoodStats() ([]FoodStat, error) {
	foods, err := s.Foods()
	if err != nil {
		return nil, err
	}
	ratings, err := s.Ratings()
	if err != nil {
		return nil, err
	}

	stats := make([]FoodStat, 0, len(foods))
	for _, f := range foods {
		st := FoodStat{Food: f}
		for _, r := range ratings {
			if r.FoodID != f.ID {
				continue
			}
			if r.Liked {
				st.Likes++
			} else {
				st.Dislikes++
			}
		}
		st.Total = st.Likes + st.Dislikes
		st.HasRatings = st.Total > 0
		if st.Total > 0 {
			st.Percentage = int(math.Round(float64(st.Likes) / float64(st.Total) * 100))
		}
		stats = append(stats, st)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Total != stats[j].Total {
			return stats[i].Total > stats[j].Total
		}
		return stats[i].Likes > stats[j].Likes
	})

	return stats, nil
}
