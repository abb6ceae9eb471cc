package services

import (
	"testing"

	"github.com/akksi/picky/models"
)

func TestFinishStatPercentage(t *testing.T) {
	cases := []struct {
		likes, total int64
		want         int
	}{
		{3, 4, 75},
		{1, 3, 33},
		{2, 3, 67},
		{4, 4, 100},
		{0, 2, 0},
		{0, 0, 0},
	}

	for _, tc := range cases {
		st := FoodStat{Likes: tc.likes, TotalRatings: tc.total}
		FinishStat(&st)
		if st.Percentage != tc.want {
			t.Fatalf("likes=%d total=%d: expected %d%%, got %d%%", tc.likes, tc.total, tc.want, st.Percentage)
		}
	}
}

func TestFoodStatsQueryCountsAndSorts(t *testing.T) {
	db := openTestDB(t)
	svc := NewStatsService(db)

	rated := models.Food{UserID: 1, Name: "Chicken Pate", Brand: "Fancy Feast", Type: "Wet"}
	unrated := models.Food{UserID: 1, Name: "Salmon Bits", Brand: "Whiskas", Type: "Dry"}
	foreign := models.Food{UserID: 2, Name: "Beef Chunks", Brand: "Purina", Type: "Wet"}
	for _, f := range []*models.Food{&rated, &unrated, &foreign} {
		if err := db.Create(f).Error; err != nil {
			t.Fatalf("seed food: %v", err)
		}
	}

	// 3 likes, 1 dislike for the rated food
	for catID := uint(1); catID <= 3; catID++ {
		r := models.Rating{UserID: 1, CatID: catID, FoodID: rated.ID, Liked: true}
		if err := db.Create(&r).Error; err != nil {
			t.Fatalf("seed rating: %v", err)
		}
	}
	dislike := models.Rating{UserID: 1, CatID: 4, FoodID: rated.ID, Liked: false}
	if err := db.Create(&dislike).Error; err != nil {
		t.Fatalf("seed rating: %v", err)
	}

	stats, err := svc.FoodStats(1)
	if err != nil {
		t.Fatalf("food stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 rows for user 1, got %d", len(stats))
	}
	if stats[0].ID != rated.ID || stats[0].TotalRatings != 4 || stats[0].Likes != 3 || stats[0].Dislikes != 1 {
		t.Fatalf("wrong leader row: %+v", stats[0])
	}
	if stats[0].Percentage != 75 || !stats[0].HasRatings {
		t.Fatalf("expected 75%% rated, got %+v", stats[0])
	}
	if stats[1].ID != unrated.ID || stats[1].HasRatings || stats[1].Percentage != 0 {
		t.Fatalf("unrated food must sort last with zero percentage: %+v", stats[1])
	}
}

func TestFinishStatFlagsUnrated(t *testing.T) {
	rated := FoodStat{Likes: 1, TotalRatings: 1}
	FinishStat(&rated)
	if !rated.HasRatings {
		t.Fatalf("rated food must be flagged")
	}

	unrated := FoodStat{}
	FinishStat(&unrated)
	if unrated.HasRatings {
		t.Fatalf("food with no ratings must not be flagged as rated")
	}
	if unrated.Percentage != 0 {
		t.Fatalf("unrated food percentage must be 0, got %d", unrated.Percentage)
	}
}
