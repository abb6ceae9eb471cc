package localstore

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	catsKey    = "@cats"
	foodsKey   = "@foods"
	ratingsKey = "@ratings"
)

var ErrNotFound = errors.New("record not found")

// Records keep the field names of the on-device JSON format, so a
// store file written by the mobile app reads back unchanged.

type Cat struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Breed    *string `json:"breed,omitempty"`
	Age      *int    `json:"age,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

type Food struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Type  string `json:"type"` // wet, dry, treat, …
}

type Rating struct {
	ID     string    `json:"id"`
	CatID  string    `json:"catId"`
	FoodID string    `json:"foodId"`
	Liked  bool      `json:"liked"`
	Notes  *string   `json:"notes,omitempty"`
	Date   time.Time `json:"date"`
}

// Cats

func (s *Store) Cats() ([]Cat, error) {
	cats := []Cat{}
	err := s.read(catsKey, &cats)
	return cats, err
}

func (s *Store) Cat(id string) (Cat, error) {
	cats, err := s.Cats()
	if err != nil {
		return Cat{}, err
	}
	for _, c := range cats {
		if c.ID == id {
			return c, nil
		}
	}
	return Cat{}, ErrNotFound
}

func (s *Store) AddCat(cat Cat) (Cat, error) {
	if cat.ID == "" {
		cat.ID = uuid.NewString()
	}
	cats, err := s.Cats()
	if err != nil {
		return Cat{}, err
	}
	cats = append(cats, cat)
	return cat, s.write(catsKey, cats)
}

// UpdateCat replaces the whole record; optional fields left nil in the
// argument come back nil, never the previous value.
func (s *Store) UpdateCat(cat Cat) error {
	cats, err := s.Cats()
	if err != nil {
		return err
	}
	for i := range cats {
		if cats[i].ID == cat.ID {
			cats[i] = cat
			return s.write(catsKey, cats)
		}
	}
	return ErrNotFound
}

// DeleteCat removes the cat and any ratings that reference it, the
// same cascade the server enforces.
func (s *Store) DeleteCat(id string) error {
	cats, err := s.Cats()
	if err != nil {
		return err
	}
	kept := cats[:0]
	for _, c := range cats {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(cats) {
		return ErrNotFound
	}
	if err := s.write(catsKey, kept); err != nil {
		return err
	}
	return s.dropRatings(func(r Rating) bool { return r.CatID == id })
}

// Foods

func (s *Store) Foods() ([]Food, error) {
	foods := []Food{}
	err := s.read(foodsKey, &foods)
	return foods, err
}

func (s *Store) Food(id string) (Food, error) {
	foods, err := s.Foods()
	if err != nil {
		return Food{}, err
	}
	for _, f := range foods {
		if f.ID == id {
			return f, nil
		}
	}
	return Food{}, ErrNotFound
}

func (s *Store) AddFood(food Food) (Food, error) {
	if food.ID == "" {
		food.ID = uuid.NewString()
	}
	foods, err := s.Foods()
	if err != nil {
		return Food{}, err
	}
	foods = append(foods, food)
	return food, s.write(foodsKey, foods)
}

func (s *Store) UpdateFood(food Food) error {
	foods, err := s.Foods()
	if err != nil {
		return err
	}
	for i := range foods {
		if foods[i].ID == food.ID {
			foods[i] = food
			return s.write(foodsKey, foods)
		}
	}
	return ErrNotFound
}

func (s *Store) DeleteFood(id string) error {
	foods, err := s.Foods()
	if err != nil {
		return err
	}
	kept := foods[:0]
	for _, f := range foods {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(foods) {
		return ErrNotFound
	}
	if err := s.write(foodsKey, kept); err != nil {
		return err
	}
	return s.dropRatings(func(r Rating) bool { return r.FoodID == id })
}

// Ratings

func (s *Store) Ratings() ([]Rating, error) {
	ratings := []Rating{}
	err := s.read(ratingsKey, &ratings)
	return ratings, err
}

// SaveRating upserts the rating for (cat, food). The identity is
// derived from the pair, so saving removes any record with the same
// derived id before appending the new one.
func (s *Store) SaveRating(catID, foodID string, liked bool, notes *string) (Rating, error) {
	rating := Rating{
		ID:     catID + "-" + foodID,
		CatID:  catID,
		FoodID: foodID,
		Liked:  liked,
		Notes:  notes,
		Date:   time.Now(),
	}

	ratings, err := s.Ratings()
	if err != nil {
		return Rating{}, err
	}
	kept := ratings[:0]
	for _, r := range ratings {
		if !(r.CatID == catID && r.FoodID == foodID) {
			kept = append(kept, r)
		}
	}
	kept = append(kept, rating)
	return rating, s.write(ratingsKey, kept)
}

func (s *Store) RatingFor(catID, foodID string) (Rating, error) {
	ratings, err := s.Ratings()
	if err != nil {
		return Rating{}, err
	}
	for _, r := range ratings {
		if r.CatID == catID && r.FoodID == foodID {
			return r, nil
		}
	}
	return Rating{}, ErrNotFound
}

func (s *Store) DeleteRating(id string) error {
	ratings, err := s.Ratings()
	if err != nil {
		return err
	}
	kept := ratings[:0]
	for _, r := range ratings {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(ratings) {
		return ErrNotFound
	}
	return s.write(ratingsKey, kept)
}

func (s *Store) dropRatings(match func(Rating) bool) error {
	ratings, err := s.Ratings()
	if err != nil {
		return err
	}
	kept := ratings[:0]
	for _, r := range ratings {
		if !match(r) {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(ratings) {
		return nil
	}
	return s.write(ratingsKey, kept)
}
