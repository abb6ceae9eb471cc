package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akksi/picky/models"
	"github.com/akksi/picky/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "picky.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	err = db.AutoMigrate(&models.User{}, &models.Cat{}, &models.Food{}, &models.Rating{})
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func do(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
}

func TestRateFoodEndToEnd(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db := openTestDB(t)
	r := SetupRouter(db, services.NewRealtimeHub(), nil)

	// register and log in
	w := do(r, http.MethodPost, "/api/auth/register",
		`{"username":"ada","email":"ada@example.com","password":"hunter22"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/api/auth/login",
		`{"email":"ada@example.com","password":"hunter22"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var login struct {
		Token string `json:"token"`
	}
	decode(t, w, &login)
	if login.Token == "" {
		t.Fatalf("login returned no token")
	}

	// create the cat and the food
	w = do(r, http.MethodPost, "/api/cats", `{"name":"Milo"}`, login.Token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create cat: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var catResp struct {
		Cat models.Cat `json:"cat"`
	}
	decode(t, w, &catResp)

	w = do(r, http.MethodPost, "/api/foods",
		`{"name":"Chicken Pate","brand":"Fancy Feast","type":"Wet"}`, login.Token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create food: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var foodResp struct {
		Food models.Food `json:"food"`
	}
	decode(t, w, &foodResp)

	// first rating creates, second replaces
	ratingBody := fmt.Sprintf(`{"catId":%d,"foodId":%d,"liked":true}`, catResp.Cat.ID, foodResp.Food.ID)
	w = do(r, http.MethodPost, "/api/ratings", ratingBody, login.Token)
	if w.Code != http.StatusCreated {
		t.Fatalf("first rating: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	ratingBody = fmt.Sprintf(`{"catId":%d,"foodId":%d,"liked":false}`, catResp.Cat.ID, foodResp.Food.ID)
	w = do(r, http.MethodPost, "/api/ratings", ratingBody, login.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("second rating: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/ratings", "", login.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("list ratings: expected 200, got %d", w.Code)
	}
	var list struct {
		Ratings []models.Rating `json:"ratings"`
	}
	decode(t, w, &list)
	if len(list.Ratings) != 1 {
		t.Fatalf("expected exactly one rating row, got %d", len(list.Ratings))
	}
	if list.Ratings[0].Liked {
		t.Fatalf("second save must win, still liked=true")
	}
}
