package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/journalapp/journal-api/internal/database"
	"github.com/journalapp/journal-api/internal/models"
	"github.com/journalapp/journal-api/internal/repository"
	"github.com/journalapp/journal-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db             *gorm.DB
	userService    *services.UserService
	tagService     *services.TagService
	journalService *services.JournalService
	userHandler    *UserHandler
	tagHandler     *TagHandler
	journalHandler *JournalHandler
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Journal{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	journalRepo := repository.NewJournalRepository(db)

	userService := services.NewUserService(userRepo)
	tagService := services.NewTagService(tagRepo, userRepo)
	journalService := services.NewJournalService(journalRepo, tagRepo, userRepo)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return testEnv{
		db:             db,
		userService:    userService,
		tagService:     tagService,
		journalService: journalService,
		userHandler:    NewUserHandler(userService),
		tagHandler:     NewTagHandler(tagService),
		journalHandler: NewJournalHandler(journalService, services.NewExportService()),
	}
}

// performJSON sends a JSON request through the router and records the response.
func performJSON(t *testing.T, r http.Handler, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// detailOf unwraps the response envelope into target.
func detailOf(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Detail, target))
}

// detailString unwraps a string-valued envelope.
func detailString(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var s string
	detailOf(t, w, &s)
	return s
}
