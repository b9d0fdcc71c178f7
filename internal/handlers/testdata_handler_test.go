package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/click-ai/cal.com/internal/config"
	"github.com/click-ai/cal.com/internal/database"
	"github.com/click-ai/cal.com/internal/fixtures"
	"github.com/click-ai/cal.com/internal/models"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	factory := fixtures.NewFactory(db, config.SeedConfig{})
	handler := NewTestDataHandler(factory)

	router := gin.New()
	router.POST("/api/testdata/users", handler.CreateTestUser)
	return router, db
}

func TestCreateTestUserEndpointEmptyBody(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/testdata/users", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Regexp(t, `^user-69-\d+$`, user.Username)
	assert.Equal(t, "Europe/London", user.TimeZone)
	assert.Len(t, user.EventTypes, 4)
	assert.Len(t, user.Workflows, 2)
}

func TestCreateTestUserEndpointTeamScenario(t *testing.T) {
	router, db := setupTestRouter(t)

	body, err := json.Marshal(map[string]interface{}{
		"has_team":  true,
		"teammates": 1,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/testdata/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))

	var memberships []models.Membership
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&memberships).Error)
	require.Len(t, memberships, 1)
	assert.Equal(t, models.MembershipRoleOwner, memberships[0].Role)

	var teamMembers int64
	require.NoError(t, db.Model(&models.Membership{}).
		Where("team_id = ?", memberships[0].TeamID).
		Count(&teamMembers).Error)
	assert.Equal(t, int64(2), teamMembers)
}

func TestCreateTestUserEndpointInvalidBody(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/testdata/users", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
