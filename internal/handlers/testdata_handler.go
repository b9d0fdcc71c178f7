package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/click-ai/cal.com/internal/fixtures"
	"github.com/click-ai/cal.com/internal/models"
	"github.com/click-ai/cal.com/pkg/utils"
)

// TestDataHandler exposes the fixture factory over HTTP so browser-driven
// end-to-end suites can provision users without database access.
type TestDataHandler struct {
	factory *fixtures.Factory
}

func NewTestDataHandler(factory *fixtures.Factory) *TestDataHandler {
	return &TestDataHandler{
		factory: factory,
	}
}

// createTestUserRequest mirrors the scenario knobs of the factory. The whole
// body is optional; an empty POST creates a fully defaulted user.
type createTestUserRequest struct {
	Username         string                `json:"username"`
	UseExactUsername bool                  `json:"use_exact_username"`
	Email            string                `json:"email"`
	TimeZone         string                `json:"time_zone"`
	Locale           string                `json:"locale"`
	HasTeam          bool                  `json:"has_team"`
	Teammates        int                   `json:"teammates"`
	SchedulingType   models.SchedulingType `json:"scheduling_type"`
	IsOrg            bool                  `json:"is_org"`
	HasSubteam       bool                  `json:"has_subteam"`
	IsUnpublished    bool                  `json:"is_unpublished"`
	SeedRoutingForms bool                  `json:"seed_routing_forms"`
}

// CreateTestUser provisions a test user. A missing or empty body means all
// defaults, matching direct factory invocation with no options.
func (h *TestDataHandler) CreateTestUser(c *gin.Context) {
	var req createTestUserRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequest(c, "invalid request body")
			return
		}
	}

	opts := &fixtures.UserOptions{
		Username:         req.Username,
		UseExactUsername: req.UseExactUsername,
		Email:            req.Email,
		TimeZone:         req.TimeZone,
		Locale:           req.Locale,
	}

	scenario := fixtures.ScenarioOptions{
		HasTeam:          req.HasTeam,
		SchedulingType:   req.SchedulingType,
		IsOrg:            req.IsOrg,
		HasSubteam:       req.HasSubteam,
		IsUnpublished:    req.IsUnpublished,
		SeedRoutingForms: req.SeedRoutingForms,
	}
	for i := 0; i < req.Teammates; i++ {
		scenario.Teammates = append(scenario.Teammates, fixtures.UserOptions{})
	}

	user, err := h.factory.CreateTestUser(c.Request.Context(), opts, scenario)
	if err != nil {
		utils.LogError(c.Request.Context(), "failed to create test user", err)
		utils.InternalServerError(c, "failed to create test user")
		return
	}

	utils.JSONResponse(c, http.StatusOK, user)
}
