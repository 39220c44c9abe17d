package v1

import (
	"net/http"
	"strings"

	"talent-marketplace-backend/internal/delivery/http/response"
	"talent-marketplace-backend/internal/domain"
	"talent-marketplace-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type TalentHandler struct {
	talentUC      domain.TalentUsecase
	interactionUC domain.InteractionUsecase
	recommendUC   domain.RecommendationUsecase
}

func NewTalentHandler(r *gin.RouterGroup, talentUC domain.TalentUsecase, interactionUC domain.InteractionUsecase, recommendUC domain.RecommendationUsecase) {
	handler := &TalentHandler{
		talentUC:      talentUC,
		interactionUC: interactionUC,
		recommendUC:   recommendUC,
	}

	talents := r.Group("/talents")
	{
		talents.GET("", handler.Search)
		talents.GET("/top", handler.GetTop)
		talents.GET("/saved", handler.GetSaved)
		talents.GET("/recommended", handler.GetRecommended)
		talents.GET("/:id", handler.GetByID)
		talents.POST("/:id/save", handler.Save)
		talents.POST("/:id/upvote", handler.ToggleUpvote)
	}
}

// bindSearchQuery parses the query string into a SearchQuery. A
// non-numeric limit is rejected here, before any store access.
func bindSearchQuery(c *gin.Context) (*domain.SearchQuery, error) {
	var query domain.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return nil, apperror.UnprocessableEntity("Invalid search parameters: " + err.Error())
	}

	// Accept skills both repeated (?skills=a&skills=b) and
	// comma-separated (?skills=a,b).
	if len(query.Skills) == 1 && strings.Contains(query.Skills[0], ",") {
		parts := strings.Split(query.Skills[0], ",")
		query.Skills = query.Skills[:0]
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				query.Skills = append(query.Skills, p)
			}
		}
	}

	return &query, nil
}

// callerRecruiterID returns the caller's id when they are a recruiter,
// otherwise "". Talent results are only decorated for recruiters.
func callerRecruiterID(c *gin.Context) string {
	if c.GetString(string(domain.KeyUserRole)) == domain.RoleRecruiter {
		return c.GetString(string(domain.KeyUserID))
	}
	return ""
}

// Search godoc
// @Summary      Search talents
// @Description  Keyword/skill search over approved talents with keyset pagination
// @Tags         talents
// @Produce      json
// @Param        q          query  string  false  "Free-text query"
// @Param        skills     query  string  false  "Comma-separated skill list"
// @Param        experience query  string  false  "entry | intermediate | expert"
// @Param        state      query  string  false  "State substring"
// @Param        country    query  string  false  "Country substring"
// @Param        sort       query  string  false  "recent | upvotes | experience"
// @Param        limit      query  int     false  "Page size (1-100, default 10)"
// @Param        cursor     query  string  false  "Opaque pagination cursor"
// @Param        direction  query  string  false  "next | prev"
// @Success      200  {object}  response.Response{data=domain.TalentPage}
// @Failure      422  {object}  response.Response
// @Router       /talents [get]
// @Security     BearerAuth
func (h *TalentHandler) Search(c *gin.Context) {
	query, err := bindSearchQuery(c)
	if err != nil {
		c.Error(err)
		return
	}

	page, err := h.talentUC.Search(c.Request.Context(), query, callerRecruiterID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Talents fetched successfully", page)
}

// GetSaved godoc
// @Summary      Search saved talents
// @Description  Same filters and pagination as search, restricted to the caller's saved talents
// @Tags         talents
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.TalentPage}
// @Failure      403  {object}  response.Response
// @Router       /talents/saved [get]
// @Security     BearerAuth
func (h *TalentHandler) GetSaved(c *gin.Context) {
	recruiterID := callerRecruiterID(c)
	if recruiterID == "" {
		c.Error(apperror.Forbidden("Only recruiters can view saved talents"))
		return
	}

	query, err := bindSearchQuery(c)
	if err != nil {
		c.Error(err)
		return
	}

	page, err := h.talentUC.GetSaved(c.Request.Context(), recruiterID, query)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Saved talents fetched successfully", page)
}

// GetRecommended godoc
// @Summary      Recommended talents
// @Description  Top unsaved talents ranked against the recruiter's stated needs
// @Tags         talents
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.TalentCard}
// @Failure      403  {object}  response.Response
// @Router       /talents/recommended [get]
// @Security     BearerAuth
func (h *TalentHandler) GetRecommended(c *gin.Context) {
	recruiterID := callerRecruiterID(c)
	if recruiterID == "" {
		c.Error(apperror.Forbidden("Only recruiters can view recommendations"))
		return
	}

	talents, err := h.recommendUC.Recommend(c.Request.Context(), recruiterID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recommended talents fetched successfully", talents)
}

// GetTop godoc
// @Summary      Top talents
// @Description  Talents ranked by engagement counters
// @Tags         talents
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.TalentCard}
// @Router       /talents/top [get]
// @Security     BearerAuth
func (h *TalentHandler) GetTop(c *gin.Context) {
	talents, err := h.talentUC.GetTop(c.Request.Context(), 10)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Top talents fetched successfully", talents)
}

// GetByID godoc
// @Summary      Get talent by id
// @Tags         talents
// @Produce      json
// @Param        id  path  string  true  "Talent user id"
// @Success      200  {object}  response.Response{data=domain.TalentDetail}
// @Failure      404  {object}  response.Response
// @Router       /talents/{id} [get]
// @Security     BearerAuth
func (h *TalentHandler) GetByID(c *gin.Context) {
	detail, err := h.talentUC.GetByID(c.Request.Context(), c.Param("id"), callerRecruiterID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Talent fetched successfully", detail)
}

// Save godoc
// @Summary      Save a talent
// @Description  Bookmark a talent for the calling recruiter; saving twice is a no-op
// @Tags         talents
// @Produce      json
// @Param        id  path  string  true  "Talent user id"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /talents/{id}/save [post]
// @Security     BearerAuth
func (h *TalentHandler) Save(c *gin.Context) {
	talentID := c.Param("id")
	recruiterID := c.GetString(string(domain.KeyUserID))

	if err := h.interactionUC.SaveTalent(c.Request.Context(), talentID, recruiterID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Talent saved successfully", nil)
}

// ToggleUpvote godoc
// @Summary      Toggle an upvote
// @Description  Upvotes the talent, or removes the upvote when one exists
// @Tags         talents
// @Produce      json
// @Param        id  path  string  true  "Talent user id"
// @Success      200  {object}  response.Response
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /talents/{id}/upvote [post]
// @Security     BearerAuth
func (h *TalentHandler) ToggleUpvote(c *gin.Context) {
	talentID := c.Param("id")
	recruiterID := c.GetString(string(domain.KeyUserID))

	action, err := h.interactionUC.ToggleUpvote(c.Request.Context(), talentID, recruiterID)
	if err != nil {
		c.Error(err)
		return
	}

	status := http.StatusOK
	if action == domain.UpvoteApplied {
		status = http.StatusCreated
	}
	response.Success(c, status, "Talent "+action+" successfully", nil)
}
