package handlers

import (
	"net/http"
	"strings"

	"github.com/ASHISH26940/portfolio-api/pkg/db"
	"github.com/ASHISH26940/portfolio-api/pkg/services"
	"github.com/ASHISH26940/portfolio-api/pkg/utils"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ExperienceRequest serves create and partial update. endDate may be null to clear it.
type ExperienceRequest struct {
	Title       *string        `json:"title"`
	Company     *string        `json:"company"`
	Location    *string        `json:"location"`
	StartDate   *string        `json:"startDate"`
	EndDate     nullableString `json:"endDate"`
	Current     *bool          `json:"current"`
	Description *string        `json:"description"`
}

type experienceRules struct {
	Title   string `json:"title" binding:"required,max=200"`
	Company string `json:"company" binding:"required,max=200"`
}

// apply merges req over e and validates the result.
func (req ExperienceRequest) apply(e *db.Experience) error {
	setString(&e.Title, trimmed(req.Title))
	setString(&e.Company, trimmed(req.Company))
	setString(&e.Location, req.Location)
	setString(&e.Description, req.Description)
	if req.Current != nil {
		e.Current = *req.Current
	}

	if err := validate(experienceRules{Title: e.Title, Company: e.Company}); err != nil {
		return err
	}

	if req.StartDate != nil {
		start, err := parseDate("startDate", *req.StartDate)
		if err != nil {
			return err
		}
		e.StartDate = start
	}
	if e.StartDate.IsZero() {
		return utils.NewValidationError("startDate is required", nil)
	}

	if req.EndDate.Set {
		e.EndDate = nil
		if req.EndDate.Value != nil && strings.TrimSpace(*req.EndDate.Value) != "" {
			end, err := parseDate("endDate", *req.EndDate.Value)
			if err != nil {
				return err
			}
			e.EndDate = &end
		}
	}
	if e.Current {
		e.EndDate = nil
	}
	return nil
}

func (h *Handler) ListExperiences(c *gin.Context) {
	experiences, err := services.Remember(h.cache, services.CacheKeyExperiences, func() ([]db.Experience, error) {
		return h.queries.ListExperiences(c.Request.Context())
	})
	if err != nil {
		log.Errorf("ListExperiences: %v", err)
		utils.ResponseWithAPIError(c, utils.NewInternalError("Failed to retrieve experiences", err))
		return
	}
	respondOK(c, "Experiences retrieved successfully", experiences)
}

func (h *Handler) GetExperience(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ResponseWithAPIError(c, err)
		return
	}

	experience, err := h.queries.FindExperienceByID(c.Request.Context(), id)
	if err != nil {
		storeError(c, "GetExperience", "Experience not found", "Failed to retrieve experience", err)
		return
	}
	if experience == nil {
		utils.ResponseWithAPIError(c, utils.NewNotFoundError("Experience not found"))
		return
	}
	respondOK(c, "Experience retrieved successfully", experience)
}

func (h *Handler) CreateExperience(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "CreateExperience", err)
		return
	}

	experience := &db.Experience{}
	if err := req.apply(experience); err != nil {
		utils.ResponseWithAPIError(c, err)
		return
	}

	created, err := h.queries.CreateExperience(c.Request.Context(), experience)
	if err != nil {
		log.Errorf("CreateExperience: %v", err)
		utils.ResponseWithAPIError(c, utils.NewInternalError("Failed to create experience", err))
		return
	}
	h.cache.Flush()
	utils.ResponseWithSuccess(c, http.StatusCreated, "Experience created successfully", created)
}

func (h *Handler) UpdateExperience(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ResponseWithAPIError(c, err)
		return
	}

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "UpdateExperience", err)
		return
	}

	experience, err := h.queries.FindExperienceByID(c.Request.Context(), id)
	if err != nil {
		storeError(c, "UpdateExperience", "Experience not found", "Failed to update experience", err)
		return
	}
	if experience == nil {
		utils.ResponseWithAPIError(c, utils.NewNotFoundError("Experience not found"))
		return
	}

	if err := req.apply(experience); err != nil {
		utils.ResponseWithAPIError(c, err)
		return
	}

	if err := h.queries.UpdateExperience(c.Request.Context(), experience); err != nil {
		storeError(c, "UpdateExperience", "Experience not found", "Failed to update experience", err)
		return
	}
	h.cache.Flush()
	respondOK(c, "Experience updated successfully", experience)
}

func (h *Handler) DeleteExperience(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ResponseWithAPIError(c, err)
		return
	}

	if err := h.queries.DeleteExperience(c.Request.Context(), id); err != nil {
		storeError(c, "DeleteExperience", "Experience not found", "Failed to delete experience", err)
		return
	}
	h.cache.Flush()
	respondOK(c, "Experience deleted successfully", nil)
}
