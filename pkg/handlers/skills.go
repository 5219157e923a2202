package handlers

import (
	"net/http"

	"github.com/ASHISH26940/portfolio-api/pkg/db"
	"github.com/ASHISH26940/portfolio-api/pkg/services"
	"github.com/ASHISH26940/portfolio-api/pkg/utils"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type SkillRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Level    *int    `json:"level"`
	Order    *int    `json:"order"`
}

type skillRules struct {
	Name     string `json:"name" binding:"required,max=100"`
	Category string `json:"category" binding:"required,max=100"`
	Level    int    `json:"level" binding:"min=0,max=100"`
}

func (req SkillRequest) apply(s *db.Skill) error {
	setString(&s.Name, trimmed(req.Name))
	setString(&s.Category, trimmed(req.Category))
	if req.Level != nil {
		s.Level = *req.Level
	}
	if req.Order != nil {
		s.Order = *req.Order
	}
	return validate(skillRules{Name: s.Name, Category: s.Category, Level: s.Level})
}

func (h *Handler) ListSkills(c *gin.Context) {
	skills, err := services.Remember(h.cache, services.CacheKeySkills, func() ([]db.Skill, error) {
		return h.queries.ListSkills(c.Request.Context())
	})
	if err != nil {
		log.Errorf("ListSkills: %v", err)
		utils.ResponseWithAPIError(c, utils.NewInternalError("Failed to retrieve skills", err))
		return
	}
	respondOK(c, "Skills retrieved successfully", skills)
}

func (h *Handler) ListSkillCategories(c *gin.Context) {
	categories, err := services.Remember(h.cache, services.CacheKeySkillCategories, func() ([]string, error) {
		return h.queries.SkillCategories(c.Request.Context())
	})
	if err != nil {
		log.Errorf("ListSkillCategories: %v", err)
		utils.ResponseWithAPIError(c, utils.NewInternalError("Failed to retrieve skill categories", err))
		return
	}
	respondOK(c, "Skill categories retrieved successfully", categories)
}

func (h *Handler) GetSkill(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ResponseWithAPIError(c, err)
		return
	}

	skill, err := h.queries.FindSkillByID(c.Request.Context(), id)
	if err != nil {
		storeError(c, "GetSkill", "Skill not found", "Failed to retrieve skill", err)
		return
	}
	if skill == nil {
		utils.ResponseWithAPIError(c, utils.NewNotFoundError("Skill not found"))
		return
	}
	respondOK(c, "Skill retrieved successfully", skill)
}

func (h *Handler) CreateSkill(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "CreateSkill", err)
		return
	}

	skill := &db.Skill{Level: db.DefaultSkillLevel, Order: db.DefaultSkillOrder}
	if err := req.apply(skill); err != nil {
		utils.ResponseWithAPIError(c, err)
		return
	}

	created, err := h.queries.CreateSkill(c.Request.Context(), skill)
	if err != nil {
		log.Errorf("CreateSkill: %v", err)
		utils.ResponseWithAPIError(c, utils.NewInternalError("Failed to create skill", err))
		return
	}
	h.cache.Flush()
	utils.ResponseWithSuccess(c, http.StatusCreated, "Skill created successfully", created)
}

func (h *Handler) UpdateSkill(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ResponseWithAPIError(c, err)
		return
	}

	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "UpdateSkill", err)
		return
	}

	skill, err := h.queries.FindSkillByID(c.Request.Context(), id)
	if err != nil {
		storeError(c, "UpdateSkill", "Skill not found", "Failed to update skill", err)
		return
	}
	if skill == nil {
		utils.ResponseWithAPIError(c, utils.NewNotFoundError("Skill not found"))
		return
	}

	if err := req.apply(skill); err != nil {
		utils.ResponseWithAPIError(c, err)
		return
	}

	if err := h.queries.UpdateSkill(c.Request.Context(), skill); err != nil {
		storeError(c, "UpdateSkill", "Skill not found", "Failed to update skill", err)
		return
	}
	h.cache.Flush()
	respondOK(c, "Skill updated successfully", skill)
}

func (h *Handler) DeleteSkill(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ResponseWithAPIError(c, err)
		return
	}

	if err := h.queries.DeleteSkill(c.Request.Context(), id); err != nil {
		storeError(c, "DeleteSkill", "Skill not found", "Failed to delete skill", err)
		return
	}
	h.cache.Flush()
	respondOK(c, "Skill deleted successfully", nil)
}
