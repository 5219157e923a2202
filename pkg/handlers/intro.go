package handlers

import (
	"github.com/ASHISH26940/portfolio-api/pkg/utils"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type IntroRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Subtitle    *string `json:"subtitle" binding:"omitempty,max=500"`
	Description *string `json:"description"`
	ButtonText  *string `json:"button_text" binding:"omitempty,max=100"`
	ButtonLink  *string `json:"button_link" binding:"omitempty,max=500"`
}

func (h *Handler) GetIntro(c *gin.Context) {
	intro, err := h.queries.GetOrCreateIntro(c.Request.Context())
	if err != nil {
		log.Errorf("GetIntro: %v", err)
		utils.ResponseWithAPIError(c, utils.NewInternalError("Failed to retrieve intro", err))
		return
	}
	respondOK(c, "Intro retrieved successfully", intro)
}

func (h *Handler) UpdateIntro(c *gin.Context) {
	var req IntroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "UpdateIntro", err)
		return
	}

	intro, err := h.queries.GetOrCreateIntro(c.Request.Context())
	if err != nil {
		log.Errorf("UpdateIntro: %v", err)
		utils.ResponseWithAPIError(c, utils.NewInternalError("Failed to update intro", err))
		return
	}

	setString(&intro.Title, req.Title)
	setString(&intro.Subtitle, req.Subtitle)
	setString(&intro.Description, req.Description)
	setString(&intro.ButtonText, req.ButtonText)
	setString(&intro.ButtonLink, trimmed(req.ButtonLink))

	if err := h.queries.SaveIntro(c.Request.Context(), intro); err != nil {
		log.Errorf("UpdateIntro: %v", err)
		utils.ResponseWithAPIError(c, utils.NewInternalError("Failed to update intro", err))
		return
	}
	respondOK(c, "Intro updated successfully", intro)
}
