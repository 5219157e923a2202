package handlers

import (
	"github.com/ASHISH26940/portfolio-api/pkg/db"
	"github.com/ASHISH26940/portfolio-api/pkg/utils"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type ContactInfoRequest struct {
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Linkedin  *string `json:"linkedin"`
	Github    *string `json:"github"`
	Twitter   *string `json:"twitter"`
	Facebook  *string `json:"facebook"`
	Instagram *string `json:"instagram"`
}

// contactInfoRules validates the merged card.
type contactInfoRules struct {
	Email     string `json:"email" binding:"omitempty,email"`
	Linkedin  string `json:"linkedin" binding:"omitempty,url"`
	Github    string `json:"github" binding:"omitempty,url"`
	Twitter   string `json:"twitter" binding:"omitempty,url"`
	Facebook  string `json:"facebook" binding:"omitempty,url"`
	Instagram string `json:"instagram" binding:"omitempty,url"`
}

func (h *Handler) GetContactInfo(c *gin.Context) {
	info, err := h.queries.GetOrCreateContactInfo(c.Request.Context())
	if err != nil {
		log.Errorf("GetContactInfo: %v", err)
		utils.ResponseWithAPIError(c, utils.NewInternalError("Failed to retrieve contact information", err))
		return
	}
	respondOK(c, "Contact information retrieved successfully", info)
}

func (h *Handler) UpdateContactInfo(c *gin.Context) {
	var req ContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "UpdateContactInfo", err)
		return
	}

	info, err := h.queries.GetOrCreateContactInfo(c.Request.Context())
	if err != nil {
		log.Errorf("UpdateContactInfo: %v", err)
		utils.ResponseWithAPIError(c, utils.NewInternalError("Failed to update contact information", err))
		return
	}

	merged := *info
	setString(&merged.Email, trimmed(req.Email))
	setString(&merged.Phone, req.Phone)
	setString(&merged.Address, req.Address)
	setString(&merged.Linkedin, trimmed(req.Linkedin))
	setString(&merged.Github, trimmed(req.Github))
	setString(&merged.Twitter, trimmed(req.Twitter))
	setString(&merged.Facebook, trimmed(req.Facebook))
	setString(&merged.Instagram, trimmed(req.Instagram))

	if err := validate(contactRulesFor(&merged)); err != nil {
		utils.ResponseWithAPIError(c, err)
		return
	}

	if err := h.queries.SaveContactInfo(c.Request.Context(), &merged); err != nil {
		log.Errorf("UpdateContactInfo: %v", err)
		utils.ResponseWithAPIError(c, utils.NewInternalError("Failed to update contact information", err))
		return
	}
	respondOK(c, "Contact information updated successfully", merged)
}

func contactRulesFor(info *db.ContactInfo) contactInfoRules {
	return contactInfoRules{
		Email:     info.Email,
		Linkedin:  info.Linkedin,
		Github:    info.Github,
		Twitter:   info.Twitter,
		Facebook:  info.Facebook,
		Instagram: info.Instagram,
	}
}
