package handlers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ASHISH26940/portfolio-api/pkg/db"
	"github.com/ASHISH26940/portfolio-api/pkg/uploads"
	"github.com/ASHISH26940/portfolio-api/pkg/utils"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AboutResponse is the shape the frontend reads; bio mirrors content.
type AboutResponse struct {
	ID          int64          `json:"id"`
	FullName    string         `json:"fullName"`
	Title       string         `json:"title"`
	Specialties db.StringList  `json:"specialties"`
	Bio         string         `json:"bio"`
	Content     string         `json:"content"`
	Skills      db.SkillLevels `json:"skills"`
	PhotoURL    string         `json:"photo_url"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func newAboutResponse(a *db.About) AboutResponse {
	return AboutResponse{
		ID:          a.ID,
		FullName:    a.FullName,
		Title:       a.Title,
		Specialties: a.Specialties,
		Bio:         a.Content,
		Content:     a.Content,
		Skills:      a.Skills,
		PhotoURL:    a.PhotoURL,
		UpdatedAt:   a.UpdatedAt,
	}
}

// AboutRequest accepts specialties and skills either as JSON values or as
// strings (comma separated list, JSON text).
type AboutRequest struct {
	FullName    *string         `json:"fullName"`
	Title       *string         `json:"title"`
	Specialties json.RawMessage `json:"specialties"`
	Content     *string         `json:"content"`
	Bio         *string         `json:"bio"`
	Skills      json.RawMessage `json:"skills"`
}

type aboutPatch struct {
	fullName    *string
	title       *string
	specialties *[]string
	content     *string
	skills      *db.SkillLevels
}

func (p aboutPatch) apply(a *db.About) {
	if p.fullName != nil && *p.fullName != "" {
		a.FullName = *p.fullName
	}
	if p.title != nil && *p.title != "" {
		a.Title = *p.title
	}
	if p.specialties != nil {
		a.Specialties = db.StringList(*p.specialties)
	}
	setString(&a.Content, p.content)
	if p.skills != nil {
		a.Skills = *p.skills
	}
}

func (h *Handler) GetAbout(c *gin.Context) {
	about, err := h.queries.GetOrCreateAbout(c.Request.Context())
	if err != nil {
		log.Errorf("GetAbout: %v", err)
		utils.ResponseWithAPIError(c, utils.NewInternalError("Failed to retrieve about section", err))
		return
	}
	respondOK(c, "About section retrieved successfully", newAboutResponse(about))
}

func (h *Handler) UpdateAbout(c *gin.Context) {
	var (
		patch aboutPatch
		err   error
		photo []string
	)

	if isMultipart(c) {
		form, ferr := c.MultipartForm()
		if ferr != nil {
			bindError(c, "UpdateAbout", ferr)
			return
		}
		if patch, err = aboutPatchFromForm(form.Value); err != nil {
			utils.ResponseWithAPIError(c, err)
			return
		}
		if files := form.File["photo"]; len(files) > 0 {
			if photo, err = h.images.Save(uploads.PrefixPhoto, files, 1); err != nil {
				utils.ResponseWithAPIError(c, uploadError(err))
				return
			}
		}
	} else {
		var req AboutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, "UpdateAbout", err)
			return
		}
		if patch, err = aboutPatchFromJSON(req); err != nil {
			utils.ResponseWithAPIError(c, err)
			return
		}
	}

	about, err := h.queries.GetOrCreateAbout(c.Request.Context())
	if err != nil {
		h.images.RemoveAll(photo)
		log.Errorf("UpdateAbout: %v", err)
		utils.ResponseWithAPIError(c, utils.NewInternalError("Failed to update about section", err))
		return
	}

	patch.apply(about)
	if len(photo) > 0 {
		// The previous photo file is left on disk.
		about.PhotoURL = photo[0]
	}

	if err := h.queries.SaveAbout(c.Request.Context(), about); err != nil {
		h.images.RemoveAll(photo)
		log.Errorf("UpdateAbout: %v", err)
		utils.ResponseWithAPIError(c, utils.NewInternalError("Failed to update about section", err))
		return
	}

	respondOK(c, "About section updated successfully", newAboutResponse(about))
}

func aboutPatchFromForm(values map[string][]string) (aboutPatch, error) {
	var patch aboutPatch
	get := func(key string) *string {
		if v, ok := values[key]; ok && len(v) > 0 {
			s := v[0]
			return &s
		}
		return nil
	}

	patch.fullName = trimmed(get("fullName"))
	patch.title = trimmed(get("title"))
	patch.content = get("content")
	if patch.content == nil {
		patch.content = get("bio")
	}

	if list, ok := values["specialties[]"]; ok {
		specialties := cleanList(list)
		patch.specialties = &specialties
	} else if raw := get("specialties"); raw != nil {
		specialties := parseSpecialties(*raw)
		patch.specialties = &specialties
	}

	if raw := get("skills"); raw != nil {
		skills, err := parseSkills([]byte(*raw))
		if err != nil {
			return patch, err
		}
		patch.skills = &skills
	}
	return patch, nil
}

func aboutPatchFromJSON(req AboutRequest) (aboutPatch, error) {
	patch := aboutPatch{
		fullName: trimmed(req.FullName),
		title:    trimmed(req.Title),
		content:  req.Content,
	}
	if patch.content == nil {
		patch.content = req.Bio
	}

	if raw := unquoteRaw(req.Specialties); raw != nil {
		var specialties []string
		if err := json.Unmarshal(raw, &specialties); err != nil {
			specialties = parseSpecialties(string(raw))
		} else {
			specialties = cleanList(specialties)
		}
		patch.specialties = &specialties
	}

	if raw := unquoteRaw(req.Skills); raw != nil {
		skills, err := parseSkills(raw)
		if err != nil {
			return patch, err
		}
		patch.skills = &skills
	}
	return patch, nil
}

// unquoteRaw returns nil for an absent or null value and the inner text when
// the value is a JSON string.
func unquoteRaw(raw json.RawMessage) []byte {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return []byte(s)
		}
	}
	return raw
}

// parseSpecialties accepts a JSON array or a comma separated list.
func parseSpecialties(raw string) []string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "[") {
		var list []string
		if err := json.Unmarshal([]byte(raw), &list); err == nil {
			return cleanList(list)
		}
	}
	return cleanList(strings.Split(raw, ","))
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func parseSkills(raw []byte) (db.SkillLevels, error) {
	skills := db.SkillLevels{}
	if strings.TrimSpace(string(raw)) == "" {
		return skills, nil
	}
	if err := json.Unmarshal(raw, &skills); err != nil {
		return nil, utils.NewValidationError("skills must be a JSON array of {name, level}", nil)
	}
	for i := range skills {
		skills[i].Name = strings.TrimSpace(skills[i].Name)
		if err := validate(skills[i]); err != nil {
			return nil, utils.NewValidationError(fmt.Sprintf("skills[%d]: %s", i, err.Error()), nil)
		}
	}
	return skills, nil
}

func uploadError(err error) error {
	if uploads.IsValidationError(err) {
		return utils.NewValidationError(err.Error(), nil)
	}
	return utils.NewInternalError("Failed to store uploaded files", err)
}
