package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/ASHISH26940/portfolio-api/pkg/db"
	"github.com/ASHISH26940/portfolio-api/pkg/services"
	"github.com/ASHISH26940/portfolio-api/pkg/uploads"
	"github.com/ASHISH26940/portfolio-api/pkg/utils"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// MaxProjectImages caps the images accepted in one create or update request.
const MaxProjectImages = 10

// ProjectRequest is the JSON form of a project create or partial update.
// Multipart requests carry the same fields as form values.
type ProjectRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
	GithubLink   *string   `json:"github_link"`
	LiveLink     *string   `json:"live_link"`
	YoutubeLink  *string   `json:"youtube_link"`
	ImageURLs    *[]string `json:"image_urls"`
}

type projectRules struct {
	Title        string   `json:"title" binding:"required,min=3,max=100"`
	Description  string   `json:"description" binding:"required,min=10"`
	Technologies []string `json:"technologies" binding:"required,min=1,dive,required"`
	GithubLink   string   `json:"github_link" binding:"omitempty,url"`
	LiveLink     string   `json:"live_link" binding:"omitempty,url"`
	YoutubeLink  string   `json:"youtube_link" binding:"omitempty,url"`
}

// apply merges every field but the image list over p and validates the result.
func (req ProjectRequest) apply(p *db.Project) error {
	setString(&p.Title, trimmed(req.Title))
	setString(&p.Description, req.Description)
	if req.Technologies != nil {
		p.Technologies = db.StringList(cleanList(*req.Technologies))
	}
	setString(&p.GithubLink, trimmed(req.GithubLink))
	setString(&p.LiveLink, trimmed(req.LiveLink))
	setString(&p.YoutubeLink, trimmed(req.YoutubeLink))

	return validate(projectRules{
		Title:        p.Title,
		Description:  p.Description,
		Technologies: p.Technologies,
		GithubLink:   p.GithubLink,
		LiveLink:     p.LiveLink,
		YoutubeLink:  p.YoutubeLink,
	})
}

// bindProject reads a JSON or multipart project body. The files are only
// returned for multipart requests.
func bindProject(c *gin.Context) (ProjectRequest, []*multipart.FileHeader, error) {
	var req ProjectRequest
	if !isMultipart(c) {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, nil, utils.NewValidationError(utils.ValidationMessage(err), nil)
		}
		return req, nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return req, nil, utils.NewValidationError("Invalid multipart form", nil)
	}
	req.Title, _ = formString(form, "title")
	req.Description, _ = formString(form, "description")
	req.Technologies, _ = formList(form, "technologies")
	req.GithubLink, _ = formString(form, "github_link")
	req.LiveLink, _ = formString(form, "live_link")
	req.YoutubeLink, _ = formString(form, "youtube_link")
	if kept, ok := formList(form, "existingImages"); ok {
		req.ImageURLs = kept
	} else if kept, ok := formList(form, "image_urls"); ok {
		req.ImageURLs = kept
	}
	return req, form.File["images"], nil
}

func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := services.Remember(h.cache, services.CacheKeyProjects, func() ([]db.Project, error) {
		return h.queries.ListProjects(c.Request.Context())
	})
	if err != nil {
		log.Errorf("ListProjects: %v", err)
		utils.ResponseWithAPIError(c, utils.NewInternalError("Failed to retrieve projects", err))
		return
	}
	respondOK(c, "Projects retrieved successfully", projects)
}

func (h *Handler) GetProject(c *gin.Context) {
	project, ok := h.loadProject(c, "GetProject")
	if !ok {
		return
	}
	respondOK(c, "Project retrieved successfully", project)
}

func (h *Handler) CreateProject(c *gin.Context) {
	req, files, err := bindProject(c)
	if err != nil {
		utils.ResponseWithAPIError(c, err)
		return
	}

	project := &db.Project{Technologies: db.StringList{}, ImageURLs: db.StringList{}}
	if err := req.apply(project); err != nil {
		utils.ResponseWithAPIError(c, err)
		return
	}

	saved, err := h.images.Save(uploads.PrefixProject, files, MaxProjectImages)
	if err != nil {
		utils.ResponseWithAPIError(c, uploadError(err))
		return
	}
	project.ImageURLs = append(project.ImageURLs, saved...)

	created, err := h.queries.CreateProject(c.Request.Context(), project)
	if err != nil {
		h.images.RemoveAll(saved)
		log.Errorf("CreateProject: %v", err)
		utils.ResponseWithAPIError(c, utils.NewInternalError("Failed to create project", err))
		return
	}

	h.cache.Flush()
	utils.ResponseWithSuccess(c, http.StatusCreated, "Project created successfully", created)
}

func (h *Handler) UpdateProject(c *gin.Context) {
	req, files, err := bindProject(c)
	if err != nil {
		utils.ResponseWithAPIError(c, err)
		return
	}

	project, ok := h.loadProject(c, "UpdateProject")
	if !ok {
		return
	}
	previous := append([]string{}, project.ImageURLs...)

	if err := req.apply(project); err != nil {
		utils.ResponseWithAPIError(c, err)
		return
	}

	saved, err := h.images.Save(uploads.PrefixProject, files, MaxProjectImages)
	if err != nil {
		utils.ResponseWithAPIError(c, uploadError(err))
		return
	}

	kept := previous
	if req.ImageURLs != nil {
		kept = keepKnown(*req.ImageURLs, previous)
	}
	project.ImageURLs = append(db.StringList(append([]string{}, kept...)), saved...)

	if err := h.queries.UpdateProject(c.Request.Context(), project); err != nil {
		h.images.RemoveAll(saved)
		storeError(c, "UpdateProject", "Project not found", "Failed to update project", err)
		return
	}

	h.images.RemoveAll(dropped(previous, project.ImageURLs))
	h.cache.Flush()
	respondOK(c, "Project updated successfully", project)
}

func (h *Handler) DeleteProject(c *gin.Context) {
	project, ok := h.loadProject(c, "DeleteProject")
	if !ok {
		return
	}

	if err := h.queries.DeleteProject(c.Request.Context(), project.ID); err != nil {
		storeError(c, "DeleteProject", "Project not found", "Failed to delete project", err)
		return
	}

	h.images.RemoveAll(project.ImageURLs)
	h.cache.Flush()
	respondOK(c, "Project deleted successfully", nil)
}

// DeleteProjectImage removes one image, addressed by its position in image_urls.
func (h *Handler) DeleteProjectImage(c *gin.Context) {
	project, ok := h.loadProject(c, "DeleteProjectImage")
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("imageIndex"))
	if err != nil || index < 0 || index >= len(project.ImageURLs) {
		utils.ResponseWithAPIError(c, utils.NewValidationError("Invalid image index", nil))
		return
	}

	removed := project.ImageURLs[index]
	remaining := make(db.StringList, 0, len(project.ImageURLs)-1)
	remaining = append(remaining, project.ImageURLs[:index]...)
	project.ImageURLs = append(remaining, project.ImageURLs[index+1:]...)

	if err := h.queries.UpdateProject(c.Request.Context(), project); err != nil {
		storeError(c, "DeleteProjectImage", "Project not found", "Failed to delete image", err)
		return
	}

	h.images.Remove(removed)
	h.cache.Flush()
	respondOK(c, "Image deleted successfully", project)
}

// loadProject resolves :id or writes the error response itself.
func (h *Handler) loadProject(c *gin.Context, fn string) (*db.Project, bool) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ResponseWithAPIError(c, err)
		return nil, false
	}

	project, err := h.queries.FindProjectByID(c.Request.Context(), id)
	if err != nil {
		storeError(c, fn, "Project not found", "Failed to retrieve project", err)
		return nil, false
	}
	if project == nil {
		utils.ResponseWithAPIError(c, utils.NewNotFoundError("Project not found"))
		return nil, false
	}
	return project, true
}

// keepKnown filters the client's kept list down to images the project already
// has, in the client's order.
func keepKnown(requested, current []string) []string {
	known := make(map[string]bool, len(current))
	for _, u := range current {
		known[u] = true
	}
	kept := make([]string, 0, len(requested))
	for _, u := range requested {
		if known[u] {
			kept = append(kept, u)
			delete(known, u)
		}
	}
	return kept
}

// dropped lists the entries of before that are absent from after.
func dropped(before, after []string) []string {
	still := make(map[string]bool, len(after))
	for _, u := range after {
		still[u] = true
	}
	var out []string
	for _, u := range before {
		if !still[u] {
			out = append(out, u)
		}
	}
	return out
}
