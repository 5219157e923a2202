package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ASHISH26940/portfolio-api/pkg/db/queries"
	"github.com/ASHISH26940/portfolio-api/pkg/services"
	"github.com/ASHISH26940/portfolio-api/pkg/uploads"
	"github.com/ASHISH26940/portfolio-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	log "github.com/sirupsen/logrus"
)

// Handler carries the collaborators every endpoint needs.
type Handler struct {
	queries  *queries.Queries
	auth     *services.AuthService
	images   *uploads.ImageStore
	notifier services.Notifier
	cache    *services.ContentCache
}

func NewHandler(
	q *queries.Queries,
	auth *services.AuthService,
	images *uploads.ImageStore,
	notifier services.Notifier,
	cache *services.ContentCache,
) *Handler {
	if notifier == nil {
		notifier = services.NopNotifier{}
	}
	return &Handler{queries: q, auth: auth, images: images, notifier: notifier, cache: cache}
}

func parseID(c *gin.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, utils.NewValidationError("Invalid "+param, nil)
	}
	return id, nil
}

// bindError answers a failed ShouldBind* with a 400 naming the first problem.
func bindError(c *gin.Context, fn string, err error) {
	log.Debugf("%s: Invalid request body: %v", fn, err)
	utils.ResponseWithAPIError(c, utils.NewValidationError(utils.ValidationMessage(err), nil))
}

// validate runs the gin validator over a merged value so create and partial
// update share one set of rules.
func validate(obj any) error {
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return utils.NewValidationError(utils.ValidationMessage(err), nil)
	}
	return nil
}

// storeError maps a query-layer failure to the API taxonomy.
func storeError(c *gin.Context, fn, notFound, failure string, err error) {
	if errors.Is(err, sql.ErrNoRows) {
		utils.ResponseWithAPIError(c, utils.NewNotFoundError(notFound))
		return
	}
	log.Errorf("%s: %v", fn, err)
	utils.ResponseWithAPIError(c, utils.NewInternalError(failure, err))
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// formString returns the value of a multipart field and whether it was sent.
func formString(form *multipart.Form, key string) (*string, bool) {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return nil, false
	}
	v := values[0]
	return &v, true
}

// formList reads a list sent as repeated "key[]" fields, a JSON array in
// "key", or a single plain value in "key".
func formList(form *multipart.Form, key string) (*[]string, bool) {
	if values, ok := form.Value[key+"[]"]; ok {
		list := append([]string{}, values...)
		return &list, true
	}
	raw, ok := formString(form, key)
	if !ok {
		return nil, false
	}
	var list []string
	if err := json.Unmarshal([]byte(*raw), &list); err != nil {
		list = []string{*raw}
		if strings.TrimSpace(*raw) == "" {
			list = []string{}
		}
	}
	return &list, true
}

func formBool(form *multipart.Form, key string) (*bool, error) {
	raw, ok := formString(form, key)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(*raw))
	if err != nil {
		return nil, utils.NewValidationError(key+" must be a boolean", nil)
	}
	return &v, nil
}

func formInt(form *multipart.Form, key string) (*int, error) {
	raw, ok := formString(form, key)
	if !ok {
		return nil, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		return nil, utils.NewValidationError(key+" must be an integer", nil)
	}
	return &v, nil
}

// parseDate accepts YYYY-MM-DD and RFC 3339 timestamps.
func parseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, utils.NewValidationError(field+" must be a valid date (YYYY-MM-DD)", nil)
}

// trimmed applies strings.TrimSpace to an optional value.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// nullableString tells an absent JSON field apart from an explicit null.
type nullableString struct {
	Set   bool
	Value *string
}

func (n *nullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

func respondOK(c *gin.Context, message string, data any) {
	utils.ResponseWithSuccess(c, http.StatusOK, message, data)
}
