package helper

import (
	"fmt"
	"net/http"
	"net/url"

	"forum-api/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// errorBody is the uniform error envelope. The wire never carries more than a
// short message plus the optional field-validation list; full detail is
// logged server-side only.
type errorBody struct {
	Error      string              `json:"error"`
	Details    string              `json:"details"`
	Validation []models.FieldError `json:"validation"`
}

// HTTPHelper shapes responses: success items pass through as-is, errors are
// mapped from the domain error taxonomy to a status code and envelope.
type HTTPHelper struct{}

func NewHTTPHelper() *HTTPHelper {
	return &HTTPHelper{}
}

// SendItem writes a success response with the given status.
func (u *HTTPHelper) SendItem(c *gin.Context, status int, item interface{}) {
	c.JSON(status, item)
}

// SendError maps a domain error to its status code and envelope.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	switch e := err.(type) {
	case models.ErrorValidation:
		c.JSON(http.StatusBadRequest, errorBody{
			Error:      e.Message,
			Validation: ensureValidation(e.Validation),
		})
	case models.ErrorNotFound:
		c.JSON(http.StatusNotFound, errorBody{
			Error:      e.Message,
			Validation: []models.FieldError{},
		})
	case models.ErrorUnauthorized:
		c.JSON(http.StatusUnauthorized, errorBody{
			Error:      e.Message,
			Validation: ensureValidation(e.Validation),
		})
	case models.ErrorForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case models.ErrorQuery:
		log.Error().Err(e.Err).Str("message", e.Message).Msg("query error")
		code := e.Code
		if code == 0 {
			code = http.StatusBadRequest
		}
		c.JSON(code, errorBody{
			Error:      e.Message,
			Validation: []models.FieldError{},
		})
	case models.ErrorInternalServer:
		log.Error().Err(e.Err).Str("message", e.Message).Msg("server fault")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	default:
		log.Error().Err(err).Msg("unclassified error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func ensureValidation(v []models.FieldError) []models.FieldError {
	if v == nil {
		return []models.FieldError{}
	}
	return v
}

// Link is a single pagination href.
type Link struct {
	Href string `json:"href"`
}

// PageLinks holds the navigation links of a collection page. Self is always
// present; prev only when there is a previous page; next whenever a full page
// was returned.
type PageLinks struct {
	Self Link  `json:"self"`
	Prev *Link `json:"prev,omitempty"`
	Next *Link `json:"next,omitempty"`
}

// Page is the collection envelope.
type Page struct {
	Links  PageLinks   `json:"links"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
	Items  interface{} `json:"items"`
}

// BaseURL rebuilds the request's own URL without its query string.
func (u *HTTPHelper) BaseURL(c *gin.Context) string {
	return "http://" + c.Request.Host + c.Request.URL.Path
}

// PreparePage wraps a result slice in the collection envelope. count must be
// the number of rows in items. A next link is emitted whenever count reaches
// limit; a page ending exactly on the boundary therefore still links to a
// (possibly empty) next page.
func (u *HTTPHelper) PreparePage(baseURL string, items interface{}, count, offset, limit int, search string) Page {
	page := Page{
		Links:  PageLinks{Self: Link{Href: pagingURL(baseURL, search, offset, limit)}},
		Limit:  limit,
		Offset: offset,
		Items:  items,
	}

	if offset > 0 {
		page.Links.Prev = &Link{Href: pagingURL(baseURL, search, offset-limit, limit)}
	}

	if count >= limit {
		page.Links.Next = &Link{Href: pagingURL(baseURL, search, offset+limit, limit)}
	}

	return page
}

func pagingURL(baseURL, search string, offset, limit int) string {
	query := fmt.Sprintf("offset=%d&limit=%d", offset, limit)
	if search != "" {
		query = "search=" + url.QueryEscape(search) + "&" + query
	}
	return baseURL + "?" + query
}
