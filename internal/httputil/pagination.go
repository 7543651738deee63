package httputil

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Pagination bounds for list endpoints.
const (
	// MinLimit is the smallest accepted page size and the default when the
	// limit parameter is omitted.
	MinLimit = 10
	// MaxLimit is the largest accepted page size.
	MaxLimit = 30
)

// ParsePagination safely parses and validates offset and limit query parameters.
// Offset defaults to 0 and must be non-negative; limit defaults to MinLimit
// and must fall within [MinLimit, MaxLimit].
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offsetStr := c.DefaultQuery("offset", "0")
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		return 0, 0, fmt.Errorf("invalid offset parameter: must be a non-negative integer")
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(MinLimit))
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < MinLimit || limit > MaxLimit {
		return 0, 0, fmt.Errorf(
			"invalid limit parameter: must be between %d and %d", MinLimit, MaxLimit,
		)
	}

	return offset, limit, nil
}

// ParseFields extracts the requested projection from the fields query
// parameter. It accepts a single name, a comma-separated list, or a repeated
// parameter, and returns the names in request order without validating them.
func ParseFields(c *gin.Context) []string {
	var fields []string
	for _, raw := range c.QueryArray("fields") {
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				fields = append(fields, name)
			}
		}
	}
	return fields
}

// NextPageURL renders an absolute follow-up URL for the next page window,
// reusing the request path with updated offset/limit parameters and
// re-appending the fields parameter when it was supplied. When baseURL is
// empty, the scheme and host are derived from the incoming request.
func NextPageURL(c *gin.Context, baseURL string, offset, limit int, fields []string) string {
	if baseURL == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s", scheme, c.Request.Host)
	}

	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))
	if len(fields) > 0 {
		query.Set("fields", strings.Join(fields, ","))
	}

	return fmt.Sprintf(
		"%s%s?%s",
		strings.TrimSuffix(baseURL, "/"),
		c.Request.URL.Path,
		query.Encode(),
	)
}
