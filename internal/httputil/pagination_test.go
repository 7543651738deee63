package httputil

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestParsePagination_Defaults(t *testing.T) {
	c := newTestContext(t, "/api/user")

	offset, limit, err := ParsePagination(c)

	require.NoError(t, err)
	assert.Equal(t, 0, offset)
	assert.Equal(t, MinLimit, limit)
}

func TestParsePagination_Explicit(t *testing.T) {
	c := newTestContext(t, "/api/user?offset=40&limit=20")

	offset, limit, err := ParsePagination(c)

	require.NoError(t, err)
	assert.Equal(t, 40, offset)
	assert.Equal(t, 20, limit)
}

func TestParsePagination_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "negative offset", target: "/api/user?offset=-1"},
		{name: "offset not a number", target: "/api/user?offset=abc"},
		{name: "limit below minimum", target: "/api/user?limit=9"},
		{name: "limit above maximum", target: "/api/user?limit=31"},
		{name: "limit not a number", target: "/api/user?limit=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, tt.target)

			_, _, err := ParsePagination(c)

			assert.Error(t, err)
		})
	}
}

func TestParsePagination_LimitBoundaries(t *testing.T) {
	c := newTestContext(t, "/api/user?limit=10")
	_, limit, err := ParsePagination(c)
	require.NoError(t, err)
	assert.Equal(t, 10, limit)

	c = newTestContext(t, "/api/user?limit=30")
	_, limit, err = ParsePagination(c)
	require.NoError(t, err)
	assert.Equal(t, 30, limit)
}

func TestParseFields(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{name: "absent", target: "/api/user", want: nil},
		{name: "single", target: "/api/user?fields=email", want: []string{"email"}},
		{
			name:   "comma separated",
			target: "/api/user?fields=email,username,dob",
			want:   []string{"email", "username", "dob"},
		},
		{
			name:   "repeated parameter",
			target: "/api/user?fields=email&fields=username",
			want:   []string{"email", "username"},
		},
		{
			name:   "mixed with whitespace",
			target: "/api/user?fields=email,%20username&fields=dob",
			want:   []string{"email", "username", "dob"},
		},
		{name: "empty entries dropped", target: "/api/user?fields=,,email,", want: []string{"email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, tt.target)

			assert.Equal(t, tt.want, ParseFields(c))
		})
	}
}

func TestNextPageURL_FromRequest(t *testing.T) {
	c := newTestContext(t, "http://api.example.com/api/user?offset=0&limit=10")

	url := NextPageURL(c, "", 10, 10, nil)

	assert.Equal(t, "http://api.example.com/api/user?limit=10&offset=10", url)
}

func TestNextPageURL_WithBaseURL(t *testing.T) {
	c := newTestContext(t, "/api/user?offset=0&limit=10")

	url := NextPageURL(c, "https://users.example.com/", 10, 10, nil)

	assert.Equal(t, "https://users.example.com/api/user?limit=10&offset=10", url)
}

func TestNextPageURL_PreservesFields(t *testing.T) {
	c := newTestContext(t, "/api/user?fields=email,username")

	url := NextPageURL(c, "https://users.example.com", 20, 10, []string{"email", "username"})

	assert.Equal(t, "https://users.example.com/api/user?fields=email%2Cusername&limit=10&offset=20", url)
}
