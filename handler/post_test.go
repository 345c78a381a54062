package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestParsePostID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		raw    string
		wantID uint64
		wantOK bool
	}{
		{"42", 42, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"12abc", 0, false},
	}

	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "post_id", Value: tc.raw}}

		id, err := parsePostID(c)
		if tc.wantOK {
			if err != nil {
				t.Fatalf("parsePostID(%q): unexpected error %v", tc.raw, err)
			}
			if id != tc.wantID {
				t.Fatalf("parsePostID(%q) = %d, want %d", tc.raw, id, tc.wantID)
			}
			continue
		}
		if err == nil {
			t.Fatalf("parsePostID(%q): expected error, got id %d", tc.raw, id)
		}
	}
}
