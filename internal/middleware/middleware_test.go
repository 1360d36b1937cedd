package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIdentityExtractsHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"header present", "usr-abc12", "usr-abc12"},
		{"header absent yields empty identity", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(Identity())

			var got string
			var ok bool
			r.GET("/probe", func(c *gin.Context) {
				got, ok = GetUserID(c)
				c.Status(http.StatusOK)
			})

			req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
			if tt.header != "" {
				req.Header.Set(IdentityHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if !ok {
				t.Fatal("identity not set in context")
			}
			if got != tt.want {
				t.Errorf("identity = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateRequest(t *testing.T) {
	type payload struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}

	if errs := ValidateRequest(payload{Name: "Alice", Email: "alice@example.com"}); errs != nil {
		t.Errorf("expected no validation errors, got %v", errs)
	}

	errs := ValidateRequest(payload{Email: "not-valid"})
	if len(errs) != 2 {
		t.Fatalf("expected 2 validation errors, got %v", errs)
	}
	fields := map[string]string{}
	for _, e := range errs {
		fields[e.Field] = e.Type
	}
	if fields["Name"] != "required" {
		t.Errorf("missing required failure for Name: %v", errs)
	}
	if fields["Email"] != "email" {
		t.Errorf("missing email-format failure for Email: %v", errs)
	}
}
