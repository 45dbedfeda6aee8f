package form_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/nfrund/signon/internal/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormRequest(t *testing.T, values url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestRead(t *testing.T) {
	req := newFormRequest(t, url.Values{
		"email":    {"a@x.com"},
		"password": {"secret"},
	})

	fields := form.Read(req, "email", "password", "phone-number")

	require.Len(t, fields, 3)
	assert.Equal(t, "a@x.com", fields["email"])
	assert.Equal(t, "secret", fields["password"])
	assert.Equal(t, "", fields["phone-number"], "absent fields read as empty")
}

func TestValidator(t *testing.T) {
	v := form.NewValidator()

	tests := []struct {
		name     string
		fields   form.Fields
		required []string
		want     bool
	}{
		{
			name:     "all filled",
			fields:   form.Fields{"full-name": "Amy", "phone-number": "555-1234", "email": "a@x.com", "password": "secret"},
			required: []string{"full-name", "phone-number", "email", "password"},
			want:     true,
		},
		{
			name:     "one empty",
			fields:   form.Fields{"login-email": "", "login-password": "x"},
			required: []string{"login-email", "login-password"},
			want:     false,
		},
		{
			name:     "missing key counts as empty",
			fields:   form.Fields{"login-email": "a@x.com"},
			required: []string{"login-email", "login-password"},
			want:     false,
		},
		{
			name:     "optional field may be empty",
			fields:   form.Fields{"email": "a@x.com", "note": ""},
			required: []string{"email"},
			want:     true,
		},
		{
			name:     "whitespace is not empty",
			fields:   form.Fields{"email": " "},
			required: []string{"email"},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Validate(tt.fields, tt.required...))
		})
	}
}
