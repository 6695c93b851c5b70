package manualform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nfrund/signin/internal/form"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		values form.Values
		want   form.Errors
	}{
		{"empty", form.Values{"email": "", "password": ""},
			form.Errors{"email": "Email is required", "password": "Password is required"}},
		{"short password", form.Values{"email": "a@b.com", "password": "abc"},
			form.Errors{"password": "Password too short"}},
		{"valid", form.Values{"email": "a@b.com", "password": "abcd"},
			form.Errors{}},
		{"bad email", form.Values{"email": "bad-email", "password": "abcd"},
			form.Errors{"email": "Invalid Email"}},
		{"both invalid are reported together", form.Values{"email": "x@y", "password": "ab"},
			form.Errors{"email": "Invalid Email", "password": "Password too short"}},
		{"upper case email", form.Values{"email": "A@B.COM", "password": "abcd"},
			form.Errors{}},
		{"one letter tld", form.Values{"email": "a@b.c", "password": "abcd"},
			form.Errors{"email": "Invalid Email"}},
		{"whitespace in email", form.Values{"email": "a b@c.com", "password": "abcd"},
			form.Errors{"email": "Invalid Email"}},
		{"no-break space in local part", form.Values{"email": "a\u00a0b@c.com", "password": "abcd"},
			form.Errors{"email": "Invalid Email"}},
		{"em space in domain", form.Values{"email": "a@b\u2003c.com", "password": "abcd"},
			form.Errors{"email": "Invalid Email"}},
		{"ideographic space", form.Values{"email": "a\u3000b@x.org", "password": "abcd"},
			form.Errors{"email": "Invalid Email"}},
		{"vertical tab", form.Values{"email": "a\vb@c.com", "password": "abcd"},
			form.Errors{"email": "Invalid Email"}},
		{"byte order mark", form.Values{"email": "\ufeffa@b.com", "password": "abcd"},
			form.Errors{"email": "Invalid Email"}},
		{"non-ascii letters are allowed", form.Values{"email": "jürgen@exämple.de", "password": "abcd"},
			form.Errors{}},
		{"multibyte password counts characters", form.Values{"email": "a@b.com", "password": "äöü"},
			form.Errors{"password": "Password too short"}},
		{"astral characters count twice", form.Values{"email": "a@b.com", "password": "😀😀"},
			form.Errors{}},
		{"one astral character is too short", form.Values{"email": "a@b.com", "password": "😀"},
			form.Errors{"password": "Password too short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.values)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, got, Validate(tt.values), "validation is idempotent")
		})
	}
}
