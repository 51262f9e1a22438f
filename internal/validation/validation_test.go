package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid short", "a@b.co", false},
		{"valid normal", "student@example.com", false},
		{"no at sign", "abc", true},
		{"no tld", "a@b", true},
		{"missing local part", "@b.com", true},
		{"empty", "", true},
		{"spaces", "a b@c.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword("1234567"))
	assert.NoError(t, ValidatePassword("12345678"))
	assert.NoError(t, ValidatePassword("a perfectly fine passphrase"))
	assert.Error(t, ValidatePassword(strings.Repeat("x", 129)))
}

func TestValidateUsername(t *testing.T) {
	assert.Error(t, ValidateUsername(""))
	assert.NoError(t, ValidateUsername("studyfan42"))
	assert.Error(t, ValidateUsername(strings.Repeat("u", 51)))
}
