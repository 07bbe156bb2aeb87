// File: services/user/auth_test.go
package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyPasswordComplexity(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid mixed password", "fridge2024", false},
		{"valid with symbols", "c0ld-chain!", false},
		{"too short", "ab1", true},
		{"letters only", "frigorifique", true},
		{"digits only", "12345678", true},
		{"empty", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := VerifyPasswordComplexity(tc.password)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
