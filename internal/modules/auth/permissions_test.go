package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPermissions(t *testing.T) {
	admin := &Principal{UserID: uuid.New(), Role: RoleAdmin}
	manager := &Principal{UserID: uuid.New(), Role: RoleManager}
	staff := &Principal{UserID: uuid.New(), Role: RoleStaff}

	tests := []struct {
		name string
		perm Permission
		want map[*Principal]bool
	}{
		{"authenticated", Authenticated, map[*Principal]bool{nil: false, admin: true, manager: true, staff: true}},
		{"admin or manager", IsAdminOrManager, map[*Principal]bool{nil: false, admin: true, manager: true, staff: false}},
		{"admin", IsAdmin, map[*Principal]bool{nil: false, admin: true, manager: false, staff: false}},
		{"manager", IsManager, map[*Principal]bool{nil: false, admin: false, manager: true, staff: false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for p, want := range tt.want {
				assert.Equal(t, want, tt.perm(p), "principal %+v", p)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("manager")
	assert.NoError(t, err)
	assert.Equal(t, RoleManager, r)

	_, err = ParseRole("superuser")
	assert.Error(t, err)
}
