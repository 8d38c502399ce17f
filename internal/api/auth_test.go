package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careops/shiftctl/internal/rbac"
)

func TestProfileNormalization(t *testing.T) {
	deptID := 3

	tests := []struct {
		name string
		body string
		want *User
	}{
		{
			name: "nested user object",
			body: `{"access_token":"t","user":{"id":7,"name":"Dana Osei","email":"dana@hospital.test","role":"manager"}}`,
			want: &User{ID: 7, Name: "Dana Osei", Email: "dana@hospital.test", Role: rbac.RoleManager},
		},
		{
			name: "flattened with user_id",
			body: `{"access_token":"t","user_id":9,"name":"Ben Ruiz","email":"ben@hospital.test","role":"nurse","department_id":3}`,
			want: &User{ID: 9, Name: "Ben Ruiz", Email: "ben@hospital.test", Role: rbac.RoleNurse, DepartmentID: &deptID},
		},
		{
			name: "flattened with plain id",
			body: `{"access_token":"t","id":4,"name":"Ada","email":"ada@hospital.test","role":"doctor"}`,
			want: &User{ID: 4, Name: "Ada", Email: "ada@hospital.test", Role: rbac.RoleDoctor},
		},
		{
			name: "nested wins over flattened",
			body: `{"access_token":"t","user":{"id":7,"role":"admin"},"user_id":99,"role":"staff"}`,
			want: &User{ID: 7, Role: rbac.RoleAdmin},
		},
		{
			name: "token only",
			body: `{"access_token":"t","token_type":"bearer"}`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp LoginResponse
			require.NoError(t, json.Unmarshal([]byte(tt.body), &resp))

			got := resp.Profile()
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}
