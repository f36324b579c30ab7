package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmekki/casting-api/internal/service/auth"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   *auth.Error
	}{
		{
			name:      "Valid Header",
			header:    "Bearer sometoken",
			wantToken: "sometoken",
		},
		{
			name:      "Lowercase Scheme",
			header:    "bearer sometoken",
			wantToken: "sometoken",
		},
		{
			name:    "Missing Header",
			header:  "",
			wantErr: auth.ErrMissingHeader,
		},
		{
			name:    "Wrong Scheme",
			header:  "Basic sometoken",
			wantErr: auth.ErrNotBearer,
		},
		{
			name:    "Scheme Without Token",
			header:  "Bearer",
			wantErr: auth.ErrTokenMissing,
		},
		{
			name:    "Too Many Parts",
			header:  "Bearer some token",
			wantErr: auth.ErrHeaderMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/movies", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, err := auth.BearerToken(r)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, http.StatusUnauthorized, tt.wantErr.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestCheckPermission(t *testing.T) {
	t.Run("Permission Granted", func(t *testing.T) {
		claims := auth.Claims{"permissions": []any{"create:actor", "delete:actor"}}
		assert.NoError(t, auth.CheckPermission("create:actor", claims))
	})

	t.Run("Permission Not Granted", func(t *testing.T) {
		claims := auth.Claims{"permissions": []any{"create:actor"}}
		err := auth.CheckPermission("delete:movie", claims)
		require.ErrorIs(t, err, auth.ErrPermissionNotFound)
		assert.Equal(t, http.StatusForbidden, auth.ErrPermissionNotFound.Status)
	})

	t.Run("Empty Permissions List", func(t *testing.T) {
		claims := auth.Claims{"permissions": []any{}}
		err := auth.CheckPermission("create:actor", claims)
		assert.ErrorIs(t, err, auth.ErrPermissionNotFound)
	})

	t.Run("Permissions Key Absent", func(t *testing.T) {
		claims := auth.Claims{"sub": "user"}
		err := auth.CheckPermission("create:actor", claims)
		require.ErrorIs(t, err, auth.ErrPermissionsMissing)
		assert.Equal(t, http.StatusBadRequest, auth.ErrPermissionsMissing.Status)
	})
}

func TestClaimsPermissions(t *testing.T) {
	t.Run("String Slice", func(t *testing.T) {
		claims := auth.Claims{"permissions": []string{"a", "b"}}
		permissions, ok := claims.Permissions()
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, permissions)
	})

	t.Run("Decoded JSON Slice", func(t *testing.T) {
		claims := auth.Claims{"permissions": []any{"a", "b"}}
		permissions, ok := claims.Permissions()
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, permissions)
	})

	t.Run("Absent", func(t *testing.T) {
		claims := auth.Claims{}
		_, ok := claims.Permissions()
		assert.False(t, ok)
	})
}
