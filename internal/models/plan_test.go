package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots_JSON(t *testing.T) {
	tests := []struct {
		name  string
		slots Slots
		want  string
	}{
		{
			name:  "limited",
			slots: LimitedSlots(10),
			want:  `10`,
		},
		{
			name:  "unlimited",
			slots: Slots{Unlimited: true},
			want:  `"∞"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.slots)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))

			var back Slots
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tt.slots, back)
		})
	}
}

func TestSlots_UnmarshalRejectsGarbage(t *testing.T) {
	var s Slots
	assert.Error(t, json.Unmarshal([]byte(`{"n":1}`), &s))
}

func TestUser_PublicHidesPasswordHash(t *testing.T) {
	u := User{ID: "u_1", Username: "a", Email: "a@x.com", PasswordHash: "$2a$10$hash"}

	data, err := json.Marshal(u.Public())
	require.NoError(t, err)

	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), "$2a$10$hash")
}
