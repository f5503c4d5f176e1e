package service

import (
	"slices"
	"testing"
)

func TestRolesFor(t *testing.T) {
	tests := []struct {
		agentType string
		want      []string
	}{
		{"Owner", []string{"agent", "admin"}},
		{"Partner", []string{"agent", "admin"}},
		{"CEO", []string{"agent"}},
		{"Advocate", []string{"agent"}},
		{"Intern", []string{"agent"}},
	}

	for _, tt := range tests {
		if got := rolesFor(tt.agentType); !slices.Equal(got, tt.want) {
			t.Errorf("rolesFor(%q) = %v, want %v", tt.agentType, got, tt.want)
		}
	}
}
