package filestore

import (
	"testing"

	"github.com/itchan-dev/filestate/shared/domain"
	"github.com/stretchr/testify/assert"
)

func TestReducePublicLink(t *testing.T) {
	tests := []struct {
		name     string
		state    domain.PublicLink
		event    Event
		expected domain.PublicLink
	}{
		{
			name:     "link received",
			state:    domain.PublicLink{},
			event:    PublicLinkReceived{Link: domain.PublicLink{Link: "https://chat.example.com/files/f1/public"}},
			expected: domain.PublicLink{Link: "https://chat.example.com/files/f1/public"},
		},
		{
			name:     "link is overwritten",
			state:    domain.PublicLink{Link: "https://old"},
			event:    PublicLinkReceived{Link: domain.PublicLink{Link: "https://new"}},
			expected: domain.PublicLink{Link: "https://new"},
		},
		{
			name:     "logout resets",
			state:    domain.PublicLink{Link: "https://old"},
			event:    LogoutSucceeded{},
			expected: domain.PublicLink{Link: ""},
		},
		{
			name:     "other events pass through",
			state:    domain.PublicLink{Link: "https://old"},
			event:    UploadFilesReceived{},
			expected: domain.PublicLink{Link: "https://old"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReducePublicLink(tt.state, tt.event))
		})
	}
}
