package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_Validate(t *testing.T) {
	tests := []struct {
		name    string
		client  Client
		wantErr error
	}{
		{
			name:   "valid active client",
			client: Client{Name: "Smith Family", Status: ClientStatusActive},
		},
		{
			name:   "valid lead",
			client: Client{Name: "New Enquiry", Status: ClientStatusLead},
		},
		{
			name:    "blank name",
			client:  Client{Name: "   ", Status: ClientStatusActive},
			wantErr: ErrClientNameRequired,
		},
		{
			name:    "unknown status",
			client:  Client{Name: "Smith Family", Status: "paused"},
			wantErr: ErrInvalidClientStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.client.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_NormalizedName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Smith Family", "smith family"},
		{"  SMITH   family  ", "smith family"},
		{"smith\tfamily", "smith family"},
	}

	for _, tt := range tests {
		client := Client{Name: tt.in}
		assert.Equal(t, tt.want, client.NormalizedName())
	}
}

func TestDayEvent_Validate(t *testing.T) {
	assert.NoError(t, (&DayEvent{Date: "2026-02-14", Kind: DayEventKindRain}).Validate())
	assert.NoError(t, (&DayEvent{Date: "2026-02-14", Kind: DayEventKindClosure}).Validate())
	assert.Error(t, (&DayEvent{Date: "2026-02-14", Kind: "hail"}).Validate())
	assert.Error(t, (&DayEvent{Date: "14 Feb", Kind: DayEventKindRain}).Validate())
}

func TestDayEvent_VoidsSessions(t *testing.T) {
	assert.True(t, (&DayEvent{Kind: DayEventKindRain}).VoidsSessions())
	assert.True(t, (&DayEvent{Kind: DayEventKindClosure}).VoidsSessions())
}
