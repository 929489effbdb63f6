package protocol

import (
	"encoding/json"
	"testing"
)

func TestDecodePywalColors(t *testing.T) {
	wallpaper := "/home/user/wall.png"

	tests := []struct {
		name          string
		data          string
		wantColors    []string
		wantWallpaper *string
		expectError   bool
	}{
		{
			name:          "current shape",
			data:          `{"wallpaper":"/home/user/wall.png","colors":["#000000","#ffffff"]}`,
			wantColors:    []string{"#000000", "#ffffff"},
			wantWallpaper: &wallpaper,
		},
		{
			name:          "current shape with null wallpaper",
			data:          `{"wallpaper":null,"colors":["#111111"]}`,
			wantColors:    []string{"#111111"},
			wantWallpaper: nil,
		},
		{
			name:          "legacy bare array",
			data:          `["#000000","#ffffff"]`,
			wantColors:    []string{"#000000", "#ffffff"},
			wantWallpaper: nil,
		},
		{
			name:        "garbage",
			data:        `{"nope":true}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePywalColors(json.RawMessage(tt.data))
			if tt.expectError {
				if err == nil {
					t.Fatalf("DecodePywalColors(%s) expected error, got %+v", tt.data, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodePywalColors(%s) unexpected error: %v", tt.data, err)
			}
			if len(got.Colors) != len(tt.wantColors) {
				t.Fatalf("colors = %v, want %v", got.Colors, tt.wantColors)
			}
			for i, c := range tt.wantColors {
				if got.Colors[i] != c {
					t.Errorf("colors[%d] = %q, want %q", i, got.Colors[i], c)
				}
			}
			if tt.wantWallpaper == nil {
				if got.Wallpaper != nil {
					t.Errorf("wallpaper = %q, want nil", *got.Wallpaper)
				}
			} else if got.Wallpaper == nil || *got.Wallpaper != *tt.wantWallpaper {
				t.Errorf("wallpaper = %v, want %q", got.Wallpaper, *tt.wantWallpaper)
			}
		})
	}
}

func TestMessageHasData(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "with data", raw: `{"action":"debug:version","data":"2.7.0"}`, want: true},
		{name: "without data", raw: `{"action":"debug:version","success":true}`, want: false},
		{name: "explicit null", raw: `{"action":"debug:version","data":null}`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var msg Message
			if err := json.Unmarshal([]byte(tt.raw), &msg); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := msg.HasData(); got != tt.want {
				t.Errorf("HasData() = %v, want %v", got, tt.want)
			}
		})
	}
}
