package utils

import "testing"

func TestRegionTheme(t *testing.T) {
	tests := []struct {
		region      string
		wantDefault bool
	}{
		{"France", false},
		{"Japan", false},
		{"Greece", false},
		{"USA", false},
		{"Atlantis", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			got := RegionTheme(tt.region)
			if got.Primary == "" || got.Secondary == "" || got.Accent == "" {
				t.Errorf("RegionTheme(%q) returned an incomplete theme: %+v", tt.region, got)
			}
			if isDefault := got == defaultTheme; isDefault != tt.wantDefault {
				t.Errorf("RegionTheme(%q) default = %v, want %v", tt.region, isDefault, tt.wantDefault)
			}
		})
	}
}
