package doctor

import "testing"

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name    string
		current string
		minimum string
		want    int
		wantErr bool
	}{
		{"equal versions", "2.0.0", "2.0.0", 0, false},
		{"current older", "1.9.9", "2.0.0", -1, false},
		{"current newer", "2.45.0", "2.0.0", 1, false},
		{"v prefix on current", "v2.0.0", "2.0.0", 0, false},
		{"v prefix on minimum", "2.0.0", "v2.0.0", 0, false},
		{"two-part version", "5.0", "4.0.0", 1, false},
		{"prerelease is older", "2.0.0-rc.1", "2.0.0", -1, false},
		{"invalid current", "not-a-version", "2.0.0", 0, true},
		{"invalid minimum", "2.0.0", "not-a-version", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompareVersions(tt.current, tt.minimum)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CompareVersions(%q, %q) error = %v, wantErr %v", tt.current, tt.minimum, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.current, tt.minimum, got, tt.want)
			}
		})
	}
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		banner string
		want   string
		ok     bool
	}{
		{"gh version 2.45.0 (2024-03-04)\nhttps://github.com/cli/cli/releases/tag/v2.45.0\n", "2.45.0", true},
		{"5.0.0\n", "5.0.0", true},
		{"v1.2.3-beta.1", "1.2.3-beta.1", true},
		{"yo 4.3", "4.3", true},
		{"no version here", "", false},
	}
	for _, tt := range tests {
		got, ok := ExtractVersion(tt.banner)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ExtractVersion(%q) = (%q, %v), want (%q, %v)", tt.banner, got, ok, tt.want, tt.ok)
		}
	}
}
