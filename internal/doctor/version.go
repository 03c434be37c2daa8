package doctor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var versionPattern = regexp.MustCompile(`v?\d+\.\d+(\.\d+)?(-[0-9A-Za-z.-]+)?`)

// CompareVersions compares two version strings using semver.
// Returns -1 if current < minimum, 0 if equal, 1 if current > minimum.
func CompareVersions(current, minimum string) (int, error) {
	cv, err := parseSemver(current)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", current, err)
	}
	mv, err := parseSemver(minimum)
	if err != nil {
		return 0, fmt.Errorf("parsing minimum version %q: %w", minimum, err)
	}
	return cv.Compare(mv), nil
}

// ExtractVersion returns the first version-looking token in a --version
// banner such as "gh version 2.45.0 (2024-03-04)".
func ExtractVersion(banner string) (string, bool) {
	v := versionPattern.FindString(banner)
	if v == "" {
		return "", false
	}
	return strings.TrimPrefix(v, "v"), true
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
