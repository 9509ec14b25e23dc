package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsedVersion splits the declared version into its three integer
// components. The text must read v<major>.<minor>.<bugfix>; a missing
// leading marker, a missing component, or a non-numeric component is a
// hard failure. Components beyond the third are ignored.
func (c Config) ParsedVersion() (major, minor, bugfix uint16, err error) {
	v, ok := strings.CutPrefix(c.Version, "v")
	if !ok {
		// No marker: the components parse from nothing and fail, same
		// as an empty version string.
		v = ""
	}
	parts := strings.Split(v, ".")
	part := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	components := [3]uint16{}
	for i := range components {
		n, perr := strconv.ParseUint(part(i), 10, 16)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("%w %q: %v", ErrInvalidVersion, c.Version, perr)
		}
		components[i] = uint16(n)
	}
	return components[0], components[1], components[2], nil
}

// IsCompatible reports whether the declared config version is usable by
// this release. The compatible set is closed; it is not a range.
func (c Config) IsCompatible() (bool, error) {
	major, minor, bugfix, err := c.ParsedVersion()
	if err != nil {
		return false, err
	}
	switch {
	case major == 0 && minor == 5 && bugfix <= 4:
		return true, nil
	default:
		return false, nil
	}
}

// UpgradeNotification returns the notice to show for the declared
// version, or "" when the config is already current. Versions with a
// recorded migration note get their specific message; anything else,
// older or newer, gets the generic one.
func (c Config) UpgradeNotification() (string, error) {
	major, minor, bugfix, err := c.ParsedVersion()
	if err != nil {
		return "", err
	}
	if major == 0 && minor == 5 {
		switch bugfix {
		case 5:
			return "", nil
		case 4:
			return "App version updated. Directory rendering is now significantly lighter on the CPU", nil
		case 3:
			return "App version updated. Fixed exiting on permission denied", nil
		case 2:
			return "App version updated. The present working directory now follows your terminal session", nil
		case 1:
			return "App version updated. Follow symlinks with 'gf'", nil
		}
	}
	return "App version updated. New: sort and filter support; see the project wiki for the changelog", nil
}
