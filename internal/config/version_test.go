package config

import (
	"errors"
	"testing"
)

func TestParsedVersion(t *testing.T) {
	tests := []struct {
		version string
		major   uint16
		minor   uint16
		bugfix  uint16
		wantErr bool
	}{
		{"v0.5.0", 0, 5, 0, false},
		{"v0.5.4", 0, 5, 4, false},
		{"v1.12.3", 1, 12, 3, false},
		{"v0.5.4-beta.1", 0, 5, 0, true},
		{"v0.5", 0, 0, 0, true},
		{"0.5.0", 0, 0, 0, true}, // missing marker
		{"v", 0, 0, 0, true},
		{"", 0, 0, 0, true},
		{"vx.y.z", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			c := Config{Version: tt.version}
			major, minor, bugfix, err := c.ParsedVersion()
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParsedVersion() expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidVersion) {
					t.Errorf("ParsedVersion() error = %v, want ErrInvalidVersion", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsedVersion() error = %v", err)
			}
			if major != tt.major || minor != tt.minor || bugfix != tt.bugfix {
				t.Errorf("ParsedVersion() = %d.%d.%d, want %d.%d.%d",
					major, minor, bugfix, tt.major, tt.minor, tt.bugfix)
			}
		})
	}
}

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"v0.5.0", true},
		{"v0.5.1", true},
		{"v0.5.2", true},
		{"v0.5.3", true},
		{"v0.5.4", true},
		{"v0.5.5", false},
		{"v0.4.9", false},
		{"v0.6.0", false},
		{"v1.5.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			c := Config{Version: tt.version}
			got, err := c.IsCompatible()
			if err != nil {
				t.Fatalf("IsCompatible() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsCompatible() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := (Config{Version: "five"}).IsCompatible(); err == nil {
		t.Error("IsCompatible() with malformed version should error")
	}
}

func TestUpgradeNotification(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"v0.5.5", ""},
		{"v0.5.4", "App version updated. Directory rendering is now significantly lighter on the CPU"},
		{"v0.5.3", "App version updated. Fixed exiting on permission denied"},
		{"v0.5.2", "App version updated. The present working directory now follows your terminal session"},
		{"v0.5.1", "App version updated. Follow symlinks with 'gf'"},
		{"v0.5.0", "App version updated. New: sort and filter support; see the project wiki for the changelog"},
		{"v0.4.0", "App version updated. New: sort and filter support; see the project wiki for the changelog"},
		{"v0.5.6", "App version updated. New: sort and filter support; see the project wiki for the changelog"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, err := (Config{Version: tt.version}).UpgradeNotification()
			if err != nil {
				t.Fatalf("UpgradeNotification() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("UpgradeNotification() = %q, want %q", got, tt.want)
			}
		})
	}
}
