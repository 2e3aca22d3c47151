package utils

import "testing"

func TestIsNetworkDrive(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"Linux NFS mount", "/mnt/nfs-share/videos", true},
		{"Linux media mount", "/media/usb/videos", true},
		{"macOS network volume", "/Volumes/NetworkShare/videos", true},
		{"Windows UNC path", "//server/share/videos", true},
		{"Windows UNC path escaped", "\\\\server\\share\\videos", true},
		{"Path containing cifs", "/mount/cifs-share/videos", true},
		{"Path containing smb", "/shares/smb/videos", true},
		{"Local home path", "/home/user/videos", false},
		{"Local macOS path", "/Users/user/Movies", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsNetworkDrive(tt.path)
			if result != tt.expected {
				t.Errorf("IsNetworkDrive(%q) = %v, expected %v", tt.path, result, tt.expected)
			}
		})
	}
}
