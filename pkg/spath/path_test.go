package spath

import "testing"

func TestJoin(t *testing.T) {
	testCases := []struct {
		name     string
		elem     []string
		expected string
	}{
		{
			name:     "Absolute base with file",
			elem:     []string{"/var/www/files", "report.pdf"},
			expected: "/var/www/files/report.pdf",
		},
		{
			name:     "Skips empty elements",
			elem:     []string{"/var/www/files", "", "docs"},
			expected: "/var/www/files/docs",
		},
		{
			name:     "Cleans duplicate separators",
			elem:     []string{"/var/www/files/", "/nested/"},
			expected: "/var/www/files/nested",
		},
		{
			name:     "All empty",
			elem:     []string{"", ""},
			expected: "",
		},
		{
			name:     "Relative elements",
			elem:     []string{"photos", "2024", "img.png"},
			expected: "photos/2024/img.png",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Join(tc.elem...); got != tc.expected {
				t.Errorf("Join(%v) = %q, want %q", tc.elem, got, tc.expected)
			}
		})
	}
}

func TestIsAbs(t *testing.T) {
	if !IsAbs("/var/www") {
		t.Error("Expected /var/www to be absolute")
	}
	if IsAbs("var/www") {
		t.Error("Expected var/www to be relative")
	}
	if IsAbs("") {
		t.Error("Expected empty path to be relative")
	}
}

func TestToSlash(t *testing.T) {
	if got := ToSlash(`docs\sub\file.txt`); got != "docs/sub/file.txt" {
		t.Errorf("ToSlash returned %q", got)
	}
}
