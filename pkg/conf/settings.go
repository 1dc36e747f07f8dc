package conf

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Settings holds the in-memory view of the settings file. It is created
// once by Load and passed explicitly into every component that needs
// connection parameters.
type Settings struct {
	filePath string
	sshDir   string
	values   map[string]string
}

// Load ensures the configuration directory exists and parses the
// settings file if present. A missing file seeds defaults in memory
// without writing anything to disk.
func Load() (*Settings, error) {
	home, err := GetFileshareHome()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve configuration directory: %w", err)
	}
	sshDir, err := GetSSHDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ssh directory: %w", err)
	}

	s := &Settings{
		filePath: filepath.Join(home, SettingsFileName),
		sshDir:   sshDir,
		values:   make(map[string]string),
	}

	file, err := os.Open(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to open settings file: %w", err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found || key == "" {
			continue
		}
		s.values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if sErr := scanner.Err(); sErr != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", sErr)
	}

	return s, nil
}

// Get returns the current value for key, falling back to the documented
// default. It never fails; unrecognized keys without a stored value
// yield an empty string.
func (s *Settings) Get(key string) string {
	if v, ok := s.values[key]; ok {
		return v
	}
	return defaults[key]
}

// Set merges value into the in-memory mapping and rewrites the settings
// file in full, so unrelated keys survive every mutation. The rename is
// the commit point, a failed write never leaves a half-written file.
func (s *Settings) Set(key, value string) error {
	s.values[key] = value

	var b strings.Builder
	written := make(map[string]bool)
	for _, k := range settingsOrder {
		if v, ok := s.values[k]; ok {
			fmt.Fprintf(&b, "%s=%s\n", k, v)
			written[k] = true
		}
	}
	// Unknown keys are preserved in a stable order
	var rest []string
	for k := range s.values {
		if !written[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		fmt.Fprintf(&b, "%s=%s\n", k, s.values[k])
	}

	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Rename(tmpPath, s.filePath); err != nil {
		return fmt.Errorf("failed to commit settings file: %w", err)
	}
	return nil
}

// KeyPath is the expected location of the configured private key
func (s *Settings) KeyPath() string {
	return filepath.Join(s.sshDir, s.Get(KeySSHKeyName))
}

// KnownHostsPath is the host key store used to verify the server
func (s *Settings) KnownHostsPath() string {
	return filepath.Join(s.sshDir, "known_hosts")
}

// IsConfigured reports whether the configured private key exists on disk
func (s *Settings) IsConfigured() bool {
	fi, err := os.Stat(s.KeyPath())
	return err == nil && !fi.IsDir()
}

// Addr returns the "host:port" dial address
func (s *Settings) Addr() string {
	return fmt.Sprintf("%s:%s", s.Get(KeyServerHost), s.Get(KeyServerPort))
}

// PublicBase returns the base URL files are served from
func (s *Settings) PublicBase() string {
	return "https://" + s.Get(KeyServerHost)
}
