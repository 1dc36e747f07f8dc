package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/negative-space-software/fileshare-cli/pkg/spath"
)

// ValidatePort accepts TCP port numbers between 1 and 65535
func ValidatePort(value string) error {
	port, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

// ValidateNonEmpty rejects blank input
func ValidateNonEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ValidateHost accepts a hostname or address without spaces
func ValidateHost(value string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if strings.ContainsAny(v, " \t") {
		return fmt.Errorf("host cannot contain spaces")
	}
	return nil
}

// ValidateAbsDir accepts absolute POSIX directory paths
func ValidateAbsDir(value string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return fmt.Errorf("directory cannot be empty")
	}
	if !spath.IsAbs(v) {
		return fmt.Errorf("directory must be an absolute path")
	}
	return nil
}
