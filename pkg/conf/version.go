package conf

import (
	"fmt"
	"runtime"
)

// Version is set at build time through ldflags
var Version = "development"

// Commit is set at build time through ldflags
var Commit = "none"

func PrintVersion() {
	fmt.Printf("Version: %s\n", Version)
	fmt.Printf("Commit: %s\n", Commit)
	fmt.Printf("Go Version: %s\n", runtime.Version())
	fmt.Printf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
