package credentials

import (
	"os"
	"path"
	"runtime"
	"strings"
)

// DefaultConfigPath returns the location of the credentials file for goos.
// Windows uses %LOCALAPPDATA%\dragonchain\credentials, every other system
// ~/.dragonchain/credentials.
func DefaultConfigPath(goos, homeDir, localAppData string) string {
	if goos == "windows" {
		parts := []string{"dragonchain", "credentials"}
		if base := strings.TrimRight(localAppData, `\/`); base != "" {
			parts = append([]string{base}, parts...)
		}
		return strings.Join(parts, `\`)
	}
	return path.Join(homeDir, ".dragonchain", "credentials")
}

// HostConfigPath is DefaultConfigPath for the running process.
func HostConfigPath() string {
	home, _ := os.UserHomeDir()
	return DefaultConfigPath(runtime.GOOS, home, os.Getenv(EnvLocalAppData))
}
