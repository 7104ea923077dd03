package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// EnvToken is the environment variable consulted before the config file.
const EnvToken = "IPINFO_TOKEN"

// FileName is the user-scoped config file, relative to the home directory.
const FileName = ".ipinfo.cfg"

var ErrNoToken = fmt.Errorf("no API token: pass --token, set %s, or put a token key in ~/%s", EnvToken, FileName)

// DefaultFile returns the config file path in the user's home directory.
func DefaultFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// ResolveToken picks the API token: an explicit value wins, then the
// EnvToken environment variable, then the token key under the DEFAULT
// section of file. Having no token at all is fatal; it is reported before
// any request goes out.
func ResolveToken(explicit, file string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if token := os.Getenv(EnvToken); token != "" {
		return token, nil
	}
	if _, err := os.Stat(file); err != nil {
		return "", ErrNoToken
	}
	cfg, err := ini.Load(file)
	if err != nil {
		return "", fmt.Errorf("reading %s: %v", file, err)
	}
	token := cfg.Section(ini.DefaultSection).Key("token").String()
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}
