// Package prefs persists terminal portal preferences in ~/.config/cleanrecord/portal.toml.
package prefs

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"cleanrecord/internal/errors"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultPrefsPath = "~/.config/cleanrecord/portal.toml"
	defaultAPIURL    = "http://127.0.0.1:8080"
	defaultLanguage  = "pl"
)

// Prefs holds the portal connection settings.
type Prefs struct {
	APIURL   string `toml:"apiUrl"`
	Token    string `toml:"token"`
	Language string `toml:"language"`
}

// Defaults returns the preferences used when no file exists.
func Defaults() Prefs {
	return Prefs{APIURL: defaultAPIURL, Language: defaultLanguage}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path, falling back to defaults when the file is missing or unreadable.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		return Defaults(), nil
	}
	defer func() { _ = file.Close() }()

	raw, err := io.ReadAll(file)
	if err != nil {
		return Defaults(), nil
	}

	var prefs Prefs
	if err := toml.Unmarshal(raw, &prefs); err != nil {
		return Defaults(), nil
	}

	return prefs.withDefaults(), nil
}

// Save writes preferences to path, creating directories as needed. The file holds a token so it is private.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return errors.Wrap(err, "resolve path")
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o700); err != nil {
		return errors.Wrap(err, "create prefs dir")
	}

	raw, err := toml.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "marshal prefs")
	}

	if err := os.WriteFile(resolved, raw, 0o600); err != nil {
		return errors.Wrap(err, "write prefs")
	}

	return nil
}

func (p Prefs) withDefaults() Prefs {
	p.APIURL = strings.TrimSpace(p.APIURL)
	p.Token = strings.TrimSpace(p.Token)
	p.Language = strings.TrimSpace(p.Language)
	if p.APIURL == "" {
		p.APIURL = defaultAPIURL
	}
	if p.Language == "" {
		p.Language = defaultLanguage
	}

	return p
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}

	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "resolve home dir")
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}

	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", errors.Wrap(err, "absolute path")
	}

	return abs, nil
}
