package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	appName      = "manga1000"
	DefaultLabel = "Default"
	configExt    = ".yaml"
)

var ErrNoConfig = errors.New("no config selected")

// ConfigRoot is %APPDATA%/manga1000, $XDG_CONFIG_HOME/manga1000 or
// ~/.config/manga1000, whichever is found first.
func ConfigRoot() string {
	for _, env := range []string{"APPDATA", "XDG_CONFIG_HOME"} {
		if dir := os.Getenv(env); dir != "" {
			return filepath.Join(dir, appName)
		}
	}

	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

func ConfigsDir() string {
	return filepath.Join(ConfigRoot(), "configs")
}

// ConfigPathByLabel is where the profile named label lives, whether or not
// it exists yet.
func ConfigPathByLabel(label string) string {
	return filepath.Join(ConfigsDir(), label+configExt)
}

func CurrentLabelFile() string {
	return filepath.Join(ConfigRoot(), "current_config")
}

func ensureDirs() error {
	return os.MkdirAll(ConfigsDir(), 0755)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// checkLabel rejects empty labels and makes sure the store exists.
func checkLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return errors.New("label cannot be empty")
	}

	return ensureDirs()
}

// existingProfile returns the path of label, failing when there is no such profile.
func existingProfile(label string) (string, error) {
	if err := checkLabel(label); err != nil {
		return "", err
	}

	path := ConfigPathByLabel(label)
	if !exists(path) {
		return "", fmt.Errorf("config %q does not exist", label)
	}

	return path, nil
}

// freeProfile returns the path for a new profile, failing when label is taken.
func freeProfile(label string) (string, error) {
	if err := checkLabel(label); err != nil {
		return "", err
	}

	path := ConfigPathByLabel(label)
	if exists(path) {
		return "", fmt.Errorf("config %q already exists", label)
	}

	return path, nil
}

func writeCurrentLabel(label string) error {
	return os.WriteFile(CurrentLabelFile(), []byte(label), 0644)
}

func CurrentLabel() (string, error) {
	if err := ensureDirs(); err != nil {
		return "", err
	}

	b, err := os.ReadFile(CurrentLabelFile())
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoConfig
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(b)), nil
}

func ActiveConfigPath() (string, error) {
	label, err := CurrentLabel()
	if err != nil && !errors.Is(err, ErrNoConfig) {
		return "", err
	}
	if label == "" {
		return "", ErrNoConfig
	}

	return ConfigPathByLabel(label), nil
}

type ConfigInfo struct {
	Label  string
	Path   string
	Active bool
}

// ListConfigs returns every profile, sorted by label.
func ListConfigs() ([]ConfigInfo, error) {
	if err := ensureDirs(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(ConfigsDir())
	if err != nil {
		return nil, err
	}

	active, _ := CurrentLabel()

	var out []ConfigInfo
	for _, e := range entries {
		label, ok := strings.CutSuffix(e.Name(), configExt)
		if e.IsDir() || !ok {
			continue
		}

		out = append(out, ConfigInfo{
			Label:  label,
			Path:   ConfigPathByLabel(label),
			Active: label == active,
		})
	}

	slices.SortFunc(out, func(a, b ConfigInfo) int { return strings.Compare(a.Label, b.Label) })
	return out, nil
}

func SwitchConfig(label string) error {
	if _, err := existingProfile(label); err != nil {
		return err
	}

	return writeCurrentLabel(label)
}

// AddConfig imports the YAML file at srcPath as a new profile.
func AddConfig(label, srcPath string) error {
	dst, err := freeProfile(label)
	if err != nil {
		return err
	}

	if _, err := LoadYAML(srcPath); err != nil {
		return err
	}

	raw, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, raw, 0644)
}

// CreateEmptyConfig writes a new profile holding the defaults.
func CreateEmptyConfig(label string) (string, error) {
	path, err := freeProfile(label)
	if err != nil {
		return "", err
	}

	if err := SaveYAML(DefaultConfig(), path); err != nil {
		return "", err
	}

	return path, nil
}

// RenameConfig moves a profile, keeping it active if it was.
func RenameConfig(oldLabel, newLabel string) error {
	oldPath, err := existingProfile(oldLabel)
	if err != nil {
		return err
	}

	newPath, err := freeProfile(newLabel)
	if err != nil {
		return err
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return err
	}

	if active, _ := CurrentLabel(); active == oldLabel {
		return writeCurrentLabel(newLabel)
	}

	return nil
}

// RemoveConfig deletes a profile. Removing the active one switches back to
// Default, which is reported by the returned bool.
func RemoveConfig(label string) (bool, error) {
	if label == DefaultLabel {
		return false, errors.New("cannot remove the Default config")
	}

	path, err := existingProfile(label)
	if err != nil {
		return false, err
	}

	if err := os.Remove(path); err != nil {
		return false, err
	}

	if active, _ := CurrentLabel(); active != label {
		return false, nil
	}

	if err := SwitchConfig(DefaultLabel); err != nil {
		return false, fmt.Errorf("failed switching to Default: %w", err)
	}

	return true, nil
}

// ResetConfig overwrites a profile with the defaults.
func ResetConfig(label string) error {
	path, err := existingProfile(label)
	if err != nil {
		return err
	}

	return SaveYAML(DefaultConfig(), path)
}

// InitDefaultConfig creates the Default profile and activates it. When it
// already exists it is only activated and os.ErrExist is returned.
func InitDefaultConfig() (string, error) {
	if err := ensureDirs(); err != nil {
		return "", err
	}

	path := ConfigPathByLabel(DefaultLabel)

	if exists(path) {
		return path, errors.Join(os.ErrExist, writeCurrentLabel(DefaultLabel))
	}

	if err := SaveYAML(DefaultConfig(), path); err != nil {
		return "", err
	}

	return path, writeCurrentLabel(DefaultLabel)
}
