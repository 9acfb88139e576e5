package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"dotkit/internal/jsonc"
)

// Fixed filenames the diff operates on, resolved against the settings
// directory.
const (
	SettingsFile = "settings.json"
	BaseFile     = "settings.base.jsonc"
	LocalFile    = "settings.local.jsonc"
)

// ErrSettingsMissing reports that the required settings.json does not
// exist in the settings directory.
var ErrSettingsMissing = errors.New("settings.json not found")

// Documents holds the three parsed configuration documents.
type Documents struct {
	Settings *jsonc.Value
	Base     *jsonc.Value
	Local    *jsonc.Value
}

// Load reads the three documents from dir. settings.json is required;
// the absence of either .jsonc source is not an error and yields an
// empty object. All three files are parsed leniently, so comments and
// trailing commas are accepted everywhere.
func Load(dir string) (*Documents, error) {
	settingsPath := filepath.Join(dir, SettingsFile)
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w in %s", ErrSettingsMissing, dir)
		}
		return nil, fmt.Errorf("read %s: %w", settingsPath, err)
	}
	merged, err := jsonc.ParseJSONC(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", settingsPath, err)
	}

	base, err := loadOptional(filepath.Join(dir, BaseFile))
	if err != nil {
		return nil, err
	}
	local, err := loadOptional(filepath.Join(dir, LocalFile))
	if err != nil {
		return nil, err
	}

	return &Documents{Settings: merged, Base: base, Local: local}, nil
}

// loadOptional parses a JSONC source, treating a missing file as an
// empty object.
func loadOptional(path string) (*jsonc.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return jsonc.NewObject(), nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	v, err := jsonc.ParseJSONC(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return v, nil
}

// SourceInfo describes one of the three settings files for display.
type SourceInfo struct {
	Name    string
	Path    string
	Exists  bool
	Size    int64
	TopKeys int
}

// Sources inspects the three settings files in dir without requiring any
// of them to exist. Unparseable files report zero top-level keys.
func Sources(dir string) []SourceInfo {
	infos := make([]SourceInfo, 0, 3)
	for _, name := range []string{SettingsFile, BaseFile, LocalFile} {
		path := filepath.Join(dir, name)
		info := SourceInfo{Name: name, Path: path}
		if st, err := os.Stat(path); err == nil && !st.IsDir() {
			info.Exists = true
			info.Size = st.Size()
			if data, err := os.ReadFile(path); err == nil {
				if v, err := jsonc.ParseJSONC(data); err == nil {
					info.TopKeys = v.Len()
				}
			}
		}
		infos = append(infos, info)
	}
	return infos
}
