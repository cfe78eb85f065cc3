package ledgerfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LanguageFileLoader reads language catalog files. Each file declares one
// language; files for the same tag merge, later files winning on key
// conflicts. Nested content maps flatten to dot-separated keys.
type LanguageFileLoader struct {
	paths []string
}

func NewLanguageFileLoader(paths ...string) *LanguageFileLoader {
	return &LanguageFileLoader{paths: append([]string(nil), paths...)}
}

type rawLanguageFile struct {
	Tag         string         `json:"tag" yaml:"tag"`
	Name        string         `json:"name" yaml:"name"`
	DisplayName string         `json:"displayName" yaml:"displayName"`
	Aliases     []string       `json:"aliases" yaml:"aliases"`
	Content     map[string]any `json:"content" yaml:"content"`
}

// Load reads and merges all configured files into language entries.
func (l *LanguageFileLoader) Load() ([]LanguageInfo, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("ledgerfmt: no loader paths configured")
	}

	byTag := make(map[string]*LanguageInfo)
	var order []string

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("ledgerfmt: read %s: %w", path, err)
		}

		raw, err := decodeLanguageFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("ledgerfmt: decode %s: %w", path, err)
		}
		if raw.Tag == "" {
			return nil, fmt.Errorf("ledgerfmt: %s declares no language tag", path)
		}

		content := make(map[string]string, len(raw.Content))
		flattenContent("", raw.Content, content)

		key := strings.ToLower(raw.Tag)
		info, ok := byTag[key]
		if !ok {
			info = &LanguageInfo{Tag: raw.Tag, Content: make(map[string]string, len(content))}
			byTag[key] = info
			order = append(order, key)
		}

		if raw.Name != "" {
			info.Name = raw.Name
		}
		if raw.DisplayName != "" {
			info.DisplayName = raw.DisplayName
		}
		info.Aliases = append(info.Aliases, raw.Aliases...)
		for contentKey, value := range content {
			info.Content[contentKey] = value
		}
	}

	infos := make([]LanguageInfo, 0, len(order))
	for _, key := range order {
		infos = append(infos, *byTag[key])
	}
	return infos, nil
}

func decodeLanguageFile(path string, data []byte) (*rawLanguageFile, error) {
	raw := &rawLanguageFile{}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	return raw, nil
}

// flattenContent turns nested maps into dot keys: {"a": {"b": "c"}} becomes
// "a.b" -> "c". Non-string leaves are skipped; catalogs only carry text.
func flattenContent(prefix string, value map[string]any, out map[string]string) {
	for key, item := range value {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		switch v := item.(type) {
		case string:
			out[full] = v
		case map[string]any:
			flattenContent(full, v, out)
		}
	}
}
