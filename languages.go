package ledgerfmt

import (
	"sort"
	"strings"
)

// LanguageInfo describes one supported display language. Content holds the
// flattened translation table, dot-separated keys to templates. Name is the
// language's own-language name, DisplayName the English one.
type LanguageInfo struct {
	Tag         string
	Name        string
	DisplayName string
	Aliases     []string
	Content     map[string]string
}

// Languages is an immutable language registry. Lookups by tag are exact and
// case-insensitive; alias lookups cover legacy tags kept for stored user
// settings.
type Languages struct {
	byTag map[string]*LanguageInfo
	tags  []string
}

// NewLanguages builds a registry from infos, deep-copying content so callers
// cannot mutate the registry afterwards.
func NewLanguages(infos []LanguageInfo) *Languages {
	byTag := make(map[string]*LanguageInfo, len(infos))

	for i := range infos {
		info := infos[i]
		content := make(map[string]string, len(info.Content))
		for key, value := range info.Content {
			content[key] = value
		}
		info.Content = content
		info.Aliases = append([]string(nil), info.Aliases...)
		byTag[strings.ToLower(info.Tag)] = &info
	}

	langs := &Languages{byTag: byTag}
	for tag := range byTag {
		langs.tags = append(langs.tags, byTag[tag].Tag)
	}
	sort.Strings(langs.tags)
	return langs
}

// Len returns the number of registered languages.
func (l *Languages) Len() int {
	return len(l.byTag)
}

// Tags returns the registered language tags in sorted order.
func (l *Languages) Tags() []string {
	return append([]string(nil), l.tags...)
}

// ByTag looks up a language by exact tag, case-insensitively.
func (l *Languages) ByTag(tag string) (*LanguageInfo, bool) {
	info, ok := l.byTag[strings.ToLower(tag)]
	return info, ok
}

// ByAlias looks up a language by one of its declared aliases,
// case-insensitively. Exact tags are not consulted here.
func (l *Languages) ByAlias(alias string) (*LanguageInfo, bool) {
	for _, tag := range l.tags {
		info := l.byTag[strings.ToLower(tag)]
		for _, candidate := range info.Aliases {
			if strings.EqualFold(candidate, alias) {
				return info, true
			}
		}
	}
	return nil, false
}

// ByPrefix looks up a language whose tag's primary subtag matches the given
// shortened tag, e.g. "zh" finding "zh-Hans".
func (l *Languages) ByPrefix(shortTag string) (*LanguageInfo, bool) {
	for _, tag := range l.tags {
		if strings.EqualFold(TextBefore(tag+"-", "-"), shortTag) {
			return l.byTag[strings.ToLower(tag)], true
		}
	}
	return nil, false
}
