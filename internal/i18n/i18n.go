package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aion-dev/aion/internal/config"
)

// FallbackLocale is consulted when a key is missing from the requested locale.
const FallbackLocale = "en"

//go:embed locales/*.yaml
var bundled embed.FS

// Translator looks up user-facing strings.
type Translator interface {
	// T returns the string for a dotted key such as "status.model_empty".
	// Missing keys fall back to FallbackLocale, then to the key itself.
	T(locale, key string) string
}

// Meta describes a locale file.
type Meta struct {
	Code      string `yaml:"code"`
	Name      string `yaml:"name"`
	Native    string `yaml:"native"`
	Direction string `yaml:"direction"` // "ltr" or "rtl"
	Status    string `yaml:"status"`
}

// RTL reports whether the locale is written right to left.
func (m Meta) RTL() bool {
	return m.Direction == "rtl"
}

type localeFile struct {
	meta     Meta
	sections map[string]interface{}
}

// Manager holds every loaded locale. It is read-only after construction and
// safe for concurrent use.
type Manager struct {
	locales  map[string]*localeFile
	fallback string
}

// New loads the bundled locales and then every *.yaml file found in dirs.
// Files from dirs override bundled locales with the same code. Directories
// that do not exist are skipped.
func New(dirs ...string) (*Manager, error) {
	m := &Manager{
		locales:  make(map[string]*localeFile),
		fallback: FallbackLocale,
	}

	if err := m.loadFS(bundled, "locales"); err != nil {
		return nil, fmt.Errorf("failed to load bundled locales: %w", err)
	}

	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		if err := m.loadFS(os.DirFS(dir), "."); err != nil {
			return nil, fmt.Errorf("failed to load locales from %s: %w", dir, err)
		}
	}

	if _, ok := m.locales[m.fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %q not found", m.fallback)
	}

	return m, nil
}

// Bundled returns a manager holding only the locales compiled into the binary.
// It panics if they fail to parse, which is a build defect.
func Bundled() *Manager {
	m, err := New()
	if err != nil {
		panic(err)
	}
	return m
}

// SearchPaths returns the directories checked for extra locale files:
// ./locales, <executable dir>/locales and <config dir>/locales.
func SearchPaths() []string {
	var paths []string

	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(wd, "locales"))
	}

	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), "locales"))
	}

	if dir, err := config.GetConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "locales"))
	}

	return paths
}

// T implements Translator.
func (m *Manager) T(locale, key string) string {
	if s, ok := m.lookup(locale, key); ok {
		return s
	}
	if s, ok := m.lookup(m.fallback, key); ok {
		return s
	}
	return key
}

// AvailableLocales returns the sorted codes of every loaded locale.
func (m *Manager) AvailableLocales() []string {
	codes := make([]string, 0, len(m.locales))
	for code := range m.locales {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Meta returns the metadata of a loaded locale.
func (m *Manager) Meta(code string) (Meta, bool) {
	l, ok := m.locales[code]
	if !ok {
		return Meta{}, false
	}
	return l.meta, true
}

func (m *Manager) lookup(locale, key string) (string, bool) {
	l, ok := m.locales[locale]
	if !ok {
		return "", false
	}

	var current interface{} = l.sections
	for _, part := range strings.Split(key, ".") {
		section, ok := current.(map[string]interface{})
		if !ok {
			return "", false
		}
		current, ok = section[part]
		if !ok {
			return "", false
		}
	}

	s, ok := current.(string)
	return s, ok
}

func (m *Manager) loadFS(fsys fs.FS, dir string) error {
	matches, err := fs.Glob(fsys, pathJoin(dir, "*.yaml"))
	if err != nil {
		return err
	}

	for _, name := range matches {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("failed to read locale file %s: %w", name, err)
		}

		l, err := parseLocale(data)
		if err != nil {
			return fmt.Errorf("failed to parse locale file %s: %w", name, err)
		}

		m.locales[l.meta.Code] = l
	}

	return nil
}

func parseLocale(data []byte) (*localeFile, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var doc struct {
		Meta Meta `yaml:"meta"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Meta.Code == "" {
		return nil, fmt.Errorf("meta.code is missing")
	}

	delete(raw, "meta")
	return &localeFile{meta: doc.Meta, sections: raw}, nil
}

func pathJoin(dir, name string) string {
	if dir == "." || dir == "" {
		return name
	}
	return dir + "/" + name
}
