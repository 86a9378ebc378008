package colocale

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Loader retrieves the raw catalogs handed to validation and resolution.
type Loader interface {
	Load() (RawCatalog, error)
}

// LoaderFunc adapts a bare function to the Loader interface.
type LoaderFunc func() (RawCatalog, error)

// Load implements Loader for LoaderFunc.
func (fn LoaderFunc) Load() (RawCatalog, error) {
	return fn()
}

// FileLoader reads catalog directories from disk. Two layouts are
// recognized and normalized into one canonical shape at this boundary, so
// the engine never re-detects shape:
//
//	dir/<locale>/<namespace>.json    one file per (locale, namespace)
//	dir/<locale>.json                one file per locale, namespace-grouped
//
// JSON is the canonical format; YAML and TOML files decode the same way.
type FileLoader struct {
	dirs []string
}

// NewFileLoader builds a loader over the given catalog directories.
func NewFileLoader(dirs ...string) *FileLoader {
	return &FileLoader{dirs: append([]string(nil), dirs...)}
}

// Load walks every configured directory and merges the decoded files into
// one raw catalog. Later directories win on key collisions.
func (l *FileLoader) Load() (RawCatalog, error) {
	if l == nil || len(l.dirs) == 0 {
		return nil, errors.New("colocale: no loader directories configured")
	}

	catalog := make(RawCatalog)
	for _, dir := range l.dirs {
		if err := l.loadDir(dir, catalog); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

func (l *FileLoader) loadDir(dir string, catalog RawCatalog) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("colocale: read dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			locale := normalizeLocale(entry.Name())
			if err := l.loadLocaleDir(filepath.Join(dir, entry.Name()), locale, catalog); err != nil {
				return err
			}
			continue
		}

		name, ext, ok := splitCatalogFile(entry.Name())
		if !ok {
			continue
		}

		payload, err := decodeCatalogFile(filepath.Join(dir, entry.Name()), ext)
		if err != nil {
			return err
		}

		locale := normalizeLocale(name)
		namespaces, err := normalizeLocalePayload(payload)
		if err != nil {
			return fmt.Errorf("colocale: %s: %w", filepath.Join(dir, entry.Name()), err)
		}
		mergeRawLocale(catalog, locale, namespaces)
	}

	return nil
}

func (l *FileLoader) loadLocaleDir(dir, locale string, catalog RawCatalog) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("colocale: read dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		namespace, ext, ok := splitCatalogFile(entry.Name())
		if !ok {
			continue
		}

		payload, err := decodeCatalogFile(filepath.Join(dir, entry.Name()), ext)
		if err != nil {
			return err
		}

		mergeRawLocale(catalog, locale, RawLocaleMessages{namespace: RawNamespace(payload)})
	}

	return nil
}

// splitCatalogFile separates a file name into its base name and supported
// extension. Files with other extensions are not catalog files.
func splitCatalogFile(filename string) (base, ext string, ok bool) {
	ext = strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json", ".yaml", ".yml", ".toml":
		return strings.TrimSuffix(filename, filepath.Ext(filename)), ext, true
	default:
		return "", "", false
	}
}

func decodeCatalogFile(path, ext string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("colocale: read %s: %w", path, err)
	}

	payload := make(map[string]any)
	switch ext {
	case ".json":
		err = json.Unmarshal(data, &payload)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &payload)
	case ".toml":
		err = toml.Unmarshal(data, &payload)
	default:
		err = fmt.Errorf("unsupported extension %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("colocale: decode %s: %w", path, err)
	}

	return payload, nil
}

// normalizeLocalePayload converts a whole-locale file payload into raw
// locale messages. Every top-level value must be a namespace object; a
// bare string at the top level means the file is namespace-grouped data
// written in the wrong layout.
func normalizeLocalePayload(payload map[string]any) (RawLocaleMessages, error) {
	namespaces := make(RawLocaleMessages, len(payload))
	for name, value := range payload {
		entries, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("namespace %q is not an object", name)
		}
		namespaces[name] = RawNamespace(entries)
	}
	return namespaces, nil
}

func mergeRawLocale(catalog RawCatalog, locale string, namespaces RawLocaleMessages) {
	target := catalog[locale]
	if target == nil {
		target = make(RawLocaleMessages, len(namespaces))
		catalog[locale] = target
	}

	for namespace, entries := range namespaces {
		existing := target[namespace]
		if existing == nil {
			existing = make(RawNamespace, len(entries))
			target[namespace] = existing
		}
		for key, value := range entries {
			existing[key] = value
		}
	}
}

// Catalog converts the raw catalog into the typed flat shape used by the
// engine. Non-string values are dropped here; the Validator is the place
// that reports them.
func (raw RawCatalog) Catalog() Catalog {
	if len(raw) == 0 {
		return Catalog{}
	}

	catalog := make(Catalog, len(raw))
	for locale, namespaces := range raw {
		localeMessages := make(LocaleMessages, len(namespaces))
		for namespace, entries := range namespaces {
			flat := make(Namespace, len(entries))
			for key, value := range entries {
				if str, ok := value.(string); ok {
					flat[key] = str
				}
			}
			localeMessages[namespace] = flat
		}
		catalog[locale] = localeMessages
	}
	return catalog
}
