package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrLanguageNotFound                   = errors.New("language not found")
	ErrDefaultLanguageNotFound            = errors.New("default " + ErrLanguageNotFound.Error())
	ErrExtraKey                           = errors.New("extra key")
	ErrMissingKey                         = errors.New("missing key")
)

// Bundle holds the translations of every loaded language together with one
// x/text printer per language. Lookups fall back to the default language.
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
}

var defaultBundle *Bundle

func init() {
	var err error
	defaultBundle, err = NewBundleWithFS(defaultLocales, "locales")
	if err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}
}

// Default returns the process-wide bundle built from the embedded locales.
func Default() *Bundle {
	return defaultBundle
}

// NewBundle returns a fresh bundle loaded from the embedded locales.
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

// NewEmptyBundle returns a bundle without any translations. English is the default language.
func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
	}
}

// NewBundleWithFS loads every <lang>.json file found in dir. The default language is
// loaded first so that the remaining languages can be validated against it.
func NewBundleWithFS(fsys fs.FS, dir string) (*Bundle, error) {
	b := NewEmptyBundle()

	if err := b.loadFS(fsys, dir); err != nil {
		return nil, err
	}

	if _, exists := b.translations[b.defaultLang]; !exists {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	return b, nil
}

// TL returns the translation for the given language and key
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if p, exists := b.printers[lang]; exists {
		return p.Sprintf(key, args...)
	}

	if p := b.printers[b.defaultLang]; p != nil {
		return p.Sprintf(key, args...)
	}

	return key
}

// Message returns the raw, unformatted translation for key in lang, falling back to the
// default language and finally to the key itself.
func (b *Bundle) Message(lang language.Tag, key string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if msg, ok := b.translations[lang][key]; ok {
		return msg
	}
	if msg, ok := b.translations[b.defaultLang][key]; ok {
		return msg
	}

	return key
}

// LoadFromString adds the JSON encoded translations for lang.
func (b *Bundle) LoadFromString(lang language.Tag, data string) error {
	var translations map[string]string
	if err := json.Unmarshal([]byte(data), &translations); err != nil {
		return err
	}

	return b.AddLanguage(lang, translations)
}

// AddLanguage adds a new language to the bundle or updates existing language if it exists
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	existing := b.translations[lang]
	merged := make(map[string]string, len(existing)+len(translations))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}

	original := b.translations[lang]
	b.translations[lang] = merged

	// only new non-default languages are checked against the default key set
	var errs []error
	if lang != b.defaultLang && original == nil {
		errs = b.validateLanguage(lang)
	}

	if len(errs) > 0 {
		if original == nil {
			delete(b.translations, lang)
		} else {
			b.translations[lang] = original
		}
		return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, lang, errs)
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			delete(merged, key)
			b.translations[lang] = merged
			return fmt.Errorf("%w: %s: %w", ErrFailedToSetString, key, err)
		}
	}

	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	return nil
}

// HasLanguage checks if a language is supported
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations[lang]
	return exists
}

func (b *Bundle) loadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}

	deferred := make(map[language.Tag]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		lang, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}

		file := path.Join(dir, entry.Name())
		if lang != b.defaultLang {
			deferred[lang] = file
			continue
		}
		if err := b.loadFile(fsys, lang, file); err != nil {
			return err
		}
	}

	for lang, file := range deferred {
		if err := b.loadFile(fsys, lang, file); err != nil {
			return err
		}
	}

	return nil
}

func (b *Bundle) loadFile(fsys fs.FS, lang language.Tag, file string) error {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return err
	}

	return b.LoadFromString(lang, string(data))
}

func (b *Bundle) validateLanguage(lang language.Tag) []error {
	var errs []error

	translations, exists := b.translations[lang]
	if !exists {
		return []error{fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)}
	}

	if len(translations) == 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyTranslations, lang))
	}

	defaultTranslations, exists := b.translations[b.defaultLang]
	if !exists {
		return append(errs, fmt.Errorf("%w: %s", ErrDefaultLanguageNotFound, b.defaultLang))
	}

	for key := range defaultTranslations {
		if _, exists := translations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrMissingKey, lang, key))
		}
	}

	for key := range translations {
		if _, exists := defaultTranslations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrExtraKey, lang, key))
		}
	}

	return errs
}
