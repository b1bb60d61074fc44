package i18n

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
}

// MessageProvider defines an interface for getting default messages
type MessageProvider interface {
	GetMessage(key string) string
}

// BundleMessageProvider implements MessageProvider on top of a Bundle for one language
type BundleMessageProvider struct {
	bundle *Bundle
	lang   language.Tag
}

// NewBundleMessageProvider creates a provider returning the raw messages of bundle in lang
func NewBundleMessageProvider(bundle *Bundle, lang language.Tag) *BundleMessageProvider {
	return &BundleMessageProvider{
		bundle: bundle,
		lang:   lang,
	}
}

// GetMessage returns the message for the given key, or the key itself when unknown
func (p *BundleMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}

	return p.bundle.Message(p.lang, key)
}

// TrError represents a translatable error with optional formatting arguments
// and error wrapping support.
//
// Example usage:
//
//	err := NewError("parseresult.error.duplicate_result")
//	err = err.WithArgs("target", "build")
//	err = err.Wrap(originalError)
type TrError struct {
	// sentinel is shared by every copy derived from the same NewError call
	sentinel        error
	key             string
	args            []interface{}
	wrapped         error
	messageProvider MessageProvider
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	provider := getDefaultProvider()
	return &TrError{
		sentinel:        errors.New(provider.GetMessage(key)),
		key:             key,
		messageProvider: provider,
	}
}

// Error returns the message, formatted with args if provided
func (e *TrError) Error() string {
	msg := e.messageProvider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            args,
		wrapped:         e.wrapped,
		messageProvider: e.messageProvider,
	}
}

// Wrap returns a new error that wraps another error
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            e.args,
		wrapped:         err,
		messageProvider: e.messageProvider,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}
	return target == e.sentinel || target == e
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider replaces the provider used by errors created afterwards
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	if defaultProvider != nil {
		defer defaultProviderMux.RUnlock()
		return defaultProvider
	}
	defaultProviderMux.RUnlock()

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = NewBundleMessageProvider(Default(), language.English)
	}
	return defaultProvider
}
