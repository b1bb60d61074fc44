package parseresult

import (
	"testing"

	"github.com/napalu/parseresult/i18n"
	"github.com/napalu/parseresult/symbol"
	"github.com/napalu/parseresult/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestBundleValidationMessages(t *testing.T) {
	t.Run("english", func(t *testing.T) {
		m := DefaultValidationMessages()
		assert.Equal(t,
			"Argument 'purple' not recognized. Must be one of:\n\t'red'\n\t'green'\n\t'blue'",
			m.UnrecognizedArgument("purple", []string{"red", "green", "blue"}))
		assert.Equal(t, "Unrecognized command or argument 'extra'", m.UnrecognizedCommandOrArgument("extra"))
	})

	t.Run("german", func(t *testing.T) {
		m := NewValidationMessages(i18n.Default(), language.German)
		assert.Equal(t, language.German, m.Language())
		assert.Equal(t,
			"Argument 'lila' nicht erkannt. Zulässige Werte:\n\t'rot'",
			m.UnrecognizedArgument("lila", []string{"rot"}))
	})

	t.Run("unknown language falls back to default", func(t *testing.T) {
		m := NewValidationMessages(i18n.Default(), language.Japanese)
		assert.Equal(t, "Unrecognized command or argument 'x'", m.UnrecognizedCommandOrArgument("x"))
	})

	t.Run("tree configured for german", func(t *testing.T) {
		colorValue := symbol.NewArg("color", symbol.WithAllowedValues("rot", "grün"))
		color := symbol.NewOption("color", symbol.WithValue(colorValue))
		tree, err := NewTree(symbol.NewCommand("malen", symbol.WithOptions(color)),
			WithValidationMessages(NewValidationMessages(i18n.Default(), language.German)))
		require.NoError(t, err)

		o, err := tree.Root().AddOption(color)
		require.NoError(t, err)
		o.AddToken(token.New("lila", token.Argument, 1))

		got := o.UnrecognizedArgumentError(colorValue)
		require.NotNil(t, got)
		assert.Contains(t, got.Message(), "nicht erkannt")
		assert.Contains(t, got.Message(), "'grün'")
	})
}
