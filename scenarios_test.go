package parseresult

import (
	"testing"

	"github.com/napalu/parseresult/symbol"
	"github.com/napalu/parseresult/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_ColorNotAllowed(t *testing.T) {
	colorValue := symbol.NewArg("color",
		symbol.WithArity(symbol.ExactlyOne),
		symbol.WithAllowedValues("red", "green", "blue"))
	color := symbol.NewOption("--color", symbol.WithValue(colorValue))
	tool := symbol.NewCommand("paint", symbol.WithOptions(color))

	toks, err := token.Split("--color purple")
	require.NoError(t, err)

	tree := newTree(t, tool)
	o, err := tree.Root().AddOption(color, WithToken(toks[0]))
	require.NoError(t, err)
	o.AddToken(toks[1])

	got := o.UnrecognizedArgumentError(colorValue)
	require.NotNil(t, got)
	assert.Contains(t, got.Message(), "purple")
	for _, v := range []string{"red", "green", "blue"} {
		assert.Contains(t, got.Message(), v)
	}
	assert.Equal(t, o, got.Result())
	assert.Equal(t, "OptionResult: --color", o.String())
}

func TestScenario_BuildTargetDefault(t *testing.T) {
	calls := 0
	target := symbol.NewArg("target",
		symbol.WithArity(symbol.ZeroOrOne),
		symbol.WithContextualDefault(func(symbol.ResultContext) any {
			calls++
			return "."
		}))
	build := symbol.NewCommand("build", symbol.WithArguments(target))

	tree := newTree(t, build)
	r := tree.Root()
	child, err := r.AddArgument(target)
	require.NoError(t, err)
	child.AddToken(token.NewImplicit("."))

	assert.True(t, r.UseDefaultValueFor(target))
	for i := 0; i < 3; i++ {
		assert.Equal(t, ".", r.DefaultValueFor(target))
	}
	assert.Equal(t, 1, calls)
}

func TestScenario_ExplicitOptionLiteral(t *testing.T) {
	value := symbol.NewArg("jobs")
	jobs := symbol.NewOption("jobs", symbol.WithValue(value))
	tree := newTree(t, symbol.NewCommand("make", symbol.WithOptions(jobs)))

	o, err := tree.Root().AddOption(jobs, WithToken(token.New("--jobs", token.Option, 0)))
	require.NoError(t, err)
	o.AddToken(token.New("5", token.Argument, 1))

	assert.Nil(t, o.UnrecognizedArgumentError(value))
	assert.False(t, o.UseDefaultValueFor(value))
	o.DefaultValueFor(value)
	assert.True(t, o.UseDefaultValueFor(value))
}

func TestScenario_CapacityLimit(t *testing.T) {
	one := symbol.NewArg("one", symbol.WithArity(symbol.ZeroOrOne))
	three := symbol.NewArg("three", symbol.WithArity(symbol.Arity{Min: 0, Max: 3}))
	cmd := symbol.NewCommand("cmd", symbol.WithArguments(one, three))

	r := newTree(t, cmd).Root()
	assert.Equal(t, 4, r.MaximumArgumentCapacity())

	toks, err := token.Split("a b c")
	require.NoError(t, err)
	for _, tok := range toks {
		r.AddToken(tok)
	}
	assert.False(t, r.IsArgumentLimitReached())

	r.AddToken(token.New("d", token.Argument, 3))
	assert.True(t, r.IsArgumentLimitReached())
}
