package parseresult

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/napalu/parseresult/errs"
	"github.com/napalu/parseresult/symbol"
	"github.com/napalu/parseresult/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTree(t *testing.T) {
	t.Run("nil symbol", func(t *testing.T) {
		tree, err := NewTree(nil)
		assert.Nil(t, tree)
		assert.True(t, errors.Is(err, errs.ErrNilSymbol))
	})

	t.Run("typed nil symbol", func(t *testing.T) {
		var cmd *symbol.Command
		var tree *Tree
		var err error
		assert.NotPanics(t, func() {
			tree, err = NewTree(cmd)
		})
		assert.Nil(t, tree)
		assert.True(t, errors.Is(err, errs.ErrNilSymbol))
	})

	t.Run("config error aborts", func(t *testing.T) {
		failing := func(tree *Tree, err *error) {
			*err = errors.New("bad config")
		}
		tree, err := NewTree(symbol.NewCommand("tool"), failing)
		assert.Nil(t, tree)
		assert.EqualError(t, err, "bad config")
	})

	t.Run("root", func(t *testing.T) {
		cmd := symbol.NewCommand("tool")
		tree := newTree(t, cmd)
		root := tree.Root()

		assert.True(t, root.IsValid())
		assert.True(t, root.IsRoot())
		assert.Equal(t, CommandKind, root.Kind())
		assert.Same(t, cmd, root.Symbol())
		_, ok := root.Parent()
		assert.False(t, ok)
		assert.Equal(t, 1, tree.Len())
		assert.NotEmpty(t, tree.ID())
		assert.Same(t, tree, root.Tree())
	})

	t.Run("result lookup", func(t *testing.T) {
		tree := newTree(t, symbol.NewCommand("tool"))
		r, ok := tree.Result(0)
		require.True(t, ok)
		assert.Equal(t, tree.Root(), r)
		_, ok = tree.Result(1)
		assert.False(t, ok)
		_, ok = tree.Result(-1)
		assert.False(t, ok)
	})
}

func TestResult_AddChildren(t *testing.T) {
	target := symbol.NewArg("target")
	color := symbol.NewOption("color")
	build := symbol.NewCommand("build", symbol.WithArguments(target), symbol.WithOptions(color))
	root := symbol.NewCommand("tool", symbol.WithSubcommands(build))

	t.Run("kinds and parents", func(t *testing.T) {
		tree := newTree(t, root)
		b, err := tree.Root().AddCommand(build, WithToken(token.New("build", token.Command, 0)))
		require.NoError(t, err)
		o, err := b.AddOption(color)
		require.NoError(t, err)
		a, err := b.AddArgument(target)
		require.NoError(t, err)

		assert.Equal(t, CommandKind, b.Kind())
		assert.Equal(t, OptionKind, o.Kind())
		assert.Equal(t, ArgumentKind, a.Kind())

		p, ok := o.Parent()
		require.True(t, ok)
		assert.Equal(t, b, p)
		p, ok = b.Parent()
		require.True(t, ok)
		assert.True(t, p.IsRoot())
		assert.False(t, b.IsRoot())
		assert.Equal(t, 4, tree.Len())
	})

	t.Run("children keep insertion order", func(t *testing.T) {
		tree := newTree(t, root)
		b, err := tree.Root().AddCommand(build)
		require.NoError(t, err)
		a, err := b.AddArgument(target)
		require.NoError(t, err)
		o, err := b.AddOption(color)
		require.NoError(t, err)

		children := b.Children()
		assert.Equal(t, 2, children.Len())
		assert.Equal(t, []Result{a, o}, children.Results())
		assert.True(t, children.Contains(color))
		got, ok := children.ResultFor(color)
		require.True(t, ok)
		assert.Equal(t, o, got)
		_, ok = tree.Root().Children().ResultFor(color)
		assert.False(t, ok, "lookup is per parent")
		_, ok = children.ResultFor(nil)
		assert.False(t, ok)
	})

	t.Run("duplicate symbol", func(t *testing.T) {
		tree := newTree(t, root)
		b, err := tree.Root().AddCommand(build)
		require.NoError(t, err)
		_, err = b.AddOption(color)
		require.NoError(t, err)

		_, err = b.AddOption(color)
		assert.True(t, errors.Is(err, errs.ErrDuplicateResult))
		assert.Contains(t, err.Error(), "color")
		assert.Contains(t, err.Error(), "build")
		assert.Equal(t, 1, b.Children().Len())
	})

	t.Run("nil symbol", func(t *testing.T) {
		tree := newTree(t, root)
		_, err := tree.Root().AddCommand(nil)
		assert.True(t, errors.Is(err, errs.ErrNilSymbol))
		_, err = tree.Root().AddOption(nil)
		assert.True(t, errors.Is(err, errs.ErrNilSymbol))
		_, err = tree.Root().AddArgument(nil)
		assert.True(t, errors.Is(err, errs.ErrNilSymbol))
	})

	t.Run("typed nil symbol", func(t *testing.T) {
		tree := newTree(t, root)
		var (
			cmd *symbol.Command
			opt *symbol.Option
			arg *symbol.Arg
		)
		require.NotPanics(t, func() {
			_, err := tree.Root().AddCommand(cmd)
			assert.True(t, errors.Is(err, errs.ErrNilSymbol))
			_, err = tree.Root().AddOption(opt)
			assert.True(t, errors.Is(err, errs.ErrNilSymbol))
			_, err = tree.Root().AddArgument(arg)
			assert.True(t, errors.Is(err, errs.ErrNilSymbol))

			assert.Nil(t, tree.Root().DefaultValueFor(arg))
			assert.False(t, tree.Root().UseDefaultValueFor(arg))
			assert.Nil(t, tree.Root().UnrecognizedArgumentError(arg))
			assert.False(t, tree.Root().Children().Contains(cmd))
		})
		assert.Equal(t, 1, tree.Len())
	})

	t.Run("implicit only applies to options", func(t *testing.T) {
		tree := newTree(t, root)
		b, err := tree.Root().AddCommand(build, AsImplicit())
		require.NoError(t, err)
		assert.False(t, b.IsImplicit())
		o, err := b.AddOption(color, AsImplicit())
		require.NoError(t, err)
		assert.True(t, o.IsImplicit())
	})
}

func TestTree_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	target := symbol.NewArg("target", symbol.WithDefaultValue("."))
	tree := newTree(t, symbol.NewCommand("build", symbol.WithArguments(target)), WithLogger(logger))

	tree.Root().DefaultValueFor(target)

	out := buf.String()
	assert.Contains(t, out, "result created")
	assert.Contains(t, out, "default resolved")
	assert.Contains(t, out, "tree="+tree.ID())
	assert.Contains(t, out, "argument=target")
}

func TestTree_NilLogger(t *testing.T) {
	target := symbol.NewArg("target", symbol.WithDefaultValue("."))
	tree := newTree(t, symbol.NewCommand("build", symbol.WithArguments(target)), WithLogger(nil))
	assert.NotPanics(t, func() {
		tree.Root().DefaultValueFor(target)
	})
}
