/*
Package parseresult models the outcome of parsing a command line as a tree of
per-symbol results.

A parser builds the tree top-down while it recognizes input: one root
CommandResult, then OptionResult, ArgumentResult and nested CommandResult
children, each receiving the tokens attributed to it.

	tree, err := parseresult.NewTree(tool)
	if err != nil {
		return err
	}
	build, _ := tree.Root().AddCommand(buildCmd)
	color, _ := build.AddOption(colorOpt, parseresult.WithToken(token.New("--color", token.Option, 1)))
	color.AddToken(token.New("purple", token.Argument, 2))

Once built, results answer the questions a binder asks:

  - capacity: MaximumArgumentCapacity, RemainingArgumentCapacity, IsArgumentLimitReached
  - defaults: DefaultValueFor (memoized per result) and UseDefaultValueFor
  - allowed values: UnrecognizedArgumentError

Diagnostics are returned as *ParseError values; the package never decides whether a
parse failed. Tree.CollectErrors gathers every diagnostic of a tree in one pass.

Message text comes from ValidationMessages. A tree may be given its own with
WithValidationMessages and any result may override it for its subtree with
Result.SetValidationMessages; otherwise DefaultValidationMessages is used.
*/
package parseresult
