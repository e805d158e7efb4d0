package main

import (
	"fmt"

	"github.com/uniparse/go-uniparse/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func grep(cfg *GrepConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Grep.Parse(cc, args)
	if err != nil {
		cfg.Grep.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: grep requires one argument, a boolean expression", cli.ErrUsage)
	}
	program, err := expr.Compile(args[0], expr.AsBool())
	if err != nil {
		return fmt.Errorf("%w: invalid expression %q: %w", cli.ErrUsage, args[0], err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	matched := false
	for _, file := range files {
		root, err := getScript(cc, file)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", file, err)
		}
		m, err := grepNode(cfg, cc, program, root, nil)
		if err != nil {
			return err
		}
		matched = matched || m
	}
	if !matched {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func grepNode(cfg *GrepConfig, cc *cli.Context, program *vm.Program, node *ir.Node, path []string) (bool, error) {
	matched := false
	for i, key := range node.Keys {
		val := node.Values[i]
		segs := append(append([]string{}, path...), key)
		env := map[string]any{
			"key":   key,
			"path":  ir.PathString(segs),
			"kind":  val.Type.String(),
			"value": val.String,
			"flag":  val.Bool,
		}
		res, err := expr.Run(program, env)
		if err != nil {
			return matched, fmt.Errorf("error evaluating expression: %w", err)
		}
		if res.(bool) {
			matched = true
			fmt.Fprintf(cc.Out, "%s %s %s\n",
				ir.PathString(segs), val.Type, entryPayload(val))
		}
		if val.Type == ir.BlockType || val.Type == ir.PairGroupType {
			m, err := grepNode(cfg, cc, program, val, segs)
			if err != nil {
				return matched, err
			}
			matched = matched || m
		}
	}
	return matched, nil
}

func entryPayload(val *ir.Node) string {
	switch val.Type {
	case ir.ScalarType, ir.AssignmentType:
		return fmt.Sprintf("%q", val.String)
	case ir.FlagType:
		return fmt.Sprintf("%t", val.Bool)
	case ir.CallType:
		return fmt.Sprintf("(%d args)", len(val.Values))
	}
	return fmt.Sprintf("(%d entries)", val.Len())
}
