package main

import (
	"fmt"

	"github.com/uniparse/go-uniparse/ir"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a dotted path and a value", cli.ErrUsage)
	}
	path, err := ir.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	val := valueNode(cfg, args[1])
	file := "-"
	if len(args) > 2 {
		file = args[2]
	}
	root, err := getScript(cc, file)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", file, err)
	}
	if err := ir.Set(root, path, val); err != nil {
		return fmt.Errorf("error setting %s: %w", args[0], err)
	}
	return writeResult(cfg.MainConfig, cc, file, cfg.Write, root)
}

// valueNode maps a command line value to an entry: true/false give a
// flag, anything else an assignment, or a bare scalar under -s.
func valueNode(cfg *SetConfig, arg string) *ir.Node {
	switch arg {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	}
	if cfg.Scalar {
		return ir.FromString(arg)
	}
	return ir.FromAssignment(arg)
}
