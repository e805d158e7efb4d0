package main

import (
	"fmt"

	"github.com/uniparse/go-uniparse/ir"

	"github.com/scott-cotton/cli"
)

func rm(cfg *RmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		cfg.Rm.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: rm requires one argument, a dotted path", cli.ErrUsage)
	}
	path, err := ir.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
	root, err := getScript(cc, file)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", file, err)
	}
	if err := ir.Remove(root, path); err != nil {
		return fmt.Errorf("error removing %s: %w", args[0], err)
	}
	return writeResult(cfg.MainConfig, cc, file, cfg.Write, root)
}
