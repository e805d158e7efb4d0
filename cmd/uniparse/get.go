package main

import (
	"fmt"

	"github.com/uniparse/go-uniparse/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path, err := ir.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		root, err := getScript(cc, file)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", file, err)
		}
		node := ir.Get(root, path...)
		if node == nil {
			return fmt.Errorf("no value at %s in %s", args[0], file)
		}
		if err := encodeTo(cfg.MainConfig, cc.Out, node); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
