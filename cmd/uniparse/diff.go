package main

import (
	"fmt"

	"github.com/uniparse/go-uniparse/encode"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	a, err := normalized(cfg, cc, args[0])
	if err != nil {
		return err
	}
	b, err := normalized(cfg, cc, args[1])
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if _, err := cc.Out.Write([]byte(dmp.DiffPrettyText(diffs))); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// normalized parses and re-renders so formatting differences do not
// show up in the diff.
func normalized(cfg *DiffConfig, cc *cli.Context, file string) (string, error) {
	root, err := getScript(cc, file)
	if err != nil {
		return "", fmt.Errorf("error parsing %s: %w", file, err)
	}
	return encode.MustString(root) + "\n", nil
}
