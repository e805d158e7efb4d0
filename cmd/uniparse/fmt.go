package main

import (
	"fmt"
	"os"

	uniparse "github.com/uniparse/go-uniparse"

	"github.com/scott-cotton/cli"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: fmt requires file arguments to detect formats", cli.ErrUsage)
	}
	for _, file := range args {
		if err := fmtFile(cfg, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, cc *cli.Context, file string) error {
	f, err := uniparse.ParseFile(file)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", file, err)
	}
	out := f.RenderPretty()
	if !cfg.Write {
		_, err := cc.Out.Write([]byte(out))
		return err
	}
	if err := os.WriteFile(file, []byte(out), 0644); err != nil {
		return fmt.Errorf("error rewriting %s: %w", file, err)
	}
	return nil
}
