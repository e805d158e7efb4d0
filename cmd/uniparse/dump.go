package main

import (
	"encoding/json"
	"fmt"

	"github.com/uniparse/go-uniparse/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := dumpFile(cfg, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func dumpFile(cfg *DumpConfig, cc *cli.Context, file string) error {
	root, err := getScript(cc, file)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", file, err)
	}
	proj := ir.ToAny(root)
	var d []byte
	if cfg.Y {
		d, err = yaml.Marshal(proj)
	} else {
		d, err = json.MarshalIndent(proj, "", "  ")
		d = append(d, '\n')
	}
	if err != nil {
		return fmt.Errorf("error marshaling %s: %w", file, err)
	}
	_, err = cc.Out.Write(d)
	return err
}
