package main

import (
	"fmt"
	"io"

	"github.com/uniparse/go-uniparse/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		if err := viewFile(cfg, cc, file); err != nil {
			return err
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("\n"))
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, file string) error {
	root, err := getScript(cc, file)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", file, err)
	}
	return encode.Encode(root, cc.Out, viewOpts(cfg, cc.Out)...)
}

// view renders in color even when the output is not a terminal, unless
// colors were explicitly switched off on the main command.
func viewOpts(cfg *ViewConfig, w io.Writer) []encode.EncodeOption {
	opts := cfg.MainConfig.encOpts(w)
	probe := &encode.EncState{}
	for _, o := range opts {
		o(probe)
	}
	if probe.Color != nil {
		return opts
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet && !cfg.Color {
		return opts
	}
	return append(opts, encode.EncodeColors(encode.NewColors()))
}
