package main

import (
	"io"
	"os"

	"github.com/uniparse/go-uniparse/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='spaces per nesting level'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Scalar bool `cli:"name=s desc='set the value as a bare scalar, not an assignment'"`
	Write  bool `cli:"name=w desc='rewrite the file in place'"`

	Set *cli.Command
}

type RmConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='rewrite the file in place'"`

	Rm *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='rewrite files in place'"`

	Fmt *cli.Command
}

type DumpConfig struct {
	*MainConfig
	J bool `cli:"name=j aliases=json desc='dump as JSON'"`
	Y bool `cli:"name=y aliases=yaml desc='dump as YAML'"`

	Dump *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type GrepConfig struct {
	*MainConfig

	Grep *cli.Command
}

type MergeConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	Write  bool `cli:"name=w desc='rewrite the file in place'"`

	Merge *cli.Command
}
