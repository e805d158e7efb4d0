package main

import (
	"fmt"
	"io"
	"os"

	"github.com/uniparse/go-uniparse/encode"
	"github.com/uniparse/go-uniparse/ir"
	"github.com/uniparse/go-uniparse/parse"

	"github.com/scott-cotton/cli"
)

// getScript reads a build script from path, with "-" meaning the
// command input.
func getScript(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// writeResult renders the tree to the command output, or back to path
// when inPlace is set.
func writeResult(cfg *MainConfig, cc *cli.Context, path string, inPlace bool, node *ir.Node) error {
	if !inPlace {
		return encodeTo(cfg, cc.Out, node)
	}
	if path == "-" {
		return fmt.Errorf("%w: -w requires a file argument", cli.ErrUsage)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	// never colorize a rewritten file
	return encodeNoColor(cfg, f, node)
}

func encodeTo(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	return encode.Encode(node, w, cfg.encOpts(w)...)
}

func encodeNoColor(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	var opts []encode.EncodeOption
	if cfg.Indent > 0 {
		opts = append(opts, encode.Indent(cfg.Indent))
	}
	return encode.Encode(node, w, opts...)
}
