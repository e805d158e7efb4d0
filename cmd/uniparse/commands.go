package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "uniparse").
		WithSynopsis("uniparse [opts] command [opts]").
		WithDescription("uniparse is a tool for working with build and manifest files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return uniparseMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			RmCommand(cfg),
			ViewCommand(cfg),
			FmtCommand(cfg),
			DumpCommand(cfg),
			DiffCommand(cfg),
			GrepCommand(cfg),
			MergeCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <path> [files]").
		WithDescription("get values at a dotted path from build scripts").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithAliases("s", "se").
		WithSynopsis("set [opts] <path> <value> [file]").
		WithDescription("set the value at a dotted path and render the result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func RmCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RmConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("rm").
		WithAliases("r", "remove").
		WithSynopsis("rm [opts] <path> [file]").
		WithDescription("remove the entry at a dotted path and render the result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rm(cfg, cc, args)
		})
	cfg.Rm = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view build scripts in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [-w] <files>").
		WithDescription("reformat build scripts, go.mod files and Zig manifests").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtRun(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("dump").
		WithSynopsis("dump [-j|-y] [files]").
		WithDescription("dump build scripts as JSON or YAML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff <a> <b>").
		WithDescription("diff two build scripts after normalizing").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func GrepCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GrepConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("grep").
		WithSynopsis("grep <expr> [files]").
		WithDescription(grepDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return grep(cfg, cc, args)
		})
	cfg.Grep = cmd
	return cmd
}

const grepDescription = `grep selects script entries with a boolean expression.

The expression is evaluated once per entry with these variables bound:

  key    the entry key
  path   the dotted path of the entry
  kind   one of scalar, flag, block, assignment, call, pairs
  value  the string payload for scalar and assignment entries
  flag   the bool payload for flag entries

Matching entries print one per line as 'path kind value'. For example:

  uniparse grep 'kind == "assignment" && value contains "SNAPSHOT"' build.gradle`

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("merge").
		WithAliases("m").
		WithSynopsis("merge [opts] <patch> [file]").
		WithDescription("apply a merge patch to a build script and render the result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
	cfg.Merge = cmd
	return cmd
}
