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

	return cli.NewCommandAt(&cfg.Main, "xmpt").
		WithSynopsis("xmpt [opts] command [opts]").
		WithDescription("xmpt is a tool for working with metadata trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xmptMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			CanonCommand(cfg),
			GetCommand(cfg),
			FindCommand(cfg),
			DiffCommand(cfg),
			JSONCommand(cfg),
			PatchCommand(cfg),
			ImportCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view metadata files in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func CanonCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CanonConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("canon").
		WithAliases("c", "ca").
		WithSynopsis("canon [files]").
		WithDescription("canonicalize metadata files").
		WithRun(func(cc *cli.Context, args []string) error {
			return canon(cfg, cc, args)
		})
	cfg.Canon = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <proppath> [files]").
		WithDescription("get properties from metadata files").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("find").
		WithAliases("f", "fi").
		WithSynopsis("find -e <expr> [files]").
		WithDescription("find properties matching a filter expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
	cfg.Find = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff a b").
		WithDescription("diff metadata documents in canonical form").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func JSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &JSONConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("json").
		WithAliases("j", "js").
		WithSynopsis("json [files]").
		WithDescription("export metadata files as JSON").
		WithRun(func(cc *cli.Context, args []string) error {
			return jsonExport(cfg, cc, args)
		})
	cfg.JSON = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch <patchfile> [files]").
		WithDescription("apply a JSON patch to metadata documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func ImportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ImportConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("import").
		WithAliases("i", "im").
		WithSynopsis("import [files]").
		WithDescription("build a metadata tree from a YAML property map").
		WithRun(func(cc *cli.Context, args []string) error {
			return importCmd(cfg, cc, args)
		})
	cfg.Import = cmd
	return cmd
}
