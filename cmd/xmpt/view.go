package main

import (
	"github.com/scott-cotton/cli"

	"github.com/AMBE1203/xmpcore/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range fileArgs(args) {
		root, err := docArg(arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}

func canon(cfg *CanonConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Canon.Parse(cc, args)
	if err != nil {
		cfg.Canon.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range fileArgs(args) {
		root, err := docArg(arg)
		if err != nil {
			return err
		}
		opts := append(cfg.encOpts(cc.Out), encode.EncodeCanonical(true))
		if err := encode.Encode(root, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
