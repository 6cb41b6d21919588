package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/AMBE1203/xmpcore/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Canon bool `cli:"name=canon desc='canonicalize before encoding'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeCanonical(cfg.Canon),
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
		return res
	}
	return res
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type CanonConfig struct {
	*MainConfig
	Canon *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type FindConfig struct {
	*MainConfig
	Expr string `cli:"name=e desc='filter expression'"`

	Find *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type JSONConfig struct {
	*MainConfig
	JSON *cli.Command
}

type PatchConfig struct {
	*MainConfig
	File bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type ImportConfig struct {
	*MainConfig
	Import *cli.Command
}
