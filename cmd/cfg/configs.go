package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/cfg-format/go-cfg/encode"
	"github.com/cfg-format/go-cfg/parse"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	Indent  int    `cli:"name=indent desc='indent width (default 2)'"`
	Include string `cli:"name=I aliases=include desc='directory for resolving @include paths'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.Include != "" {
		res = append(res, parse.IncludeDir(cfg.Include))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
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

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ExportConfig struct {
	*MainConfig

	Export *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Patch bool `cli:"name=p desc='output in patch text form'"`

	Diff *cli.Command
}
