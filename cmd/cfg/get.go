package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/cfg-format/go-cfg/encode"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a setting path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := queryArg(cfg.MainConfig, cc, arg, path); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func queryArg(cfg *MainConfig, cc *cli.Context, arg, path string) error {
	root, err := getCfgFile(cc, arg, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	res := root.Lookup(path)
	if res == nil {
		// absence is a normal outcome, distinguished by exit code only
		return cli.ExitCodeErr(1)
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
