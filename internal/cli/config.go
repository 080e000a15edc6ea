// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - the `floatchat config` command: show, get, set, path.
package cli

import (
	"fmt"

	"github.com/floatchat/floatchat-tui/internal/config"
)

// HandleConfig dispatches config subcommands against the global config.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "show", "":
		return configShow(args)
	case "get":
		return configGet(args)
	case "set":
		return configSet(args)
	case "path":
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	case "keys":
		for _, key := range config.GetAllKeys() {
			fmt.Println(key)
		}
		return nil
	default:
		return fmt.Errorf("unknown config subcommand %q (show, get, set, path, keys)", args.Subcommand)
	}
}

func configShow(args Args) error {
	cfg := config.Global()
	if args.JSON {
		return OutputJSON("config", func() (any, error) { return cfg, nil })
	}
	fmt.Print(cfg.String())
	return nil
}

func configGet(args Args) error {
	if args.ConfigKey == "" {
		return fmt.Errorf("usage: floatchat config get <key>")
	}
	value, err := config.Global().Get(args.ConfigKey)
	if err != nil {
		return err
	}
	if args.JSON {
		return OutputJSON("config", func() (any, error) {
			return map[string]any{"key": args.ConfigKey, "value": value}, nil
		})
	}
	fmt.Println(value)
	return nil
}

func configSet(args Args) error {
	if args.ConfigKey == "" || args.ConfigVal == "" {
		return fmt.Errorf("usage: floatchat config set <key> <value>")
	}

	cfg := config.Global()
	if err := cfg.Set(args.ConfigKey, args.ConfigVal); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	if !args.Quiet {
		fmt.Printf("%s %s = %s\n", okStyle.Render("Set"), args.ConfigKey, args.ConfigVal)
	}
	return nil
}
