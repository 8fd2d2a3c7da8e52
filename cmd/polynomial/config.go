package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// config is the contents of a config file, e.g.
//
//	log_level = "info"
//	x = ["-2", "0", "100000000000000000000"]
type config struct {
	LogLevel string   `toml:"log_level"`
	// X is the default list of values for eval. Values are strings so that
	// they may exceed the range of TOML integers.
	X        []string `toml:"x"`
}

// loadConfig decodes the config file at path. It also returns the keys in
// the file which config does not use.
func loadConfig(path string) (config, []string, error) {
	var c config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return config{}, nil, errors.Wrapf(err, "loading config file %s", path)
	}
	var keys []string
	for _, k := range md.Undecoded() {
		keys = append(keys, k.String())
	}
	return c, keys, nil
}
