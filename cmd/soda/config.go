package main

import (
	"errors"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// Config is the optional project file, soda.yaml, read from --directory.
// Its absence is not an error: it only supplies defaults that commands
// would otherwise need repeated on every invocation.
type Config struct {
	// ImportPaths is read from soda.yaml and logged by the directory
	// commands. Nothing searches it: `import` statements are parsed but
	// not resolved.
	ImportPaths []string `yaml:"importpaths"`
	// StrictBOM, when true, treats a byte-order mark anywhere but the
	// very first byte of a file as an error instead of silently passing
	// it through to the tokenizer as ordinary input.
	StrictBOM bool `yaml:"strictbom"`
}

func loadConfig() (Config, error) {
	var result Config

	configFilename := path.Join(directory, "soda.yaml")
	if _, err := os.Stat(configFilename); os.IsNotExist(err) {
		return Config{}, errors.New("no soda.yaml found in " + directory)
	}

	data, err := os.ReadFile(configFilename)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &result); err != nil {
		return Config{}, err
	}
	return result, nil
}
