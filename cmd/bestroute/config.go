// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/joho/godotenv"
)

// Environment variables that provide defaults for the flags. They may also
// come from a .env file (see envLookup).
const (
	envMap  = "BESTROUTE_MAP"
	envFrom = "BESTROUTE_FROM"
	envTo   = "BESTROUTE_TO"
	envFile = "BESTROUTE_ENV"
)

// Built-in defaults used when neither flags nor environment say otherwise.
const (
	defaultMap     = "map_input.txt"
	defaultFrom    = "S"
	defaultTo      = "E"
	defaultEnvFile = ".env"
)

// Config is the resolved command-line configuration.
type Config struct {
	MapPath string // map file to import
	From    string // start node name
	To      string // end node name
	Heap    bool   // use the heap selector instead of the linear scan
	DotPath string // if set, write a Graphviz rendering here
	All     bool   // also print the distance to every node
	Verbose bool   // log progress to stderr
}

// loadConfig resolves Config from args (without the program name), falling
// back to getenv and then to the built-in defaults. Usage text goes to
// output. Positional form: MAP FROM TO.
func loadConfig(args []string, getenv func(string) string, output io.Writer) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("bestroute", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: bestroute [flags] [MAP FROM TO]")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.MapPath, "map", orDefault(getenv(envMap), defaultMap), "map file, one `start,end,distance` per line (env "+envMap+")")
	fs.StringVar(&cfg.From, "from", orDefault(getenv(envFrom), defaultFrom), "start node name (env "+envFrom+")")
	fs.StringVar(&cfg.To, "to", orDefault(getenv(envTo), defaultTo), "end node name (env "+envTo+")")
	fs.BoolVar(&cfg.Heap, "heap", false, "select nodes with a min-heap instead of a linear scan")
	fs.StringVar(&cfg.DotPath, "dot", "", "write the graph with the route highlighted as Graphviz dot to `file`")
	fs.BoolVar(&cfg.All, "all", false, "also print the shortest distance from the start node to every node")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose logging to stderr")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 3:
		cfg.MapPath, cfg.From, cfg.To = rest[0], rest[1], rest[2]
	default:
		fs.Usage()
		return Config{}, fmt.Errorf("expected 0 or 3 positional arguments (MAP FROM TO), got %d", len(rest))
	}

	if cfg.MapPath == "" {
		return Config{}, fmt.Errorf("map file path is empty")
	}

	return cfg, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}

	return v
}

// envLookup returns a getenv that prefers the process environment and falls
// back to the variables of the dotenv file at path. If the file cannot be
// read, getenv is returned unchanged together with the error.
func envLookup(path string, getenv func(string) string) (func(string) string, error) {
	fileEnv, err := godotenv.Read(path)
	if err != nil {
		return getenv, err
	}

	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fileEnv[key]
	}, nil
}
