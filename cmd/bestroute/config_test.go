// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMapFunc(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(nil, envMapFunc(nil), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Config{MapPath: defaultMap, From: defaultFrom, To: defaultTo}, cfg)
}

func TestLoadConfig_Environment(t *testing.T) {
	env := envMapFunc(map[string]string{envMap: "roads.txt", envFrom: "Home", envTo: "Work"})
	cfg, err := loadConfig(nil, env, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "roads.txt", cfg.MapPath)
	assert.Equal(t, "Home", cfg.From)
	assert.Equal(t, "Work", cfg.To)
}

func TestLoadConfig_FlagsOverrideEnvironment(t *testing.T) {
	env := envMapFunc(map[string]string{envFrom: "Home"})
	cfg, err := loadConfig([]string{"-from", "X", "-heap", "-all", "-v", "-dot", "out.dot"}, env, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Config{MapPath: defaultMap, From: "X", To: defaultTo, Heap: true, DotPath: "out.dot", All: true, Verbose: true}, cfg)
}

func TestLoadConfig_Positional(t *testing.T) {
	cfg, err := loadConfig([]string{"-heap", "m.txt", "A", "B"}, envMapFunc(nil), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "m.txt", cfg.MapPath)
	assert.Equal(t, "A", cfg.From)
	assert.Equal(t, "B", cfg.To)
	assert.True(t, cfg.Heap)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig([]string{"m.txt", "A"}, envMapFunc(nil), io.Discard)
	assert.Error(t, err)

	_, err = loadConfig([]string{"-nope"}, envMapFunc(nil), io.Discard)
	assert.Error(t, err)

	_, err = loadConfig([]string{"-h"}, envMapFunc(nil), io.Discard)
	assert.True(t, errors.Is(err, flag.ErrHelp))

	_, err = loadConfig([]string{"-map", ""}, envMapFunc(nil), io.Discard)
	assert.Error(t, err)
}

func TestEnvLookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(envFrom+"=FileStart\n"+envTo+"=FileEnd\n"), 0o600))

	getenv, err := envLookup(path, envMapFunc(map[string]string{envTo: "ProcessEnd"}))
	require.NoError(t, err)
	assert.Equal(t, "FileStart", getenv(envFrom))
	assert.Equal(t, "ProcessEnd", getenv(envTo), "process environment wins over the file")
	assert.Equal(t, "", getenv(envMap))
}

func TestEnvLookup_MissingFile(t *testing.T) {
	base := envMapFunc(map[string]string{envFrom: "A"})
	getenv, err := envLookup(filepath.Join(t.TempDir(), "missing.env"), base)
	assert.Error(t, err)
	assert.Equal(t, "A", getenv(envFrom))
}
