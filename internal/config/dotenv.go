// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DotEnvPathEnvKey overrides the dotenv location resolved by
// [DefaultDotEnvPath].
const DotEnvPathEnvKey = "DOTENV_PATH"

// DefaultDotEnvPath returns the ".env" file located one directory above the
// directory of the running executable. If the executable path cannot be
// resolved, the path is taken relative to the working directory.
func DefaultDotEnvPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return filepath.Join("..", ".env")
	}
	return filepath.Join(filepath.Dir(execPath), "..", ".env")
}

// LoadDotEnv exports the variables declared in the dotenv file at path into
// the process environment. Variables that are already set are left untouched.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("error loading dotenv file %q: %w", path, err)
}
