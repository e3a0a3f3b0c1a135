/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package template handles discovery, loading, and preprocessing of
// CloudFormation template files.
package template

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Pattern matches the template files discovered in a template directory
const Pattern = "*.template"

// ErrNoTemplates indicates a template directory contains no matching files
var ErrNoTemplates = errors.New("no template files found")

// File is a discovered template file with its contents read eagerly
type File struct {
	Path string
	Body string
}

// Loader defines the interface for discovering and reading template files
type Loader interface {
	// List returns every matching template file in a directory, in
	// filesystem enumeration order. An empty directory yields an empty list.
	List(dir string) ([]File, error)

	// Default returns the first matching template file in a directory
	Default(dir string) (File, error)
}

// DirLoader implements Loader against a filesystem
type DirLoader struct {
	fs afero.Fs
}

// NewDirLoader creates a loader backed by the operating system filesystem
func NewDirLoader() *DirLoader {
	return &DirLoader{fs: afero.NewOsFs()}
}

// NewDirLoaderWithFs creates a loader backed by a custom filesystem (for testing)
func NewDirLoaderWithFs(fs afero.Fs) *DirLoader {
	return &DirLoader{fs: fs}
}

// List discovers *.template files in dir and reads each one
func (l *DirLoader) List(dir string) ([]File, error) {
	matches, err := afero.Glob(l.fs, filepath.Join(dir, Pattern))
	if err != nil {
		return nil, fmt.Errorf("failed to scan template directory %s: %w", dir, err)
	}

	files := make([]File, 0, len(matches))
	for _, match := range matches {
		body, err := afero.ReadFile(l.fs, match)
		if err != nil {
			return nil, fmt.Errorf("failed to read template file %s: %w", match, err)
		}
		files = append(files, File{Path: match, Body: string(body)})
	}

	return files, nil
}

// Default returns the first discovered template file in dir
func (l *DirLoader) Default(dir string) (File, error) {
	files, err := l.List(dir)
	if err != nil {
		return File{}, err
	}
	if len(files) == 0 {
		return File{}, fmt.Errorf("%w in %s", ErrNoTemplates, dir)
	}
	return files[0], nil
}
