package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mitchellh/go-wordwrap"

	"github.com/ryan-jan/hclfmt"
)

var fmtSupportedExts = []string{
	".tf",
	".tfvars",
	".tftest.hcl",
	".hcl",
}

// isIgnoredFile reports whether name (no directory component) should
// be skipped as e.g. an editor swap file.
func isIgnoredFile(name string) bool {
	return strings.HasPrefix(name, ".") || // Unix-like hidden files
		strings.HasSuffix(name, "~") || // vim
		(strings.HasPrefix(name, "#") && strings.HasSuffix(name, "#")) // emacs
}

func hasSupportedExt(name string) bool {
	for _, ext := range fmtSupportedExts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// discoverFiles expands paths (files or directories) into the set of
// formattable files beneath them, walking directories recursively.
func discoverFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("no file or directory at %s", path)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			name := d.Name()
			if isIgnoredFile(name) || !hasSupportedExt(name) {
				return nil
			}
			files = append(files, p)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// runFormat formats every file discovered under paths using a fixed
// pool of workers, and reports whether any file's canonical
// formatting differed from what was on disk or any file was skipped
// for parse errors.
func runFormat(paths []string, workers int) (bool, error) {
	files, err := discoverFiles(paths)
	if err != nil {
		return false, err
	}

	jobs := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var anyChanged bool
	var firstErr error

	worker := func() {
		defer wg.Done()
		for path := range jobs {
			var original []byte
			if config.Diff {
				original, _ = os.ReadFile(path)
			}

			status, result, err := hclfmt.FormatFile(path, config.NoWrite)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				slog.Warn("could not format file", "path", path, "error", err)
				continue
			}

			switch status {
			case hclfmt.StatusSkipped:
				slog.Warn("skipped file with parse errors", "path", path)
				mu.Lock()
				anyChanged = true // a file that fails to parse also fails --check
				mu.Unlock()
			case hclfmt.StatusChanged:
				mu.Lock()
				anyChanged = true
				mu.Unlock()
				if !config.NoList {
					fmt.Println(path)
				}
				if config.Diff {
					os.Stdout.WriteString(unifiedDiff(path, string(original), result))
				}
			}
		}
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go worker()
	}
	for _, f := range files {
		jobs <- f
	}
	close(jobs)
	wg.Wait()

	return anyChanged, firstErr
}

// runParse parses a single file and prints its concrete syntax tree,
// followed by any structural errors found, wrapped to a terminal-
// friendly width.
func runParse(paths []string) error {
	if len(paths) != 1 {
		return fmt.Errorf("parse takes exactly one <path>")
	}
	path := paths[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	root, errs := hclfmt.Parse(data)
	fmt.Print(hclfmt.DebugTree(root))

	for _, e := range errs {
		fmt.Fprintln(os.Stderr, wordwrap.WrapString(e.Error(), 80))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d parse error(s) in %s", len(errs), path)
	}
	return nil
}
