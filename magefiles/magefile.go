//go:build mage

// Package main provides build targets for dbtables using Mage.
//
// Usage:
//
//	mage build            Compile the dbtables binary to bin/
//	mage test:all         Run all tests (unit + integration)
//	mage test:unit        Run only unit tests (exclude tests/)
//	mage test:integration Run only integration tests (builds first)
//	mage test:race        Run unit tests with the race detector
//	mage lint             Run go vet and golangci-lint
//	mage clean            Remove build artifacts
//	mage install          Install dbtables to GOPATH/bin
//	mage stats            Print Go file counts and lines per package
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// lineCount tallies production and test lines for one package directory.
type lineCount struct {
	files int
	prod  int
	test  int
}

// Stats prints Go file counts and lines of code per package directory.
func Stats() error {
	counts := map[string]*lineCount{}

	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			switch path {
			case "vendor", ".git", "_examples", "magefiles", binaryDir:
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		n, err := countLines(path)
		if err != nil {
			return nil
		}
		dir := filepath.Dir(path)
		c, ok := counts[dir]
		if !ok {
			c = &lineCount{}
			counts[dir] = c
		}
		c.files++
		if strings.HasSuffix(path, "_test.go") {
			c.test += n
		} else {
			c.prod += n
		}
		return nil
	})
	if err != nil {
		return err
	}

	dirs := make([]string, 0, len(counts))
	for d := range counts {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)

	var total lineCount
	fmt.Printf("%-24s %6s %8s %8s\n", "package", "files", "prod", "test")
	for _, d := range dirs {
		c := counts[d]
		fmt.Printf("%-24s %6d %8d %8d\n", d, c.files, c.prod, c.test)
		total.files += c.files
		total.prod += c.prod
		total.test += c.test
	}
	fmt.Printf("%-24s %6d %8d %8d\n", "total", total.files, total.prod, total.test)
	return nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}
