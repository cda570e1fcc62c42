// Package scanner collects the tree documents to lint under a directory.
package scanner

import (
	"os"
	"path/filepath"
	"sync"
)

// DefaultExtensions are the serialized tree formats the linter understands.
var DefaultExtensions = []string{".json", ".yaml", ".yml"}

// Document is one candidate tree document found on disk.
type Document struct {
	Path string
	Size int64
}

type Scanner struct {
	rootDir    string
	extensions []string
}

// New creates a scanner rooted at rootDir. When no extensions are given the
// default tree document extensions are used.
func New(rootDir string, extensions ...string) *Scanner {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// Scan walks the root directory and returns every matching document.
func (s *Scanner) Scan() ([]Document, error) {
	var (
		docs  []Document
		mutex sync.Mutex
		wg    sync.WaitGroup
	)

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if s.isTargetFile(path) {
			wg.Add(1)
			go func() {
				defer wg.Done()
				doc := Document{
					Path: path,
					Size: info.Size(),
				}
				mutex.Lock()
				docs = append(docs, doc)
				mutex.Unlock()
			}()
		}
		return nil
	})

	wg.Wait()
	return docs, err
}

func (s *Scanner) isTargetFile(path string) bool {
	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
