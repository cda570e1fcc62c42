package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	treelint "github.com/gnoverse/treelint"
	"github.com/gnoverse/treelint/formatter"
	"github.com/gnoverse/treelint/scanner"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Re-lint tree documents whenever they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		engine, err := treelint.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize lint engine", zap.Error(err))
		}

		if err := watchPaths(engine, args); err != nil {
			logger.Fatal("Watch failed", zap.Error(err))
		}
	},
}

func watchPaths(engine treelint.LintEngine, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("error accessing %s: %w", path, err)
		}
		if !info.IsDir() {
			if err := watcher.Add(filepath.Dir(path)); err != nil {
				return fmt.Errorf("error watching %s: %w", path, err)
			}
			continue
		}
		err = filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fi.IsDir() {
				return watcher.Add(p)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	logger.Info("Watching for changes", zap.Strings("paths", paths))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !isTreeDocument(event.Name) {
				continue
			}
			issues, err := treelint.ProcessFile(engine, event.Name)
			if err != nil {
				logger.Error("Error processing file", zap.String("file", event.Name), zap.Error(err))
				continue
			}
			if len(issues) == 0 {
				logger.Info("No issues", zap.String("file", event.Name))
				continue
			}
			fmt.Println(formatter.GenerateFormattedIssue(issues))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error", zap.Error(err))
		}
	}
}

func isTreeDocument(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, targetExt := range scanner.DefaultExtensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
