package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	treelint "github.com/gnoverse/treelint"
	"github.com/gnoverse/treelint/formatter"
	"github.com/gnoverse/treelint/internal"
	tt "github.com/gnoverse/treelint/internal/types"
)

var (
	ignoreRules     string
	checkJSONOutput bool
	outPath         string
	cacheDir        string
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Run the lint rules over tree documents",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := treelint.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize lint engine", zap.Error(err))
		}

		if ignoreRules != "" {
			rules := strings.Split(ignoreRules, ",")
			for _, rule := range rules {
				engine.IgnoreRule(strings.TrimSpace(rule))
			}
		}

		processor := treelint.ProcessFile
		if cacheDir != "" {
			processor = cachedProcessor(cacheDir)
		}

		runCheckProcess(ctx, logger, engine, args, processor, checkJSONOutput, outPath)
	},
}

func init() {
	checkCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of lint rules to ignore")
	checkCmd.Flags().BoolVar(&checkJSONOutput, "json", false, "Output issues in JSON format")
	checkCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	checkCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "Reuse results for unchanged documents from this cache directory")
}

// cachedProcessor wraps ProcessFile with the result cache so unchanged
// documents are not re-linted.
func cachedProcessor(dir string) func(treelint.LintEngine, string) ([]tt.Issue, error) {
	deps := []string{}
	if cfgFile != "" {
		deps = append(deps, cfgFile)
	}
	cache, err := internal.NewCache(dir, deps...)
	if err != nil {
		logger.Warn("Cache unavailable, falling back to full runs", zap.Error(err))
		return treelint.ProcessFile
	}

	return func(engine treelint.LintEngine, filePath string) ([]tt.Issue, error) {
		if issues, ok := cache.Get(filePath); ok {
			return issues, nil
		}
		issues, err := treelint.ProcessFile(engine, filePath)
		if err != nil {
			return nil, err
		}
		if err := cache.Set(filePath, issues); err != nil {
			logger.Warn("Failed to store cache entry", zap.String("file", filePath), zap.Error(err))
		}
		return issues, nil
	}
}

func runCheckProcess(
	ctx context.Context,
	logger *zap.Logger,
	engine treelint.LintEngine,
	paths []string,
	processor func(treelint.LintEngine, string) ([]tt.Issue, error),
	isJSON bool,
	jsonOutput string,
) {
	issues, err := treelint.ProcessFiles(ctx, logger, engine, paths, processor)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		os.Exit(1)
	}

	printIssues(logger, issues, isJSON, jsonOutput)

	if len(issues) > 0 {
		os.Exit(1)
	}
}

func printIssues(logger *zap.Logger, issues []tt.Issue, isJSON bool, jsonOutput string) {
	if isJSON {
		d, err := formatter.GenerateJSON(issues)
		if err != nil {
			logger.Error("Error marshalling issues to JSON", zap.Error(err))
			return
		}
		if jsonOutput == "" {
			fmt.Println(string(d))
			return
		}
		if err := os.WriteFile(jsonOutput, d, 0o644); err != nil {
			logger.Error("Error writing JSON output file", zap.Error(err))
		}
		return
	}

	issuesByFile := make(map[string][]tt.Issue)
	for _, issue := range issues {
		issuesByFile[issue.Filename] = append(issuesByFile[issue.Filename], issue)
	}

	sortedFiles := make([]string, 0, len(issuesByFile))
	for filename := range issuesByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	for _, filename := range sortedFiles {
		fmt.Println(formatter.GenerateFormattedIssue(issuesByFile[filename]))
	}
}
