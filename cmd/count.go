package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"tallyhawk/internal/config"
	"tallyhawk/internal/filetype"
	"tallyhawk/internal/report"
	"tallyhawk/internal/scanner"

	"github.com/spf13/cobra"
)

// countOptions 存放 count 命令的可配置参数。
type countOptions struct {
	includeHidden    bool
	respectGitignore bool
	includeBlank     bool
	includeComments  bool
	format           string
	output           string
	excludeGlobs     []string
	workers          int
}

// newCountCmd 创建 count 子命令。
// 示例：
//
//	tallyhawk count
//	tallyhawk count ./project --all --format csv
//	tallyhawk count ./project -f json -o stats.json --exclude 'vendor/**'
func newCountCmd(registry *filetype.Registry) *cobra.Command {
	options := countOptions{
		respectGitignore: true,
		format:           "table",
		workers:          runtime.NumCPU(),
	}

	countCmd := &cobra.Command{
		Use:   "count [path]",
		Short: "扫描目录或文件并输出项目统计",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targetPath := "."
			if len(args) == 1 {
				targetPath = args[0]
			}

			root, err := filepath.Abs(strings.TrimSpace(targetPath))
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			if err := applyFileDefaults(cmd, &options, root); err != nil {
				return err
			}

			format := strings.ToLower(strings.TrimSpace(options.format))
			if format != "table" && format != "json" && format != "csv" {
				return errors.New("unsupported format, allowed values: table, json, csv")
			}
			if options.workers <= 0 {
				return errors.New("workers must be greater than 0")
			}

			// json/csv 是结构化导出格式，横幅和耗时只在表格模式输出。
			if format == "table" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "🦅 Tallyhawk surveying: %s\n", root)
			}

			startedAt := time.Now()
			service := scanner.NewService(registry, options.workers)
			stats, err := service.Scan(root, scanner.Config{
				IncludeHidden:     options.includeHidden,
				RespectGitignore:  options.respectGitignore,
				IncludeBlankLines: options.includeBlank,
				IncludeComments:   options.includeComments,
				ExcludeGlobs:      options.excludeGlobs,
			})
			if err != nil {
				return err
			}

			switch format {
			case "table":
				if err := report.RenderTable(cmd.OutOrStdout(), stats); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Elapsed: %s\n", time.Since(startedAt).Round(time.Millisecond))
				return nil
			case "json":
				if err := report.RenderJSON(cmd.OutOrStdout(), stats); err != nil {
					return err
				}

				outputPath := strings.TrimSpace(options.output)
				if outputPath == "" {
					return nil
				}
				if err := report.WriteJSONFile(outputPath, stats); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nJSON exported to %s\n", outputPath)
				return nil
			case "csv":
				return report.RenderCSV(cmd.OutOrStdout(), stats)
			default:
				return errors.New("unsupported format")
			}
		},
	}

	countCmd.Flags().BoolVarP(&options.includeHidden, "all", "a", options.includeHidden, "统计隐藏文件和目录")
	countCmd.Flags().BoolVar(&options.respectGitignore, "gitignore", options.respectGitignore, "遵循 .gitignore 与 .git/info/exclude 忽略规则")
	countCmd.Flags().BoolVar(&options.includeBlank, "include-blank", options.includeBlank, "把空行计入报告总行数")
	countCmd.Flags().BoolVar(&options.includeComments, "include-comments", options.includeComments, "把注释行计入报告总行数")
	countCmd.Flags().StringVarP(&options.format, "format", "f", options.format, "输出格式: table、json 或 csv")
	countCmd.Flags().StringVarP(&options.output, "output", "o", options.output, "json 结果额外导出到指定文件")
	countCmd.Flags().StringArrayVar(&options.excludeGlobs, "exclude", nil, "排除匹配该 glob 模式的路径，可重复指定")
	countCmd.Flags().IntVar(&options.workers, "workers", options.workers, "并发 worker 数量")

	return countCmd
}

// applyFileDefaults 用扫描根目录下的 .tallyhawk.toml 补全未显式指定的参数。
// 命令行上显式传入的参数不会被配置文件覆盖。
func applyFileDefaults(cmd *cobra.Command, options *countOptions, root string) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		// 路径问题交给扫描器统一报告。
		return nil
	}

	file, err := config.Load(root)
	if err != nil {
		return err
	}
	if file == nil {
		return nil
	}

	flags := cmd.Flags()
	if file.All != nil && !flags.Changed("all") {
		options.includeHidden = *file.All
	}
	if file.Gitignore != nil && !flags.Changed("gitignore") {
		options.respectGitignore = *file.Gitignore
	}
	if file.IncludeBlank != nil && !flags.Changed("include-blank") {
		options.includeBlank = *file.IncludeBlank
	}
	if file.IncludeComments != nil && !flags.Changed("include-comments") {
		options.includeComments = *file.IncludeComments
	}
	if file.Format != nil && !flags.Changed("format") {
		options.format = *file.Format
	}
	if len(file.Exclude) > 0 && !flags.Changed("exclude") {
		options.excludeGlobs = file.Exclude
	}

	return nil
}
