// Package cmd 提供 tallyhawk 的命令行入口与子命令编排。
package cmd

import (
	"tallyhawk/internal/filetype"

	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	registry := filetype.NewRegistry()
	rootCmd := newRootCmd(version, registry)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string, registry *filetype.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tallyhawk",
		Short: "目光锐利的项目统计工具",
		Long: "tallyhawk 扫描目录树并按语言汇总文件数、代码/注释/空行行数与字节体积，\n" +
			"支持彩色表格、JSON 和 CSV 输出，默认遵循 .gitignore 忽略规则。",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd(registry))
	rootCmd.AddCommand(newCountCmd(registry))

	return rootCmd
}
