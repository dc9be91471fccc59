package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"tallyhawk/internal/filetype"

	"github.com/spf13/cobra"
)

// newLanguageCmd 创建 language 子命令。
// 命令用于展示内置语言档案：语言名、后缀、是否二进制以及注释前缀。
func newLanguageCmd(registry *filetype.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "language",
		Short: "展示内置语言档案及后缀",
		RunE: func(cmd *cobra.Command, _ []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if _, err := fmt.Fprintln(writer, "LANGUAGE\tEXTENSIONS\tBINARY\tCOMMENT PREFIXES"); err != nil {
				return err
			}

			for _, item := range registry.Languages() {
				binary := "no"
				if item.Binary {
					binary = "yes"
				}
				prefixes := strings.Join(item.CommentPrefixes, " ")
				if prefixes == "" {
					prefixes = "-"
				}
				if _, err := fmt.Fprintf(
					writer,
					"%s\t%s\t%s\t%s\n",
					item.Name,
					strings.Join(item.Extensions, ", "),
					binary,
					prefixes,
				); err != nil {
					return err
				}
			}

			return writer.Flush()
		},
	}
}
