// Package report 提供 tallyhawk 的输出能力。
// 当前实现支持彩色 table、JSON（含文件导出）和 CSV 三种格式。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tallyhawk/internal/model"
)

// 终端样式集中定义，语义与原始输出保持一致。
var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	bannerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	sectionStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	filesStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	linesStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	percentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	codeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	commentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	blankStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
	sizeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	ruleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	thinRuleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	footerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	topLangStyle   = lipgloss.NewStyle().Bold(true)
	topCountStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	languageStyles = map[string]lipgloss.Style{
		"Rust":       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		"JavaScript": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		"TypeScript": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		"Python":     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		"C":          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		"C++":        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		"Java":       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		"Go":         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		"Ruby":       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		"PHP":        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		"Swift":      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		"HTML":       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		"CSS":        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		"Sass":       lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		"Markdown":   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		"Shell":      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		"JSON":       lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		"YAML":       lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		"TOML":       lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		"XML":        lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	}
)

// languageRow 是排序后的语言行视图。
type languageRow struct {
	language string
	stats    *model.FileTypeStats
}

// RenderTable 以彩色表格展示扫描结果。
func RenderTable(writer io.Writer, stats *model.ProjectStats) error {
	var builder strings.Builder

	builder.WriteString("\n" + titleStyle.Render("🦅 Tallyhawk survey results") + "\n")
	builder.WriteString(bannerStyle.Render(strings.Repeat("═", 50)) + "\n")

	builder.WriteString("\n" + sectionStyle.Render("📊 Project overview") + "\n")
	writeOverviewRow(&builder, "Total Files:", fmt.Sprintf("%d", stats.TotalFiles), filesStyle)
	writeOverviewRow(&builder, "Total Lines:", fmt.Sprintf("%d", stats.TotalLines), linesStyle)
	writeOverviewRow(&builder, "Code Lines:", fmt.Sprintf("%d", stats.TotalCodeLines), codeStyle)
	writeOverviewRow(&builder, "Comment Lines:", fmt.Sprintf("%d", stats.TotalCommentLines), commentStyle)
	writeOverviewRow(&builder, "Blank Lines:", fmt.Sprintf("%d", stats.TotalBlankLines), blankStyle)
	writeOverviewRow(&builder, "Total Size:", FormatBytes(stats.TotalSizeBytes), sizeStyle)

	rows := sortedByLines(stats)

	if len(rows) > 0 {
		builder.WriteString("\n" + sectionStyle.Render("📁 File Types Breakdown") + "\n")
		builder.WriteString(ruleStyle.Render(strings.Repeat("─", 95)) + "\n")

		builder.WriteString(fmt.Sprintf(
			"%s %s %s %s %s %s %s\n",
			headerStyle.Render(fmt.Sprintf("%-15s", "Language")),
			headerStyle.Render(fmt.Sprintf("%6s", "Files")),
			headerStyle.Render(fmt.Sprintf("%15s", "Lines")),
			headerStyle.Render(fmt.Sprintf("%10s", "Percent")),
			headerStyle.Render(fmt.Sprintf("%10s", "Code")),
			headerStyle.Render(fmt.Sprintf("%10s", "Comments")),
			headerStyle.Render(fmt.Sprintf("%12s", "Size")),
		))
		builder.WriteString(thinRuleStyle.Render(strings.Repeat("─", 95)) + "\n")

		for _, row := range rows {
			percentage := 0.0
			if stats.TotalLines > 0 {
				percentage = float64(row.stats.Lines) / float64(stats.TotalLines) * 100.0
			}

			builder.WriteString(fmt.Sprintf(
				"%s %s %s %s %s %s %s\n",
				colorizeLanguage(fmt.Sprintf("%-15s", row.language), row.language),
				labelStyle.Render(fmt.Sprintf("%6d", row.stats.Count)),
				linesStyle.Render(fmt.Sprintf("%15d", row.stats.Lines)),
				percentStyle.Render(fmt.Sprintf("%9.1f%%", percentage)),
				codeStyle.Render(fmt.Sprintf("%10d", row.stats.CodeLines)),
				commentStyle.Render(fmt.Sprintf("%10d", row.stats.CommentLines)),
				sizeStyle.Render(fmt.Sprintf("%12s", FormatBytes(row.stats.SizeBytes))),
			))
		}
	}

	if len(rows) > 3 {
		builder.WriteString("\n" + sectionStyle.Render("🏆 Top Languages by Lines") + "\n")

		medals := []string{"🥇", "🥈", "🥉"}
		for i, row := range rows {
			if i >= 5 {
				break
			}
			medal := "  "
			if i < len(medals) {
				medal = medals[i]
			}

			percentage := 0.0
			if stats.TotalLines > 0 {
				percentage = float64(row.stats.Lines) / float64(stats.TotalLines) * 100.0
			}
			builder.WriteString(fmt.Sprintf(
				"%s %s %s lines (%5.1f%%)\n",
				medal,
				topLangStyle.Render(fmt.Sprintf("%-12s", row.language)),
				topCountStyle.Render(fmt.Sprintf("%8d", row.stats.Lines)),
				percentage,
			))
		}
	}

	builder.WriteString("\n" + bannerStyle.Render(strings.Repeat("─", 50)) + "\n")
	builder.WriteString(footerStyle.Render("Survey complete! 🦅✨") + "\n")

	_, err := io.WriteString(writer, builder.String())
	return err
}

// writeOverviewRow 输出总览区的一行“标签 + 彩色值”。
func writeOverviewRow(builder *strings.Builder, label string, value string, style lipgloss.Style) {
	builder.WriteString(fmt.Sprintf(
		"%s %s\n",
		labelStyle.Render(fmt.Sprintf("%-15s", label)),
		style.Render(value),
	))
}

// colorizeLanguage 按语言名着色，未知语言保持原样。
func colorizeLanguage(text string, language string) string {
	if style, ok := languageStyles[language]; ok {
		return style.Render(text)
	}
	return text
}

// RenderJSON 把统计结果按易读 JSON 输出到任意 writer。
// 字段名与序列化约定见 model 包的结构体标签。
func RenderJSON(writer io.Writer, stats *model.ProjectStats) error {
	content, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	content = append(content, '\n')
	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteJSONFile 将 JSON 结果导出到指定路径。
// 如果目录不存在会自动创建。
func WriteJSONFile(path string, stats *model.ProjectStats) error {
	content, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, content, 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}

// RenderCSV 输出逐字节稳定的 CSV。
//
// 约定：表头固定；每种语言一行，extension 列固定为 multiple；
// 末行为 TOTAL,ALL 行。语言行按语言名排序保证输出确定。
func RenderCSV(writer io.Writer, stats *model.ProjectStats) error {
	if _, err := fmt.Fprintln(writer, "language,extension,files,lines,code_lines,comment_lines,blank_lines,size_bytes"); err != nil {
		return err
	}

	languages := make([]string, 0, len(stats.FileTypes))
	for language := range stats.FileTypes {
		languages = append(languages, language)
	}
	sort.Strings(languages)

	for _, language := range languages {
		item := stats.FileTypes[language]
		if _, err := fmt.Fprintf(
			writer,
			"%s,multiple,%d,%d,%d,%d,%d,%d\n",
			language,
			item.Count,
			item.Lines,
			item.CodeLines,
			item.CommentLines,
			item.BlankLines,
			item.SizeBytes,
		); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(
		writer,
		"TOTAL,ALL,%d,%d,%d,%d,%d,%d\n",
		stats.TotalFiles,
		stats.TotalLines,
		stats.TotalCodeLines,
		stats.TotalCommentLines,
		stats.TotalBlankLines,
		stats.TotalSizeBytes,
	)
	return err
}

// sortedByLines 把语言聚合转成按行数降序的切片。
// 行数相同的语言按名称升序，保证两次渲染结果一致。
func sortedByLines(stats *model.ProjectStats) []languageRow {
	rows := make([]languageRow, 0, len(stats.FileTypes))
	for language, item := range stats.FileTypes {
		rows = append(rows, languageRow{language: language, stats: item})
	}

	sort.Slice(rows, func(i int, j int) bool {
		if rows[i].stats.Lines != rows[j].stats.Lines {
			return rows[i].stats.Lines > rows[j].stats.Lines
		}
		return rows[i].language < rows[j].language
	})

	return rows
}

// FormatBytes 把字节数转换成人类可读形式（B/KB/MB/GB/TB，1024 进制）。
func FormatBytes(bytes int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	const threshold = 1024

	if bytes == 0 {
		return "0 B"
	}

	size := float64(bytes)
	unitIndex := 0
	for size >= threshold && unitIndex < len(units)-1 {
		size /= threshold
		unitIndex++
	}

	if unitIndex == 0 {
		return fmt.Sprintf("%d %s", bytes, units[unitIndex])
	}
	return fmt.Sprintf("%.1f %s", size, units[unitIndex])
}
