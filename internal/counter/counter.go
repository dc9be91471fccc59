// Package counter 提供按行分类的统计能力。
// 分类只依赖行首注释前缀启发式，不解析块注释，也不维护跨行状态。
package counter

import (
	"strings"

	"tallyhawk/internal/filetype"
	"tallyhawk/internal/model"
)

// ClassifyLines 对一段文本内容做逐行分类。
//
// 规则：
// - 去掉首尾空白后为空 → blank
// - 去掉首尾空白后以档案的任一注释前缀开头 → comment
// - 其余 → code
//
// Total 初始等于原始行数；当 includeBlank / includeComments 为 false 时
// 分别减去对应子计数。子计数本身始终完整统计，不受开关影响。
// 空内容返回全零结果。
func ClassifyLines(content string, profile filetype.Profile, includeBlank bool, includeComments bool) model.LineStats {
	var stats model.LineStats
	if content == "" {
		return stats
	}

	lines := splitLines(content)
	stats.Total = len(lines)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			stats.Blank++
		case isCommentLine(trimmed, profile.CommentPrefixes):
			stats.Comments++
		default:
			stats.Code++
		}
	}

	if !includeBlank {
		stats.Total -= stats.Blank
	}
	if !includeComments {
		stats.Total -= stats.Comments
	}

	return stats
}

// splitLines 按换行符切分内容。
// 末尾换行符不会产生多余的空行，同时兼容 Windows 的 \r\n。
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// isCommentLine 判断已去除空白的行是否命中任一注释前缀。
// 按前缀列表顺序匹配，首个命中即返回。
func isCommentLine(trimmed string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
