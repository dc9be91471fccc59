package scanner

import (
	"fmt"
	"path"

	"github.com/bmatcuk/doublestar/v4"
)

// excludeMatcher 应用用户提供的排除 glob 模式。
// 模式按 doublestar 语法匹配根目录相对路径（斜杠分隔）。
type excludeMatcher struct {
	patterns []string
}

// newExcludeMatcher 校验并装载排除模式。
// 非法模式在扫描开始前即报错，避免遍历到一半才失败。
func newExcludeMatcher(patterns []string) (*excludeMatcher, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", pattern)
		}
	}
	return &excludeMatcher{patterns: patterns}, nil
}

// excluded 判断相对路径是否命中任一排除模式。
// 除完整相对路径外也尝试匹配末级名称，便于 *.log 这类简单写法。
func (m *excludeMatcher) excluded(relPath string) bool {
	for _, pattern := range m.patterns {
		if matched, _ := doublestar.Match(pattern, relPath); matched {
			return true
		}
		if matched, _ := doublestar.Match(pattern, path.Base(relPath)); matched {
			return true
		}
	}
	return false
}
