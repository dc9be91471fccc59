package scanner

import (
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// ignoreLayer 对应一个目录下的忽略文件及其生效范围。
type ignoreLayer struct {
	dir   string
	rules *ignore.GitIgnore
}

// ignoreStack 按目录层级维护忽略规则。
// 遍历进入目录时压入该目录的 .gitignore，查询时由内向外逐层匹配。
type ignoreStack struct {
	enabled bool
	layers  []ignoreLayer
}

// newIgnoreStack 创建忽略规则栈。
// 仓库本地排除文件 .git/info/exclude 作为最外层规则先行装载。
func newIgnoreStack(root string, enabled bool) *ignoreStack {
	stack := &ignoreStack{enabled: enabled}
	if !enabled {
		return stack
	}

	excludePath := filepath.Join(root, ".git", "info", "exclude")
	if rules, err := ignore.CompileIgnoreFile(excludePath); err == nil {
		stack.layers = append(stack.layers, ignoreLayer{dir: root, rules: rules})
	}

	return stack
}

// enterDirectory 装载 dir 下的 .gitignore（如果存在）并压栈。
func (s *ignoreStack) enterDirectory(dir string) {
	if !s.enabled {
		return
	}

	rules, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return
	}
	s.layers = append(s.layers, ignoreLayer{dir: dir, rules: rules})
}

// ignored 判断绝对路径是否被忽略规则排除。
// 从最深层向外查询，离路径最近的一条命中规则决定结果，
// 取反规则（! 开头）因此可以重新包含被外层排除的路径。
func (s *ignoreStack) ignored(path string) bool {
	if !s.enabled {
		return false
	}

	for i := len(s.layers) - 1; i >= 0; i-- {
		layer := s.layers[i]

		rel, err := filepath.Rel(layer.dir, path)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}

		matched, pattern := layer.rules.MatchesPathHow(filepath.ToSlash(rel))
		if pattern != nil {
			return matched
		}
	}

	return false
}
