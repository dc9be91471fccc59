// Package filetype 维护文件后缀到语言档案的静态映射。
// 映射是纯数据：每个后缀对应语言名、二进制标记和行注释前缀列表，
// 任何后缀（包括未知后缀和无后缀）都能得到一个档案，查询永不失败。
package filetype

import (
	"path/filepath"
	"sort"
	"strings"
)

// Profile 描述一个文件的语言档案。
// Binary 为 true 时扫描器不读取内容，也不做行级分析。
type Profile struct {
	Language        string
	Binary          bool
	CommentPrefixes []string
}

// Descriptor 用于对外展示语言及后缀信息。
type Descriptor struct {
	Name            string
	Extensions      []string
	Binary          bool
	CommentPrefixes []string
}

// Registry 管理语言档案注册与后缀映射。
type Registry struct {
	byExtension map[string]Profile
	descriptors []Descriptor
}

// profileEntry 是静态表的一行：一种语言与它的全部后缀。
type profileEntry struct {
	language   string
	binary     bool
	prefixes   []string
	extensions []string
}

// builtinProfiles 是内置语言表。
// 后缀不含点号，全部小写；prefixes 的顺序即匹配顺序。
var builtinProfiles = []profileEntry{
	{language: "Rust", prefixes: []string{"//", "/*"}, extensions: []string{"rs"}},
	{language: "JavaScript", prefixes: []string{"//", "/*"}, extensions: []string{"js", "jsx", "mjs"}},
	{language: "TypeScript", prefixes: []string{"//", "/*"}, extensions: []string{"ts", "tsx"}},
	{language: "Python", prefixes: []string{"#"}, extensions: []string{"py", "pyx", "pyi"}},
	{language: "C", prefixes: []string{"//", "/*"}, extensions: []string{"c", "h"}},
	{language: "C++", prefixes: []string{"//", "/*"}, extensions: []string{"cpp", "cxx", "cc", "hpp", "hxx"}},
	{language: "Java", prefixes: []string{"//", "/*"}, extensions: []string{"java"}},
	{language: "Go", prefixes: []string{"//", "/*"}, extensions: []string{"go"}},
	{language: "Shell", prefixes: []string{"#"}, extensions: []string{"sh", "bash", "zsh", "fish"}},
	{language: "HTML", prefixes: []string{"<!--"}, extensions: []string{"html", "htm"}},
	{language: "CSS", prefixes: []string{"/*"}, extensions: []string{"css"}},
	{language: "Sass", prefixes: []string{"//", "/*"}, extensions: []string{"scss", "sass"}},
	// JSON 没有行注释语法，前缀列表为空。
	{language: "JSON", prefixes: []string{}, extensions: []string{"json"}},
	{language: "YAML", prefixes: []string{"#"}, extensions: []string{"yaml", "yml"}},
	{language: "TOML", prefixes: []string{"#"}, extensions: []string{"toml"}},
	{language: "XML", prefixes: []string{"<!--"}, extensions: []string{"xml"}},
	{language: "Markdown", prefixes: []string{"<!--"}, extensions: []string{"md", "markdown"}},
	{language: "reStructuredText", prefixes: []string{".."}, extensions: []string{"rst"}},
	{language: "Ruby", prefixes: []string{"#"}, extensions: []string{"rb"}},
	{language: "PHP", prefixes: []string{"//", "/*", "#"}, extensions: []string{"php"}},
	{language: "Swift", prefixes: []string{"//", "/*"}, extensions: []string{"swift"}},
	{language: "Kotlin", prefixes: []string{"//", "/*"}, extensions: []string{"kt", "kts"}},
	{language: "C#", prefixes: []string{"//", "/*"}, extensions: []string{"cs"}},
	{language: "Dart", prefixes: []string{"//", "/*"}, extensions: []string{"dart"}},
	{language: "R", prefixes: []string{"#"}, extensions: []string{"r"}},
	{language: "SQL", prefixes: []string{"--", "/*"}, extensions: []string{"sql"}},
	{language: "Binary", binary: true, prefixes: []string{}, extensions: []string{"exe", "dll", "so", "dylib", "a", "lib"}},
	{language: "Image", binary: true, prefixes: []string{}, extensions: []string{"jpg", "jpeg", "png", "gif", "bmp", "svg", "ico", "webp"}},
	{language: "Audio", binary: true, prefixes: []string{}, extensions: []string{"mp3", "wav", "ogg", "flac", "aac"}},
	{language: "Video", binary: true, prefixes: []string{}, extensions: []string{"mp4", "avi", "mkv", "mov", "wmv", "flv"}},
	{language: "Archive", binary: true, prefixes: []string{}, extensions: []string{"zip", "tar", "gz", "bz2", "xz", "7z", "rar"}},
	{language: "Document", binary: true, prefixes: []string{}, extensions: []string{"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx"}},
}

// likelyBinaryExtensions 是未知后缀兜底时的“疑似二进制”集合。
// 覆盖归档产物、目标文件、缓存、锁文件、字节码和数据库等常见格式。
var likelyBinaryExtensions = map[string]bool{
	"bin":     true,
	"dat":     true,
	"db":      true,
	"sqlite":  true,
	"sqlite3": true,
	"lock":    true,
	"log":     true,
	"tmp":     true,
	"temp":    true,
	"cache":   true,
	"o":       true,
	"obj":     true,
	"pyc":     true,
	"class":   true,
	"jar":     true,
}

// defaultPrefixes 是未知后缀和纯文本文件的默认注释前缀。
// 即使文件最终被归为 Text，以 # 或 // 开头的行也会按注释统计。
var defaultPrefixes = []string{"#", "//"}

// NewRegistry 创建并装载全部内置语言档案。
func NewRegistry() *Registry {
	registry := &Registry{
		byExtension: make(map[string]Profile),
	}

	for _, item := range builtinProfiles {
		profile := Profile{
			Language:        item.language,
			Binary:          item.binary,
			CommentPrefixes: item.prefixes,
		}
		for _, ext := range item.extensions {
			registry.byExtension[ext] = profile
		}

		extensions := append([]string(nil), item.extensions...)
		sort.Strings(extensions)
		registry.descriptors = append(registry.descriptors, Descriptor{
			Name:            item.language,
			Extensions:      extensions,
			Binary:          item.binary,
			CommentPrefixes: item.prefixes,
		})
	}

	sort.Slice(registry.descriptors, func(i int, j int) bool {
		return registry.descriptors[i].Name < registry.descriptors[j].Name
	})

	return registry
}

// ProfileForPath 根据文件路径的小写后缀返回语言档案。
// 查询是全函数：命中内置表返回对应档案；
// 未知后缀按“疑似二进制”集合兜底为 Binary，否则为 Text。
func (r *Registry) ProfileForPath(path string) Profile {
	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	if profile, ok := r.byExtension[extension]; ok {
		return profile
	}

	if likelyBinaryExtensions[extension] {
		return Profile{
			Language:        "Binary",
			Binary:          true,
			CommentPrefixes: defaultPrefixes,
		}
	}

	return Profile{
		Language:        "Text",
		CommentPrefixes: defaultPrefixes,
	}
}

// Languages 返回已注册语言清单，按语言名排序。
func (r *Registry) Languages() []Descriptor {
	return r.descriptors
}
