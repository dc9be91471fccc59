// Package model 定义 tallyhawk 的核心数据模型。
// 这些结构会被扫描器、输出层和命令层共同使用。
package model

// LineStats 表示单个文本文件的行级统计值。
//
// 注意：
// - Code/Comments/Blank 三者互斥，每行只归入一类
// - Total 初始等于原始行数，但当配置排除空行/注释时会被向下修正，
//   因此修正后 Total 不再等于三个子计数之和，这是对外约定的一部分
type LineStats struct {
	Total    int `json:"total"`
	Code     int `json:"code"`
	Comments int `json:"comments"`
	Blank    int `json:"blank"`
}

// FileTypeStats 表示某个语言的聚合结果。
// 由 ProjectStats.FileTypes 独占持有，首个文件出现时创建，之后只增不删。
type FileTypeStats struct {
	Count        int   `json:"count"`
	Lines        int   `json:"lines"`
	CodeLines    int   `json:"code_lines"`
	CommentLines int   `json:"comment_lines"`
	BlankLines   int   `json:"blank_lines"`
	SizeBytes    int64 `json:"size_bytes"`
}

// ProjectStats 表示一次完整扫描的项目级总计信息。
// 全局字段永远等于 FileTypes 中对应字段之和：
// 每折叠一个文件时两边在同一步骤内更新，保证求和不变量成立。
type ProjectStats struct {
	TotalFiles        int                       `json:"total_files"`
	TotalLines        int                       `json:"total_lines"`
	TotalCodeLines    int                       `json:"total_code_lines"`
	TotalCommentLines int                       `json:"total_comment_lines"`
	TotalBlankLines   int                       `json:"total_blank_lines"`
	FileTypes         map[string]*FileTypeStats `json:"file_types"`
	TotalSizeBytes    int64                     `json:"total_size_bytes"`
}

// NewProjectStats 创建全零初始状态的统计对象。
func NewProjectStats() *ProjectStats {
	return &ProjectStats{
		FileTypes: make(map[string]*FileTypeStats),
	}
}

// AddTextFile 把一个文本文件的分类结果折叠进总计。
func (p *ProjectStats) AddTextFile(language string, lines LineStats, size int64) {
	p.TotalFiles++
	p.TotalLines += lines.Total
	p.TotalCodeLines += lines.Code
	p.TotalCommentLines += lines.Comments
	p.TotalBlankLines += lines.Blank
	p.TotalSizeBytes += size

	entry := p.entry(language)
	entry.Count++
	entry.Lines += lines.Total
	entry.CodeLines += lines.Code
	entry.CommentLines += lines.Comments
	entry.BlankLines += lines.Blank
	entry.SizeBytes += size
}

// AddBinaryFile 记录一个二进制文件。
// 二进制文件只计入文件数和字节数，不参与任何行级统计。
func (p *ProjectStats) AddBinaryFile(language string, size int64) {
	p.TotalFiles++
	p.TotalSizeBytes += size

	entry := p.entry(language)
	entry.Count++
	entry.SizeBytes += size
}

// entry 返回指定语言的聚合条目，不存在时创建零值条目。
func (p *ProjectStats) entry(language string) *FileTypeStats {
	item, ok := p.FileTypes[language]
	if !ok {
		item = &FileTypeStats{}
		p.FileTypes[language] = item
	}
	return item
}
