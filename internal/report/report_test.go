package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tallyhawk/internal/model"
)

// buildSampleStats 构造一份含文本与二进制条目的统计结果。
func buildSampleStats() *model.ProjectStats {
	stats := model.NewProjectStats()
	stats.AddTextFile("Rust", model.LineStats{Total: 1, Code: 1, Comments: 1, Blank: 1}, 25)
	stats.AddBinaryFile("Image", 10)
	return stats
}

// TestFormatBytes 验证字节格式化与既有输出约定完全一致。
func TestFormatBytes(t *testing.T) {
	cases := []struct {
		input    int64
		expected string
	}{
		{input: 0, expected: "0 B"},
		{input: 500, expected: "500 B"},
		{input: 1024, expected: "1.0 KB"},
		{input: 1536, expected: "1.5 KB"},
		{input: 1048576, expected: "1.0 MB"},
		{input: 1073741824, expected: "1.0 GB"},
	}

	for _, item := range cases {
		if got := FormatBytes(item.input); got != item.expected {
			t.Fatalf("FormatBytes(%d) = %q, expected %q", item.input, got, item.expected)
		}
	}
}

// TestRenderCSVExact 逐字节验证 CSV 输出：
// 固定表头、语言行按名称排序、extension 列为 multiple、末行为 TOTAL。
func TestRenderCSVExact(t *testing.T) {
	var buffer bytes.Buffer
	if err := RenderCSV(&buffer, buildSampleStats()); err != nil {
		t.Fatalf("render csv failed: %v", err)
	}

	expected := "language,extension,files,lines,code_lines,comment_lines,blank_lines,size_bytes\n" +
		"Image,multiple,1,0,0,0,0,10\n" +
		"Rust,multiple,1,1,1,1,1,25\n" +
		"TOTAL,ALL,2,1,1,1,1,35\n"

	if buffer.String() != expected {
		t.Fatalf("csv mismatch:\ngot:\n%s\nexpected:\n%s", buffer.String(), expected)
	}
}

// TestRenderJSONFieldNames 验证 JSON 序列化字段名稳定。
func TestRenderJSONFieldNames(t *testing.T) {
	var buffer bytes.Buffer
	if err := RenderJSON(&buffer, buildSampleStats()); err != nil {
		t.Fatalf("render json failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buffer.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal output failed: %v", err)
	}

	for _, key := range []string{
		"total_files", "total_lines", "total_code_lines",
		"total_comment_lines", "total_blank_lines", "total_size_bytes", "file_types",
	} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("missing top-level key %q in %v", key, decoded)
		}
	}

	fileTypes, ok := decoded["file_types"].(map[string]any)
	if !ok {
		t.Fatalf("file_types is not an object: %v", decoded["file_types"])
	}
	rust, ok := fileTypes["Rust"].(map[string]any)
	if !ok {
		t.Fatalf("missing Rust entry: %v", fileTypes)
	}
	for _, key := range []string{"count", "lines", "code_lines", "comment_lines", "blank_lines", "size_bytes"} {
		if _, ok := rust[key]; !ok {
			t.Fatalf("missing per-language key %q in %v", key, rust)
		}
	}
}

// TestWriteJSONFileCreatesDirectories 验证导出时自动创建目录。
func TestWriteJSONFileCreatesDirectories(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "nested", "out", "stats.json")

	if err := WriteJSONFile(outputPath, buildSampleStats()); err != nil {
		t.Fatalf("write json file failed: %v", err)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read exported file failed: %v", err)
	}
	if !strings.Contains(string(content), "\"total_files\": 2") {
		t.Fatalf("unexpected exported content: %s", content)
	}
}

// TestRenderTableSections 验证表格输出包含总览与语言分区。
func TestRenderTableSections(t *testing.T) {
	var buffer bytes.Buffer
	if err := RenderTable(&buffer, buildSampleStats()); err != nil {
		t.Fatalf("render table failed: %v", err)
	}

	output := buffer.String()
	for _, fragment := range []string{
		"Tallyhawk survey results",
		"Project overview",
		"Total Files:",
		"File Types Breakdown",
		"Rust",
		"Image",
		"Survey complete!",
	} {
		if !strings.Contains(output, fragment) {
			t.Fatalf("table output missing %q:\n%s", fragment, output)
		}
	}
}

// TestRenderTableSortsByLines 验证语言行按行数降序排列。
func TestRenderTableSortsByLines(t *testing.T) {
	stats := model.NewProjectStats()
	stats.AddTextFile("Python", model.LineStats{Total: 1, Code: 1}, 10)
	stats.AddTextFile("Go", model.LineStats{Total: 5, Code: 5}, 50)

	var buffer bytes.Buffer
	if err := RenderTable(&buffer, stats); err != nil {
		t.Fatalf("render table failed: %v", err)
	}

	output := buffer.String()
	if strings.Index(output, "Go") > strings.Index(output, "Python") {
		t.Fatalf("expected Go before Python:\n%s", output)
	}
}
