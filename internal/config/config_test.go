package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeConfigFile 是测试辅助函数，在临时目录写入配置文件。
func writeConfigFile(t *testing.T, dir string, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config fixture failed: %v", err)
	}
}

// TestLoadMissingFile 验证没有配置文件时返回 nil 且不报错。
func TestLoadMissingFile(t *testing.T) {
	file, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if file != nil {
		t.Fatalf("expected nil file, got %+v", file)
	}
}

// TestLoadParsesValues 验证各字段解析与“未设置”判定。
func TestLoadParsesValues(t *testing.T) {
	tempDir := t.TempDir()
	writeConfigFile(t, tempDir, "all = true\nformat = \"csv\"\nexclude = [\"vendor/**\", \"*.min.js\"]\n")

	file, err := Load(tempDir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if file.All == nil || !*file.All {
		t.Fatalf("expected all=true, got %+v", file.All)
	}
	if file.Format == nil || *file.Format != "csv" {
		t.Fatalf("expected format=csv, got %+v", file.Format)
	}
	if len(file.Exclude) != 2 || file.Exclude[0] != "vendor/**" {
		t.Fatalf("unexpected exclude list: %v", file.Exclude)
	}
	if file.Gitignore != nil || file.IncludeBlank != nil || file.IncludeComments != nil {
		t.Fatalf("unset fields should stay nil: %+v", file)
	}
}

// TestLoadInvalidToml 验证语法错误会带文件路径报错。
func TestLoadInvalidToml(t *testing.T) {
	tempDir := t.TempDir()
	writeConfigFile(t, tempDir, "all = [broken\n")

	_, err := Load(tempDir)
	if err == nil {
		t.Fatalf("expected parse error, got nil")
	}
}
