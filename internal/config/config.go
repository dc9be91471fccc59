// Package config 读取扫描根目录下的可选 .tallyhawk.toml 配置文件。
// 配置文件只提供命令行参数的默认值，显式传入的参数永远优先。
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName 是配置文件的固定名称。
const FileName = ".tallyhawk.toml"

// File 表示配置文件内容。
// 指针字段用于区分“未设置”和“显式设为零值”。
type File struct {
	All             *bool    `toml:"all"`
	Gitignore       *bool    `toml:"gitignore"`
	IncludeBlank    *bool    `toml:"include_blank"`
	IncludeComments *bool    `toml:"include_comments"`
	Format          *string  `toml:"format"`
	Exclude         []string `toml:"exclude"`
}

// Load 读取 root 目录下的配置文件。
// 文件不存在时返回 (nil, nil)，解析失败返回带路径的错误。
func Load(root string) (*File, error) {
	path := filepath.Join(root, FileName)

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var file File
	if err := toml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &file, nil
}
