// Package scanner 提供目录遍历与统计聚合能力。
// 该层负责忽略策略、任务分发、并发分类和结果折叠，不负责行分类细节。
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"unicode/utf8"

	"tallyhawk/internal/counter"
	"tallyhawk/internal/filetype"
	"tallyhawk/internal/model"
)

// Config 是一次扫描的全部策略开关。
type Config struct {
	IncludeHidden     bool
	RespectGitignore  bool
	IncludeBlankLines bool
	IncludeComments   bool
	ExcludeGlobs      []string
}

// Service 是扫描服务对象。
type Service struct {
	registry *filetype.Registry
	workers  int
}

// fileTask 表示一个待分析文件任务。
type fileTask struct {
	absolutePath string
	displayPath  string
	profile      filetype.Profile
	size         int64
}

// fileResult 表示 worker 的执行产物。
// err 非空代表不可恢复错误，会让整次扫描以失败收场。
type fileResult struct {
	language  string
	size      int64
	lineStats model.LineStats
	binary    bool
	err       error
}

// errScanStopped 用于在出现致命错误后提前终止遍历。
var errScanStopped = errors.New("scan stopped")

// NewService 创建扫描服务。
func NewService(registry *filetype.Registry, workers int) *Service {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Service{
		registry: registry,
		workers:  workers,
	}
}

// Scan 扫描目录或单文件并返回聚合统计。
//
// 分类在 worker 中并发执行，折叠只发生在收集循环里，
// 因此总计与各语言分项在任何执行顺序下都满足求和不变量。
// 遇到第一个不可恢复错误时扫描立即失败，不输出部分结果。
func (s *Service) Scan(targetPath string, config Config) (*model.ProjectStats, error) {
	trimmedPath := strings.TrimSpace(targetPath)
	if trimmedPath == "" {
		return nil, errors.New("scan path is empty")
	}

	root, err := filepath.Abs(trimmedPath)
	if err != nil {
		return nil, fmt.Errorf("resolve absolute path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat path %s: %w", root, err)
	}

	excluder, err := newExcludeMatcher(config.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	tasks := make(chan fileTask, s.workers*4)
	results := make(chan fileResult, s.workers*4)
	stop := make(chan struct{})
	walkErrChan := make(chan error, 1)

	var workerGroup sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			s.runWorker(tasks, results, config)
		}()
	}

	go func() {
		defer close(tasks)
		if info.IsDir() {
			walkErrChan <- s.enqueueTree(root, config, excluder, tasks, stop)
			return
		}
		walkErrChan <- s.enqueueSingleFile(root, info, tasks, stop)
	}()

	go func() {
		workerGroup.Wait()
		close(results)
	}()

	stats := model.NewProjectStats()
	var firstErr error
	for item := range results {
		if item.err != nil {
			if firstErr == nil {
				firstErr = item.err
				close(stop)
			}
			continue
		}
		if firstErr != nil {
			continue
		}

		if item.binary {
			stats.AddBinaryFile(item.language, item.size)
			continue
		}
		stats.AddTextFile(item.language, item.lineStats, item.size)
	}

	walkErr := <-walkErrChan
	if firstErr != nil {
		return nil, firstErr
	}
	if walkErr != nil && !errors.Is(walkErr, errScanStopped) {
		return nil, walkErr
	}

	return stats, nil
}

// enqueueTree 遍历目录树，应用隐藏文件、忽略文件和排除模式策略，
// 把通过过滤的常规文件推入任务队列。
func (s *Service) enqueueTree(root string, config Config, excluder *excludeMatcher, tasks chan<- fileTask, stop <-chan struct{}) error {
	ignores := newIgnoreStack(root, config.RespectGitignore)

	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("walk %s: %w", path, walkErr)
		}

		// 根目录自身不参与过滤，但它的 .gitignore 要先装载。
		if path == root {
			ignores.enterDirectory(path)
			return nil
		}

		if !config.IncludeHidden && strings.HasPrefix(entry.Name(), ".") {
			if entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if ignores.ignored(path) {
			if entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		relativePath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relativePath = path
		}
		relativePath = filepath.ToSlash(relativePath)

		if excluder.excluded(relativePath) {
			if entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			ignores.enterDirectory(path)
			return nil
		}

		// 符号链接等非常规条目不单独计数。
		if !entry.Type().IsRegular() {
			return nil
		}

		info, infoErr := entry.Info()
		if infoErr != nil {
			return fmt.Errorf("stat file %s: %w", path, infoErr)
		}

		task := fileTask{
			absolutePath: path,
			displayPath:  relativePath,
			profile:      s.registry.ProfileForPath(path),
			size:         info.Size(),
		}
		select {
		case tasks <- task:
			return nil
		case <-stop:
			return errScanStopped
		}
	})
}

// enqueueSingleFile 在用户给定单文件路径时创建任务。
func (s *Service) enqueueSingleFile(filePath string, info os.FileInfo, tasks chan<- fileTask, stop <-chan struct{}) error {
	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file: %s", filePath)
	}

	task := fileTask{
		absolutePath: filePath,
		displayPath:  filepath.Base(filePath),
		profile:      s.registry.ProfileForPath(filePath),
		size:         info.Size(),
	}
	select {
	case tasks <- task:
		return nil
	case <-stop:
		return errScanStopped
	}
}

// runWorker 执行真实的文件读取与行分类。
func (s *Service) runWorker(tasks <-chan fileTask, results chan<- fileResult, config Config) {
	for task := range tasks {
		// 档案标记为二进制的文件直接短路，不读取内容。
		if task.profile.Binary {
			results <- fileResult{
				language: task.profile.Language,
				size:     task.size,
				binary:   true,
			}
			continue
		}

		content, readErr := os.ReadFile(task.absolutePath)
		if readErr != nil {
			results <- fileResult{
				err: fmt.Errorf("read file %s: %w", task.displayPath, readErr),
			}
			continue
		}

		// 无法按 UTF-8 解码的文件改按二进制记录，
		// 避免单个异常文件让整个项目的扫描失败。
		if !utf8.Valid(content) {
			results <- fileResult{
				language: task.profile.Language,
				size:     task.size,
				binary:   true,
			}
			continue
		}

		lineStats := counter.ClassifyLines(string(content), task.profile, config.IncludeBlankLines, config.IncludeComments)
		results <- fileResult{
			language:  task.profile.Language,
			size:      task.size,
			lineStats: lineStats,
		}
	}
}
