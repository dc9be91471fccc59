package filetype

import (
	"sort"
	"testing"
)

// TestProfileForKnownExtensions 验证常见后缀都能映射到正确语言。
func TestProfileForKnownExtensions(t *testing.T) {
	registry := NewRegistry()

	cases := []struct {
		path     string
		language string
		binary   bool
	}{
		{path: "main.rs", language: "Rust"},
		{path: "script.py", language: "Python"},
		{path: "app.tsx", language: "TypeScript"},
		{path: "hello.go", language: "Go"},
		{path: "query.sql", language: "SQL"},
		{path: "page.html", language: "HTML"},
		{path: "program.exe", language: "Binary", binary: true},
		{path: "photo.png", language: "Image", binary: true},
		{path: "song.mp3", language: "Audio", binary: true},
		{path: "clip.mp4", language: "Video", binary: true},
		{path: "bundle.tar", language: "Archive", binary: true},
		{path: "paper.pdf", language: "Document", binary: true},
	}

	for _, item := range cases {
		profile := registry.ProfileForPath(item.path)
		if profile.Language != item.language {
			t.Fatalf("%s: expected language %s, got %s", item.path, item.language, profile.Language)
		}
		if profile.Binary != item.binary {
			t.Fatalf("%s: expected binary=%v, got %v", item.path, item.binary, profile.Binary)
		}
	}
}

// TestProfileExtensionCaseInsensitive 验证后缀匹配不区分大小写。
func TestProfileExtensionCaseInsensitive(t *testing.T) {
	registry := NewRegistry()

	profile := registry.ProfileForPath("MAIN.RS")
	if profile.Language != "Rust" {
		t.Fatalf("expected Rust for MAIN.RS, got %s", profile.Language)
	}
}

// TestProfileNoExtensionFallsBackToText 验证无后缀文件按 Text 处理，
// 并带默认注释前缀 # 和 //。
func TestProfileNoExtensionFallsBackToText(t *testing.T) {
	registry := NewRegistry()

	profile := registry.ProfileForPath("README")
	if profile.Language != "Text" {
		t.Fatalf("expected Text, got %s", profile.Language)
	}
	if profile.Binary {
		t.Fatalf("expected non-binary profile")
	}
	if len(profile.CommentPrefixes) != 2 || profile.CommentPrefixes[0] != "#" || profile.CommentPrefixes[1] != "//" {
		t.Fatalf("unexpected default prefixes: %v", profile.CommentPrefixes)
	}
}

// TestProfileUnknownExtensionTotality 验证查询是全函数：
// 任何后缀都返回档案，疑似二进制后缀兜底为 Binary，其余为 Text。
func TestProfileUnknownExtensionTotality(t *testing.T) {
	registry := NewRegistry()

	for _, ext := range []string{"pyc", "class", "sqlite3", "lock", "log"} {
		profile := registry.ProfileForPath("x." + ext)
		if profile.Language != "Binary" || !profile.Binary {
			t.Fatalf("%s: expected Binary fallback, got %+v", ext, profile)
		}
	}

	for _, path := range []string{"notes.txt", "weird.zzz", "", "no.such.extension.qqq"} {
		profile := registry.ProfileForPath(path)
		if profile.Language != "Text" || profile.Binary {
			t.Fatalf("%s: expected Text fallback, got %+v", path, profile)
		}
	}
}

// TestJSONHasNoCommentPrefixes 验证 JSON 档案的前缀列表为空。
func TestJSONHasNoCommentPrefixes(t *testing.T) {
	registry := NewRegistry()

	profile := registry.ProfileForPath("data.json")
	if profile.Language != "JSON" {
		t.Fatalf("expected JSON, got %s", profile.Language)
	}
	if len(profile.CommentPrefixes) != 0 {
		t.Fatalf("expected no comment prefixes, got %v", profile.CommentPrefixes)
	}
}

// TestLanguagesSorted 验证语言清单按名称排序且后缀齐全。
func TestLanguagesSorted(t *testing.T) {
	registry := NewRegistry()
	languages := registry.Languages()

	if len(languages) == 0 {
		t.Fatalf("expected non-empty language list")
	}
	if !sort.SliceIsSorted(languages, func(i int, j int) bool {
		return languages[i].Name < languages[j].Name
	}) {
		t.Fatalf("languages are not sorted by name")
	}

	found := false
	for _, item := range languages {
		if item.Name == "C++" {
			found = true
			if len(item.Extensions) != 5 {
				t.Fatalf("expected 5 C++ extensions, got %v", item.Extensions)
			}
		}
	}
	if !found {
		t.Fatalf("C++ missing from language list")
	}
}
