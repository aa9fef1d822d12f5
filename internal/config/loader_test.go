package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yml")
		content := `defaults:
  max_pages: 12
origins:
  shop.example.com:
    max_pages: 30
    strict: true
    user_agent: "ShopAudit/1.0"
  blog.example.com:
    strict: false
`
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("LoadConfigFile() error = %v", err)
		}

		if cf.Defaults.MaxPages != 12 {
			t.Errorf("Defaults.MaxPages = %d, want 12", cf.Defaults.MaxPages)
		}

		shop, ok := cf.Origins["shop.example.com"]
		if !ok {
			t.Fatal("missing shop.example.com entry")
		}
		if shop.MaxPages != 30 {
			t.Errorf("shop MaxPages = %d, want 30", shop.MaxPages)
		}
		if shop.Strict == nil || !*shop.Strict {
			t.Error("shop strict should be true")
		}
		if shop.UserAgent != "ShopAudit/1.0" {
			t.Errorf("shop UserAgent = %q", shop.UserAgent)
		}

		blog := cf.Origins["blog.example.com"]
		if blog.Strict == nil || *blog.Strict {
			t.Error("blog strict should be an explicit false")
		}
		if blog.MaxPages != 0 {
			t.Errorf("blog MaxPages = %d, want 0 (unset)", blog.MaxPages)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yml")
		if err := os.WriteFile(path, []byte("origins: [not a map"), 0o600); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected a parse error")
		}
	})

	t.Run("empty file yields empty origins map", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.yml")
		if err := os.WriteFile(path, []byte(""), 0o600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("LoadConfigFile() error = %v", err)
		}
		if cf.Origins == nil {
			t.Error("Origins map should be initialized")
		}
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile("/explicit/path.yml"); got != "/explicit/path.yml" {
			t.Errorf("FindConfigFile() = %q", got)
		}
	})

	t.Run("current directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		if err := os.WriteFile(DefaultConfigFile, []byte("origins: {}"), 0o600); err != nil {
			t.Fatal(err)
		}

		if got := FindConfigFile(""); got != DefaultConfigFile {
			t.Errorf("FindConfigFile() = %q, want %q", got, DefaultConfigFile)
		}
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HOME", t.TempDir())

		if got := FindConfigFile(""); got != "" {
			t.Errorf("FindConfigFile() = %q, want empty", got)
		}
	})
}
