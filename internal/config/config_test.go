package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"

	"github.com/chatter/shortcuts/internal/catalog"
	"github.com/chatter/shortcuts/internal/logger"
)

const oneCategory = `
categories:
  - name: %s
    groups:
      - name: Basics
        shortcuts:
          - keys: k
            description: d
`

// isolate points every search location at empty temp directories and
// returns the fake home directory.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv(EnvConfig, "")
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func catalogNamed(name string) string {
	return fmt.Sprintf(oneCategory, name)
}

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if _, err := git.PlainInit(dir, false); err != nil {
		t.Fatalf("git init: %v", err)
	}
	return dir
}

func sameDir(t *testing.T, a, b string) bool {
	t.Helper()
	ra, err := filepath.EvalSymlinks(a)
	if err != nil {
		t.Fatalf("resolving %s: %v", a, err)
	}
	rb, err := filepath.EvalSymlinks(b)
	if err != nil {
		t.Fatalf("resolving %s: %v", b, err)
	}
	return ra == rb
}

func TestCandidates_Order(t *testing.T) {
	home := isolate(t)
	t.Setenv(EnvConfig, "/etc/shortcuts.yaml")
	repo := initRepo(t)

	got := Candidates("/tmp/flag.toml", repo)

	if got[0] != (Candidate{Path: "/tmp/flag.toml", Origin: OriginFlag}) {
		t.Errorf("first candidate should be the flag, got %+v", got[0])
	}
	if got[1] != (Candidate{Path: "/etc/shortcuts.yaml", Origin: OriginEnv}) {
		t.Errorf("second candidate should be the env var, got %+v", got[1])
	}
	if got[2].Origin != OriginProject || filepath.Base(got[2].Path) != "shortcuts.yaml" {
		t.Errorf("third candidate should be the project file, got %+v", got[2])
	}

	last := got[len(got)-1]
	if last.Path != filepath.Join(home, ".shortcuts-tui.yml") {
		t.Errorf("last candidate should be the home dotfile, got %+v", last)
	}

	wantUser := filepath.Join(home, ".config", "shortcuts-tui", "shortcuts.yaml")
	found := false
	for _, c := range got {
		if c.Path == wantUser && c.Origin == OriginUser {
			found = true
		}
	}
	if !found {
		t.Errorf("XDG candidate %s missing from %+v", wantUser, got)
	}
}

func TestCandidates_NoRepoNoProjectPaths(t *testing.T) {
	isolate(t)

	for _, c := range Candidates("", t.TempDir()) {
		if c.Origin == OriginProject {
			t.Errorf("unexpected project candidate outside a repository: %+v", c)
		}
		if c.Origin == OriginFlag || c.Origin == OriginEnv {
			t.Errorf("unexpected %s candidate when none configured", c.Origin)
		}
	}
}

func TestProjectRoot_FromSubdirectory(t *testing.T) {
	repo := initRepo(t)
	sub := filepath.Join(repo, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	root, err := ProjectRoot(sub)
	if err != nil {
		t.Fatalf("ProjectRoot returned error: %v", err)
	}
	if !sameDir(t, root, repo) {
		t.Errorf("ProjectRoot(%s) = %s, want %s", sub, root, repo)
	}
}

func TestProjectRoot_NotARepository(t *testing.T) {
	if _, err := ProjectRoot(t.TempDir()); err == nil {
		t.Error("expected error outside a repository")
	}
}

func TestLoad_SkipsDirectories(t *testing.T) {
	home := isolate(t)
	dotfile := filepath.Join(home, ".shortcuts-tui.yaml")
	writeFile(t, dotfile, catalogNamed("Home"))

	res := Load(t.TempDir(), "", logger.Discard())
	if res.Path != dotfile {
		t.Errorf("directory flag should be skipped in favour of the dotfile, got %+v", res)
	}
}

func TestLoad_WatchPath(t *testing.T) {
	home := isolate(t)

	broken := filepath.Join(home, ".shortcuts-tui.yaml")
	writeFile(t, broken, "categories: [\n")

	res := Load(filepath.Join(t.TempDir(), "missing.yaml"), "", logger.Discard())
	if res.Path != "" {
		t.Fatalf("a malformed file must not be reported as loaded, got %s", res.Path)
	}
	if res.WatchPath != broken {
		t.Errorf("WatchPath = %q, want the malformed file %q", res.WatchPath, broken)
	}

	writeFile(t, broken, catalogNamed("Fixed"))
	res = Load("", "", logger.Discard())
	if res.Path != broken || res.WatchPath != broken {
		t.Errorf("loaded file should also be watched, got %+v", res)
	}
}

func TestLoad_NoWatchPathWithoutFiles(t *testing.T) {
	isolate(t)
	if res := Load("", t.TempDir(), logger.Discard()); res.WatchPath != "" {
		t.Errorf("WatchPath = %q, want empty", res.WatchPath)
	}
}

func TestLoad_PrecedenceProjectOverUser(t *testing.T) {
	home := isolate(t)
	repo := initRepo(t)

	writeFile(t, filepath.Join(home, ".config", "shortcuts-tui", "shortcuts.yaml"), catalogNamed("User"))
	writeFile(t, filepath.Join(repo, ".shortcuts.yml"), catalogNamed("Project"))

	res := Load("", repo, logger.Discard())
	if res.Origin != OriginProject || res.Catalog.Categories[0].Name != "Project" {
		t.Errorf("project file should win, got %+v", res)
	}
}

func TestLoad_FlagWins(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".shortcuts-tui.yaml"), catalogNamed("Home"))

	flagPath := filepath.Join(t.TempDir(), "mine.toml")
	writeFile(t, flagPath, "[[categories]]\nname = \"Flag\"\n")

	res := Load(flagPath, "", logger.Discard())
	if res.Path != flagPath || res.Origin != OriginFlag || res.Catalog.Categories[0].Name != "Flag" {
		t.Errorf("flag file should win, got %+v", res)
	}
}

func TestLoad_EnvUsed(t *testing.T) {
	isolate(t)
	envPath := filepath.Join(t.TempDir(), "env.json")
	writeFile(t, envPath, `{"categories": [{"name": "Env", "groups": []}]}`)
	t.Setenv(EnvConfig, envPath)

	res := Load("", "", logger.Discard())
	if res.Origin != OriginEnv || res.Catalog.Categories[0].Name != "Env" {
		t.Errorf("env file should be used, got %+v", res)
	}
}

func TestLoad_MalformedFallsThrough(t *testing.T) {
	home := isolate(t)
	flagPath := filepath.Join(t.TempDir(), "broken.yaml")
	writeFile(t, flagPath, "categories: [\n")
	writeFile(t, filepath.Join(home, ".shortcuts-tui.yml"), catalogNamed("Fallback"))

	res := Load(flagPath, "", logger.Discard())
	if res.Catalog.Categories[0].Name != "Fallback" {
		t.Errorf("malformed file should be skipped, got %+v", res)
	}
}

func TestLoad_DefaultWhenNothingUsable(t *testing.T) {
	isolate(t)

	res := Load(filepath.Join(t.TempDir(), "missing.yaml"), t.TempDir(), logger.Discard())
	if res.Path != "" || res.Origin != "" || res.WatchPath != "" {
		t.Errorf("default catalog should have no path, got %+v", res)
	}
	if res.Catalog.Len() != catalog.Default().Len() {
		t.Errorf("expected the built-in catalog")
	}
}

func TestParseFile_Errors(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file should wrap os.ErrNotExist, got %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	writeFile(t, bad, "not = [toml")
	if _, err := ParseFile(bad); !errors.Is(err, catalog.ErrMalformed) {
		t.Errorf("bad file should wrap ErrMalformed, got %v", err)
	}
}
