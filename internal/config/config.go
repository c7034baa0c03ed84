// Package config finds and reads the shortcut catalog configuration file.
//
// Candidates are tried in order: an explicit path, $SHORTCUTS_TUI_CONFIG, a
// shortcuts file at the root of the enclosing git repository, the XDG config
// directory, and finally dotfiles in the home directory. The first candidate
// that can be read and parsed wins; when none can, the built-in catalog is used.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/chatter/shortcuts/internal/catalog"
	"github.com/chatter/shortcuts/internal/logger"
)

const (
	// EnvConfig overrides the configuration file search.
	EnvConfig = "SHORTCUTS_TUI_CONFIG"

	// EnvLogLevel sets the log level when --log-level is not given.
	EnvLogLevel = "SHORTCUTS_TUI_LOG_LEVEL"

	appDir = "shortcuts-tui"
)

// Origin says where a candidate path came from.
type Origin string

const (
	OriginFlag    Origin = "flag"
	OriginEnv     Origin = "env"
	OriginProject Origin = "project"
	OriginUser    Origin = "user"
)

// Candidate is one place a configuration file may live.
type Candidate struct {
	Path   string
	Origin Origin
}

var (
	projectNames = []string{"shortcuts.yaml", "shortcuts.yml", "shortcuts.json", "shortcuts.toml", ".shortcuts.yaml", ".shortcuts.yml"}
	userNames    = []string{"shortcuts.yaml", "shortcuts.yml", "shortcuts.json", "shortcuts.toml"}
)

// Candidates lists every configuration path in search order. explicit may be
// empty; workDir is where the git repository search starts; empty skips it.
func Candidates(explicit, workDir string) []Candidate {
	var out []Candidate

	if explicit != "" {
		out = append(out, Candidate{Path: explicit, Origin: OriginFlag})
	}
	if env := os.Getenv(EnvConfig); env != "" {
		out = append(out, Candidate{Path: env, Origin: OriginEnv})
	}

	if workDir != "" {
		if root, err := ProjectRoot(workDir); err == nil {
			for _, name := range projectNames {
				out = append(out, Candidate{Path: filepath.Join(root, name), Origin: OriginProject})
			}
		}
	}

	if dir, err := userConfigDir(); err == nil {
		for _, name := range userNames {
			out = append(out, Candidate{Path: filepath.Join(dir, appDir, name), Origin: OriginUser})
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		out = append(out,
			Candidate{Path: filepath.Join(home, ".shortcuts-tui.yaml"), Origin: OriginUser},
			Candidate{Path: filepath.Join(home, ".shortcuts-tui.yml"), Origin: OriginUser},
		)
	}

	return out
}

// ProjectRoot returns the worktree root of the git repository containing dir.
func ProjectRoot(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening git repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("reading worktree: %w", err)
	}

	return wt.Filesystem.Root(), nil
}

func userConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(home, ".config"), nil
}

// ParseFile reads and strictly parses a configuration file.
func ParseFile(path string) (catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("reading config: %w", err)
	}

	cat, err := catalog.Parse(data, catalog.FormatFromPath(path))
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cat, nil
}

// Result is the outcome of Load. Path is empty when the built-in catalog is
// used. WatchPath is the file to watch for changes: Path when a file loaded,
// otherwise the first file that exists but failed to parse, so that fixing it
// takes effect.
type Result struct {
	Catalog   catalog.Catalog
	Path      string
	Origin    Origin
	WatchPath string
}

// Load walks the candidates and returns the first catalog that parses.
// Missing files are skipped silently; unreadable or malformed ones are logged
// and skipped. It never fails: the built-in catalog is the last resort.
func Load(explicit, workDir string, log *logger.Logger) Result {
	var broken string
	for _, c := range Candidates(explicit, workDir) {
		info, err := os.Stat(c.Path)
		if err != nil || !info.Mode().IsRegular() {
			if c.Origin == OriginFlag || c.Origin == OriginEnv {
				log.Warn("configured file not usable", "path", c.Path, "origin", c.Origin, "err", err)
			}
			continue
		}

		cat, err := ParseFile(c.Path)
		if err != nil {
			log.Warn("skipping config", "path", c.Path, "err", err)
			if broken == "" {
				broken = c.Path
			}
			continue
		}

		log.Info("config loaded", "path", c.Path, "origin", c.Origin, "categories", cat.Len())
		return Result{Catalog: cat, Path: c.Path, Origin: c.Origin, WatchPath: c.Path}
	}

	log.Info("using built-in catalog", "watch", broken)
	return Result{Catalog: catalog.Default(), WatchPath: broken}
}
