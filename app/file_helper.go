package app

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/ludo-technologies/depinfer/internal/constants"
)

// jsExtensions is constants.SourceExtensions indexed for O(1) lookup,
// checked case-insensitively.
var jsExtensions = func() map[string]bool {
	m := make(map[string]bool, len(constants.SourceExtensions))
	for _, ext := range constants.SourceExtensions {
		m[ext] = true
	}
	return m
}()

// FileHelper walks the filesystem to discover JavaScript/TypeScript
// source files for the `scan` subcommand.
type FileHelper struct{}

// NewFileHelper returns a FileHelper.
func NewFileHelper() *FileHelper {
	return &FileHelper{}
}

// CollectJSFiles resolves paths (a mix of files and directories) into the
// flat list of JavaScript/TypeScript files they contain. Directories are
// walked recursively when recursive is true (honoring a root .gitignore
// and excludePatterns) and shallowly otherwise.
func (h *FileHelper) CollectJSFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if h.admits(path, excludePatterns) {
				files = append(files, path)
			}
			continue
		}

		found, err := h.collectFromDir(path, recursive, excludePatterns)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	return files, nil
}

func (h *FileHelper) collectFromDir(dir string, recursive bool, excludePatterns []string) ([]string, error) {
	if !recursive {
		return h.collectShallow(dir, excludePatterns)
	}

	gi := loadGitIgnore(dir)
	var files []string
	walkErr := filepath.Walk(dir, func(filePath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ignoredByGit(gi, dir, filePath) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			if matchesAnyPattern(filepath.Base(filePath), excludePatterns) {
				return filepath.SkipDir
			}
			return nil
		}
		if h.admits(filePath, excludePatterns) {
			files = append(files, filePath)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return files, nil
}

func (h *FileHelper) collectShallow(dir string, excludePatterns []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filePath := filepath.Join(dir, entry.Name())
		if h.admits(filePath, excludePatterns) {
			files = append(files, filePath)
		}
	}
	return files, nil
}

// admits reports whether path is a JS/TS file not matched by any exclude
// pattern.
func (h *FileHelper) admits(path string, excludePatterns []string) bool {
	return h.IsValidJSFile(path) && !isExcluded(path, excludePatterns)
}

// IsValidJSFile reports whether path's extension identifies it as
// JavaScript or TypeScript source.
func (h *FileHelper) IsValidJSFile(path string) bool {
	return jsExtensions[strings.ToLower(filepath.Ext(path))]
}

// FileExists reports whether path exists and is a regular file.
func (h *FileHelper) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// ReadFile reads path's contents.
func (h *FileHelper) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func isExcluded(path string, excludePatterns []string) bool {
	base := filepath.Base(path)
	if matchesAnyPattern(base, excludePatterns) {
		return true
	}
	for _, pattern := range excludePatterns {
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

// matchesAnyPattern reports whether name matches any glob in patterns.
// A malformed pattern simply never matches rather than aborting the walk.
func matchesAnyPattern(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}

// loadGitIgnore loads root's .gitignore, returning nil if it doesn't exist
// or can't be read.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// ignoredByGit reports whether filePath (below root) matches gi. A nil gi
// (no .gitignore present) never ignores anything.
func ignoredByGit(gi *ignore.GitIgnore, root, filePath string) bool {
	if gi == nil {
		return false
	}
	rel, err := filepath.Rel(root, filePath)
	return err == nil && gi.MatchesPath(rel)
}

// ResolveFilePaths resolves paths for the `scan` subcommand: if every
// entry in paths is already an existing file, they're returned as-is;
// otherwise paths are treated as a mix of files/directories and walked
// via CollectJSFiles.
func ResolveFilePaths(fileHelper *FileHelper, paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	if allExistingFiles(fileHelper, paths) {
		return paths, nil
	}
	return fileHelper.CollectJSFiles(paths, recursive, includePatterns, excludePatterns)
}

func allExistingFiles(fileHelper *FileHelper, paths []string) bool {
	for _, path := range paths {
		exists, err := fileHelper.FileExists(path)
		if err != nil || !exists {
			return false
		}
	}
	return true
}
