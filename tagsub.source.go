package tagsub

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Source supplies template text by name. The reserved name EmptyTemplateName
// always loads as the empty template.
type Source interface {
	Load(ctx context.Context, name string) (string, error)
}

// FileSource looks templates up as files in an ordered list of search
// directories; the first directory containing the named file wins.
type FileSource struct {
	paths []string
}

// NewFileSource creates a file-backed template source over the given search
// directories, consulted in order.
func NewFileSource(paths ...string) *FileSource {
	return &FileSource{
		paths: append([]string(nil), paths...),
	}
}

// Paths returns the configured search directories in order.
func (s *FileSource) Paths() []string {
	return append([]string(nil), s.paths...)
}

// Load returns the contents of the first file named name found on the search
// path. A file that exists but cannot be read fails immediately; a directory
// that simply lacks the file is skipped.
func (s *FileSource) Load(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == EmptyTemplateName {
		return "", nil
	}
	if err := validateTemplateName(name); err != nil {
		return "", err
	}

	for _, dir := range s.paths {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", NewSourceUnreadableError(name, err)
		}
		return string(data), nil
	}
	return "", NewSourceNotFoundError(name)
}

// MapSource serves templates from an in-memory map. Useful for tests and for
// embedding a fixed template set in a binary.
type MapSource struct {
	mu        sync.RWMutex
	templates map[string]string
}

// NewMapSource creates an empty in-memory template source.
func NewMapSource() *MapSource {
	return &MapSource{
		templates: make(map[string]string),
	}
}

// Set stores a template body under name, replacing any existing entry.
// The reserved empty-template name cannot be stored.
func (s *MapSource) Set(name, text string) error {
	if name == "" {
		return NewInvalidTemplateNameError(name)
	}
	if name == EmptyTemplateName {
		return NewReservedTemplateNameError(name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[name] = text
	return nil
}

// Delete removes the template stored under name.
// Returns true if the template existed and was removed, false otherwise.
func (s *MapSource) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.templates[name]; !ok {
		return false
	}
	delete(s.templates, name)
	return true
}

// Names returns all stored template names in sorted order.
func (s *MapSource) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns the template body stored under name.
func (s *MapSource) Load(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == EmptyTemplateName {
		return "", nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	text, ok := s.templates[name]
	if !ok {
		return "", NewSourceNotFoundError(name)
	}
	return text, nil
}

// validateTemplateName rejects names that could escape the search
// directories or are not valid file names.
func validateTemplateName(name string) error {
	if name == "" {
		return NewInvalidTemplateNameError(name)
	}
	if strings.Contains(name, "..") {
		return NewInvalidTemplateNameError(name)
	}
	if strings.ContainsAny(name, "/\\:*?\"<>|") {
		return NewInvalidTemplateNameError(name)
	}
	return nil
}

// Interface checks
var (
	_ Source = (*FileSource)(nil)
	_ Source = (*MapSource)(nil)
)
