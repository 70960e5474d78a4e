package vault

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// File is an entry in the vault index: a note, attachment or folder.
type File struct {
	Path   string // vault-relative, normalised
	Name   string
	Folder bool
}

// FileIndex resolves normalised vault paths to indexed entries.
type FileIndex interface {
	GetAbstractFileByPath(path string) (File, bool)
}

var (
	separators     = regexp.MustCompile(`[\\/]+`)
	edgeSeparators = regexp.MustCompile(`^/+|/+$`)
)

// NormalizePath maps a user-entered path to the canonical vault form:
// separators unified and collapsed, no leading or trailing slash, non-breaking
// spaces replaced, NFC. The vault root is "/".
func NormalizePath(p string) string {
	p = separators.ReplaceAllString(p, "/")
	p = edgeSeparators.ReplaceAllString(p, "")
	if p == "" {
		p = "/"
	}
	p = strings.NewReplacer("\u00a0", " ", "\u202f", " ").Replace(p)
	return norm.NFC.String(p)
}
