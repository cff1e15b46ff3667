package domain

// SearchPath is the ordered list of directories scanned for data resources.
// It is a value: Prepend never mutates the receiver.
type SearchPath []string

// Prepend returns a new path with dir at the head.
func (p SearchPath) Prepend(dir string) SearchPath {
	out := make(SearchPath, 0, len(p)+1)
	out = append(out, dir)
	return append(out, p...)
}

// Dirs returns a copy of the directories.
func (p SearchPath) Dirs() []string {
	return append([]string(nil), p...)
}
