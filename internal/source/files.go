package source

// FileID identifies one front-end source file registered with a Files
// table. Packages carry the tag of the file they were declared in, which
// is what lets the merger tell apart same-named packages coming from
// different files.
type FileID uint32

const NoFileID FileID = 0

// IsValid reports whether the ID refers to a registered file.
func (id FileID) IsValid() bool { return id != NoFileID }

// Files assigns stable IDs to source-file paths. Like the interner, one
// instance is shared across every tree of a link session.
type Files struct {
	byID  []string
	index map[string]FileID
}

func NewFiles() *Files {
	return &Files{
		byID:  []string{""}, // NoFileID maps to the empty path
		index: map[string]FileID{"": 0},
	}
}

// Add registers path and returns its ID, reusing an existing entry.
func (f *Files) Add(path string) FileID {
	if id, ok := f.index[path]; ok {
		return id
	}
	id := FileID(len(f.byID))
	f.byID = append(f.byID, path)
	f.index[path] = id
	return id
}

// Path returns the registered path for id, or "" for an unknown ID.
func (f *Files) Path(id FileID) string {
	if int(id) >= len(f.byID) {
		return ""
	}
	return f.byID[id]
}

// Len returns the number of entries including the NoFileID sentinel.
func (f *Files) Len() int {
	return len(f.byID)
}
