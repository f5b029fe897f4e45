package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Tree-document loading
	LoadInfo          Code = 1000
	LoadReadFailed    Code = 1001
	LoadBadDocument   Code = 1002
	LoadBadMemberKind Code = 1003
	LoadEmptyPackage  Code = 1004

	// Linking
	LinkInfo                Code = 2000
	LinkUnresolvedImport    Code = 2001
	LinkUnresolvedSupertype Code = 2002
	LinkUnresolvedGlobal    Code = 2003

	// Post-link validation
	ValInfo                Code = 3000
	ValUnresolvedReference Code = 3001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	LoadInfo:          "loader note",
	LoadReadFailed:    "tree document could not be read",
	LoadBadDocument:   "tree document is malformed",
	LoadBadMemberKind: "tree document member has an unknown kind",
	LoadEmptyPackage:  "tree document declares no package",

	LinkInfo:                "linker note",
	LinkUnresolvedImport:    "imported entity could not be resolved",
	LinkUnresolvedSupertype: "module supertype could not be resolved",
	LinkUnresolvedGlobal:    "global library package could not be resolved",

	ValInfo:                "validation note",
	ValUnresolvedReference: "reference could not be resolved",
}

// ID returns the stable identifier, e.g. "LNK2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LOD%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("LNK%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("VAL%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
