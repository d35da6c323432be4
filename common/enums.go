// Enums shared by configuration and processing packages. Generated part lives
// in enums_enum.go, regenerate with "go tool go-enum --marshal --names".
package common

//go:generate go tool go-enum --marshal --names

// Order in which category groups appear in the deck.
// ENUM(source, natural, explicit)
type CategoryOrder int

// Sequence numbering scope.
// ENUM(category, global)
type Numbering int

func (n Numbering) Continuous() bool {
	return n == NumberingGlobal
}

// Kind of tabular input.
// ENUM(xlsx, xls, csv, json)
type SourceKind int

func (k SourceKind) Spreadsheet() bool {
	return k == SourceKindXlsx || k == SourceKindXls
}
