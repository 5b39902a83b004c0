package models

// Field selects which tag set of a [Song] a filter is matched against.
type Field int

const (
	GenreField Field = iota
	SubgenreField
)

func (f Field) String() string {
	switch f {
	case GenreField:
		return "genre"
	case SubgenreField:
		return "subgenre"
	default:
		return ""
	}
}
