package guidance

// Source. where an annotation came from.
type Source uint8

const (
	SourceNone Source = iota
	SourceCurated
	SourceExternal
	SourceGenerated
)

func (s Source) String() string {
	switch s {
	case SourceCurated:
		return "curated"
	case SourceExternal:
		return "external"
	case SourceGenerated:
		return "generated"
	default:
		return "none"
	}
}
