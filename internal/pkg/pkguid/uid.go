package pkguid

// StringID generates unique string identifiers.
type StringID interface {
	Generate() string
}

// NumberID generates unique, roughly time-ordered numeric identifiers.
type NumberID interface {
	Generate() int64
}

var (
	_ StringID = (*UUID)(nil)
	_ NumberID = (*Snowflake)(nil)
)
