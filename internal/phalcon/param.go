package phalcon

// Kind classifies a tool parameter for validation and schema generation.
type Kind string

// Parameter kinds.
const (
	// KindString accepts any string value. Integral JSON numbers are
	// coerced to their decimal representation (MCP clients send ports as
	// numbers).
	KindString Kind = "string"

	// KindEnum accepts only one of Param.Allowed.
	KindEnum Kind = "enum"

	// KindFlag is a boolean that, when true, emits a bare flag token.
	KindFlag Kind = "flag"
)

// Param describes one parameter of a tool's argument schema.
type Param struct {
	Name        string
	Kind        Kind
	Required    bool
	Description string

	// Default is substituted when the parameter is omitted. An empty
	// Default on an optional parameter means pass-through: the flag is
	// omitted entirely and the phalcon CLI applies its own default.
	Default string

	// Allowed lists the permitted values for KindEnum.
	Allowed []string
}

// Args holds a validated argument set, with defaults already applied.
// Builders read from it; omitted optional parameters are simply absent.
type Args struct {
	values map[string]string
	flags  map[string]bool
}

// Value returns the string value for name and whether it was provided
// (or defaulted).
func (a Args) Value(name string) (string, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Flag reports whether the boolean parameter name was set to true.
func (a Args) Flag(name string) bool {
	return a.flags[name]
}
