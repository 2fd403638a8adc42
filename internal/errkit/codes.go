// Package errkit provides centralized, phase-namespaced error codes for
// babelcode-go. All error codes follow a consistent taxonomy so that a
// caller driving this engine from another process can report failures
// without parsing error strings.
package errkit

// Error code constants, namespaced by the subsystem that raises them.
const (
	// Schema errors (SCH###): malformed or unreconcilable TypeExpr values.
	SCH001 = "SCH001" // malformed generic type string
	SCH002 = "SCH002" // unknown primitive leaf type
	SCH003 = "SCH003" // malformed tuple or map argument list
	SCH010 = "SCH010" // declared value type not reconcilable to expected type

	// Language pack errors (LNG###).
	LNG001 = "LNG001" // leaf type has no mapping for the target language
	LNG002 = "LNG002" // language not registered

	// Code generation errors (GEN###).
	GEN001 = "GEN001" // required template missing for a language
	GEN002 = "GEN002" // a literal failed to render (e.g. non-finite float)
	GEN003 = "GEN003" // sentinel token missing from rendered MAIN template

	// Execution harness errors (EXE###).
	EXE001 = "EXE001" // ALLOW_EXECUTION not set to true
	EXE002 = "EXE002" // command exceeded its timeout (captured, not fatal)

	// Result classification errors (RES###).
	RES001 = "RES001" // stdout did not match the expected TEST-... grammar
)

// Info describes one error code: which phase raises it, a short
// category, and a human description.
type Info struct {
	Code        string
	Phase       string
	Category    string
	Description string
}

// Registry maps every known code to its Info.
var Registry = map[string]Info{
	SCH001: {SCH001, "schema", "syntax", "Malformed generic type string"},
	SCH002: {SCH002, "schema", "type", "Unknown primitive leaf type"},
	SCH003: {SCH003, "schema", "syntax", "Malformed tuple or map arguments"},
	SCH010: {SCH010, "schema", "reconciliation", "Value not reconcilable to expected type"},

	LNG001: {LNG001, "langpack", "type", "Leaf type unsupported by language"},
	LNG002: {LNG002, "langpack", "registry", "Language not registered"},

	GEN001: {GEN001, "codegen", "template", "Required template missing"},
	GEN002: {GEN002, "codegen", "literal", "Literal translation failed"},
	GEN003: {GEN003, "codegen", "sentinel", "Sentinel token missing from template"},

	EXE001: {EXE001, "exec", "safety", "Execution disabled"},
	EXE002: {EXE002, "exec", "timeout", "Command timed out"},

	RES001: {RES001, "results", "parse", "Unparseable stdout"},
}

// Lookup returns the Info for a code, if known.
func Lookup(code string) (Info, bool) {
	info, ok := Registry[code]
	return info, ok
}

// IsPhase reports whether code belongs to the named phase.
func IsPhase(code, phase string) bool {
	info, ok := Lookup(code)
	return ok && info.Phase == phase
}
