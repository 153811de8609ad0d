// FILE: lixenwraith/envload/host.go
package envload

// Host receives the side effects of a run.
// Mask is best-effort: its error is logged and the run continues. An error
// from any other emitting method aborts the run.
type Host interface {
	// Mask registers value as a secret to be redacted from host logs
	Mask(value string) error
	// Emit records a per-key result; a later call for the same key overwrites it
	Emit(key, value string) error
	// ExportGlobal makes the variable visible to later steps
	ExportGlobal(key, value string) error
	// EmitCombined records the serialized table, once per run
	EmitCombined(text string) error
	// Warn reports a non-fatal diagnostic
	Warn(message string)
}

// Resolver is implemented by readers that can report the full location a
// locator refers to, used in diagnostics.
type Resolver interface {
	Resolve(locator string) string
}
