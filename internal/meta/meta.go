// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep the binary name and output naming in one place.
package meta

const (
	// Project Identity
	AppName = "dockerfile-generator"

	// Output naming
	OutputExtension = ".Containerfile"
	TimestampLayout = "20060102_150405"
)
