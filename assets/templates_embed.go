// Where: assets/templates_embed.go
// What: Embed per-language Dockerfile templates.
// Why: Ship template bodies inside the binary so rendering never touches the filesystem.
package assets

import "embed"

//go:embed templates/*.tmpl
var TemplatesFS embed.FS
