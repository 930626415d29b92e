// Where: internal/domain/template/types.go
// What: Request and template parameter types for build-file rendering.
// Why: Share one description of a render between the CLI and the renderer.
package template

import "github.com/poruru/dockerfile-generator/internal/domain/language"

// DefaultVersion is used when no language version is requested.
const DefaultVersion = "latest"

// Request describes one build-file generation.
type Request struct {
	Language   language.Language
	Version    string
	Flavor     string
	OutputPath string
}

// Params are the values substituted into a template.
type Params struct {
	Language string
	Version  string
	Flavor   string
	ImageTag string
}

// ImageTag joins version and flavor as "<version>-<flavor>", or returns version alone.
func ImageTag(version, flavor string) string {
	if flavor == "" {
		return version
	}
	return version + "-" + flavor
}

// NewParams builds template parameters for lang.
func NewParams(lang language.Language, version, flavor string) Params {
	return Params{
		Language: lang.String(),
		Version:  version,
		Flavor:   flavor,
		ImageTag: ImageTag(version, flavor),
	}
}
