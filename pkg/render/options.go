package render

import theme "github.com/goliatone/go-theme"

// RenderOptions carry per-request data renderers can use to customise output
// without touching the assembly pipeline.
type RenderOptions struct {
	// Title overrides the document name in the generated output chrome.
	Title string
	// Theme carries resolved go-theme tokens and assets. Renderers that emit
	// styled output merge these over the template's own style descriptor;
	// nil means the template styles stand alone.
	Theme *theme.RendererConfig
	// Metadata is surfaced to renderers that embed document properties
	// (PDF info dictionary, DOCX core properties).
	Metadata map[string]string
}
