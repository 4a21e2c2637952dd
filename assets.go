// Package openingsui provides embedded templates for production builds.
package openingsui

import "embed"

// TemplateFS holds the HTML templates. In dev mode (IsDev=true) templates
// are read from disk instead so edits show up without a rebuild.
//
//go:embed all:frontend/templates
var TemplateFS embed.FS
