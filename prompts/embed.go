// Package prompts embeds the Burmese prompt text for the Saya persona.
package prompts

import _ "embed"

//go:embed persona.md
var Persona string

//go:embed final.md.tmpl
var FinalTemplate string
