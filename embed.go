package embedded

import "embed"

//go:embed "views"
var Views embed.FS
