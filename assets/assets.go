// Package assets embeds the game's graphics.
package assets

import (
	"embed"
	"path"
)

//go:embed graphics
var FS embed.FS

// Graphic returns the path of a graphics asset inside FS, e.g.
// Graphic("weapon/pistol.sprite").
func Graphic(name string) string {
	return path.Join("graphics", name)
}
