// Colorblind - colorblindness correction LUT backend for gamescope
//
// Colorblind generates 3D colour lookup tables that simulate or correct
// colorblindness and applies them compositor-wide through gamescopectl.
package main

import (
	"github.com/jfrconley/decky-colorblind/internal/cli"
)

func main() {
	cli.Execute()
}
