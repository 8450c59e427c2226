package core

// Color is a foreground colour for a screen cell.
// The platform layer maps each value to an ANSI 256-colour code.
type Color uint8

// Palette used by the runner views.
const (
	ColorDefault   Color = iota
	ColorGold            // HUD, player outline
	ColorBrown           // ground, player body
	ColorChocolate       // secondary text
	ColorIndigo          // obstacles, boss body
	ColorViolet          // boss outline, attacks
	ColorRed             // health, defeat
	ColorGreen           // victory
	ColorGray            // hints, disabled items
	ColorWhite
)
