package core

// Color identifies the fill color of a drawn rectangle.
// Hosts map it to ANSI 256-color codes (terminal) or RGBA (window).
type Color uint8

// Palette used by the arena.
const (
	ColorDefault Color = iota
	ColorBackground
	ColorGround
	ColorPlayer
	ColorPlayerHurt // Player while invulnerable
	ColorWeapon
	ColorEnemy
	ColorFlyingEnemy
	ColorPickup
	ColorText
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorBackground:
		return "background"
	case ColorGround:
		return "ground"
	case ColorPlayer:
		return "player"
	case ColorPlayerHurt:
		return "player-hurt"
	case ColorWeapon:
		return "weapon"
	case ColorEnemy:
		return "enemy"
	case ColorFlyingEnemy:
		return "flying-enemy"
	case ColorPickup:
		return "pickup"
	case ColorText:
		return "text"
	default:
		return "default"
	}
}
