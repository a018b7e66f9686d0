// Copyright © 2024 The ELPS authors

package datatype

// Color is one of the three primary colors of light.
type Color int

const (
	Red Color = iota + 1
	Green
	Blue
)

var colorNames = map[string]Color{
	"Red":   Red,
	"Green": Green,
	"Blue":  Blue,
}

var colorGerman = map[Color]string{
	Red:   "Rot",
	Green: "Grun",
	Blue:  "Blau",
}

// NewColor returns the Color with the given English name.
func NewColor(name string) (Color, error) {
	c, ok := colorNames[name]
	if !ok {
		return 0, invalid("color", "name", name)
	}
	return c, nil
}

// String returns the English name of c.
func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return "Color(?)"
	}
}

// Translate returns the German name of c.
func (c Color) Translate() (string, error) {
	s, ok := colorGerman[c]
	if !ok {
		return "", invalid("color", "value", int(c))
	}
	return s, nil
}
