package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit specifies how a Length is interpreted.
type Unit uint8

const (
	UnitAuto  Unit = iota // Sized to content
	UnitPixel             // Absolute terminal cells
	UnitStar              // Weighted share of the remaining space
)

func (u Unit) String() string {
	switch u {
	case UnitAuto:
		return "auto"
	case UnitPixel:
		return "pixel"
	case UnitStar:
		return "star"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// Length is a track width policy. Amount is the pixel count for UnitPixel,
// the weight for UnitStar, and ignored for UnitAuto.
type Length struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Length sized to content.
func Auto() Length {
	return Length{Unit: UnitAuto}
}

// Pixel returns a fixed Length of v cells.
func Pixel(v float64) Length {
	return Length{Amount: v, Unit: UnitPixel}
}

// Star returns a proportional Length with weight w.
func Star(w float64) Length {
	return Length{Amount: w, Unit: UnitStar}
}

// IsAuto returns true if the length is sized to content.
func (l Length) IsAuto() bool { return l.Unit == UnitAuto }

// IsPixel returns true if the length is a fixed cell count.
func (l Length) IsPixel() bool { return l.Unit == UnitPixel }

// IsStar returns true if the length is proportional.
func (l Length) IsStar() bool { return l.Unit == UnitStar }

// String formats the length the way ParseLength reads it.
func (l Length) String() string {
	switch l.Unit {
	case UnitPixel:
		return strconv.FormatFloat(l.Amount, 'f', -1, 64)
	case UnitStar:
		if l.Amount == 1 {
			return "*"
		}
		return strconv.FormatFloat(l.Amount, 'f', -1, 64) + "*"
	default:
		return "auto"
	}
}

// ParseLength reads "auto", "80", "80px", "*" or "2*".
func ParseLength(s string) (Length, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "auto":
		return Auto(), nil
	case s == "*":
		return Star(1), nil
	case strings.HasSuffix(s, "*"):
		w, err := strconv.ParseFloat(strings.TrimSuffix(s, "*"), 64)
		if err != nil || w <= 0 {
			return Length{}, fmt.Errorf("invalid star weight %q", s)
		}
		return Star(w), nil
	default:
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
		if err != nil || v < 0 {
			return Length{}, fmt.Errorf("invalid length %q", s)
		}
		return Pixel(v), nil
	}
}
