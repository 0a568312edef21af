package blit

import (
	"fmt"
	"strings"
)

// Command is the set of flags steering the per-pixel write decision.
type Command uint8

const (
	// Opaque skips alpha maths and overwrites directly.
	Opaque Command = 1 << iota
	// Backdrop paints behind existing content. With Opaque it only writes
	// zero pixels. Otherwise the destination's alpha is inverted and
	// scales the source: the effective alpha is srcA*(255-dst.A)/255, so
	// an opaque destination is left alone.
	Backdrop
	// InvertColor XORs the written colour with color.InvertMask. Without
	// a source (Clear) it inverts the destination in place.
	InvertColor
	// Clear writes without a source: zero, or the inverted destination
	// together with InvertColor.
	Clear
)

var commandNames = []struct {
	flag Command
	name string
}{
	{Opaque, "Opaque"},
	{Backdrop, "Backdrop"},
	{InvertColor, "InvertColor"},
	{Clear, "Clear"},
}

// Has reports whether every flag in f is set.
func (c Command) Has(f Command) bool { return c&f == f }

// String returns the set flags joined by "|", or "None".
func (c Command) String() string {
	if c == 0 {
		return "None"
	}
	var parts []string
	for _, n := range commandNames {
		if c&n.flag != 0 {
			parts = append(parts, n.name)
			c &^= n.flag
		}
	}
	if c != 0 {
		parts = append(parts, fmt.Sprintf("0x%02x", uint8(c)))
	}
	return strings.Join(parts, "|")
}

// Criteria selects how a Condition compares the destination value.
type Criteria uint8

const (
	// None admits every pixel.
	None Criteria = iota
	Equal
	NotEqual
	GreaterThan
	LessThan
	NotGreaterThan
	NotLessThan

	// NumCriteria is the number of defined criteria.
	NumCriteria
)

var criteriaNames = [...]string{
	None:           "None",
	Equal:          "Equal",
	NotEqual:       "NotEqual",
	GreaterThan:    "GreaterThan",
	LessThan:       "LessThan",
	NotGreaterThan: "NotGreaterThan",
	NotLessThan:    "NotLessThan",
}

func (c Criteria) String() string {
	if c < NumCriteria {
		return criteriaNames[c]
	}
	return fmt.Sprintf("Criteria(%d)", uint8(c))
}

// ParseCriteria returns the criteria with the given name.
func ParseCriteria(s string) (Criteria, bool) {
	for c, name := range criteriaNames {
		if strings.EqualFold(name, s) {
			return Criteria(c), true
		}
	}
	return None, false
}

// Condition gates writes on the current destination value: a pixel is
// written only when `dst <Criteria> Value` holds. The zero Condition
// admits everything.
type Condition[T Pixel] struct {
	Criteria Criteria
	Value    T
}

// Match reports whether a destination holding cur may be written.
// Unknown criteria admit nothing.
func (c Condition[T]) Match(cur T) bool {
	switch c.Criteria {
	case None:
		return true
	case Equal:
		return cur == c.Value
	case NotEqual:
		return cur != c.Value
	case GreaterThan:
		return cur > c.Value
	case LessThan:
		return cur < c.Value
	case NotGreaterThan:
		return cur <= c.Value
	case NotLessThan:
		return cur >= c.Value
	default:
		return false
	}
}

// Options configures one compositing call.
//
// Alpha and Mask only apply to the colour entry points (Composite,
// FillColor, FillSpan, FillLine); the generic Copy and Fill treat every
// element as an opaque value.
type Options[T Pixel] struct {
	Command Command
	When    Condition[T]

	// Alpha scales every source alpha. Zero means 255, so the zero
	// Options composites normally.
	Alpha uint8
	// Mask holds per-pixel coverage in source coordinates. Pixels outside
	// the mask are not written.
	Mask *Buffer[uint8]

	// Aux receives AuxValue at every destination pixel that is written,
	// keeping a metadata plane (ids, depth) in step with the colours.
	Aux      *Buffer[uint32]
	AuxValue uint32
}

func (o *Options[T]) alpha() uint8 {
	if o.Alpha == 0 {
		return 255
	}
	return o.Alpha
}

func (o *Options[T]) touch(x, y int) {
	if o.Aux != nil {
		o.Aux.Set(x, y, o.AuxValue)
	}
}
