package bars

// Preferred size when the host leaves a dimension open.
const (
	DefaultWidth  = 80
	DefaultHeight = 50
)

// MeasureMode is how a host constrains one dimension.
type MeasureMode int

const (
	// Unspecified lets the renderer pick its preferred size.
	Unspecified MeasureMode = iota
	// AtMost caps the preferred size at Size.
	AtMost
	// Exactly forces Size.
	Exactly
)

// MeasureSpec is a host constraint for one dimension.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

// Measure returns the desired width and height under the given constraints.
func (r *Renderer) Measure(width, height MeasureSpec) (int, int) {
	return resolveSize(width, DefaultWidth), resolveSize(height, DefaultHeight)
}

func resolveSize(spec MeasureSpec, preferred int) int {
	switch spec.Mode {
	case Exactly:
		return spec.Size
	case AtMost:
		return min(preferred, spec.Size)
	default:
		return preferred
	}
}
