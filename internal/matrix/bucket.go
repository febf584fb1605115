// internal/matrix/bucket.go
package matrix

// Bucket is the color class of a single cell. Buckets are ordered by
// severity, Empty being the most severe under-representation.
type Bucket int

const (
	// Empty marks a cell with nobody allocated.
	Empty Bucket = iota
	// Low marks cells holding 1 or 2.
	Low
	// Medium marks cells holding 3 to 5.
	Medium
	// HighMedium marks cells holding 6 to 9.
	HighMedium
	// High marks cells holding 10 or more.
	High
)

// Inclusive upper bounds for the bucket thresholds.
const (
	emptyMax      = 0
	lowMax        = 2
	mediumMax     = 5
	highMediumMax = 9
)

// Buckets lists every bucket from most to least severe.
var Buckets = []Bucket{Empty, Low, Medium, HighMedium, High}

// Classify maps a cell value to its bucket. Negative values are treated as
// Empty.
func Classify(v int) Bucket {
	switch {
	case v <= emptyMax:
		return Empty
	case v <= lowMax:
		return Low
	case v <= mediumMax:
		return Medium
	case v <= highMediumMax:
		return HighMedium
	default:
		return High
	}
}

// String returns the bucket name.
func (b Bucket) String() string {
	switch b {
	case Empty:
		return "empty"
	case Low:
		return "low"
	case Medium:
		return "medium"
	case HighMedium:
		return "high-medium"
	case High:
		return "high"
	default:
		return "unknown"
	}
}

// Label returns the value range covered by the bucket, for legends.
func (b Bucket) Label() string {
	switch b {
	case Empty:
		return "0"
	case Low:
		return "1-2"
	case Medium:
		return "3-5"
	case HighMedium:
		return "6-9"
	default:
		return "10+"
	}
}

// Color returns the HTML background color of the bucket.
func (b Bucket) Color() string {
	switch b {
	case Empty:
		return "#dc3545"
	case Low:
		return "#ffd7a3"
	case Medium:
		return "#fff9c4"
	case HighMedium:
		return "#c8e6c9"
	default:
		return "#81c784"
	}
}

// TextColor returns the HTML foreground color used on top of Color.
func (b Bucket) TextColor() string {
	if b == Empty {
		return "white"
	}
	return "inherit"
}
