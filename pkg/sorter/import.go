package sorter

// Bucket represents the group an import line is placed in
type Bucket int

const (
	FrameworkBucket Bucket = iota // system/platform frameworks
	NormalBucket                  // everything else
	InterfaceBucket               // modules whose name ends with the interface suffix
)

func (b Bucket) String() string {
	switch b {
	case FrameworkBucket:
		return "framework"
	case NormalBucket:
		return "normal"
	case InterfaceBucket:
		return "interface"
	default:
		return "unknown"
	}
}

// ScanState is the state of the import block scan
type ScanState int

const (
	NotStarted ScanState = iota // no import line seen yet
	Started                     // inside the import block
	Ended                       // first non-import, non-blank line after the block
)

// Range is a span of lines, Length 0 means no import block was found
type Range struct {
	Start  int
	Length int
}

// Empty reports whether the range covers no lines
func (r Range) Empty() bool {
	return r.Length == 0
}

// End returns the index one past the last line of the range
func (r Range) End() int {
	return r.Start + r.Length
}

// Groups holds the sorted import lines of each bucket
type Groups struct {
	Framework []string
	Normal    []string
	Interface []string
}

// Count returns the number of import lines across all buckets
func (g Groups) Count() int {
	return len(g.Framework) + len(g.Normal) + len(g.Interface)
}

// Edit describes the replacement of the lines in Range with Lines
type Edit struct {
	Range Range
	Lines []string
}
