package pagination

const (
	// DefaultPageSize is used when a caller supplies no usable page size.
	DefaultPageSize = 10
	// MaxPageSize caps the rows returned for a single page.
	MaxPageSize = 100
)

// Page is a normalised page request.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps number to >= 1 and size to [1, maxSize], substituting
// defaultSize for non-positive sizes. Non-positive limits fall back to the
// package defaults.
func NewPage(number, size, defaultSize, maxSize int) Page {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if maxSize <= 0 {
		maxSize = MaxPageSize
	}
	if number < 1 {
		number = 1
	}
	if size <= 0 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}
	return Page{Number: number, Size: size}
}

// Offset converts the page into a row offset.
func (p Page) Offset() int {
	return Offset(p.Number, p.Size)
}

// Offset returns (page-1)*pageSize, never negative.
func Offset(page, pageSize int) int {
	offset := (page - 1) * pageSize
	if offset < 0 {
		return 0
	}
	return offset
}

// TotalPages returns how many pages of pageSize are needed for total rows.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
