package models

// Page is a limit/offset window over an ordered sequence.
type Page struct {
	Limit  int
	Offset int
}

// NewPage converts a 1-based page number and a page size into a window.
func NewPage(number, size int) Page {
	if size < 1 {
		size = 1
	}
	if number < 1 {
		number = 1
	}
	return Page{Limit: size, Offset: (number - 1) * size}
}
