package catalog

// DefaultPageSize is the number of records shown per page.
const DefaultPageSize = 6

// Page is one slice of a matching set plus its pagination metadata.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalPages int
	TotalItems int
}

// Paginate cuts page number out of matching. TotalPages is zero for an
// empty matching set. Pages outside [1, TotalPages] yield no items.
func Paginate[T any](matching []T, size, number int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	n := len(matching)
	p := Page[T]{
		Items:      []T{},
		Number:     number,
		Size:       size,
		TotalPages: (n + size - 1) / size,
		TotalItems: n,
	}
	if number < 1 || number > p.TotalPages {
		return p
	}
	start := (number - 1) * size
	end := min(start+size, n)
	p.Items = append(p.Items, matching[start:end]...)
	return p
}
