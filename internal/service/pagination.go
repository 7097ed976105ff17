package service

// QuestionsPerPage is the fixed page size of GET /questions.
const QuestionsPerPage = 10

// paginate returns the items of the 1-based page. Pages before the first or
// past the end yield an empty slice.
func paginate[T any](items []T, page, size int) []T {
	// Compare against the page count first so (page-1)*size cannot overflow.
	if page < 1 || size < 1 || page > (len(items)+size-1)/size {
		return []T{}
	}
	start := (page - 1) * size
	end := min(start+size, len(items))
	return items[start:end]
}
