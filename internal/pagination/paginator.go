package pagination

import "strconv"

// Paginator slices an ordered result set of Count records into fixed-size
// pages. An empty set still has one (empty) page, and out-of-range page
// numbers clamp to the nearest valid page instead of failing.
type Paginator struct {
	Count   int
	PerPage int
}

func New(count, perPage int) Paginator {
	if perPage < 1 {
		perPage = 1
	}
	if count < 0 {
		count = 0
	}
	return Paginator{Count: count, PerPage: perPage}
}

// NumPages is always at least 1
func (p Paginator) NumPages() int {
	if p.Count == 0 {
		return 1
	}
	return (p.Count + p.PerPage - 1) / p.PerPage
}

// Clamp maps any requested page number onto a valid one:
// numbers below 1 become 1, numbers past the end become the last page.
func (p Paginator) Clamp(number int) int {
	if number < 1 {
		return 1
	}
	if last := p.NumPages(); number > last {
		return last
	}
	return number
}

// Page resolves the requested page number into a concrete window.
func (p Paginator) Page(number int) Page {
	number = p.Clamp(number)
	return Page{
		Number:   number,
		NumPages: p.NumPages(),
		PerPage:  p.PerPage,
		Count:    p.Count,
	}
}

// Page is one window over the result set. Offset/Limit are what the data
// access layer applies to its query.
type Page struct {
	Number   int
	NumPages int
	PerPage  int
	Count    int
}

func (pg Page) Offset() int { return (pg.Number - 1) * pg.PerPage }

func (pg Page) Limit() int { return pg.PerPage }

func (pg Page) HasPrevious() bool { return pg.Number > 1 }

func (pg Page) HasNext() bool { return pg.Number < pg.NumPages }

func (pg Page) PreviousNumber() int { return pg.Number - 1 }

func (pg Page) NextNumber() int { return pg.Number + 1 }

// ParsePage reads a ?page= query value. Anything unparsable means page 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
