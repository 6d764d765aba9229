// Package pagination implements page-number pagination with a fixed page size and
// next/previous links.
package pagination

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

const (
	// PageSize is the number of records per page for every list endpoint.
	PageSize = 10
	// QueryParam carries the requested page number.
	QueryParam = "page"
	// LastPage selects the final page.
	LastPage = "last"
)

// ErrInvalidPage is returned for non-numeric, non-positive or out-of-range pages.
var ErrInvalidPage = errors.New("invalid page")

// Page is a resolved window over a result set of Count rows.
type Page struct {
	Number   int
	Size     int
	Count    int
	NumPages int
}

// Resolve turns the raw page token into a Page for a set of count rows. An empty
// set still has one (empty) page.
func Resolve(token string, size, count int) (Page, error) {
	if size <= 0 {
		size = PageSize
	}
	if count < 0 {
		count = 0
	}

	numPages := (count + size - 1) / size
	if numPages == 0 {
		numPages = 1
	}

	page := Page{Size: size, Count: count, NumPages: numPages}

	token = strings.TrimSpace(token)
	switch token {
	case "":
		page.Number = 1
	case LastPage:
		page.Number = numPages
	default:
		n, err := strconv.Atoi(token)
		if err != nil || n < 1 || n > numPages {
			return Page{}, ErrInvalidPage
		}
		page.Number = n
	}
	return page, nil
}

// Offset is the number of rows preceding the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// HasNext reports whether a later page exists.
func (p Page) HasNext() bool {
	return p.Number < p.NumPages
}

// HasPrevious reports whether an earlier page exists.
func (p Page) HasPrevious() bool {
	return p.Number > 1
}

// Links returns the absolute next and previous URLs derived from the current
// request URL, or nil when there is no such page. The link to the first page
// omits the page parameter.
func (p Page) Links(current *url.URL) (next, previous *string) {
	if current == nil {
		return nil, nil
	}
	if p.HasNext() {
		s := withPage(current, p.Number+1)
		next = &s
	}
	if p.HasPrevious() {
		s := withPage(current, p.Number-1)
		previous = &s
	}
	return next, previous
}

func withPage(current *url.URL, number int) string {
	u := *current
	query := u.Query()
	if number == 1 {
		query.Del(QueryParam)
	} else {
		query.Set(QueryParam, strconv.Itoa(number))
	}
	u.RawQuery = query.Encode()
	return u.String()
}
