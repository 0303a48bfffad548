// Package browse filters, sorts and paginates the in-memory set of fetched
// submissions for the admin entry list.
package browse

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	SortCreatedAt = "createdAt"
	SortName      = "name"

	MaxPageSize = 100
)

// View is the serializable state of one entry list screen.
type View struct {
	Search   string `json:"search"`
	Sort     string `json:"sort"`
	Desc     bool   `json:"desc"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

// DefaultView lists the newest entries first.
func DefaultView(pageSize int) View {
	return View{Sort: SortCreatedAt, Desc: true, Page: 1, PageSize: pageSize}
}

// SetSearch changes the filter and goes back to the first page.
func (v *View) SetSearch(search string) {
	v.Search = search
	v.Page = 1
}

// SetPageSize changes the page size and goes back to the first page.
func (v *View) SetPageSize(size int) {
	if size < 1 {
		size = 1
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	v.PageSize = size
	v.Page = 1
}

func (v *View) SetSort(key string, desc bool) {
	v.Sort = key
	v.Desc = desc
}

// ParseView reads q, sort, dir, page and pageSize from a query string.
// Missing or malformed values keep the defaults.
func ParseView(q url.Values, defaultPageSize int) View {
	v := DefaultView(defaultPageSize)
	v.SetSearch(q.Get("q"))
	if s := q.Get("sort"); s != "" {
		// a new sort key defaults to ascending unless told otherwise
		v.SetSort(s, false)
	}
	switch strings.ToLower(q.Get("dir")) {
	case "asc":
		v.Desc = false
	case "desc":
		v.Desc = true
	}
	if n, err := strconv.Atoi(q.Get("pageSize")); err == nil && n > 0 {
		v.SetPageSize(n)
	}
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
		v.Page = n
	}
	return v
}
