// Package query serves list requests uniformly: filter, order by id, paginate, and describe the
// page with a total count and first/prev/next/last links.
package query

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

const (
	// PageParam is the 1-based page number query parameter.
	PageParam = "page"
	// PageSizeParam is the page size query parameter.
	PageSizeParam = "page_size"

	// TotalCountHeader carries the number of rows matching the filters.
	TotalCountHeader = "X-Total-Count"
	// LinkHeader carries the navigation links.
	LinkHeader = "Link"
)

// Engine holds paging defaults.
type Engine struct {
	PageSize    int
	MaxPageSize int
	// BaseURL, when set, replaces the request scheme and host in links.
	BaseURL string
}

// NewEngine returns an Engine, falling back to 10 and 100 for non-positive sizes.
func NewEngine(pageSize, maxPageSize int, baseURL string) *Engine {
	if pageSize <= 0 {
		pageSize = 10
	}
	if maxPageSize < pageSize {
		maxPageSize = max(pageSize, 100)
	}
	return &Engine{
		PageSize:    pageSize,
		MaxPageSize: maxPageSize,
		BaseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// Request is one list request.
type Request struct {
	// URL is the absolute request URL links are derived from.
	URL    *url.URL
	Params url.Values
}

// FromHTTP builds a Request from an incoming request, making its URL absolute.
func (e *Engine) FromHTTP(r *http.Request) Request {
	u := *r.URL
	if e.BaseURL != "" {
		if base, err := url.Parse(e.BaseURL); err == nil {
			u.Scheme = base.Scheme
			u.Host = base.Host
			u.Path = strings.TrimRight(base.Path, "/") + r.URL.Path
		}
	} else {
		u.Host = r.Host
		u.Scheme = "http"
		if r.TLS != nil {
			u.Scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			u.Scheme = proto
		}
	}
	return Request{URL: &u, Params: r.URL.Query()}
}

// AbsoluteURL resolves path against the same base FromHTTP uses for r.
func (e *Engine) AbsoluteURL(r *http.Request, path string) string {
	req := e.FromHTTP(r)
	u := url.URL{Scheme: req.URL.Scheme, Host: req.URL.Host, Path: path}
	if e.BaseURL != "" {
		if base, err := url.Parse(e.BaseURL); err == nil {
			u.Path = strings.TrimRight(base.Path, "/") + path
		}
	}
	return u.String()
}

// Links are the navigation URLs of a page. Empty strings are absent links.
type Links struct {
	First string
	Prev  string
	Next  string
	Last  string
}

// Header renders the links as an RFC 8288 Link header value.
func (l Links) Header() string {
	var parts []string
	for _, p := range []struct{ url, rel string }{
		{l.First, "first"},
		{l.Prev, "prev"},
		{l.Next, "next"},
		{l.Last, "last"},
	} {
		if p.url != "" {
			parts = append(parts, fmt.Sprintf("<%s>; rel=\"%s\"", p.url, p.rel))
		}
	}
	return strings.Join(parts, ", ")
}

// Result is one page of a collection.
type Result[T any] struct {
	Items    []T
	Total    int64
	Page     int
	PageSize int
	LastPage int
	Links    Links
}

// WriteHeaders sets the total count and Link headers on h.
func (r Result[T]) WriteHeaders(h http.Header) {
	h.Set(TotalCountHeader, strconv.FormatInt(r.Total, 10))
	if link := r.Links.Header(); link != "" {
		h.Set(LinkHeader, link)
	}
}

// page reads the page number and size from params, falling back to defaults on bad input.
func (e *Engine) page(params url.Values) (page, size int) {
	page, size = 1, e.PageSize
	if n, err := strconv.Atoi(params.Get(PageParam)); err == nil && n > 0 {
		page = n
	}
	if n, err := strconv.Atoi(params.Get(PageSizeParam)); err == nil && n > 0 {
		size = min(n, e.MaxPageSize)
	}
	return page, size
}

func lastPage(total int64, size int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

func withPage(u *url.URL, page int) string {
	c := *u
	q := c.Query()
	if page <= 1 {
		q.Del(PageParam)
	} else {
		q.Set(PageParam, strconv.Itoa(page))
	}
	c.RawQuery = q.Encode()
	c.ForceQuery = false
	return c.String()
}

// buildLinks applies the navigation policy: no links for an empty collection, no first/prev on
// page 1, no next on or past the last page, and last whenever there is one.
func buildLinks(u *url.URL, page, last int) Links {
	var l Links
	if last == 0 || u == nil {
		return l
	}
	if page > 1 {
		l.First = withPage(u, 1)
		l.Prev = withPage(u, min(page-1, last))
	}
	if page < last {
		l.Next = withPage(u, page+1)
	}
	l.Last = withPage(u, last)
	return l
}

// Find runs a list request over base, which must already be scoped (model, joins, parent
// conditions). Rows are ordered by id ascending. A filter value that does not parse yields an
// empty result and no error.
func Find[T any](ctx context.Context, e *Engine, base *gorm.DB, filters FilterSet, req Request) (Result[T], error) {
	page, size := e.page(req.Params)
	res := Result[T]{Items: []T{}, Page: page, PageSize: size}

	filtered, err := filters.Apply(base.WithContext(ctx), req.Params)
	if err != nil {
		if errors.Is(err, ErrInvalidFilter) {
			return res, nil
		}
		return res, err
	}
	q := filtered.Session(&gorm.Session{})

	if err := q.Count(&res.Total).Error; err != nil {
		return res, fmt.Errorf("count: %w", err)
	}

	res.LastPage = lastPage(res.Total, size)
	res.Links = buildLinks(req.URL, page, res.LastPage)
	if res.Total == 0 || page > res.LastPage {
		return res, nil
	}

	if err := q.Order(filters.column("id") + " ASC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&res.Items).Error; err != nil {
		return res, fmt.Errorf("find: %w", err)
	}
	return res, nil
}
