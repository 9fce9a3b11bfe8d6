package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

type meta struct {
	TotalRecords uint64  `json:"totalRecords"`
	Offset       *uint64 `json:"offset,omitempty"`
	Limit        *uint64 `json:"limit,omitempty"`
	Count        *uint64 `json:"count,omitempty"`
}

type links struct {
	Self  *string `json:"self,omitempty"`
	First *string `json:"first,omitempty"`
	Prev  *string `json:"prev,omitempty"`
	Next  *string `json:"next,omitempty"`
	Last  *string `json:"last,omitempty"`
}

type ApiResponse struct {
	Meta  *meta  `json:"meta,omitempty"`
	Data  any    `json:"data"`
	Links *links `json:"links,omitempty"`
}

func NewApiResponse(r *http.Request, data any, count, total, offset, limit uint64) ApiResponse {
	meta := &meta{
		TotalRecords: total,
	}

	if offset > 0 {
		meta.Offset = &offset
	}

	if count != total {
		meta.Limit = &limit
		meta.Count = &count
	}

	links := createLinks(r.URL, meta)

	return ApiResponse{
		Meta:  meta,
		Data:  data,
		Links: links,
	}
}

func (r ApiResponse) Byte() []byte {
	b, _ := json.Marshal(r)
	return b
}

// createLinks pages with page and size parameters, page being zero based.
func createLinks(u *url.URL, m *meta) *links {
	if m == nil || m.TotalRecords == 0 || m.Count == nil || (*m.Count == m.TotalRecords) {
		return nil
	}

	var limit uint64 = 10
	if m.Limit != nil && *m.Limit > 0 {
		limit = *m.Limit
	}

	var offset uint64 = 0
	if m.Offset != nil {
		offset = *m.Offset
	}

	link := *u
	query := link.Query()
	query.Set("size", strconv.FormatUint(limit, 10))

	newUrl := func(page uint64) *string {
		query.Set("page", strconv.FormatUint(page, 10))
		link.RawQuery = query.Encode()
		s := link.String()
		return &s
	}

	page := offset / limit
	last := (m.TotalRecords - 1) / limit

	links := &links{
		Self:  newUrl(page),
		First: newUrl(0),
		Last:  newUrl(last),
	}

	if page < last {
		links.Next = newUrl(page + 1)
	}

	if page > 0 {
		links.Prev = newUrl(page - 1)
	}

	return links
}
