package internal

import (
	"net/url"
	"strings"
)

type queryParam struct {
	key   string
	value string
}

// QueryParams is an ordered query string. url.Values sorts keys on Encode, the
// service expects them in the order they were set.
type QueryParams struct {
	params []queryParam
}

func NewQueryParams(kv ...string) QueryParams {
	var q QueryParams
	for i := 0; i+1 < len(kv); i += 2 {
		q.Set(kv[i], kv[i+1])
	}
	return q
}

// Set replaces the value of an existing key in place, or appends it.
func (q *QueryParams) Set(key, value string) {
	for i := range q.params {
		if q.params[i].key == key {
			q.params[i].value = value
			return
		}
	}
	q.params = append(q.params, queryParam{key: key, value: value})
}

func (q *QueryParams) Del(key string) {
	kept := q.params[:0]
	for _, p := range q.params {
		if p.key != key {
			kept = append(kept, p)
		}
	}
	q.params = kept
}

func (q QueryParams) Get(key string) (string, bool) {
	for _, p := range q.params {
		if p.key == key {
			return p.value, true
		}
	}
	return "", false
}

func (q QueryParams) Len() int { return len(q.params) }

func (q QueryParams) Clone() QueryParams {
	return QueryParams{params: append([]queryParam(nil), q.params...)}
}

func (q QueryParams) Encode() string {
	var sb strings.Builder
	for i, p := range q.params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String()
}
