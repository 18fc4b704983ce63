package client

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/dragonchain-go/models"
)

const defaultQueryLimit = 10

// segment escapes one path segment.
func segment(s string) string {
	return url.PathEscape(s)
}

// segments escapes every element of a slash separated key, keeping the
// slashes.
func segments(s string) string {
	parts := strings.Split(s, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

func transactionsQuery(req models.QueryTransactionsRequest) url.Values {
	q := url.Values{}
	q.Set("transaction_type", req.TransactionType)
	q.Set("q", req.RedisearchQuery)
	setPaging(q, req.Offset, req.Limit)
	setBool(q, "verbatim", req.Verbatim)
	setBool(q, "id_only", req.IDsOnly)
	setSort(q, req.SortBy, req.SortAscending)
	return q
}

func blocksQuery(req models.QueryBlocksRequest) url.Values {
	q := url.Values{}
	q.Set("q", req.RedisearchQuery)
	setPaging(q, req.Offset, req.Limit)
	setBool(q, "id_only", req.IDsOnly)
	setSort(q, req.SortBy, req.SortAscending)
	return q
}

func setPaging(q url.Values, offset, limit int) {
	if limit == 0 {
		limit = defaultQueryLimit
	}
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))
}

func setBool(q url.Values, key string, v *bool) {
	if v != nil {
		q.Set(key, strconv.FormatBool(*v))
	}
}

// setSort only sends sort_asc together with sort_by.
func setSort(q url.Values, sortBy string, ascending *bool) {
	if sortBy == "" {
		return
	}
	q.Set("sort_by", sortBy)
	setBool(q, "sort_asc", ascending)
}
