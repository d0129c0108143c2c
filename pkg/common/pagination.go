package common

import (
	"net/http"
	"strconv"
)

// ListParams represents cursor pagination parameters for listing endpoints
type ListParams struct {
	Limit     int32  `json:"limit"`
	NextToken string `json:"next_token,omitempty"`
}

// ExtractListParams extracts pagination parameters from the request query.
// A missing or unparsable limit is left at zero; the service layer applies
// its own default and cap.
func ExtractListParams(r *http.Request) ListParams {
	var params ListParams

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if n, err := strconv.ParseInt(limit, 10, 32); err == nil && n > 0 {
			params.Limit = int32(n)
		}
	}

	params.NextToken = r.URL.Query().Get("next_token")

	return params
}

// ListResult is the response shape for listing endpoints. NextToken is an
// opaque continuation cursor, null on the last page.
type ListResult struct {
	Items     []map[string]interface{} `json:"items"`
	NextToken *string                  `json:"next_token"`
}

// NewListResult builds a ListResult from a page of items and its cursor.
func NewListResult(items []map[string]interface{}, nextToken string) ListResult {
	if items == nil {
		items = []map[string]interface{}{}
	}
	result := ListResult{Items: items}
	if nextToken != "" {
		result.NextToken = &nextToken
	}
	return result
}
