package restaurant

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	DefaultPage    = 1
	MaxPage        = 10000
	DefaultPerPage = 10
	MaxPerPage     = 100
	MaxBoroughLen  = 50
)

var (
	allowedListParams = []string{"page", "perPage", "borough"}
	digitsPattern     = regexp.MustCompile(`^\d+$`)
	boroughPattern    = regexp.MustCompile(`^[A-Za-z\s\-']+$`)
)

// ListQuery is the normalized input of the list operation. An empty Borough
// means no filter.
type ListQuery struct {
	Page    int
	PerPage int
	Borough string
}

// Offset is the number of matching rows skipped before the page starts.
func (q ListQuery) Offset() int { return (q.Page - 1) * q.PerPage }

// ParseListQuery validates the list endpoint's query parameters. Checks run in
// a fixed order (unknown keys, page, perPage, borough) and the first failure
// is returned as a KindInvalidInput error.
func ParseListQuery(values url.Values) (ListQuery, error) {
	q := ListQuery{Page: DefaultPage, PerPage: DefaultPerPage}

	var unknown []string
	for k := range values {
		if !isAllowedParam(k) {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return q, InvalidInput(fmt.Sprintf("Unknown query parameter(s): %s. Allowed parameters: %s",
			strings.Join(unknown, ", "), strings.Join(allowedListParams, ", ")))
	}

	if raw, ok := first(values, "page"); ok {
		n, err := parseBounded("page", raw, 1, MaxPage)
		if err != nil {
			return q, err
		}
		q.Page = n
	}
	if raw, ok := first(values, "perPage"); ok {
		n, err := parseBounded("perPage", raw, 1, MaxPerPage)
		if err != nil {
			return q, err
		}
		q.PerPage = n
	}
	if raw, ok := first(values, "borough"); ok {
		b := strings.TrimSpace(raw)
		switch {
		case b == "":
			return q, InvalidInput("borough must not be empty")
		case utf8.RuneCountInString(b) > MaxBoroughLen:
			return q, InvalidInput(fmt.Sprintf("borough must be at most %d characters", MaxBoroughLen))
		case !boroughPattern.MatchString(b):
			return q, InvalidInput("borough may only contain letters, spaces, hyphens and apostrophes")
		}
		q.Borough = b
	}
	return q, nil
}

func isAllowedParam(k string) bool {
	for _, a := range allowedListParams {
		if k == a {
			return true
		}
	}
	return false
}

func first(values url.Values, key string) (string, bool) {
	vs, ok := values[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

func parseBounded(name, raw string, lo, hi int) (int, error) {
	if !digitsPattern.MatchString(raw) {
		return 0, InvalidInput(fmt.Sprintf("%s must be a positive integer (digits only), got %q", name, raw))
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n > hi {
		// digit strings too large for int are above the range as well
		return 0, InvalidInput(fmt.Sprintf("%s must not exceed %d", name, hi))
	}
	if n < lo {
		return 0, InvalidInput(fmt.Sprintf("%s must be at least %d", name, lo))
	}
	return n, nil
}
