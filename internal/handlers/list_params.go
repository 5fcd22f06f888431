package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harbourline/freight_console_app/internal/core/listquery"
)

// parseListParams reads the list-view query parameters shared by every
// collection endpoint.
//
// Filters repeat as filter=field:matcher:value (matcher optional,
// defaults to contains); blank values are kept and treated as absent
// predicates by the engine. Sorting is sort=field with order=asc|desc.
func parseListParams(c *gin.Context) (listquery.FilterSpec, *listquery.SortSpec, error) {
	var filters listquery.FilterSpec
	for _, raw := range c.QueryArray("filter") {
		clause, err := parseFilterClause(raw)
		if err != nil {
			return nil, nil, err
		}
		filters = append(filters, clause)
	}

	var sortSpec *listquery.SortSpec
	if field := strings.TrimSpace(c.Query("sort")); field != "" {
		sortSpec = &listquery.SortSpec{
			Field:      field,
			Descending: strings.EqualFold(c.Query("order"), "desc"),
		}
	}
	return filters, sortSpec, nil
}

func parseFilterClause(raw string) (listquery.FilterClause, error) {
	parts := strings.SplitN(raw, ":", 3)
	switch len(parts) {
	case 2:
		// field:value with the default matcher
		return listquery.FilterClause{
			Field: parts[0],
			Match: listquery.MatchContains,
			Value: parts[1],
		}, nil
	case 3:
		matcher, ok := listquery.ParseMatcher(parts[1])
		if !ok {
			return listquery.FilterClause{}, fmt.Errorf("unknown filter matcher %q", parts[1])
		}
		return listquery.FilterClause{
			Field: parts[0],
			Match: matcher,
			Value: parts[2],
		}, nil
	default:
		return listquery.FilterClause{}, fmt.Errorf("filter %q is not field:matcher:value", raw)
	}
}
