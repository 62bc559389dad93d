package v1

import (
	"fmt"

	"github.com/sitebook/backend/internal/types"
	ez_uuid "github.com/sitebook/backend/internal/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// stringFilters adds the filters for name, note and full text search on
// the table to the query.
func stringFilters(db, query *gorm.DB, setFields []string, table, name, note, search string) *gorm.DB {
	query = likeFilter(query, setFields, "Name", table+".name", name)
	query = likeFilter(query, setFields, "Note", table+".note", note)

	if search != "" {
		query = query.Where(
			db.Where(fmt.Sprintf("%s.note LIKE ?", table), fmt.Sprintf("%%%s%%", search)).Or(
				db.Where(fmt.Sprintf("%s.name LIKE ?", table), fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}

// paginate sets offset and limit on the query. The limit defaults to 50.
func paginate(q *gorm.DB, setFields []string, offset uint, limit int) (*gorm.DB, int) {
	if !slices.Contains(setFields, "Limit") {
		limit = 50
	}

	return q.Offset(int(offset)).Limit(limit), limit
}

// organizationFilter restricts a query on a table with a site_id column
// to the sites of an organization.
func organizationFilter(q *gorm.DB, table string, id ez_uuid.UUID) *gorm.DB {
	if id == ez_uuid.Nil {
		return q
	}

	return q.
		Joins(fmt.Sprintf("JOIN sites AS organization_filter_sites ON organization_filter_sites.id = %s.site_id", table)).
		Where("organization_filter_sites.organization_id = ?", id.UUID)
}

// dateFilter restricts the column to the inclusive window. Zero dates
// leave the window open on that side.
func dateFilter(q *gorm.DB, column string, from, until types.Date) *gorm.DB {
	if !from.IsZero() {
		q = q.Where(fmt.Sprintf("date(%s) >= date(?)", column), from)
	}

	if !until.IsZero() {
		q = q.Where(fmt.Sprintf("date(%s) <= date(?)", column), until)
	}

	return q
}

// likeFilter matches the column against a substring. If the parameter is set
// but empty, it matches empty values.
func likeFilter(q *gorm.DB, setFields []string, field, column, value string) *gorm.DB {
	if value != "" {
		return q.Where(fmt.Sprintf("%s LIKE ?", column), fmt.Sprintf("%%%s%%", value))
	}

	if slices.Contains(setFields, field) {
		return q.Where(fmt.Sprintf("%s = ''", column))
	}

	return q
}
