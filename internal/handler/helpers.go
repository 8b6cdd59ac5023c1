package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brightup/admin-gateway/internal/middleware"
	"github.com/brightup/admin-gateway/internal/models"
)

// pageSizes are the fixed page-size choices offered by list views.
var pageSizes = []int{5, 10, 25, 50}

const defaultPageSize = 10

// currentToken returns the upstream bearer token of the restored session.
// Only callable behind SessionGuard.
func currentToken(c *gin.Context) string {
	if sess := middleware.CurrentSession(c); sess != nil {
		return sess.Token
	}
	return ""
}

// idParam parses a positive integer path parameter.
func idParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// pageParams reads page/page_size query values, clamping the size to the
// fixed choices.
func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	size, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil {
		size = defaultPageSize
	}
	allowed := false
	for _, choice := range pageSizes {
		if size == choice {
			allowed = true
			break
		}
	}
	if !allowed {
		size = defaultPageSize
	}

	return page, size
}

// paginate slices a full upstream listing into one page. The core API
// returns complete collections; paging happens gateway-side.
func paginate[T any](items []T, page, size int) ([]T, *models.Pagination) {
	total := len(items)
	pagination := &models.Pagination{Page: page, PageSize: size, TotalCount: total}

	start := (page - 1) * size
	// A huge page number can overflow the multiplication into a negative
	// offset; either way the page is past the data.
	if start < 0 || start >= total {
		return []T{}, pagination
	}
	end := start + size
	if end > total {
		end = total
	}
	return items[start:end], pagination
}
