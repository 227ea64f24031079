package response_test

import (
	"testing"

	"go-hris-backoffice/internal/shared/response"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := response.Paginate(items, 2, 2)
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, int64(5), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)

	page, _ = response.Paginate(items, 9, 2)
	assert.NotNil(t, page)
	assert.Empty(t, page)

	page, meta = response.Paginate(items, 0, 0)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, page)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 10, meta.PageSize)
}
