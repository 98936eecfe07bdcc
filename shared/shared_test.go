package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"oceanview/shared"
	"oceanview/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "exact pages", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "zero limit", total: 20, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("not-a-bool"))

	res := shared.ConvertStringToBool("true")
	if assert.NotNil(t, res) {
		assert.True(t, *res)
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Status string     `db:"status"`
		Rate   float64    `db:"base_rate"`
		Ignore string     `db:""`
		Empty  *time.Time `db:"checked_in_at"`
	}

	fields := shared.TransformFields(update{Status: "RESERVED", Rate: 120.5}, "system")

	assert.Equal(t, "RESERVED", fields["status"])
	assert.Equal(t, 120.5, fields["base_rate"])
	assert.Equal(t, "system", fields["modified_by"])
	assert.NotContains(t, fields, "checked_in_at")
	assert.Contains(t, fields, "modified_at")
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "oceanview:room:get", shared.BuildCacheKey("oceanview:room:get"))
	assert.Equal(t, "oceanview:room:get:RM-101", shared.BuildCacheKey("oceanview:room:get", "RM-101"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	filterA := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Value: "AVAILABLE", Operator: dto.FilterOperatorEq},
		},
	}
	filterB := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Value: "OCCUPIED", Operator: dto.FilterOperatorEq},
		},
	}

	req := dto.QueryParams{Page: 1, Limit: 10}

	keyA := shared.BuildCacheKeyWithQuery("oceanview:room:all", req, filterA)
	keyB := shared.BuildCacheKeyWithQuery("oceanview:room:all", req, filterB)

	assert.NotEqual(t, keyA, keyB)
	assert.Equal(t, keyA, shared.BuildCacheKeyWithQuery("oceanview:room:all", req, filterA))
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("RES-1", "id", "reservation")

	where, args := group.GetWhereClause()

	assert.Contains(t, where, "reservation.id = :id")
	assert.Equal(t, "RES-1", args["id"])
}
