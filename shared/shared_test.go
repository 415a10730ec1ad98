package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shareit/shared"
	"shareit/shared/constant"
)

func TestTransformFields(t *testing.T) {
	type update struct {
		Name      string  `db:"name"`
		Available *bool   `db:"available"`
		NoTag     string
		Empty     *string `db:"description"`
	}

	avail := false
	fields := shared.TransformFields(update{Name: "drill", Available: &avail})

	assert.Equal(t, "drill", fields["name"])
	assert.Equal(t, false, fields["available"])
	assert.NotContains(t, fields, "description")
	assert.Contains(t, fields, constant.FieldModifiedAt)
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("abc", "id", "bookings")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "abc"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:b-1:u-1", shared.BuildCacheKey("booking:get", "b-1", "u-1"))
}
