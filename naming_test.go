package sqlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type UserProfile struct {
	ID        int
	CreatedAt string
}

func TestNaming(t *testing.T) {

	t.Run("table name from struct", func(t *testing.T) {
		assert.Equal(t, "user_profiles", TableName(UserProfile{}))
	})

	t.Run("table name from pointer", func(t *testing.T) {
		assert.Equal(t, "user_profiles", TableName(&UserProfile{}))
	})

	t.Run("column name from field", func(t *testing.T) {
		assert.Equal(t, "created_at", ColumnName("CreatedAt"))
	})

	t.Run("from entity", func(t *testing.T) {
		sql, err := New().Select(Col("u.id")).FromEntity(UserProfile{}, "u").SQL()
		assert.NoError(t, err)
		assert.Equal(t, `SELECT u.id FROM user_profiles AS u`, sql)
	})
}
