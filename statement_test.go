package sqlbuilder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupByOrderByPagination(t *testing.T) {

	t.Run("group by", func(t *testing.T) {
		sql, err := New().Select(Col("id")).From("users").GroupBy("name", "age").SQL()
		assert.NoError(t, err)
		assert.Equal(t, `SELECT id FROM users GROUP BY name, age`, sql)
	})

	t.Run("group by without columns fails", func(t *testing.T) {
		_, err := New().Select(Col("id")).From("users").GroupBy().SQL()
		assert.True(t, errors.Is(err, ErrInvalidGroupByColumns))
	})

	t.Run("order by defaults to ascending with no keyword", func(t *testing.T) {
		sql, err := New().Select(Col("id")).From("users").OrderBy(Asc("created_at")).SQL()
		assert.NoError(t, err)
		assert.Equal(t, `SELECT id FROM users ORDER BY created_at`, sql)
	})

	t.Run("order by desc is case-insensitive", func(t *testing.T) {
		sql, err := New().
			Select(Col("id")).
			From("users").
			OrderBy(Order{Column: "created_at", Direction: "dEsC"}, Desc("id")).
			SQL()
		assert.NoError(t, err)
		assert.Equal(t, `SELECT id FROM users ORDER BY created_at DESC, id DESC`, sql)
	})

	t.Run("order by without columns fails", func(t *testing.T) {
		_, err := New().Select(Col("id")).From("users").OrderBy().SQL()
		assert.True(t, errors.Is(err, ErrInvalidOrderByColumns))
	})

	t.Run("order by with empty column fails", func(t *testing.T) {
		_, err := New().Select(Col("id")).From("users").OrderBy(Asc("")).SQL()
		assert.True(t, errors.Is(err, ErrInvalidOrderColumnName))
	})

	t.Run("pagination with limit only", func(t *testing.T) {
		sql, err := New().Select(Col("id")).From("users").Pagination(10).SQL()
		assert.NoError(t, err)
		assert.Equal(t, `SELECT id FROM users LIMIT 10`, sql)
	})

	t.Run("pagination with limit and offset", func(t *testing.T) {
		sql, err := New().Select(Col("id")).From("users").Pagination(10, 20).SQL()
		assert.NoError(t, err)
		assert.Equal(t, `SELECT id FROM users LIMIT 10 OFFSET 20`, sql)
	})
}

func TestStatement(t *testing.T) {

	t.Run("rendering is idempotent", func(t *testing.T) {
		s := New().
			Select(Col("id"), Col("name")).
			From("users").
			Where("age").GreaterThan(18).
			OrderBy(Desc("id")).
			Pagination(5)
		first, err := s.SQL()
		assert.NoError(t, err)
		second, err := s.SQL()
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("clauses render in call order", func(t *testing.T) {
		sql, err := New().
			Select(Col("u.id"), Col("u.name")).
			From("users", "u").
			InnerJoin("orders", "o", "u.id", "o.user_id").
			Where("u.age").GreaterThanEqualsTo(21).
			And("u.active").EqualsTo(true).
			GroupBy("u.id").
			Having(Aggregators.Count("o.id")).GreaterThan(3).
			OrderBy(Desc("u.id")).
			Pagination(10, 0).
			SQL()
		assert.NoError(t, err)
		assert.Equal(t,
			`SELECT u.id, u.name FROM users AS u INNER JOIN orders AS o ON o.user_id = u.id `+
				`WHERE u.age >= 21 AND u.active = true GROUP BY u.id HAVING COUNT(o.id) > 3 `+
				`ORDER BY u.id DESC LIMIT 10 OFFSET 0`,
			sql)
	})

	t.Run("string returns empty on error", func(t *testing.T) {
		s := New().Select()
		assert.Equal(t, "", s.String())
		assert.Error(t, s.Err())
	})

	t.Run("build carries args alongside the query", func(t *testing.T) {
		sql, args, err := New().
			Select(Col("id")).
			From("users").
			Where("name").EqualsTo(Raw("$1")).
			WithArgs("jafar").
			Build()
		assert.NoError(t, err)
		assert.Equal(t, `SELECT id FROM users WHERE name = $1`, sql)
		assert.Equal(t, []interface{}{"jafar"}, args)
	})

	t.Run("build surfaces the recorded error", func(t *testing.T) {
		_, _, err := New().From("users").Build()
		assert.True(t, errors.Is(err, ErrNoPreviousSelectStatement))
	})
}
