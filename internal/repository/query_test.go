package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailPredicateUnfiltered(t *testing.T) {
	clause, args := emailPredicate("created_by", ListQuery{})
	assert.Empty(t, clause)
	assert.Nil(t, args)
}

func TestEmailPredicateFiltered(t *testing.T) {
	clause, args := emailPredicate("user_email", ListQuery{Email: "a@example.com"})
	assert.Equal(t, " where user_email = $1", clause)
	assert.Equal(t, []any{"a@example.com"}, args)
}
