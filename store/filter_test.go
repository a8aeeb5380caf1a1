package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicates_Empty(t *testing.T) {
	var p predicates
	assert.Equal(t, "", p.where())
	assert.Empty(t, p.args)
}

func TestPredicates_NumbersInInsertionOrder(t *testing.T) {
	var p predicates
	p.add("b = ?", 2)
	p.add("a = ?", 1)
	p.add("c > ?", 3)

	assert.Equal(t, " WHERE b = $1 AND a = $2 AND c > $3", p.where())
	assert.Equal(t, []interface{}{2, 1, 3}, p.args)
}

func TestPredicates_OnlyFirstQuestionMarkIsReplaced(t *testing.T) {
	var p predicates
	p.add("note = ? OR note = '?'", "x")

	assert.Equal(t, " WHERE note = $1 OR note = '?'", p.where())
}
