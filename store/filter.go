package store

import (
	"strconv"
	"strings"
)

// predicates accumulates AND-ed WHERE conditions. Each condition is written
// with a single "?" that is replaced by the next positional placeholder, so
// numbering always follows the order conditions were added in.
type predicates struct {
	conds []string
	args  []interface{}
}

func (p *predicates) add(cond string, arg interface{}) {
	p.args = append(p.args, arg)
	placeholder := "$" + strconv.Itoa(len(p.args))
	p.conds = append(p.conds, strings.Replace(cond, "?", placeholder, 1))
}

// where returns the WHERE clause including a leading space, or "" when no
// condition was added.
func (p *predicates) where() string {
	if len(p.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.conds, " AND ")
}
