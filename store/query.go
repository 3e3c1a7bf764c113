/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package store

import (
	"strconv"
	"strings"
)

// Query describes one generated select statement: count or star projection,
// target domain, optional free-form where fragment, optional limit.
// The where fragment is appended verbatim and not validated here.
type Query struct {
	Domain string
	Where  string
	Count  bool
	Limit  uint64
}

// String renders the query in the grammar
// SELECT [COUNT(*)|*] FROM <domain> [WHERE <where>] [LIMIT <n>].
func (q Query) String() string {
	var b strings.Builder

	if q.Count {
		b.WriteString("SELECT COUNT(*) FROM ")
	} else {
		b.WriteString("SELECT * FROM ")
	}
	b.WriteString(q.Domain)

	if q.Where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(q.Where)
	}

	if q.Limit > 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.FormatUint(q.Limit, 10))
	}

	return b.String()
}
