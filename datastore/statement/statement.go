/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package statement recognizes the SQL forms generated by the model package,
// for cursors that do not speak SQL themselves.
package statement

import (
	"regexp"
	"strings"
)

// Kind identifies a generated statement form.
type Kind int

const (
	Unknown Kind = iota
	SelectAll
	SelectByKey
	DeleteByKey
	Update
	Insert
)

func (k Kind) String() string {
	switch k {
	case SelectAll:
		return "select all"
	case SelectByKey:
		return "select by key"
	case DeleteByKey:
		return "delete by key"
	case Update:
		return "update"
	case Insert:
		return "insert"
	}
	return "unknown"
}

// Statement is a parsed generated statement.
type Statement struct {
	Kind  Kind
	Table string
	// Key is the primary key column of by-key statements and updates.
	Key string
	// Columns are the assigned columns of an update.
	Columns []string
	// Params is the number of "?" placeholders.
	Params int
}

var (
	selectAllPattern   = regexp.MustCompile(`(?i)^select\s+\*\s+from\s+(\w+)$`)
	selectByKeyPattern = regexp.MustCompile(`(?i)^select\s+\*\s+from\s+(\w+)\s+where\s+(\w+)\s*=\s*\?$`)
	deletePattern      = regexp.MustCompile(`(?i)^delete\s+from\s+(\w+)\s+where\s+(\w+)\s*=\s*\?$`)
	updatePattern      = regexp.MustCompile(`(?i)^update\s+(\w+)\s+set\s+(.+?)\s+where\s+(\w+)\s*=\s*\?$`)
	assignPattern      = regexp.MustCompile(`^(\w+)\s*=\s*\?$`)
	insertPattern      = regexp.MustCompile(`(?i)^insert\s+into\s+(\w+)\s+values\s*\(([\s?,]*)\)$`)
)

// Parse recognizes query as one of the generated forms. It reports false for
// anything else.
func Parse(query string) (Statement, bool) {
	q := strings.TrimSpace(query)
	q = strings.TrimSpace(strings.TrimSuffix(q, ";"))

	if m := selectAllPattern.FindStringSubmatch(q); m != nil {
		return Statement{Kind: SelectAll, Table: m[1]}, true
	}
	if m := selectByKeyPattern.FindStringSubmatch(q); m != nil {
		return Statement{Kind: SelectByKey, Table: m[1], Key: m[2], Params: 1}, true
	}
	if m := deletePattern.FindStringSubmatch(q); m != nil {
		return Statement{Kind: DeleteByKey, Table: m[1], Key: m[2], Params: 1}, true
	}
	if m := updatePattern.FindStringSubmatch(q); m != nil {
		var cols []string
		for _, part := range strings.Split(m[2], ",") {
			am := assignPattern.FindStringSubmatch(strings.TrimSpace(part))
			if am == nil {
				return Statement{}, false
			}
			cols = append(cols, am[1])
		}
		return Statement{Kind: Update, Table: m[1], Key: m[3], Columns: cols, Params: len(cols) + 1}, true
	}
	if m := insertPattern.FindStringSubmatch(q); m != nil {
		n := 0
		for _, part := range strings.Split(m[2], ",") {
			if strings.TrimSpace(part) != "?" {
				return Statement{}, false
			}
			n++
		}
		return Statement{Kind: Insert, Table: m[1], Params: n}, true
	}
	return Statement{}, false
}
