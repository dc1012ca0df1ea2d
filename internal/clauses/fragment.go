package clauses

import "strings"

// Fragment is a rendered piece of SQL with its bind values.
//
// The n-th '?' of SQL binds Args[n]. Every clause renders into a Fragment,
// and statements concatenate fragments, so text and args are produced by
// the same pass and cannot drift apart.
type Fragment struct {
	SQL  string
	Args []any
}

// F returns a new Fragment.
func F(sql string, args ...any) Fragment {
	return Fragment{SQL: sql, Args: args}
}

// Empty reports whether the fragment carries no SQL.
func (f Fragment) Empty() bool {
	return f.SQL == ""
}

// Join concatenates non-empty fragments with sep.
func Join(sep string, fragments ...Fragment) Fragment {
	var (
		sqls []string
		args []any
	)
	for _, f := range fragments {
		if f.Empty() {
			continue
		}
		sqls = append(sqls, f.SQL)
		args = append(args, f.Args...)
	}
	return Fragment{
		SQL:  strings.Join(sqls, sep),
		Args: args,
	}
}

// Prefix prefixes a non-empty fragment with the clause keyword.
func Prefix(prefix string, f Fragment) Fragment {
	if f.Empty() {
		return f
	}
	return Fragment{
		SQL:  prefix + " " + f.SQL,
		Args: f.Args,
	}
}

// Wrap encloses a non-empty fragment in parentheses.
func Wrap(f Fragment) Fragment {
	if f.Empty() {
		return f
	}
	return Fragment{
		SQL:  "(" + f.SQL + ")",
		Args: f.Args,
	}
}
