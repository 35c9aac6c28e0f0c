package main

import (
	"regexp"
	"strings"
)

var objectNamePattern = regexp.MustCompile(`(?i)^CREATE\s+(?:UNIQUE\s+|NULL_FILTERED\s+)*(?:TABLE|INDEX)\s+` + "`?" + `([A-Za-z_][A-Za-z0-9_]*)`)

// splitDDLStatements drops comment and blank lines and splits on semicolons.
func splitDDLStatements(content string) []string {
	lines := strings.Split(content, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	content = strings.Join(cleaned, "\n")

	statements := strings.Split(content, ";")
	var result []string
	for _, stmt := range statements {
		stmt = strings.TrimSpace(stmt)
		if stmt != "" {
			result = append(result, stmt)
		}
	}

	return result
}

// objectName returns the table or index a CREATE statement defines, lower-cased,
// or "" for any other statement.
func objectName(stmt string) string {
	m := objectNamePattern.FindStringSubmatch(strings.TrimSpace(stmt))
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}

// existingObjects indexes the tables and indexes defined by the current schema.
func existingObjects(ddl []string) map[string]bool {
	out := make(map[string]bool, len(ddl))
	for _, stmt := range ddl {
		if name := objectName(stmt); name != "" {
			out[name] = true
		}
	}
	return out
}

// pendingStatements drops CREATE statements for objects that already exist.
// Statements that create nothing are always kept.
func pendingStatements(statements []string, existing map[string]bool) []string {
	var out []string
	for _, stmt := range statements {
		if name := objectName(stmt); name != "" && existing[name] {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
