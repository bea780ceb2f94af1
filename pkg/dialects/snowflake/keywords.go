package snowflake

// Reserved keywords of the Snowflake SQL dialect, frozen from
// https://docs.snowflake.com/en/sql-reference/reserved-keywords.
// Run scripts/gensnowflake to compare against the live page.
var snowflakeReservedWords = []string{
	"ALL",
	"ALTER",
	"AND",
	"ANY",
	"AS",
	"BETWEEN",
	"BY",
	"CASE",
	"CAST",
	"CHECK",
	"COLUMN",
	"CONNECT",
	"CONNECTION",
	"CONSTRAINT",
	"CREATE",
	"CROSS",
	"CURRENT",
	"CURRENT_DATE",
	"CURRENT_TIME",
	"CURRENT_TIMESTAMP",
	"CURRENT_USER",
	"DATABASE",
	"DEFAULT",
	"DELETE",
	"DISTINCT",
	"DROP",
	"ELSE",
	"EXISTS",
	"FALSE",
	"FOLLOWING",
	"FOR",
	"FROM",
	"FULL",
	"GRANT",
	"GROUP",
	"GSCLUSTER",
	"HAVING",
	"ILIKE",
	"IN",
	"INCREMENT",
	"INNER",
	"INSERT",
	"INTERSECT",
	"INTO",
	"IS",
	"ISSUE",
	"JOIN",
	"LATERAL",
	"LEFT",
	"LIKE",
	"LOCALTIME",
	"LOCALTIMESTAMP",
	"MINUS",
	"NATURAL",
	"NOT",
	"NULL",
	"OF",
	"ON",
	"OR",
	"ORDER",
	"ORGANIZATION",
	"QUALIFY",
	"REGEXP",
	"REVOKE",
	"RIGHT",
	"RLIKE",
	"ROW",
	"ROWS",
	"SAMPLE",
	"SCHEMA",
	"SELECT",
	"SET",
	"SOME",
	"START",
	"TABLE",
	"TABLESAMPLE",
	"THEN",
	"TO",
	"TRIGGER",
	"TRUE",
	"TRY_CAST",
	"UNION",
	"UNIQUE",
	"UPDATE",
	"USING",
	"VALUES",
	"VIEW",
	"WHEN",
	"WHENEVER",
	"WHERE",
	"WITH",
}

// Context functions that Snowflake resolves as pseudo-columns. A table
// column with one of these names shadows the function, so generated
// column names avoid them.
var snowflakeReservedColumnNames = []string{
	"CURRENT_DATE",
	"CURRENT_TIME",
	"CURRENT_TIMESTAMP",
	"CURRENT_USER",
	"LOCALTIME",
	"LOCALTIMESTAMP",
}
