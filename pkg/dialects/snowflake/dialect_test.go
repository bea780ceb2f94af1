package snowflake

import (
	"strings"
	"sync"
	"testing"

	"github.com/leapstack-labs/reserved/pkg/core"
	"github.com/leapstack-labs/reserved/pkg/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	d := Snowflake

	require.NotNil(t, d)

	// Verify dialect properties
	assert.Equal(t, "snowflake", d.Name)
	assert.Equal(t, `"`, d.Identifiers.Quote)
	assert.Equal(t, "PUBLIC", d.DefaultSchema)
	assert.Equal(t, core.NormUppercase, d.Identifiers.Normalization)
	assert.Equal(t, ReferenceURL, d.Reference)
}

func TestDialectRegistration(t *testing.T) {
	// Verify the Snowflake dialect is registered and can be retrieved
	d, ok := dialect.Get("snowflake")
	require.True(t, ok, "snowflake dialect should be registered")
	require.NotNil(t, d)
	assert.Same(t, Snowflake, d)
}

func TestTableSizes(t *testing.T) {
	// Guards against entries lost when the tables are edited.
	assert.Len(t, ReservedKeywords(), 91)
	assert.Len(t, ReservedColumnNames(), 6)
}

func TestRawTablesHaveNoDuplicates(t *testing.T) {
	for name, words := range map[string][]string{
		"keywords":     snowflakeReservedWords,
		"column names": snowflakeReservedColumnNames,
	} {
		t.Run(name, func(t *testing.T) {
			seen := make(map[string]bool, len(words))
			for _, w := range words {
				assert.False(t, seen[w], "duplicate entry %q", w)
				seen[w] = true
				assert.Equal(t, strings.ToUpper(w), w, "entry %q is not uppercase", w)
			}
		})
	}
}

func TestIsReservedKeyword_AnyCase(t *testing.T) {
	for _, kw := range ReservedKeywords() {
		assert.True(t, IsReservedKeyword(kw), kw)
		assert.True(t, IsReservedKeyword(strings.ToLower(kw)), kw)
		titled := strings.ToUpper(kw[:1]) + strings.ToLower(kw[1:])
		assert.True(t, IsReservedKeyword(titled), titled)
	}

	assert.True(t, IsReservedKeyword("select"))
	assert.True(t, IsReservedKeyword("Select"))
	assert.True(t, IsReservedKeyword("SELECT"))
}

func TestIsReservedKeyword_NotReserved(t *testing.T) {
	tests := []string{"CUSTOMER_ID", "", "123", "my_column", " SELECT", "SELECT;", "ASC", "LIMIT"}

	for _, tok := range tests {
		t.Run(tok, func(t *testing.T) {
			assert.False(t, IsReservedKeyword(tok))
		})
	}
}

func TestIsReservedColumnName(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"CURRENT_TIMESTAMP", true},
		{"CURRENT_DATE", true},
		{"current_time", true},
		{"Current_User", true},
		{"LOCALTIME", true},
		{"localtimestamp", true},
		{"SELECT", false},
		{"CURRENT", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, IsReservedColumnName(tt.token))
		})
	}
}

func TestEnumerationRoundTrip(t *testing.T) {
	for _, kw := range ReservedKeywords() {
		assert.True(t, IsReservedKeyword(kw), "enumerated keyword %q not found", kw)
	}
	for _, col := range ReservedColumnNames() {
		assert.True(t, IsReservedColumnName(col), "enumerated column name %q not found", col)
	}
}

func TestEnumerationOrder(t *testing.T) {
	kws := ReservedKeywords()
	assert.Equal(t, "ALL", kws[0])
	assert.Equal(t, "WITH", kws[len(kws)-1])
	assert.Equal(t, snowflakeReservedWords, kws)

	assert.Equal(t, []string{
		"CURRENT_DATE",
		"CURRENT_TIME",
		"CURRENT_TIMESTAMP",
		"CURRENT_USER",
		"LOCALTIME",
		"LOCALTIMESTAMP",
	}, ReservedColumnNames())
}

func TestEnumerationReturnsCopy(t *testing.T) {
	kws := ReservedKeywords()
	kws[0] = "NOT_A_KEYWORD"

	assert.Equal(t, "ALL", ReservedKeywords()[0])
	assert.False(t, IsReservedKeyword("NOT_A_KEYWORD"))
}

func TestIdempotence(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.True(t, IsReservedKeyword("qualify"))
		assert.False(t, IsReservedKeyword("customer_id"))
		assert.True(t, IsReservedColumnName("current_user"))
	}
}

func TestConcurrentLookups(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, kw := range ReservedKeywords() {
				if !IsReservedKeyword(strings.ToLower(kw)) {
					t.Errorf("concurrent lookup of %q failed", kw)
				}
			}
		}()
	}
	wg.Wait()
}

func TestIdentifierQuoting(t *testing.T) {
	d := Snowflake

	// Snowflake uses double quotes for identifier quoting
	assert.Equal(t, `"my_table"`, d.QuoteIdentifier("my_table"))
	assert.Equal(t, `"table""name"`, d.QuoteIdentifier(`table"name`))

	assert.Equal(t, `"order"`, d.QuoteIdentifierIfNeeded("order"))
	assert.Equal(t, "customer_id", d.QuoteIdentifierIfNeeded("customer_id"))
}

func TestSafeColumnName(t *testing.T) {
	assert.Equal(t, "_CURRENT_TIMESTAMP", Snowflake.SafeColumnName("current_timestamp", ""))
	assert.Equal(t, "UPDATED_AT", Snowflake.SafeColumnName("updated_at", ""))
}

func TestNormalization(t *testing.T) {
	d := Snowflake

	// Snowflake normalizes to uppercase
	assert.Equal(t, "MY_TABLE", d.NormalizeName("my_table"))
	assert.Equal(t, "MY_TABLE", d.NormalizeName("MY_TABLE"))
	assert.Equal(t, "MY_TABLE", d.NormalizeName("My_Table"))
}
