// Package main fetches the Snowflake reserved keywords documentation page and
// reports how it differs from the frozen table in pkg/dialects/snowflake.
//
// Usage:
//
//	go run ./scripts/gensnowflake
//	go run ./scripts/gensnowflake -url=https://docs.snowflake.com/en/sql-reference/reserved-keywords -timeout=30s
//
// The table is never rewritten: a reported drift is reviewed and applied by hand.
// The exit status is 1 when the page and the table disagree.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/leapstack-labs/reserved/pkg/dialects/snowflake"
)

var (
	urlFlag     = flag.String("url", snowflake.ReferenceURL, "reserved keywords documentation page")
	timeoutFlag = flag.Duration("timeout", 30*time.Second, "HTTP timeout")
)

func main() {
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	log.Printf("Fetching keywords from %s", *urlFlag)

	body, err := fetchURL(ctx, http.DefaultClient, *urlFlag)
	if err != nil {
		log.Fatalf("failed to fetch keywords page: %v", err)
	}

	published, err := parseKeywordsPage(body)
	if err != nil {
		log.Fatalf("failed to parse keywords page: %v", err)
	}
	if len(published) == 0 {
		log.Fatal("no keywords found on page; the page layout may have changed")
	}

	log.Printf("Extracted %d keywords, table has %d", len(published), len(snowflake.ReservedKeywords()))

	d := diffKeywords(snowflake.ReservedKeywords(), published)
	d.report(os.Stdout)
	if !d.empty() {
		os.Exit(1)
	}
}

func fetchURL(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	// Set headers to appear as a browser
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; reserved/1.0; +https://github.com/leapstack-labs/reserved)")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
