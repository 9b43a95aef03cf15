package wordlist

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// BigQueryParams identifies a word scope in a BigQuery table.
//
// The table must have a string column `word_key` and a string column `scope`.
type BigQueryParams struct {
	Project string
	Dataset string
	Table   string
	Scope   string

	// Location of the query job; defaults to "US".
	Location string
}

// LoadBigQuery loads every word of a scope from BigQuery into a List.
//
// The engine never talks to BigQuery itself; this loader runs before a
// search starts and any failure is surfaced to the caller here.
func LoadBigQuery(ctx context.Context, p BigQueryParams) (*List, error) {
	client, err := bigquery.NewClient(ctx, p.Project)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	query := fmt.Sprintf("SELECT word_key FROM `%s.%s.%s` WHERE scope = %q",
		p.Project, p.Dataset, p.Table, p.Scope)
	q := client.Query(query)
	q.Location = p.Location
	if q.Location == "" {
		q.Location = "US"
	}

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return New(words), nil
}
