package utils

import "golang.org/x/sync/errgroup"

// ProcessQueries runs FindTopDocuments(q, ActualOnly()) for every query in
// queries concurrently, returning one result list per query in input
// order. All reads against engine must be safe for concurrent
// invocation — no write operation may run concurrently with this call.
func ProcessQueries(engine *SearchEngine, queries []string) ([][]Document, error) {
	results := make([][]Document, len(queries))

	var g errgroup.Group
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			docs, err := engine.FindTopDocuments(q, ActualOnly())
			if err != nil {
				return err
			}
			results[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// ProcessQueriesJoined is ProcessQueries with every per-query result list
// concatenated in input order.
func ProcessQueriesJoined(engine *SearchEngine, queries []string) ([]Document, error) {
	perQuery, err := ProcessQueries(engine, queries)
	if err != nil {
		return nil, err
	}

	var joined []Document
	for _, docs := range perQuery {
		joined = append(joined, docs...)
	}
	return joined, nil
}
