package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	utils "github.com/amarkov/searchengine/utils"
)

// config holds the application configuration values derived from flags.
type config struct {
	corpusPath  string
	stopWords   string
	useParallel bool
	pageSize    int
}

func main() {
	setupLogging()
	cfg := parseFlags()

	log.Println("Running Full Text Search Engine")

	docs, err := loadCorpus(cfg.corpusPath)
	if err != nil {
		log.Fatalf("Initialization error: %v", err)
	}

	engine, err := buildEngine(docs, cfg.stopWords)
	if err != nil {
		log.Fatalf("Initialization error: %v", err)
	}

	if err := runInteractiveSearch(engine, cfg); err != nil {
		log.Fatalf("Runtime error: %v", err)
	}
}

// setupLogging configures the log output format.
func setupLogging() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.SetPrefix("[Search Engine] ")
}

// parseFlags parses command-line flags and returns a config struct.
func parseFlags() (cfg config) {
	flag.StringVar(&cfg.corpusPath, "p", "", "corpus path (pipe-delimited id|status|ratings|text per line); empty uses the built-in sample corpus")
	flag.StringVar(&cfg.stopWords, "s", "", "space-separated stop words")
	flag.BoolVar(&cfg.useParallel, "c", false, "use parallel execution for match commands")
	flag.IntVar(&cfg.pageSize, "n", 5, "results per page when displaying search results")
	flag.Parse()
	return cfg
}

// corpusDocument is one document loaded from the corpus before indexing.
type corpusDocument struct {
	ID      int
	Text    string
	Status  utils.DocumentStatus
	Ratings []int
}

// sampleCorpus is used when no corpus path is given.
func sampleCorpus() []corpusDocument {
	return []corpusDocument{
		{ID: 0, Text: "first article about cats", Status: utils.StatusActual, Ratings: []int{1, 2, 3}},
		{ID: 1, Text: "second article about dogs", Status: utils.StatusActual, Ratings: []int{4, 5}},
		{ID: 2, Text: "third poem about rain", Status: utils.StatusActual, Ratings: nil},
	}
}

// loadCorpus loads documents from the specified path, or the built-in
// sample corpus if path is empty.
func loadCorpus(path string) ([]corpusDocument, error) {
	if path == "" {
		return sampleCorpus(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("corpus file not found: %s", path)
	}

	start := time.Now()
	log.Printf("Loading corpus from %s...", path)
	docs, err := parseCorpusFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}
	log.Printf("Loaded %d documents in %v", len(docs), time.Since(start))
	return docs, nil
}

func parseStatus(s string) (utils.DocumentStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ACTUAL":
		return utils.StatusActual, nil
	case "IRRELEVANT":
		return utils.StatusIrrelevant, nil
	case "BANNED":
		return utils.StatusBanned, nil
	case "REMOVED":
		return utils.StatusRemoved, nil
	default:
		return 0, fmt.Errorf("unknown status %q", s)
	}
}

// parseCorpusFile reads lines of the form "id|status|ratings|text", where
// ratings is a comma-separated list of integers (may be empty).
func parseCorpusFile(path string) ([]corpusDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var docs []corpusDocument
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.SplitN(line, "|", 4)
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: expected 4 fields, got %d", lineNo, len(fields))
		}

		id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid id: %w", lineNo, err)
		}
		status, err := parseStatus(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		ratings, err := parseRatings(fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		docs = append(docs, corpusDocument{ID: id, Text: fields[3], Status: status, Ratings: ratings})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

func parseRatings(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ratings := make([]int, 0, len(parts))
	for _, p := range parts {
		r, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid rating %q: %w", p, err)
		}
		ratings = append(ratings, r)
	}
	return ratings, nil
}

// buildEngine constructs a SearchEngine and adds every corpus document to
// it, logging invalid documents rather than aborting (matching the
// "catch InvalidArgument, print a diagnostic, continue" front-end policy).
func buildEngine(docs []corpusDocument, stopWords string) (*utils.SearchEngine, error) {
	engine, err := utils.NewSearchEngineFromText(stopWords)
	if err != nil {
		return nil, fmt.Errorf("failed to construct search engine: %w", err)
	}

	start := time.Now()
	log.Println("Indexing documents...")
	for _, doc := range docs {
		if err := engine.AddDocument(doc.ID, doc.Text, doc.Status, doc.Ratings); err != nil {
			log.Printf("Add document error %d: %v", doc.ID, err)
		}
	}
	log.Printf("Indexed %d documents in %v", engine.GetDocumentCount(), time.Since(start))
	return engine, nil
}

// runInteractiveSearch handles the main user interaction loop for
// searching. Lines beginning with "match " run MatchDocument against the
// id that follows; "dupe" removes duplicate documents; anything else is
// treated as a FindTopDocuments query.
func runInteractiveSearch(engine *utils.SearchEngine, cfg config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     ".search_history.tmp",
		InterruptPrompt: "^C\n",
		EOFPrompt:       "exit\n",
		HistoryLimit:    100,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	window := utils.NewRequestWindow(engine)

	fmt.Println("\nEnter your search query (press Ctrl+C or type 'exit' to quit):")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				fmt.Println("\nExiting...")
				return nil
			}
			continue // allow clearing the line with Ctrl+C
		}
		if err == io.EOF || strings.TrimSpace(line) == "exit" {
			fmt.Println("\nExiting...")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case line == "dupe":
			utils.RemoveDuplicates(engine, os.Stdout)
		case strings.HasPrefix(line, "match "):
			performMatch(engine, strings.TrimPrefix(line, "match "), cfg)
		default:
			performSearch(window, line, cfg)
		}
	}
}

// performSearch searches the engine (via the request window, so no-result
// queries are tracked) and displays results with pagination.
func performSearch(window *utils.RequestWindow, rawQuery string, cfg config) {
	start := time.Now()
	log.Printf("Searching for: %q", rawQuery)
	results, err := window.AddFindRequest(rawQuery, utils.ActualOnly())
	if err != nil {
		fmt.Printf("Search error: %v\n", err)
		return
	}
	log.Printf("Search completed in %v, found %d results.", time.Since(start), len(results))

	displayResults(results, cfg.pageSize)
	fmt.Printf("No-result requests so far: %d\n", window.GetNoResultRequests())
}

// performMatch parses "<id> <query>" and runs MatchDocument.
func performMatch(engine *utils.SearchEngine, rest string, cfg config) {
	fields := strings.SplitN(rest, " ", 2)
	if len(fields) != 2 {
		fmt.Println("usage: match <id> <query>")
		return
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		fmt.Printf("invalid document id %q\n", fields[0])
		return
	}

	policy := utils.Sequential
	if cfg.useParallel {
		policy = utils.Parallel
	}

	words, status, err := engine.MatchDocument(fields[1], id, policy)
	if err != nil {
		fmt.Printf("Matching error for document %d: %v\n", id, err)
		return
	}
	utils.PrintMatchResult(os.Stdout, id, words, status)
}

// displayResults handles printing search results with pagination.
func displayResults(results []utils.Document, pageSize int) {
	if len(results) == 0 {
		fmt.Println("No matches found.")
		return
	}

	fmt.Println("\nResults (sorted by relevance):")
	fmt.Println(strings.Repeat("-", 80))

	reader := bufio.NewReader(os.Stdin)
	pages := utils.Paginate(results, pageSize)
	for pageIdx, page := range pages {
		for i, doc := range page.Items() {
			fmt.Printf("\n%d. document %d\n", pageIdx*pageSize+i+1, doc.ID)
			utils.PrintDocument(os.Stdout, doc)
		}

		if pageIdx < len(pages)-1 {
			remaining := len(results) - (pageIdx+1)*pageSize
			fmt.Printf("\nPress Enter for next page (%d remaining), or any other key to return to query...\n", remaining)
			input, _ := reader.ReadString('\n')
			if input != "\n" && input != "\r\n" {
				return
			}
		}
	}

	fmt.Println("\nEnd of results.")
}
