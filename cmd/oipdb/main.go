// Copyright 2026 The OIP Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command oipdb is a REPL over the relational engine and the Boolean
// query pipeline, in the shape of original_source's oip/main.py REPL:
// table creation and insertion, ad hoc Select queries, and a
// "boolean_search <query>" command running tokenize -> parse ->
// simplify -> plan -> execute against the crawled index.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/PrytkovD/oip/boolquery"
	"github.com/PrytkovD/oip/boolquery/exec"
	"github.com/PrytkovD/oip/boolquery/plan"
	"github.com/PrytkovD/oip/boolquery/simplify"
	"github.com/PrytkovD/oip/config"
	"github.com/PrytkovD/oip/pipeline"
	"github.com/PrytkovD/oip/sql"
	"github.com/PrytkovD/oip/sql/expression"
	"github.com/PrytkovD/oip/table"
)

const helpText = `Usage:
  ?                     | Print this message
  q                     | Quit
  create <table> <cols> | Create a table, e.g. "create pages page_url:string title:string"
  insert <table> <kv>   | Insert a row, e.g. "insert pages page_url=http://a title=hello"
  select <table>        | Print every row of a table
  crawl <url> [...]     | Crawl the given URLs into the token/page indexes
  boolean_search <query>| Run a Boolean query against the crawled index`

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults built in if omitted)")
	flag.Parse()

	log := logrus.StandardLogger()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.WithError(err).Fatal("oipdb: failed to load config")
		}
		cfg = loaded
	}

	installFlushOnExit(log)

	repl := newREPL(cfg, log)
	repl.run()
}

// installFlushOnExit registers the process-exit flush hook of spec
// §5: SIGINT/SIGTERM triggers table.FlushAll before the process
// exits, mirroring the original's atexit.register(PAGE.dump) hook.
func installFlushOnExit(log logrus.FieldLogger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		if err := table.FlushAll(); err != nil {
			log.WithError(err).Warn("oipdb: error flushing tables on exit")
		}
		os.Exit(0)
	}()
}

type repl struct {
	cfg    config.Config
	log    logrus.FieldLogger
	tables map[string]*table.Table

	tokens exec.TokenIndex
	pages  exec.PageIndex
}

func newREPL(cfg config.Config, log logrus.FieldLogger) *repl {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &repl{
		cfg:    cfg,
		log:    log,
		tables: map[string]*table.Table{},
		tokens: exec.NewMemTokenIndex(),
		pages:  exec.NewMemPageIndex(),
	}
}

func (r *repl) run() {
	fmt.Println("Entering REPL mode...")
	fmt.Println(helpText)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "q" {
			break
		}
		if err := r.dispatch(line); err != nil {
			fmt.Println("error:", err)
		}
	}

	if err := table.FlushAll(); err != nil {
		r.log.WithError(err).Warn("oipdb: error flushing tables on exit")
	}
	fmt.Println("Leaving REPL mode...")
}

func (r *repl) dispatch(line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "?":
		fmt.Println(helpText)
		return nil
	case "create":
		return r.create(fields[1:])
	case "insert":
		return r.insert(fields[1:])
	case "select":
		return r.selectAll(fields[1:])
	case "crawl":
		return r.crawl(fields[1:])
	case "boolean_search":
		return r.booleanSearch(strings.TrimSpace(strings.TrimPrefix(line, "boolean_search")))
	default:
		fmt.Println("Unrecognized command. Use '?' to see available commands")
		return nil
	}
}

// create parses "<table> name:type name:type ..." and declares a
// table backed by the configured storage directory.
func (r *repl) create(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: create <table> <col:type>...")
	}
	name := args[0]

	cols := make([]*expression.Column, 0, len(args)-1)
	for _, spec := range args[1:] {
		parts := strings.SplitN(spec, ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid column spec %q, want name:type", spec)
		}
		typ, err := parseType(parts[1])
		if err != nil {
			return err
		}
		cols = append(cols, expression.NewColumn(parts[0], typ))
	}

	dir := r.cfg.Storage.Dir + "/" + name
	t, err := table.NewTable(name, cols, dir,
		table.WithPageSize(r.cfg.Storage.PageSize),
		table.WithCacheSize(r.cfg.Storage.CacheSize),
		table.WithLogger(r.log))
	if err != nil {
		return err
	}
	r.tables[name] = t
	fmt.Printf("created table %q\n", name)
	return nil
}

func parseType(s string) (sql.Type, error) {
	switch s {
	case "int":
		return sql.IntType, nil
	case "float":
		return sql.FloatType, nil
	case "string":
		return sql.StringType, nil
	default:
		return 0, fmt.Errorf("unknown column type %q", s)
	}
}

// insert parses "<table> col=value col=value ..." and appends a row.
func (r *repl) insert(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: insert <table> <col=value>...")
	}
	t, ok := r.tables[args[0]]
	if !ok {
		return fmt.Errorf("no such table %q", args[0])
	}

	data := map[string]sql.Value{}
	for _, kv := range args[1:] {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid column assignment %q, want col=value", kv)
		}
		data[parts[0]] = parts[1]
	}
	return t.Insert(data)
}

// selectAll prints every row of a declared table.
func (r *repl) selectAll(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: select <table>")
	}
	t, ok := r.tables[args[0]]
	if !ok {
		return fmt.Errorf("no such table %q", args[0])
	}

	rows, err := sql.Materialize(t)
	if err != nil {
		return err
	}
	for _, row := range rows {
		values := make([]string, 0, len(t.Columns()))
		for _, c := range t.Columns() {
			v, err := row.GetExpr(c)
			if err != nil {
				return err
			}
			values = append(values, fmt.Sprintf("%s=%v", c.OwnName(), v))
		}
		fmt.Println(strings.Join(values, " "))
	}
	return nil
}

// crawl downloads the given URLs and indexes their content, matching
// the original REPL's "c" command minus the TF-IDF and lemma-matrix
// stages, which a caller drives separately via pipeline.ComputeTFIDF.
func (r *repl) crawl(urls []string) error {
	if len(urls) == 0 {
		return fmt.Errorf("usage: crawl <url> [url...]")
	}
	downloader := pipeline.NewHTTPDownloader(10 * time.Second)
	tokenizer := pipeline.NewTokenizer(3)
	crawler := pipeline.NewCrawler(downloader, tokenizer, r.tokens, r.pages, nil, nil)
	if err := crawler.Crawl(context.Background(), urls, len(urls)); err != nil {
		return err
	}
	fmt.Printf("crawled %d URL(s)\n", len(urls))
	return nil
}

// booleanSearch runs the full tokenize -> parse -> simplify -> plan ->
// execute pipeline against the in-process indexes populated by crawl.
func (r *repl) booleanSearch(query string) error {
	if query == "" {
		return fmt.Errorf("usage: boolean_search <query>")
	}

	ast, err := boolquery.Parse(query)
	if err != nil {
		return err
	}

	simp := simplify.New()
	if r.cfg.Simplifier.Seed != 0 {
		simp = simplify.NewSeeded(r.cfg.Simplifier.Seed)
	}
	ast = simp.Simplify(ast)

	physical := plan.Plan(ast)

	executor := exec.NewExecutor(r.tokens, r.pages, nil, exec.NewMetrics(nil))
	urls, err := executor.Execute(context.Background(), physical)
	if err != nil {
		return err
	}

	if len(urls) == 0 {
		fmt.Println("no matching pages")
		return nil
	}
	for _, u := range urls {
		fmt.Println(u)
	}
	fmt.Printf("query returned %d URL(s)\n", len(urls))
	return nil
}
