package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	arr "github.com/goliatone/go-arr"
)

const defaultSplitPattern = `\r?\n`

// CLI reads text, decomposes it into a collection, runs the configured
// filter, map and sort stages in that order and prints the result.
type CLI struct {
	LogLevel    string        `name:"log-level" help:"Set log level (debug, info, notice, warn, error)" default:"info" env:"ARR_LOG_LEVEL"`
	Split       string        `name:"split" help:"Split input by regular expression (default: line breaks)" xor:"decompose"`
	Explode     string        `name:"explode" help:"Split input by a literal delimiter" xor:"decompose"`
	Filter      string        `name:"filter" help:"Keep elements for which the expression is truthy"`
	Map         string        `name:"map" help:"Replace each element with the expression result"`
	Sort        string        `name:"sort" help:"Sort with a comparator expression over a and b" xor:"order"`
	SortDefault bool          `name:"sort-default" help:"Sort with the default ordering" xor:"order"`
	Join        string        `name:"join" help:"Separator used by the text output" default:"\n"`
	Output      string        `name:"output" short:"o" help:"Output format (text, json, yaml)" enum:"text,json,yaml" default:"text"`
	Engine      string        `name:"engine" help:"Expression engine (expr, cel, js)" enum:"expr,cel,js" default:"expr" env:"ARR_ENGINE"`
	Arg         []string      `name:"arg" help:"key=value exposed to expressions under args"`
	Timeout     time.Duration `name:"timeout" help:"Per-call timeout for the js engine" default:"0s"`
	Text        string        `arg:"" optional:"" help:"Input text; read from stdin when omitted"`

	exitFunc       func(int)
	stdin          io.Reader
	stderr, stdout io.Writer
}

func NewCLI() *CLI {
	return &CLI{
		exitFunc: os.Exit,
		stdin:    os.Stdin,
		stderr:   os.Stderr,
		stdout:   os.Stdout,
	}
}

// Writers sets the writers for stdout and stderr. for testing
func (cli *CLI) Writers(stdout, stderr io.Writer) {
	cli.stdout = stdout
	cli.stderr = stderr
}

// Reader sets the input used when no text argument is given. for testing
func (cli *CLI) Reader(stdin io.Reader) {
	cli.stdin = stdin
}

// Exit sets the exit function. for testing
func (cli *CLI) Exit(exitFunc func(int)) {
	cli.exitFunc = exitFunc
}

// Parse parses the command line arguments into cli.
func (cli *CLI) Parse(args []string) error {
	parser, err := kong.New(
		cli,
		kong.Name("arr"),
		kong.Description("arr decomposes text into an ordered collection and transforms it with expressions"),
		kong.UsageOnError(),
		kong.Exit(cli.exitFunc),
		kong.Writers(cli.stdout, cli.stderr),
	)
	if err != nil {
		return err
	}
	if _, err := parser.Parse(args); err != nil {
		parser.FatalIfErrorf(err)
		return err
	}
	return nil
}

// Run parses args and executes the pipeline.
func (cli *CLI) Run(ctx context.Context, args []string) error {
	if err := cli.Parse(args); err != nil {
		return err
	}
	cleanup := LoggerSetup(cli.stderr, cli.LogLevel)
	defer cleanup()

	text, err := cli.input()
	if err != nil {
		return err
	}
	result, err := cli.pipeline(ctx, text)
	if err != nil {
		return err
	}
	return cli.render(result)
}

func (cli *CLI) input() (string, error) {
	if cli.Text != "" {
		return cli.Text, nil
	}
	b, err := io.ReadAll(cli.stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(b), nil
}

func (cli *CLI) pipeline(ctx context.Context, text string) (*arr.Arr[any], error) {
	evaluator, err := cli.evaluator()
	if err != nil {
		return nil, err
	}
	args, err := cli.args()
	if err != nil {
		return nil, err
	}
	opts := []arr.Option{
		arr.WithEvaluator(evaluator),
		arr.WithEvaluatorLogger(arr.EvaluatorLoggerFunc(func(event arr.EvaluatorLogEvent) {
			if event.Err != nil {
				log.Printf("[debug] %s %q failed at %d: %s", event.Engine, event.Expr, event.Index, event.Err)
			}
		})),
	}

	parts, err := cli.decompose(text, opts)
	if err != nil {
		return nil, err
	}
	log.Printf("[debug] decomposed input into %d elements", parts.Len())
	items, err := arr.MapTo(parts, func(s string) any { return s })
	if err != nil {
		return nil, err
	}

	if cli.Filter != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lambda, err := compile(items, cli.Filter, args)
		if err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
		if items, err = items.FilterExpr(lambda); err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
		log.Printf("[debug] filter kept %d elements", items.Len())
	}
	if cli.Map != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lambda, err := compile(items, cli.Map, args)
		if err != nil {
			return nil, fmt.Errorf("map: %w", err)
		}
		if items, err = arr.MapExpr(items, lambda); err != nil {
			return nil, fmt.Errorf("map: %w", err)
		}
	}
	switch {
	case cli.SortDefault:
		items = items.Sort(nil)
	case cli.Sort != "":
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lambda, err := compile(items, cli.Sort, args)
		if err != nil {
			return nil, fmt.Errorf("sort: %w", err)
		}
		if items, err = items.SortExpr(lambda); err != nil {
			return nil, fmt.Errorf("sort: %w", err)
		}
	}
	return items, nil
}

func compile(items *arr.Arr[any], expression string, args map[string]any) (*arr.Lambda, error) {
	lambda, err := items.Compile(expression)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		lambda = lambda.Bind(args)
	}
	return lambda, nil
}

func (cli *CLI) decompose(text string, opts []arr.Option) (*arr.Arr[string], error) {
	if cli.Explode != "" {
		return arr.Explode(cli.Explode, text, opts...)
	}
	pattern := cli.Split
	if pattern == "" {
		pattern = defaultSplitPattern
	}
	return arr.Split(pattern, text, opts...)
}

func (cli *CLI) evaluator() (arr.Evaluator, error) {
	cache := arr.NewLRUProgramCache(0)
	switch cli.Engine {
	case "cel":
		return arr.NewCELEvaluator(arr.CELWithProgramCache(cache)), nil
	case "js":
		evaluator := arr.NewJSEvaluator(arr.JSWithProgramCache(cache), arr.JSWithTimeout(cli.Timeout))
		if evaluator == nil {
			return nil, errors.New("js engine unavailable: rebuild with -tags js_eval")
		}
		return evaluator, nil
	default:
		return arr.NewExprEvaluator(arr.ExprWithProgramCache(cache)), nil
	}
}

func (cli *CLI) args() (map[string]any, error) {
	args := make(map[string]any, len(cli.Arg))
	for _, s := range cli.Arg {
		kv := strings.SplitN(s, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid arg value: %s", s)
		}
		args[kv[0]] = kv[1]
	}
	return args, nil
}

func (cli *CLI) render(items *arr.Arr[any]) error {
	var out []byte
	switch cli.Output {
	case "json":
		b, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		out = append(b, '\n')
	case "yaml":
		b, err := yaml.Marshal(items)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		out = b
	default:
		out = []byte(items.Join(cli.Join) + "\n")
	}
	_, err := cli.stdout.Write(out)
	return err
}
