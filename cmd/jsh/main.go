// Command jsh evaluates one JSH expression against a JSON document.
//
// Usage:
//
//	jsh [-f file] 'expression'   document read from file, stdin when "-"
//	jsh -request                 protocol mode, see below
//
// The document is stored under "root". The result is printed as JSON;
// an expression producing no value prints nothing.
//
// In protocol mode a single JSON object is read from stdin and a single
// JSON object written to stdout:
//
//	stdin:  { "source": "<jsh>", "data": <any JSON value> }
//	stdout: { "result": <any JSON value> }    on success
//	        { "error":  ["<message line>"] }  on failure (exit code 1)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/sandrolain/gojsh/pkg/evaluator"
	"github.com/sandrolain/gojsh/pkg/ext"
	"github.com/sandrolain/gojsh/pkg/types"
)

type request struct {
	Source string          `json:"source"`
	Data   json.RawMessage `json:"data"`
}

type response struct {
	Result json.RawMessage `json:"result,omitempty"`
	Error  []string        `json:"error,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jsh", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("f", "-", "JSON document, - for stdin")
	protocol := fs.Bool("request", false, "read a {source, data} request from stdin")
	extensions := fs.Bool("ext", false, "enable the extension functions")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var opts []evaluator.EvalOption
	if *extensions {
		opts = append(opts, ext.WithAll())
	}

	if *protocol {
		return serveRequest(stdin, stdout, opts)
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: jsh [-f file] [-ext] 'expression'")
		return 2
	}
	doc, err := readDocument(*file, stdin)
	if err != nil {
		fmt.Fprintln(stderr, "jsh:", err)
		return 1
	}
	v, err := eval(fs.Arg(0), doc, opts)
	if err != nil {
		fmt.Fprintln(stderr, "jsh:", types.Message(err))
		return 1
	}
	if v == nil {
		return 0
	}
	out, err := types.Marshal(v)
	if err != nil {
		fmt.Fprintln(stderr, "jsh:", err)
		return 1
	}
	fmt.Fprintln(stdout, string(out))
	return 0
}

func readDocument(file string, stdin io.Reader) (types.Value, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return types.NewObject(), nil
	}
	return types.Unmarshal(data)
}

func eval(source string, doc types.Value, opts []evaluator.EvalOption) (types.Value, error) {
	e := evaluator.New(opts...)
	if err := e.SetValue(types.String("root"), doc); err != nil {
		return nil, err
	}
	return e.EvalJSH(context.Background(), source)
}

func serveRequest(stdin io.Reader, stdout io.Writer, opts []evaluator.EvalOption) int {
	write := func(r response, code int) int {
		_ = json.NewEncoder(stdout).Encode(r)
		return code
	}
	fail := func(err error) int {
		return write(response{Error: strings.Split(types.Message(err), "\n")}, 1)
	}

	var req request
	if err := json.NewDecoder(stdin).Decode(&req); err != nil {
		return fail(fmt.Errorf("invalid request JSON: %w", err))
	}
	if req.Source == "" {
		return fail(errors.New("request has no source"))
	}
	var doc types.Value = types.NewObject()
	if len(req.Data) > 0 {
		var err error
		if doc, err = types.Unmarshal(req.Data); err != nil {
			return fail(err)
		}
	}
	v, err := eval(req.Source, doc, opts)
	if err != nil {
		return fail(err)
	}
	if v == nil {
		v = types.Null{}
	}
	out, err := types.Marshal(v)
	if err != nil {
		return fail(err)
	}
	return write(response{Result: out}, 0)
}
