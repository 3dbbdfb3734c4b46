// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/ezrec/tapebf/interpreter"
	"github.com/ezrec/tapebf/trace"
	"github.com/ezrec/tapebf/translate"
)

var f = translate.From

// prompt asks for the program path on stdin.
func prompt(in io.Reader, out io.Writer) (path string, err error) {
	fmt.Fprint(out, f("Input File Path: "))

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(err == io.EOF && len(line) > 0) {
		return
	}

	path = strings.TrimSpace(line)
	err = nil
	return
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, f("Usage: %v [options]", os.Args[0]))
	flag.PrintDefaults()

	fmt.Fprintln(out)
	fmt.Fprintln(out, f("Watch expression names:"))
	var names []string
	desc := map[string]string{}
	for name, text := range trace.WatchNames() {
		names = append(names, name)
		desc[name] = text
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-6s %v\n", name, desc[name])
	}
}

func main() {
	var input string
	var verbose bool
	var traced bool
	var traceJson string
	var watchExpr string
	var limit int

	flag.StringVar(&input, "i", "", "Program file (prompted for if empty)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&traced, "t", false, "Trace interpreter state to stderr")
	flag.StringVar(&traceJson, "j", "", "Trace interpreter state as JSON to file")
	flag.StringVar(&watchExpr, "w", "", "Only trace states where the Starlark expression is true")
	flag.IntVar(&limit, "l", 0, "Fault after this many ticks (0 is unlimited)")
	flag.Usage = usage

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(input) == 0 {
		var err error
		input, err = prompt(os.Stdin, os.Stdout)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	code, err := os.ReadFile(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	bf := interpreter.NewInterpreter()
	bf.Verbose = verbose
	bf.Limit = limit

	var tracer *trace.Tracer
	if traced || len(traceJson) != 0 || len(watchExpr) != 0 {
		var text io.Writer
		var jsonOut io.Writer

		if traced || len(traceJson) == 0 {
			text = os.Stderr
		}

		if len(traceJson) != 0 {
			ouf, err := os.Create(traceJson)
			if err != nil {
				log.Fatalf("%v: %v", traceJson, err)
			}
			defer ouf.Close()
			jsonOut = ouf
		}

		tracer = &trace.Tracer{Logger: trace.NewLogger(text, jsonOut)}

		if len(watchExpr) != 0 {
			tracer.Watch, err = trace.NewWatch(watchExpr)
			if err != nil {
				log.Fatalf("%v: %v", os.Args[0], err)
			}
		}

		bf.Callback(tracer.Observe)
	}

	output, err := bf.Interpret(string(code))
	fmt.Println(output)
	if err != nil {
		log.Printf("%v: %v", input, err)
		log.Fatalf("%v", bf)
	}

	if tracer != nil && tracer.Err != nil {
		log.Fatalf("%v: %v", os.Args[0], tracer.Err)
	}
}
