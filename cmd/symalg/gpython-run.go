package main

import (
	"fmt"
	"log"
	"time"

	"github.com/go-python/gpython/py"
	"github.com/go-python/gpython/repl"
	"github.com/go-python/gpython/repl/cli"

	_ "github.com/go-python/gpython/stdlib"
)

// Pulls the _symalg bindings into scope so the REPL and scripts can use
// them unqualified.
const pyPreamble = "from _symalg import *\n"

func runPython(pathname string) {
	ctx := py.NewContext(py.DefaultContextOpts())

	var err error
	if len(pathname) == 0 {
		replCtx := repl.New(ctx)
		_, err = py.RunSrc(ctx, pyPreamble, "", replCtx.Module)
		if err == nil {
			fmt.Println("SymmetricAlgebra -- try:  Eval('[2, 1] * [1]')")
			cli.RunREPL(replCtx)
		}
	} else {
		startTime := time.Now()
		_, err = py.RunFile(ctx, pathname, py.CompileOpts{}, nil)
		if err == nil {
			fmt.Printf("%s: done in %v\n", pathname, time.Since(startTime))
		}
	}

	ctx.Close()
	<-ctx.Done()

	if err != nil {
		py.TracebackDump(err)
		log.Fatal(err)
	}
}
