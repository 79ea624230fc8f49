package main

import (
	"flag"
	"fmt"

	"github.com/plan-systems/klog"

	"github.com/joelgibson/SymmetricAlgebra/libsym"
	"github.com/joelgibson/SymmetricAlgebra/pysym"
)

func main() {

	evalExpr := flag.String("eval", "", "evaluate a partition expression and exit, e.g. -eval \"[2, 1] * [1]\"")
	rank := flag.Int("gl", 0, "rank n of GL(n); 0 selects the symmetric algebra")

	flag.Set("logtostderr", "true")
	flag.Set("v", "2")

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "2")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.Parse()

	if len(*evalExpr) > 0 {
		alg := &libsym.Algebra{Rank: *rank}
		lc, err := libsym.Eval(alg, *evalExpr)
		if err != nil {
			klog.Flush()
			klog.Fatalf("%v", err)
		}
		fmt.Println(lc.String())
		klog.Flush()
		return
	}

	pysym.SetDefaultRank(*rank)
	runPython(flag.Arg(0))

	klog.Flush()
}
