package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"graphcalc"
	"graphcalc/display"
	"graphcalc/plot"
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		with   [][2]string
		deg    bool
		echo   bool
		graph  bool
		win    plot.Window
		n      struct{ samples, width, height int }
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&deg, "deg", false, "trigonometry in degrees instead of radians")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&graph, "plot", false, "graph each expression over x instead of evaluating it")
	flag.Float64Var(&win.XMin, "xmin", -10, "left edge of the plot window")
	flag.Float64Var(&win.XMax, "xmax", 10, "right edge of the plot window")
	flag.Float64Var(&win.YMin, "ymin", -10, "bottom edge of the plot window")
	flag.Float64Var(&win.YMax, "ymax", 10, "top edge of the plot window")
	flag.IntVar(&n.samples, "samples", 240, "number of plot samples")
	flag.IntVar(&n.width, "width", 72, "plot width in characters")
	flag.IntVar(&n.height, "height", 24, "plot height in characters")
	flag.Parse()

	mode := graphcalc.Radians
	if deg {
		mode = graphcalc.Degrees
	}
	ctx := graphcalc.NewContext(graphcalc.Angle(mode))
	for _, d := range with {
		nm, vl := d[0], d[1]
		r, err := graphcalc.EvalString(vl, graphcalc.Angle(mode))
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		ctx.Set(nm, r)
	}

	srcs, err := sources(inname, flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	for _, src := range srcs {
		if graph {
			render(src, win, n.samples, n.width, n.height, mode)
			continue
		}
		a, err := graphcalc.ParseString(src)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if echo {
			fmt.Printf("%v : ", a)
		}
		r, err := a.Eval(ctx)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(display.Format(r))
	}
}

func render(src string, win plot.Window, samples, width, height int, mode graphcalc.AngleMode) {
	s, err := plot.Plot(plot.Spec{
		Expr:    src,
		Window:  win,
		Samples: samples,
		Mode:    mode,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, line := range plot.Raster(s, win, width, height) {
		fmt.Println(line)
	}
}

// sources collects expression sources: one per argument, plus one per
// non-empty line of the input file or stdin.
func sources(inname string, args []string) ([]string, error) {
	var srcs []string
	f, err := infile(inname, len(args) == 0)
	if err != nil {
		return nil, err
	}
	if f != nil {
		scan := bufio.NewScanner(f)
		for scan.Scan() {
			if s := strings.TrimSpace(scan.Text()); s != "" {
				srcs = append(srcs, s)
			}
		}
		if err := scan.Err(); err != nil {
			return nil, err
		}
	}
	return append(srcs, args...), nil
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return f, nil
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
