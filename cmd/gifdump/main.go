// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gifdump decodes GIF files and prints their structure: the logical
// screen, every frame with its timing and disposal, and the comments and
// loop count found in extension blocks. With -out it also writes each frame
// as a BMP file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/image/bmp"

	gif "github.com/xanthousphoenix/gifdecode"
)

var (
	flagOut       = flag.String("out", "", "write every frame as a BMP file into this directory")
	flagStrict    = flag.Bool("strict", false, "reject out-of-bounds frames and trailing image data")
	flagJobs      = flag.Int("j", 1, "number of frames decoded in parallel")
	flagMaxPixels = flag.Int("max-pixels", 0, "maximum pixels per frame (0 for no limit)")
	flagMaxFrames = flag.Int("max-frames", 0, "maximum frames per file (0 for no limit)")
	flagNoColor   = flag.Bool("no-color", false, "disable colored output")
)

var (
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

// extras collects what the decoder hands to Options.OnExtension.
type extras struct {
	comments []string
	loop     int
	hasLoop  bool
	other    []string
}

func (x *extras) add(e gif.Extension) error {
	if s, ok := e.Comment(); ok {
		x.comments = append(x.comments, s)
		return nil
	}
	if n, ok := e.LoopCount(); ok {
		x.loop, x.hasLoop = n, true
		return nil
	}
	x.other = append(x.other, e.String())
	return nil
}

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: gifdump [options] file.gif...\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *flagNoColor {
		color.NoColor = true
	}

	failed := false
	for _, name := range flag.Args() {
		if err := dump(os.Stdout, name); err != nil {
			log.Printf("%s: %v", name, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func dump(w io.Writer, name string) error {
	buf, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	var x extras
	opts := &gif.Options{
		Strict:         *flagStrict,
		Concurrency:    *flagJobs,
		MaxFramePixels: *flagMaxPixels,
		MaxFrames:      *flagMaxFrames,
		OnExtension:    x.add,
	}
	doc, err := gif.DecodeBytesWithOptions(buf, opts)
	var de *gif.DecodeError
	if err != nil && !errors.As(err, &de) {
		return err
	}

	printDocument(w, name, doc, &x)
	if de != nil {
		fmt.Fprintf(w, "  %s frame %d: %v\n", red("error"), de.Frame, de)
	}

	if *flagOut != "" {
		if err := writeFrames(*flagOut, name, doc); err != nil {
			return err
		}
	}
	if de != nil {
		return fmt.Errorf("decoded %d frames before failing", len(doc.Frames))
	}
	return nil
}

func printDocument(w io.Writer, name string, doc *gif.Document, x *extras) {
	fmt.Fprintf(w, "%s GIF%s %dx%d\n", bold(name), doc.Version, doc.Width, doc.Height)
	if t := doc.GlobalColorTable; t != nil {
		fmt.Fprintf(w, "  global color table: %d entries, background %d\n", t.Len(), doc.BackgroundIndex)
	}
	if x.hasLoop {
		if x.loop == 0 {
			fmt.Fprintf(w, "  loop: forever\n")
		} else {
			fmt.Fprintf(w, "  loop: %d\n", x.loop)
		}
	}
	for _, c := range x.comments {
		fmt.Fprintf(w, "  comment: %s\n", faint(c))
	}
	for _, s := range x.other {
		fmt.Fprintf(w, "  %s\n", s)
	}

	for i, f := range doc.Frames {
		fmt.Fprintf(w, "  %s %v delay=%v disposal=%v",
			cyan(fmt.Sprintf("frame %d", i)), f.Bounds(), f.DelayDuration(), f.Disposal)
		if f.LocalColorTable != nil {
			fmt.Fprintf(w, " local=%d", f.LocalColorTable.Len())
		}
		if f.Interlaced {
			fmt.Fprint(w, " interlaced")
		}
		if f.Transparent {
			fmt.Fprintf(w, " transparent=%d", f.TransparentIndex)
		}
		if f.UserInput {
			fmt.Fprint(w, " user-input")
		}
		fmt.Fprintln(w)
	}
}

func writeFrames(dir, name string, doc *gif.Document) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	for i, f := range doc.Frames {
		path := filepath.Join(dir, fmt.Sprintf("%s-%03d.bmp", base, i))
		if err := writeBMP(path, f); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

func writeBMP(path string, f *gif.Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bmp.Encode(out, f.NRGBA()); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
