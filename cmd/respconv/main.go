// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command respconv is the Streaming Converter's CLI driver.
//
// With no arguments it runs a built-in self-test: a handful of literal
// TP frames are converted in memory and a Comparator measurement is
// printed for each. With --input/--output it streams a file of
// concatenated TP frames to a file of concatenated BP frames.
//
// Exit codes: 0 success, 1 I/O or fatal error, 2 argument error.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"code.hybscloud.com/respcodec"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("respconv", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	input := fs.String("input", "", "path to a file of concatenated TP frames")
	output := fs.String("output", "", "path to write concatenated BP frames to")
	muxID := fs.Uint("mux-id", 0, "mux_id stamped into every BP frame")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *input == "" && *output == "" {
		selfTest()
		return 0
	}
	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "respconv: --input and --output must both be given")
		return 2
	}

	in, err := os.Open(*input)
	if err != nil {
		log.Printf("respconv: open input: %v", err)
		return 1
	}
	defer in.Close()

	out, err := os.Create(*output)
	if err != nil {
		log.Printf("respconv: create output: %v", err)
		return 1
	}
	defer out.Close()

	conv := respcodec.NewConverter(respcodec.WithMuxID(uint16(*muxID)))
	tally, err := conv.Convert(in, out)
	printTally(tally)
	if err != nil {
		log.Printf("respconv: conversion aborted: %v", err)
		return 1
	}
	return 0
}

func printTally(t respcodec.Tally) {
	fmt.Printf("frames in=%d out=%d malformed=%d incomplete-at-eof=%d tp-bytes=%d bp-bytes=%d elapsed=%s\n",
		t.FramesIn, t.FramesOut, t.Malformed, t.IncompleteAtEOF, t.TPBytes, t.BPBytes, t.Elapsed)
}

var selfTestFrames = []respcodec.Command{
	respcodec.NewCommand("GET", [][]byte{[]byte("mykey")}),
	respcodec.NewCommand("SET", [][]byte{[]byte("foo"), []byte("hello")}),
	respcodec.NewCommand("MGET", [][]byte{[]byte("k1"), []byte("k2"), []byte("k3")}),
	respcodec.NewCommand("PUBLISH", [][]byte{[]byte("news"), []byte("hello")}),
	respcodec.NewCommand("UNKNOWNCMD", [][]byte{[]byte("arg")}),
}

func selfTest() {
	runID := uuid.New()
	fmt.Printf("respconv self-test run=%s\n", runID)
	for _, cmd := range selfTestFrames {
		tp := respcodec.EncodeTP(cmd)
		bp, err := respcodec.Serialize(cmd, 0)
		if err != nil {
			fmt.Printf("%-12s ERROR: %v\n", cmd.Verb, err)
			continue
		}
		m := respcodec.Compare(cmd, tp, bp)
		fmt.Printf("%-12s tp=%d bp=%d delta=%d (%.1f%%) tp_hex=%s bp_hex=%s\n",
			m.Verb, m.TPSize, m.BPSize, m.Delta, m.DeltaPct, m.TPPreview, m.BPPreview)
	}
}
