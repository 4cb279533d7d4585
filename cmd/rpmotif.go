// Copyright © 2023-2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/rpmotif"
	"github.com/shenwei356/rpmotif/cluster"
	"github.com/shenwei356/rpmotif/report"
	"github.com/shenwei356/rpmotif/source"
	"github.com/shenwei356/xopen"
	"github.com/vbauerster/mpb/v5"
	"github.com/vbauerster/mpb/v5/decor"
)

var version = "0.1.0"

func main() {
	usage := fmt.Sprintf(`
This command finds recurring and noisy substrings (motifs) in a sequence
with the Random Projections algorithm.

Author: Wei Shen <shenwei356@gmail.com>
  Code: https://github.com/shenwei356/rpmotif

Version: v%s
Usage: %s [options] <input file>

Input formats (-f):
  csv    values of one column (-c, 0-based) of each line, split by -d
  raw    the whole file with line breaks removed
  fastx  concatenated sequences of all FASTA/Q records

Options/Flags:
`, version, filepath.Base(os.Args[0]))

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}

	def := rpmotif.DefaultOptions

	help := flag.Bool("h", false, "print help message")
	format := flag.String("f", source.DefaultOptions.Format, "input format: csv, raw, or fastx")
	column := flag.Int("c", source.DefaultOptions.Column, "0-based column index for csv")
	sep := flag.String("d", source.DefaultOptions.Separator, "column separator for csv")

	motifLen := flag.Int("L", def.MotifLength, "motif length")
	pErrors := flag.Int("e", def.PermittedErrors, "permitted errors of a motif instance")
	iterations := flag.Int("n", def.Iterations, "number of iterations (random projections)")
	quorum := flag.Int("Q", def.Quorum, "friends co-occurring more than Q times are close friends")
	kFactor := flag.Float64("k", def.KSizeFactor, "projection size, as a fraction of the motif length")
	scoring := flag.String("score", "add", `scoring: "add" for sqrt(friends)+close, "mul" for sqrt(friends)*close`)
	seed := flag.Int64("s", 0, "seed number, 0 for a random one")
	threads := flag.Int("j", runtime.NumCPU(), "number of threads")
	timeout := flag.Duration("timeout", 0, "abort if not finished in time, e.g., 10m, 0 for no limit")

	minSeqLen := flag.Int("min-seq-len", def.MinSeqLen, "minimum sequence length")
	minMotifLen := flag.Int("min-motif-len", def.MinMotifLength, "minimum motif length")
	maxMotifFrac := flag.Float64("max-motif-frac", def.MaxMotifLengthFrac, "maximum motif length, as a fraction of the sequence length")
	maxErrorFrac := flag.Float64("max-error-frac", def.MaxErrorFrac, "maximum permitted errors, as a fraction of the motif length")

	outFile := flag.String("o", "-", `output file, "-" for stdout, supporting .gz, .xz, .zst, .bz2`)
	top := flag.Int("top", 0, "only output the top N motifs, 0 for all")
	text := flag.Bool("text", false, "output motifs in plain text instead of TSV")
	header := flag.Bool("header", false, "output a header line")
	doCluster := flag.Bool("cluster", false, "output canonical motifs merged from mutual close friends")
	minSupport := flag.Int("min-support", cluster.DefaultOptions.MinSupport, "minimum support of canonical motifs")
	skipLowC := flag.Bool("skip-low-complexity", false, "skip motifs of low complexity, like AAAAAAAA or ACACACAC")
	dumpBuckets := flag.String("dump-buckets", "", "write buckets of all iterations to this file")
	dumpFriends := flag.String("dump-friends", "", "write friend lists to this file")

	quiet := flag.Bool("q", false, "do not print logs")
	noProgress := flag.Bool("no-progress", false, "do not show the progress bar")
	pfCPU := flag.Bool("pprof-cpu", false, "pprofile CPU")
	pfMEM := flag.Bool("pprof-mem", false, "pprofile memory")

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if *quiet {
		log.SetOutput(io.Discard)
	}

	file := flag.Arg(0)
	if file != "-" {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			checkError(fmt.Errorf("%s", err))
		}
	}

	opt := def
	opt.MotifLength = *motifLen
	opt.PermittedErrors = *pErrors
	opt.Iterations = *iterations
	opt.Quorum = *quorum
	opt.KSizeFactor = *kFactor
	opt.MinSeqLen = *minSeqLen
	opt.MinMotifLength = *minMotifLen
	opt.MaxMotifLengthFrac = *maxMotifFrac
	opt.MaxErrorFrac = *maxErrorFrac
	opt.Threads = *threads
	if *threads <= 0 {
		opt.Threads = runtime.NumCPU()
	}

	switch *scoring {
	case "add":
		opt.Score = rpmotif.AdditiveScore
	case "mul":
		opt.Score = rpmotif.MultiplicativeScore
	default:
		checkError(fmt.Errorf(`invalid value of -score: %s, available: "add", "mul"`, *scoring))
	}

	opt.Seed = *seed
	if opt.Seed == 0 {
		opt.Seed = time.Now().UnixNano()
	}

	// -----------------------------------------------

	// go tool pprof -http=:8080 cpu.pprof
	if *pfCPU {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if *pfMEM {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	sTime := time.Now()

	seq.ValidateSeq = false
	data, err := source.Read(file, &source.Options{
		Format:    *format,
		Column:    *column,
		Separator: *sep,
	})
	checkError(err)

	log.Printf("read a sequence of %d symbols from %s in %s", len(data), file, time.Since(sTime))

	// fail fast
	checkError(opt.Validate(len(data)))

	if *dumpBuckets != "" {
		opt.OnBuckets = func(maps []rpmotif.BucketMap) {
			checkError(writeTo(*dumpBuckets, func(w io.Writer) error {
				return report.DumpBuckets(w, maps)
			}))
			log.Printf("buckets saved to %s", *dumpBuckets)
		}
	}
	if *dumpFriends != "" {
		opt.OnFriendLists = func(friends rpmotif.FriendLists) {
			checkError(writeTo(*dumpFriends, func(w io.Writer) error {
				return report.DumpFriendLists(w, friends)
			}))
			log.Printf("friend lists saved to %s", *dumpFriends)
		}
	}

	var pbs *mpb.Progress
	var bar *mpb.Bar
	if !*quiet && !*noProgress {
		pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(os.Stderr))
		name := "iterations:"
		bar = pbs.AddBar(int64(opt.Iterations),
			mpb.PrependDecorators(
				decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DidentRight}),
				decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
			),
			mpb.AppendDecorators(
				decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
				decor.OnComplete(decor.AverageETA(decor.ET_STYLE_GO), "done"),
			),
		)
		opt.Progress = func() { bar.Increment() }
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	log.Printf("searching motifs of length %d with %d iterations, k: %d, quorum: %d, seed: %d, threads: %d",
		opt.MotifLength, opt.Iterations, opt.K(), opt.Quorum, opt.Seed, opt.Threads)
	sTime = time.Now()

	motifs, err := rpmotif.Discover(ctx, data, &opt)
	if pbs != nil {
		if err != nil {
			bar.Abort(true)
		}
		pbs.Wait()
	}
	checkError(err)

	log.Printf("finished searching in %s, %d motif candidates, digest: %016x",
		time.Since(sTime), len(motifs), report.Digest(motifs))

	if *skipLowC {
		n := len(motifs)
		motifs = rpmotif.FilterLowComplexity(motifs)
		log.Printf("%d motifs of low complexity skipped", n-len(motifs))
	}

	// -----------------------------------------------

	outfh, err := xopen.Wopen(*outFile)
	checkError(err)
	defer outfh.Close()

	if *doCluster {
		groups := cluster.Cluster(motifs, &cluster.Options{MinSupport: *minSupport})
		log.Printf("%d canonical motifs with support >= %d", len(groups), *minSupport)

		checkError(report.WriteGroups(outfh, groups, *header))
		return
	}

	if *text {
		checkError(report.WriteText(outfh, motifs, *top))
	} else {
		checkError(report.WriteTSV(outfh, motifs, *top, *header))
	}
}

func writeTo(file string, fn func(w io.Writer) error) error {
	outfh, err := xopen.Wopen(file)
	if err != nil {
		return err
	}
	defer outfh.Close()

	return fn(outfh)
}

func checkError(err error) {
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
