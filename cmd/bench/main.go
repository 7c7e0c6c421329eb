package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/strkit/suffix"
)

type variant struct {
	name   string
	config func(*suffix.IndexBuilder) *suffix.IndexBuilder
}

var variants = map[string]variant{
	"full":          {name: "full", config: func(b *suffix.IndexBuilder) *suffix.IndexBuilder { return b }},
	"no_lcp":        {name: "no_lcp", config: func(b *suffix.IndexBuilder) *suffix.IndexBuilder { return b.SkipLCP() }},
	"no_doc":        {name: "no_doc", config: func(b *suffix.IndexBuilder) *suffix.IndexBuilder { return b.SkipDocListing() }},
	"no_lcp_no_doc": {name: "no_lcp_no_doc", config: func(b *suffix.IndexBuilder) *suffix.IndexBuilder { return b.SkipLCP().SkipDocListing() }},
	"log_map":       {name: "log_map", config: func(b *suffix.IndexBuilder) *suffix.IndexBuilder { return b.IndexMapKind(suffix.MapKindLog) }},
}

type densityType string

const (
	densityLow  densityType = "low"
	densityHigh densityType = "high"
)

type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{})}
	go func() {
		for {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			if m.Alloc > mm.maxAlloc {
				mm.maxAlloc = m.Alloc
			}
			select {
			case <-mm.stop:
				return
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
	return mm
}

func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	return mm.maxAlloc
}

func getCurrentAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func measureBuild(strs []string, config func(*suffix.IndexBuilder) *suffix.IndexBuilder) (time.Duration, uint64, uint64, *suffix.Index) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	builder := suffix.NewIndexBuilder(strs)
	builder = config(builder)
	ix, err := builder.Build()
	if err != nil {
		panic(err)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc, ix
}

func measureQuery(ix *suffix.Index, patterns []string, k int) (time.Duration, uint64, uint64) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	for _, p := range patterns {
		_ = ix.FindKMatches(p, k)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc
}

func measureLCS(strs []string, mapKind string) (time.Duration, uint64, uint64) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	m, err := suffix.NewIndexMap(mapKind)
	if err != nil {
		panic(err)
	}
	if _, err := suffix.LongestCommonSubstringsWithMap(strs, m); err != nil {
		panic(err)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc
}

func genStrings(r *rand.Rand, m, w, p int, density densityType) ([]string, string) {
	var commonStr string
	strs := make([]string, m)
	if density == densityHigh {
		common := make([]byte, p)
		for j := range common {
			common[j] = byte(r.Intn(26) + 'a')
		}
		commonStr = string(common)
		for i := range strs {
			str := make([]byte, w)
			for j := range str {
				str[j] = byte(r.Intn(26) + 'a')
			}
			insertPos := r.Intn(w - p + 1)
			copy(str[insertPos:], common)
			strs[i] = string(str)
		}
	} else {
		for i := range strs {
			str := make([]byte, w)
			for j := range str {
				str[j] = byte(r.Intn(26) + 'a')
			}
			strs[i] = string(str)
		}
	}
	return strs, commonStr
}

func runBenchmark(v variant, M, W, P, K, Q, runs int, density densityType, lcsMap string) {
	for run := 0; run < runs; run++ {
		r := rand.New(rand.NewSource(int64(run)))
		strs, commonStr := genStrings(r, M, W, P, density)
		bt, bp, ba, ix := measureBuild(strs, v.config)
		patterns := make([]string, Q)
		for i := range patterns {
			if density == densityHigh {
				patterns[i] = commonStr // All queries use the common pattern
			} else {
				strIdx := r.Intn(M)
				start := r.Intn(W - P + 1)
				patterns[i] = strs[strIdx][start : start+P]
			}
		}
		qt, qp, qa := measureQuery(ix, patterns, K)
		lt, lp, la := measureLCS(strs, lcsMap)
		fmt.Printf("%s,%d,%d,%d,%d,%d,%s,%.0f,%d,%d,%.0f,%d,%d,%.0f,%d,%d\n",
			v.name, M, W, P, K, Q, density,
			float64(bt.Nanoseconds()), bp, ba,
			float64(qt.Nanoseconds()), qp, qa,
			float64(lt.Nanoseconds()), lp, la)
	}
}

func main() {
	variantName := flag.String("variant", "", "Variant to benchmark")
	m := flag.Int("m", 0, "Number of strings M")
	w := flag.Int("w", 0, "String length W")
	p := flag.Int("p", 0, "Pattern length P")
	k := flag.Int("k", 0, "Number of matches K")
	q := flag.Int("q", 0, "Number of queries Q")
	runs := flag.Int("runs", 3, "Number of runs for averaging")
	d := flag.String("d", "low", "Density: low or high")
	lcsMap := flag.String("lcsmap", suffix.MapKindLog, "StringIndexMap kind for the LCS pass")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *variantName == "" || *m <= 0 || *w <= 0 || *p <= 0 || *k <= 0 || *q <= 0 || *p > *w {
		fmt.Println("Usage: go run main.go -variant=<variant> -m=<M> -w=<W> -p=<P> -k=<K> -q=<Q> -d=<density> [-runs=<runs>]")
		fmt.Println("Available variants:", variants)
		os.Exit(1)
	}

	v, ok := variants[*variantName]
	if !ok {
		fmt.Println("Invalid variant:", *variantName)
		os.Exit(1)
	}

	runBenchmark(v, *m, *w, *p, *k, *q, *runs, densityType(*d), *lcsMap)
}
