package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/storeparty/stores"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	itersKey   = "iterations"
	profileKey = "profile"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure synchronous fan-out latency of the stores primitives",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Samples per benchmark cell",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "CPU profile output path",
				Value: "default.pgo",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

var (
	ww = []int{1, 10, 100}
	hh = []int{1, 10, 100}
	kk = []int{1, 10, 100, 1_000}
)

func addOne(v int) int { return v + 1 }

func run(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Uint(itersKey))

	f, err := os.Create(cmd.String(profileKey))
	if err != nil {
		return err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		return err
	}
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkPropagate(iters, true)
	benchmarkFanout(iters, true)
	benchmarkDedup(iters, true)
	return nil
}

// benchmarkPropagate measures one Set against w derived chains of depth h.
func benchmarkPropagate(iters int, shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Observable -> Derived propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := stores.NewObservable(1)
			for i := 0; i < w; i++ {
				var last stores.Readable[int] = src
				for j := 0; j < h; j++ {
					last = stores.Derive1(last, addOne)
				}
				last.Listen(func() {})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Set(src.Get() + 1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkFanout measures one Set against k direct listeners.
func benchmarkFanout(iters int, shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Observable fan-out")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, k := range kk {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		src := stores.NewObservable(0)
		sink := 0
		for i := 0; i < k; i++ {
			src.Subscribe(func(v int) { sink += v })
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			src.Set(i)
			tach.AddTime(time.Since(start))
		}
		_ = sink

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("fanout: %d listeners", k),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkDedup measures Set through a Deduped where half the writes are
// redundant and suppressed.
func benchmarkDedup(iters int, shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Deduped pass-through")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, k := range kk {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		deduped := stores.NewDeduped(0)
		sink := 0
		for i := 0; i < k; i++ {
			deduped.Subscribe(func(v int) { sink += v })
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			deduped.Set(i / 2) // every other write is a no-op
			tach.AddTime(time.Since(start))
		}
		_ = sink

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("dedup 50%%: %d listeners", k),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
