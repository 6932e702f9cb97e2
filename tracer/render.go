package tracer

import (
	"fmt"
	"image"
	"image/color"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/SteveThePug/rust-raytracer-sub000/log"
	"github.com/SteveThePug/rust-raytracer-sub000/scene"
)

var logger = log.New("tracer")

type Options struct {
	// Frame dims.
	FrameW int
	FrameH int

	// Number of parallel workers; 0 selects one per CPU.
	Workers int
}

// Render produces a frame by shading one primary ray per pixel. Rows are
// distributed to workers over a channel; the scene is frozen for the duration
// of the pass, so workers share it without synchronization.
func Render(sc *scene.Scene, cam *scene.Camera, opts Options) (*image.RGBA, FrameStats, error) {
	var stats FrameStats
	if opts.FrameW <= 0 || opts.FrameH <= 0 {
		return nil, stats, fmt.Errorf("tracer: invalid frame dimensions %dx%d", opts.FrameW, opts.FrameH)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > opts.FrameH {
		workers = opts.FrameH
	}
	logger.Noticef("rendering %dx%d frame with %d workers", opts.FrameW, opts.FrameH, workers)

	frame := image.NewRGBA(image.Rect(0, 0, opts.FrameW, opts.FrameH))
	rows := make(chan int)
	statCh := make(chan WorkerStat, workers)

	start := time.Now()
	var wg sync.WaitGroup
	for id := 0; id < workers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			stat := WorkerStat{Id: id}
			workerStart := time.Now()

			for y := range rows {
				for x := 0; x < opts.FrameW; x++ {
					colour := ShadeRay(sc, cam.PrimaryRay(x, y, opts.FrameW, opts.FrameH))
					frame.SetRGBA(x, y, color.RGBA{
						R: uint8(colour.X * 255),
						G: uint8(colour.Y * 255),
						B: uint8(colour.Z * 255),
						A: 255,
					})
				}
				stat.Rows++
			}

			stat.RenderTime = time.Since(workerStart)
			statCh <- stat
		}(id)
	}

	for y := 0; y < opts.FrameH; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()
	close(statCh)

	for stat := range statCh {
		stats.Workers = append(stats.Workers, stat)
	}
	sort.Slice(stats.Workers, func(i, j int) bool {
		return stats.Workers[i].Id < stats.Workers[j].Id
	})
	stats.RenderTime = time.Since(start)

	logger.Noticef("frame rendered in %v", stats.RenderTime)
	return frame, stats, nil
}
