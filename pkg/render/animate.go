package render

import (
	"context"
	"errors"
	"image"
	"image/color/palette"
	"image/gif"
	"runtime"
	"sync"
	"time"

	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/willbeason/folding/pkg/geometry"
)

// ErrNoFrames is returned when asked to animate an empty frame sequence.
var ErrNoFrames = errors.New("no frames to animate")

// Rasterize draws p onto a square image with side length opts.Size.
func Rasterize(p *plot.Plot, opts Options) image.Image {
	c := vgimg.New(opts.Size, opts.Size)
	p.Draw(draw.New(c))
	return c.Image()
}

// paletted dithers img onto a fixed palette for GIF encoding.
func paletted(img image.Image) *image.Paletted {
	b := img.Bounds()
	dst := image.NewPaletted(b, palette.Plan9)
	xdraw.FloydSteinberg.Draw(dst, b, img, b.Min)
	return dst
}

// delay converts a frame interval to GIF delay units of 10ms, never less
// than one unit.
func delay(interval time.Duration) int {
	d := int(interval / (10 * time.Millisecond))
	if d < 1 {
		return 1
	}
	return d
}

// Animate renders each frame with FramePlot and assembles a looping GIF.
//
// Frames are rendered in parallel, one worker per CPU. The GIF frames are
// in the same order as frames regardless of which worker drew them.
func Animate(ctx context.Context, frames []geometry.Quad, backdrop []complex128, opts Options) (*gif.GIF, error) {
	err := opts.Validate()
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	kChannel := make(chan int)

	go func() {
		defer close(kChannel)
		for k := range frames {
			select {
			case kChannel <- k:
			case <-ctx.Done():
				return
			}
		}
	}()

	images := make([]*image.Paletted, len(frames))

	var errOnce sync.Once
	var renderErr error

	parallel := runtime.NumCPU()

	wg := sync.WaitGroup{}
	wg.Add(parallel)
	for i := 0; i < parallel; i++ {
		go func() {
			defer wg.Done()
			for k := range kChannel {
				p, err := FramePlot(frames[k], k, backdrop, opts)
				if err != nil {
					errOnce.Do(func() {
						renderErr = err
						cancel()
					})
					continue
				}

				images[k] = paletted(Rasterize(p, opts))
			}
		}()
	}

	wg.Wait()

	if renderErr != nil {
		return nil, renderErr
	}
	// Frames may be missing if the parent context was cancelled.
	err = ctx.Err()
	if err != nil {
		return nil, err
	}

	anim := &gif.GIF{
		Image: images,
		Delay: make([]int, len(images)),
	}
	d := delay(opts.Interval)
	for i := range anim.Delay {
		anim.Delay[i] = d
	}

	return anim, nil
}
