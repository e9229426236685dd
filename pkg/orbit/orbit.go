// Package orbit iterates the folding map from a seed quadrilateral and
// collects the trajectory either as a flat point cloud or as whole frames.
package orbit

import (
	"errors"
	"fmt"

	"github.com/willbeason/folding/pkg/geometry"
	"github.com/willbeason/folding/pkg/transforms"
)

// ErrNegativeIterations is returned when asked for fewer than zero steps.
var ErrNegativeIterations = errors.New("iterations must be non-negative")

func validate(iterations int) error {
	if iterations < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeIterations, iterations)
	}
	return nil
}

// Iterate calls visit with the seed and then with the result of each of
// iterations applications of t, in order. The step counter runs from 0 to
// iterations inclusive.
func Iterate(seed geometry.Quad, t transforms.Transform, iterations int, visit func(step int, q geometry.Quad)) error {
	err := validate(iterations)
	if err != nil {
		return err
	}

	q := seed
	visit(0, q)
	for step := 1; step <= iterations; step++ {
		q = t.Next(q)
		visit(step, q)
	}

	return nil
}

// CollectOrbit returns every vertex visited by folding Seed(mu, nu)
// iterations times, four per step starting with the seed.
//
// The result always has 4*(iterations+1) points.
func CollectOrbit(mu, nu float64, iterations int) ([]complex128, error) {
	err := validate(iterations)
	if err != nil {
		return nil, err
	}

	points := make([]complex128, 0, 4*(iterations+1))
	err = Iterate(transforms.Seed(mu, nu), transforms.Fold{}, iterations, func(_ int, q geometry.Quad) {
		points = append(points, q[:]...)
	})
	if err != nil {
		return nil, err
	}

	return points, nil
}

// CollectFrames returns the seed followed by the quadrilateral after each
// fold. Frame k is the state after k folds.
func CollectFrames(mu, nu float64, iterations int) ([]geometry.Quad, error) {
	err := validate(iterations)
	if err != nil {
		return nil, err
	}

	frames := make([]geometry.Quad, 0, iterations+1)
	err = Iterate(transforms.Seed(mu, nu), transforms.Fold{}, iterations, func(_ int, q geometry.Quad) {
		frames = append(frames, q)
	})
	if err != nil {
		return nil, err
	}

	return frames, nil
}

// Flatten concatenates the vertices of frames in order.
func Flatten(frames []geometry.Quad) []complex128 {
	points := make([]complex128, 0, 4*len(frames))
	for _, q := range frames {
		points = append(points, q[:]...)
	}
	return points
}
