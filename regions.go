package mandelbrot

// Viewpoint is a named center+scale starting position for the viewport.
type Viewpoint struct {
	Name             string
	CenterX, CenterY float64
	Scale            float64
}

// Home is the default starting viewport, framing the whole set.
var Home = Viewpoint{Name: "home", CenterX: 0, CenterY: 0, Scale: 1.5}

// Classic regions / landmarks in the Mandelbrot set, usable as starting
// viewports for the viewer and the offline renderer.
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Viewpoint{
		Name:    "seahorse",
		CenterX: -0.75,
		CenterY: 0.10,
		Scale:   0.05,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Viewpoint{
		Name:    "elephant",
		CenterX: -1.80,
		CenterY: -0.06,
		Scale:   0.04,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Viewpoint{
		Name:    "minibrot",
		CenterX: -0.74275,
		CenterY: 0.13175,
		Scale:   0.00075,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Viewpoint{
		Name:    "triplespiral",
		CenterX: -0.7465,
		CenterY: 0.0965,
		Scale:   0.0015,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Viewpoint{
		Name:    "dragon",
		CenterX: -0.7375,
		CenterY: 0.1825,
		Scale:   0.0025,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Viewpoint{
		Name:    "minispiral",
		CenterX: -1.73825,
		CenterY: -0.02275,
		Scale:   0.00075,
	}
)

// Viewpoints lists every named starting position.
var Viewpoints = []Viewpoint{
	Home,
	SeahorseValley,
	ElephantValley,
	SpiralMinibrot,
	TripleSpiral,
	ValleyOfTheDragon,
	MinibrotInMiniSpiral,
}

// LookupViewpoint finds a named viewpoint.
func LookupViewpoint(name string) (Viewpoint, bool) {
	for _, v := range Viewpoints {
		if v.Name == name {
			return v, true
		}
	}
	return Viewpoint{}, false
}

// Viewport builds a viewport at this viewpoint, rational when exact is
// set and float64 otherwise. The numeric representation is fixed for the
// life of the viewport.
func (vp Viewpoint) Viewport(exact bool) Viewport {
	if exact {
		return NewRatViewport(vp.Scale, vp.CenterX, vp.CenterY)
	}
	return NewFloatViewport(vp.Scale, vp.CenterX, vp.CenterY)
}
