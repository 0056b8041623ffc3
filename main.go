// Render a red triangle on a green background, rotating it a little every frame.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/goxjs/gl"
	"github.com/goxjs/glfw"
	"github.com/shurcooL/triangle/spin"
)

var (
	pivotFlag   = spin.PivotCentroid
	stepFlag    = flag.Float64("step", spin.DefaultStep, "Rotation per frame, in radians.")
	widthFlag   = flag.Int("width", 640, "Window width.")
	heightFlag  = flag.Int("height", 480, "Window height.")
	verboseFlag = flag.Bool("verbose", false, "Log OpenGL details and the frame rate.")
)

func init() {
	runtime.LockOSThread()
	flag.Var(&pivotFlag, "pivot", "Point to rotate about: centroid or origin.")
}

func main() {
	flag.Parse()
	if err := checkFlags(*widthFlag, *heightFlag, *stepFlag); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	err := run(spin.NewScene(spin.DefaultTriangle(), pivotFlag, *stepFlag))
	if err != nil {
		log.Fatalln(err)
	}
}

// checkFlags reports flag values the frame loop cannot work with.
// A non-finite step would turn every vertex into NaN on the first frame.
func checkFlags(width, height int, step float64) error {
	switch {
	case width <= 0 || height <= 0:
		return fmt.Errorf("invalid window size %dx%d", width, height)
	case math.IsNaN(step) || math.IsInf(step, 0):
		return fmt.Errorf("invalid step %v, want a finite number of radians", step)
	}
	return nil
}

func run(scene spin.Scene) error {
	err := glfw.Init(gl.ContextWatcher)
	if err != nil {
		return fmt.Errorf("glfw.Init: %v", err)
	}
	defer glfw.Terminate()

	window, err := glfw.CreateWindow(*widthFlag, *heightFlag, "Spinning Triangle", nil, nil)
	if err != nil {
		return fmt.Errorf("glfw.CreateWindow: %v", err)
	}
	window.MakeContextCurrent()

	if *verboseFlag {
		log.Printf("OpenGL: %s %s %s.", gl.GetString(gl.VENDOR), gl.GetString(gl.RENDERER), gl.GetString(gl.VERSION))
		log.Printf("GLSL: %s.", gl.GetString(gl.SHADING_LANGUAGE_VERSION))
		log.Printf("Rotating about %v (%v), %v rad per frame.", scene.Pivot, pivotFlag, scene.Step)
	}

	framebufferSizeCallback := func(_ *glfw.Window, framebufferSize0, framebufferSize1 int) {
		gl.Viewport(0, 0, framebufferSize0, framebufferSize1)
	}
	{
		var framebufferSize [2]int
		framebufferSize[0], framebufferSize[1] = window.GetFramebufferSize()
		framebufferSizeCallback(window, framebufferSize[0], framebufferSize[1])
	}
	window.SetFramebufferSizeCallback(framebufferSizeCallback)

	r, err := newRenderer()
	if err != nil {
		return err
	}
	defer r.Release()

	var second <-chan time.Time
	if *verboseFlag {
		second = time.Tick(time.Second)
	}
	var frames int

	p := newPacer(frameInterval, time.Now())
	for !window.ShouldClose() {
		p.Wait()

		scene = scene.Update()
		r.Draw(scene.Triangle)

		window.SwapBuffers()
		glfw.PollEvents()

		frames++
		select {
		case <-second:
			log.Printf("%d fps, frame %d.", frames, scene.Frame)
			frames = 0
		default:
		}
	}
	return nil
}
