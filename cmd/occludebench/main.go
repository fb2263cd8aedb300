// occludebench - terminal occlusion-culling benchmark viewer.
//
// Loads a glTF/GLB mesh as an occluder, orbits a camera around it with
// spring-damped input, and renders the resulting depth buffer live in the
// terminal alongside a population of probe boxes culled against it each
// frame.
//
// Controls:
//
//	A/D         - Orbit left/right
//	W/S         - Orbit up/down
//	+/-         - Zoom in/out
//	Space       - Random spin impulse
//	R           - Reset orbit
//	P           - Dump depth/diff PNGs to the output directory
//	Esc/Ctrl+C  - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/occlude/pkg/math3d"
	"github.com/taigrr/occlude/pkg/models"
	"github.com/taigrr/occlude/pkg/occlude"
)

var (
	targetFPS  = flag.Int("fps", 30, "Target FPS")
	probeCount = flag.Int("probes", 24, "Number of probe boxes to cull each frame")
	outDir     = flag.String("out", ".", "Directory for PNG dumps (P key)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "occludebench - terminal occlusion-culling benchmark viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: occludebench [options] <model.glb|model.gltf>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// orbitAxis mirrors trophy's RotationAxis: a position driven by a velocity
// that harmonica springs back toward zero, so input impulses decay
// smoothly instead of snapping to a stop.
type orbitAxis struct {
	Position float64
	Velocity float64
	spring   harmonica.Spring
	accel    float64
}

func newOrbitAxis(fps int) orbitAxis {
	return orbitAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *orbitAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
}

func (a *orbitAxis) Impulse(d float64) { a.Velocity += d }

func run(modelPath string) error {
	ext := strings.ToLower(filepath.Ext(modelPath))
	if ext != ".glb" && ext != ".gltf" {
		return fmt.Errorf("unsupported model format %q (use .glb or .gltf)", ext)
	}

	loader := models.NewGLTFLoader()
	mesh, err := loader.Load(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	mesh.CalculateBounds()
	center := mesh.Center()
	size := mesh.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim > 0 {
		scale := 2.0 / maxDim
		transform := math3d.Scale(math3d.V3(scale, scale, scale)).Mul(math3d.Translate(center.Scale(-1)))
		mesh.Transform(transform)
	}

	occ := newMeshOccluder(mesh)

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	fbWidth, fbHeight := width, height*2

	camera, err := occlude.NewPerspectiveCamera(math.Pi/3, float64(fbWidth)/float64(fbHeight), 0.1, 100)
	if err != nil {
		return fmt.Errorf("new camera: %w", err)
	}
	camDistance := 4.0
	camera.SetPosition(math3d.V3(0, 0, camDistance))
	camera.LookAt(math3d.Zero3())

	renderer, err := occlude.NewRenderer(camera, fbWidth, fbHeight, nil)
	if err != nil {
		return fmt.Errorf("new renderer: %w", err)
	}

	probes := randomProbes(*probeCount)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	yaw := newOrbitAxis(*targetFPS)
	pitch := newOrbitAxis(*targetFPS)
	const impulseStrength = 0.08
	var torque struct{ yaw, pitch float64 }

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				fbWidth, fbHeight = width, height*2
				camera.SetAspectRatio(float64(fbWidth) / float64(fbHeight))
				renderer, err = occlude.NewRenderer(camera, fbWidth, fbHeight, nil)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("a", "left"):
					torque.yaw = -impulseStrength
				case ev.MatchString("d", "right"):
					torque.yaw = impulseStrength
				case ev.MatchString("w", "up"):
					torque.pitch = -impulseStrength
				case ev.MatchString("s", "down"):
					torque.pitch = impulseStrength
				case ev.MatchString("+", "="):
					camDistance = math.Max(1, camDistance-0.3)
				case ev.MatchString("-", "_"):
					camDistance = math.Min(20, camDistance+0.3)
				case ev.MatchString("space"):
					yaw.Impulse((rand.Float64() - 0.5) * 2)
					pitch.Impulse((rand.Float64() - 0.5) * 2)
				case ev.MatchString("r"):
					yaw.Position, yaw.Velocity = 0, 0
					pitch.Position, pitch.Velocity = 0, 0
					camDistance = 4.0
				case ev.MatchString("p"):
					dumpDiagnostics(renderer, *outDir)
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
					torque.yaw = 0
				case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
					torque.pitch = 0
				}
			}
		}
	}()

	targetDuration := time.Second / time.Duration(*targetFPS)
	var frame strings.Builder
	var spinAngle float64
	const spinRate = 0.4 // radians/sec

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		start := time.Now()

		yaw.Impulse(torque.yaw)
		pitch.Impulse(torque.pitch)
		yaw.Update()
		pitch.Update()

		camera.SetRotation(pitch.Position, yaw.Position, 0)
		camera.SetPosition(camera.Forward().Scale(-camDistance))
		camera.LookAt(math3d.Zero3())

		spinAngle += spinRate / float64(*targetFPS)
		occ.SetTransform(math3d.RotateY(spinAngle))

		if err := renderer.Render([]occlude.Occluder{occ}); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		visible, err := renderer.Cull(probes)
		if err != nil {
			return fmt.Errorf("cull: %w", err)
		}

		img := renderer.DepthToColor()
		frame.Reset()
		rows := fbHeight / 2
		if rows > height-1 {
			rows = height - 1
		}
		renderDepthFrame(&frame, img, width, rows)
		fmt.Fprintf(&frame, "\r\noccludebench  fps target %d  occluders %d tris  probes %d/%d visible  warnings %d\x1b[K",
			*targetFPS, renderer.Stats.OccluderTrianglesDrawn, countVisible(visible), len(probes), renderer.Stats.NumericWarnings)
		fmt.Fprint(os.Stdout, frame.String())

		elapsed := time.Since(start)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

func countVisible(visible []bool) int {
	n := 0
	for _, v := range visible {
		if v {
			n++
		}
	}
	return n
}

// randomProbes scatters small boxes around the occluder so Cull() always
// has a mixed population of trivially-visible, occluded, and borderline
// candidates to exercise each frame.
func randomProbes(n int) []occlude.Candidate {
	probes := make([]occlude.Candidate, n)
	for i := range probes {
		pos := math3d.V3(
			(rand.Float64()-0.5)*6,
			(rand.Float64()-0.5)*6,
			(rand.Float64()-0.5)*6,
		)
		probes[i] = occlude.Candidate{
			Kind:      occlude.BoundBox,
			Transform: math3d.Translate(pos),
			Min:       math3d.V3(-0.05, -0.05, -0.05),
			Max:       math3d.V3(0.05, 0.05, 0.05),
		}
	}
	return probes
}

func dumpDiagnostics(r *occlude.Renderer, dir string) {
	img := r.DepthToColor()
	_ = occlude.SavePNG(filepath.Join(dir, "occludebench-depth.png"), img)

	// No external renderer is available to diff against in this demo, so
	// use an all-clear reference image: every pixel the software renderer
	// found occluder coverage for shows up highlighted, which is exactly
	// what Diff is for when checking a render against a blank frame.
	clear := image.NewUniform(color.RGBA{A: 255})
	diff := r.Diff(clear, clear)
	_ = occlude.SavePNG(filepath.Join(dir, "occludebench-diff.png"), diff)
}
