// hypersphere renders the Earth-Moon scene into the terminal and
// drops markers where the globe is clicked
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/shanebenlolo/hypersphere/audio"
	"github.com/shanebenlolo/hypersphere/constants"
	"github.com/shanebenlolo/hypersphere/engine"
	"github.com/shanebenlolo/hypersphere/render"
	"github.com/shanebenlolo/hypersphere/render/renderers"
	"github.com/shanebenlolo/hypersphere/scene"
	"github.com/shanebenlolo/hypersphere/systems"
)

var (
	fpsFlag    = flag.Int("fps", 30, "Target frames per second")
	detailFlag = flag.Float64("detail", 1.0, "Tessellation detail multiplier")
	muteFlag   = flag.Bool("mute", false, "Disable audio cues")
)

func main() {
	flag.Parse()

	fps := *fpsFlag
	if fps < 1 {
		fps = 30
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	// Restore the terminal before the panic reaches the user, or the
	// trace lands on a raw-mode screen
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "hypersphere crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	store := engine.NewStore()
	sc, err := scene.Build(store, scene.Config{Detail: *detailFlag})
	if err != nil {
		screen.Fini()
		log.Fatalf("build scene: %v", err)
	}

	var cues systems.AudioCues
	var sound *audio.SoundManager
	if !*muteFlag {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			// Silent run beats a dead one; the demo works without audio
			log.Printf("audio unavailable: %v", err)
		} else {
			cues = sound
			defer sound.Cleanup()
		}
	}

	cameraSys := systems.NewCameraSystem(store, sc.Camera)
	markerSys := systems.NewMarkerSystem(sc.Camera, sc.Earth, cues)
	systemList := []engine.System{
		cameraSys,
		systems.NewOrbitSystem(),
		systems.NewSpinSystem(),
		markerSys,
	}
	sort.Slice(systemList, func(i, j int) bool {
		return systemList[i].Priority() < systemList[j].Priority()
	})

	w, h := screen.Size()
	orch := render.NewOrchestrator(screen, w, h)
	hud := renderers.NewHUDRenderer()
	orch.Register(renderers.NewGlobeRenderer(), render.PriorityBodies)
	orch.Register(renderers.NewMarkerRenderer(), render.PriorityMarkers)
	orch.Register(hud, render.PriorityUI)

	events := make(chan tcell.Event, constants.EventQueueDepth)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	var (
		frame       int64
		fpsEstimate float64
		lastButtons tcell.ButtonMask
		lastTick    = time.Now()
	)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch tev := ev.(type) {
			case *tcell.EventKey:
				switch tev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					close(quit)
					return
				case tcell.KeyLeft:
					cameraSys.Enqueue(systems.CameraOrbitLeft)
				case tcell.KeyRight:
					cameraSys.Enqueue(systems.CameraOrbitRight)
				case tcell.KeyUp:
					cameraSys.Enqueue(systems.CameraOrbitUp)
				case tcell.KeyDown:
					cameraSys.Enqueue(systems.CameraOrbitDown)
				case tcell.KeyRune:
					switch tev.Rune() {
					case 'q':
						close(quit)
						return
					case '+', '=':
						cameraSys.Enqueue(systems.CameraZoomIn)
					case '-':
						cameraSys.Enqueue(systems.CameraZoomOut)
					case 'r':
						cameraSys.Enqueue(systems.CameraReset)
					case 'h':
						hud.Toggle()
					}
				}
			case *tcell.EventMouse:
				buttons := tev.Buttons()
				if buttons&tcell.Button1 != 0 && lastButtons&tcell.Button1 == 0 {
					x, y := tev.Position()
					markerSys.EnqueueClick(systems.Click{
						X: x, Y: y,
						W: w, H: h - render.HUDRows,
					})
				}
				lastButtons = buttons
			case *tcell.EventResize:
				w, h = tev.Size()
				orch.Resize(w, h)
			}
		case now := <-ticker.C:
			dt := now.Sub(lastTick)
			lastTick = now
			if s := dt.Seconds(); s > 0 {
				fpsEstimate = fpsEstimate*0.9 + (1.0/s)*0.1
			}

			for _, s := range systemList {
				s.Update(store, dt)
			}
			if err := markerSys.Err(); err != nil {
				panic(fmt.Sprintf("marker spawn: %v", err))
			}

			ctx := render.RenderContext{
				Store:       store,
				Camera:      sc.Camera,
				Earth:       sc.Earth,
				FPS:         fpsEstimate,
				FrameNumber: frame,
			}
			if last, ok := markerSys.LastPlaced(); ok {
				ctx.LastMark = &last
			}
			orch.RenderFrame(ctx)
			frame++
		}
	}
}
