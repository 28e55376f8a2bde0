//go:build !headless

// scope_backend_ebiten.go - Ebiten waveform scope for the DDS outputs

/*
▓█████▄ ▓█████▄   ██████    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▒██▀ ██▌▒██▀ ██▌▒██    ▒    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
░██   █▌░██   █▌░ ▓██▄      ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░▓█▄   ▌░▓█▄   ▌  ▒   ██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░▒████▓ ░▒████▓ ▒██████▒▒   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
 ▒▒▓  ▒  ▒▒▓  ▒ ▒ ▒▓▒ ▒ ░   ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ░ ▒  ▒  ░ ▒  ▒ ░ ░▒  ░ ░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ░ ░  ░  ░ ░  ░ ░  ░  ░        ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
   ░       ░          ░        ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/DDSEngine
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	scopeWidth  = 640
	scopeHeight = 480
	scopeBarH   = 18
)

var (
	scopeRealColor = color.RGBA{0x40, 0xE0, 0x60, 0xFF}
	scopeImagColor = color.RGBA{0x40, 0xA0, 0xFF, 0xFF}
	scopeGridColor = color.RGBA{0x30, 0x30, 0x30, 0xFF}
)

// ScopeView renders the captured output frames as one quadrature trace
// pane per channel, with a register readback bar along the bottom.
type ScopeView struct {
	capture *FrameCapture
	port    *ControlPort
	core    *SignalCore

	window      *ebiten.Image
	frameBuffer []byte
	bufferMutex sync.Mutex
	running     bool
	done        chan struct{}
}

func NewScopeView(capture *FrameCapture, port *ControlPort, core *SignalCore) (*ScopeView, error) {
	return &ScopeView{
		capture:     capture,
		port:        port,
		core:        core,
		frameBuffer: make([]byte, scopeWidth*scopeHeight*4),
		done:        make(chan struct{}),
	}, nil
}

func (sv *ScopeView) Start() error {
	if sv.running {
		return nil
	}
	sv.running = true
	ebiten.SetWindowSize(scopeWidth, scopeHeight)
	ebiten.SetWindowTitle("DDS Engine (c) 2024 - 2026 Zayn Otley")
	ebiten.SetVsyncEnabled(true)

	go func() {
		defer func() {
			sv.running = false
			select {
			case <-sv.done:
			default:
				close(sv.done)
			}
		}()
		if err := ebiten.RunGame(sv); err != nil && err != ebiten.Termination {
			fmt.Printf("Ebiten error: %v\n", err)
		}
	}()
	return nil
}

func (sv *ScopeView) Stop() error {
	sv.running = false
	return nil
}

func (sv *ScopeView) Done() <-chan struct{} {
	return sv.done
}

func (sv *ScopeView) Update() error {
	if ebiten.IsWindowBeingClosed() || !sv.running {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (sv *ScopeView) Draw(screen *ebiten.Image) {
	if sv.window == nil {
		sv.window = ebiten.NewImage(scopeWidth, scopeHeight)
	}

	sv.bufferMutex.Lock()
	sv.renderTraces()
	sv.window.WritePixels(sv.frameBuffer)
	sv.bufferMutex.Unlock()
	screen.DrawImage(sv.window, nil)

	sv.drawStatusBar(screen)
}

func (sv *ScopeView) Layout(_, _ int) (int, int) {
	return scopeWidth, scopeHeight
}

// renderTraces rasterizes the capture window into the framebuffer: one
// horizontal pane per channel, real and imaginary plotted over the same
// midline.
func (sv *ScopeView) renderTraces() {
	fb := sv.frameBuffer
	for i := range fb {
		fb[i] = 0
	}
	for i := 3; i < len(fb); i += 4 {
		fb[i] = 0xFF
	}

	frames := sv.capture.Window()
	channels := sv.core.Channels()
	paneH := (scopeHeight - scopeBarH) / channels

	for ch := 0; ch < channels; ch++ {
		mid := ch*paneH + paneH/2
		sv.hline(mid, scopeGridColor)

		for x := 0; x < scopeWidth && x < len(frames); x++ {
			f := frames[x]
			sv.plot(x, mid-int(int32(f.Real(ch))*int32(paneH/2-2)/32768), scopeRealColor)
			sv.plot(x, mid-int(int32(f.Imag(ch))*int32(paneH/2-2)/32768), scopeImagColor)
		}
	}
}

func (sv *ScopeView) hline(y int, c color.RGBA) {
	if y < 0 || y >= scopeHeight {
		return
	}
	for x := 0; x < scopeWidth; x++ {
		sv.setPixel(x, y, c)
	}
}

func (sv *ScopeView) plot(x, y int, c color.RGBA) {
	sv.setPixel(x, y, c)
}

func (sv *ScopeView) setPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= scopeWidth || y < 0 || y >= scopeHeight {
		return
	}
	off := (y*scopeWidth + x) * 4
	sv.frameBuffer[off] = c.R
	sv.frameBuffer[off+1] = c.G
	sv.frameBuffer[off+2] = c.B
	sv.frameBuffer[off+3] = c.A
}

func (sv *ScopeView) drawStatusBar(screen *ebiten.Image) {
	y := scopeHeight - scopeBarH
	ebitenutil.DrawRect(screen, 0, float64(y), scopeWidth, scopeBarH, color.RGBA{0, 0, 0, 180})

	inc := sv.port.HandleRegisterRead(DDS_PHASE_INC)
	gain := int16(uint16(sv.port.HandleRegisterRead(DDS_GAIN)))
	cycles := sv.port.HandleRegisterRead(DDS_CYCLES)
	status := fmt.Sprintf("INC %08X  GAIN %6d  CH %d  CYC %10d",
		inc, gain, sv.core.Channels(), cycles)
	text.Draw(screen, status, basicfont.Face7x13, 6, y+13, color.RGBA{0xC0, 0xC0, 0xC0, 0xFF})
}
