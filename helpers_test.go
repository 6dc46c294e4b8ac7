package imgfx

import (
	"errors"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/gogpu/gpucontext"
)

// mockTexture implements gpucontext.Texture and textureDestroyer.
type mockTexture struct {
	width     int
	height    int
	data      []byte
	destroyed int
}

func (m *mockTexture) Width() int  { return m.width }
func (m *mockTexture) Height() int { return m.height }
func (m *mockTexture) Destroy()    { m.destroyed++ }

// mockCreator implements gpucontext.TextureCreator for testing.
type mockCreator struct {
	textures []*mockTexture
	failNext bool
	logger   *slog.Logger
}

var errMockCreate = errors.New("mock texture creation failed")

func (m *mockCreator) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if m.failNext {
		m.failNext = false
		return nil, errMockCreate
	}
	tex := &mockTexture{
		width:  width,
		height: height,
		data:   data,
	}
	m.textures = append(m.textures, tex)
	return tex, nil
}

func (m *mockCreator) SetLogger(l *slog.Logger) { m.logger = l }

func (m *mockCreator) last() *mockTexture {
	if len(m.textures) == 0 {
		return nil
	}
	return m.textures[len(m.textures)-1]
}

// mockDrawer implements gpucontext.TextureDrawer for testing.
type mockDrawer struct {
	creator   *mockCreator
	drawn     gpucontext.Texture
	x, y      float32
	drawCount int
}

func (m *mockDrawer) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	m.drawn = tex
	m.x, m.y = x, y
	m.drawCount++
	return nil
}

func (m *mockDrawer) TextureCreator() gpucontext.TextureCreator { return m.creator }

// uniformImage returns a w x h image filled with c.
func uniformImage(t testing.TB, w, h int, c color.NRGBA) *Image {
	t.Helper()
	img, err := NewImage(w, h)
	if err != nil {
		t.Fatalf("NewImage(%d, %d) = %v", w, h, err)
	}
	img.Fill(c)
	return img
}

// noiseImage returns a w x h image of reproducible random pixels,
// alpha included.
func noiseImage(t testing.TB, w, h int, seed uint64) *Image {
	t.Helper()
	img, err := NewImage(w, h)
	if err != nil {
		t.Fatalf("NewImage(%d, %d) = %v", w, h, err)
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range img.Pix() {
		img.Pix()[i] = uint8(r.UintN(256))
	}
	return img
}
