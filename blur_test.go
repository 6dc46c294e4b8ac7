package imgfx

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
	"testing"
)

var demoSizes = append([]int{1}, DefaultBlurSizes[:]...)

func TestWindowedAverage_FourByFour(t *testing.T) {
	src := uniformImage(t, 4, 4, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	got, err := WindowedAverage(src, 3)
	if err != nil {
		t.Fatalf("WindowedAverage() = %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		// 4 of 9 samples in bounds.
		{"corner top-left", 0, 0, color.NRGBA{R: 88, G: 44, B: 22, A: 255}},
		{"corner bottom-right", 3, 3, color.NRGBA{R: 88, G: 44, B: 22, A: 255}},
		// 6 of 9 samples in bounds.
		{"edge top", 1, 0, color.NRGBA{R: 133, G: 66, B: 33, A: 255}},
		{"edge left", 0, 2, color.NRGBA{R: 133, G: 66, B: 33, A: 255}},
		// Full window.
		{"interior", 1, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255}},
		{"interior", 2, 2, color.NRGBA{R: 200, G: 100, B: 50, A: 255}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s (%d,%d)", tt.name, tt.x, tt.y), func(t *testing.T) {
			if c := got.NRGBAAt(tt.x, tt.y); c != tt.want {
				t.Errorf("pixel = %v, want %v", c, tt.want)
			}
		})
	}
}

func TestWindowedAverage_SizeOneIsIdentity(t *testing.T) {
	src := noiseImage(t, 13, 7, 1)

	for _, alg := range []Algorithm{AlgorithmSeparable, AlgorithmNaive} {
		t.Run(alg.String(), func(t *testing.T) {
			got, err := WindowedAverage(src, 1, WithBlurAlgorithm(alg))
			if err != nil {
				t.Fatalf("WindowedAverage() = %v", err)
			}
			for y := 0; y < src.Height(); y++ {
				for x := 0; x < src.Width(); x++ {
					s, g := src.NRGBAAt(x, y), got.NRGBAAt(x, y)
					if g.R != s.R || g.G != s.G || g.B != s.B || g.A != 255 {
						t.Fatalf("(%d,%d) = %v, want rgb of %v with alpha 255", x, y, g, s)
					}
				}
			}
		})
	}
}

func TestWindowedAverage_UniformInterior(t *testing.T) {
	c := color.NRGBA{R: 90, G: 180, B: 255, A: 255}
	src := uniformImage(t, 10, 10, c)

	const size = 5
	got, err := WindowedAverage(src, size)
	if err != nil {
		t.Fatalf("WindowedAverage() = %v", err)
	}

	half := (size - 1) / 2
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			p := got.NRGBAAt(x, y)
			interior := x >= half && x < 10-half && y >= half && y < 10-half
			if interior && p != c {
				t.Errorf("interior (%d,%d) = %v, want %v", x, y, p, c)
			}
			if !interior && (p.R >= c.R || p.G >= c.G || p.B >= c.B) {
				t.Errorf("border (%d,%d) = %v, want darker than %v", x, y, p, c)
			}
			if p.A != 255 {
				t.Errorf("(%d,%d) alpha = %d, want 255", x, y, p.A)
			}
		}
	}
}

func TestWindowedAverage_KernelLargerThanImage(t *testing.T) {
	src := uniformImage(t, 1, 1, color.NRGBA{R: 255, G: 90, B: 9, A: 0})

	got, err := WindowedAverage(src, 3)
	if err != nil {
		t.Fatalf("WindowedAverage() = %v", err)
	}
	want := color.NRGBA{R: 255 / 9, G: 90 / 9, B: 9 / 9, A: 255}
	if c := got.NRGBAAt(0, 0); c != want {
		t.Errorf("pixel = %v, want %v", c, want)
	}
}

func TestWindowedAverage_AlgorithmsAgree(t *testing.T) {
	shapes := []struct{ w, h int }{
		{1, 1}, {1, 9}, {9, 1}, {23, 17}, {64, 3},
	}
	for _, sh := range shapes {
		src := noiseImage(t, sh.w, sh.h, uint64(sh.w*100+sh.h))
		for _, size := range demoSizes {
			t.Run(fmt.Sprintf("%dx%d/k%d", sh.w, sh.h, size), func(t *testing.T) {
				naive, err := WindowedAverage(src, size, WithBlurAlgorithm(AlgorithmNaive))
				if err != nil {
					t.Fatalf("naive: %v", err)
				}
				sep, err := WindowedAverage(src, size, WithBlurAlgorithm(AlgorithmSeparable))
				if err != nil {
					t.Fatalf("separable: %v", err)
				}
				if !naive.Equal(sep) {
					t.Error("separable output differs from naive output")
				}
			})
		}
	}
}

func TestWindowedAverage_Deterministic(t *testing.T) {
	src := noiseImage(t, 31, 29, 7)
	s := NewScratch()

	a, err := WindowedAverage(src, 7, WithScratch(s))
	if err != nil {
		t.Fatal(err)
	}
	b, err := WindowedAverage(src, 7, WithScratch(s))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("two runs on the same input differ")
	}
}

func TestWindowedAverage_SourceUnchanged(t *testing.T) {
	src := noiseImage(t, 16, 16, 3)
	before := src.Clone()

	if _, err := WindowedAverage(src, 5); err != nil {
		t.Fatal(err)
	}
	if !src.Equal(before) {
		t.Error("WindowedAverage modified its source")
	}
}

func TestWindowedAverage_InvalidKernel(t *testing.T) {
	src := noiseImage(t, 8, 8, 5)
	before := src.Clone()
	dst := uniformImage(t, 8, 8, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	dstBefore := dst.Clone()

	for _, size := range []int{0, -1, -3, 2, 4, 100, 4098} {
		t.Run(fmt.Sprint(size), func(t *testing.T) {
			got, err := WindowedAverage(src, size)
			if !errors.Is(err, ErrInvalidKernel) {
				t.Errorf("WindowedAverage() error = %v, want ErrInvalidKernel", err)
			}
			if got != nil {
				t.Error("WindowedAverage() returned an image on error")
			}
			if err := WindowedAverageInto(dst, src, size); !errors.Is(err, ErrInvalidKernel) {
				t.Errorf("WindowedAverageInto() error = %v, want ErrInvalidKernel", err)
			}
		})
	}
	if !src.Equal(before) {
		t.Error("source modified by rejected blur")
	}
	if !dst.Equal(dstBefore) {
		t.Error("destination modified by rejected blur")
	}
}

func TestWindowedAverage_WindowLargerThanImage(t *testing.T) {
	src := uniformImage(t, 4, 4, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	black := color.NRGBA{A: 255}

	for _, size := range []int{4097, 10001} {
		for _, alg := range []Algorithm{AlgorithmSeparable, AlgorithmNaive} {
			t.Run(fmt.Sprintf("%d/%v", size, alg), func(t *testing.T) {
				got, err := WindowedAverage(src, size, WithBlurAlgorithm(alg))
				if err != nil {
					t.Fatalf("WindowedAverage() = %v", err)
				}
				for y := 0; y < 4; y++ {
					for x := 0; x < 4; x++ {
						if c := got.NRGBAAt(x, y); c != black {
							t.Fatalf("(%d,%d) = %v, want %v", x, y, c, black)
						}
					}
				}
			})
		}
	}

	// 16 samples of 255 over a 9x9 window: 4080/81 = 50.
	got, err := WindowedAverage(src, 9)
	if err != nil {
		t.Fatal(err)
	}
	if c := got.NRGBAAt(0, 0); c != (color.NRGBA{R: 50, G: 50, B: 50, A: 255}) {
		t.Errorf("9x9 corner = %v, want 50s", c)
	}
}

func TestWindowedAverage_InvalidImage(t *testing.T) {
	for name, img := range map[string]*Image{
		"nil":        nil,
		"zero value": {},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := WindowedAverage(img, 3); !errors.Is(err, ErrInvalidImage) {
				t.Errorf("WindowedAverage() error = %v, want ErrInvalidImage", err)
			}
		})
	}
}

func TestWindowedAverageInto(t *testing.T) {
	src := noiseImage(t, 9, 6, 11)
	want, err := WindowedAverage(src, 5)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("writes destination", func(t *testing.T) {
		dst := MustNewImage(9, 6)
		if err := WindowedAverageInto(dst, src, 5); err != nil {
			t.Fatalf("WindowedAverageInto() = %v", err)
		}
		if !dst.Equal(want) {
			t.Error("WindowedAverageInto() differs from WindowedAverage()")
		}
	})

	t.Run("size mismatch", func(t *testing.T) {
		dst := MustNewImage(6, 9)
		if err := WindowedAverageInto(dst, src, 5); !errors.Is(err, ErrSizeMismatch) {
			t.Errorf("error = %v, want ErrSizeMismatch", err)
		}
	})

	t.Run("aliased", func(t *testing.T) {
		if err := WindowedAverageInto(src, src, 5); !errors.Is(err, ErrAliasedBuffer) {
			t.Errorf("error = %v, want ErrAliasedBuffer", err)
		}
		alias, err := FromPix(9, 6, src.Pix())
		if err != nil {
			t.Fatal(err)
		}
		if err := WindowedAverageInto(alias, src, 5); !errors.Is(err, ErrAliasedBuffer) {
			t.Errorf("error = %v, want ErrAliasedBuffer", err)
		}
	})

	t.Run("overlapping", func(t *testing.T) {
		backing := make([]uint8, 80)
		for i := range backing {
			backing[i] = uint8(i)
		}
		a, err := FromPix(4, 4, backing[:64])
		if err != nil {
			t.Fatal(err)
		}
		b, err := FromPix(4, 4, backing[16:80])
		if err != nil {
			t.Fatal(err)
		}
		before := slices.Clone(backing)
		for _, alg := range []Algorithm{AlgorithmSeparable, AlgorithmNaive} {
			if err := WindowedAverageInto(b, a, 3, WithBlurAlgorithm(alg)); !errors.Is(err, ErrAliasedBuffer) {
				t.Errorf("%v: dst after src: error = %v, want ErrAliasedBuffer", alg, err)
			}
			if err := WindowedAverageInto(a, b, 3, WithBlurAlgorithm(alg)); !errors.Is(err, ErrAliasedBuffer) {
				t.Errorf("%v: dst before src: error = %v, want ErrAliasedBuffer", alg, err)
			}
		}
		if !slices.Equal(backing, before) {
			t.Error("rejected blur wrote to the shared storage")
		}
	})

	t.Run("adjacent", func(t *testing.T) {
		backing := make([]uint8, 128)
		a, _ := FromPix(4, 4, backing[:64])
		b, _ := FromPix(4, 4, backing[64:])
		if err := WindowedAverageInto(b, a, 3); err != nil {
			t.Errorf("WindowedAverageInto() on adjacent storage = %v", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		if err := WindowedAverageInto(nil, src, 5); !errors.Is(err, ErrInvalidImage) {
			t.Errorf("error = %v, want ErrInvalidImage", err)
		}
	})
}

func TestAlgorithmString(t *testing.T) {
	tests := []struct {
		a    Algorithm
		want string
	}{
		{AlgorithmSeparable, "separable"},
		{AlgorithmNaive, "naive"},
		{Algorithm(9), "Algorithm(9)"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func BenchmarkWindowedAverage(b *testing.B) {
	src := noiseImage(b, 640, 480, 42)
	dst := MustNewImage(640, 480)
	s := NewScratch()

	for _, size := range []int{3, 15, 101} {
		for _, alg := range []Algorithm{AlgorithmSeparable, AlgorithmNaive} {
			if alg == AlgorithmNaive && size > 15 {
				continue
			}
			b.Run(fmt.Sprintf("%s/k%d", alg, size), func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					_ = WindowedAverageInto(dst, src, size, WithBlurAlgorithm(alg), WithScratch(s))
				}
			})
		}
	}
}
