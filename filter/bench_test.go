package filter

import (
	"testing"

	"github.com/user-none/softfilter/pixel"
)

func benchmarkRender(b *testing.B, d Descriptor, f pixel.Format, threads int) {
	inst, err := d.Create(f, WithThreads(threads))
	if err != nil {
		b.Fatal(err)
	}
	defer inst.Destroy()

	src := randomFrame(f, 256, 224, 1)
	ow, oh := inst.OutputSize(src.Width, src.Height)
	dst := pixel.NewFrame(f, ow, oh)

	b.SetBytes(int64(len(src.Pix)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inst.Render(dst.Pix, dst.Stride, src.Pix, src.Width, src.Height, src.Stride)
	}
}

func BenchmarkSuper2xSaI_RGB565(b *testing.B)   { benchmarkRender(b, Super2xSaI, pixel.FormatRGB565, 1) }
func BenchmarkSuper2xSaI_XRGB8888(b *testing.B) { benchmarkRender(b, Super2xSaI, pixel.FormatXRGB8888, 1) }
func BenchmarkSuperEagle_RGB565(b *testing.B)   { benchmarkRender(b, SuperEagle, pixel.FormatRGB565, 1) }
func BenchmarkSuperEagle_XRGB8888(b *testing.B) { benchmarkRender(b, SuperEagle, pixel.FormatXRGB8888, 1) }
func BenchmarkSuperEagle_Threads4(b *testing.B) { benchmarkRender(b, SuperEagle, pixel.FormatXRGB8888, 4) }
func BenchmarkScale3x_XRGB8888(b *testing.B)    { benchmarkRender(b, Scale3x, pixel.FormatXRGB8888, 1) }

func TestRender_NoAllocsSingleThreaded(t *testing.T) {
	inst := mustCreate(t, Super2xSaI, pixel.FormatXRGB8888)
	src := randomFrame(pixel.FormatXRGB8888, 32, 16, 1)
	dst := pixel.NewFrame(pixel.FormatXRGB8888, 64, 32)

	allocs := testing.AllocsPerRun(10, func() {
		inst.Render(dst.Pix, dst.Stride, src.Pix, src.Width, src.Height, src.Stride)
	})
	if allocs != 0 {
		t.Errorf("Render allocated %.1f times per frame, want 0", allocs)
	}
}
