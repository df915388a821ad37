package filter

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user-none/softfilter/pixel"
)

func TestRegistry_Order(t *testing.T) {
	assert.Equal(t, []string{
		"super2xsai", "supereagle", "2xsai", "scale2x", "scale3x",
		"epx", "normal2x", "scanlines", "darken",
	}, IDs())

	r := Registry()
	r[0] = nil
	assert.Equal(t, Super2xSaI, Registry()[0], "Registry must return a copy")
}

func TestRegistry_Descriptors(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range Registry() {
		assert.False(t, seen[d.ID()], "duplicate id %s", d.ID())
		seen[d.ID()] = true

		assert.Equal(t, strings.ToLower(d.ID()), d.ID())
		assert.NotEmpty(t, d.Name())
		assert.Equal(t, pixel.FormatRGB565|pixel.FormatXRGB8888, d.InputFormats())
		for _, f := range formats {
			assert.Equal(t, f, d.OutputFormats(f), "%s output format", d.ID())
		}
		assert.Contains(t, []int{1, 2, 3}, Scale(d))
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Descriptor
	}{
		{"super2xsai", Super2xSaI},
		{"Super2xSaI", Super2xSaI},
		{"SUPEREAGLE", SuperEagle},
		{" scale3x ", Scale3x},
		{"2xSaI", TwoxSaI},
	}
	for _, tc := range tests {
		d, err := Lookup(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, d, tc.name)
	}

	_, err := Lookup("hq2x")
	assert.ErrorIs(t, err, ErrUnknownFilter)
}

func TestNext(t *testing.T) {
	assert.Equal(t, SuperEagle, Next("super2xsai", 1))
	assert.Equal(t, Super2xSaI, Next("darken", 1))
	assert.Equal(t, Darken, Next("super2xsai", -1))
	assert.Equal(t, Scale2x, Next("SuperEagle", 2))
	assert.Equal(t, Super2xSaI, Next("missing", 1))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	inst, err := Darken.Create(pixel.FormatRGB565)
	require.NoError(t, err)
	inst.Destroy()
	inst.Render(make([]byte, 4), 2, make([]byte, 4), 1, 1, 2)

	out := buf.String()
	assert.Contains(t, out, "filter created")
	assert.Contains(t, out, "filter destroyed")
	assert.Contains(t, out, "render on destroyed filter ignored")
}
