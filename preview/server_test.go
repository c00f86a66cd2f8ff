package preview

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"semiplot/render"
	"semiplot/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func newRecord(t *testing.T, frames int) *Record {
	t.Helper()
	r := render.NewRenderer(types.DefaultDevice, types.FrameInterval)
	rec := NewRecord("MOSFET", types.FrameInterval)
	for i := 0; i < frames; i++ {
		rec.Update(r.BuildFrame(i))
	}
	return rec
}

func frameImage(rec *Record) ImageFunc {
	size := render.Size{Width: 4 * vg.Inch, Height: 3 * vg.Inch, DPI: 20}
	return func(w io.Writer, index int) error {
		frame, _ := rec.Frame(index)
		c, err := render.FrameImage(frame, size)
		if err != nil {
			return err
		}
		return render.WritePNG(w, c)
	}
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRecord(t *testing.T) {
	rec := newRecord(t, 3)
	assert.Equal(t, 3, rec.Len())
	_, ok := rec.Frame(3)
	assert.False(t, ok)

	var buf bytes.Buffer
	require.NoError(t, rec.Render(&buf))
	var decoded Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.Frames, 3)
	assert.Equal(t, rec.Frames[2].CurveCount, decoded.Frames[2].CurveCount)
}

func TestChartsRender(t *testing.T) {
	c := &Charts{Record: newRecord(t, 1)}
	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf, 0))
	html := buf.String()
	assert.Contains(t, html, "NMOS: Ids vs Vds")
	assert.Contains(t, html, "PMOS: Ids vs Vgs")
	assert.Error(t, c.Render(&buf, 5))
}

func TestHandlerRoutes(t *testing.T) {
	rec := newRecord(t, 2)
	h := NewHandler(rec, frameImage(rec), nil)

	w := get(t, h, "/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/frames/0", w.Header().Get("Location"))

	w = get(t, h, "/frames/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "echarts")

	w = get(t, h, "/frames/1/png")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))

	assert.Equal(t, http.StatusNotFound, get(t, h, "/frames/9").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/frames/-1/png").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/frames/abc").Code)

	w = get(t, h, "/record.json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestHandlerImageOnly(t *testing.T) {
	h := NewHandler(NewRecord("liner", 0), func(w io.Writer, _ int) error {
		_, err := w.Write([]byte("\x89PNG"))
		return err
	}, nil)
	w := get(t, h, "/")
	assert.Equal(t, "/image.png", w.Header().Get("Location"))
	w = get(t, h, "/image.png")
	assert.Equal(t, http.StatusOK, w.Code)

	bare := NewHandler(NewRecord("empty", 0), nil, nil)
	assert.Equal(t, http.StatusNotFound, get(t, bare, "/").Code)
	assert.Equal(t, http.StatusNotFound, get(t, bare, "/image.png").Code)
}
