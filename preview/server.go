package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ImageFunc 渲染第 index 帧的 PNG
type ImageFunc func(w io.Writer, index int) error

// Handler 预览页面
type Handler struct {
	charts *Charts
	image  ImageFunc
	log    *slog.Logger
}

// NewHandler 创建路由，image 为空时不提供 PNG
func NewHandler(rec *Record, image ImageFunc, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	h := &Handler{charts: &Charts{Record: rec}, image: image, log: log}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", h.index)
	r.Get("/record.json", h.record)
	r.Get("/image.png", h.png(func(*http.Request) (int, error) { return 0, nil }))
	r.Get("/frames/{index}", h.frame)
	r.Get("/frames/{index}/png", h.png(h.frameIndex))
	return r
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	if h.charts.Len() > 0 {
		http.Redirect(w, r, "/frames/0", http.StatusFound)
		return
	}
	if h.image != nil {
		http.Redirect(w, r, "/image.png", http.StatusFound)
		return
	}
	http.NotFound(w, r)
}

func (h *Handler) record(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := h.charts.Record.Render(w); err != nil {
		h.Error(err)
	}
}

func (h *Handler) frame(w http.ResponseWriter, r *http.Request) {
	index, err := h.frameIndex(r)
	if err != nil {
		writeIndexError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := h.charts.Render(&buf, index); err != nil {
		h.Error(err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func (h *Handler) png(indexOf func(*http.Request) (int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.image == nil {
			http.NotFound(w, r)
			return
		}
		index, err := indexOf(r)
		if err != nil {
			writeIndexError(w, err)
			return
		}
		var buf bytes.Buffer
		if err := h.image(&buf, index); err != nil {
			h.Error(err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		buf.WriteTo(w)
	}
}

// errNoFrame 帧序号越界
var errNoFrame = errors.New("frame not found")

func (h *Handler) frameIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, fmt.Errorf("invalid frame index: %w", err)
	}
	if _, ok := h.charts.Frame(index); !ok {
		return 0, errNoFrame
	}
	return index, nil
}

func writeIndexError(w http.ResponseWriter, err error) {
	if errors.Is(err, errNoFrame) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func (h *Handler) Error(err error) { h.log.Error("preview failed", "error", err) }

// Serve 启动预览服务直到 ctx 结束
func Serve(ctx context.Context, addr string, handler http.Handler, log *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errs := make(chan error, 1)
	go func() {
		log.Info("preview serving", "addr", "http://"+addr)
		errs <- srv.ListenAndServe()
	}()
	select {
	case err := <-errs:
		return fmt.Errorf("预览服务失败: %w", err)
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return srv.Close()
	}
	log.Info("preview stopped")
	return nil
}
