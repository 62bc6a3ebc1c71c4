// Package server exposes the enhancement pipeline as a single-endpoint HTTP
// service. Every request is handled with request-local buffers only; nothing
// is shared between concurrent invocations.
package server

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/tuhin92/Image-Enhancement/internal/imgio"
	"github.com/tuhin92/Image-Enhancement/internal/lime"
)

// maxUploadBytes bounds how much of a multipart upload is held in memory
// before spilling to request-scoped temporary storage.
const maxUploadBytes = 32 << 20

// Server serves POST /enhance.
type Server struct {
	// MaxDim caps the longest side of accepted images; larger uploads are
	// downscaled before enhancement. Zero disables the cap.
	MaxDim int

	Log *log.Logger
}

func New(maxDim int, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{MaxDim: maxDim, Log: logger}
}

// Handler returns the route table for the service.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	// Method-restricted registration spelled out for toolchains older than
	// Go 1.22, which do not support "POST /enhance" mux patterns.
	mux.HandleFunc("/enhance", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		s.handleEnhance(w, r)
	})
	return mux
}

func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "no image uploaded")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no image uploaded")
		return
	}
	defer file.Close()

	cfg := lime.DefaultConfig()
	// The service defaults differ from the CLI: a neutral tone curve with
	// denoising on, matching how the upstream caller invoked the pipeline.
	cfg.Gamma = 1.0

	ok := true
	cfg.Gamma, ok = formFloat(r, "gamma", cfg.Gamma)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid gamma")
		return
	}
	cfg.MaxGain, ok = formFloat(r, "max_gain", cfg.MaxGain)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid max_gain")
		return
	}
	cfg.DenoiseStrength, ok = formInt(r, "denoise_strength", cfg.DenoiseStrength)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid denoise_strength")
		return
	}
	cfg.SaturationScale, ok = formFloat(r, "saturation_scale", cfg.SaturationScale)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid saturation_scale")
		return
	}

	img, err := imgio.Decode(file)
	if err != nil {
		s.Log.Printf("enhance request failed: %v", err)
		writeError(w, http.StatusInternalServerError, "enhancement failed")
		return
	}
	img = imgio.CapSize(img, s.MaxDim)

	out, err := lime.Enhance(r.Context(), img, cfg)
	if err != nil {
		s.Log.Printf("enhance request failed: %v", err)
		writeError(w, http.StatusInternalServerError, "enhancement failed")
		return
	}

	var buf bytes.Buffer
	if err := imgio.EncodeJPEG(&buf, out); err != nil {
		s.Log.Printf("encode response failed: %v", err)
		writeError(w, http.StatusInternalServerError, "enhancement failed")
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func formFloat(r *http.Request, name string, def float64) (float64, bool) {
	raw := r.FormValue(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func formInt(r *http.Request, name string, def int) (int, bool) {
	raw := r.FormValue(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
