package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/meridianpm/labelpress/pkg/cache"
	"github.com/meridianpm/labelpress/pkg/errors"
	"github.com/meridianpm/labelpress/pkg/label"
	"github.com/meridianpm/labelpress/pkg/label/advisor"
	"github.com/meridianpm/labelpress/pkg/label/layout"
	"github.com/meridianpm/labelpress/pkg/label/template"
	"github.com/meridianpm/labelpress/pkg/render/document"
	"github.com/meridianpm/labelpress/pkg/render/preview"
)

// artifactTTL bounds how long rendered PDFs stay cached. Keys are input
// fingerprints, so the TTL only limits storage, never correctness.
const artifactTTL = 24 * time.Hour

// sizeRequest locates a label size either directly or through the sheet
// catalog. Exactly one of the two should be set; dimensions win when both
// are present.
type sizeRequest struct {
	Dimensions *label.Dimensions `json:"dimensions,omitempty"`
	Template   string            `json:"template,omitempty"`
}

// resolve returns the label dimensions the request names.
func (r sizeRequest) resolve() (label.Dimensions, error) {
	if r.Dimensions != nil {
		if !r.Dimensions.Valid() {
			return label.Dimensions{}, errors.New(errors.ErrCodeInvalidDimensions,
				"label %gx%g: dimensions must be positive", r.Dimensions.Width, r.Dimensions.Height)
		}
		return *r.Dimensions, nil
	}
	if r.Template == "" {
		return label.Dimensions{}, errors.New(errors.ErrCodeInvalidInput,
			"request needs dimensions or a template key")
	}
	t, err := template.Lookup(r.Template)
	if err != nil {
		return label.Dimensions{}, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "resolve template")
	}
	return t.Dimensions(), nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"default":   template.Default,
		"templates": template.All(),
	})
}

type layoutRequest struct {
	sizeRequest
	Options   *layout.Options `json:"options,omitempty"`
	FromLines int             `json:"from_lines"`
	ToLines   int             `json:"to_lines"`
}

// options returns the requested options, falling back to the neutral
// defaults.
func (r layoutRequest) options() layout.Options {
	if r.Options != nil {
		return *r.Options
	}
	return layout.DefaultOptions()
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	dims, err := req.resolve()
	if err != nil {
		writeError(w, r, err)
		return
	}
	l := layout.Calculate(dims, req.options(), req.FromLines, req.ToLines)
	writeJSON(w, http.StatusOK, l)
}

type suggestRequest struct {
	sizeRequest
	HasLogo        bool `json:"has_logo"`
	HasFromAddress bool `json:"has_from_address"`
	FromLines      int  `json:"from_lines"`
}

// suggestResponse flattens the advisor's positional intent into strings
// alongside the ready-to-use options.
type suggestResponse struct {
	advisor.Suggestion
	LogoPosition string `json:"logo_position"`
	FromPosition string `json:"from_position"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	dims, err := req.resolve()
	if err != nil {
		writeError(w, r, err)
		return
	}
	sug := advisor.Suggest(dims, req.HasLogo, req.HasFromAddress, req.FromLines)
	writeJSON(w, http.StatusOK, suggestResponse{
		Suggestion:   sug,
		LogoPosition: sug.LogoPosition.String(),
		FromPosition: sug.FromPosition.String(),
	})
}

type previewRequest struct {
	layoutRequest
	Scale     float64     `json:"scale,omitempty"`
	Recipient *label.Data `json:"recipient,omitempty"`
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	dims, err := req.resolve()
	if err != nil {
		writeError(w, r, err)
		return
	}

	opts := req.options()
	fromLines := req.FromLines
	if fromLines == 0 && opts.ShowFromAddress {
		fromLines = len(s.cfg.From.Lines())
	}
	l := layout.Calculate(dims, opts, fromLines, req.ToLines)

	popts := []preview.Option{
		preview.WithFromAddress(s.cfg.From),
		preview.WithBranding(s.cfg.Branding),
	}
	if req.Scale > 0 {
		popts = append(popts, preview.WithScale(req.Scale))
	}
	if req.Recipient != nil {
		popts = append(popts, preview.WithData(*req.Recipient))
	}
	writeJSON(w, http.StatusOK, preview.Render(dims, l, popts...))
}

type renderRequest struct {
	Template   string          `json:"template,omitempty"`
	Options    *layout.Options `json:"options,omitempty"`
	Recipients []label.Data    `json:"recipients"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	var req renderRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	key := req.Template
	if key == "" {
		key = template.Default
	}
	t, err := template.Lookup(key)
	if err != nil {
		writeError(w, r, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "resolve template"))
		return
	}
	opts := layout.DefaultOptions()
	if req.Options != nil {
		opts = *req.Options
	}

	cacheKey := cache.ArtifactKey("pdf", t.Key, opts, s.cfg.From, s.cfg.Branding, req.Recipients)
	if data, ok, err := s.cache.Get(r.Context(), cacheKey); err != nil {
		logger.Warn("artifact cache read failed", "err", err)
	} else if ok {
		logger.Debug("serving cached artifact", "labels", len(req.Recipients))
		writePDF(w, data)
		return
	}

	fromLines := 0
	if opts.ShowFromAddress {
		fromLines = len(s.cfg.From.Lines())
	}
	l := layout.Calculate(t.Dimensions(), opts, fromLines, 0)

	ropts := []document.Option{
		document.WithFromAddress(s.cfg.From),
		document.WithLogger(logger),
	}
	if s.cfg.Branding != "" {
		ropts = append(ropts, document.WithBranding(s.cfg.Branding))
	}
	if len(s.cfg.Logo) > 0 {
		ropts = append(ropts, document.WithLogo(document.Logo{Format: s.cfg.LogoFormat, Data: s.cfg.Logo}))
	}

	renderer, err := document.NewRenderer(s.cfg.FontPath, ropts...)
	if err != nil {
		writeError(w, r, errors.Wrap(errors.ErrCodeRenderFont, err, "create renderer"))
		return
	}
	if err := renderer.Render(t, l, req.Recipients); err != nil {
		writeError(w, r, errors.Wrap(errors.ErrCodeRender, err, "render batch"))
		return
	}

	data := renderer.Bytes()
	if err := s.cache.Set(r.Context(), cacheKey, data, artifactTTL); err != nil {
		logger.Warn("artifact cache write failed", "err", err)
	}
	logger.Info("rendered batch", "template", t.Key, "labels", len(req.Recipients), "bytes", len(data))
	writePDF(w, data)
}

// decode reads the JSON request body into v, mapping malformed input to an
// invalid-input error.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writePDF(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// errorBody is the JSON error shape: a machine code plus a user message.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps a structured error to its HTTP status and logs it.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(errors.GetCode(err))
	if status >= 500 {
		loggerFromContext(r.Context()).Error("request failed", "err", err)
	} else {
		loggerFromContext(r.Context()).Debug("request rejected", "err", err)
	}
	writeJSON(w, status, errorBody{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDimensions,
		errors.ErrCodeInvalidOptions, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeInvalidTemplate, errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
