package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"svw.info/phitinh/internal/domain"
	"svw.info/phitinh/internal/ports"
	"svw.info/phitinh/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/chart", h.handleChart)
	mux.HandleFunc("/api/annual", h.handleAnnual)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/mountains", h.handleMountains)
	mux.HandleFunc("/api/sweep", h.handleSweep)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
	mux.HandleFunc("/api/delete", h.handleDelete)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok\n")
	})
}

type errorResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(v)
}

// allow sets the JSON content type and rejects other methods with 405.
func allow(w http.ResponseWriter, r *http.Request, method string) bool {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != method {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// decode reads a JSON body; an empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// yearOr returns *y, or the current year when the request left it out.
func yearOr(y *int) int {
	if y != nil {
		return *y
	}
	return time.Now().Year()
}

// ---- Chart ----

type chartReq struct {
	Year     *int     `json:"year,omitempty"`
	Facing   *float64 `json:"facing,omitempty"`
	Mountain string   `json:"mountain,omitempty"`
}

type chartResp struct {
	Result     *domain.BoardResult `json:"result,omitempty"`
	Cached     bool                `json:"cached,omitempty"`
	DurationUs int64               `json:"durationUs,omitempty"`
	Error      string              `json:"error,omitempty"`
}

func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req chartReq
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, chartResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	year := yearOr(req.Year)
	var (
		res *domain.BoardResult
		st  ports.Stats
		err error
	)
	switch {
	case req.Facing != nil:
		res, st, err = h.UC.Chart(r.Context(), year, *req.Facing)
	case strings.TrimSpace(req.Mountain) != "":
		res, st, err = h.UC.ChartByMountain(r.Context(), year, req.Mountain)
	default:
		writeJSON(w, http.StatusBadRequest, chartResp{Error: "facing or mountain is required"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, chartResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, chartResp{Result: res, Cached: st.Cached, DurationUs: st.Duration.Microseconds()})
}

// ---- Annual ----

type annualReq struct {
	Year      *int   `json:"year,omitempty"`
	Direction string `json:"direction"`
}

type annualResp struct {
	Reading *domain.AnnualReading `json:"reading,omitempty"`
	Error   string                `json:"error,omitempty"`
}

func (h *Handler) handleAnnual(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req annualReq
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, annualResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	rd, err := h.UC.Annual(r.Context(), yearOr(req.Year), req.Direction)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, annualResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, annualResp{Reading: &rd})
}

// ---- Validate ----

type validateReq struct {
	Grid domain.BoardGrid `json:"grid"`
}
type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), req.Grid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, validateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Mountains / Sweep ----

type mountainsResp struct {
	Mountains []domain.Mountain `json:"mountains"`
}

func (h *Handler) handleMountains(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, mountainsResp{Mountains: h.UC.Mountains()})
}

type sweepResp struct {
	Year    int                 `json:"year"`
	Entries []domain.SweepEntry `json:"entries,omitempty"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleSweep(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	year := yearOr(nil)
	if s := r.URL.Query().Get("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, sweepResp{Error: "invalid year: " + s})
			return
		}
		year = y
	}
	entries, _, err := h.UC.Sweep(r.Context(), year)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, sweepResp{Year: year, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sweepResp{Year: year, Entries: entries})
}

// ---- Save / Load / List / Delete ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var c domain.Chart
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeJSON(w, http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if err := h.UC.Save(r.Context(), &c); err != nil {
		writeJSON(w, http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: c.ID})
}

type idReq struct {
	ID string `json:"id"`
}
type loadResp struct {
	Chart  *domain.Chart       `json:"chart,omitempty"`
	Result *domain.BoardResult `json:"result,omitempty"`
	Error  string              `json:"error,omitempty"`
}

func notFoundOr500(err error) int {
	if errors.Is(err, ports.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req idReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeJSON(w, http.StatusBadRequest, loadResp{Error: "invalid JSON or missing id"})
		return
	}
	c, res, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		writeJSON(w, notFoundOr500(err), loadResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, loadResp{Chart: c, Result: res})
}

type listResp struct {
	Charts []domain.ChartMeta `json:"charts"`
	Error  string             `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	cs, err := h.UC.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	if cs == nil {
		cs = []domain.ChartMeta{}
	}
	writeJSON(w, http.StatusOK, listResp{Charts: cs})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req idReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON or missing id"})
		return
	}
	if err := h.UC.Delete(r.Context(), req.ID); err != nil {
		writeJSON(w, notFoundOr500(err), errorResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, idReq{ID: req.ID})
}
