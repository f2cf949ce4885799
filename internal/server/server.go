package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"StockBoard/internal/collector"
	"StockBoard/internal/config"
	"StockBoard/internal/model"
	"StockBoard/internal/recorder"
	"StockBoard/internal/report"
	"StockBoard/internal/transform"
)

// DashboardServer serves the dashboard page, the JSON API and the CSV
// download. Every request recomputes the whole pipeline from its query
// parameters; no state is kept between requests.
type DashboardServer struct {
	col *collector.Collector
	rec recorder.Recorder
	cfg *config.Config
	log *zap.SugaredLogger
}

// New creates a new DashboardServer.
func New(col *collector.Collector, rec recorder.Recorder, cfg *config.Config, log *zap.SugaredLogger) *DashboardServer {
	return &DashboardServer{col: col, rec: rec, cfg: cfg, log: log}
}

// Routes returns the server's mux.
func (s *DashboardServer) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/dashboard", s.handleDashboard)
	mux.HandleFunc("/download/"+report.CSVFilename, s.handleDownload)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

// dashboardResponse carries every rendered section in display order.
type dashboardResponse struct {
	Message     string             `json:"message"`
	Warning     string             `json:"warning,omitempty"`
	Theme       string             `json:"theme"`
	Preview     []model.PreviewRow `json:"preview,omitempty"`
	TotalRows   int                `json:"total_rows"`
	DownloadURL string             `json:"download_url,omitempty"`
	Charts      []report.Chart     `json:"charts,omitempty"`
	Snapshot    []model.Snapshot   `json:"snapshot,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// inputs is the collected user state for one run.
type inputs struct {
	Symbols []string
	Range   model.DateRange
	Theme   string
}

// parseInputs reads the selection from query parameters, applying the
// configured defaults when a parameter is absent. An explicitly empty
// symbols parameter means "nothing selected" and is not an error.
func (s *DashboardServer) parseInputs(r *http.Request) (inputs, error) {
	q := r.URL.Query()
	in := inputs{Theme: q.Get("theme")}
	if in.Theme != "dark" {
		in.Theme = "light"
	}

	if !q.Has("symbols") {
		in.Symbols = s.cfg.Market.Defaults
	} else if raw := strings.TrimSpace(q.Get("symbols")); raw != "" {
		for _, sym := range strings.Split(raw, ",") {
			sym = strings.ToUpper(strings.TrimSpace(sym))
			if sym == "" {
				continue
			}
			if !s.cfg.IsCandidate(sym) {
				return in, fmt.Errorf("unknown symbol %q", sym)
			}
			in.Symbols = append(in.Symbols, sym)
		}
	}

	start := q.Get("start")
	if start == "" {
		start = s.cfg.Market.DefaultStart
	}
	from, err := time.Parse("2006-01-02", start)
	if err != nil {
		return in, fmt.Errorf("invalid start date %q", start)
	}
	to := time.Now().Truncate(24 * time.Hour)
	if end := q.Get("end"); end != "" {
		to, err = time.Parse("2006-01-02", end)
		if err != nil {
			return in, fmt.Errorf("invalid end date %q", end)
		}
	}
	if to.Before(from) {
		return in, fmt.Errorf("end date %s is before start date %s",
			to.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	in.Range = model.DateRange{Start: from, End: to}
	return in, nil
}

func (s *DashboardServer) handleDashboard(w http.ResponseWriter, r *http.Request) {
	in, err := s.parseInputs(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(in.Symbols) == 0 {
		s.writeJSON(w, http.StatusOK, dashboardResponse{
			Warning: "Please select at least one stock symbol to view data.",
			Theme:   in.Theme,
		})
		return
	}

	started := time.Now()
	data, err := s.col.Collect(in.Symbols, in.Range)
	if err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}

	preview := transform.BuildPreview(data)
	snaps, err := transform.Snapshots(data)
	if err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}

	resp := dashboardResponse{
		Message:   "Data successfully loaded!",
		Theme:     in.Theme,
		Preview:   transform.Head(preview, transform.PreviewLimit),
		TotalRows: len(preview),
		DownloadURL: fmt.Sprintf("/download/%s?symbols=%s&start=%s&end=%s",
			report.CSVFilename,
			strings.Join(in.Symbols, ","),
			in.Range.Start.Format("2006-01-02"),
			in.Range.End.Format("2006-01-02")),
		Charts:   report.BuildCharts(data),
		Snapshot: snaps,
	}
	s.writeJSON(w, http.StatusOK, resp)

	s.record(&recorder.RunRecord{
		Symbols: data.Symbols,
		Range:   in.Range,
		Rows:    data.Rows(),
		Source:  s.col.Fetcher.Name(),
		Took:    time.Since(started),
	}, snaps)
	s.log.Infow("dashboard run", "symbols", data.Symbols, "rows", data.Rows())
}

func (s *DashboardServer) handleDownload(w http.ResponseWriter, r *http.Request) {
	in, err := s.parseInputs(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(in.Symbols) == 0 {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("no symbols selected"))
		return
	}

	data, err := s.col.Collect(in.Symbols, in.Range)
	if err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.CSVFilename+`"`)
	if err := report.WriteCSV(w, transform.BuildPreview(data)); err != nil {
		s.log.Warnw("csv export failed", "err", err)
	}
}

func (s *DashboardServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *DashboardServer) record(run *recorder.RunRecord, snaps []model.Snapshot) {
	if err := s.rec.RecordRun(run); err != nil {
		s.log.Warnw("record run failed", "err", err)
	}
	if err := s.rec.RecordSnapshots(snaps); err != nil {
		s.log.Warnw("record snapshots failed", "err", err)
	}
}

func (s *DashboardServer) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warnw("encode response failed", "err", err)
	}
}

func (s *DashboardServer) writeError(w http.ResponseWriter, code int, err error) {
	s.writeJSON(w, code, errorResponse{Error: err.Error()})
}
