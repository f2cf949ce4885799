package server

import (
	_ "embed"
	"html/template"
	"net/http"
	"time"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

type candidate struct {
	Symbol  string
	Checked bool
}

type pageData struct {
	Candidates   []candidate
	DefaultStart string
	DefaultEnd   string
}

func (s *DashboardServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	defaults := make(map[string]bool, len(s.cfg.Market.Defaults))
	for _, sym := range s.cfg.Market.Defaults {
		defaults[sym] = true
	}
	data := pageData{
		DefaultStart: s.cfg.Market.DefaultStart,
		DefaultEnd:   time.Now().Format("2006-01-02"),
	}
	for _, sym := range s.cfg.Market.Candidates {
		data.Candidates = append(data.Candidates, candidate{Symbol: sym, Checked: defaults[sym]})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		s.log.Warnw("render index failed", "err", err)
	}
}
