package metrics

import (
	"encoding/json"
	"net/http"
	"sync"
)

// Supervisor components that report their state
const (
	ComponentConfig      = "config"
	ComponentGossipPeers = "gossip-peers"
	ComponentHTTP        = "http-gateway"
)

// Report is the JSON body of the /health, /ready and /live responses
type Report struct {
	Status     string            `json:"status"`
	Version    string            `json:"version,omitempty"`
	Detail     string            `json:"detail,omitempty"`
	Components map[string]string `json:"components,omitempty"`
}

type componentState struct {
	ok     bool
	detail string
}

var state = struct {
	sync.RWMutex
	version    string
	components map[string]componentState
}{components: make(map[string]componentState)}

// SetVersion sets the version shown in every report
func SetVersion(version string) {
	state.Lock()
	defer state.Unlock()
	state.version = version
}

// SetComponent records whether a component is working. detail is shown next
// to it in the health report; the latest call for a name wins.
func SetComponent(name string, ok bool, detail string) {
	state.Lock()
	defer state.Unlock()
	state.components[name] = componentState{ok: ok, detail: detail}
}

// Health reports "ok" unless some component has reported a failure
func Health() Report {
	state.RLock()
	defer state.RUnlock()

	report := Report{
		Status:     "ok",
		Version:    state.version,
		Components: make(map[string]string, len(state.components)),
	}
	for name, c := range state.components {
		line := "ok"
		if !c.ok {
			line = "failing"
			report.Status = "failing"
		}
		if c.detail != "" {
			line += ": " + c.detail
		}
		report.Components[name] = line
	}
	return report
}

// Readiness reports "ready" once the configuration is published, with the
// published command and topology as detail. Unreachable peers do not affect it.
func Readiness() Report {
	state.RLock()
	defer state.RUnlock()

	cfg, ok := state.components[ComponentConfig]
	if !ok || !cfg.ok {
		return Report{Status: "waiting", Version: state.version, Detail: "configuration not published"}
	}
	return Report{Status: "ready", Version: state.version, Detail: cfg.detail}
}

// HealthHandler serves Health, with 503 while anything is failing
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := Health()
		writeReport(w, report, report.Status == "ok")
	}
}

// ReadyHandler serves Readiness, with 503 until the configuration is published
func ReadyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := Readiness()
		writeReport(w, report, report.Status == "ready")
	}
}

// LiveHandler answers 200 for as long as the process can serve HTTP
func LiveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state.RLock()
		version := state.version
		state.RUnlock()
		writeReport(w, Report{Status: "alive", Version: version}, true)
	}
}

func writeReport(w http.ResponseWriter, report Report, ok bool) {
	code := http.StatusOK
	if !ok {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(report)
}
