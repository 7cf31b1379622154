package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// ProxyHandler forwards anything under /api/clickup/ to the ClickUp API,
// injecting the server-held token and relaying the upstream status and JSON
// body verbatim. It holds no state across requests; the token is resolved
// per request so a rotated secret takes effect without a restart.
type ProxyHandler struct {
	upstreamBase string
	token        func() string
	httpClient   *http.Client
}

func NewProxyHandler(upstreamBase string, token func() string) *ProxyHandler {
	return &ProxyHandler{
		upstreamBase: strings.TrimSuffix(upstreamBase, "/"),
		token:        token,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (h *ProxyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := h.token()
	if token == "" {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "ClickUp API token not configured",
			"message": "Please set CLICKUP_API_TOKEN in the environment.",
		})
		return
	}

	path := r.PathValue("path")
	// The upstream base is the only place this handler may reach.
	for _, segment := range strings.Split(path, "/") {
		if segment == ".." {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "Invalid path",
			})
			return
		}
	}

	url := h.upstreamBase + "/" + path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	var body io.Reader
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		body = r.Body
	}

	req, err := http.NewRequest(r.Method, url, body)
	if err != nil {
		log.Printf("proxy: erro ao montar request: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch from ClickUp",
		})
		return
	}
	req.Header.Set("Authorization", token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		log.Printf("proxy: erro no upstream: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch from ClickUp",
		})
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("proxy: erro ao ler resposta: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch from ClickUp",
		})
		return
	}

	// The contract is JSON-in, JSON-out; anything else from upstream is a
	// forwarding failure, not something to relay.
	if !json.Valid(data) {
		log.Printf("proxy: resposta upstream não é JSON (status %d)", resp.StatusCode)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch from ClickUp",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
