package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/solmarket/price-assistant/internal/app/catalog/domain"
	"github.com/solmarket/price-assistant/internal/assistant"
	"github.com/solmarket/price-assistant/internal/obs"
	"github.com/solmarket/price-assistant/internal/voice"
)

// App holds the handler dependencies: the façade and, when the startup
// probe found one, the speaker. The speaker is consulted only when the
// voice flag is ON; the flag itself never re-checks the engine.
type App struct {
	Facade  *assistant.Facade
	Speaker voice.Speaker
}

func NewApp(f *assistant.Facade, sp voice.Speaker) *App {
	return &App{Facade: f, Speaker: sp}
}

type askRequest struct {
	Query string `json:"query"`
}

type answer struct {
	Response string `json:"response"`
	Speak    bool   `json:"speak"`
}

type saveProductRequest struct {
	Name      string `json:"name"`
	Wholesale string `json:"wholesale"`
	Retail    string `json:"retail"`
}

type saveProductReply struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type productRow struct {
	Name      string `json:"name"`
	Wholesale string `json:"wholesale"`
	Retail    string `json:"retail"`
}

type voiceReply struct {
	Enabled bool `json:"enabled"`
}

func (a *App) askHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		WriteJSONError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "expected application/json")
		return
	}
	var req askRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	resp, err := a.Facade.Ask(r.Context(), req.Query)
	if err != nil {
		st, code := classifyError(err)
		WriteJSONError(w, st, code, err.Error())
		return
	}

	a.respond(w, r, resp)
}

func (a *App) saveProductHandler(w http.ResponseWriter, r *http.Request) {
	var req saveProductRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if err := a.Facade.SaveProduct(r.Context(), req.Name, req.Wholesale, req.Retail); err != nil {
		st, code := classifyError(err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(st)
		_ = json.NewEncoder(w).Encode(saveProductReply{OK: false, Message: code + ": " + err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(saveProductReply{OK: true, Message: "Producto guardado"})
	obs.Logger.Info("product_saved",
		"name", req.Name,
		"request_id", RequestIDFromContext(r.Context()),
	)
}

func (a *App) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := a.Facade.ListProducts(r.Context())
	if err != nil {
		st, code := classifyError(err)
		WriteJSONError(w, st, code, err.Error())
		return
	}

	// The Display boundary renders prices at 0 decimals.
	rows := make([]productRow, 0, len(items))
	for _, p := range items {
		rows = append(rows, productRow{
			Name:      p.Name,
			Wholesale: domain.NewMoneyFromFloat(p.Wholesale).WholePesos(),
			Retail:    domain.NewMoneyFromFloat(p.Retail).WholePesos(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows)
}

func (a *App) productsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		a.saveProductHandler(w, r)
	case http.MethodGet:
		a.listProductsHandler(w, r)
	default:
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
	}
}

func (a *App) promotionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}

	resp, err := a.Facade.Promotion(r.Context())
	if err != nil {
		st, code := classifyError(err)
		WriteJSONError(w, st, code, err.Error())
		return
	}

	a.respond(w, r, resp)
}

func (a *App) toggleVoiceHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}

	enabled := a.Facade.ToggleVoice()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(voiceReply{Enabled: enabled})
	obs.Logger.Info("voice_toggled", "enabled", enabled)
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// respond writes the answer and forwards it to the speech engine when the
// voice flag is ON. Speaking happens off the request goroutine; a late or
// failed utterance must not fail the HTTP response.
func (a *App) respond(w http.ResponseWriter, r *http.Request, text string) {
	speak := a.Facade.VoiceEnabled() && a.Speaker != nil

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(answer{Response: text, Speak: a.Facade.VoiceEnabled()})

	if speak {
		go func(sp voice.Speaker, text string) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := sp.Speak(ctx, text); err != nil {
				obs.Logger.Warn("speak_failed", "err", err.Error())
			}
		}(a.Speaker, text)
	}
}
