// Package serverapp wires the engine behind an HTTP API. The transport is
// deliberately thin: it decodes requests, calls one engine operation, and
// maps typed failures to status codes.
package serverapp

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"clickstudio/internal/config"
	"clickstudio/internal/game"
	"clickstudio/internal/httpmw"
	"clickstudio/internal/player"
)

type Options struct {
	Config *config.Config
	Engine *game.Engine
	Logger *log.Logger
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Engine == nil {
		return nil, errors.New("engine is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	s := &server{engine: opts.Engine, cfg: opts.Config}

	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "clickstudio",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})
	if opts.Config.Server.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)

		r.Route("/players/{id}", func(r chi.Router) {
			r.Get("/profile", s.handleProfile)
			r.Post("/click", s.handleClick)

			r.Get("/orders/offers", s.handleOffers)
			r.Post("/orders/accept", s.handleAcceptOrder)
			r.Post("/orders/cancel", s.handleCancelOrder)

			r.Post("/shop/boosts", s.handleBuyBoost)
			r.Post("/shop/items", s.handleBuyItem)
			r.Post("/equipment", s.handleEquip)
			r.Post("/team", s.handleHireTeam)

			r.Get("/events/pending", s.handlePendingEvent)
			r.Post("/events/resolve", s.handleResolveEvent)

			r.Post("/quests/{quest}/start", s.handleStartQuest)
			r.Post("/quests/{quest}/choose", s.handleChooseQuestOption)

			r.Post("/skills", s.handleChooseSkill)

			r.Get("/prestige", s.handlePrestigePreview)
			r.Post("/prestige", s.handlePrestigeReset)

			r.Get("/journal", s.handleJournal)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.requireAdmin)
			r.Post("/trend", s.handleRollTrend)
			r.Post("/players/{id}/shield", s.handleGrantShield)
			r.Post("/players/{id}/events", s.handleTriggerEvent)
		})
	})

	return httpmw.Chain(
		r,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	), nil
}

type server struct {
	engine *game.Engine
	cfg    *config.Config
}

func (s *server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := s.cfg.Server.AdminToken
		if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type codeRequest struct {
	Code string `json:"code"`
}

type choiceRequest struct {
	Choice string `json:"choice"`
}

func (s *server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Catalog)
}

func (s *server) handleProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.engine.Profile(r.Context(), chi.URLParam(r, "id"))
	respond(w, profile, err)
}

func (s *server) handleClick(w http.ResponseWriter, r *http.Request) {
	res, err := s.engine.Click(r.Context(), chi.URLParam(r, "id"))
	respond(w, res, err)
}

func (s *server) handleOffers(w http.ResponseWriter, r *http.Request) {
	n := 3
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = parsed
	}
	offers, err := s.engine.Offers(r.Context(), chi.URLParam(r, "id"), n)
	respond(w, offers, err)
}

func (s *server) handleAcceptOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Template string `json:"template"`
	}
	if !decode(w, r, &req) {
		return
	}
	res, err := s.engine.AcceptOrder(r.Context(), chi.URLParam(r, "id"), req.Template)
	respond(w, res, err)
}

func (s *server) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	err := s.engine.CancelOrder(r.Context(), chi.URLParam(r, "id"))
	respond(w, map[string]any{"cancelled": err == nil}, err)
}

func (s *server) handleBuyBoost(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.engine.BuyBoost(r.Context(), chi.URLParam(r, "id"), req.Code)
	respond(w, res, err)
}

func (s *server) handleBuyItem(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.engine.BuyItem(r.Context(), chi.URLParam(r, "id"), req.Code)
	respond(w, res, err)
}

func (s *server) handleEquip(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if !decode(w, r, &req) {
		return
	}
	err := s.engine.EquipItem(r.Context(), chi.URLParam(r, "id"), req.Code)
	respond(w, map[string]any{"equipped": err == nil}, err)
}

func (s *server) handleHireTeam(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.engine.HireTeam(r.Context(), chi.URLParam(r, "id"), req.Code)
	respond(w, res, err)
}

func (s *server) handlePendingEvent(w http.ResponseWriter, r *http.Request) {
	view, err := s.engine.PendingEvent(r.Context(), chi.URLParam(r, "id"))
	if err == nil && view == nil {
		writeJSON(w, http.StatusOK, map[string]any{"pending": nil})
		return
	}
	respond(w, view, err)
}

func (s *server) handleResolveEvent(w http.ResponseWriter, r *http.Request) {
	var req choiceRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.engine.ResolvePendingEvent(r.Context(), chi.URLParam(r, "id"), req.Choice)
	respond(w, res, err)
}

func (s *server) handleStartQuest(w http.ResponseWriter, r *http.Request) {
	view, err := s.engine.StartQuest(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "quest"))
	respond(w, view, err)
}

func (s *server) handleChooseQuestOption(w http.ResponseWriter, r *http.Request) {
	var req choiceRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.engine.ChooseQuestOption(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "quest"), req.Choice)
	respond(w, res, err)
}

func (s *server) handleChooseSkill(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.engine.ChooseSkill(r.Context(), chi.URLParam(r, "id"), req.Code)
	respond(w, res, err)
}

func (s *server) handlePrestigePreview(w http.ResponseWriter, r *http.Request) {
	view, err := s.engine.PrestigePreview(r.Context(), chi.URLParam(r, "id"))
	respond(w, view, err)
}

func (s *server) handlePrestigeReset(w http.ResponseWriter, r *http.Request) {
	view, err := s.engine.PrestigeReset(r.Context(), chi.URLParam(r, "id"))
	respond(w, view, err)
}

func (s *server) handleJournal(w http.ResponseWriter, r *http.Request) {
	if s.engine.Journal == nil {
		writeJSON(w, http.StatusOK, []any{})
		return
	}
	since := time.Time{}
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "since must be RFC3339")
			return
		}
		since = parsed
	}
	entries, err := s.engine.Journal.Entries(chi.URLParam(r, "id"), since)
	respond(w, entries, err)
}

func (s *server) handleRollTrend(w http.ResponseWriter, r *http.Request) {
	trend, err := s.engine.RollTrend(r.Context())
	respond(w, trend, err)
}

func (s *server) handleGrantShield(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Charges int `json:"charges"`
	}
	if !decode(w, r, &req) {
		return
	}
	total, err := s.engine.GrantShield(r.Context(), chi.URLParam(r, "id"), req.Charges)
	respond(w, map[string]any{"charges": total}, err)
}

func (s *server) handleTriggerEvent(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.engine.TriggerEvent(r.Context(), chi.URLParam(r, "id"), req.Code)
	respond(w, res, err)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func respond(w http.ResponseWriter, v any, err error) {
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, player.ErrNotFound),
		errors.Is(err, game.ErrUnknownOrder),
		errors.Is(err, game.ErrUnknownBoost),
		errors.Is(err, game.ErrUnknownItem),
		errors.Is(err, game.ErrUnknownRole),
		errors.Is(err, game.ErrUnknownSkill),
		errors.Is(err, game.ErrUnknownQuest),
		errors.Is(err, game.ErrUnknownEvent):
		return http.StatusNotFound
	case errors.Is(err, game.ErrInsufficientFunds),
		errors.Is(err, game.ErrLevelLocked),
		errors.Is(err, game.ErrOrderAlreadyActive),
		errors.Is(err, game.ErrNoActiveOrder),
		errors.Is(err, game.ErrItemAlreadyOwned),
		errors.Is(err, game.ErrItemNotForSale),
		errors.Is(err, game.ErrNothingToEquip),
		errors.Is(err, game.ErrPendingEventExists),
		errors.Is(err, game.ErrNoPendingEvent),
		errors.Is(err, game.ErrNoSkillChoice),
		errors.Is(err, game.ErrQuestAlreadyComplete),
		errors.Is(err, game.ErrUnrecognizedChoice):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}
