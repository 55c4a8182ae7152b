package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/chenmo1212/foodorder/internal/repositories"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListDishes(w http.ResponseWriter, r *http.Request) {
	q := repositories.DishQuery{
		Category: r.URL.Query().Get("category"),
		SortBy:   r.URL.Query().Get("sort_by"),
		Order:    r.URL.Query().Get("order"),
		Limit:    intParam(r, "limit", 100),
		Skip:     intParam(r, "skip", 0),
	}
	if v := r.URL.Query().Get("is_active"); v != "" {
		active := strings.EqualFold(v, "true")
		q.IsActive = &active
	}

	dishes, total, err := s.dishes.GetAll(r.Context(), q)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respond(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    dishes,
		"total":   total,
		"limit":   q.Limit,
		"skip":    q.Skip,
	})
}

func (s *Server) handleGetDish(w http.ResponseWriter, r *http.Request) {
	dishID, err := strconv.Atoi(chi.URLParam(r, "dishID"))
	if err != nil {
		s.fail(w, http.StatusBadRequest, "invalid dish id")
		return
	}

	dish, err := s.dishes.GetByID(r.Context(), dishID)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if dish == nil {
		s.fail(w, http.StatusNotFound, "Dish not found")
		return
	}
	s.ok(w, http.StatusOK, dish)
}

func (s *Server) handlePopularDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := s.dishes.GetPopular(r.Context(), intParam(r, "limit", 10))
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.ok(w, http.StatusOK, dishes)
}

func (s *Server) handleSearchDishes(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")
	if keyword == "" {
		s.fail(w, http.StatusBadRequest, "Search keyword is required")
		return
	}

	dishes, err := s.dishes.Search(r.Context(), keyword)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respond(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    dishes,
		"total":   len(dishes),
	})
}

func (s *Server) handleUpdateStock(w http.ResponseWriter, r *http.Request) {
	dishID, err := strconv.Atoi(chi.URLParam(r, "dishID"))
	if err != nil {
		s.fail(w, http.StatusBadRequest, "invalid dish id")
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dish, err := s.dishes.UpdateStock(r.Context(), dishID, body.Quantity)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if dish == nil {
		s.fail(w, http.StatusNotFound, "Dish not found")
		return
	}
	s.ok(w, http.StatusOK, dish)
}

func (s *Server) handleDishStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.dishes.Stats(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.ok(w, http.StatusOK, stats)
}

func intParam(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
