package api

import (
	"net/http"
	"slices"

	"github.com/xy-planning-network/unitconv/convert"
	"github.com/xy-planning-network/unitconv/http/resp"
)

// A UnitsRequest is the query params Units accepts.
// Each unit param narrows the list to that unit.
type UnitsRequest struct {
	Units []convert.Unit `schema:"unit" validate:"omitempty,enum"`
}

// A UnitInfo describes a supported unit.
type UnitInfo struct {
	Unit   convert.Unit `json:"unit"`
	Name   string       `json:"name"`
	Pair   convert.Unit `json:"pair"`
	Rate   float64      `json:"rate"`
	Metric bool         `json:"metric"`
}

// NewUnitInfo describes u.
func NewUnitInfo(u convert.Unit) UnitInfo {
	return UnitInfo{Unit: u, Name: u.DisplayName(), Pair: u.Pair(), Rate: u.Rate(), Metric: u.IsMetric()}
}

// Units responds with a UnitInfo for every supported unit, in a stable order.
func (h *Handler) Units(w http.ResponseWriter, r *http.Request) {
	var ur UnitsRequest
	if !h.parse(w, r, &ur) {
		return
	}

	infos := make([]UnitInfo, 0, len(convert.Units()))
	for _, u := range convert.Units() {
		if len(ur.Units) > 0 && !slices.Contains(ur.Units, u) {
			continue
		}

		infos = append(infos, NewUnitInfo(u))
	}

	if err := h.Json(w, r, resp.Data(infos)); err != nil {
		h.Err(w, r, err)
	}
}
