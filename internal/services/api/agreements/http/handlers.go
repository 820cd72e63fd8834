// Package http provides http transport for the agreements catalog
package http

import (
	stdhttp "net/http"

	"convenios/internal/modkit/httpkit"
	"convenios/internal/services/api/agreements/domain"
	svc "convenios/internal/services/api/agreements/service"
)

// Register mounts catalog endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// filtered, sorted, paginated search over the catalog
	httpkit.PostJSON[domain.SearchInput](r, "/search", h.search)

	// distinct status labels present in the catalog
	httpkit.Get(r, "/statuses", h.statuses)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /agreements/search Agreements agreementsSearch
// @Summary Search the agreements catalog
// @Tags Agreements
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Filters, sort, and page"
// @Success 200 {array} domain.AgreementRow "ok"
// @Router /agreements/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	out, err := h.svc.Search(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.List(out.Items, out.Total, out.Page, out.Limit, ""), nil
}

// swagger:route GET /agreements/statuses Agreements agreementsStatuses
// @Summary List status labels present in the catalog
// @Tags Agreements
// @Produce json
// @Success 200 {object} domain.StatusesOutput "ok"
// @Router /agreements/statuses [get]
func (h *handlers) statuses(r *stdhttp.Request) (any, error) {
	labels, err := h.svc.Statuses(r.Context())
	if err != nil {
		return nil, err
	}
	if labels == nil {
		labels = []string{}
	}
	return domain.StatusesOutput{Statuses: labels}, nil
}
