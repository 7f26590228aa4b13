package api

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/trogers1052/trade-transparency/internal/dashboard"
	"github.com/trogers1052/trade-transparency/internal/i18n"
	"github.com/trogers1052/trade-transparency/internal/trades"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageFuncs = template.FuncMap{
	"price":    dashboard.Price,
	"amount":   dashboard.Amount,
	"usdt":     dashboard.SignedUsdt,
	"percent":  dashboard.SignedPercent,
	"leverage": dashboard.Leverage,
	"ratio":    dashboard.Ratio,
	"inc":      func(i int) int { return i + 1 },
	"pageHead": func(lang, title string) map[string]string {
		return map[string]string{"Lang": lang, "Title": title}
	},
}

func parsePages() (*template.Template, error) {
	tpl, err := template.New("pages").Funcs(pageFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	return tpl, nil
}

type link struct {
	Label  string
	URL    string
	Active bool
}

type pageLink struct {
	Number   int
	URL      string
	Active   bool
	Ellipsis bool
}

type traderPageData struct {
	L        *i18n.Localizer
	Lang     string
	Page     *dashboard.TraderPage
	Periods  []link
	Pages    []pageLink
	PrevURL  string
	NextURL  string
	Locales  []link
	TraderID string
}

type tradePageData struct {
	L       *i18n.Localizer
	Lang    string
	Detail  *dashboard.Detail
	BackURL string
}

// IndexPage handles GET / by rendering the default trader
func (h *Handler) IndexPage(w http.ResponseWriter, r *http.Request) {
	id, err := h.service.DefaultTraderID(r.Context(), h.traderID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderTrader(w, r, id)
}

// TraderPage handles GET /traders/{id}
func (h *Handler) TraderPage(w http.ResponseWriter, r *http.Request) {
	h.renderTrader(w, r, mux.Vars(r)["id"])
}

// TradePage handles GET /traders/{id}/trades/{tradeID}
func (h *Handler) TradePage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	l := i18n.FromContext(r.Context())

	detail, err := h.service.Detail(r.Context(), vars["tradeID"], l)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if detail.Trade.TraderID != vars["id"] {
		h.renderError(w, r, fmt.Errorf("trade %s of trader %s: %w", vars["tradeID"], vars["id"], dashboard.ErrNotFound))
		return
	}

	back := r.URL.Query()
	back.Del("lang")
	h.render(w, "trade.html", tradePageData{
		L:       l,
		Lang:    l.Lang(),
		Detail:  detail,
		BackURL: traderURL(vars["id"], back.Get("period"), pageOf(back.Get("page")), l.Lang()),
	})
}

func (h *Handler) renderTrader(w http.ResponseWriter, r *http.Request, traderID string) {
	l := i18n.FromContext(r.Context())

	query, err := parseHistoryQuery(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	page, err := h.service.TraderPage(r.Context(), traderID, query, l)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	lang := l.Lang()
	period := query.Period.String()
	history := page.History

	data := traderPageData{
		L:        l,
		Lang:     lang,
		Page:     page,
		TraderID: traderID,
	}
	for _, p := range trades.Periods {
		data.Periods = append(data.Periods, link{
			Label:  l.T(p.MessageID()),
			URL:    traderURL(traderID, p.String(), 1, lang),
			Active: p == query.Period,
		})
	}
	for _, item := range history.PageNumbers {
		pl := pageLink{Number: item.Number, Ellipsis: item.Ellipsis, Active: item.Number == history.Page}
		if !item.Ellipsis {
			pl.URL = traderURL(traderID, period, item.Number, lang)
		}
		data.Pages = append(data.Pages, pl)
	}
	if history.HasPrev {
		data.PrevURL = traderURL(traderID, period, history.Page-1, lang)
	}
	if history.HasNext {
		data.NextURL = traderURL(traderID, period, history.Page+1, lang)
	}
	for _, tag := range i18n.Supported {
		data.Locales = append(data.Locales, link{
			Label:  tag.String(),
			URL:    traderURL(traderID, period, history.Page, tag.String()),
			Active: tag.String() == lang,
		})
	}

	h.render(w, "trader.html", data)
}

func (h *Handler) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("Failed to render page",
			zap.String("template", name),
			zap.Error(err),
		)
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("Page failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	h.pages.ExecuteTemplate(w, "error.html", map[string]interface{}{
		"Status":  status,
		"Message": http.StatusText(status),
	})
}

func traderURL(traderID, period string, page int, lang string) string {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if lang != "" {
		q.Set("lang", lang)
	}
	u := "/traders/" + url.PathEscape(traderID)
	if encoded := q.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

func pageOf(raw string) int {
	n, _ := strconv.Atoi(raw)
	return n
}
