package handler

import (
	"encoding/xml"
	"fmt"
	"go-cms-app/internal/service"
	"net/http"
	"strconv"
	"strings"
)

// SeoHandler holds dependencies for SEO-related handlers.
type SeoHandler struct {
	pageService service.PageServicer
	publicURL   string
}

// NewSeoHandler creates a new SeoHandler. publicURL is the externally visible base URL.
func NewSeoHandler(ps service.PageServicer, publicURL string) *SeoHandler {
	return &SeoHandler{pageService: ps, publicURL: strings.TrimRight(publicURL, "/")}
}

// robotsHandler serves a static robots.txt file.
func (h *SeoHandler) robotsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "User-agent: *")
	fmt.Fprintln(w, "Disallow: /api/")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Sitemap: "+h.publicURL+"/sitemap.xml")
}

const sitemapDateFormat = "2006-01-02"

type sitemapURL struct {
	XMLName xml.Name `xml:"url"`
	Loc     string   `xml:"loc"`
	LastMod string   `xml:"lastmod"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// sitemapHandler generates and serves a dynamic sitemap.xml with one entry per page.
func (h *SeoHandler) sitemapHandler(w http.ResponseWriter, r *http.Request) {
	pages, err := h.pageService.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to retrieve pages for sitemap", http.StatusInternalServerError)
		return
	}

	sitemap := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, len(pages)),
	}

	for i, page := range pages {
		sitemap.URLs[i] = sitemapURL{
			Loc:     h.publicURL + "/page/" + strconv.FormatInt(page.ID, 10),
			LastMod: page.CreatedAt.Format(sitemapDateFormat),
		}
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Write([]byte(xml.Header))
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(sitemap); err != nil {
		http.Error(w, "Failed to generate sitemap XML", http.StatusInternalServerError)
		return
	}
}
