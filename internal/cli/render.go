package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/models"
	"github.com/dmitrijs2005/storefront/internal/navigation"
	"github.com/dmitrijs2005/storefront/internal/services"
	"github.com/dmitrijs2005/storefront/internal/theme"
)

// painter colors text with the palette of the effective theme. The palette
// is looked up on every call so theme changes apply immediately.
type painter struct {
	enabled bool
	palette func() theme.Palette
}

func (p painter) title(s string) string {
	if !p.enabled {
		return s
	}
	return "\x1b[1m" + p.fg(func(c theme.Palette) string { return c.Text }, s)
}

func (p painter) subtitle(s string) string {
	return p.fg(func(c theme.Palette) string { return c.Subtitle }, s)
}

func (p painter) primary(s string) string {
	return p.fg(func(c theme.Palette) string { return c.Primary }, s)
}

func (p painter) danger(s string) string {
	return p.fg(func(c theme.Palette) string { return c.Danger }, s)
}

func (p painter) fg(pick func(theme.Palette) string, s string) string {
	if !p.enabled || p.palette == nil {
		return s
	}
	r, g, b, ok := parseHex(pick(p.palette()))
	if !ok {
		return s
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
}

// on draws s in the fg color over the bg color.
func (p painter) on(fg, bg func(theme.Palette) string, s string) string {
	if !p.enabled || p.palette == nil {
		return s
	}
	c := p.palette()
	fr, fgr, fb, ok := parseHex(fg(c))
	br, bgr, bb, ok2 := parseHex(bg(c))
	if !ok || !ok2 {
		return s
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%d;48;2;%d;%d;%dm%s\x1b[0m", fr, fgr, fb, br, bgr, bb, s)
}

// parseHex reads "#rrggbb".
func parseHex(hex string) (r, g, b uint8, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// routeChanged records the latest transition. It may run on any goroutine
// that navigates; drawing is left to syncRoute.
func (a *App) routeChanged(e navigation.Event) {
	a.routeMu.Lock()
	defer a.routeMu.Unlock()
	a.pending = &e
}

// syncRoute draws the screen of the latest transition, if any arrived since
// the last call.
func (a *App) syncRoute(ctx context.Context) {
	a.routeMu.Lock()
	cur := a.pending
	a.pending = nil
	a.routeMu.Unlock()
	if cur == nil {
		return
	}

	switch cur.Route {
	case navigation.RouteLogin:
		a.println(a.paint.subtitle("Signed out. Type 'login' to sign in."))
	case navigation.RouteCatalog:
		if len(a.state.Catalog()) == 0 && a.state.CatalogError() == nil {
			_ = a.catalogService.OpenTab(ctx, a.catalogService.Tab())
		}
		a.renderCatalog()
	case navigation.RouteDetail:
		a.renderDetail(ctx, cur.ProductID)
	}
}

func (a *App) renderCatalog() {
	tab := a.catalogService.Tab()
	filter := a.catalogService.Filter()

	a.println(a.paint.title(tabTitle(tab)))

	chips := []string{chip(a.paint, tab.Label(models.AllSubcategories), filter == models.AllSubcategories)}
	for _, s := range tab.Subcategories() {
		chips = append(chips, chip(a.paint, s.Label, filter == s.Key))
	}
	a.println(strings.Join(chips, " "))

	if a.state.Loading() {
		a.println(a.paint.subtitle("Loading..."))
		return
	}
	if err := a.state.CatalogError(); err != nil {
		a.println(a.paint.danger("Could not load products. Type 'retry' to try again."))
		a.log.Debug(context.Background(), "catalog error shown", "error", err)
		return
	}

	listings := a.catalogService.Listings()
	if len(listings) == 0 {
		a.println(a.paint.subtitle("No products."))
		return
	}
	for _, l := range listings {
		a.println(listingLine(a.paint, l.Product))
	}
}

func (a *App) renderDetail(ctx context.Context, id string) {
	p, err := a.catalogService.ResolveDetail(ctx, id)
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		a.println(a.paint.danger("Product not found."))
		return
	case err != nil:
		a.println(a.paint.danger("Could not load product. Try 'show " + id + "' again."))
		return
	}

	a.println(a.paint.title(p.Title))
	price := a.paint.primary(p.FormattedPrice())
	if p.HasVisibleDiscount() {
		price += "  " + a.paint.primary(p.DiscountLabel())
	}
	a.println(price)

	if p.Brand != nil {
		a.printf("Brand: %s\n", *p.Brand)
	}
	if p.Category != nil {
		a.printf("Category: %s\n", *p.Category)
	}
	if p.Rating != nil {
		a.printf("Rating: %.1f\n", *p.Rating)
	}
	if p.Stock != nil {
		a.printf("Stock: %d\n", *p.Stock)
	}
	if p.Description != "" {
		a.println(a.paint.subtitle(p.Description))
	}
	if n := len(p.Images); n > 0 {
		a.printf("Images: %d\n", n)
	}
}

func tabTitle(t models.Tab) string {
	switch t {
	case models.TabFemale:
		return "Feminino"
	default:
		return "Masculino"
	}
}

func chip(p painter, label string, active bool) string {
	if active {
		return p.on(
			func(c theme.Palette) string { return c.Primary },
			func(c theme.Palette) string { return c.Surface },
			"["+label+"]")
	}
	return p.on(
		func(c theme.Palette) string { return c.Subtitle },
		func(c theme.Palette) string { return c.Background },
		label)
}

func listingLine(p painter, pr models.Product) string {
	line := fmt.Sprintf("%5d  %-40s  %s", pr.ID, pr.Title, p.primary(pr.FormattedPrice()))
	if pr.HasVisibleDiscount() {
		line += "  " + p.primary(pr.DiscountLabel())
	}
	return line
}
