package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/models"
	"github.com/dmitrijs2005/storefront/internal/services"
	"github.com/dmitrijs2005/storefront/internal/state"
	"github.com/dmitrijs2005/storefront/internal/theme"
	"github.com/prometheus/common/expfmt"
)

var errUsage = errors.New("usage")

func (a *App) usage(text string) error {
	a.println("Usage: " + text)
	return errUsage
}

func (a *App) Login(ctx context.Context) error {
	if u, ok := a.state.User(); ok {
		a.printf("Already logged in as %s.\n", u.Name)
		return nil
	}

	restore := fmt.Sprintf("storefront%s> ", a.status())
	name, err := GetSimpleText(a.lines, "Name", restore)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.lines, "Email", restore)
	if err != nil {
		return err
	}

	u, err := a.authService.Login(ctx, services.LoginForm{Name: name, Email: email})
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			for _, f := range []string{"name", "email"} {
				if msg, ok := ve.Fields[f]; ok {
					a.println(a.paint.danger(msg))
				}
			}
		}
		return err
	}

	a.printf("Welcome, %s!\n", u.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	return nil
}

// Catalog returns to the catalog screen, or with an argument switches tab
// and reloads it.
func (a *App) Catalog(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.nav.GoToCatalog()
		return nil
	}

	tab, err := models.ParseTab(args[0])
	if err != nil {
		return a.usage("catalog [masculino|feminino]")
	}

	err = a.catalogService.OpenTab(ctx, tab)
	a.nav.GoToCatalog()
	if errors.Is(err, state.ErrSuperseded) {
		return nil
	}
	return err
}

func (a *App) Filter(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("filter <all|" + strings.Join(a.catalogService.Tab().Keys(), "|") + ">")
	}
	if err := a.catalogService.SetFilter(args[0]); err != nil {
		a.println(a.paint.danger(err.Error()))
		return err
	}
	a.renderCatalog()
	return nil
}

func (a *App) List(ctx context.Context) error {
	a.renderCatalog()
	return nil
}

func (a *App) Retry(ctx context.Context) error {
	err := a.catalogService.Retry(ctx)
	if errors.Is(err, state.ErrSuperseded) {
		err = nil
	}
	a.renderCatalog()
	return err
}

// Open selects a product from the loaded catalog and shows its details.
func (a *App) Open(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("open <id>")
	}
	id := args[0]

	for _, l := range models.Flatten(a.state.Catalog(), a.catalogService.Tab().Subcategories()) {
		if l.Product.IDString() == id {
				a.catalogService.Select(l.Product)
			return nil
		}
	}

	a.printf("Product %s is not in the loaded catalog; try 'show %s'.\n", id, id)
	return services.ErrProductNotFound
}

// Show opens the detail screen for any product id, fetching it if needed.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("show <id>")
	}
	a.nav.GoToDetail(args[0])
	return nil
}

func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		mode := a.state.ThemeMode()
		a.printf("Theme: %s (%s), effective: %s\n", mode, mode.Label(), a.state.EffectiveTheme(a.appearance))
		return nil
	}

	mode, err := theme.ParseMode(args[0])
	if err != nil {
		return a.usage("theme [light|dark|system]")
	}
	a.state.SetThemeMode(mode)
	a.println(a.paint.primary(fmt.Sprintf("Theme set to %s, effective: %s", mode.Label(), a.state.EffectiveTheme(a.appearance))))
	return nil
}

// Appearance sets what the host reports as its appearance; "none" means
// the host cannot tell.
func (a *App) Appearance(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("appearance <light|dark|none>")
	}

	switch args[0] {
	case "light":
		a.appearance.Set(theme.Light)
	case "dark":
		a.appearance.Set(theme.Dark)
	case "none":
		a.appearance.Set("")
	default:
		return a.usage("appearance <light|dark|none>")
	}
	a.printf("Appearance: %s, effective: %s\n", args[0], a.state.EffectiveTheme(a.appearance))
	return nil
}

func (a *App) Status(ctx context.Context) error {
	if u, ok := a.state.User(); ok {
		a.printf("User: %s <%s>\n", u.Name, u.Email)
	} else {
		a.println("User: (none)")
	}
	a.printf("Screen: %s\n", a.nav.Current().Route)
	a.printf("Tab: %s, filter: %s\n", a.catalogService.Tab(), a.catalogService.Filter())

	catalog := a.state.Catalog()
	n := 0
	for _, ps := range catalog {
		n += len(ps)
	}
	a.printf("Catalog: %d categories, %d products, generation %d, loading %t\n",
		len(catalog), n, a.state.Generation(), a.state.Loading())
	if err := a.state.CatalogError(); err != nil {
		a.printf("Last error: %v\n", err)
	}
	if p, ok := a.state.SelectedProduct(); ok {
		a.printf("Selected: %d %s\n", p.ID, p.Title)
	}
	a.printf("Theme: %s, effective: %s\n", a.state.ThemeMode(), a.state.EffectiveTheme(a.appearance))
	return nil
}

// Metrics prints the client's own collectors in the Prometheus text format.
func (a *App) Metrics(ctx context.Context) error {
	families, err := a.registry.Gather()
	if err != nil {
		a.println(a.paint.danger("Could not gather metrics: " + err.Error()))
		return err
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "storefront_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(a.out, mf); err != nil {
			return err
		}
	}
	return nil
}
