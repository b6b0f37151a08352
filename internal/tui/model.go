package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arjun-sureshh/beestore-client/internal/adapter"
	"github.com/arjun-sureshh/beestore-client/internal/config"
	"github.com/arjun-sureshh/beestore-client/internal/service"
	"github.com/arjun-sureshh/beestore-client/models"
)

// page names the screen the model is currently rendering. The values mirror
// the storefront's routes so log lines line up with the web client.
type page string

const (
	pageWishlist page = "/User/Wishlist"
	pageLogin    page = "/User/Login"
	pageCart     page = "/User/Cart"
)

type wishlistModel struct {
	ctx      context.Context
	services *service.ClientServices
	cfg      *config.ClientConfig

	page      page
	buildInfo models.AppBuildInfo
	showInfo  bool

	entries []models.WishlistEntry
	idx     int
	loading bool
	syncing bool
	spinner spinner.Model
	status  string
	errMsg  string
	detail  bool

	// confirmTarget holds the variant id awaiting delete confirmation;
	// empty when no confirm overlay is up.
	confirmTarget string
	confirmName   string

	quitByUser bool
}

func newWishlistModel(ctx context.Context, services *service.ClientServices, cfg *config.ClientConfig, buildInfo models.AppBuildInfo) wishlistModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return wishlistModel{
		ctx:       ctx,
		services:  services,
		cfg:       cfg,
		buildInfo: buildInfo,
		page:      pageWishlist,
		spinner:   s,
		loading:   true,
	}
}

func (m wishlistModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdResolve(), m.cmdRefreshTick())
}

func (m wishlistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case identityResolvedMsg:
		m.loading = false
		if msg.err != nil {
			// Missing and rejected tokens both redirect silently; only
			// transport trouble is worth a hint on the sign-in page.
			if !errors.Is(msg.err, service.ErrNotSignedIn) && !errors.Is(msg.err, adapter.ErrUnauthorized) {
				m.errMsg = humanizeServerUnavailableError(msg.err)
			}
			m.page = pageLogin
			return m, nil
		}
		m.syncing = true
		return m, tea.Batch(m.spinner.Tick, m.cmdSync())

	case wishlistSyncedMsg:
		m.syncing = false
		m.entries = m.services.WishlistService.Entries()
		m.clampCursor()
		return m, nil

	case deleteDoneMsg:
		return m.applyDeleteResult(msg.result)

	case cartDoneMsg:
		return m.applyCartResult(msg.result)

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.status = "Copied variant id"
		return m, m.cmdClearStatusLater()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case refreshTickMsg:
		// The background refresher mutates the shared state outside the UI
		// loop; pick up whatever it left there.
		if m.page == pageWishlist && !m.loading && !m.syncing {
			m.entries = m.services.WishlistService.Entries()
			m.clampCursor()
		}
		return m, m.cmdRefreshTick()

	case spinner.TickMsg:
		if !m.loading && !m.syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showInfo {
		if key.Matches(keyMsg, keys.esc, keys.enter, keys.info) {
			m.showInfo = false
		}
		return m, nil
	}

	switch m.page {
	case pageLogin:
		return m.updateLoginPage(keyMsg)
	case pageCart:
		return m.updateCartPage(keyMsg)
	}

	if m.confirmTarget != "" {
		return m.updateConfirm(keyMsg)
	}

	if m.detail {
		switch {
		case key.Matches(keyMsg, keys.esc, keys.enter):
			m.detail = false
		case key.Matches(keyMsg, keys.copy):
			return m, m.cmdCopyVariantID()
		case key.Matches(keyMsg, keys.delete):
			m.detail = false
			m.startConfirmDelete()
		case key.Matches(keyMsg, keys.addCart):
			m.detail = false
			return m.startAddToCart()
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.current(); !ok {
			m.status = "No items in wishlist"
			return m, m.cmdClearStatusLater()
		}
		m.detail = true
	case key.Matches(keyMsg, keys.delete):
		m.startConfirmDelete()
	case key.Matches(keyMsg, keys.addCart):
		return m.startAddToCart()
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopyVariantID()
	case key.Matches(keyMsg, keys.refresh):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdSync())
	case key.Matches(keyMsg, keys.info):
		m.showInfo = true
	}

	return m, nil
}

func (m wishlistModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		target := m.confirmTarget
		m.confirmTarget = ""
		m.confirmName = ""
		return m, m.cmdDelete(target)
	case key.Matches(keyMsg, keys.no, keys.esc):
		m.confirmTarget = ""
		m.confirmName = ""
	}
	return m, nil
}

func (m wishlistModel) updateLoginPage(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(keyMsg, keys.refresh) {
		m.loading = true
		m.errMsg = ""
		m.page = pageWishlist
		return m, tea.Batch(m.spinner.Tick, m.cmdResolve())
	}
	return m, nil
}

func (m wishlistModel) updateCartPage(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(keyMsg, keys.esc, keys.enter) {
		m.page = pageWishlist
	}
	return m, nil
}

func (m *wishlistModel) startConfirmDelete() {
	item, ok := m.current()
	if !ok {
		m.status = "No items in wishlist"
		return
	}
	m.confirmTarget = item.VarientID
	m.confirmName = item.ProductName
}

func (m wishlistModel) startAddToCart() (tea.Model, tea.Cmd) {
	item, ok := m.current()
	if !ok {
		m.status = "No items in wishlist"
		return m, m.cmdClearStatusLater()
	}
	return m, m.cmdAddToCart(item)
}

func (m wishlistModel) applyDeleteResult(result service.DeleteResult) (tea.Model, tea.Cmd) {
	switch result.Outcome {
	case service.DeleteDone:
		m.entries = m.services.WishlistService.Entries()
		m.clampCursor()
		m.status = "Removed from wishlist"
		return m, m.cmdClearStatusLater()
	case service.DeleteNoSession:
		m.page = pageLogin
	case service.DeleteBusy:
		m.status = "Deletion in progress, please wait"
		return m, m.cmdClearStatusLater()
	case service.DeleteRejected:
		if m.cfg.App.SurfaceDeleteFailures {
			m.errMsg = "Failed to delete from wishlist: " + valueOrNA(result.Message)
		}
	case service.DeleteFailed:
		if m.cfg.App.SurfaceDeleteFailures {
			m.errMsg = "Failed to delete from wishlist"
		}
	}
	return m, nil
}

func (m wishlistModel) applyCartResult(result service.CartAddResult) (tea.Model, tea.Cmd) {
	switch result.Outcome {
	case service.CartDone:
		m.page = pageCart
		m.errMsg = ""
	case service.CartNoSession:
		m.page = pageLogin
	case service.CartOutOfStock:
		m.status = result.Message
		return m, m.cmdClearStatusLater()
	case service.CartNoVariant, service.CartFailed:
		m.errMsg = valueOrNA(result.Message)
	}
	return m, nil
}

func (m wishlistModel) current() (models.WishlistEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.WishlistEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m *wishlistModel) clampCursor() {
	if m.idx >= len(m.entries) {
		m.idx = len(m.entries) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m wishlistModel) cmdResolve() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService

	return func() tea.Msg {
		identity, err := svc.Resolve(ctx)
		return identityResolvedMsg{identity: identity, err: err}
	}
}

func (m wishlistModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	sessionSvc := m.services.SessionService
	wishlistSvc := m.services.WishlistService

	return func() tea.Msg {
		wishlistSvc.Sync(ctx, sessionSvc.Identity())
		return wishlistSyncedMsg{}
	}
}

func (m wishlistModel) cmdDelete(variantID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.MutationService

	return func() tea.Msg {
		return deleteDoneMsg{result: svc.RemoveEntry(ctx, variantID)}
	}
}

func (m wishlistModel) cmdAddToCart(item models.WishlistEntry) tea.Cmd {
	ctx := m.ctx
	svc := m.services.MutationService

	return func() tea.Msg {
		return cartDoneMsg{result: svc.AddToCart(ctx, item.VarientID, item.ProductStock, item.MinimumQty)}
	}
}

func (m wishlistModel) cmdCopyVariantID() tea.Cmd {
	item, ok := m.current()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(item.VarientID)}
	}
}

func (m wishlistModel) cmdClearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m wishlistModel) cmdRefreshTick() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m wishlistModel) View() string {
	if m.showInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	switch m.page {
	case pageLogin:
		return m.viewLoginPage()
	case pageCart:
		return m.viewCartPage()
	}

	if m.confirmTarget != "" {
		return m.viewConfirm()
	}

	if m.detail {
		item, ok := m.current()
		if !ok {
			return renderPage("PRODUCT", "Item not found", "esc: back")
		}
		return renderPage("PRODUCT", strings.TrimRight(m.viewDetail(item), "\n"),
			"a: add to cart │ d: delete │ c: copy id │ esc: back")
	}

	return m.viewWishlist()
}

func (m wishlistModel) viewWishlist() string {
	title := fmt.Sprintf("MY WISHLIST (%d)", len(m.entries))
	if m.syncing {
		title += "  " + m.spinner.View()
	}

	out := ""
	if m.loading {
		out += m.spinner.View() + " Loading...\n"
		return renderPage(title, strings.TrimRight(out, "\n"), wishlistHotKeys)
	}

	if m.errMsg != "" {
		out += errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += m.status + "\n"
	}

	if len(m.entries) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "No items in wishlist\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "    Product                        │ Price     │ Stock\n"
		out += "────────────────────────────────────┼───────────┼──────\n"
		for i, item := range m.entries {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			stock := fmt.Sprintf("%d", item.ProductStock)
			if item.ProductStock <= 0 {
				stock = "out"
			}
			out += fmt.Sprintf("%s %-2d │ %-30s │ %-9s │ %s\n",
				cursor, i+1, fitText(item.ProductName, 30), formatPrice(item.SellingPrice), stock)
		}
	}

	return renderPage(title, strings.TrimRight(out, "\n"), wishlistHotKeys)
}

const wishlistHotKeys = "a: add to cart │ d: delete │ enter: open │ c: copy id │ r: refresh │ i: info │ ↑/↓: nav"

func (m wishlistModel) viewDetail(item models.WishlistEntry) string {
	var b strings.Builder

	b.WriteString("Name    : " + valueOrNA(item.ProductName) + "\n")
	b.WriteString("Price   : " + formatPrice(item.SellingPrice))
	if strings.TrimSpace(item.MRP) != "" {
		b.WriteString("  (MRP " + formatPrice(item.MRP))
		if strings.TrimSpace(item.OfferPer) != "" {
			b.WriteString(", " + item.OfferPer + "% off")
		}
		b.WriteString(")")
	}
	b.WriteString("\n")
	b.WriteString("Rating  : " + valueOrNA(item.ProductRating) + "\n")
	b.WriteString("Orders  : " + valueOrNA(item.TotalOrders) + "\n")
	b.WriteString(fmt.Sprintf("Stock   : %d\n", item.ProductStock))
	b.WriteString(fmt.Sprintf("Min qty : %d\n", item.MinimumQty))
	b.WriteString("Variant : " + valueOrNA(item.VarientID) + "\n")
	b.WriteString("Image   : " + valueOrNA(resolveImageURL(m.cfg.Adapter.APIBaseURL, item.Image)))

	return b.String()
}

func (m wishlistModel) viewLoginPage() string {
	out := "Sign in required.\n\n"
	out += "Sign in to BeeStore from the web client, then restart or press r\n"
	out += "to retry with the stored session."
	if m.errMsg != "" {
		out += "\n\n" + errorStyle.Render("Error: "+m.errMsg)
	}
	return renderPage(string(pageLogin), out, "r: retry │ q: quit")
}

func (m wishlistModel) viewCartPage() string {
	out := "The item is in your cart.\n\n"
	out += "Open the BeeStore web client to review and check out."
	return renderPage(string(pageCart), out, "esc: back to wishlist │ q: quit")
}

func (m wishlistModel) viewConfirm() string {
	content := "Remove \"" + fitText(valueOrNA(m.confirmName), 40) + "\" from wishlist?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
