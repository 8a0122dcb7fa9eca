package tui

import (
	"fmt"
	"strings"

	"github.com/weblarek/larek/internal/domain"
)

const msgCatalogFailed = "Не удалось загрузить каталог. Попробуйте позже."

func (a *App) View() string {
	if !a.ready {
		return "загрузка…"
	}

	base := a.catalogView()
	switch a.vs.modal {
	case modalPreview:
		return renderPopup(base, a.previewView(), a.width, a.height)
	case modalCart:
		return renderPopup(base, a.cartView(), a.width, a.height)
	case modalDelivery:
		return renderPopup(base, a.deliveryView(), a.width, a.height)
	case modalContacts:
		return renderPopup(base, a.contactsView(), a.width, a.height)
	case modalSuccess:
		return renderPopup(base, a.successView(), a.width, a.height)
	}
	return base
}

// --- base view -------------------------------------------------------------

func (a *App) catalogView() string {
	var b strings.Builder

	badge := badgeStyle.Render(fmt.Sprintf("корзина: %d", a.vs.headerCount))
	b.WriteString(titleStyle.Render("Web-ларёк") + "  " + badge + "\n\n")

	if a.searching || a.search.Value() != "" {
		b.WriteString("/" + a.search.View() + "\n\n")
	}

	switch {
	case len(a.vs.catalogItems) == 0 && a.vs.loadFailed:
		b.WriteString(errorStyle.Render(msgCatalogFailed) + "\n")
	case len(a.visible) == 0:
		b.WriteString(dimStyle.Render("ничего не найдено") + "\n")
	default:
		for i, p := range a.visible {
			b.WriteString(a.catalogRow(i, p) + "\n")
		}
	}

	b.WriteString("\n" + footerStyle.Render("enter товар · b корзина · / поиск · q выход"))
	return b.String()
}

func (a *App) catalogRow(i int, p domain.Product) string {
	prefix := "  "
	if i == a.catCursor {
		prefix = cursorStyle.Render("> ")
	}
	mark := "  "
	if a.vs.inCart[p.ID] {
		mark = okStyle.Render("✓ ")
	}
	title := padRight(p.Title, 34)
	tag := tagStyle.Render(padRight(string(p.Category), 16))
	return prefix + mark + title + tag + priceStyle.Render(a.price(p))
}

// --- modals ----------------------------------------------------------------

func (a *App) previewView() string {
	p := a.vs.previewProduct
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title) + "\n")
	b.WriteString(tagStyle.Render(string(p.Category)) + "  " + priceStyle.Render(a.price(p)) + "\n\n")
	b.WriteString(wrap(p.Description, 48) + "\n\n")

	switch {
	case a.vs.previewInCart:
		b.WriteString("[ enter: Удалить из корзины ]")
	case p.Purchasable():
		b.WriteString("[ enter: Купить ]")
	default:
		b.WriteString(dimStyle.Render("[ Недоступно ]"))
	}
	b.WriteString(dimStyle.Render("  esc: закрыть"))
	return b.String()
}

func (a *App) cartView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Корзина") + "\n\n")

	if len(a.vs.cartItems) == 0 {
		b.WriteString(dimStyle.Render("Корзина пуста") + "\n")
	} else {
		for i, p := range a.vs.cartItems {
			prefix := "  "
			if i == a.cartCursor {
				prefix = cursorStyle.Render("> ")
			}
			b.WriteString(fmt.Sprintf("%s%d. %s %s\n", prefix, i+1, padRight(p.Title, 34), priceStyle.Render(a.price(p))))
		}
	}

	b.WriteString("\n" + "Итого: " + priceStyle.Render(a.total(a.vs.cartTotal)) + "\n\n")
	if len(a.vs.cartItems) == 0 {
		b.WriteString(dimStyle.Render("[ Оформить ]"))
	} else {
		b.WriteString("[ enter: Оформить ]")
	}
	b.WriteString(dimStyle.Render("  x: убрать · esc: закрыть"))
	return b.String()
}

func (a *App) deliveryView() string {
	d := a.vs.delivery
	var b strings.Builder
	b.WriteString(titleStyle.Render("Способ оплаты и доставка") + "\n\n")

	card, cash := "( ) Онлайн", "( ) При получении"
	if d.Payment == domain.PaymentCard {
		card = "(•) Онлайн"
	} else {
		cash = "(•) При получении"
	}
	b.WriteString(formStyle.Render(card+"   "+cash) + dimStyle.Render("  ←/→") + "\n\n")

	b.WriteString("Адрес: " + a.address.View() + "\n\n")

	if d.Error != "" {
		b.WriteString(errorStyle.Render(d.Error) + "\n\n")
	}
	if d.Valid {
		b.WriteString("[ enter: Далее ]")
	} else {
		b.WriteString(dimStyle.Render("[ Далее ]"))
	}
	b.WriteString(dimStyle.Render("  esc: закрыть"))
	return b.String()
}

func (a *App) contactsView() string {
	c := a.vs.contacts
	var b strings.Builder
	b.WriteString(titleStyle.Render("Контакты") + "\n\n")

	b.WriteString("Email:   " + a.email.View() + "\n")
	b.WriteString("Телефон: " + a.phone.View() + "\n\n")

	if c.Error != "" {
		b.WriteString(errorStyle.Render(c.Error) + "\n\n")
	}

	switch {
	case c.Submitting:
		b.WriteString(a.spin.View() + " Оформляем заказ…")
	case c.Valid:
		b.WriteString("[ enter: Оплатить ]")
	default:
		b.WriteString(dimStyle.Render("[ Оплатить ]"))
	}
	if !c.Submitting {
		b.WriteString(dimStyle.Render("  tab: поле · esc: закрыть"))
	}
	return b.String()
}

func (a *App) successView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Заказ оформлен") + "\n\n")
	b.WriteString("Списано " + priceStyle.Render(a.total(a.vs.successTotal)) + "\n\n")
	b.WriteString("[ enter: За новыми покупками! ]")
	return b.String()
}

// --- helpers ---------------------------------------------------------------

func (a *App) price(p domain.Product) string {
	if !p.Purchasable() {
		return "Бесценно"
	}
	return a.total(p.PriceValue())
}

func (a *App) total(n int) string {
	return fmt.Sprintf("%d %s", n, a.cfg.UI.Currency)
}

func padRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// wrap does naive word wrapping for the preview description.
func wrap(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	line := 0
	for i, w := range words {
		wlen := len([]rune(w))
		if line > 0 && line+1+wlen > width {
			b.WriteString("\n")
			line = 0
		} else if i > 0 {
			b.WriteString(" ")
			line++
		}
		b.WriteString(w)
		line += wlen
	}
	return b.String()
}
