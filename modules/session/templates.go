// Package session wires the storefront together: it builds the markup
// tree from templates, constructs every render unit, registers every
// bus handler, and owns the closed DOM -> event -> mutation -> event
// -> DOM loop.
package session

import "github.com/example/storefront-demo/markup"

// Template names used by the wiring.
const (
	tmplPage        = "page"
	tmplModal       = "modal"
	tmplCardCatalog = "card-catalog"
	tmplCardPreview = "card-preview"
	tmplCardBasket  = "card-basket"
	tmplBasket      = "basket"
	tmplOrder       = "order"
	tmplContacts    = "contacts"
	tmplSuccess     = "success"
)

// BuildTemplates constructs the markup fragments every render unit
// clones from.
func BuildTemplates() *markup.Templates {
	t := markup.NewTemplates()

	t.Register(tmplPage, markup.New("body", "page").Append(
		markup.New("div", "page__wrapper").Append(
			markup.New("header", "header").Append(
				markup.New("button", "header__basket").Append(
					markup.New("span", "header__basket-counter"),
				),
			),
			markup.New("main", "gallery"),
		),
	))

	t.Register(tmplModal, markup.New("div", "modal").Append(
		markup.New("div", "modal__container").Append(
			markup.New("button", "modal__close"),
			markup.New("div", "modal__content"),
		),
	))

	t.Register(tmplCardCatalog, markup.New("button", "card").Append(
		markup.New("span", "card__category"),
		markup.New("h2", "card__title"),
		markup.New("img", "card__image"),
		markup.New("span", "card__price"),
	))

	t.Register(tmplCardPreview, markup.New("div", "card", "card_full").Append(
		markup.New("img", "card__image"),
		markup.New("div", "card__column").Append(
			markup.New("span", "card__category"),
			markup.New("h2", "card__title"),
			markup.New("p", "card__text"),
			markup.New("div", "card__row").Append(
				markup.New("button", "button", "card__button"),
				markup.New("span", "card__price"),
			),
		),
	))

	t.Register(tmplCardBasket, markup.New("li", "basket__item", "card", "card_compact").Append(
		markup.New("span", "basket__item-index"),
		markup.New("span", "card__title"),
		markup.New("span", "card__price"),
		markup.New("button", "basket__item-delete", "card__button"),
	))

	t.Register(tmplBasket, markup.New("div", "basket").Append(
		markup.New("h2", "modal__title"),
		markup.New("ul", "basket__list"),
		markup.New("div", "modal__actions").Append(
			markup.New("button", "button", "basket__button"),
			markup.New("span", "basket__price"),
		),
	))

	t.Register(tmplOrder, markup.New("form", "form").SetAttr("name", "order").Append(
		markup.New("div", "order__buttons").Append(
			markup.New("button", "button", "button_alt").SetAttr("name", "card"),
			markup.New("button", "button", "button_alt").SetAttr("name", "cash"),
		),
		markup.New("input", "form__input").SetAttr("name", "address"),
		markup.New("div", "modal__actions").Append(
			markup.New("button", "button", "order__button", "form__submit"),
			markup.New("span", "form__errors"),
		),
	))

	t.Register(tmplContacts, markup.New("form", "form").SetAttr("name", "contacts").Append(
		markup.New("input", "form__input").SetAttr("name", "email"),
		markup.New("input", "form__input").SetAttr("name", "phone"),
		markup.New("div", "modal__actions").Append(
			markup.New("button", "button", "form__submit"),
			markup.New("span", "form__errors"),
		),
	))

	t.Register(tmplSuccess, markup.New("div", "order-success").Append(
		markup.New("h2", "order-success__title"),
		markup.New("p", "order-success__description"),
		markup.New("button", "button", "order-success__close"),
	))

	return t
}
