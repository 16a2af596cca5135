package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/avantiadvisory/avantiag.com/internal/content"
)

// HomePage renders the landing page from the assembled tree.
func HomePage(pc content.PageContent, t Translator) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		home := pc.Home
		fmt.Fprintf(w, `<section class="hero">`)
		for _, image := range home.Hero.Images {
			fmt.Fprintf(w, `<img class="hero-slide" src="%s" alt="">`, esc(image))
		}
		fmt.Fprintf(w, `<h1>%s</h1><h2>%s</h2><p>%s</p>`,
			esc(home.Hero.Title), esc(home.Hero.Subtitle), esc(home.Hero.Description))
		fmt.Fprintf(w, `<a class="cta" href="/about">%s</a></section>`, esc(t("home.readMore")))

		fmt.Fprintf(w, `<section class="collage">`)
		for _, image := range []string{home.Collage.Image1, home.Collage.Image2, home.Collage.Image3, home.Collage.Image4} {
			fmt.Fprintf(w, `<img src="%s" alt="">`, esc(image))
		}
		fmt.Fprintf(w, `</section>`)

		fmt.Fprintf(w, `<section class="infrastructure"><h2>%s <em>%s</em></h2><p>%s</p><div class="cards">`,
			esc(t("home.infraTitle")), esc(t("home.infraTitleItalic")), esc(t("home.infraDesc")))
		cards := []struct {
			image, badge, title, desc, link, href string
		}{
			{home.Cards.Image1, t("home.card1.badge"), t("home.card1.title"), t("home.card1.desc"), t("home.card1.link"), "/services/impuestos-empresas"},
			{home.Cards.Image2, t("home.card2.badge"), t("home.card2.title"), t("home.card2.desc"), t("home.card2.link"), "/services/contabilidad"},
			{home.Cards.Image3, t("home.card3.badge"), t("home.card3.title"), t("home.card3.desc"), t("home.card3.link"), "/services/branding"},
		}
		for _, card := range cards {
			fmt.Fprintf(w, `<article class="card"><img src="%s" alt=""><span class="badge">%s</span><h3>%s</h3><p>%s</p><a href="%s">%s</a></article>`,
				esc(card.image), esc(card.badge), esc(card.title), esc(card.desc), esc(card.href), esc(card.link))
		}
		fmt.Fprintf(w, `</div></section>`)

		fmt.Fprintf(w, `<section class="precision"><img src="%s" alt=""><span class="badge">%s</span><h2>%s</h2><p>%s</p></section>`,
			esc(home.Precision.Image), esc(home.Precision.Badge), esc(home.Precision.Title), esc(home.Precision.Description))

		cta := home.FinalCTA
		fmt.Fprintf(w, `<section class="final-cta"><span class="badge">%s</span><h2>%s <em>%s</em></h2><p>%s</p>`,
			esc(cta.Badge), esc(cta.Title), esc(cta.TitleItalic), esc(cta.Description))
		fmt.Fprintf(w, `<a class="cta" href="/contact">%s</a><a class="cta secondary" href="/services/%s">%s</a></section>`,
			esc(cta.ButtonPrimary), esc(content.ServiceOrder()[0]), esc(cta.ButtonSecondary))
		return nil
	})
}

// AboutPage renders the firm page.
func AboutPage(pc content.PageContent, t Translator) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		about := pc.About
		fmt.Fprintf(w, `<section class="page-hero"><span class="badge">%s</span><h1>%s</h1><h2>%s</h2>`,
			esc(t("about.badge")), esc(about.Hero.Title), esc(about.Hero.Subtitle))
		if about.Hero.Image != "" {
			fmt.Fprintf(w, `<img src="%s" alt="">`, esc(about.Hero.Image))
		}
		fmt.Fprintf(w, `</section>`)
		fmt.Fprintf(w, `<section class="intro"><h2>%s</h2><p>%s</p></section>`,
			esc(about.Intro.Title), esc(about.Intro.Content))
		fmt.Fprintf(w, `<section class="about-cards"><article><h3>%s</h3><p>%s</p></article><article><h3>%s</h3><p>%s</p></article></section>`,
			esc(about.Cards.Title1), esc(about.Cards.Text1), esc(about.Cards.Title2), esc(about.Cards.Text2))
		return nil
	})
}

// ResourcesPage renders the article index. The first post is featured.
func ResourcesPage(pc content.PageContent, posts []content.BlogPost, t Translator) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hero := pc.Resources.Hero
		fmt.Fprintf(w, `<section class="page-hero"><span class="badge">%s</span><h1>%s</h1><h2>%s</h2></section>`,
			esc(t("resources.badge")), esc(hero.Title), esc(hero.Subtitle))
		if len(posts) == 0 {
			fmt.Fprintf(w, `<p class="empty">%s</p>`, esc(t("resources.noPosts")))
			return nil
		}

		featured := posts[0]
		fmt.Fprintf(w, `<section class="featured"><span class="badge">%s</span>`, esc(t("resources.featured")))
		writePostCard(w, featured, t("resources.readFull"))
		fmt.Fprintf(w, `</section><section class="recent"><h2>%s</h2>`, esc(t("resources.recent")))
		for _, post := range posts[1:] {
			writePostCard(w, post, t("resources.readMore"))
		}
		fmt.Fprintf(w, `</section>`)
		return nil
	})
}

func writePostCard(w io.Writer, post content.BlogPost, linkLabel string) {
	fmt.Fprintf(w, `<article class="post-card"><img src="%s" alt=""><span class="category">%s</span>`,
		esc(post.Image), esc(post.Category))
	fmt.Fprintf(w, `<h3>%s</h3><p>%s</p><p class="meta">%s · %s</p>`,
		esc(post.Title), esc(post.Excerpt), esc(post.Author), esc(post.Date))
	fmt.Fprintf(w, `<a href="/resources/%d">%s</a></article>`, post.ID, esc(linkLabel))
}

// ResourceDetailPage renders one article. The body HTML was sanitized at
// write time.
func ResourceDetailPage(post content.BlogPost, next *content.BlogPost, t Translator) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<article class="post"><a class="back" href="/resources">%s</a>`, esc(t("resources.back")))
		fmt.Fprintf(w, `<span class="category">%s</span><h1>%s</h1><p class="meta">%s · %s · %s</p>`,
			esc(post.Category), esc(post.Title), esc(post.Author), esc(post.Date), esc(t("resources.readTime")))
		if post.Image != "" {
			fmt.Fprintf(w, `<img src="%s" alt="">`, esc(post.Image))
		}
		fmt.Fprintf(w, `<div class="post-body">`)
		if err := templ.Raw(post.Content).Render(ctx, w); err != nil {
			return err
		}
		fmt.Fprintf(w, `</div>`)

		if next != nil {
			fmt.Fprintf(w, `<aside class="read-next"><h2>%s</h2><h3>%s</h3><a href="/resources/%d">%s</a></aside>`,
				esc(t("resources.readNext")), esc(next.Title), next.ID, esc(t("resources.readNow")))
		}
		fmt.Fprintf(w, `<aside class="help"><h2>%s</h2><p>%s</p><a href="/contact">%s</a></aside></article>`,
			esc(t("resources.helpTitle")), esc(t("resources.helpDesc")), esc(t("resources.contactExpert")))
		return nil
	})
}

// ContactPage renders the contact page with the inquiry form. When
// submitted is true a confirmation replaces the form.
func ContactPage(pc content.PageContent, reasons []string, submitted bool, t Translator) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		contact := pc.Contact
		fmt.Fprintf(w, `<section class="page-hero"><span class="badge">%s</span><h1>%s</h1><h2>%s</h2></section>`,
			esc(t("contact.badge")), esc(contact.Hero.Title), esc(contact.Hero.Subtitle))
		fmt.Fprintf(w, `<section class="contact-info"><h2>%s</h2><p>%s</p>`,
			esc(t("contact.infoTitle")), esc(t("contact.infoDesc")))
		fmt.Fprintf(w, `<dl><dt>%s</dt><dd>%s</dd><dt>%s</dt><dd>%s</dd><dt>%s</dt><dd>%s %s</dd></dl></section>`,
			esc(t("contact.labelEmail")), esc(contact.Info.Email),
			esc(t("contact.labelPhone")), esc(contact.Info.Phone),
			esc(t("contact.labelOffice")), esc(contact.Info.Office), esc(t("contact.officeNote")))

		if submitted {
			fmt.Fprintf(w, `<section class="form-success"><h2>%s</h2><p>%s</p><a href="/contact">%s</a></section>`,
				esc(t("contact.formSuccessTitle")), esc(t("contact.formSuccessMsg")), esc(t("contact.formAnother")))
			return nil
		}

		fmt.Fprintf(w, `<form class="contact-form" method="post" action="/contact"><h2>%s</h2><p>%s</p>`,
			esc(t("contact.formTitle")), esc(t("contact.formSubtitle")))
		fmt.Fprintf(w, `<label>%s<input name="name" required></label>`, esc(t("contact.formName")))
		fmt.Fprintf(w, `<label>%s<input name="email" type="email" required></label>`, esc(t("contact.formEmail")))
		fmt.Fprintf(w, `<label>%s<input name="phone"></label>`, esc(t("contact.formPhone")))
		fmt.Fprintf(w, `<label>%s<select name="reason">`, esc(t("contact.formReason")))
		for _, reason := range reasons {
			fmt.Fprintf(w, `<option value="%s">%s</option>`, esc(reason), esc(reason))
		}
		fmt.Fprintf(w, `</select></label>`)
		fmt.Fprintf(w, `<label>%s<textarea name="message" required></textarea></label>`, esc(t("contact.formMessage")))
		fmt.Fprintf(w, `<p class="disclaimer">%s</p><button type="submit">%s</button></form>`,
			esc(t("contact.formDisclaimer")), esc(t("contact.formSubmit")))
		return nil
	})
}

// PaymentPage renders the client payment placeholder.
func PaymentPage(t Translator) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<section class="page-hero"><span class="badge">%s</span><h1>%s</h1><h2>%s</h2></section>`,
			esc(t("payment.badge")), esc(t("payment.title")), esc(t("payment.subtitle")))
		fmt.Fprintf(w, `<section class="payment"><h2>%s</h2><p>%s</p><p class="secure">%s</p></section>`,
			esc(t("payment.soon")), esc(t("payment.desc")), esc(t("payment.secure")))
		return nil
	})
}

// ServicePage renders one catalog entry with related services.
func ServicePage(svc content.ServiceData, related []content.ServiceData, t Translator) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<section class="page-hero"><span class="badge">%s</span><h1>%s</h1>`,
			esc(t("service.badge")), esc(svc.Title))
		if svc.Image != "" {
			fmt.Fprintf(w, `<img src="%s" alt="">`, esc(svc.Image))
		}
		fmt.Fprintf(w, `</section><section class="service"><p>%s</p>`, esc(svc.Description))

		fmt.Fprintf(w, `<h2>%s</h2><ul>`, esc(t("service.includes")))
		for _, bullet := range svc.Bullets {
			fmt.Fprintf(w, `<li>%s</li>`, esc(bullet))
		}
		fmt.Fprintf(w, `</ul>`)
		for _, sub := range svc.SubSections {
			fmt.Fprintf(w, `<section class="sub-section"><h3>%s</h3><p>%s</p></section>`,
				esc(sub.Title), esc(sub.Content))
		}
		fmt.Fprintf(w, `</section>`)

		if len(related) > 0 {
			fmt.Fprintf(w, `<section class="related"><h2>%s</h2>`, esc(t("service.related")))
			for _, item := range related {
				fmt.Fprintf(w, `<article><h3>%s</h3><a href="/services/%s">%s</a></article>`,
					esc(item.Title), esc(item.ID), esc(t("service.viewDetail")))
			}
			fmt.Fprintf(w, `</section>`)
		}
		return nil
	})
}
