// Package page holds the per-render state shared by every dynamic form widget
// on one HTML page: the options registry deciding which widget emits its
// scripts, the collected script statements and the asset bundles the page
// needs. A Page is created per request and printed once the body has been
// rendered:
//
//	p, _ := page.New()
//	ctx = page.WithPage(ctx, p)
//	markup, _ := w.Run(ctx, p, body)
//	head, _ := p.RenderHead()
//	tail, _ := p.RenderBodyEnd()
package page
