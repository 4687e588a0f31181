// Package templates holds the HTML components for the minimal web surface.
// Components are built directly on the templ runtime (templ.ComponentFunc)
// rather than generated files, but render through the same
// Component.Render(ctx, w) call sites the handlers expect.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ItemListEntry is one catalog row on the items page.
type ItemListEntry struct {
	Code     string
	Name     string
	Size     string
	Category string
	// Price is the already-formatted unit price for the active tier.
	Price string
}

// ItemListData feeds the items page.
type ItemListData struct {
	Items      []ItemListEntry
	TierLabel  string
	TotalCount int
}

// QuoteListEntry is one quote row on the quotes page.
type QuoteListEntry struct {
	ID          string
	EventName   string
	EventDate   string
	GrandTotal  string
	CreatedDate string
}

// QuoteListData feeds the quotes page.
type QuoteListData struct {
	Items      []QuoteListEntry
	TotalCount int
}

// page wraps a body component in the shared document shell.
func page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="ko"><head><meta charset="utf-8"><title>%s</title></head><body>`,
			templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// ItemListContent renders the catalog table partial.
func ItemListContent(data ItemListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section id="items"><h2>품목 (%d)</h2><p>적용 기간: %s</p><table><thead><tr><th>코드</th><th>품명</th><th>규격</th><th>분류</th><th>단가</th></tr></thead><tbody>`,
			data.TotalCount, templ.EscapeString(data.TierLabel)); err != nil {
			return err
		}
		for _, item := range data.Items {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(item.Code),
				templ.EscapeString(item.Name),
				templ.EscapeString(item.Size),
				templ.EscapeString(item.Category),
				templ.EscapeString(item.Price)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	})
}

// ItemListPage renders the full catalog page.
func ItemListPage(data ItemListData) templ.Component {
	return page("품목 리스트", ItemListContent(data))
}

// QuoteListContent renders the quote table partial.
func QuoteListContent(data QuoteListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section id="quotes"><h2>견적서 (%d)</h2><table><thead><tr><th>행사명</th><th>행사일</th><th>총합계</th><th>작성일</th></tr></thead><tbody>`,
			data.TotalCount); err != nil {
			return err
		}
		for _, q := range data.Items {
			if _, err := fmt.Fprintf(w,
				`<tr><td><a href="/quotes/%s">%s</a></td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(q.ID),
				templ.EscapeString(q.EventName),
				templ.EscapeString(q.EventDate),
				templ.EscapeString(q.GrandTotal),
				templ.EscapeString(q.CreatedDate)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	})
}

// QuoteListPage renders the full quotes page.
func QuoteListPage(data QuoteListData) templ.Component {
	return page("견적서 목록", QuoteListContent(data))
}
