package console

import (
	"context"
	"io"

	"theatertickets/internal/domain"
)

const mainMenu = `
Theater ticket sales
 1. Administration
 2. Ticket office
 0. Exit
`

// Run drives the top-level menu. All three menus share one buffered reader,
// so input typed ahead is never lost between them.
func Run(ctx context.Context, in io.Reader, out io.Writer, catalog domain.CatalogService, storefront domain.StorefrontService) {
	p := newPrompter(in, out)
	admin := &AdminConsole{p: p, service: catalog}
	office := &StorefrontConsole{p: p, service: storefront}

	for {
		p.printf("%s", mainMenu)
		choice, ok := p.readLine("Choose an option: ")
		if !ok || choice == "0" {
			return
		}
		switch choice {
		case "1":
			admin.Run(ctx)
		case "2":
			office.Run(ctx)
		default:
			p.println("Invalid input.")
		}
	}
}
