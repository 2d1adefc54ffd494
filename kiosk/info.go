package kiosk

import (
	"context"
	"fmt"
	"strings"

	"github.com/aromabeans/coffee-feedback/client"
)

const infoTemplate = `
Introduction:
I'm your friendly Aroma Beans Coffee assistant, here to help you with anything you need related to our coffee shop! Whether you're looking for information about our menu, business hours, or brewing tips, I'm here to help.

Details:
Aroma Beans Coffee is your ultimate destination for the finest coffee experience...

Menu:
%s

At Aroma Beans Coffee, we believe in creating moments worth savoring. Whether you're stopping by for your morning pick-me-up or indulging in an afternoon treat, we've got something special for everyone.
`

// CompanyInfo fetches the menu and splices it into the shop introduction
// blurb.
func CompanyInfo(ctx context.Context, backend *client.Client) (string, error) {
	products, err := backend.Products(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch products: %w", err)
	}

	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("  - %s - $%.2f", p.Name, p.Price))
	}
	return fmt.Sprintf(infoTemplate, strings.Join(lines, "\n")), nil
}
