package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rizkyamal/nusaview/internal/client/models"
	"github.com/rizkyamal/nusaview/internal/common"
)

func (a *App) listCulinary(ctx context.Context) {
	_ = a.culinary.Fetch(ctx)
	renderState(a.culinary.State(), func(c models.Culinary) {
		marker := ""
		if c.IsRecommended {
			marker = "  *recommended*"
		}
		fmt.Printf("%s  %s @ %s  Rp%d%s\n", c.ID, c.NamaMakanan, c.NamaWarung, c.Harga, marker)
		if c.FotoURL != "" {
			fmt.Printf("    photo: %s\n", c.FotoURL)
		}
	})
}

func (a *App) addCulinary(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Dish name", os.Stdout)
	if err != nil {
		return
	}
	warung, err := getSimpleText(a.reader, "Warung name", os.Stdout)
	if err != nil {
		return
	}
	priceStr, err := getSimpleText(a.reader, "Price (Rp, digits only)", os.Stdout)
	if err != nil {
		return
	}
	recommended, err := getSimpleText(a.reader, "Recommended? (y/n)", os.Stdout)
	if err != nil {
		return
	}

	if name == "" || warung == "" {
		fmt.Println("Dish name and warung name are required.")
		return
	}

	image := a.promptImage("Photo file path (empty for none)")

	// This form filters price input to digits, so "12a3" becomes 123.
	c := &models.Culinary{
		NamaMakanan:   name,
		NamaWarung:    warung,
		Harga:         common.ParsePrice(common.FilterDigits(priceStr)),
		IsRecommended: strings.EqualFold(recommended, "y"),
	}
	if err := a.culinary.Create(ctx, c, image); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Culinary entry added.")
}
