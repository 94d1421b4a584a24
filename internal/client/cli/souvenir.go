package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rizkyamal/nusaview/internal/client/models"
	"github.com/rizkyamal/nusaview/internal/common"
)

func (a *App) listSouvenirs(ctx context.Context) {
	_ = a.souvenirs.Fetch(ctx)
	renderState(a.souvenirs.State(), func(s models.Souvenir) {
		fmt.Printf("%s  %s @ %s  Rp%d\n", s.ID, s.ItemName, s.StoreName, s.Price)
		if s.Description != "" {
			fmt.Printf("    %s\n", s.Description)
		}
		if s.ImageURL != "" {
			fmt.Printf("    image: %s\n", s.ImageURL)
		}
	})
}

func (a *App) addSouvenir(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Item name", os.Stdout)
	if err != nil {
		return
	}
	store, err := getSimpleText(a.reader, "Store name", os.Stdout)
	if err != nil {
		return
	}
	priceStr, err := getSimpleText(a.reader, "Price (Rp, digits only)", os.Stdout)
	if err != nil {
		return
	}
	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return
	}

	if name == "" || priceStr == "" {
		fmt.Println("Item name and price are required.")
		return
	}

	image := a.promptImage("Image file path (empty for none)")

	s := &models.Souvenir{
		ItemName:    name,
		StoreName:   store,
		Price:       common.ParsePrice(common.FilterDigits(priceStr)),
		Description: description,
	}
	if err := a.souvenirs.Create(ctx, s, image); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Souvenir added.")
}

func (a *App) editSouvenir(ctx context.Context, id string) {
	var current *models.Souvenir
	for _, s := range a.souvenirs.State().Items {
		if s.ID == id {
			item := s
			current = &item
			break
		}
	}
	if current == nil {
		fmt.Println("No souvenir with id", id, "- run 'list' first")
		return
	}

	name, err := GetDefaultedText(a.reader, "Item name", current.ItemName, os.Stdout)
	if err != nil {
		return
	}
	store, err := GetDefaultedText(a.reader, "Store name", current.StoreName, os.Stdout)
	if err != nil {
		return
	}
	priceStr, err := GetDefaultedText(a.reader, "Price (Rp, digits only)", strconv.Itoa(current.Price), os.Stdout)
	if err != nil {
		return
	}
	description, err := GetDefaultedText(a.reader, "Description", current.Description, os.Stdout)
	if err != nil {
		return
	}

	image := a.promptImage("New image file path (empty to keep current)")

	updated := &models.Souvenir{
		ItemName:    name,
		StoreName:   store,
		Price:       common.ParsePrice(common.FilterDigits(priceStr)),
		Description: description,
		ImageURL:    current.ImageURL,
	}
	if err := a.souvenirs.Update(ctx, id, updated, image); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Souvenir updated.")
}

func (a *App) deleteSouvenir(ctx context.Context, id string) {
	if err := a.souvenirs.Delete(ctx, id); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Souvenir deleted.")
}
