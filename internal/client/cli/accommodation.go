package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rizkyamal/nusaview/internal/client/models"
	"github.com/rizkyamal/nusaview/internal/common"
)

func (a *App) listAccommodations(ctx context.Context) {
	_ = a.accommodations.Fetch(ctx)
	renderState(a.accommodations.State(), func(acc models.Accommodation) {
		fmt.Printf("%s  %s  Rp%d/night\n", acc.ID, acc.Name, acc.PricePerNight)
		fmt.Printf("    facilities: %s\n", acc.Facilities)
		if acc.Description != "" {
			fmt.Printf("    %s\n", acc.Description)
		}
		if acc.ImageURL != "" {
			fmt.Printf("    image: %s\n", acc.ImageURL)
		}
	})
}

func (a *App) addAccommodation(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return
	}
	facilities, err := getSimpleText(a.reader, "Facilities", os.Stdout)
	if err != nil {
		return
	}
	priceStr, err := getSimpleText(a.reader, "Price per night (Rp)", os.Stdout)
	if err != nil {
		return
	}
	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return
	}

	if name == "" || facilities == "" {
		fmt.Println("Name and facilities are required.")
		return
	}

	image := a.promptImage("Image file path (empty for none)")

	// This form does not filter price input; anything non-numeric stores 0.
	acc := &models.Accommodation{
		Name:          name,
		Facilities:    facilities,
		PricePerNight: common.ParsePrice(priceStr),
		Description:   description,
	}
	if err := a.accommodations.Create(ctx, acc, image); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Accommodation added.")
}

func (a *App) editAccommodation(ctx context.Context, id string) {
	var current *models.Accommodation
	for _, acc := range a.accommodations.State().Items {
		if acc.ID == id {
			item := acc
			current = &item
			break
		}
	}
	if current == nil {
		fmt.Println("No accommodation with id", id, "- run 'list' first")
		return
	}

	name, err := GetDefaultedText(a.reader, "Name", current.Name, os.Stdout)
	if err != nil {
		return
	}
	facilities, err := GetDefaultedText(a.reader, "Facilities", current.Facilities, os.Stdout)
	if err != nil {
		return
	}
	priceStr, err := GetDefaultedText(a.reader, "Price per night (Rp)", strconv.Itoa(current.PricePerNight), os.Stdout)
	if err != nil {
		return
	}
	description, err := GetDefaultedText(a.reader, "Description", current.Description, os.Stdout)
	if err != nil {
		return
	}

	image := a.promptImage("New image file path (empty to keep current)")

	updated := &models.Accommodation{
		Name:          name,
		Facilities:    facilities,
		PricePerNight: common.ParsePrice(priceStr),
		Description:   description,
		ImageURL:      current.ImageURL,
	}
	if err := a.accommodations.Update(ctx, id, updated, image); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Accommodation updated.")
}
