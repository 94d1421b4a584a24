package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rizkyamal/nusaview/internal/client/models"
	"github.com/rizkyamal/nusaview/internal/common"
)

func (a *App) listDestinations(ctx context.Context) {
	_ = a.destinations.Fetch(ctx)
	renderState(a.destinations.State(), func(d models.Destination) {
		fmt.Printf("%s  %s (%s)  Rp%d\n", d.ID, d.Name, d.Location, d.TicketPrice)
		if d.Description != "" {
			fmt.Printf("    %s\n", d.Description)
		}
		if d.ImageURL != "" {
			fmt.Printf("    image: %s\n", d.ImageURL)
		}
	})
}

func (a *App) addDestination(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return
	}
	location, err := getSimpleText(a.reader, "Location", os.Stdout)
	if err != nil {
		return
	}
	priceStr, err := getSimpleText(a.reader, "Ticket price (Rp)", os.Stdout)
	if err != nil {
		return
	}
	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return
	}

	if name == "" || location == "" {
		fmt.Println("Name and location are required.")
		return
	}

	image := a.promptImage("Image file path (empty for none)")

	// This form does not filter price input; anything non-numeric stores 0.
	d := &models.Destination{
		Name:        name,
		Location:    location,
		TicketPrice: common.ParsePrice(priceStr),
		Description: description,
	}
	if err := a.destinations.Create(ctx, d, image); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Destination added.")
}

func (a *App) editDestination(ctx context.Context, id string) {
	var current *models.Destination
	for _, d := range a.destinations.State().Items {
		if d.ID == id {
			item := d
			current = &item
			break
		}
	}
	if current == nil {
		fmt.Println("No destination with id", id, "- run 'list' first")
		return
	}

	name, err := GetDefaultedText(a.reader, "Name", current.Name, os.Stdout)
	if err != nil {
		return
	}
	location, err := GetDefaultedText(a.reader, "Location", current.Location, os.Stdout)
	if err != nil {
		return
	}
	priceStr, err := GetDefaultedText(a.reader, "Ticket price (Rp)", strconv.Itoa(current.TicketPrice), os.Stdout)
	if err != nil {
		return
	}
	description, err := GetDefaultedText(a.reader, "Description", current.Description, os.Stdout)
	if err != nil {
		return
	}

	image := a.promptImage("New image file path (empty to keep current)")

	updated := &models.Destination{
		Name:        name,
		Location:    location,
		TicketPrice: common.ParsePrice(priceStr),
		Description: description,
		ImageURL:    current.ImageURL, // replaced by the service if a new image uploads
	}
	if err := a.destinations.Update(ctx, id, updated, image); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Destination updated.")
}

func (a *App) deleteDestination(ctx context.Context, id string) {
	if err := a.destinations.Delete(ctx, id); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Destination deleted.")
}
