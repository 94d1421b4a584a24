package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rizkyamal/nusaview/internal/client/models"
)

func (a *App) listGallery(ctx context.Context) {
	_ = a.gallery.Fetch(ctx)
	renderState(a.gallery.State(), func(g models.GalleryPhoto) {
		caption := g.Caption
		if caption == "" {
			caption = "(no caption)"
		}
		fmt.Printf("%s  %s - %s\n", g.ID, caption, g.Location)
		fmt.Printf("    %s\n", g.ImageURL)
	})
}

func (a *App) addGalleryPhoto(ctx context.Context) {
	caption, err := getSimpleText(a.reader, "Caption (optional)", os.Stdout)
	if err != nil {
		return
	}
	location, err := getSimpleText(a.reader, "Location", os.Stdout)
	if err != nil {
		return
	}

	if location == "" {
		fmt.Println("Location is required.")
		return
	}

	// Unlike the other tabs, a gallery entry is the photo; no image, no post.
	image := a.promptImage("Photo file path")
	if image == nil {
		fmt.Println("A photo is required.")
		return
	}

	g := &models.GalleryPhoto{Caption: caption, Location: location}
	if err := a.gallery.Create(ctx, g, image); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Photo uploaded.")
}
