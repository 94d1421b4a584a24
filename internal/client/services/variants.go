package services

import (
	"github.com/rizkyamal/nusaview/internal/client/models"
	"github.com/rizkyamal/nusaview/internal/client/supabase"
)

// Concrete service types per content variant.
type (
	DestinationService   = ListingService[models.Destination, *models.Destination]
	CulinaryService      = ListingService[models.Culinary, *models.Culinary]
	AccommodationService = ListingService[models.Accommodation, *models.Accommodation]
	SouvenirService      = ListingService[models.Souvenir, *models.Souvenir]
	GalleryService       = ListingService[models.GalleryPhoto, *models.GalleryPhoto]
)

func NewDestinationService(c *supabase.Client, session *Session) *DestinationService {
	return NewListingService[models.Destination](Options{
		Table:          "destinations",
		Bucket:         "destination-images",
		KeyPrefix:      "destinations",
		OrderByCreated: true,
		CanUpdate:      true,
		CanDelete:      true,
	}, c.Tables, c.Storage, session)
}

// NewCulinaryService runs against the secondary backend project; only the
// culinary tables and bucket live there.
func NewCulinaryService(c *supabase.Client, session *Session) *CulinaryService {
	return NewListingService[models.Culinary](Options{
		Table:     "culinary",
		Bucket:    "culinary-images",
		KeyPrefix: "culinary",
		CanUpdate: false,
		CanDelete: false,
	}, c.Tables, c.Storage, session)
}

func NewAccommodationService(c *supabase.Client, session *Session) *AccommodationService {
	return NewListingService[models.Accommodation](Options{
		Table:          "accommodations",
		Bucket:         "accomodation-images", // bucket name predates the spelling fix
		KeyPrefix:      "accommodations",
		OrderByCreated: true,
		CanUpdate:      true,
		CanDelete:      false,
	}, c.Tables, c.Storage, session)
}

func NewSouvenirService(c *supabase.Client, session *Session) *SouvenirService {
	return NewListingService[models.Souvenir](Options{
		Table:     "souvenirs",
		Bucket:    "souvenir-images",
		KeyPrefix: "souvenirs",
		CanUpdate: true,
		CanDelete: true,
	}, c.Tables, c.Storage, session)
}

func NewGalleryService(c *supabase.Client, session *Session) *GalleryService {
	return NewListingService[models.GalleryPhoto](Options{
		Table:          "user_gallery",
		Bucket:         "gallery-images",
		KeyByUser:      true,
		OrderByCreated: true,
		CanUpdate:      false,
		CanDelete:      false,
	}, c.Tables, c.Storage, session)
}
