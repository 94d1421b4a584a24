// Package models defines the listing variants served by the backend.
//
// Field tags follow the backend column names exactly. Identifier and
// created_at are assigned server-side and are tagged omitempty so insert
// payloads never carry them.
package models

// Listing is the shape every variant shares. The generic listing service
// only needs identity, owner stamping, the image reference, and the set of
// content fields that an update is allowed to touch.
type Listing interface {
	GetID() string
	// SetOwner stamps the creator id before insert. Variants whose table has
	// no owner column implement this as a no-op.
	SetOwner(userID string)
	SetImageURL(url string)
	GetImageURL() string
	// Patch returns only the mutable content fields for an update-by-id
	// write. Owner id and creation timestamp are never part of it.
	Patch() map[string]any
}

// Destination is a tourist destination listing.
type Destination struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	TicketPrice int    `json:"ticket_price"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	UserID      string `json:"user_id,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

func (d *Destination) GetID() string        { return d.ID }
func (d *Destination) SetOwner(id string)   { d.UserID = id }
func (d *Destination) SetImageURL(u string) { d.ImageURL = u }
func (d *Destination) GetImageURL() string  { return d.ImageURL }

func (d *Destination) Patch() map[string]any {
	return map[string]any{
		"name":         d.Name,
		"location":     d.Location,
		"ticket_price": d.TicketPrice,
		"description":  d.Description,
		"image_url":    d.ImageURL,
	}
}

// Culinary is a food listing. It lives in the secondary backend project and
// its table carries no owner column.
type Culinary struct {
	ID            string `json:"id,omitempty"`
	NamaMakanan   string `json:"nama_makanan"`
	NamaWarung    string `json:"nama_warung"`
	Harga         int    `json:"harga"`
	FotoURL       string `json:"foto_url,omitempty"`
	IsRecommended bool   `json:"is_recommended"`
	CreatedAt     string `json:"created_at,omitempty"`
}

func (c *Culinary) GetID() string        { return c.ID }
func (c *Culinary) SetOwner(string)      {}
func (c *Culinary) SetImageURL(u string) { c.FotoURL = u }
func (c *Culinary) GetImageURL() string  { return c.FotoURL }

func (c *Culinary) Patch() map[string]any {
	return map[string]any{
		"nama_makanan":   c.NamaMakanan,
		"nama_warung":    c.NamaWarung,
		"harga":          c.Harga,
		"foto_url":       c.FotoURL,
		"is_recommended": c.IsRecommended,
	}
}

// Accommodation is a lodging listing.
type Accommodation struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	Facilities    string `json:"facilities"`
	PricePerNight int    `json:"price_per_night"`
	Description   string `json:"description,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
	UserID        string `json:"user_id,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

func (a *Accommodation) GetID() string        { return a.ID }
func (a *Accommodation) SetOwner(id string)   { a.UserID = id }
func (a *Accommodation) SetImageURL(u string) { a.ImageURL = u }
func (a *Accommodation) GetImageURL() string  { return a.ImageURL }

func (a *Accommodation) Patch() map[string]any {
	return map[string]any{
		"name":            a.Name,
		"facilities":      a.Facilities,
		"price_per_night": a.PricePerNight,
		"description":     a.Description,
		"image_url":       a.ImageURL,
	}
}

// Souvenir is a souvenir shop listing.
type Souvenir struct {
	ID          string `json:"id,omitempty"`
	ItemName    string `json:"item_name"`
	StoreName   string `json:"store_name"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url,omitempty"`
	Description string `json:"description,omitempty"`
	UserID      string `json:"user_id,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

func (s *Souvenir) GetID() string        { return s.ID }
func (s *Souvenir) SetOwner(id string)   { s.UserID = id }
func (s *Souvenir) SetImageURL(u string) { s.ImageURL = u }
func (s *Souvenir) GetImageURL() string  { return s.ImageURL }

func (s *Souvenir) Patch() map[string]any {
	return map[string]any{
		"item_name":  s.ItemName,
		"store_name": s.StoreName,
		"price":      s.Price,
		"image_url":  s.ImageURL,
	}
}

// GalleryPhoto is a visitor-submitted photo. The image is mandatory here,
// unlike the other variants where it is optional.
type GalleryPhoto struct {
	ID        string `json:"id,omitempty"`
	Caption   string `json:"caption,omitempty"`
	Location  string `json:"location"`
	ImageURL  string `json:"image_url"`
	UserID    string `json:"user_id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (g *GalleryPhoto) GetID() string        { return g.ID }
func (g *GalleryPhoto) SetOwner(id string)   { g.UserID = id }
func (g *GalleryPhoto) SetImageURL(u string) { g.ImageURL = u }
func (g *GalleryPhoto) GetImageURL() string  { return g.ImageURL }

func (g *GalleryPhoto) Patch() map[string]any {
	return map[string]any{
		"caption":   g.Caption,
		"location":  g.Location,
		"image_url": g.ImageURL,
	}
}
