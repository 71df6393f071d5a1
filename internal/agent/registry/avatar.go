package registry

// AvatarStyle is one entry of the avatar style catalog offered to the model.
type AvatarStyle struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var styleCatalog = map[string]AvatarStyle{
	"cartoon_neo": {Name: "Cyber Cartoon", Description: "Modern cartoon style, bright colors, clean lines"},
	"watercolor":  {Name: "Watercolor", Description: "Soft watercolor effect, strong artistic feel"},
	"pixel_pet":   {Name: "Pixel Style", Description: "Retro pixel art, 8-bit game style"},
	"realistic":   {Name: "Realistic", Description: "Highly realistic pet image reproduction"},
	"anime":       {Name: "Anime Style", Description: "Japanese anime style, big expressive eyes"},
}

// StyleCatalog returns the avatar styles the generation API supports.
func StyleCatalog() map[string]AvatarStyle {
	return styleCatalog
}
