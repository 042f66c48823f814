package model

// Product represents a sellable article. There is no SKU concept; two
// products may share the same name, size and color.
type Product struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Size  int    `json:"size"`
	Color string `json:"color"`
}

// Colors lists the fixed set of product colors.
var Colors = []string{
	"Light Pink",
	"Dark Pink",
	"Light Yellow",
	"Dark Yellow",
	"Light Blue",
	"Dark Blue",
	"Plain White",
}

// ValidColor reports whether color is one of the fixed product colors.
func ValidColor(color string) bool {
	for _, c := range Colors {
		if c == color {
			return true
		}
	}
	return false
}
