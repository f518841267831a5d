package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant is a named board size.
type Variant struct {
	ID    string
	Title string
	Rows  int
	Cols  int
}

// Built-in variants. Classic is the standard 15x15 board.
var (
	Classic = Variant{ID: "snake", Title: "Snake", Rows: 15, Cols: 15}
	Mini    = Variant{ID: "snake_mini", Title: "Snake (Mini)", Rows: 10, Cols: 10}
	Wide    = Variant{ID: "snake_wide", Title: "Snake (Wide)", Rows: 15, Cols: 30}
)

// Variants returns the built-in variants in menu order.
func Variants() []Variant {
	return []Variant{Classic, Mini, Wide}
}

// Lookup finds a built-in variant by ID.
func Lookup(id string) (Variant, bool) {
	for _, v := range Variants() {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

func (v Variant) String() string {
	return fmt.Sprintf("%s (%dx%d)", v.Title, v.Rows, v.Cols)
}

func init() {
	for _, v := range Variants() {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}
