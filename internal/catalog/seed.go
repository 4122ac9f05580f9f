package catalog

// BuiltinFonts returns the default discovery table, ordered by popularity.
func BuiltinFonts() []Font {
	return []Font{
		{Family: "Roboto", Category: "sans-serif", Scripts: []string{"latin", "cyrillic", "greek"}, Variants: []string{"regular", "italic", "700"}},
		{Family: "Open Sans", Category: "sans-serif", Scripts: []string{"latin", "cyrillic", "greek"}, Variants: []string{"regular", "italic", "700"}},
		{Family: "Lato", Category: "sans-serif", Scripts: []string{"latin"}, Variants: []string{"regular", "italic", "700"}},
		{Family: "Montserrat", Category: "sans-serif", Scripts: []string{"latin", "cyrillic"}, Variants: []string{"regular", "italic", "700"}},
		{Family: "Oswald", Category: "sans-serif", Scripts: []string{"latin", "cyrillic"}, Variants: []string{"regular", "700"}},
		{Family: "Noto Sans", Category: "sans-serif", Scripts: []string{"latin", "cyrillic", "greek", "devanagari"}, Variants: []string{"regular", "italic", "700"}},
		{Family: "Source Sans Pro", Category: "sans-serif", Scripts: []string{"latin", "cyrillic", "greek"}, Variants: []string{"regular", "italic", "700"}},
		{Family: "Raleway", Category: "sans-serif", Scripts: []string{"latin", "cyrillic"}, Variants: []string{"regular", "italic", "700"}},
		{Family: "Merriweather", Category: "serif", Scripts: []string{"latin", "cyrillic"}, Variants: []string{"regular", "italic", "700"}},
		{Family: "PT Serif", Category: "serif", Scripts: []string{"latin", "cyrillic"}, Variants: []string{"regular", "italic", "700"}},
		{Family: "Playfair Display", Category: "serif", Scripts: []string{"latin", "cyrillic"}, Variants: []string{"regular", "italic", "700"}},
		{Family: "Lora", Category: "serif", Scripts: []string{"latin", "cyrillic"}, Variants: []string{"regular", "italic", "700"}},
		{Family: "Roboto Mono", Category: "monospace", Scripts: []string{"latin", "cyrillic", "greek"}, Variants: []string{"regular", "italic", "700"}},
		{Family: "Fira Code", Category: "monospace", Scripts: []string{"latin", "cyrillic", "greek"}, Variants: []string{"regular", "700"}},
		{Family: "JetBrains Mono", Category: "monospace", Scripts: []string{"latin", "cyrillic", "greek"}, Variants: []string{"regular", "italic", "700"}},
		{Family: "Inconsolata", Category: "monospace", Scripts: []string{"latin"}, Variants: []string{"regular", "700"}},
		{Family: "Pacifico", Category: "handwriting", Scripts: []string{"latin", "cyrillic"}, Variants: []string{"regular"}},
		{Family: "Caveat", Category: "handwriting", Scripts: []string{"latin", "cyrillic"}, Variants: []string{"regular", "700"}},
		{Family: "Dancing Script", Category: "handwriting", Scripts: []string{"latin"}, Variants: []string{"regular", "700"}},
		{Family: "Lobster", Category: "display", Scripts: []string{"latin", "cyrillic"}, Variants: []string{"regular"}},
	}
}
