package report

import "time"

// Kind discriminates the Block variants.
type Kind string

const (
	KindHeading   Kind = "heading"
	KindParagraph Kind = "paragraph"
	KindBullets   Kind = "bullets"
	KindSeparator Kind = "separator"
)

// Block is one unit of the renderable document model. Exactly one variant is
// populated, selected by Kind: headings carry Level and Text, paragraphs carry
// Text, bullet lists carry Items (never empty), separators carry nothing.
type Block struct {
	Kind  Kind     `json:"kind"`
	Level int      `json:"level,omitempty"` // Heading weight, 1..3.
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

// Heading returns a heading block at the given level.
func Heading(level int, text string) Block {
	return Block{Kind: KindHeading, Level: level, Text: text}
}

// Paragraph returns a single-line prose block.
func Paragraph(text string) Block {
	return Block{Kind: KindParagraph, Text: text}
}

// Bullets returns a bullet-list block. Callers must not pass an empty slice.
func Bullets(items []string) Block {
	return Block{Kind: KindBullets, Items: items}
}

// Sep returns a horizontal-rule block.
func Sep() Block {
	return Block{Kind: KindSeparator}
}

// Report is a parsed narrative report plus the provenance metadata the
// analysis service returned alongside it.
type Report struct {
	JournalistID     string    `json:"journalist_id"`
	Blocks           []Block   `json:"blocks"`
	Model            string    `json:"model,omitempty"`
	CredibilityScore float64   `json:"credibility_score,omitempty"`
	GeneratedAt      time.Time `json:"generated_at,omitempty"`
	FetchedAt        time.Time `json:"fetched_at"`
}
