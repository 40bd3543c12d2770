package catalog

// PageType classifies a template page.
type PageType string

const (
	PageCover  PageType = "cover"
	PageStory  PageType = "story"
	PageEnding PageType = "ending"
)

// PageContent is the static text/illustration descriptor for one page.
// InterpolateName marks the point where the child's name is spliced in.
type PageContent struct {
	Title           string
	Subtitle        string
	Text            string
	Text2           string
	InterpolateName bool
	Illustration    string
}

// PageTemplate is one page of a theme, immutable catalog data.
type PageTemplate struct {
	PageNumber int
	Type       PageType
	Content    PageContent
}

// Theme is an ordered sequence of page templates.
type Theme struct {
	ID       string
	Title    string
	Subtitle string
	Pages    []PageTemplate
}

// PageCount returns the number of pages in the theme.
func (t Theme) PageCount() int {
	return len(t.Pages)
}

// ThemeByID resolves a theme identifier against the static catalog.
func ThemeByID(id string) (Theme, bool) {
	theme, ok := themes[id]
	return theme, ok
}

// ThemeIDs lists the catalog identifiers in display order.
func ThemeIDs() []string {
	return []string{"1", "2", "3", "4", "5"}
}

var themes = map[string]Theme{
	"1": {
		ID:       "1",
		Title:    "It's Bedtime",
		Subtitle: "A Soothing Bedtime Story",
		Pages: []PageTemplate{
			{PageNumber: 1, Type: PageCover, Content: PageContent{
				Title: "It's Bedtime", Subtitle: "A Special Story for",
				InterpolateName: true, Illustration: "cozy-bedroom-night",
			}},
			{PageNumber: 2, Type: PageStory, Content: PageContent{
				Text: "Hello", InterpolateName: true,
				Text2:        "! It's time to get ready for bed. Let's brush our teeth and put on cozy pajamas.",
				Illustration: "child-getting-ready-for-bed",
			}},
			{PageNumber: 3, Type: PageStory, Content: PageContent{
				Text: "Now", InterpolateName: true,
				Text2:        "climbs into the soft, warm bed. The moon is shining through the window, saying goodnight.",
				Illustration: "child-in-bed-moonlight",
			}},
			{PageNumber: 4, Type: PageStory, Content: PageContent{
				Text: "As", InterpolateName: true,
				Text2:        "closes their eyes, they dream of magical adventures with friendly animals and colorful rainbows.",
				Illustration: "child-dreaming-magical-scene",
			}},
			{PageNumber: 5, Type: PageEnding, Content: PageContent{
				Text: "Sweet dreams,", InterpolateName: true,
				Text2:        "! Sleep tight and have the most wonderful dreams. Good night!",
				Illustration: "peaceful-sleeping-child-stars",
			}},
		},
	},
	"2": {
		ID:       "2",
		Title:    "Little Princess Adventure",
		Subtitle: "A Royal Tale",
		Pages: []PageTemplate{
			{PageNumber: 1, Type: PageCover, Content: PageContent{
				Title: "Princess", Subtitle: "and the Magic Kingdom",
				InterpolateName: true, Illustration: "castle-with-princess",
			}},
			{PageNumber: 2, Type: PageStory, Content: PageContent{
				Text: "Princess", InterpolateName: true,
				Text2:        "lives in a beautiful castle with towers that touch the clouds and gardens full of colorful flowers.",
				Illustration: "princess-in-castle-garden",
			}},
			{PageNumber: 3, Type: PageStory, Content: PageContent{
				Text: "One day, Princess", InterpolateName: true,
				Text2:        "discovers a magical door that leads to an enchanted forest filled with talking animals.",
				Illustration: "princess-magical-forest-door",
			}},
			{PageNumber: 4, Type: PageStory, Content: PageContent{
				Text: "The wise owl tells Princess", InterpolateName: true,
				Text2:        "about a hidden treasure that can bring happiness to the whole kingdom.",
				Illustration: "princess-talking-to-wise-owl",
			}},
			{PageNumber: 5, Type: PageEnding, Content: PageContent{
				Text: "Princess", InterpolateName: true,
				Text2:        "finds the treasure - it was kindness and friendship all along! The kingdom celebrates their brave princess.",
				Illustration: "kingdom-celebration-princess",
			}},
		},
	},
	"3": {
		ID:       "3",
		Title:    "Dinosaur Explorer",
		Subtitle: "A Prehistoric Adventure",
		Pages: []PageTemplate{
			{PageNumber: 1, Type: PageCover, Content: PageContent{
				Title: "Explorer", Subtitle: "and the Land of Dinosaurs",
				InterpolateName: true, Illustration: "child-explorer-with-dinosaurs",
			}},
			{PageNumber: 2, Type: PageStory, Content: PageContent{
				Text: "Explorer", InterpolateName: true,
				Text2:        "puts on their adventure hat and grabs a magnifying glass to search for dinosaur fossils.",
				Illustration: "child-with-explorer-gear",
			}},
			{PageNumber: 3, Type: PageStory, Content: PageContent{
				Text: "Suddenly,", InterpolateName: true,
				Text2:        "discovers a time portal that takes them back millions of years to when dinosaurs roamed the Earth!",
				Illustration: "time-portal-prehistoric-world",
			}},
			{PageNumber: 4, Type: PageStory, Content: PageContent{
				Text: "Explorer", InterpolateName: true,
				Text2:        "meets friendly dinosaurs - a gentle Brontosaurus, a playful Triceratops, and a wise Pterodactyl.",
				Illustration: "child-playing-with-friendly-dinosaurs",
			}},
			{PageNumber: 5, Type: PageEnding, Content: PageContent{
				Text: "After an amazing day,", InterpolateName: true,
				Text2:        "returns home with wonderful memories and becomes the world's youngest dinosaur expert!",
				Illustration: "child-back-home-with-dinosaur-books",
			}},
		},
	},
	"4": {
		ID:       "4",
		Title:    "Space Adventure",
		Subtitle: "A Cosmic Journey",
		Pages: []PageTemplate{
			{PageNumber: 1, Type: PageCover, Content: PageContent{
				Title: "Captain", Subtitle: "Space Explorer",
				InterpolateName: true, Illustration: "child-astronaut-in-space",
			}},
			{PageNumber: 2, Type: PageStory, Content: PageContent{
				Text: "Captain", InterpolateName: true,
				Text2:        "puts on their shiny space suit and rocket boots, ready for an incredible journey to the stars!",
				Illustration: "child-putting-on-space-suit",
			}},
			{PageNumber: 3, Type: PageStory, Content: PageContent{
				Text: "The rocket ship blasts off! Captain", InterpolateName: true,
				Text2:        "zooms past colorful planets, dancing comets, and twinkling star clusters.",
				Illustration: "rocket-ship-flying-past-planets",
			}},
			{PageNumber: 4, Type: PageStory, Content: PageContent{
				Text: "On planet Zorb, Captain", InterpolateName: true,
				Text2:        "meets friendly alien creatures who love to play games and share cosmic cookies!",
				Illustration: "child-playing-with-friendly-aliens",
			}},
			{PageNumber: 5, Type: PageEnding, Content: PageContent{
				Text: "Captain", InterpolateName: true,
				Text2:        "returns to Earth as a hero, with new alien friends and amazing stories to tell everyone!",
				Illustration: "child-back-on-earth-with-alien-friends",
			}},
		},
	},
	"5": {
		ID:       "5",
		Title:    "Ocean Adventure",
		Subtitle: "Under the Sea",
		Pages: []PageTemplate{
			{PageNumber: 1, Type: PageCover, Content: PageContent{
				Title: "Mermaid", Subtitle: "Under the Sea",
				InterpolateName: true, Illustration: "child-mermaid-underwater",
			}},
			{PageNumber: 2, Type: PageStory, Content: PageContent{
				Text: "Mermaid", InterpolateName: true,
				Text2:        "discovers they can breathe underwater and swim with the beautiful fish in the coral reef.",
				Illustration: "child-mermaid-swimming-with-fish",
			}},
			{PageNumber: 3, Type: PageStory, Content: PageContent{
				Text: "A wise sea turtle shows Mermaid", InterpolateName: true,
				Text2:        "the way to an underwater palace made of pearls and seashells.",
				Illustration: "mermaid-following-sea-turtle-to-palace",
			}},
			{PageNumber: 4, Type: PageStory, Content: PageContent{
				Text: "In the palace, Mermaid", InterpolateName: true,
				Text2:        "meets the Ocean King who gifts them a magical conch shell that can call all sea creatures.",
				Illustration: "mermaid-receiving-magical-conch-shell",
			}},
			{PageNumber: 5, Type: PageEnding, Content: PageContent{
				Text: "Mermaid", InterpolateName: true,
				Text2:        "becomes the protector of the ocean, keeping all sea life safe and happy forever!",
				Illustration: "mermaid-protecting-ocean-creatures",
			}},
		},
	},
}
