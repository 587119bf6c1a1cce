package store

// builtin is the demo collection the dashboard ships with.
var builtin = []SavedItem{
	{
		ID:        "1",
		Category:  Fitness,
		Platform:  Instagram,
		Summary:   "A 10-minute morning mobility flow that loosens hips, hamstrings and the lower back before work.",
		Caption:   "Morning Routine 🌅 10 min mobility before coffee. Save this for tomorrow!",
		Author:    "@flexwithmaya",
		Hashtags:  []string{"mobility", "morningroutine", "stretching"},
		Likes:     Count(48200),
		Views:     Count(612000),
		SavedAt:   "2024-06-12T07:41:00Z",
		URL:       "https://www.instagram.com/reel/C8mob1l1ty/",
		Thumbnail: "https://images.unsplash.com/photo-1552196563-55cd4e45efb3?w=600",
	},
	{
		ID:        "2",
		Category:  Coding,
		Platform:  Twitter,
		Summary:   "Thread explaining how Go's scheduler parks goroutines on blocking syscalls and why GOMAXPROCS matters in containers.",
		Caption:   "Goroutines are not threads. A thread 🧵 on what actually happens when you block.",
		Author:    "@gopherjosh",
		Hashtags:  []string{"golang", "concurrency", "backend"},
		Likes:     Count(3100),
		Views:     Count(98000),
		SavedAt:   "2024-06-10T21:15:00Z",
		URL:       "https://twitter.com/gopherjosh/status/1800000000000000001",
		Thumbnail: "https://images.unsplash.com/photo-1515879218367-8466d910aaa4?w=600",
	},
	{
		ID:        "3",
		Category:  Food,
		Platform:  Instagram,
		Summary:   "One-pan lemon garlic chickpea pasta, high in protein and ready in 20 minutes.",
		Caption:   "Weeknight pasta that tastes like a weekend 🍋🧄",
		Author:    "@panandplate",
		Hashtags:  []string{"recipe", "highprotein", "pasta", "vegetarian"},
		Likes:     Count(125000),
		Views:     Count(2300000),
		SavedAt:   "2024-06-08T18:02:00Z",
		URL:       "https://www.instagram.com/reel/C8p4st4/",
		Thumbnail: "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=600",
	},
	{
		ID:        "4",
		Category:  Travel,
		Platform:  Blog,
		Summary:   "Two-week Japan rail itinerary covering Tokyo, Kanazawa and Kyoto with a JR pass cost breakdown.",
		Caption:   "The only Japan itinerary you need for your first trip",
		Author:    "Wander Notes",
		Hashtags:  []string{"japan", "itinerary", "budgettravel"},
		SavedAt:   "2024-06-05T09:30:00Z",
		URL:       "https://wandernotes.blog/japan-rail-itinerary",
		Thumbnail: "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?w=600",
	},
	{
		ID:        "5",
		Category:  Design,
		Platform:  Twitter,
		Summary:   "Eight spacing rules for dashboard layouts, built around a 4px grid and consistent card padding.",
		Caption:   "Your UI looks messy because of spacing, not colour. Here are 8 rules.",
		Author:    "@pixelpriya",
		Hashtags:  []string{"uidesign", "layout", "designsystems"},
		Likes:     Count(8700),
		Views:     Count(240000),
		SavedAt:   "2024-06-03T14:48:00Z",
		URL:       "https://twitter.com/pixelpriya/status/1800000000000000002",
		Thumbnail: "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=600",
	},
	{
		ID:        "6",
		Category:  Finance,
		Platform:  Instagram,
		Summary:   "The 50/30/20 budgeting rule explained with a worked example on a first salary.",
		Caption:   "Got your first paycheck? Do this before anything else 💸",
		Author:    "@moneywithdev",
		Hashtags:  []string{"budgeting", "personalfinance", "savings"},
		Likes:     Count(61000),
		Views:     Count(870000),
		SavedAt:   "2024-05-30T11:05:00Z",
		URL:       "https://www.instagram.com/reel/C7bud63t/",
		Thumbnail: "https://images.unsplash.com/photo-1554224155-6726b3ff858f?w=600",
	},
	{
		ID:        "7",
		Category:  Motivation,
		Platform:  Twitter,
		Summary:   "Short reminder that consistency beats intensity, with a habit-stacking example.",
		Caption:   "You don't need more motivation. You need a smaller first step.",
		Author:    "@dailystoicish",
		Hashtags:  []string{"habits", "mindset"},
		Likes:     Count(22000),
		SavedAt:   "2024-05-28T06:20:00Z",
		URL:       "https://twitter.com/dailystoicish/status/1800000000000000003",
		Thumbnail: "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?w=600",
	},
	{
		ID:        "8",
		Category:  Music,
		Platform:  Instagram,
		Summary:   "Lo-fi beat breakdown showing how to chop a jazz sample and side-chain the kick.",
		Caption:   "How I made this beat in 15 minutes 🎧",
		Author:    "@beatsbynila",
		Hashtags:  []string{"lofi", "producer", "beatmaking"},
		Likes:     Count(34500),
		Views:     Count(410000),
		SavedAt:   "2024-05-25T22:40:00Z",
		URL:       "https://www.instagram.com/reel/C7l0f1/",
		Thumbnail: "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=600",
	},
	{
		ID:        "9",
		Category:  Coding,
		Platform:  Blog,
		Summary:   "Practical guide to writing table-driven tests and keeping fixtures readable as a suite grows.",
		Caption:   "Table-driven tests without the tears",
		Author:    "Backend Weekly",
		Hashtags:  []string{"testing", "golang"},
		SavedAt:   "2024-05-22T16:00:00Z",
		URL:       "https://backendweekly.dev/table-driven-tests",
		Thumbnail: "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=600",
	},
	{
		ID:        "10",
		Category:  Fitness,
		Platform:  Twitter,
		Summary:   "Beginner push/pull/legs split with progressive overload targets for the first eight weeks.",
		Caption:   "Stop program hopping. Run this PPL for 8 weeks and thank me later.",
		Author:    "@liftlogic",
		Hashtags:  []string{"strengthtraining", "gym"},
		Likes:     Count(3100),
		SavedAt:   "2024-05-20T05:55:00Z",
		URL:       "https://twitter.com/liftlogic/status/1800000000000000004",
		Thumbnail: "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=600",
	},
	{
		ID:        "11",
		Category:  Food,
		Platform:  Blog,
		Summary:   "Meal-prep plan for five lunches under a fixed budget, with a shopping list.",
		Caption:   "Five lunches, one Sunday, one shopping list",
		Author:    "Prep School Kitchen",
		Hashtags:  []string{},
		SavedAt:   "2024-05-18T12:10:00Z",
		URL:       "https://prepschool.kitchen/five-lunches",
		Thumbnail: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=600",
	},
	{
		ID:        "12",
		Category:  Travel,
		Platform:  Instagram,
		Summary:   "Hidden beaches on the Amalfi coast reachable by public ferry, with best times to avoid crowds.",
		Caption:   "Amalfi without the crowds? It's possible ⛴️",
		Author:    "@slowtravelsara",
		Hashtags:  []string{"italy", "amalfi", "travel.tips"},
		Likes:     Count(1250000),
		Views:     Count(9800000),
		SavedAt:   "2024-05-15T19:33:00Z",
		URL:       "https://www.instagram.com/reel/C6am4lf1/",
		Thumbnail: "https://images.unsplash.com/photo-1533105079780-92b9be482077?w=600",
	},
	{
		ID:        "13",
		Category:  Design,
		Platform:  Blog,
		Summary:   "How to pick an accessible colour palette and check contrast ratios before hand-off.",
		Caption:   "Accessible colour palettes, step by step",
		Author:    "Studio Grid",
		Hashtags:  []string{"accessibility", "color"},
		SavedAt:   "2024-05-12T10:00:00Z",
		URL:       "https://studiogrid.design/accessible-palettes",
		Thumbnail: "https://images.unsplash.com/photo-1513364776144-60967b0f800f?w=600",
	},
	{
		ID:        "14",
		Category:  Finance,
		Platform:  Twitter,
		Summary:   "Why index funds beat most active managers over twenty years, with the fee maths.",
		Caption:   "1% in fees sounds small. Here's what it costs you over 20 years.",
		Author:    "@indexinvestor",
		Hashtags:  []string{"investing", "indexfunds"},
		Likes:     Count(15400),
		Views:     Count(330000),
		SavedAt:   "2024-05-09T08:45:00Z",
		URL:       "https://twitter.com/indexinvestor/status/1800000000000000005",
		Thumbnail: "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=600",
	},
	{
		ID:        "15",
		Category:  Motivation,
		Platform:  Instagram,
		Summary:   "Morning journaling prompts for focus: three gratitudes, one priority, one thing to let go.",
		Caption:   "Journal with me ☕ 3 prompts that changed my mornings",
		Author:    "@mindfulmornings",
		Hashtags:  []string{"journaling", "selfgrowth", "morningroutine"},
		Likes:     Count(72300),
		Views:     Count(1100000),
		SavedAt:   "2024-05-06T07:00:00Z",
		URL:       "https://www.instagram.com/reel/C6j0urn4l/",
		Thumbnail: "https://images.unsplash.com/photo-1455390582262-044cdead277a?w=600",
	},
	{
		ID:        "16",
		Category:  Music,
		Platform:  Blog,
		Summary:   "Music theory primer on the circle of fifths and how to use it to write chord progressions.",
		Caption:   "The circle of fifths, finally explained",
		Author:    "Chord Club",
		Hashtags:  []string{"musictheory", "songwriting"},
		SavedAt:   "2024-05-02T20:20:00Z",
		URL:       "https://chordclub.io/circle-of-fifths",
		Thumbnail: "https://images.unsplash.com/photo-1507838153414-b4b713384a76?w=600",
	},
}

// Builtin returns a fresh copy of the demo collection. Callers may keep the
// returned slice; the package-level data is never handed out.
func Builtin() []SavedItem {
	items := make([]SavedItem, len(builtin))
	for i, item := range builtin {
		item.Hashtags = append([]string(nil), item.Hashtags...)
		item.Likes = copyCount(item.Likes)
		item.Views = copyCount(item.Views)
		items[i] = item
	}
	return items
}

func copyCount(n *int) *int {
	if n == nil {
		return nil
	}
	return Count(*n)
}
