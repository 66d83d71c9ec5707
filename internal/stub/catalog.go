package stub

import "github.com/KunjShah95/movie-recommendation/internal/models"

// CatalogEntry is a movie plus the scoring attributes the stub matches on.
type CatalogEntry struct {
	models.Movie
	Runtime int      // minutes
	Tones   []string // moods the film resonates with
	Intents []string // intents the film serves
}

// Catalog is the seeded film pool the stub recommends from. Posters point at
// placeholder art; ids are stable so share snapshots survive restarts of the
// same build.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{
			Movie: models.Movie{
				ID: 1, Title: "The Shawshank Redemption", Year: 1994, Type: "movie",
				Poster:       "https://images.unsplash.com/photo-1594908900066-3f47337549d8?w=800&h=1200&fit=crop",
				EmotionalTag: "Resilience",
				EmotionalArc: "Begins with despair and isolation, builds hope through friendship, ends in freedom.",
			},
			Runtime: 142,
			Tones:   []string{"Melancholic", "Cerebral"},
			Intents: []string{models.IntentInspiration, models.IntentEducational},
		},
		{
			Movie: models.Movie{
				ID: 2, Title: "Eternal Sunshine of the Spotless Mind", Year: 2004, Type: "movie",
				Poster:       "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=800&h=1200&fit=crop",
				EmotionalTag: "Introspective",
				EmotionalArc: "A non-linear journey through memory that balances heartbreak with beauty.",
			},
			Runtime: 108,
			Tones:   []string{"Melancholic", "Ethereal"},
			Intents: []string{models.IntentRelaxation, models.IntentInspiration},
		},
		{
			Movie: models.Movie{
				ID: 3, Title: "Inception", Year: 2010, Type: "movie",
				Poster:       "https://images.unsplash.com/photo-1509281373149-e957c6296406?w=800&h=1200&fit=crop",
				EmotionalTag: "Intellectual",
				EmotionalArc: "A high-stakes descent into the subconscious that challenges reality.",
			},
			Runtime: 148,
			Tones:   []string{"Cerebral", "Chaotic"},
			Intents: []string{models.IntentEscapism, models.IntentGroupWatch},
		},
		{
			Movie: models.Movie{
				ID: 4, Title: "Spirited Away", Year: 2001, Type: "movie",
				Poster:       "https://images.unsplash.com/photo-1578632767115-351597cf2477?w=800&h=1200&fit=crop",
				EmotionalTag: "Wonder",
				EmotionalArc: "A child's fear dissolves into courage inside a world of spirits.",
			},
			Runtime: 125,
			Tones:   []string{"Ethereal", "Euphoric"},
			Intents: []string{models.IntentEscapism, models.IntentRelaxation},
		},
		{
			Movie: models.Movie{
				ID: 5, Title: "Mad Max: Fury Road", Year: 2015, Type: "movie",
				Poster:       "https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=800&h=1200&fit=crop",
				EmotionalTag: "Adrenaline",
				EmotionalArc: "Relentless pursuit across a wasteland, escalating into liberation.",
			},
			Runtime: 120,
			Tones:   []string{"Chaotic", "Euphoric"},
			Intents: []string{models.IntentEscapism, models.IntentGroupWatch},
		},
		{
			Movie: models.Movie{
				ID: 6, Title: "My Neighbor Totoro", Year: 1988, Type: "movie",
				Poster:       "https://images.unsplash.com/photo-1416862291207-4ca732144d83?w=800&h=1200&fit=crop",
				EmotionalTag: "Comfort",
				EmotionalArc: "Gentle rural days that turn worry into quiet magic.",
			},
			Runtime: 86,
			Tones:   []string{"Ethereal", "Euphoric"},
			Intents: []string{models.IntentRelaxation, models.IntentGroupWatch},
		},
		{
			Movie: models.Movie{
				ID: 7, Title: "Arrival", Year: 2016, Type: "movie",
				Poster:       "https://images.unsplash.com/photo-1446776811953-b23d57bd21aa?w=800&h=1200&fit=crop",
				EmotionalTag: "Contemplative",
				EmotionalArc: "Grief and wonder interleave until language reshapes time itself.",
			},
			Runtime: 116,
			Tones:   []string{"Cerebral", "Melancholic"},
			Intents: []string{models.IntentEducational, models.IntentInspiration},
		},
		{
			Movie: models.Movie{
				ID: 8, Title: "Paddington 2", Year: 2017, Type: "movie",
				Poster:       "https://images.unsplash.com/photo-1502136969935-8d8eef54d77b?w=800&h=1200&fit=crop",
				EmotionalTag: "Warmth",
				EmotionalArc: "Small kindnesses compound into a community-wide embrace.",
			},
			Runtime: 103,
			Tones:   []string{"Euphoric", "Ethereal"},
			Intents: []string{models.IntentRelaxation, models.IntentGroupWatch},
		},
	}
}
