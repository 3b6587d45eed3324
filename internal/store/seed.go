package store

import "github.com/campusjive/campus-events/internal/model"

// Built-in default dataset. It is written to the persistence adapter the
// first time the store starts against empty storage, so browsing never shows
// an empty campus. A non-empty persisted collection is never overwritten.

func seedCategories() []model.Category {
	return []model.Category{
		{ID: "1", Name: "Sports"},
		{ID: "2", Name: "Music"},
		{ID: "3", Name: "Tech"},
		{ID: "4", Name: "Arts"},
	}
}

func seedEvents() []model.Event {
	return []model.Event{
		{
			ID:          "1",
			Name:        "Annual Tech Fest",
			Category:    "Tech",
			Description: "A showcase of the latest in campus tech and innovation. Join us for workshops, competitions, and guest lectures.",
			Image:       "https://picsum.photos/600/400?random=1",
		},
		{
			ID:          "2",
			Name:        "Inter-College Cricket Tournament",
			Category:    "Sports",
			Description: "A thrilling tournament between the best cricket teams. Come and cheer for your college!",
			Image:       "https://picsum.photos/600/400?random=2",
		},
		{
			ID:          "3",
			Name:        "Art & Culture Gala",
			Category:    "Arts",
			Description: "Celebrating student talent in art, dance, and music. An evening of spectacular performances.",
			Image:       "https://picsum.photos/600/400?random=3",
		},
		{
			ID:          "4",
			Name:        "Campus Band Night",
			Category:    "Music",
			Description: "Rock out with the best student bands on campus. A night of great music and high energy.",
			Image:       "https://picsum.photos/600/400?random=4",
		},
	}
}

func seedPhotos() []model.Photo {
	return []model.Photo{
		{ID: "1", Src: "https://picsum.photos/600/400?random=11", Alt: "Event photo 1"},
		{ID: "2", Src: "https://picsum.photos/600/400?random=12", Alt: "Event photo 2"},
		{ID: "3", Src: "https://picsum.photos/600/400?random=13", Alt: "Event photo 3"},
		{ID: "4", Src: "https://picsum.photos/600/400?random=14", Alt: "Event photo 4"},
		{ID: "5", Src: "https://picsum.photos/600/400?random=15", Alt: "Event photo 5"},
		{ID: "6", Src: "https://picsum.photos/600/400?random=16", Alt: "Event photo 6"},
	}
}
