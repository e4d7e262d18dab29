// Package fallback holds the static literal content served whenever the
// database is unreachable or returns no rows. The records are deterministic
// and always treated as published, regardless of any filter the caller used
// on the persistence path.
//
// The "get all" and "get one" datasets intentionally differ: the list carries
// three articles while the by-id set only knows article 1. Looking up id 2
// with the database down is a 404 even though the list shows it. This
// mirrors the behavior the product shipped with and is tracked as an open
// question in DESIGN.md, not something to quietly fix here.
package fallback

import (
	"time"

	"github.com/ruslanamed/clinic-go/internal/model"
)

// seedTime keeps fallback responses byte-identical between requests.
var seedTime = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

var articleList = []model.Article{
	{
		ID:       1,
		Title:    "Рак легень: ранні ознаки та діагностика",
		Excerpt:  "Рак легень - одне з найпоширеніших онкологічних захворювань. Дізнайтеся про перші симптоми та сучасні методи діагностики.",
		Category: model.CategoryDiagnostics,
		Image:    "https://images.unsplash.com/photo-1631217868264-e5b90bb7e133?w=800&h=600&fit=crop",
		Content: model.ArticleContent{
			Intro: "Рак легень залишається одним з найпоширеніших онкологічних захворювань.",
			Sections: []model.ContentSection{
				{Heading: "Симптоми", Text: "Кашель, задишка, біль у грудях."},
			},
		},
		Date:      "15 березня 2025",
		ReadTime:  "7 хв",
		Published: true,
		CreatedAt: seedTime,
		UpdatedAt: seedTime,
	},
	{
		ID:       2,
		Title:    "Сучасні методи лікування раку легень",
		Excerpt:  "Від хірургічного втручання до таргетної терапії - огляд найефективніших методів лікування онкології легень.",
		Category: model.CategoryTreatment,
		Image:    "https://images.unsplash.com/photo-1579684385127-1ef15d508118?w=800&h=600&fit=crop",
		Content: model.ArticleContent{
			Intro: "Сучасні методи лікування.",
			Sections: []model.ContentSection{
				{Heading: "Хірургія", Text: "Операційне видалення."},
			},
		},
		Date:      "10 березня 2025",
		ReadTime:  "8 хв",
		Published: true,
		CreatedAt: seedTime,
		UpdatedAt: seedTime,
	},
	{
		ID:       3,
		Title:    "Профілактика раку легень",
		Excerpt:  "Важливість відмови від куріння, регулярних обстежень та здорового способу життя для профілактики раку легень.",
		Category: model.CategoryPrevention,
		Image:    "https://images.unsplash.com/photo-1505576399279-565b52d4ac71?w=800&h=600&fit=crop",
		Content: model.ArticleContent{
			Intro: "Профілактика раку легень.",
			Sections: []model.ContentSection{
				{Heading: "Куріння", Text: "Головний фактор ризику."},
			},
		},
		Date:      "5 березня 2025",
		ReadTime:  "6 хв",
		Published: true,
		CreatedAt: seedTime,
		UpdatedAt: seedTime,
	},
}

// articleByID is the narrower dataset the single-article endpoint falls back
// to. See the package comment for why it is smaller than articleList.
var articleByID = articleList[:1]

// Articles returns the fallback article list. The slice is a copy; callers
// may reorder or filter it freely.
func Articles() []model.Article {
	out := make([]model.Article, len(articleList))
	copy(out, articleList)
	return out
}

// ArticleByID looks up one article in the by-id fallback set.
func ArticleByID(id int64) (model.Article, bool) {
	for _, a := range articleByID {
		if a.ID == id {
			return a, true
		}
	}
	return model.Article{}, false
}
