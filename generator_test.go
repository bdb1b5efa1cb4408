package selkocards_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/selkocards"
	"github.com/fwojciec/selkocards/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fiURL = "https://example.com/archive/2026/01/17/"
	enURL = "https://example.com/archive/en/2026/01/17/"

	fi1 = "Suomen hallitus kokoontui tänään Helsingissä. Se päätti uusista säännöistä kouluille."
	fi2 = "Huomenna sataa lunta koko maassa. Tiet voivat olla liukkaita aamulla."
	en1 = "The Finnish government met today in Helsinki. It decided on new rules for schools."
	en2 = "Tomorrow it will snow across the country. Roads may be slippery in the morning."
)

var fixedNow = time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)

func articleOf(lang selkocards.Language, heading string, paragraphs ...string) *selkocards.Article {
	a := &selkocards.Article{Lang: lang, Paragraphs: paragraphs}
	a.Blocks = append(a.Blocks, selkocards.Block{Kind: selkocards.BlockHeading, Level: 2, Text: heading})
	for _, p := range paragraphs {
		a.Blocks = append(a.Blocks, selkocards.Block{Kind: selkocards.BlockParagraph, Text: p})
	}
	return a
}

func finnishPage() *selkocards.Page {
	return &selkocards.Page{
		URL:          fiURL,
		Lang:         selkocards.Finnish,
		Title:        "Selkouutiset 17.1.2026",
		Heading:      "Viikon uutiset",
		Article:      articleOf(selkocards.Finnish, "Uutiset", "Kuva: Matti Meikäläinen", fi1, fi2),
		Translations: map[selkocards.Language]string{selkocards.English: enURL},
	}
}

func englishPage() *selkocards.Page {
	return &selkocards.Page{
		URL:          enURL,
		Lang:         selkocards.English,
		Title:        "Easy Finnish news 17.1.2026",
		Heading:      "News of the week",
		Article:      articleOf(selkocards.English, "News", "Photo: Matti Meikäläinen", en1, en2),
		Translations: map[selkocards.Language]string{selkocards.Finnish: fiURL},
	}
}

// newTestGenerator serves translations from pages keyed by URL.
func newTestGenerator(pages ...*selkocards.Page) *selkocards.Generator {
	byURL := make(map[string]*selkocards.Page)
	for _, p := range pages {
		byURL[p.URL] = p
	}
	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			if _, ok := byURL[url]; !ok {
				return "", selkocards.Errorf(selkocards.ENOTFOUND, "HTTP 404 for %s", url)
			}
			return "<html>" + url + "</html>", nil
		},
	}
	parser := &mock.PageParser{
		ParseFn: func(_ string, pageURL string) (*selkocards.Page, error) {
			return byURL[pageURL], nil
		},
	}
	g := selkocards.NewGenerator(selkocards.DefaultConfig(), fetcher, parser)
	g.Now = func() time.Time { return fixedNow }
	return g
}

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("pairs paragraphs of both language versions", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(finnishPage(), englishPage())

		deck, err := g.Generate(context.Background(), finnishPage(), selkocards.GranularityParagraph)

		require.NoError(t, err)
		assert.Equal(t, []selkocards.Card{
			{Front: fi1, Back: en1, Context: selkocards.CardContext{Paragraph: 1}},
			{Front: fi2, Back: en2, Context: selkocards.CardContext{Paragraph: 2}},
		}, deck.Cards)
		assert.Equal(t, selkocards.Finnish, deck.Current)
		assert.Equal(t, selkocards.GranularityParagraph, deck.Granularity)
		assert.Empty(t, deck.Diagnostics.Warnings())
	})

	t.Run("never emits credit lines", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(finnishPage(), englishPage())

		for _, level := range selkocards.Granularities {
			deck, err := g.Generate(context.Background(), finnishPage(), level)
			require.NoError(t, err)
			for _, c := range deck.Cards {
				assert.NotContains(t, c.Front, "Kuva:")
				assert.NotContains(t, c.Back, "Photo:")
			}
		}
	})

	t.Run("keeps the primary language on the front when viewing the translation", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(finnishPage(), englishPage())

		fromFinnish, err := g.Generate(context.Background(), finnishPage(), selkocards.GranularitySentence)
		require.NoError(t, err)
		fromEnglish, err := g.Generate(context.Background(), englishPage(), selkocards.GranularitySentence)
		require.NoError(t, err)

		assert.Equal(t, fromFinnish.Cards, fromEnglish.Cards)
		require.Len(t, fromEnglish.Cards, 4)
		assert.Equal(t, "Suomen hallitus kokoontui tänään Helsingissä.", fromEnglish.Cards[0].Front)
		assert.Equal(t, "The Finnish government met today in Helsinki.", fromEnglish.Cards[0].Back)
		assert.Equal(t, selkocards.English, fromEnglish.Current)
	})

	t.Run("takes section headings from the viewed page", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(finnishPage(), englishPage())

		deck, err := g.Generate(context.Background(), englishPage(), selkocards.GranularitySection)

		require.NoError(t, err)
		require.Len(t, deck.Cards, 1)
		assert.Equal(t, "News", deck.Cards[0].Context.Section)
		assert.Equal(t, fi1+"\n\n"+fi2, deck.Cards[0].Front)
		assert.Equal(t, en1+"\n\n"+en2, deck.Cards[0].Back)
	})

	t.Run("accepts mixed case level names", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(finnishPage(), englishPage())

		deck, err := g.Generate(context.Background(), finnishPage(), selkocards.Granularity("Paragraph"))

		require.NoError(t, err)
		assert.Equal(t, selkocards.GranularityParagraph, deck.Granularity)
		assert.Len(t, deck.Cards, 2)
	})

	t.Run("fills in metadata", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(finnishPage(), englishPage())

		deck, err := g.Generate(context.Background(), finnishPage(), selkocards.GranularityParagraph)

		require.NoError(t, err)
		require.NotNil(t, deck.Metadata)
		assert.Equal(t, "https://hiandrewquinn.github.io/selkouutiset-archive/2026/01/17/", deck.Metadata.URL)
		assert.Equal(t, fiURL, deck.Metadata.LocalURL)
		assert.Equal(t, "Viikon uutiset", deck.Metadata.ArticleTitle)
		assert.Equal(t, "2026-01-20", deck.Metadata.GeneratedDate)
	})

	t.Run("returns empty deck when nothing pairs", func(t *testing.T) {
		t.Parallel()

		en := englishPage()
		en.Article = articleOf(selkocards.English, "News", "Photo: Reuters")
		g := newTestGenerator(finnishPage(), en)

		deck, err := g.Generate(context.Background(), finnishPage(), selkocards.GranularityParagraph)

		require.NoError(t, err)
		assert.True(t, deck.Empty())
		assert.Equal(t, 2, deck.Unpaired)
	})
}

func TestGenerator_Generate_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown level", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(finnishPage(), englishPage())
		g.Fetcher = &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				t.Fatal("fetch must not be called for an invalid level")
				return "", nil
			},
		}

		_, err := g.Generate(context.Background(), finnishPage(), selkocards.Granularity("chapter"))

		assert.Equal(t, selkocards.EINVALID, selkocards.ErrorCode(err))
		assert.Equal(t, `unknown level: "chapter"`, selkocards.ErrorMessage(err))
	})

	t.Run("missing article", func(t *testing.T) {
		t.Parallel()

		page := finnishPage()
		page.Article = nil

		_, err := newTestGenerator(englishPage()).Generate(context.Background(), page, selkocards.GranularityParagraph)

		assert.Equal(t, selkocards.ENOTFOUND, selkocards.ErrorCode(err))
		assert.Equal(t, "article content not found", selkocards.ErrorMessage(err))
	})

	t.Run("missing translation link", func(t *testing.T) {
		t.Parallel()

		page := finnishPage()
		page.Translations = nil

		_, err := newTestGenerator(englishPage()).Generate(context.Background(), page, selkocards.GranularityParagraph)

		assert.Equal(t, selkocards.ENOTFOUND, selkocards.ErrorCode(err))
		assert.Equal(t, "translation link not found", selkocards.ErrorMessage(err))
	})

	t.Run("translation not found", func(t *testing.T) {
		t.Parallel()

		_, err := newTestGenerator().Generate(context.Background(), finnishPage(), selkocards.GranularityParagraph)

		assert.Equal(t, selkocards.ENOTFOUND, selkocards.ErrorCode(err))
		assert.True(t, strings.HasPrefix(selkocards.ErrorMessage(err), "failed to fetch translation: HTTP 404"))
	})

	t.Run("translation fetch fails", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("connection refused")
		g := newTestGenerator(englishPage())
		g.Fetcher = &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return "", cause },
		}

		_, err := g.Generate(context.Background(), finnishPage(), selkocards.GranularityParagraph)

		require.ErrorIs(t, err, cause)
		assert.Equal(t, selkocards.EINTERNAL, selkocards.ErrorCode(err))
	})

	t.Run("translation without article", func(t *testing.T) {
		t.Parallel()

		en := englishPage()
		en.Article = nil

		_, err := newTestGenerator(en).Generate(context.Background(), finnishPage(), selkocards.GranularityParagraph)

		assert.Equal(t, selkocards.ENOTFOUND, selkocards.ErrorCode(err))
		assert.Equal(t, "translation article not found", selkocards.ErrorMessage(err))
	})

	t.Run("page language outside pair", func(t *testing.T) {
		t.Parallel()

		page := finnishPage()
		page.Lang = "sv"

		_, err := newTestGenerator(englishPage()).Generate(context.Background(), page, selkocards.GranularityParagraph)

		assert.Equal(t, selkocards.EINVALID, selkocards.ErrorCode(err))
	})

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(englishPage())
		g.Config.Pair = selkocards.LanguagePair{Primary: selkocards.Finnish, Secondary: selkocards.Finnish}

		_, err := g.Generate(context.Background(), finnishPage(), selkocards.GranularityParagraph)

		assert.Equal(t, selkocards.EINVALID, selkocards.ErrorCode(err))
	})
}

func TestGenerator_Generate_Detector(t *testing.T) {
	t.Parallel()

	t.Run("detects undeclared page language", func(t *testing.T) {
		t.Parallel()

		page := englishPage()
		page.Lang = ""
		g := newTestGenerator(finnishPage())
		g.Detector = &mock.LanguageDetector{
			DetectLanguageFn: func(text string) (selkocards.Language, bool) {
				if strings.Contains(text, "government") {
					return selkocards.English, true
				}
				return selkocards.Finnish, true
			},
		}

		deck, err := g.Generate(context.Background(), page, selkocards.GranularityParagraph)

		require.NoError(t, err)
		assert.Equal(t, selkocards.English, deck.Current)
		require.Len(t, deck.Cards, 2)
		assert.Equal(t, fi1, deck.Cards[0].Front)
		assert.Equal(t, "page declares no language, detected en", deck.Diagnostics[0].Message)
	})

	t.Run("falls back to primary language", func(t *testing.T) {
		t.Parallel()

		page := finnishPage()
		page.Lang = ""

		deck, err := newTestGenerator(englishPage()).Generate(context.Background(), page, selkocards.GranularityParagraph)

		require.NoError(t, err)
		assert.Equal(t, selkocards.Finnish, deck.Current)
	})

	t.Run("warns when text does not match declared language", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(englishPage())
		g.Detector = &mock.LanguageDetector{
			DetectLanguageFn: func(string) (selkocards.Language, bool) {
				return selkocards.Finnish, true
			},
		}

		deck, err := g.Generate(context.Background(), finnishPage(), selkocards.GranularityParagraph)

		require.NoError(t, err)
		warnings := deck.Diagnostics.Warnings()
		require.Len(t, warnings, 1)
		assert.Equal(t, "en article text looks like fi, cards may be mispaired", warnings[0].Message)
		assert.Len(t, deck.Cards, 2)
	})
}
