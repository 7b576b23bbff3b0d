// Copyright (c) 2026 Maqala. All rights reserved.

package article_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maqalahq/maqala/internal/article"
	"github.com/maqalahq/maqala/internal/platform/apperr"
	"github.com/maqalahq/maqala/pkg/pointer"
)

// # Test Doubles

// fakeRepository is an in-memory [article.Repository] that records write
// counts so tests can assert on persistence side effects.
type fakeRepository struct {
	records map[string]*article.Article
	creates int
	updates int
	upserts int
	deletes int
}

func newFakeRepository(seed ...*article.Article) *fakeRepository {
	repo := &fakeRepository{records: make(map[string]*article.Article)}
	for _, target := range seed {
		repo.records[target.ID] = target
	}
	return repo
}

func (repo *fakeRepository) List(_ context.Context, filter article.Filter, limit, offset int) ([]*article.Article, int, error) {
	var matches []*article.Article
	for _, target := range repo.records {
		if filter.Language != "" && target.Language != filter.Language {
			continue
		}
		matches = append(matches, target)
	}
	total := len(matches)
	if offset >= len(matches) {
		return nil, total, nil
	}
	matches = matches[offset:]
	if limit < len(matches) {
		matches = matches[:limit]
	}
	return matches, total, nil
}

func (repo *fakeRepository) FindByID(_ context.Context, id string) (*article.Article, error) {
	target, ok := repo.records[id]
	if !ok {
		return nil, apperr.NotFound("Article")
	}
	return target, nil
}

func (repo *fakeRepository) FindBySlugLanguage(_ context.Context, slug string, language article.Language) (*article.Article, error) {
	for _, target := range repo.records {
		if target.Slug == slug && target.Language == language {
			return target, nil
		}
	}
	return nil, apperr.NotFound("Article")
}

func (repo *fakeRepository) FindBySlugWithOverlay(_ context.Context, slug string, language article.Language) (*article.Article, error) {
	for _, target := range repo.records {
		if target.Slug == slug && target.LanguageBlock(language) != nil {
			return target, nil
		}
	}
	return nil, apperr.NotFound("Article")
}

func (repo *fakeRepository) Create(_ context.Context, target *article.Article) error {
	for _, existing := range repo.records {
		if existing.Slug == target.Slug && existing.Language == target.Language {
			return apperr.Conflict("Article already exists for this slug and language")
		}
	}
	repo.creates++
	repo.records[target.ID] = target
	return nil
}

func (repo *fakeRepository) Update(_ context.Context, target *article.Article) error {
	if _, ok := repo.records[target.ID]; !ok {
		return apperr.NotFound("Article")
	}
	repo.updates++
	repo.records[target.ID] = target
	return nil
}

func (repo *fakeRepository) Upsert(_ context.Context, target *article.Article) error {
	repo.upserts++
	for id, existing := range repo.records {
		if existing.Slug == target.Slug && existing.Language == target.Language {
			// Mirrors the store's RETURNING clause: the conflict path keeps
			// the persisted row's identity.
			target.ID = existing.ID
			target.CreatedAt = existing.CreatedAt
			repo.records[id] = target
			return nil
		}
	}
	repo.records[target.ID] = target
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := repo.records[id]; !ok {
		return apperr.NotFound("Article")
	}
	repo.deletes++
	delete(repo.records, id)
	return nil
}

func (repo *fakeRepository) IncrementViews(_ context.Context, id string) (int64, error) {
	target, ok := repo.records[id]
	if !ok {
		return 0, apperr.NotFound("Article")
	}
	target.Views++
	return target.Views, nil
}

func (repo *fakeRepository) IncrementShares(_ context.Context, id string) (int64, error) {
	target, ok := repo.records[id]
	if !ok {
		return 0, apperr.NotFound("Article")
	}
	target.Shares++
	return target.Shares, nil
}

// fakeTranslator records provider calls and can be forced to fail. The
// preview flow translates fields concurrently, so the counter is guarded.
type fakeTranslator struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (translator *fakeTranslator) translate(input, targetLanguage string) (string, error) {
	translator.mu.Lock()
	translator.calls++
	translator.mu.Unlock()
	if translator.fail {
		return "", errors.New("provider unavailable")
	}
	return "[" + targetLanguage + "]" + input, nil
}

func (translator *fakeTranslator) TranslateHTML(_ context.Context, html, targetLanguage string) (string, error) {
	return translator.translate(html, targetLanguage)
}

func (translator *fakeTranslator) TranslateText(_ context.Context, text, targetLanguage string) (string, error) {
	return translator.translate(text, targetLanguage)
}

func (translator *fakeTranslator) Name() string { return "fake" }

// newTestService wires a service around the fakes with caching disabled.
func newTestService(repo *fakeRepository, translator *fakeTranslator) *article.Service {
	logger := slog.New(slog.DiscardHandler)
	return article.NewService(repo, article.NewCache(nil, logger), translator, logger)
}

// publishedArticle returns a persisted-looking English source record.
func publishedArticle() *article.Article {
	return &article.Article{
		ID:       "0192a1b2-0000-7000-8000-00000000abcd",
		Slug:     "desert-agriculture",
		Language: article.LanguageEnglish,
		Title:    "Desert Agriculture",
		Subtitle: "Farming the arid frontier",
		Excerpt:  "How drip irrigation changed the desert.",
		Author:   "Jordan Writer",
		Content: article.Content{
			HTML:      "<p>Desert farming at scale.</p>",
			PlainText: "Desert farming at scale.",
			WordCount: 4,
		},
		FeaturedImage: article.FeaturedImage{URL: "https://cdn.maqala.app/hero.jpg", Alt: "Drip lines"},
		Status:        article.StatusPublished,
		ReadingTime:   1,
	}
}

// # Create & Update

/*
TestCreateArticle verifies identity generation, normalisation, and
persistence on the create path.
*/
func TestCreateArticle(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, &fakeTranslator{})

	target := &article.Article{
		Title:         "Fresh Story",
		Author:        "Jordan Writer",
		Content:       article.Content{HTML: "<p>body</p>", PlainText: "one two three"},
		FeaturedImage: article.FeaturedImage{URL: "https://cdn.maqala.app/img.jpg"},
	}

	require.NoError(t, service.CreateArticle(context.Background(), target))

	assert.Equal(t, 1, repo.creates)
	assert.NotEmpty(t, target.ID)
	assert.Equal(t, "fresh-story", target.Slug)
	assert.Equal(t, article.LanguageEnglish, target.Language)
	assert.Equal(t, article.StatusDraft, target.Status)
	assert.Equal(t, 3, target.Content.WordCount)
	assert.Equal(t, 1, target.ReadingTime)
}

/*
TestCreateArticle_DuplicateSlugLanguageConflict verifies that a second
create landing on an occupied (slug, language) pair surfaces as a 409
CONFLICT and persists nothing.
*/
func TestCreateArticle_DuplicateSlugLanguageConflict(t *testing.T) {
	repo := newFakeRepository(publishedArticle())
	service := newTestService(repo, &fakeTranslator{})

	duplicate := &article.Article{
		Title:         "Desert Agriculture",
		Author:        "Another Writer",
		Language:      article.LanguageEnglish,
		Content:       article.Content{HTML: "<p>other take</p>", PlainText: "other take"},
		FeaturedImage: article.FeaturedImage{URL: "https://cdn.maqala.app/other.jpg"},
	}

	err := service.CreateArticle(context.Background(), duplicate)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, "CONFLICT"))
	assert.Equal(t, 0, repo.creates)
}

/*
TestCreateArticle_GuardRejectsBeforePersist verifies the all-or-nothing
rule: an oversized block means no repository call at all.
*/
func TestCreateArticle_GuardRejectsBeforePersist(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, &fakeTranslator{})

	target := publishedArticle()
	target.DualLanguage = map[article.Language]*article.LanguageContent{
		article.LanguageArabic: {
			Content: article.Content{HTML: strings.Repeat("a", article.MaxHTMLChars+1)},
		},
	}

	err := service.CreateArticle(context.Background(), target)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, "CONTENT_TOO_LARGE"))
	assert.Equal(t, 0, repo.creates)
}

/*
TestCreateArticle_DefaultFillFromEnglishOverlay verifies that a create with
only the English overlay author still passes the author requirement and
lands with the filled primary value.
*/
func TestCreateArticle_DefaultFillFromEnglishOverlay(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, &fakeTranslator{})

	target := &article.Article{
		Title:              "Backfilled Author",
		Content:            article.Content{HTML: "<p>body</p>"},
		FeaturedImage:      article.FeaturedImage{URL: "https://cdn.maqala.app/img.jpg"},
		DualLanguageAuthor: map[article.Language]string{article.LanguageEnglish: "X"},
	}

	require.NoError(t, service.CreateArticle(context.Background(), target))
	assert.Equal(t, "X", target.Author)
}

/*
TestUpdateArticle verifies patch merging and re-derivation on update.
*/
func TestUpdateArticle(t *testing.T) {
	source := publishedArticle()
	repo := newFakeRepository(source)
	service := newTestService(repo, &fakeTranslator{})

	updated, err := service.UpdateArticle(context.Background(), source.ID, &article.Patch{
		Content: &article.ContentPatch{PlainText: pointer.To("now five words in total")},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.updates)
	assert.Equal(t, 5, updated.Content.WordCount)
	assert.Equal(t, "Desert Agriculture", updated.Title)
}

/*
TestUpdateArticle_NotFound verifies the missing-record path.
*/
func TestUpdateArticle_NotFound(t *testing.T) {
	service := newTestService(newFakeRepository(), &fakeTranslator{})

	_, err := service.UpdateArticle(context.Background(), "missing", &article.Patch{})
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, "NOT_FOUND"))
}

// # Dual-Language Flows

/*
TestCreateDualLanguageArticle_RequiresABlock verifies the create is rejected
when neither language block carries content.
*/
func TestCreateDualLanguageArticle_RequiresABlock(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, &fakeTranslator{})

	err := service.CreateDualLanguageArticle(context.Background(), &article.Article{
		Title: "No Blocks",
	})

	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, "DUAL_LANGUAGE_REQUIRED"))
	assert.Equal(t, 0, repo.creates)
}

/*
TestCreateDualLanguageArticle_AdoptsEnglishBlock verifies that an empty
primary shape adopts the English block's content.
*/
func TestCreateDualLanguageArticle_AdoptsEnglishBlock(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, &fakeTranslator{})

	target := &article.Article{
		Author:        "Jordan Writer",
		FeaturedImage: article.FeaturedImage{URL: "https://cdn.maqala.app/img.jpg"},
		DualLanguage: map[article.Language]*article.LanguageContent{
			article.LanguageEnglish: {
				Title:   "Adopted Title",
				Content: article.Content{HTML: "<p>en body</p>", PlainText: "en body"},
			},
			article.LanguageArabic: {
				Title:   "عنوان",
				Content: article.Content{HTML: "<p>نص</p>", PlainText: "نص"},
			},
		},
	}

	require.NoError(t, service.CreateDualLanguageArticle(context.Background(), target))

	assert.Equal(t, "Adopted Title", target.Title)
	assert.Equal(t, article.LanguageEnglish, target.Language)
	assert.Equal(t, "adopted-title", target.Slug)

	// Both overlay blocks survive the create
	assert.NotNil(t, target.DualLanguage[article.LanguageEnglish])
	assert.NotNil(t, target.DualLanguage[article.LanguageArabic])
}

/*
TestAddSecondaryLanguageContent verifies the merge-and-persist flow for a
full overlay block.
*/
func TestAddSecondaryLanguageContent(t *testing.T) {
	source := publishedArticle()
	repo := newFakeRepository(source)
	service := newTestService(repo, &fakeTranslator{})

	updated, err := service.AddSecondaryLanguageContent(context.Background(), source.ID, article.LanguageArabic, &article.LanguageContentPatch{
		Title:   pointer.To("الزراعة الصحراوية"),
		Content: &article.ContentPatch{PlainText: pointer.To("نص عربي كامل")},
	})

	require.NoError(t, err)
	block := updated.DualLanguage[article.LanguageArabic]
	require.NotNil(t, block)
	assert.Equal(t, "الزراعة الصحراوية", block.Title)
	assert.Equal(t, 3, block.Content.WordCount)
	assert.Equal(t, article.StatusDraft, block.Status)
}

/*
TestAddSecondaryLanguageFields verifies the additive narrow-overlay flow.
*/
func TestAddSecondaryLanguageFields(t *testing.T) {
	source := publishedArticle()
	source.DualLanguageTitle = map[article.Language]string{article.LanguageEnglish: "A"}
	repo := newFakeRepository(source)
	service := newTestService(repo, &fakeTranslator{})

	updated, err := service.AddSecondaryLanguageFields(context.Background(), source.ID, &article.OverlayFieldsPatch{
		Title: map[article.Language]string{article.LanguageArabic: "ب"},
	})

	require.NoError(t, err)
	assert.Equal(t, "A", updated.DualLanguageTitle[article.LanguageEnglish])
	assert.Equal(t, "ب", updated.DualLanguageTitle[article.LanguageArabic])
}

/*
TestAddSecondaryLanguageFields_GuardRunsBeforePersist verifies the narrow
overlay path shares the guard-before-write discipline of the other persist
flows: a record carrying an oversized block is rejected without an update.
*/
func TestAddSecondaryLanguageFields_GuardRunsBeforePersist(t *testing.T) {
	source := publishedArticle()
	source.Content.HTML = strings.Repeat("a", article.MaxHTMLChars+1)
	repo := newFakeRepository(source)
	service := newTestService(repo, &fakeTranslator{})

	_, err := service.AddSecondaryLanguageFields(context.Background(), source.ID, &article.OverlayFieldsPatch{
		Title: map[article.Language]string{article.LanguageArabic: "ب"},
	})

	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, "CONTENT_TOO_LARGE"))
	assert.Equal(t, 0, repo.updates)
}

// # Slug Reads

/*
TestGetArticleBySlug_DualLanguageFallback verifies the read fallback: an
exact primary-language match wins, otherwise an overlay carrier serves the
request.
*/
func TestGetArticleBySlug_DualLanguageFallback(t *testing.T) {
	source := publishedArticle()
	source.DualLanguage = map[article.Language]*article.LanguageContent{
		article.LanguageArabic: {Title: "الزراعة", Status: article.StatusPublished},
	}
	repo := newFakeRepository(source)
	service := newTestService(repo, &fakeTranslator{})

	t.Run("exact_match", func(t *testing.T) {
		found, err := service.GetArticleBySlug(context.Background(), "desert-agriculture", article.LanguageEnglish)
		require.NoError(t, err)
		assert.Equal(t, source.ID, found.ID)
	})

	t.Run("overlay_fallback", func(t *testing.T) {
		found, err := service.GetArticleBySlug(context.Background(), "desert-agriculture", article.LanguageArabic)
		require.NoError(t, err)
		assert.Equal(t, source.ID, found.ID)
	})

	t.Run("no_match", func(t *testing.T) {
		_, err := service.GetArticleBySlug(context.Background(), "desert-agriculture", article.LanguageTurkish)
		require.Error(t, err)
		assert.True(t, apperr.IsCode(err, "NOT_FOUND"))
	})
}
