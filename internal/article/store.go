// Copyright (c) 2026 Maqala. All rights reserved.

package article

import "context"

// # Article Data Access

// Repository defines the data access contract for the article domain.
type Repository interface {

	/*
		List returns a filtered, paginated slice of articles and the total count.

		Parameters:
		  - context: context.Context
		  - filter: Filter (Criteria for language, status, category, series, etc.)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Article: Slice of matching article records
		  - int: Total count of records matching the filter
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Article, int, error)

	/*
		FindByID returns the article with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Article: The hydrated domain entity
		  - error: NOT_FOUND if missing
	*/
	FindByID(context context.Context, id string) (*Article, error)

	/*
		FindBySlugLanguage returns the article matching the compound key
		(slug, language) exactly.

		Parameters:
		  - context: context.Context
		  - slug: string
		  - language: Language

		Returns:
		  - *Article: The hydrated domain entity
		  - error: NOT_FOUND if missing
	*/
	FindBySlugLanguage(context context.Context, slug string, language Language) (*Article, error)

	/*
		FindBySlugWithOverlay returns an article whose slug matches and whose
		dual-language overlay carries a block for the given language. Used as
		the fallback when no record has that language as its primary.

		Parameters:
		  - context: context.Context
		  - slug: string
		  - language: Language

		Returns:
		  - *Article: The hydrated domain entity
		  - error: NOT_FOUND if no record carries the overlay
	*/
	FindBySlugWithOverlay(context context.Context, slug string, language Language) (*Article, error)

	/*
		Create persists a new article to the store.

		Parameters:
		  - context: context.Context
		  - target: *Article (Fully normalised record)

		Returns:
		  - error: CONFLICT on a duplicate (slug, language) pair
	*/
	Create(context context.Context, target *Article) error

	/*
		Update persists changes to an existing article's mutable fields.

		Parameters:
		  - context: context.Context
		  - target: *Article (Target ID and merged attributes)

		Returns:
		  - error: NOT_FOUND if the ID no longer resolves
	*/
	Update(context context.Context, target *Article) error

	/*
		Upsert atomically inserts the article, or replaces the content of the
		existing record sharing its (slug, language) pair. The single-statement
		upsert is what keeps concurrent translation requests from producing
		duplicate sibling records. When the pair already exists, target's ID
		and CreatedAt are rewritten with the persisted row's values.

		Parameters:
		  - context: context.Context
		  - target: *Article (Sibling record produced by the translation flow;
		    identity fields are hydrated from the persisted row)

		Returns:
		  - error: Storage failures
	*/
	Upsert(context context.Context, target *Article) error

	/*
		Delete removes an article permanently.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - error: NOT_FOUND if the ID does not resolve
	*/
	Delete(context context.Context, id string) error

	/*
		IncrementViews atomically adds one to the view counter.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - int64: The counter value after the increment
		  - error: NOT_FOUND if the ID does not resolve
	*/
	IncrementViews(context context.Context, id string) (int64, error)

	/*
		IncrementShares atomically adds one to the share counter.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - int64: The counter value after the increment
		  - error: NOT_FOUND if the ID does not resolve
	*/
	IncrementShares(context context.Context, id string) (int64, error)
}
