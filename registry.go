package subdao

import (
	"context"
	"fmt"

	"github.com/smartcontractkit/subdao/sdk"
)

const (
	// RegistryPageSize is the number of subDAOs fetched per registry query.
	RegistryPageSize uint32 = 10
	// MaxRegistryPages bounds a single registry walk.
	MaxRegistryPages = 1000
)

// RegistryWalker checks subDAO membership by paging through a main DAO registry.
type RegistryWalker struct {
	querier  sdk.MainDaoQuerier
	pageSize uint32
	maxPages int
}

// NewRegistryWalker creates a RegistryWalker with the default page size and page bound.
func NewRegistryWalker(querier sdk.MainDaoQuerier) *RegistryWalker {
	return &RegistryWalker{
		querier:  querier,
		pageSize: RegistryPageSize,
		maxPages: MaxRegistryPages,
	}
}

// IsSubdaoLegitimate reports whether candidate is registered under mainDao.
//
// The walk starts with no cursor and moves it to the last entry of every page. It stops with
// true on the first page containing candidate and with false on the first empty page. A short
// page does not end the walk.
// A page that does not move the cursor fails with ErrRegistryCursorStalled and the walk fails
// with ErrRegistryWalkExhausted after maxPages pages.
func (w *RegistryWalker) IsSubdaoLegitimate(ctx context.Context, mainDao, candidate string) (bool, error) {
	var cursor *string
	limit := w.pageSize

	for page := 0; page < w.maxPages; page++ {
		subdaos, err := w.querier.ListSubDaos(ctx, mainDao, cursor, &limit)
		if err != nil {
			return false, fmt.Errorf("unable to list subdaos of %s: %w", mainDao, err)
		}

		if len(subdaos) == 0 {
			return false, nil
		}

		for _, s := range subdaos {
			if s.Addr == candidate {
				return true, nil
			}
		}

		last := subdaos[len(subdaos)-1].Addr
		if cursor != nil && *cursor == last {
			return false, fmt.Errorf("%w: page %d ends at %s", ErrRegistryCursorStalled, page, last)
		}
		cursor = &last
	}

	return false, fmt.Errorf("%w: %d pages of %d", ErrRegistryWalkExhausted, w.maxPages, w.pageSize)
}
