package ports

import (
	"context"

	"techindex/domain/index"
)

// TabularReader supplies loosely typed rows decoded from a spreadsheet.
// It is the ingestion collaborator boundary: the pipeline consumes rows
// and never learns where they came from.
type TabularReader interface {
	ReadRows(ctx context.Context) ([]index.RawRow, error)
}
