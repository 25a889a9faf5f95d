package service

import (
	"fmt"

	"trackmirror/internal/adapter/out/storage"
	"trackmirror/pkg/pagination"
)

func validatePagination(in pagination.PageRequest) error {
	beforeCursorProvided := in.BeforeCursor != nil && *in.BeforeCursor != ""
	afterCursorProvided := in.AfterCursor != nil && *in.AfterCursor != ""

	if beforeCursorProvided && afterCursorProvided {
		return fmt.Errorf("both cursors provided: %w", ErrInvalidRequest)
	}
	return nil
}

func toListTracksParams(in pagination.PageRequest) (storage.ListTracksParams, error) {
	if err := validatePagination(in); err != nil {
		return storage.ListTracksParams{}, err
	}

	if in.Limit <= 0 {
		in.Limit = DefaultTracksLimit
	}
	in.Limit = min(in.Limit, MaxTracksLimit)

	before, err := pagination.Decode(in.BeforeCursor)
	if err != nil {
		return storage.ListTracksParams{}, fmt.Errorf("%w: decoding before-cursor: %v", ErrInvalidRequest, err)
	}

	after, err := pagination.Decode(in.AfterCursor)
	if err != nil {
		return storage.ListTracksParams{}, fmt.Errorf("%w: decoding after-cursor: %v", ErrInvalidRequest, err)
	}

	if before == nil && after == nil {
		return storage.ListTracksParams{}, fmt.Errorf("cursor is required: %w", ErrInvalidRequest)
	}

	var params storage.ListTracksParams
	params.Limit = in.Limit

	if before != nil {
		params.Cursor = *before
		params.Direction = storage.DirectionBefore
	} else {
		params.Cursor = *after
		params.Direction = storage.DirectionAfter
	}
	return params, nil
}
