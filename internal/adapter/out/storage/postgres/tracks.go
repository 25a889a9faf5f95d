package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"trackmirror/internal/adapter/out/storage"
	"trackmirror/internal/model"
	"trackmirror/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

const (
	DefaultTracksLimit = 50
)

var (
	ErrBuildingQuery = errors.New("error building sql-query")
	ErrNotFound      = errors.New("not found")
)

var trackColumns = []string{
	tableinfo.TrackIDColumn,
	tableinfo.TrackRemoteIDColumn,
	tableinfo.TrackTitleColumn,
	tableinfo.TrackArtistColumn,
	tableinfo.TrackDurationMSColumn,
	tableinfo.TrackCreatedAtColumn,
}

type TrackStorage struct {
	db     trmpgx.Tr
	getter *trmpgx.CtxGetter
}

func NewTrackStorage(db trmpgx.Tr, getter *trmpgx.CtxGetter) *TrackStorage {
	return &TrackStorage{
		db:     db,
		getter: getter,
	}
}

// UpsertTracks inserts the snapshot records that are not yet known by
// remote ID and returns them. Catalog records are immutable upstream, so
// existing rows are left as they are.
func (s *TrackStorage) UpsertTracks(ctx context.Context, tracks []model.Track) ([]model.Track, error) {
	if len(tracks) == 0 {
		return nil, nil
	}

	builder := sq.
		Insert(tableinfo.TracksTableName).
		Columns(
			tableinfo.TrackRemoteIDColumn,
			tableinfo.TrackTitleColumn,
			tableinfo.TrackArtistColumn,
			tableinfo.TrackDurationMSColumn,
			tableinfo.TrackCreatedAtColumn,
		).
		Suffix(fmt.Sprintf("ON CONFLICT (%s) DO NOTHING RETURNING %s, %s, %s, %s, %s, %s",
			tableinfo.TrackRemoteIDColumn,
			tableinfo.TrackIDColumn,
			tableinfo.TrackRemoteIDColumn,
			tableinfo.TrackTitleColumn,
			tableinfo.TrackArtistColumn,
			tableinfo.TrackDurationMSColumn,
			tableinfo.TrackCreatedAtColumn,
		)).
		PlaceholderFormat(sq.Dollar)

	for _, t := range tracks {
		builder = builder.Values(t.RemoteID, t.Title, t.Artist, t.DurationMS, t.CreatedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec upsert tracks: %w", err)
	}
	defer rows.Close()

	return scanTracks(rows, len(tracks))
}

func (s *TrackStorage) GetTrackByID(ctx context.Context, trackID int64) (model.Track, error) {
	var out model.Track

	query, args, err := sq.
		Select(trackColumns...).
		From(tableinfo.TracksTableName).
		Where(sq.Eq{tableinfo.TrackIDColumn: trackID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	if err := tr.QueryRow(ctx, query, args...).Scan(
		&out.ID,
		&out.RemoteID,
		&out.Title,
		&out.Artist,
		&out.DurationMS,
		&out.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return out, ErrNotFound
		}
		return out, fmt.Errorf("exec select track by id: %w", err)
	}

	return out, nil
}

func (s *TrackStorage) CountTracks(ctx context.Context) (int64, error) {
	query, args, err := sq.
		Select("COUNT(*)").
		From(tableinfo.TracksTableName).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	var n int64
	if err := tr.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("exec count tracks: %w", err)
	}
	return n, nil
}

func (s *TrackStorage) ListTracks(ctx context.Context, limit int) ([]model.Track, error) {
	if limit <= 0 {
		limit = DefaultTracksLimit
	}
	query, args, err := sq.
		Select(trackColumns...).
		From(tableinfo.TracksTableName).
		OrderBy(
			tableinfo.TrackCreatedAtColumn+" DESC",
			tableinfo.TrackIDColumn+" DESC",
		).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select tracks: %w", err)
	}
	defer rows.Close()

	return scanTracks(rows, limit)
}

func (s *TrackStorage) ListTracksWithCursor(ctx context.Context, params storage.ListTracksParams) ([]model.Track, error) {
	qb, err := listTracksQueryBuilder(params)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select tracks with cursor: %w", err)
	}
	defer rows.Close()

	out, err := scanTracks(rows, params.Limit)
	if err != nil {
		return nil, err
	}

	// the before-direction query walks the keyset ascending; callers
	// always receive newest-first
	if params.Direction == storage.DirectionBefore {
		slices.Reverse(out)
	}
	return out, nil
}

func listTracksQueryBuilder(params storage.ListTracksParams) (sq.SelectBuilder, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultTracksLimit
	}

	qb := sq.
		Select(trackColumns...).
		From(tableinfo.TracksTableName).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	keyset := fmt.Sprintf("(%s, %s)", tableinfo.TrackCreatedAtColumn, tableinfo.TrackIDColumn)

	switch params.Direction {
	case storage.DirectionAfter:
		qb = qb.
			Where(sq.Expr(keyset+" < (?, ?)", params.Cursor.CreatedAt, params.Cursor.ID)).
			OrderBy(
				tableinfo.TrackCreatedAtColumn+" DESC",
				tableinfo.TrackIDColumn+" DESC",
			)

	case storage.DirectionBefore:
		qb = qb.
			Where(sq.Expr(keyset+" > (?, ?)", params.Cursor.CreatedAt, params.Cursor.ID)).
			OrderBy(
				tableinfo.TrackCreatedAtColumn+" ASC",
				tableinfo.TrackIDColumn+" ASC",
			)

	default:
		return qb, storage.ErrDirectionUnset
	}

	return qb, nil
}

func scanTracks(rows pgx.Rows, sizeHint int) ([]model.Track, error) {
	if sizeHint < 0 {
		sizeHint = 0
	}
	out := make([]model.Track, 0, sizeHint)
	for rows.Next() {
		var t model.Track
		if err := rows.Scan(
			&t.ID,
			&t.RemoteID,
			&t.Title,
			&t.Artist,
			&t.DurationMS,
			&t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}
