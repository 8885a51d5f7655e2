package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"servicehive/internal/marketerrors"
	"servicehive/internal/models"
	"servicehive/internal/store"

	"github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// PGStore is the Postgres-backed implementation of store.MarketDB. The
// (gig_id, freelancer_id) uniqueness lives in a database constraint and the
// hire transaction takes a row lock on the gig, so correctness holds across
// multiple service instances sharing one database.
type PGStore struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// Open connects to Postgres at the given url
func Open(url string) (*PGStore, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres at %s: %w", url, err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &PGStore{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// Migrate applies the schema migrations from sourceURL, e.g. "file://migrations"
func (s *PGStore) Migrate(sourceURL string) error {
	driver, err := pgmigrate.WithInstance(s.db, &pgmigrate.Config{})
	if err != nil {
		return fmt.Errorf("migrate driver: %w", err)
	}
	migrations, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate source %s: %w", sourceURL, err)
	}
	if err := migrations.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func (s *PGStore) Close() error {
	return s.db.Close()
}

// mapPQError translates Postgres constraint violations into the service's
// error kinds; anything else is a store failure.
func mapPQError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return fmt.Errorf("%s: %v: %w", op, pqErr.Detail, marketerrors.ErrConflict)
		case pqForeignKeyViolation:
			return fmt.Errorf("%s: %v: %w", op, pqErr.Detail, marketerrors.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %v: %w", op, err, marketerrors.ErrStore)
}

func (s *PGStore) CreateGig(ctx context.Context, gig models.Gig) error {
	sqlReq, args, _ := s.sb.
		Insert("gigs").
		Columns("id", "owner_id", "title", "description", "budget", "status", "created_at").
		Values(gig.GigID, gig.OwnerID, gig.Title, gig.Description, gig.Budget, gig.Status, gig.CreatedAt).
		ToSql()

	if _, err := s.db.ExecContext(ctx, sqlReq, args...); err != nil {
		return mapPQError("create gig", err)
	}
	return nil
}

func (s *PGStore) GetGig(ctx context.Context, gigID string) (models.Gig, error) {
	sqlReq, args, _ := s.sb.
		Select("id", "owner_id", "title", "description", "budget", "status", "created_at").
		From("gigs").
		Where("id = ?", gigID).
		ToSql()

	return scanGig(s.db.QueryRowContext(ctx, sqlReq, args...), gigID)
}

func (s *PGStore) UpdateGig(ctx context.Context, gig models.Gig) error {
	sqlReq, args, _ := s.sb.
		Update("gigs").
		Set("title", gig.Title).
		Set("description", gig.Description).
		Set("budget", gig.Budget).
		Set("status", gig.Status).
		Where("id = ?", gig.GigID).
		ToSql()

	res, err := s.db.ExecContext(ctx, sqlReq, args...)
	if err != nil {
		return mapPQError("update gig", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update gig %s: %w", gig.GigID, marketerrors.ErrNotFound)
	}
	return nil
}

func (s *PGStore) ListOpenGigs(ctx context.Context, search string) ([]models.Gig, error) {
	builder := s.sb.
		Select("id", "owner_id", "title", "description", "budget", "status", "created_at").
		From("gigs").
		Where("status = ?", models.GigOpen)

	if search != "" {
		builder = builder.Where("title ILIKE ?", "%"+escapeLike(search)+"%")
	}

	sqlReq, args, _ := builder.OrderBy("created_at DESC, id").ToSql()
	return s.queryGigs(ctx, sqlReq, args)
}

func (s *PGStore) ListGigsByOwner(ctx context.Context, ownerID string) ([]models.Gig, error) {
	sqlReq, args, _ := s.sb.
		Select("id", "owner_id", "title", "description", "budget", "status", "created_at").
		From("gigs").
		Where("owner_id = ?", ownerID).
		OrderBy("created_at DESC, id").
		ToSql()

	return s.queryGigs(ctx, sqlReq, args)
}

func (s *PGStore) CreateBid(ctx context.Context, bid models.Bid) error {
	sqlReq, args, _ := s.sb.
		Insert("bids").
		Columns("id", "gig_id", "freelancer_id", "message", "price", "status", "created_at").
		Values(bid.BidID, bid.GigID, bid.FreelancerID, bid.Message, bid.Price, bid.Status, bid.CreatedAt).
		ToSql()

	if _, err := s.db.ExecContext(ctx, sqlReq, args...); err != nil {
		return mapPQError("create bid", err)
	}
	return nil
}

func (s *PGStore) GetBid(ctx context.Context, bidID string) (models.Bid, error) {
	sqlReq, args, _ := s.sb.
		Select("id", "gig_id", "freelancer_id", "message", "price", "status", "created_at").
		From("bids").
		Where("id = ?", bidID).
		ToSql()

	return scanBid(s.db.QueryRowContext(ctx, sqlReq, args...), bidID)
}

func (s *PGStore) UpdateBid(ctx context.Context, bid models.Bid) error {
	sqlReq, args, _ := s.sb.
		Update("bids").
		Set("message", bid.Message).
		Set("price", bid.Price).
		Set("status", bid.Status).
		Where("id = ?", bid.BidID).
		ToSql()

	res, err := s.db.ExecContext(ctx, sqlReq, args...)
	if err != nil {
		return mapPQError("update bid", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update bid %s: %w", bid.BidID, marketerrors.ErrNotFound)
	}
	return nil
}

func (s *PGStore) DeleteBid(ctx context.Context, bidID string) error {
	sqlReq, args, _ := s.sb.Delete("bids").Where("id = ?", bidID).ToSql()

	res, err := s.db.ExecContext(ctx, sqlReq, args...)
	if err != nil {
		return mapPQError("delete bid", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete bid %s: %w", bidID, marketerrors.ErrNotFound)
	}
	return nil
}

func (s *PGStore) ListBidsByGig(ctx context.Context, gigID string) ([]models.Bid, error) {
	sqlReq, args, _ := s.sb.
		Select("id", "gig_id", "freelancer_id", "message", "price", "status", "created_at").
		From("bids").
		Where("gig_id = ?", gigID).
		OrderBy("created_at DESC, id").
		ToSql()

	return queryBids(ctx, s.db, sqlReq, args)
}

func (s *PGStore) ListBidsByFreelancer(ctx context.Context, freelancerID string) ([]models.Bid, error) {
	sqlReq, args, _ := s.sb.
		Select("id", "gig_id", "freelancer_id", "message", "price", "status", "created_at").
		From("bids").
		Where("freelancer_id = ?", freelancerID).
		OrderBy("created_at DESC, id").
		ToSql()

	return queryBids(ctx, s.db, sqlReq, args)
}

// Atomically runs fn inside one sql transaction. Gig reads through the Tx
// take FOR UPDATE row locks, which serializes concurrent hires of the same
// gig: the second transaction blocks on the lock and then re-reads the
// already-assigned status.
func (s *PGStore) Atomically(ctx context.Context, fn func(tx store.Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %v: %w", err, marketerrors.ErrStore)
	}

	if err := fn(&pgTx{ctx: ctx, tx: sqlTx, sb: s.sb}); err != nil {
		if e := sqlTx.Rollback(); e != nil {
			return fmt.Errorf("rollback: %v: %w", e, marketerrors.ErrStore)
		}
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit: %v: %w", err, marketerrors.ErrStore)
	}
	return nil
}

// pgTx implements store.Tx over a live sql.Tx
type pgTx struct {
	ctx context.Context
	tx  *sql.Tx
	sb  squirrel.StatementBuilderType
}

func (t *pgTx) GetGig(gigID string) (models.Gig, error) {
	sqlReq, args, _ := t.sb.
		Select("id", "owner_id", "title", "description", "budget", "status", "created_at").
		From("gigs").
		Where("id = ?", gigID).
		Suffix("FOR UPDATE").
		ToSql()

	return scanGig(t.tx.QueryRowContext(t.ctx, sqlReq, args...), gigID)
}

func (t *pgTx) UpdateGig(gig models.Gig) error {
	sqlReq, args, _ := t.sb.
		Update("gigs").
		Set("title", gig.Title).
		Set("description", gig.Description).
		Set("budget", gig.Budget).
		Set("status", gig.Status).
		Where("id = ?", gig.GigID).
		ToSql()

	res, err := t.tx.ExecContext(t.ctx, sqlReq, args...)
	if err != nil {
		return mapPQError("update gig", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update gig %s: %w", gig.GigID, marketerrors.ErrNotFound)
	}
	return nil
}

func (t *pgTx) DeleteGig(gigID string) error {
	sqlReq, args, _ := t.sb.Delete("gigs").Where("id = ?", gigID).ToSql()

	res, err := t.tx.ExecContext(t.ctx, sqlReq, args...)
	if err != nil {
		return mapPQError("delete gig", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete gig %s: %w", gigID, marketerrors.ErrNotFound)
	}
	return nil
}

func (t *pgTx) GetBid(bidID string) (models.Bid, error) {
	sqlReq, args, _ := t.sb.
		Select("id", "gig_id", "freelancer_id", "message", "price", "status", "created_at").
		From("bids").
		Where("id = ?", bidID).
		Suffix("FOR UPDATE").
		ToSql()

	return scanBid(t.tx.QueryRowContext(t.ctx, sqlReq, args...), bidID)
}

func (t *pgTx) UpdateBid(bid models.Bid) error {
	sqlReq, args, _ := t.sb.
		Update("bids").
		Set("message", bid.Message).
		Set("price", bid.Price).
		Set("status", bid.Status).
		Where("id = ?", bid.BidID).
		ToSql()

	res, err := t.tx.ExecContext(t.ctx, sqlReq, args...)
	if err != nil {
		return mapPQError("update bid", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update bid %s: %w", bid.BidID, marketerrors.ErrNotFound)
	}
	return nil
}

func (t *pgTx) ListBidsByGig(gigID string) ([]models.Bid, error) {
	sqlReq, args, _ := t.sb.
		Select("id", "gig_id", "freelancer_id", "message", "price", "status", "created_at").
		From("bids").
		Where("gig_id = ?", gigID).
		OrderBy("created_at DESC, id").
		ToSql()

	return queryBids(t.ctx, t.tx, sqlReq, args)
}

func (t *pgTx) DeleteBidsByGig(gigID string) error {
	sqlReq, args, _ := t.sb.Delete("bids").Where("gig_id = ?", gigID).ToSql()

	if _, err := t.tx.ExecContext(t.ctx, sqlReq, args...); err != nil {
		return mapPQError("delete bids for gig", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func scanGig(row rowScanner, gigID string) (models.Gig, error) {
	var gig models.Gig
	err := row.Scan(&gig.GigID, &gig.OwnerID, &gig.Title, &gig.Description,
		&gig.Budget, &gig.Status, &gig.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Gig{}, fmt.Errorf("gig %s: %w", gigID, marketerrors.ErrNotFound)
		}
		return models.Gig{}, mapPQError("get gig", err)
	}
	return gig, nil
}

func scanBid(row rowScanner, bidID string) (models.Bid, error) {
	var bid models.Bid
	err := row.Scan(&bid.BidID, &bid.GigID, &bid.FreelancerID, &bid.Message,
		&bid.Price, &bid.Status, &bid.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bid{}, fmt.Errorf("bid %s: %w", bidID, marketerrors.ErrNotFound)
		}
		return models.Bid{}, mapPQError("get bid", err)
	}
	return bid, nil
}

func (s *PGStore) queryGigs(ctx context.Context, sqlReq string, args []any) ([]models.Gig, error) {
	rows, err := s.db.QueryContext(ctx, sqlReq, args...)
	if err != nil {
		return nil, mapPQError("list gigs", err)
	}
	defer rows.Close()

	gigs := make([]models.Gig, 0)
	for rows.Next() {
		var gig models.Gig
		if err := rows.Scan(&gig.GigID, &gig.OwnerID, &gig.Title, &gig.Description,
			&gig.Budget, &gig.Status, &gig.CreatedAt); err != nil {
			return nil, mapPQError("scan gig", err)
		}
		gigs = append(gigs, gig)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPQError("list gigs", err)
	}
	return gigs, nil
}

func queryBids(ctx context.Context, q querier, sqlReq string, args []any) ([]models.Bid, error) {
	rows, err := q.QueryContext(ctx, sqlReq, args...)
	if err != nil {
		return nil, mapPQError("list bids", err)
	}
	defer rows.Close()

	bids := make([]models.Bid, 0)
	for rows.Next() {
		var bid models.Bid
		if err := rows.Scan(&bid.BidID, &bid.GigID, &bid.FreelancerID, &bid.Message,
			&bid.Price, &bid.Status, &bid.CreatedAt); err != nil {
			return nil, mapPQError("scan bid", err)
		}
		bids = append(bids, bid)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPQError("list bids", err)
	}
	return bids, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE metacharacters in user-supplied search input
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
