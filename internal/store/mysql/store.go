package mysql

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"backend-queue/internal/models"
	"backend-queue/internal/store"
)

// seqKey is the Redis counter that issues token numbers. INCR is atomic on
// a missing key (first call yields 1), so the counter needs no seeding.
const seqKey = "queue:token:seq"

// Store persists the ledger and service-time defaults in MySQL and the
// token sequence in Redis.
type Store struct {
	db  *sql.DB
	rdb *redis.Client

	// adminMu serializes Advance and Reset. Advance runs inside one MySQL
	// transaction, but Reset spans both stores and the two admin mutations
	// must not interleave.
	adminMu sync.Mutex
}

func New(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{db: db, rdb: rdb}
}

var _ store.Store = (*Store)(nil)

const tokenColumns = "id, token_number, service_type, status, assigned_service_time, created_at, served_at"

func scanToken(row interface{ Scan(...interface{}) error }) (models.Token, error) {
	var t models.Token
	var assigned sql.NullFloat64
	var servedAt sql.NullTime
	err := row.Scan(&t.ID, &t.TokenNumber, &t.ServiceType, &t.Status, &assigned, &t.CreatedAt, &servedAt)
	if err != nil {
		return models.Token{}, err
	}
	if assigned.Valid {
		t.AssignedServiceTime = &assigned.Float64
	}
	if servedAt.Valid {
		t.ServedAt = &servedAt.Time
	}
	return t, nil
}

func (s *Store) queryTokens(ctx context.Context, query string, args ...interface{}) ([]models.Token, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := []models.Token{}
	for rows.Next() {
		t, err := scanToken(rows)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

func (s *Store) CreateToken(ctx context.Context, serviceType string) (models.Token, error) {
	if serviceType == "" {
		return models.Token{}, store.ErrEmptyServiceType
	}

	// A crash between INCR and INSERT leaves a permanent gap in token
	// numbers. Accepted: numbers stay unique and monotonic either way.
	number, err := s.rdb.Incr(ctx, seqKey).Result()
	if err != nil {
		return models.Token{}, err
	}

	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO queue_tokens (token_number, service_type, status, created_at) VALUES (?, ?, ?, ?)`,
		number, serviceType, models.StatusWaiting, now,
	)
	if err != nil {
		return models.Token{}, err
	}
	id, _ := res.LastInsertId()

	return models.Token{
		ID:          id,
		TokenNumber: number,
		ServiceType: serviceType,
		Status:      models.StatusWaiting,
		CreatedAt:   now,
	}, nil
}

func (s *Store) CurrentServing(ctx context.Context) (models.Token, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+tokenColumns+` FROM queue_tokens WHERE status = ? ORDER BY token_number ASC LIMIT 1`,
		models.StatusServing,
	)
	t, err := scanToken(row)
	if err == sql.ErrNoRows {
		return models.Token{}, false, nil
	}
	if err != nil {
		return models.Token{}, false, err
	}
	return t, true, nil
}

func (s *Store) WaitingTokens(ctx context.Context) ([]models.Token, error) {
	return s.queryTokens(ctx,
		`SELECT `+tokenColumns+` FROM queue_tokens WHERE status = ? ORDER BY token_number ASC`,
		models.StatusWaiting,
	)
}

func (s *Store) AllTokens(ctx context.Context) ([]models.Token, error) {
	return s.queryTokens(ctx,
		`SELECT `+tokenColumns+` FROM queue_tokens ORDER BY token_number ASC`)
}

func (s *Store) TokenByNumber(ctx context.Context, number int64) (models.Token, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+tokenColumns+` FROM queue_tokens WHERE token_number = ?`, number)
	t, err := scanToken(row)
	if err == sql.ErrNoRows {
		return models.Token{}, false, nil
	}
	if err != nil {
		return models.Token{}, false, err
	}
	return t, true, nil
}

func (s *Store) WaitingCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM queue_tokens WHERE status = ?`, models.StatusWaiting).Scan(&count)
	return count, err
}

// AssignServiceTime updates the row in a single statement keyed on the
// token number, so a concurrent Reset cannot slip between a lookup and
// the write. The read-back afterwards decides not-found: MySQL reports
// zero affected rows for a no-op update, so RowsAffected alone cannot
// distinguish a missing token from re-assigning the same value.
func (s *Store) AssignServiceTime(ctx context.Context, number int64, minutes float64) (models.Token, error) {
	if minutes < 0 {
		return models.Token{}, store.ErrInvalidMinutes
	}

	_, err := s.db.ExecContext(ctx,
		`UPDATE queue_tokens SET assigned_service_time = ? WHERE token_number = ?`, minutes, number)
	if err != nil {
		return models.Token{}, err
	}

	t, found, err := s.TokenByNumber(ctx, number)
	if err != nil {
		return models.Token{}, err
	}
	if !found {
		return models.Token{}, store.ErrTokenNotFound
	}
	return t, nil
}

// Advance demotes the current serving token to served and promotes the
// lowest-numbered waiting token. Both steps run in one transaction with
// row locks so a concurrent call cannot observe zero or two serving
// tokens.
func (s *Store) Advance(ctx context.Context) (int64, bool, error) {
	s.adminMu.Lock()
	defer s.adminMu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, err
	}
	defer tx.Rollback()

	var servingID int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM queue_tokens WHERE status = ? ORDER BY token_number ASC LIMIT 1 FOR UPDATE`,
		models.StatusServing,
	).Scan(&servingID)
	if err != nil && err != sql.ErrNoRows {
		return 0, false, err
	}
	if err == nil {
		next, _ := store.NextStatus(models.StatusServing)
		_, err = tx.ExecContext(ctx,
			`UPDATE queue_tokens SET status = ?, served_at = ? WHERE id = ?`,
			next, time.Now().UTC(), servingID)
		if err != nil {
			return 0, false, err
		}
	}

	var nextID, nextNumber int64
	err = tx.QueryRowContext(ctx,
		`SELECT id, token_number FROM queue_tokens WHERE status = ? ORDER BY token_number ASC LIMIT 1 FOR UPDATE`,
		models.StatusWaiting,
	).Scan(&nextID, &nextNumber)
	if err == sql.ErrNoRows {
		return 0, false, tx.Commit()
	}
	if err != nil {
		return 0, false, err
	}

	next, _ := store.NextStatus(models.StatusWaiting)
	_, err = tx.ExecContext(ctx,
		`UPDATE queue_tokens SET status = ? WHERE id = ?`, next, nextID)
	if err != nil {
		return 0, false, err
	}

	if err := tx.Commit(); err != nil {
		return 0, false, err
	}
	return nextNumber, true, nil
}

// Reset clears the ledger and rewinds the counter. The delete and the
// counter rewind hit different stores, so the pair is only serialized
// against other admin mutations, not atomic. Token creation racing a
// reset can at worst leave one token with a pre-reset number.
func (s *Store) Reset(ctx context.Context) error {
	s.adminMu.Lock()
	defer s.adminMu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM queue_tokens`); err != nil {
		return err
	}
	return s.rdb.Set(ctx, seqKey, 0, 0).Err()
}

func (s *Store) TotalTokens(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM queue_tokens`).Scan(&count)
	return count, err
}

func (s *Store) ServedTokens(ctx context.Context) ([]models.Token, error) {
	return s.queryTokens(ctx,
		`SELECT `+tokenColumns+` FROM queue_tokens WHERE status = ?`, models.StatusServed)
}

func (s *Store) RecentServed(ctx context.Context, limit int) ([]models.Token, error) {
	return s.queryTokens(ctx,
		`SELECT `+tokenColumns+` FROM queue_tokens WHERE status = ? ORDER BY served_at DESC LIMIT ?`,
		models.StatusServed, limit)
}

func (s *Store) SetServiceTimeDefault(ctx context.Context, serviceType string, minutes float64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO service_times (service_type, estimated_minutes) VALUES (?, ?)
		 ON DUPLICATE KEY UPDATE estimated_minutes = ?`,
		serviceType, minutes, minutes)
	return err
}

func (s *Store) DeleteServiceTimeDefault(ctx context.Context, serviceType string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM service_times WHERE service_type = ?`, serviceType)
	return err
}

func (s *Store) ServiceTimeDefaults(ctx context.Context) ([]models.ServiceTime, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT service_type, estimated_minutes FROM service_times ORDER BY service_type ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	defaults := []models.ServiceTime{}
	for rows.Next() {
		var st models.ServiceTime
		if err := rows.Scan(&st.ServiceType, &st.EstimatedMinutes); err != nil {
			return nil, err
		}
		defaults = append(defaults, st)
	}
	return defaults, rows.Err()
}

func (s *Store) AdminByUsername(ctx context.Context, username string) (models.Admin, bool, error) {
	var admin models.Admin
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM admins WHERE username = ?`, username,
	).Scan(&admin.ID, &admin.Username, &admin.Password)
	if err == sql.ErrNoRows {
		return models.Admin{}, false, nil
	}
	if err != nil {
		return models.Admin{}, false, err
	}
	return admin, true, nil
}
