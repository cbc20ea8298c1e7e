package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/goliatone/go-docgen/pkg/template"
)

// Postgres persists templates in PostgreSQL. The template body is stored as a
// JSONB payload next to the columns used for filtering, so schema evolution
// in the template shape does not require migrations.
type Postgres struct {
	db    *sql.DB
	clock Clock
}

// PostgresOption configures a Postgres store.
type PostgresOption func(*Postgres)

// WithPostgresClock sets the clock used for timestamps.
func WithPostgresClock(clock Clock) PostgresOption {
	return func(p *Postgres) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// NewPostgres constructs a PostgreSQL-backed store around an open connection.
func NewPostgres(db *sql.DB, options ...PostgresOption) *Postgres {
	p := &Postgres{db: db, clock: time.Now}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Migrate creates the templates table when it does not exist.
func (p *Postgres) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS plantillas (
			id              TEXT PRIMARY KEY,
			tipo_documento  TEXT NOT NULL,
			tipo_entidad    TEXT NOT NULL,
			activa          BOOLEAN NOT NULL DEFAULT TRUE,
			payload         JSONB NOT NULL,
			creada_en       TIMESTAMPTZ NOT NULL,
			actualizada_en  TIMESTAMPTZ NOT NULL
		)
	`
	if _, err := p.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("migrate templates table: %w", err)
	}
	return nil
}

func (p *Postgres) List(ctx context.Context, filter Filter) ([]template.Template, error) {
	query := `
		SELECT payload FROM plantillas
		WHERE ($1::TEXT IS NULL OR tipo_documento = $1)
		  AND ($2::TEXT IS NULL OR tipo_entidad = $2)
		  AND (NOT $3::BOOLEAN OR activa)
		ORDER BY creada_en, id
	`
	var kind, entity sql.NullString
	if filter.TipoDocumento != nil {
		kind = sql.NullString{String: string(*filter.TipoDocumento), Valid: true}
	}
	if filter.TipoEntidad != nil {
		entity = sql.NullString{String: string(*filter.TipoEntidad), Valid: true}
	}
	rows, err := p.db.QueryContext(ctx, query, kind, entity, filter.SoloActivas)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var templates []template.Template
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan template row: %w", err)
		}
		var tpl template.Template
		if err := json.Unmarshal(payload, &tpl); err != nil {
			return nil, fmt.Errorf("decode template payload: %w", err)
		}
		templates = append(templates, tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}

func (p *Postgres) Get(ctx context.Context, id string) (template.Template, error) {
	var payload []byte
	err := p.db.QueryRowContext(ctx, `SELECT payload FROM plantillas WHERE id = $1`, id).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return template.Template{}, ErrNotFound
		}
		return template.Template{}, fmt.Errorf("get template %q: %w", id, err)
	}
	var tpl template.Template
	if err := json.Unmarshal(payload, &tpl); err != nil {
		return template.Template{}, fmt.Errorf("decode template payload: %w", err)
	}
	return tpl, nil
}

func (p *Postgres) Create(ctx context.Context, tpl template.Template) (template.Template, error) {
	stored := tpl.Clone()
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	now := p.clock()
	stored.FechaCreacion = now
	stored.FechaActualizacion = now

	payload, err := json.Marshal(stored)
	if err != nil {
		return template.Template{}, fmt.Errorf("encode template payload: %w", err)
	}
	query := `
		INSERT INTO plantillas (id, tipo_documento, tipo_entidad, activa, payload, creada_en, actualizada_en)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (id) DO UPDATE SET
			tipo_documento = EXCLUDED.tipo_documento,
			tipo_entidad   = EXCLUDED.tipo_entidad,
			activa         = EXCLUDED.activa,
			payload        = EXCLUDED.payload,
			actualizada_en = EXCLUDED.actualizada_en
	`
	_, err = p.db.ExecContext(ctx, query,
		stored.ID, string(stored.TipoDocumento), string(stored.TipoEntidad), stored.Activa, payload, now)
	if err != nil {
		return template.Template{}, fmt.Errorf("create template %q: %w", stored.ID, err)
	}
	return stored, nil
}

func (p *Postgres) Update(ctx context.Context, tpl template.Template) (template.Template, error) {
	current, err := p.Get(ctx, tpl.ID)
	if err != nil {
		return template.Template{}, err
	}
	stored := tpl.Clone()
	stored.FechaCreacion = current.FechaCreacion
	stored.FechaActualizacion = p.clock()

	payload, err := json.Marshal(stored)
	if err != nil {
		return template.Template{}, fmt.Errorf("encode template payload: %w", err)
	}
	query := `
		UPDATE plantillas SET
			tipo_documento = $2,
			tipo_entidad   = $3,
			activa         = $4,
			payload        = $5,
			actualizada_en = $6
		WHERE id = $1
	`
	result, err := p.db.ExecContext(ctx, query,
		stored.ID, string(stored.TipoDocumento), string(stored.TipoEntidad), stored.Activa, payload, stored.FechaActualizacion)
	if err != nil {
		return template.Template{}, fmt.Errorf("update template %q: %w", stored.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return template.Template{}, fmt.Errorf("update template %q: %w", stored.ID, err)
	}
	if affected == 0 {
		return template.Template{}, ErrNotFound
	}
	return stored, nil
}

func (p *Postgres) Delete(ctx context.Context, id string) error {
	result, err := p.db.ExecContext(ctx, `DELETE FROM plantillas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template %q: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete template %q: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
