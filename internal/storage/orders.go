package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/oficinagl/garantia/internal/common"
	"github.com/oficinagl/garantia/internal/model"
)

const orderColumns = `numero_ordem, data_ordem, data_fechamento, status,
	defeito_texto_bruto, mecanico_responsavel, modelo_motor, fabricante_motor,
	cliente_nome, observacoes, dia_servico, mes_servico, ano_servico,
	total_pecas, total_servico, total_geral, defeito_grupo, defeito_subgrupo,
	defeito_subsubgrupo, classificacao_confianca`

// UpsertOrders persists a batch of canonical orders, keyed by numero_ordem.
// Re-importing the same export is idempotent: existing rows are overwritten
// with the freshly normalized values.
func (s *SQLiteStorage) UpsertOrders(ctx context.Context, orders []model.Order) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateOrders(orders); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO ordens_servico (`+orderColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(numero_ordem) DO UPDATE SET
			data_ordem = excluded.data_ordem,
			data_fechamento = excluded.data_fechamento,
			status = excluded.status,
			defeito_texto_bruto = excluded.defeito_texto_bruto,
			mecanico_responsavel = excluded.mecanico_responsavel,
			modelo_motor = excluded.modelo_motor,
			fabricante_motor = excluded.fabricante_motor,
			cliente_nome = excluded.cliente_nome,
			observacoes = excluded.observacoes,
			dia_servico = excluded.dia_servico,
			mes_servico = excluded.mes_servico,
			ano_servico = excluded.ano_servico,
			total_pecas = excluded.total_pecas,
			total_servico = excluded.total_servico,
			total_geral = excluded.total_geral,
			defeito_grupo = excluded.defeito_grupo,
			defeito_subgrupo = excluded.defeito_subgrupo,
			defeito_subsubgrupo = excluded.defeito_subsubgrupo,
			classificacao_confianca = excluded.classificacao_confianca,
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range orders {
		o := &orders[i]
		_, err = stmt.ExecContext(ctx,
			o.NumeroOrdem,
			nullTime(o.DataOrdem),
			nullTime(o.DataFechamento),
			o.Status,
			o.DefeitoTextoBruto,
			o.MecanicoResponsavel,
			o.ModeloMotor,
			o.FabricanteMotor,
			o.ClienteNome,
			o.Observacoes,
			nullInt(o.DiaServico),
			nullInt(o.MesServico),
			nullInt(o.AnoServico),
			nullFloat(o.TotalPecas),
			nullFloat(o.TotalServico),
			nullFloat(o.TotalGeral),
			o.DefeitoGrupo,
			o.DefeitoSubgrupo,
			o.DefeitoSubsubgrupo,
			o.ClassificacaoConfianca,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert order %s: %w", o.NumeroOrdem, err)
		}
	}

	return tx.Commit()
}

// GetOrder fetches one order by its number.
func (s *SQLiteStorage) GetOrder(ctx context.Context, numeroOrdem string) (*model.Order, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(numeroOrdem, "numeroOrdem"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM ordens_servico WHERE numero_ordem = ?`, numeroOrdem)

	order, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order %s: %w", numeroOrdem, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", numeroOrdem, err)
	}
	return order, nil
}

// CountOrders returns the total number of persisted orders.
func (s *SQLiteStorage) CountOrders(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ordens_servico`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// FindMissingServiceDates returns up to limit orders whose derived service
// date fields are incomplete but whose data_ordem can supply them. Orders
// with no data_ordem at all are not derivable and are deliberately excluded
// so a reconciliation run terminates.
func (s *SQLiteStorage) FindMissingServiceDates(ctx context.Context, limit int) ([]model.Order, error) {
	return s.findOrders(ctx, `
		SELECT `+orderColumns+` FROM ordens_servico
		WHERE (mes_servico IS NULL OR ano_servico IS NULL OR dia_servico IS NULL)
			AND data_ordem IS NOT NULL
		ORDER BY numero_ordem
		LIMIT ?`, limit)
}

// FindUnclassified returns up to limit orders that carry raw defect text but
// no taxonomy assignment (empty or the sentinel group).
func (s *SQLiteStorage) FindUnclassified(ctx context.Context, limit int) ([]model.Order, error) {
	return s.findOrders(ctx, `
		SELECT `+orderColumns+` FROM ordens_servico
		WHERE defeito_grupo IN ('', ?) AND defeito_texto_bruto != ''
		ORDER BY numero_ordem
		LIMIT ?`, model.NaoClassificado, limit)
}

func (s *SQLiteStorage) findOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var orders []model.Order
	for rows.Next() {
		order, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan order: %w", scanErr)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}
	return orders, nil
}

// UpdateServiceDate backfills the derived day/month/year fields of one order.
func (s *SQLiteStorage) UpdateServiceDate(ctx context.Context, numeroOrdem string, dia, mes, ano int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(numeroOrdem, "numeroOrdem"); err != nil {
		return err
	}
	if mes < 1 || mes > 12 {
		return fmt.Errorf("%w: mes_servico %d out of range", ErrInvalidOrder, mes)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE ordens_servico
		SET dia_servico = ?, mes_servico = ?, ano_servico = ?, updated_at = CURRENT_TIMESTAMP
		WHERE numero_ordem = ?`,
		dia, mes, ano, numeroOrdem)
	if err != nil {
		return fmt.Errorf("failed to update service date for %s: %w", numeroOrdem, err)
	}
	return requireRowAffected(result, numeroOrdem)
}

// UpdateClassification overwrites the taxonomy fields of one order. All
// three levels and the confidence move together, never partially.
func (s *SQLiteStorage) UpdateClassification(ctx context.Context, numeroOrdem string, c model.Classification) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(numeroOrdem, "numeroOrdem"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE ordens_servico
		SET defeito_grupo = ?, defeito_subgrupo = ?, defeito_subsubgrupo = ?,
			classificacao_confianca = ?, updated_at = CURRENT_TIMESTAMP
		WHERE numero_ordem = ?`,
		c.Grupo, c.Subgrupo, c.Subsubgrupo, c.Confianca, numeroOrdem)
	if err != nil {
		return fmt.Errorf("failed to update classification for %s: %w", numeroOrdem, err)
	}
	return requireRowAffected(result, numeroOrdem)
}

// CountByDefectGroup aggregates order counts per defect group.
func (s *SQLiteStorage) CountByDefectGroup(ctx context.Context) (map[string]int, error) {
	return s.countBy(ctx, `
		SELECT defeito_grupo, COUNT(*) FROM ordens_servico
		WHERE defeito_grupo != ''
		GROUP BY defeito_grupo`)
}

// CountByMechanic aggregates order counts per responsible mechanic.
func (s *SQLiteStorage) CountByMechanic(ctx context.Context) (map[string]int, error) {
	return s.countBy(ctx, `
		SELECT mecanico_responsavel, COUNT(*) FROM ordens_servico
		WHERE mecanico_responsavel != ''
		GROUP BY mecanico_responsavel`)
}

func (s *SQLiteStorage) countBy(ctx context.Context, query string) (map[string]int, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query counts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[key] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate counts: %w", err)
	}
	return counts, nil
}

func requireRowAffected(result sql.Result, numeroOrdem string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("order %s: %w", numeroOrdem, common.ErrNotFound)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanOrder(row scannable) (*model.Order, error) {
	var (
		o              model.Order
		dataOrdem      sql.NullTime
		dataFechamento sql.NullTime
		dia, mes, ano  sql.NullInt64
		pecas          sql.NullFloat64
		servico        sql.NullFloat64
		geral          sql.NullFloat64
	)

	err := row.Scan(
		&o.NumeroOrdem,
		&dataOrdem,
		&dataFechamento,
		&o.Status,
		&o.DefeitoTextoBruto,
		&o.MecanicoResponsavel,
		&o.ModeloMotor,
		&o.FabricanteMotor,
		&o.ClienteNome,
		&o.Observacoes,
		&dia,
		&mes,
		&ano,
		&pecas,
		&servico,
		&geral,
		&o.DefeitoGrupo,
		&o.DefeitoSubgrupo,
		&o.DefeitoSubsubgrupo,
		&o.ClassificacaoConfianca,
	)
	if err != nil {
		return nil, err
	}

	o.DataOrdem = timePtr(dataOrdem)
	o.DataFechamento = timePtr(dataFechamento)
	o.DiaServico = intPtr(dia)
	o.MesServico = intPtr(mes)
	o.AnoServico = intPtr(ano)
	o.TotalPecas = floatPtr(pecas)
	o.TotalServico = floatPtr(servico)
	o.TotalGeral = floatPtr(geral)
	return &o, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	utc := t.Time.UTC()
	return &utc
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}
