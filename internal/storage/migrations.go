package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a fatal
// error.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial warranty orders schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS ordens_servico (
					numero_ordem TEXT PRIMARY KEY,
					data_ordem DATETIME,
					status TEXT NOT NULL DEFAULT '',
					defeito_texto_bruto TEXT NOT NULL DEFAULT '',
					mecanico_responsavel TEXT NOT NULL DEFAULT '',
					modelo_motor TEXT NOT NULL DEFAULT '',
					fabricante_motor TEXT NOT NULL DEFAULT '',
					cliente_nome TEXT NOT NULL DEFAULT '',
					observacoes TEXT NOT NULL DEFAULT '',
					dia_servico INTEGER,
					mes_servico INTEGER,
					ano_servico INTEGER,
					total_pecas REAL,
					total_servico REAL,
					total_geral REAL,
					defeito_grupo TEXT NOT NULL DEFAULT '',
					defeito_subgrupo TEXT NOT NULL DEFAULT '',
					defeito_subsubgrupo TEXT NOT NULL DEFAULT '',
					classificacao_confianca REAL NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_ordens_status ON ordens_servico(status)`,
				`CREATE INDEX idx_ordens_ano_mes ON ordens_servico(ano_servico, mes_servico)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add closing date",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`ALTER TABLE ordens_servico ADD COLUMN data_fechamento DATETIME`)
			return err
		},
	},
	{
		Version:     3,
		Description: "Index incompleteness predicates for reconciliation",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE INDEX IF NOT EXISTS idx_ordens_missing_date ON ordens_servico(numero_ordem)
					WHERE (mes_servico IS NULL OR ano_servico IS NULL) AND data_ordem IS NOT NULL`,
				`CREATE INDEX IF NOT EXISTS idx_ordens_unclassified ON ordens_servico(numero_ordem)
					WHERE defeito_grupo IN ('', 'Não Classificado') AND defeito_texto_bruto != ''`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query '%s': %w", query, err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to ExpectedSchemaVersion.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}

// SchemaVersion returns the current PRAGMA user_version.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}
