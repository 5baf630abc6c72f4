package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS scenarios (
    id                   TEXT PRIMARY KEY,
    name                 TEXT NOT NULL UNIQUE,
    starting_balance     REAL NOT NULL,
    apr                  REAL NOT NULL,
    months               INTEGER NOT NULL,
    band_count           INTEGER NOT NULL,
    advanced_mode        INTEGER NOT NULL DEFAULT 0,
    document             TEXT NOT NULL,
    created_at           TEXT NOT NULL,
    updated_at           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scenarios_updated ON scenarios(updated_at);
`
