// Package history keeps an optional SQLite journal of the renames a run
// performed, so a batch can be audited or reversed by hand later.
package history

// Schema defines the SQL statements to create the journal tables.
const Schema = `
-- One row per completed rename.
CREATE TABLE IF NOT EXISTS renames (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,              -- UUID shared by every row of one run
    source TEXT NOT NULL,              -- path before the rename
    target TEXT NOT NULL,              -- path after the rename
    bank TEXT NOT NULL,                -- bank label used in the new name
    account TEXT NOT NULL,             -- <ACCTID> value
    start_date TEXT NOT NULL,          -- YYYY-MM-DD
    end_date TEXT NOT NULL,            -- YYYY-MM-DD
    renamed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_renames_run
    ON renames(run_id);

CREATE INDEX IF NOT EXISTS idx_renames_account
    ON renames(account);
`
