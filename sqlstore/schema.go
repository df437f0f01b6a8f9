package sqlstore

const schemaSQL = `
CREATE TABLE IF NOT EXISTS entries (
    date                 TEXT PRIMARY KEY,
    status               TEXT NOT NULL,
    title                TEXT,
    reflection           TEXT,
    sip_change           REAL,
    expense_drift        REAL,
    emergency_spend      REAL,
    discipline_score     REAL,
    completed_action     TEXT,
    phase                TEXT
);

CREATE TABLE IF NOT EXISTS active_sprint (
    slot                 INTEGER PRIMARY KEY CHECK (slot = 1),
    cadence              TEXT NOT NULL,
    start_date           TEXT NOT NULL,
    end_date             TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sprint_history (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    cadence              TEXT NOT NULL,
    start_date           TEXT NOT NULL,
    end_date             TEXT NOT NULL,
    completed_on         TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);
`
